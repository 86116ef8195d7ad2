package pipeline

import "github.com/kbukum/conduit/conduit"

// Chunk groups elements into slices of size. The last slice holds whatever
// is left when upstream is exhausted and is never empty. size <= 0 is
// treated as 1.
func Chunk[T any](size int) conduit.Conduit[T, []T] {
	if size <= 0 {
		size = 1
	}
	return chunk(size, make([]T, 0, size))
}

func chunk[T any](size int, buf []T) conduit.Conduit[T, []T] {
	return each(func(v T) conduit.Conduit[T, []T] {
		buf = append(buf, v)
		if len(buf) < size {
			return chunk(size, buf)
		}
		return emit(buf, func() conduit.Conduit[T, []T] {
			return chunk(size, make([]T, 0, size))
		})
	}, func() conduit.Conduit[T, []T] {
		if len(buf) == 0 {
			return done[T, []T]()
		}
		return emit(buf, done[T, []T])
	})
}
