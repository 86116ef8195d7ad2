package main

import (
	"io"
	"strings"

	"github.com/kbukum/conduit/conduit"
	"github.com/kbukum/conduit/logger"
	"github.com/kbukum/conduit/pipeline"
)

// Counts is the result of a word count run.
type Counts struct {
	Lines int64 `json:"lines"`
	Words int64 `json:"words"`
	// Bytes counts line content plus one terminator per line.
	Bytes int64 `json:"bytes"`

	err error
}

type lineStats struct {
	words int64
	bytes int64
	err   error
}

// wordCount builds Lines -> Log -> Filter -> Map over r. Blank lines are
// dropped unless keepEmpty is set. A read error is carried through to the sink.
func wordCount(r io.Reader, maxLine int, log *logger.Logger, keepEmpty bool) conduit.Source[lineStats] {
	src := conduit.Fuse(pipeline.LinesSize(r, maxLine), pipeline.Log[pipeline.Item[string]](log, "line"))
	src = conduit.Fuse(src, pipeline.Filter(func(it pipeline.Item[string]) bool {
		return it.Err != nil || keepEmpty || strings.TrimSpace(it.Value) != ""
	}))
	return conduit.Fuse(src, pipeline.Map(func(it pipeline.Item[string]) lineStats {
		if it.Err != nil {
			return lineStats{err: it.Err}
		}
		return lineStats{
			words: int64(len(strings.Fields(it.Value))),
			bytes: int64(len(it.Value)) + 1,
		}
	}))
}

// tally sums line stats and keeps the first error it sees.
func tally() conduit.Sink[lineStats, Counts] {
	return pipeline.Fold(Counts{}, func(c Counts, s lineStats) Counts {
		if s.err != nil {
			if c.err == nil {
				c.err = s.err
			}
			return c
		}
		c.Lines++
		c.Words += s.words
		c.Bytes += s.bytes
		return c
	})
}
