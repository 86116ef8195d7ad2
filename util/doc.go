// Package util holds small parsing helpers shared by conduit commands.
package util
