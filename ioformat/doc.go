// Package ioformat reads and writes the file artifacts of §6: the
// per-round inputs (.attributes, .data, .horn, .intervals, .status, .R,
// .W) and the verifier-facing .json output. Every reader is a
// bufio.Scanner line walk in the teacher's own dimacs-parsing style
// (github.com/go-air/gini/dimacs); none of this package is exercised by
// the core algorithm packages, which only ever see model/pset types.
package ioformat
