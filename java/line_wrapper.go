package java

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

type flushType int

const (
	flushWrap flushType = iota
	flushSpace
	flushEmpty
)

// lineWrapper buffers output behind deferred break points so that a line
// can be broken retroactively once it is clear the column limit would be
// exceeded. Text is only ever broken at points explicitly marked with
// WrappingSpace or ZeroWidthSpace.
//
// Adapted from the column tracking in format.JavaPrettyPrinter: a running
// per-line character count, reset after each emitted newline.
type lineWrapper struct {
	out         io.Writer
	indent      string
	columnLimit int
	closed      bool

	// Characters since the last newline, including pending buffered text.
	column int

	// Buffered text and break state since the last break point.
	buffer      strings.Builder
	hasPending  bool
	nextFlush   flushType
	indentLevel int
}

func newLineWrapper(out io.Writer, indent string, columnLimit int) *lineWrapper {
	return &lineWrapper{out: out, indent: indent, columnLimit: columnLimit}
}

// Append writes s, first deciding the fate of any pending break point:
// newline-free text that still fits is buffered, anything else forces the
// pending point to resolve to either a space or a wrapped line.
func (w *lineWrapper) Append(s string) error {
	if w.closed {
		return errors.New("append after close")
	}
	if w.hasPending {
		nextNewline := strings.IndexByte(s, '\n')
		if nextNewline == -1 && w.column+len(s) <= w.columnLimit {
			w.buffer.WriteString(s)
			w.column += len(s)
			return nil
		}
		wrap := nextNewline == -1 || w.column+nextNewline > w.columnLimit
		ft := w.nextFlush
		if wrap {
			ft = flushWrap
		}
		if err := w.flush(ft); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w.out, s); err != nil {
		return err
	}
	if last := strings.LastIndexByte(s, '\n'); last != -1 {
		w.column = len(s) - last - 1
	} else {
		w.column += len(s)
	}
	return nil
}

// WrappingSpace marks a legal break point that renders as a single space
// unless breaking is needed, in which case it renders as a newline
// followed by indentLevel indents.
func (w *lineWrapper) WrappingSpace(indentLevel int) error {
	if w.closed {
		return errors.New("wrapping space after close")
	}
	if w.hasPending {
		if err := w.flush(w.nextFlush); err != nil {
			return err
		}
	}
	w.column++ // the space is deferred but still occupies a column
	w.hasPending = true
	w.nextFlush = flushSpace
	w.indentLevel = indentLevel
	return nil
}

// ZeroWidthSpace marks a legal break point that renders as nothing unless
// breaking is needed.
func (w *lineWrapper) ZeroWidthSpace(indentLevel int) error {
	if w.closed {
		return errors.New("zero-width space after close")
	}
	if w.column == 0 {
		return nil
	}
	if w.hasPending {
		if err := w.flush(w.nextFlush); err != nil {
			return err
		}
	}
	w.hasPending = true
	w.nextFlush = flushEmpty
	w.indentLevel = indentLevel
	return nil
}

// Close resolves any pending break point without wrapping. A wrapper that
// is closed mid-line never breaks retroactively.
func (w *lineWrapper) Close() error {
	if w.hasPending {
		if err := w.flush(w.nextFlush); err != nil {
			return err
		}
	}
	w.closed = true
	return nil
}

// flush emits the deferred break point as ft followed by the buffered text.
func (w *lineWrapper) flush(ft flushType) error {
	switch ft {
	case flushWrap:
		if _, err := io.WriteString(w.out, "\n"); err != nil {
			return err
		}
		for i := 0; i < w.indentLevel; i++ {
			if _, err := io.WriteString(w.out, w.indent); err != nil {
				return err
			}
		}
		w.column = w.indentLevel*len(w.indent) + w.buffer.Len()
	case flushSpace:
		if _, err := io.WriteString(w.out, " "); err != nil {
			return err
		}
	case flushEmpty:
	}
	_, err := io.WriteString(w.out, w.buffer.String())
	w.buffer.Reset()
	w.hasPending = false
	return err
}
