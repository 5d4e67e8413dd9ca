package bfvm

import (
	"bufio"
	"io"
	"strings"
)

type Sink interface {
	WriteChar(c rune) error
}

type SinkFunc func(rune) error

var _ Sink = SinkFunc(nil)

func (s SinkFunc) WriteChar(c rune) error {
	return s(c)
}

var Discard Sink = SinkFunc(func(rune) error {
	return nil
})

type WriterSink struct {
	w *bufio.Writer
}

var _ Sink = new(WriterSink)

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{
		w: bufio.NewWriter(w),
	}
}

// WriteChar encodes c as UTF-8, so codes above 0x7f take two bytes.
func (s *WriterSink) WriteChar(c rune) error {
	_, err := s.w.WriteRune(c)
	return err
}

func (s *WriterSink) Flush() error {
	return s.w.Flush()
}

type Collector struct {
	builder strings.Builder
	Count   int
}

var _ Sink = new(Collector)

func (c *Collector) WriteChar(r rune) error {
	c.builder.WriteRune(r)
	c.Count++
	return nil
}

func (c *Collector) String() string {
	return c.builder.String()
}

func (c *Collector) Reset() {
	c.builder.Reset()
	c.Count = 0
}
