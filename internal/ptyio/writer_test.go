package ptyio

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"
)

func TestThreadedWriterDeliversInOrder(t *testing.T) {
	var buf bytes.Buffer
	sink := &syncBuffer{buf: &buf}
	w := NewThreadedWriter(sink)

	n, err := w.Write([]byte("hello "))
	if err != nil || n != 6 {
		t.Fatalf("Write: n=%d err=%v", n, err)
	}
	n, err = w.Write([]byte("world"))
	if err != nil || n != 5 {
		t.Fatalf("Write: n=%d err=%v", n, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if got := sink.String(); got != "hello world" {
		t.Fatalf("got %q, want %q", got, "hello world")
	}
}

func TestThreadedWriterWriteNeverBlocksOnSlowSink(t *testing.T) {
	block := make(chan struct{})
	sink := &blockingWriter{release: block}
	w := NewThreadedWriter(sink)

	done := make(chan struct{})
	go func() {
		_, _ = w.Write([]byte("x"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Write blocked on a slow sink")
	}
	close(block)
	_ = w.Close()
}

func TestThreadedWriterAfterCloseReturnsBrokenPipe(t *testing.T) {
	w := NewThreadedWriter(io.Discard)
	_ = w.Close()

	if _, err := w.Write([]byte("x")); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected broken pipe error after close, got %v", err)
	}
}

func TestDetachableWriterSwapsToNullSink(t *testing.T) {
	var buf bytes.Buffer
	d := NewDetachableWriter(&buf)

	if _, err := d.Write([]byte("a")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	old := d.Detach()
	if _, err := old.Write([]byte("b")); err != nil {
		t.Fatalf("flushing detached sink: %v", err)
	}

	if n, err := d.Write([]byte("discarded")); err != nil || n != len("discarded") {
		t.Fatalf("post-detach write: n=%d err=%v", n, err)
	}

	if got := buf.String(); got != "ab" {
		t.Fatalf("got %q, want %q", got, "ab")
	}
}

func TestDetachableWriterCloneSharesSlot(t *testing.T) {
	var buf bytes.Buffer
	d1 := NewDetachableWriter(&buf)
	d2 := d1.Clone()

	d1.Detach()

	if n, err := d2.Write([]byte("x")); err != nil || n != 1 {
		t.Fatalf("clone write after detach: n=%d err=%v", n, err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected writes through the clone to be discarded after detach, got %q", buf.String())
	}
}

type syncBuffer struct {
	buf *bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) { return s.buf.Write(p) }
func (s *syncBuffer) String() string              { return s.buf.String() }

type blockingWriter struct {
	release chan struct{}
}

func (b *blockingWriter) Write(p []byte) (int, error) {
	<-b.release
	return len(p), nil
}
