// Package ptyio drives a child process under a pseudo-terminal: opening
// the master/slave pair, spawning the command on the slave, and exposing
// a buffered reader plus a detachable, non-blocking writer back to the
// master for reply traffic (cursor position reports, color queries).
package ptyio

import (
	"bufio"
	"context"
	"errors"
	"os"
	"os/exec"
	"sync/atomic"
	"time"

	"github.com/creack/pty"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/lhenry-dev/shellshot-go/internal/shellshoterr"
)

// Pair is an opened PTY master/slave pair, sized at open time. The spec's
// resize renegotiation is explicitly out of scope: size is fixed for the
// life of the pair.
type Pair struct {
	Master *os.File
	Slave  *os.File
	Cols   uint16
	Rows   uint16
}

// Open allocates a new PTY pair at the given dimensions.
func Open(cols, rows uint16) (*Pair, error) {
	master, slave, err := pty.Open()
	if err != nil {
		return nil, shellshoterr.Wrap(shellshoterr.ErrPtyOpen, "pty.Open", err)
	}
	if err := pty.Setsize(master, &pty.Winsize{Cols: cols, Rows: rows}); err != nil {
		_ = master.Close()
		_ = slave.Close()
		return nil, shellshoterr.Wrap(shellshoterr.ErrPtyOpen, "setting initial size", err)
	}
	return &Pair{Master: master, Slave: slave, Cols: cols, Rows: rows}, nil
}

// Close releases both halves of the pair. Safe to call after Spawn, once
// the slave has been handed to the child and the master reader/writer have
// been detached.
func (p *Pair) Close() error {
	slaveErr := p.Slave.Close()
	if errors.Is(slaveErr, os.ErrClosed) {
		// Spawn already closed this process's copy of the slave.
		slaveErr = nil
	}
	return multierr.Combine(p.Master.Close(), slaveErr)
}

// Killer is a handle that can terminate the spawned child from a thread
// other than the one that owns Child, used by the timeout watchdog.
type Killer interface {
	Kill() error
}

// Child wraps the spawned *exec.Cmd together with the streams the caller
// reads terminal output from and writes replies through.
type Child struct {
	cmd    *exec.Cmd
	killer Killer
	Reader *bufio.Reader
	Writer *DetachableWriter
}

type processKiller struct {
	proc *os.Process
}

func (k processKiller) Kill() error {
	if k.proc == nil {
		return nil
	}
	return k.proc.Kill()
}

// Spawn starts argv[0] with argv[1:] as arguments on the slave half of
// pair, then closes the caller's reference to the slave (the child keeps
// its own). It returns a buffered reader cloned from the master and a
// detachable writer wrapping the master, plus a Killer usable from a
// separate watchdog goroutine.
func Spawn(pair *Pair, argv []string) (*Child, error) {
	if len(argv) == 0 {
		return nil, shellshoterr.New(shellshoterr.ErrSpawnChild, "argv must not be empty")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = pair.Slave
	cmd.Stdout = pair.Slave
	cmd.Stderr = pair.Slave
	cmd.SysProcAttr = sysProcAttr()

	if cmd.Dir == "" {
		cmd.Dir = "."
	}

	if err := cmd.Start(); err != nil {
		return nil, shellshoterr.Wrap(shellshoterr.ErrSpawnChild, argv[0], err)
	}
	_ = pair.Slave.Close()

	reader := bufio.NewReader(pair.Master)
	writer := NewDetachableWriter(NewThreadedWriter(bufio.NewWriter(pair.Master)))

	return &Child{
		cmd:    cmd,
		killer: processKiller{proc: cmd.Process},
		Reader: reader,
		Writer: writer,
	}, nil
}

// Killer returns the handle used to forcibly terminate the child.
func (c *Child) Killer() Killer {
	return c.killer
}

// Wait blocks until the child exits and returns its exit status.
func (c *Child) Wait() (*os.ProcessState, error) {
	err := c.cmd.Wait()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return c.cmd.ProcessState, nil
		}
		return c.cmd.ProcessState, shellshoterr.Wrap(shellshoterr.ErrIO, "waiting for child", err)
	}
	return c.cmd.ProcessState, nil
}

// RunWithTimeout runs body (the dispatch loop). If timeout is zero or
// negative, body runs on the calling goroutine with no time limit.
// Otherwise body runs on its own goroutine while the caller waits, and a
// watchdog goroutine sleeps for timeout and, if body has not finished
// first, best effort kills the child; body is expected to observe the
// resulting EOF and return. The watchdog stops as soon as body returns.
// Either way RunWithTimeout waits for the watchdog to settle before
// returning, so callers never race its kill call.
func RunWithTimeout(ctx context.Context, child *Child, timeout time.Duration, body func(context.Context) error) error {
	if timeout <= 0 {
		return body(ctx)
	}

	var finished atomic.Bool
	var timedOut atomic.Bool
	bodyDone := make(chan struct{})

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer close(bodyDone)
		defer finished.Store(true)
		return body(gctx)
	})
	group.Go(func() error {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case <-timer.C:
			if !finished.Load() {
				timedOut.Store(true)
				_ = child.Killer().Kill()
			}
			return nil
		case <-bodyDone:
			return nil
		case <-gctx.Done():
			return nil
		}
	})

	err := group.Wait()
	if timedOut.Load() {
		return shellshoterr.New(shellshoterr.ErrTimeout, timeout.String())
	}
	if err != nil {
		return shellshoterr.Wrap(shellshoterr.ErrThreadJoin, "dispatch loop", err)
	}
	return nil
}

// Shutdown performs the fixed teardown order: detach the writer and flush
// the previous sink exactly once, then close the pair. It does not wait
// for the child; callers must have already observed Wait() returning.
func Shutdown(pair *Pair, child *Child) error {
	old := child.Writer.Detach()
	var flushErr error
	if f, ok := old.(*ThreadedWriter); ok {
		flushErr = f.Close()
	} else if f, ok := old.(interface{ Flush() error }); ok {
		flushErr = f.Flush()
	}
	return multierr.Combine(flushErr, pair.Close())
}
