package ptyio

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lhenry-dev/shellshot-go/internal/shellshoterr"
)

func TestSpawnRejectsEmptyArgv(t *testing.T) {
	pair, err := Open(80, 24)
	if err != nil {
		t.Skipf("pty unavailable in this environment: %v", err)
	}
	defer pair.Close()

	if _, err := Spawn(pair, nil); !errors.Is(err, shellshoterr.ErrSpawnChild) {
		t.Fatalf("expected ErrSpawnChild, got %v", err)
	}
}

func TestRunCommandBasic(t *testing.T) {
	pair, err := Open(80, 24)
	if err != nil {
		t.Skipf("pty unavailable in this environment: %v", err)
	}

	child, err := Spawn(pair, []string{"sh", "-c", "echo Hello World"})
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	var out bytes.Buffer
	ctx := context.Background()
	err = RunWithTimeout(ctx, child, 0, func(context.Context) error {
		buf := make([]byte, 4096)
		for {
			n, rerr := child.Reader.Read(buf)
			out.Write(buf[:n])
			if rerr != nil {
				return nil
			}
		}
	})
	if err != nil {
		t.Fatalf("RunWithTimeout: %v", err)
	}

	if _, err := child.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if err := Shutdown(pair, child); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	if !bytes.Contains(out.Bytes(), []byte("Hello World")) {
		t.Fatalf("expected output to contain %q, got %q", "Hello World", out.String())
	}
}

func TestRunWithTimeoutKillsSlowChild(t *testing.T) {
	pair, err := Open(80, 24)
	if err != nil {
		t.Skipf("pty unavailable in this environment: %v", err)
	}

	child, err := Spawn(pair, []string{"sh", "-c", "sleep 5"})
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	ctx := context.Background()
	err = RunWithTimeout(ctx, child, 50*time.Millisecond, func(context.Context) error {
		buf := make([]byte, 1)
		for {
			if _, rerr := child.Reader.Read(buf); rerr != nil {
				return nil
			}
		}
	})

	if !errors.Is(err, shellshoterr.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}

	_, _ = child.Wait()
	_ = Shutdown(pair, child)
}
