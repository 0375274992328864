package action

import (
	"reflect"
	"testing"
)

// parseAll feeds chunks through a fresh Parser one at a time (Flush after
// the last one, matching how internal/builder drains a reader) and
// returns the concatenated action sequence.
func parseAll(chunks ...[]byte) []TerminalAction {
	p := NewParser()
	var actions []TerminalAction
	for _, chunk := range chunks {
		p.Parse(chunk, &actions)
	}
	p.Flush(&actions)
	return actions
}

// TestParseSplitChunksMatchSingleChunk exercises spec.md §8's round-trip
// property: parsing a byte stream in one slice vs. split across arbitrary
// boundaries — including mid-CSI, mid-OSC, and mid-printable-run splits —
// must yield identical action sequences.
func TestParseSplitChunksMatchSingleChunk(t *testing.T) {
	stream := []byte("Hello\x1b[1;31mWorld\x1b]10;#102030\x1b\\\x1b[5C\r\n")

	want := parseAll(stream)
	if len(want) == 0 {
		t.Fatalf("expected at least one action from the reference parse")
	}

	// Every chunk size from 1 (one byte at a time, splitting every
	// multi-byte sequence at every possible boundary) up through the full
	// length (a single chunk) must reassemble into the same actions.
	for chunkSize := 1; chunkSize <= len(stream); chunkSize++ {
		var chunks [][]byte
		for start := 0; start < len(stream); start += chunkSize {
			end := start + chunkSize
			if end > len(stream) {
				end = len(stream)
			}
			chunks = append(chunks, stream[start:end])
		}
		got := parseAll(chunks...)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("chunk size %d produced %+v, want %+v", chunkSize, got, want)
		}
	}
}

// TestParseEscReverseIndexReachesControlRI is the regression test for the
// ESC M (Reverse Index) byte-stream path: nothing upstream of EscDispatch
// classifies a bare ESC sequence, so this is the only place confirming
// action.ControlRI is actually reachable from real terminal output rather
// than only from a direct internal/termscreen unit test.
func TestParseEscReverseIndexReachesControlRI(t *testing.T) {
	actions := parseAll([]byte("\x1bM"))
	if len(actions) != 1 || actions[0].Kind != KindControl || actions[0].Control != ControlRI {
		t.Fatalf("got %+v, want a single Control(ControlRI) action", actions)
	}
}

// TestParseEscOtherStaysIgnored confirms only ESC M carries behavior;
// every other bare ESC sequence still collapses to Ignored.
func TestParseEscOtherStaysIgnored(t *testing.T) {
	actions := parseAll([]byte("\x1b7"))
	if len(actions) != 1 || actions[0].Kind != KindIgnored {
		t.Fatalf("got %+v, want a single Ignored action", actions)
	}
}
