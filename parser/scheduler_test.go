package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/minios-linux/pocat/blocks"
)

func makeBlocks(n int) []blocks.Block {
	blks := make([]blocks.Block, 0, n)
	for i := 0; i < n; i++ {
		blks = append(blks, blocks.Block{
			StartLine: i*3 + 1,
			Text:      fmt.Sprintf("msgid \"id %d\"\nmsgstr \"tr %d\"", i, i),
		})
	}
	return blks
}

func TestRun_SequentialOrder(t *testing.T) {
	blks := makeBlocks(10)
	col := &Collector{}

	msgs, err := Run(blks, &fakeSink{plurals: 2}, col, Options{})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(msgs) != 10 {
		t.Fatalf("got %d messages, want 10", len(msgs))
	}
	for i, m := range msgs {
		if want := fmt.Sprintf("id %d", i); m.ID != want {
			t.Fatalf("message %d: ID = %q, want %q", i, m.ID, want)
		}
	}
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	blks := makeBlocks(57)

	seq, err := Run(blks, &fakeSink{plurals: 2}, &Collector{}, Options{})
	if err != nil {
		t.Fatalf("sequential Run error: %v", err)
	}

	for _, divisor := range []int{1, 2, 3} {
		par, err := Run(blks, &fakeSink{plurals: 2}, &Collector{},
			Options{Parallel: true, BatchDivisor: divisor})
		if err != nil {
			t.Fatalf("parallel Run (divisor %d) error: %v", divisor, err)
		}
		if len(par) != len(seq) {
			t.Fatalf("divisor %d: got %d messages, want %d", divisor, len(par), len(seq))
		}
		for i := range seq {
			if par[i].ID != seq[i].ID || par[i].Line != seq[i].Line {
				t.Fatalf("divisor %d: message %d differs: %q/%d vs %q/%d",
					divisor, i, par[i].ID, par[i].Line, seq[i].ID, seq[i].Line)
			}
		}
	}
}

func TestRun_AbortOnInvalid(t *testing.T) {
	blks := makeBlocks(5)
	blks[2].Text = "msgid \"broken\""

	for _, parallel := range []bool{false, true} {
		col := &Collector{}
		msgs, err := Run(blks, &fakeSink{plurals: 2}, col,
			Options{Parallel: parallel, AbortOnInvalid: true})
		if err == nil {
			t.Fatalf("parallel=%v: expected abort error", parallel)
		}
		if msgs != nil {
			t.Fatalf("parallel=%v: expected no messages on abort, got %d", parallel, len(msgs))
		}
		if !strings.Contains(err.Error(), "no msgstr") {
			t.Fatalf("parallel=%v: unexpected error: %v", parallel, err)
		}
		if col.Len() != 0 {
			t.Fatalf("parallel=%v: abort must not fill the collector, got %d", parallel, col.Len())
		}
	}
}

func TestRun_ContinueCollectsAndSkips(t *testing.T) {
	blks := makeBlocks(6)
	blks[1].Text = "msgid \"broken one\""
	blks[4].Text = "garbage"

	for _, parallel := range []bool{false, true} {
		col := &Collector{}
		msgs, err := Run(blks, &fakeSink{plurals: 2}, col, Options{Parallel: parallel})
		if err != nil {
			t.Fatalf("parallel=%v: Run error: %v", parallel, err)
		}
		if len(msgs) != 4 {
			t.Fatalf("parallel=%v: got %d messages, want 4", parallel, len(msgs))
		}
		if col.Len() != 2 {
			t.Fatalf("parallel=%v: collected %d errors, want 2", parallel, col.Len())
		}
	}
}

func TestRun_EmptyInput(t *testing.T) {
	msgs, err := Run(nil, &fakeSink{plurals: 2}, &Collector{}, Options{})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if msgs != nil {
		t.Fatalf("expected nil messages, got %v", msgs)
	}
}

func TestSplitBatches(t *testing.T) {
	blks := makeBlocks(10)

	cases := []struct {
		n    int
		want []int
	}{
		{1, []int{10}},
		{3, []int{4, 3, 3}},
		{10, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
	}
	for _, tc := range cases {
		batches := splitBatches(blks, tc.n)
		if len(batches) != len(tc.want) {
			t.Fatalf("n=%d: got %d batches, want %d", tc.n, len(batches), len(tc.want))
		}
		total := 0
		for i, b := range batches {
			if len(b) != tc.want[i] {
				t.Fatalf("n=%d: batch %d has %d blocks, want %d", tc.n, i, len(b), tc.want[i])
			}
			total += len(b)
		}
		if total != len(blks) {
			t.Fatalf("n=%d: batches cover %d blocks, want %d", tc.n, total, len(blks))
		}
	}

	// Contiguity: concatenated batches reproduce the input order.
	idx := 0
	for _, batch := range splitBatches(blks, 3) {
		for _, b := range batch {
			if b.StartLine != blks[idx].StartLine {
				t.Fatalf("batch order broken at block %d", idx)
			}
			idx++
		}
	}
}

func TestBatchCount_CappedByBlocks(t *testing.T) {
	if got := batchCount(1, 2); got != 1 {
		t.Fatalf("batchCount(1, 2) = %d, want 1", got)
	}
	if got := batchCount(0, 2); got != 0 {
		t.Fatalf("batchCount(0, 2) = %d, want 0", got)
	}
}

func TestSortByLine_ZeroLinesFirst(t *testing.T) {
	blks := []blocks.Block{
		{StartLine: 10, Text: "msgid \"late\"\nmsgstr \"x\""},
		{StartLine: 1, Text: "#, fuzzy\nmsgid \"early\"\nmsgstr \"y\""},
	}
	msgs, err := Run(blks, &fakeSink{plurals: 2}, &Collector{}, Options{})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if msgs[0].ID != "early" || msgs[1].ID != "late" {
		t.Fatalf("order = %q, %q", msgs[0].ID, msgs[1].ID)
	}
}
