package blocks

import (
	"strings"
	"testing"
)

func TestSplit_BasicBlocksAndLineNumbers(t *testing.T) {
	content := "msgid \"\"\nmsgstr \"\"\n\nmsgid \"a\"\nmsgstr \"b\"\n\n\nmsgid \"c\"\nmsgstr \"d\"\n"

	blks := Split(content)
	if len(blks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blks))
	}

	wantStarts := []int{1, 4, 8}
	for i, b := range blks {
		if b.StartLine != wantStarts[i] {
			t.Errorf("block %d: StartLine = %d, want %d", i, b.StartLine, wantStarts[i])
		}
	}
	if blks[1].Text != "msgid \"a\"\nmsgstr \"b\"" {
		t.Fatalf("block 1 text = %q", blks[1].Text)
	}
}

func TestSplit_NeverEmitsEmptyBlocks(t *testing.T) {
	for _, content := range []string{"", "\n", "\n\n\n", "  \n\t\n"} {
		if blks := Split(content); len(blks) != 0 {
			t.Fatalf("Split(%q) = %d blocks, want 0", content, len(blks))
		}
	}
}

func TestSplit_WhitespaceOnlyLineSeparates(t *testing.T) {
	blks := Split("msgid \"a\"\n   \t\nmsgid \"b\"")
	if len(blks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blks))
	}
	if blks[1].StartLine != 3 {
		t.Fatalf("second block StartLine = %d, want 3", blks[1].StartLine)
	}
}

func TestSplit_WindowsLineEndings(t *testing.T) {
	blks := Split("msgid \"a\"\r\nmsgstr \"b\"\r\n\r\nmsgid \"c\"\r\nmsgstr \"d\"\r\n")
	if len(blks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blks))
	}
	if strings.Contains(blks[0].Text, "\r") {
		t.Fatalf("block text still contains carriage returns: %q", blks[0].Text)
	}
	if blks[1].StartLine != 4 {
		t.Fatalf("second block StartLine = %d, want 4", blks[1].StartLine)
	}
}

func TestSplit_LeadingBlankLines(t *testing.T) {
	blks := Split("\n\nmsgid \"a\"\nmsgstr \"b\"")
	if len(blks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blks))
	}
	if blks[0].StartLine != 3 {
		t.Fatalf("StartLine = %d, want 3", blks[0].StartLine)
	}
}

func TestSplit_ReconstructionProperty(t *testing.T) {
	content := "# comment\nmsgid \"a\"\nmsgstr \"b\"\n\nmsgid \"c\"\nmsgstr \"d\""
	blks := Split(content)

	var joined []string
	for _, b := range blks {
		joined = append(joined, b.Text)
	}
	if got := strings.Join(joined, "\n\n"); got != content {
		t.Fatalf("reconstruction mismatch:\ngot  %q\nwant %q", got, content)
	}
}

func TestLines(t *testing.T) {
	b := Block{StartLine: 5, Text: "msgid \"a\"\nmsgstr \"b\""}
	lines := b.Lines()
	if len(lines) != 2 || lines[0] != "msgid \"a\"" || lines[1] != "msgstr \"b\"" {
		t.Fatalf("Lines() = %v", lines)
	}
}
