package dump

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMainInfo(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game_mainInfo.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write mainInfo: %v", err)
	}
	return path
}

func TestExtractVolumeDescriptorMissingFile(t *testing.T) {
	if block, ok := ExtractVolumeDescriptor(filepath.Join(t.TempDir(), "nope.txt")); ok {
		t.Fatalf("expected absent result, got %q", block)
	}
}

func TestExtractVolumeDescriptorCapturesSixLines(t *testing.T) {
	path := writeMainInfo(t, `noise before
========== LBA[000016, 0x0000010]: Main Channel ==========
0300 ignored row
0310 descriptor starts after this line
line one
line two
line three
line four
line five
line six
line seven should not appear
`)

	block, ok := ExtractVolumeDescriptor(path)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	want := "line one\nline two\nline three\nline four\nline five\nline six\n"
	if block != want {
		t.Fatalf("unexpected block:\n got %q\nwant %q", block, want)
	}
}

func TestExtractVolumeDescriptorMissingAnchor(t *testing.T) {
	path := writeMainInfo(t, `0310 marker without anchor
line one
line two
line three
line four
line five
line six
`)

	if block, ok := ExtractVolumeDescriptor(path); ok {
		t.Fatalf("expected absent result without anchor, got %q", block)
	}
}

func TestExtractVolumeDescriptorTruncatedBlock(t *testing.T) {
	path := writeMainInfo(t, `========== LBA[000016, 0x0000010]: Main Channel ==========
0310 marker
line one
line two
`)

	if block, ok := ExtractVolumeDescriptor(path); ok {
		t.Fatalf("expected absent result on truncated block, got %q", block)
	}
}

func TestExtractVolumeDescriptorMissingMarker(t *testing.T) {
	path := writeMainInfo(t, `========== LBA[000016, 0x0000010]: Main Channel ==========
0300 wrong row only
`)

	if _, ok := ExtractVolumeDescriptor(path); ok {
		t.Fatal("expected absent result without 0310 marker")
	}
}
