package dump

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDiscLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game_disc.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write disc log: %v", err)
	}
	return path
}

func TestExtractAuxInfoSingleLayer(t *testing.T) {
	path := writeDiscLog(t, `TITLE: Foo
DISC_VERSION 1.00
pspUmdTypes 1
L0 length 100
FileSize: 204800
`)

	info, ok := ExtractAuxInfo(path)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if info.Title != "Foo" {
		t.Fatalf("unexpected title: %q", info.Title)
	}
	if info.Version != "1.00" {
		t.Fatalf("unexpected version: %q", info.Version)
	}
	if !info.HasCategory || info.Category != CategoryGames {
		t.Fatalf("unexpected category: %v (present %v)", info.Category, info.HasCategory)
	}
	if info.SizeBytes != 204800 {
		t.Fatalf("unexpected size: %d", info.SizeBytes)
	}
	// 100 sectors * 2048 equals the file size, so the break coincides with
	// the end of the image.
	if info.HasLayerbreak {
		t.Fatalf("expected no layer break, got %d", info.Layerbreak)
	}
}

func TestExtractAuxInfoDualLayer(t *testing.T) {
	path := writeDiscLog(t, `TITLE: Foo
DISC_VERSION 1.00
pspUmdTypes 1
L0 length 100
FileSize: 500000
`)

	info, ok := ExtractAuxInfo(path)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if !info.HasLayerbreak || info.Layerbreak != 100 {
		t.Fatalf("expected layer break 100, got %d (present %v)", info.Layerbreak, info.HasLayerbreak)
	}
}

func TestExtractAuxInfoFirstWinsVersusLastWins(t *testing.T) {
	path := writeDiscLog(t, `TITLE: First Title
TITLE: Second Title
DISC_VERSION 1.00
DISC_VERSION 2.00
pspUmdTypes 1
pspUmdTypes 2
L0 length 50
L0 length 100
FileSize: 102400
FileSize: 500000
`)

	info, ok := ExtractAuxInfo(path)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if info.Title != "First Title" {
		t.Fatalf("expected first title to win, got %q", info.Title)
	}
	if info.Version != "1.00" {
		t.Fatalf("expected first version to win, got %q", info.Version)
	}
	if info.Category != CategoryVideo {
		t.Fatalf("expected last category to win, got %v", info.Category)
	}
	if info.SizeBytes != 500000 {
		t.Fatalf("expected last size to win, got %d", info.SizeBytes)
	}
	if !info.HasLayerbreak || info.Layerbreak != 100 {
		t.Fatalf("expected last layer value to win, got %d", info.Layerbreak)
	}
}

func TestExtractAuxInfoMissingFile(t *testing.T) {
	info, ok := ExtractAuxInfo(filepath.Join(t.TempDir(), "absent_disc.txt"))
	if ok {
		t.Fatal("expected failure for missing file")
	}
	if info.SizeBytes != -1 {
		t.Fatalf("expected unknown size sentinel, got %d", info.SizeBytes)
	}
}

func TestExtractAuxInfoAllOrNothingOnParseError(t *testing.T) {
	path := writeDiscLog(t, `TITLE: Foo
DISC_VERSION 1.00
L0 length not-a-number
FileSize: 204800
`)

	info, ok := ExtractAuxInfo(path)
	if ok {
		t.Fatal("expected failure on malformed layer line")
	}
	if info.Title != "" || info.Version != "" {
		t.Fatalf("expected partial captures to be discarded, got %+v", info)
	}
}

func TestExtractAuxInfoFailsWithoutLayerLine(t *testing.T) {
	path := writeDiscLog(t, `TITLE: Foo
DISC_VERSION 1.00
pspUmdTypes 1
FileSize: 204800
`)

	if _, ok := ExtractAuxInfo(path); ok {
		t.Fatal("expected failure when L0 length never appears")
	}
}

func TestExtractAuxInfoUnknownCategoryCode(t *testing.T) {
	path := writeDiscLog(t, `pspUmdTypes 9
L0 length 100
FileSize: 500000
`)

	info, ok := ExtractAuxInfo(path)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if info.Category != CategoryUnknown {
		t.Fatalf("expected unknown category, got %v", info.Category)
	}
}
