package dump

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Field prefixes emitted by the imaging tool in _disc.txt.
const (
	auxTitlePrefix    = "TITLE"
	auxVersionPrefix  = "DISC_VERSION"
	auxCategoryPrefix = "pspUmdTypes"
	auxLayerPrefix    = "L0 length"
	auxSizePrefix     = "FileSize:"
)

// auxTitleOffset is the cut point for title capture: everything after
// "TITLE: " on the line.
const auxTitleOffset = len(auxTitlePrefix) + 2

// sectorSize is the logical block size of a UMD image.
const sectorSize = 2048

// Internal failure classes. The exported surface collapses both to "not
// found", but keeping them distinct makes the degradation points auditable.
var (
	errLogMissing   = errors.New("disc log missing")
	errLogMalformed = errors.New("disc log malformed")
)

// ExtractAuxInfo mines title, version, category, layer break, and image size
// from the _disc.txt log in a single forward pass over trimmed lines.
//
// Title and version keep their first occurrence; category, layer break, and
// size are overwritten on every match because the tool refines those lines
// as the dump progresses. After the scan, a layer break whose sector count
// times 2048 equals the reported file size is discarded: the break coincides
// with the end of the image, so the disc is single layer.
//
// Extraction is all or nothing. A missing file, a malformed line, or a scan
// that never saw the L0 length line reports ok=false with every field
// discarded.
func ExtractAuxInfo(path string) (AuxInfo, bool) {
	info, err := extractAuxInfo(path)
	if err != nil {
		return AuxInfo{SizeBytes: -1}, false
	}
	return info, true
}

func extractAuxInfo(path string) (AuxInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return AuxInfo{}, fmt.Errorf("%w: %v", errLogMissing, err)
	}
	defer file.Close()

	info := AuxInfo{SizeBytes: -1}
	var (
		layerRaw int64
		layerSet bool
	)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, auxTitlePrefix):
			if info.Title != "" {
				continue
			}
			if len(line) < auxTitleOffset {
				return AuxInfo{}, fmt.Errorf("%w: short title line %q", errLogMalformed, line)
			}
			info.Title = line[auxTitleOffset:]
		case strings.HasPrefix(line, auxVersionPrefix):
			if info.Version != "" {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return AuxInfo{}, fmt.Errorf("%w: version line %q", errLogMalformed, line)
			}
			info.Version = fields[1]
		case strings.HasPrefix(line, auxCategoryPrefix):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return AuxInfo{}, fmt.Errorf("%w: category line %q", errLogMalformed, line)
			}
			info.Category = LookupCategory(fields[1])
			info.HasCategory = true
		case strings.HasPrefix(line, auxLayerPrefix):
			fields := strings.Fields(line)
			if len(fields) < 3 {
				return AuxInfo{}, fmt.Errorf("%w: layer line %q", errLogMalformed, line)
			}
			value, parseErr := strconv.ParseInt(fields[2], 10, 64)
			if parseErr != nil {
				return AuxInfo{}, fmt.Errorf("%w: layer sectors %q", errLogMalformed, fields[2])
			}
			layerRaw = value
			layerSet = true
		case strings.HasPrefix(line, auxSizePrefix):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return AuxInfo{}, fmt.Errorf("%w: size line %q", errLogMalformed, line)
			}
			value, parseErr := strconv.ParseInt(fields[1], 10, 64)
			if parseErr != nil {
				return AuxInfo{}, fmt.Errorf("%w: size %q", errLogMalformed, fields[1])
			}
			info.SizeBytes = value
		}
	}
	if err := scanner.Err(); err != nil {
		return AuxInfo{}, fmt.Errorf("%w: %v", errLogMalformed, err)
	}

	// The layer comparison needs a captured L0 length; a log without one is
	// treated the same as any other parse failure.
	if !layerSet {
		return AuxInfo{}, fmt.Errorf("%w: no L0 length line", errLogMalformed)
	}
	if layerRaw*sectorSize != info.SizeBytes {
		info.Layerbreak = layerRaw
		info.HasLayerbreak = true
	}
	return info, nil
}
