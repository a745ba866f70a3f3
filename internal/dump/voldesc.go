package dump

import (
	"bufio"
	"os"
	"strings"
)

const (
	// volumeDescriptorAnchor marks the sector dump of LBA 16, where the
	// ISO9660 primary volume descriptor lives.
	volumeDescriptorAnchor = "========== LBA[000016, 0x0000010]: Main Channel =========="
	// volumeDescriptorMarker is the hex-dump row offset at which the
	// descriptor text of interest begins.
	volumeDescriptorMarker = "0310"
	volumeDescriptorLines  = 6
)

// ExtractVolumeDescriptor scans the _mainInfo.txt log for the primary volume
// descriptor block: the LBA 16 anchor line, then the 0310 offset row, then
// exactly six following lines captured verbatim with trailing newlines.
//
// A missing file, a read error, or end of input before the block completes
// all report false; the result is never partial.
func ExtractVolumeDescriptor(path string) (string, bool) {
	file, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanToPrefix(scanner, volumeDescriptorAnchor) {
		return "", false
	}
	if !scanToPrefix(scanner, volumeDescriptorMarker) {
		return "", false
	}

	var block strings.Builder
	for i := 0; i < volumeDescriptorLines; i++ {
		if !scanner.Scan() {
			return "", false
		}
		block.WriteString(scanner.Text())
		block.WriteByte('\n')
	}
	return block.String(), true
}

func scanToPrefix(scanner *bufio.Scanner, prefix string) bool {
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), prefix) {
			return true
		}
	}
	return false
}
