package dump

import (
	"strings"

	"umdproc/internal/fileutil"
)

// requiredSuffixes lists the log files the imaging tool writes for a UMD
// dump, in the order completeness failures are reported.
var requiredSuffixes = []string{
	"_disc.txt",
	"_mainError.txt",
	"_mainInfo.txt",
	"_volDesc.txt",
}

// Result is the outcome of a completeness check. Missing holds the full
// filenames of absent logs in the fixed check order.
type Result struct {
	OK      bool
	Missing []string
}

// Completeness probes whether every log file the tool should have written
// next to basePath exists. Media types other than UMD produce no mandatory
// logs, so they pass unconditionally.
func Completeness(basePath string, media MediaType) Result {
	if media != MediaUMD {
		return Result{OK: true}
	}
	var missing []string
	for _, suffix := range requiredSuffixes {
		path := basePath + suffix
		if !fileutil.FileExists(path) {
			missing = append(missing, path)
		}
	}
	return Result{OK: len(missing) == 0, Missing: missing}
}

// CheckCompleteness reports whether the dump output set is complete. On
// failure the optional report callback receives a single diagnostic line of
// all missing filenames joined by ";"; it is never invoked on success.
func CheckCompleteness(basePath string, media MediaType, report func(string)) bool {
	result := Completeness(basePath, media)
	if !result.OK && report != nil {
		report(strings.Join(result.Missing, ";"))
	}
	return result.OK
}
