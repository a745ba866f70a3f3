// Package dump validates and mines the text logs produced by the external
// UMD imaging tool.
//
// The tool writes a fixed set of files next to the disc image, all named by
// appending a suffix to the base path it was invoked with. This package
// checks that set for completeness, scans the logs for the known metadata
// markers (title, version, category, layer break, volume descriptor), and
// gathers the raw logs as encoded artifacts for archival.
//
// Extraction is best effort: the tool's log format is not stable across
// versions, so a missing file or an unrecognizable line degrades to "field
// not found" rather than an error. Callers that need a firm guarantee should
// combine results with CheckCompleteness.
package dump
