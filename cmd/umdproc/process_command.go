package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"umdproc/internal/dump"
	"umdproc/internal/fileutil"
	"umdproc/internal/identify"
	"umdproc/internal/imagefile"
	"umdproc/internal/logging"
	"umdproc/internal/queue"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool
	var exportFlag bool
	var digestsFlag bool

	cmd := &cobra.Command{
		Use:   "process <basePath>",
		Short: "Validate a dump, extract metadata, and record the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			basePath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve base path: %w", err)
			}
			media := ctx.mediaType()

			report := dump.Process(basePath, media)
			if !report.Complete {
				logger.Warn("dump output incomplete", "component", "process",
					"base_path", basePath, "missing", len(report.Missing))
			}

			info := dump.SubmissionInfo{}
			dump.Merge(&info, report)
			if info.Title == "" && media == dump.MediaUMD {
				info.Title = identify.DeriveTitle(basePath)
			}

			var digests *imagefile.Digests
			if digestsFlag || cfg.Processing.ComputeDigests {
				if d, err := imagefile.Digest(basePath + ".iso"); err == nil {
					digests = &d
				} else {
					logger.Warn("digest computation failed", "component", "process", "error", err)
				}
			}

			store, err := queue.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			record, err := store.Record(cmd.Context(), report)
			if err != nil {
				return err
			}
			logger.Info("dump recorded", "component", "process",
				"base_path", basePath, "run_id", record.RunID, "complete", record.Complete)

			if exportFlag {
				if err := exportArtifacts(cfg.Paths.ExportDir, basePath); err != nil {
					return err
				}
			}

			if jsonFlag {
				return printJSON(cmd.OutOrStdout(), processOutput{
					Report:  report,
					Info:    info,
					Digests: digests,
					RunID:   record.RunID,
				})
			}
			renderProcessReport(cmd.OutOrStdout(), report, info, digests)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the full report as JSON")
	cmd.Flags().BoolVar(&exportFlag, "export", false, "Copy log artifacts into the export directory")
	cmd.Flags().BoolVar(&digestsFlag, "digests", false, "Compute CRC32/MD5/SHA-1 of the disc image")
	return cmd
}

type processOutput struct {
	Report  dump.Report         `json:"report"`
	Info    dump.SubmissionInfo `json:"info"`
	Digests *imagefile.Digests  `json:"digests,omitempty"`
	RunID   string              `json:"run_id"`
}

// exportArtifacts copies every present log file next to basePath into
// destDir with integrity verification.
func exportArtifacts(destDir, basePath string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	for _, suffix := range []string{"_disc.txt", "_mainError.txt", "_mainInfo.txt", "_volDesc.txt"} {
		src := basePath + suffix
		if !fileutil.FileExists(src) {
			continue
		}
		dst := filepath.Join(destDir, filepath.Base(src))
		if err := fileutil.CopyFileVerified(src, dst); err != nil {
			return fmt.Errorf("export %s: %w", filepath.Base(src), err)
		}
	}
	return nil
}

func renderProcessReport(out io.Writer, report dump.Report, info dump.SubmissionInfo, digests *imagefile.Digests) {
	rows := [][]string{
		{"Base path", report.BasePath},
		{"Media", string(report.Media)},
		{"Complete", yesNo(report.Complete)},
		{"Title", info.Title},
		{"Category", string(info.Category)},
		{"Version", info.Version},
		{"Size (bytes)", strconv.FormatInt(info.SizeBytes, 10)},
		{"Layer break", layerbreakText(info.Layerbreak)},
		{"Artifacts", strconv.Itoa(len(report.Artifacts))},
	}
	if digests != nil {
		rows = append(rows,
			[]string{"CRC32", digests.CRC32},
			[]string{"MD5", digests.MD5},
			[]string{"SHA-1", digests.SHA1},
		)
	}
	fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}))
}

func layerbreakText(value *int64) string {
	if value == nil {
		return "none (single layer)"
	}
	return strconv.FormatInt(*value, 10)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
