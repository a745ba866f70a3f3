package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"umdproc/internal/dump"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <basePath>",
		Short: "Verify that a dump's required output files exist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			basePath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve base path: %w", err)
			}
			media := ctx.mediaType()

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			var diagnostic string
			ok := dump.CheckCompleteness(basePath, media, func(missing string) {
				diagnostic = missing
			})
			if ok {
				fmt.Fprintln(out, renderStatusLine("Completeness", statusOK, "all required files present", colorize))
				return nil
			}
			for _, path := range strings.Split(diagnostic, ";") {
				fmt.Fprintln(out, renderStatusLine("Missing", statusError, filepath.Base(path), colorize))
			}
			return fmt.Errorf("dump output incomplete: %s", diagnostic)
		},
	}
	return cmd
}
