package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"umdproc/internal/queue"
)

func newQueueCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect the processed-dump database",
	}
	cmd.AddCommand(newQueueListCommand(ctx))
	cmd.AddCommand(newQueueShowCommand(ctx))
	cmd.AddCommand(newQueueClearCommand(ctx))
	return cmd
}

func (c *commandContext) withStore(fn func(*queue.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := queue.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func newQueueListCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List processed dumps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *queue.Store) error {
				records, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if jsonFlag {
					return printJSON(cmd.OutOrStdout(), records)
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no processed dumps")
					return nil
				}
				rows := make([][]string, 0, len(records))
				for _, record := range records {
					rows = append(rows, []string{
						strconv.FormatInt(record.ID, 10),
						record.Title,
						record.Category,
						record.Version,
						yesNo(record.Complete),
						strconv.FormatInt(record.SizeBytes, 10),
						record.UpdatedAt.Format("2006-01-02 15:04"),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Title", "Category", "Version", "Complete", "Size", "Updated"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit records as JSON")
	return cmd
}

func newQueueShowCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one processed dump in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			return ctx.withStore(func(store *queue.Store) error {
				record, err := store.Get(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("load record %d: %w", id, err)
				}
				if jsonFlag {
					return printJSON(cmd.OutOrStdout(), record)
				}
				rows := [][]string{
					{"ID", strconv.FormatInt(record.ID, 10)},
					{"Run", record.RunID},
					{"Base path", record.BasePath},
					{"Media", record.Media},
					{"Complete", yesNo(record.Complete)},
					{"Missing", record.Missing},
					{"Title", record.Title},
					{"Category", record.Category},
					{"Version", record.Version},
					{"Layer break", nullableInt(record.Layerbreak.Valid, record.Layerbreak.Int64)},
					{"Size (bytes)", strconv.FormatInt(record.SizeBytes, 10)},
					{"Artifacts", strconv.Itoa(record.ArtifactCount)},
					{"Updated", record.UpdatedAt.Format("2006-01-02 15:04:05")},
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Field", "Value"}, rows,
					[]columnAlignment{alignLeft, alignLeft},
				))
				if record.VolumeDescriptor != "" {
					fmt.Fprintln(cmd.OutOrStdout(), "Volume descriptor:")
					fmt.Fprint(cmd.OutOrStdout(), record.VolumeDescriptor)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the record as JSON")
	return cmd
}

func newQueueClearCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every processed-dump record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *queue.Store) error {
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "queue cleared")
				return nil
			})
		},
	}
	return cmd
}

func nullableInt(valid bool, value int64) string {
	if !valid {
		return "none"
	}
	return strconv.FormatInt(value, 10)
}
