package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/h0rv/shelf/internal/card"
	"github.com/h0rv/shelf/internal/domain"
	"github.com/spf13/cobra"
)

// newLibrariesCmd lists the catalog's libraries without starting the TUI.
func newLibrariesCmd() *cobra.Command {
	var items int

	cmd := &cobra.Command{
		Use:   "libraries",
		Short: "List the catalog's libraries and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			source, err := openCatalog(cfg, logger)
			if err != nil {
				return err
			}

			ctx := context.Background()
			libraries, err := source.Libraries(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch libraries: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Libraries (%d):\n", len(libraries))
			for _, lib := range libraries {
				fmt.Fprintf(out, "  %s (ID=%s, type=%s)\n", lib.Name, lib.ID, lib.CollectionType)
				if items <= 0 {
					continue
				}

				page, _, more, err := source.Items(ctx, lib.ID, "", items)
				if err != nil {
					return fmt.Errorf("failed to fetch items of %s: %w", lib.Name, err)
				}
				for _, item := range page {
					fmt.Fprintf(out, "    - %s\n", describe(item))
				}
				if more {
					fmt.Fprintln(out, "    ...")
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&items, "items", 0, "Also list the first N items of each library.")
	return cmd
}

// describe renders an item with the badges the grid would show.
func describe(item domain.Item) string {
	var parts []string
	for _, l := range []card.Label{
		card.YearLabel(item.ProductionYear),
		card.DurationLabel(item.RunTimeTicks),
	} {
		if l.Visible {
			parts = append(parts, l.Text)
		}
	}
	if w := card.WatchedState(item.Played, item.UnplayedItemCount); w.CheckVisible {
		parts = append(parts, "watched")
	}

	if len(parts) == 0 {
		return item.Name
	}
	return fmt.Sprintf("%s (%s)", item.Name, strings.Join(parts, ", "))
}
