// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-doc-archive/models"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newHistoryCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently viewed documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := a.services.HistoryService.List(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), items, func(w io.Writer) error {
				return printHistory(w, items, time.Now())
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget all recently viewed documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.services.HistoryService.Clear(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
			return err
		},
	})
	return cmd
}

func printHistory(w io.Writer, items []models.HistoryItem, now time.Time) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "nothing opened yet")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tDETAILS\tVIEWED\tPATH")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", item.Title, item.Subtitle, humanize.RelTime(item.Time, now, "ago", "from now"), item.FileURI)
	}
	return tw.Flush()
}
