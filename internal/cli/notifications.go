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

func newNotificationsCommand(a *app) *cobra.Command {
	var unreadOnly bool

	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notif"},
		Short:   "Show in-app notifications",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := a.services.NotificationService.List(cmd.Context())
			if err != nil {
				return err
			}
			if unreadOnly {
				unread := make([]models.NotificationItem, 0, len(items))
				for _, n := range items {
					if !n.IsRead {
						unread = append(unread, n)
					}
				}
				items = unread
			}
			return a.print(cmd.OutOrStdout(), items, func(w io.Writer) error {
				return printNotifications(w, items, time.Now())
			})
		},
	}
	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "Only unread notifications")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "read <id>",
			Short: "Mark a notification as read",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.services.NotificationService.MarkAsRead(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete all notifications",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := a.services.NotificationService.Clear(cmd.Context()); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "notifications cleared")
				return err
			},
		},
	)
	return cmd
}

func printNotifications(w io.Writer, items []models.NotificationItem, now time.Time) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "no notifications")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t\tTITLE\tDETAIL\tWHEN")
	for _, n := range items {
		mark := "*"
		if n.IsRead {
			mark = " "
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", n.ID, mark, n.Title, n.Detail, humanize.RelTime(n.Time, now, "ago", "from now"))
	}
	return tw.Flush()
}
