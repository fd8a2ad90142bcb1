// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/go-doc-archive/models"
	"github.com/spf13/cobra"
)

var errItemNotFound = errors.New("no document matches")

func newArchiveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Work with local and shared documents",
	}
	cmd.AddCommand(
		newArchiveListCommand(a),
		newArchiveOpenCommand(a),
		newArchiveRateCommand(a),
		newArchiveRemoveCommand(a),
	)
	return cmd
}

func newArchiveListCommand(a *app) *cobra.Command {
	var (
		shared bool
		search string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents on this device, or shared with you",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tab := models.TabLocal
			if shared {
				tab = models.TabShared
			}

			items, err := a.list(cmd.Context(), tab)
			if err != nil {
				return err
			}
			items = a.services.ArchiveService.Filter(items, search)

			return a.print(cmd.OutOrStdout(), items, func(w io.Writer) error {
				return printItems(w, items)
			})
		},
	}

	cmd.Flags().BoolVar(&shared, "shared", false, "List documents shared with you instead of local ones")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Keep documents whose title contains this text")
	return cmd
}

func newArchiveOpenCommand(a *app) *cobra.Command {
	var noOpen bool

	cmd := &cobra.Command{
		Use:   "open <file name | document id | title>",
		Short: "Open a document, downloading it first when needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			tab, item, err := a.find(ctx, args[0])
			if err != nil {
				return err
			}

			act, err := a.services.OpenService.Activate(ctx, tab, item)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch act.Outcome {
			case models.OutcomeIgnored:
				return fmt.Errorf("%q has no file to open", item.Title)
			case models.OutcomeDownloaded:
				fmt.Fprintf(out, "downloaded %s\n", act.Path)
				if noOpen {
					return nil
				}
				if err = a.services.OpenService.OpenDownloaded(ctx, act.Item, act.Path); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(out, "opened %s\n", act.Path)
			return err
		},
	}

	cmd.Flags().BoolVar(&noOpen, "no-open", false, "Only download, do not open")
	return cmd
}

func newArchiveRateCommand(a *app) *cobra.Command {
	var (
		stars   int
		comment string
	)

	cmd := &cobra.Command{
		Use:   "rate <document id | file name>",
		Short: "Rate a document from 1 to 5 stars",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			session, err := a.session(ctx)
			if err != nil {
				return err
			}
			_, item, err := a.find(ctx, args[0])
			if err != nil {
				return err
			}

			if err = a.services.RatingService.CheckRateable(ctx, item); err != nil {
				return err
			}
			if err = a.services.RatingService.Submit(ctx, session.User.UserID, item, stars, comment); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "rated %q with %d stars\n", item.Title, stars)
			return err
		},
	}

	cmd.Flags().IntVar(&stars, "stars", 0, "Rating, 1 to 5")
	cmd.Flags().StringVar(&comment, "comment", "", "Optional comment")
	_ = cmd.MarkFlagRequired("stars")
	return cmd
}

func newArchiveRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <file name>",
		Aliases: []string{"remove"},
		Short:   "Remove a downloaded document from this device",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			items, err := a.list(ctx, models.TabLocal)
			if err != nil {
				return err
			}
			item, ok := match(items, args[0])
			if !ok {
				return fmt.Errorf("%w %q on this device", errItemNotFound, args[0])
			}

			if err = a.services.OpenService.DeleteLocal(ctx, item); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", item.FileName)
			return err
		},
	}
}

func (a *app) list(ctx context.Context, tab models.ArchiveTab) ([]models.ArchiveItem, error) {
	if tab == models.TabLocal {
		return a.services.ArchiveService.ListLocal(ctx)
	}

	session, err := a.session(ctx)
	if err != nil {
		return nil, err
	}
	return a.services.ArchiveService.ListShared(ctx, session.User.UserID)
}

// find looks the reference up on this device first and then among the
// shared documents.
func (a *app) find(ctx context.Context, ref string) (models.ArchiveTab, models.ArchiveItem, error) {
	local, err := a.list(ctx, models.TabLocal)
	if err == nil {
		if item, ok := match(local, ref); ok {
			return models.TabLocal, item, nil
		}
	}

	shared, err := a.list(ctx, models.TabShared)
	if err != nil {
		return "", models.ArchiveItem{}, err
	}
	if item, ok := match(shared, ref); ok {
		return models.TabShared, item, nil
	}
	return "", models.ArchiveItem{}, fmt.Errorf("%w %q", errItemNotFound, ref)
}

// match finds an item by file name, document id or exact title, ignoring case.
func match(items []models.ArchiveItem, ref string) (models.ArchiveItem, bool) {
	id, idErr := strconv.ParseInt(ref, 10, 64)

	for _, item := range items {
		switch {
		case item.FileName != "" && strings.EqualFold(item.FileName, ref):
			return item, true
		case idErr == nil && item.HasDocumentID() && *item.DocumentID == id:
			return item, true
		case strings.EqualFold(item.Title, ref):
			return item, true
		}
	}
	return models.ArchiveItem{}, false
}

func printItems(w io.Writer, items []models.ArchiveItem) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "no documents")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDETAILS\tPATH")
	for _, item := range items {
		id := "-"
		if item.HasDocumentID() {
			id = strconv.FormatInt(*item.DocumentID, 10)
		}
		path := item.LocalURI
		if path == "" {
			path = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", id, item.Title, item.Subtitle, path)
	}
	return tw.Flush()
}
