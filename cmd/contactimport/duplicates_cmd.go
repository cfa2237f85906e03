package main

import (
	"context"
	"fmt"
	"io"

	app "github.com/mohammadpnp/contact-import/internal/application/contact"
	"github.com/spf13/cobra"
)

func newDuplicatesCmd(global *globalOptions) *cobra.Command {
	var ownerID string
	var remove bool

	cmd := &cobra.Command{
		Use:   "duplicates",
		Short: "List duplicate contact groups, optionally deactivating the non-kept members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd.Context(), global)
			if err != nil {
				return err
			}
			defer rt.close()

			return runDuplicates(cmd.Context(), cmd.OutOrStdout(), rt.services.DetectDuplicates, rt.services.RemoveDuplicates, ownerID, remove)
		},
	}

	cmd.Flags().StringVar(&ownerID, "owner", "", "Owner user id (required)")
	cmd.Flags().BoolVar(&remove, "remove", false, "Deactivate every duplicate that is not the kept contact of its group")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

func runDuplicates(ctx context.Context, out io.Writer, detect app.DetectDuplicates, remove app.RemoveDuplicates, ownerID string, apply bool) error {
	found, err := detect.Execute(ctx, app.DetectDuplicatesInput{OwnerID: ownerID})
	if err != nil {
		return fmt.Errorf("detect duplicates: %w", err)
	}
	if !apply || found.TotalDuplicates == 0 {
		return writeJSON(out, found)
	}

	ids := make([]string, 0, found.TotalDuplicates)
	for _, g := range found.Groups {
		ids = append(ids, g.Duplicates...)
	}

	removed, err := remove.Execute(ctx, app.RemoveDuplicatesInput{OwnerID: ownerID, DuplicateIDs: ids})
	if err != nil {
		return fmt.Errorf("remove duplicates: %w", err)
	}
	return writeJSON(out, removed)
}
