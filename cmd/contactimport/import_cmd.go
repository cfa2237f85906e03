package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	app "github.com/mohammadpnp/contact-import/internal/application/contact"
	infrafile "github.com/mohammadpnp/contact-import/internal/infrastructure/file"
	"github.com/spf13/cobra"
)

type importOptions struct {
	ownerID string
}

func newImportCmd(global *globalOptions) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Import contacts from delimited, spreadsheet or vCard files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd.Context(), global)
			if err != nil {
				return err
			}
			defer rt.close()

			source := infrafile.NewLocalSource(rt.cfg.Import.BaseDir, rt.cfg.Import.MaxFileBytes)
			return runImport(cmd.Context(), cmd.OutOrStdout(), source, rt.services.ImportContacts, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.ownerID, "owner", "", "Owner user id (required)")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

type fileReader interface {
	ReadFile(ctx context.Context, path string) (string, []byte, error)
}

func runImport(ctx context.Context, out io.Writer, source fileReader, useCase app.ImportContacts, opts importOptions, paths []string) error {
	ownerID := strings.TrimSpace(opts.ownerID)
	if ownerID == "" {
		return errors.New("--owner must not be blank")
	}

	files := make([]app.ImportFile, 0, len(paths))
	for _, path := range paths {
		name, data, err := source.ReadFile(ctx, path)
		if err != nil {
			return err
		}
		files = append(files, app.ImportFile{Name: name, Data: data})
	}

	result, err := useCase.Execute(ctx, app.ImportContactsInput{OwnerID: ownerID, Files: files})
	if err != nil {
		return fmt.Errorf("import contacts: %w", err)
	}
	return writeJSON(out, result)
}
