package cli

import (
	"fmt"
	"path/filepath"

	"github.com/nbstyle/nbstyle/internal/adapters/outbound/tui"
	"github.com/nbstyle/nbstyle/internal/domain"
	"github.com/spf13/cobra"
)

func newCellsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cells <notebook.ipynb>",
		Short: "List the code cells a check would extract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nbPath := args[0]
			if filepath.Ext(nbPath) != domain.NotebookExt {
				_ = cmd.Help()
				return fmt.Errorf("file extension must be %s", domain.NotebookExt)
			}

			svc, err := newCheckService("")
			if err != nil {
				return err
			}

			nb, codeCells, err := svc.ListCells(nbPath)
			if err != nil {
				return fmt.Errorf("listing cells failed: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCellList(nb, codeCells))
			return nil
		},
	}

	return cmd
}
