package cli

import (
	"fmt"
	"path/filepath"

	"github.com/nbstyle/nbstyle/internal/adapters/outbound/config"
	"github.com/nbstyle/nbstyle/internal/adapters/outbound/flake8"
	"github.com/nbstyle/nbstyle/internal/adapters/outbound/gitinfo"
	"github.com/nbstyle/nbstyle/internal/adapters/outbound/notebook"
	"github.com/nbstyle/nbstyle/internal/adapters/outbound/tui"
	"github.com/nbstyle/nbstyle/internal/application"
	"github.com/nbstyle/nbstyle/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var (
		update    bool
		magicPath string
	)

	cmd := &cobra.Command{
		Use:   "check <notebook.ipynb>",
		Short: "Run a PEP8 style check over a notebook's code cells",
		Long: "Extract the notebook's code cells into a script, run flake8 against it, and " +
			"report every warning at its originating cell and line. With --update the warnings " +
			"are written into the notebook itself as stream outputs; without it they are " +
			"printed and the command exits 99 so CI can fail the run.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nbPath := args[0]
			if filepath.Ext(nbPath) != domain.NotebookExt {
				_ = cmd.Help()
				return fmt.Errorf("file extension must be %s", domain.NotebookExt)
			}

			svc, err := newCheckService(magicPath)
			if err != nil {
				return err
			}

			report, err := svc.Run(nbPath, update)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			switch {
			case report.Clean:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderClean(nbPath))
				return nil
			case update:
				return nil
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
				return domain.NewExitError(domain.ExitCodeWarnings,
					fmt.Sprintf("%d PEP8 warnings found", len(report.Warnings)))
			}
		},
	}

	cmd.Flags().BoolVarP(&update, "update", "u", false,
		"Write the warnings into the notebook instead of printing them")
	cmd.Flags().StringVar(&magicPath, "magic", "",
		"Path to the marker-cell config (default nb_flake8_magic.json, or .nbstyle.yaml's magic_file)")

	return cmd
}

// newCheckService loads settings from the working directory and wires the
// standard set of outbound adapters.
func newCheckService(magicPath string) (*application.CheckService, error) {
	settings, err := config.New().Load(".")
	if err != nil {
		return nil, err
	}
	if magicPath != "" {
		settings.MagicFile = magicPath
	}

	return application.NewCheckService(
		notebook.New(),
		flake8.New(settings.Checker),
		config.NewMagicLoader(),
		gitinfo.New(),
		settings,
	), nil
}
