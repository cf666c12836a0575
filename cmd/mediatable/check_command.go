package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mediatable/internal/preflight"
	"mediatable/internal/scan"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var (
		mediainfoFlag string
		recursive     bool
	)

	cmd := &cobra.Command{
		Use:   "check [DIR]",
		Short: "Verify mediainfo is installed and DIR is readable",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}
			if mediainfoFlag != "" {
				cfg.Mediainfo.Binary = mediainfoFlag
			}
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			report := newStatusReport(cmd.OutOrStdout())
			report.section("Preflight")
			results := preflight.RunAll(cmd.Context(), cfg, root)
			for _, result := range results {
				kind := statusOK
				switch {
				case !result.Passed && result.Optional:
					kind = statusWarn
				case !result.Passed:
					kind = statusError
				}
				report.line(result.Name, kind, result.Detail)
			}
			if !preflight.AllPassed(results) {
				return errors.New("preflight checks failed")
			}

			depth := 1
			if recursive {
				depth = cfg.Scan.RecursiveDepth
			}
			files, walkErrs := scan.Walk(root, scan.Options{MaxDepth: depth, Extensions: cfg.Scan.Extensions})
			report.line("Media files", statusInfo, fmt.Sprintf("%d found (depth %d)", len(files), depth))
			if len(walkErrs) > 0 {
				report.line("Unreadable entries", statusWarn, fmt.Sprintf("%d skipped: %v", len(walkErrs), walkErrs[0]))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mediainfoFlag, "mediainfo", "", "Path to the mediainfo executable")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Count media files down to the configured recursive depth")
	return cmd
}
