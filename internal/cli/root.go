// Package cli wires the roster commands.
package cli

import (
	"errors"
	"fmt"

	"github.com/JonMunkholm/roster/internal/config"
	"github.com/JonMunkholm/roster/internal/core"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X".
var version = "dev"

// NewRootCmd builds the command tree around cfg. Flags override cfg.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "roster",
		Short: "Build the registered participants page from a registration export",
		Long: `roster reads an attendee registration export (CSV or XLSX), keeps the
last registration per "First Last" name, and writes an HTML page listing
in-person and remote attendees side by side.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&cfg.Input.Path, "input", "i", cfg.Input.Path, "registration export to read (CSV or XLSX)")
	flags.StringVar(&cfg.Input.Encoding, "encoding", cfg.Input.Encoding, "text encoding of delimited input")
	flags.StringVar(&cfg.Input.Delimiter, "delimiter", cfg.Input.Delimiter, `field separator of delimited input ("tab" for TSV)`)
	flags.StringVar(&cfg.Input.Sheet, "sheet", cfg.Input.Sheet, "XLSX sheet to read (default first sheet)")
	flags.StringVar(&cfg.Report.Title, "title", cfg.Report.Title, "page title")
	flags.BoolVar(&cfg.Report.UTC, "utc", cfg.Report.UTC, "print the Last Updated clock in UTC instead of local time")
	root.Flags().StringVarP(&cfg.Output.Path, "output", "o", cfg.Output.Path, "HTML page to write (overwritten)")

	root.AddCommand(newServeCmd(cfg))
	root.AddCommand(newVersionCmd())

	return root
}

// runGenerate runs one pipeline pass and prints the counts.
//
// A missing input is reported on the output stream and is not a failure:
// no page is written and the command exits cleanly.
func runGenerate(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	svc := core.NewService(cfg)
	summary, err := svc.Generate(cmd.Context())
	if err != nil {
		if errors.Is(err, core.ErrInputNotFound) {
			fmt.Fprintf(out, "Error: File '%s' does not exist.\n", cfg.Input.Path)
			return nil
		}
		return err
	}

	fmt.Fprintf(out, "HTML file '%s' generated successfully.\n", summary.Output)
	fmt.Fprintf(out, "Total unique attendees: %d\n", summary.Total)
	fmt.Fprintf(out, "In-person attendees: %d\n", summary.InPerson)
	fmt.Fprintf(out, "Remote attendees: %d\n", summary.Remote)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "roster version %s\n", version)
		},
	}
}
