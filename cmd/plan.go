package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theapemachine/yamap-mcp/pkg/plans"
)

var (
	fileFlag string

	planCmd = &cobra.Command{
		Use:   "plan [url]",
		Short: "Print the report for a YAMAP plan",
		Long:  longPlan,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extractor, err := loadExtractor()
			if err != nil {
				return err
			}

			if fileFlag != "" {
				html, err := os.ReadFile(fileFlag)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", fileFlag, err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), extractor.Report(string(html)))
				return nil
			}

			if len(args) == 0 {
				return errors.New("a plan url or --file is required")
			}

			planURL, err := plans.Normalize(args[0])
			if err != nil {
				return err
			}

			nav, err := loadBrowser()
			if err != nil {
				return err
			}

			html, err := nav.Navigate(cmd.Context(), planURL)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), extractor.Report(html))
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read a saved plan page instead of opening the url")
}

var longPlan = `
Open a plan page in the headless browser and print its report, exactly as
the yamap_plan tool would return it.

Examples:
  yamap-mcp plan https://yamap.com/plans/code/ABC123/printing

  # Check the selectors against a page saved from the browser.
  yamap-mcp plan --file printing.html
`
