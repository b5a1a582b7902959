package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	toolsCmd = &cobra.Command{
		Use:   "tools",
		Short: "List the tools this server exposes",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}

			headerStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true)

			labelStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true)

			valueStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

			bullet := "│ "
			out := cmd.OutOrStdout()

			for _, def := range reg.List() {
				fmt.Fprintln(out, headerStyle.Render(def.Name()))
				fmt.Fprintln(out, bullet+valueStyle.Render(def.Tool.Description))

				required := map[string]bool{}
				for _, name := range def.Tool.InputSchema.Required {
					required[name] = true
				}

				params := make([]string, 0, len(def.Tool.InputSchema.Properties))
				for name := range def.Tool.InputSchema.Properties {
					params = append(params, name)
				}
				sort.Strings(params)

				for _, name := range params {
					flag := "optional"
					if required[name] {
						flag = "required"
					}

					fmt.Fprintln(out, bullet+labelStyle.Render(name)+" "+valueStyle.Render("("+flag+")"))
				}

				fmt.Fprintln(out, strings.TrimSpace(bullet))
			}

			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(toolsCmd)
}
