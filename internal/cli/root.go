// Package cli is the offline companion to the billing API: it runs the same
// validate → snapshot → render pipeline against a YAML draft file, for
// generating estimates without the site.
package cli

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Generate REMO DJ SOUND & EVENTS estimate PDFs from the command line",
	Long: `estimate renders the same PDF the billing screen produces, from a YAML
draft file instead of the web form. Drafts are validated with the same rules;
all violations are reported together.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
