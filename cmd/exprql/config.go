package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var configShowSource bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration utilities",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Long:  `Show the effective configuration after merging defaults, config file, and environment variables.`,
	Example: `  # Show effective configuration
  exprql config show

  # Show configuration with source file path
  exprql config show --source`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if configShowSource {
			if configPath != "" {
				fmt.Fprintf(out, "Config file: %s\n\n", configPath)
			} else {
				fmt.Fprintln(out, "Config file: (none, using defaults)")
				fmt.Fprintln(out)
			}
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))
		return nil
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&configShowSource, "source", false, "show config file source")
	configCmd.AddCommand(configShowCmd)
}
