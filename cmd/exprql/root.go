package main

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/zoobzio/exprql/internal/cli"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string

	// Persistent flags
	cfgFile string
	verbose int
)

var rootCmd = &cobra.Command{
	Use:   "exprql",
	Short: "Render SQL statement documents",
	Long: `exprql - Render SQL statement documents

exprql reads a YAML description of an INSERT statement, validates it against
an optional table catalog and prints the SQL for the chosen dialect.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetFlags(0)
		log.SetPrefix("exprql: ")
		if verbose > 0 {
			log.SetOutput(cmd.ErrOrStderr())
		} else {
			log.SetOutput(io.Discard)
		}

		// Skip config loading for help/completion/version commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, configPath, err = cli.LoadConfig(cfgFile)
		if err != nil {
			return cli.ConfigError("loading configuration", err)
		}
		if configPath != "" {
			log.Printf("using config %s", configPath)
		}

		return nil
	},
	SilenceUsage:  true, // Don't show usage on errors
	SilenceErrors: true, // We handle errors ourselves
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover exprql.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase verbosity")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}
