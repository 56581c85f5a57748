package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/notewave/internal/cli"
	"github.com/dmitrijs2005/notewave/internal/config"
	"github.com/dmitrijs2005/notewave/internal/logging"
	"github.com/spf13/cobra"
)

// app is opened by the root PersistentPreRunE and shared by every command.
var app *cli.App

var rootCmd = &cobra.Command{
	Use:   "notewave",
	Short: "A local note-taking and mood journal",
	Long: `NoteWave keeps notes and a mood journal in a local SQLite database.

Run without a command to start the interactive shell.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, err := cmd.Flags().GetString(config.FlagConfig)
		if err != nil {
			return err
		}
		cfg, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		if err := config.ApplyFlags(cfg, cmd.Flags()); err != nil {
			return err
		}

		log, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
		if err != nil {
			return err
		}

		app = cli.NewApp(cmd.Context(), cfg, log)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if app == nil {
			return nil
		}
		return app.Close()
	},
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app.Run(cmd.Context())
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
}
