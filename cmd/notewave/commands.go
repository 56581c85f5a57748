package main

import (
	"github.com/dmitrijs2005/notewave/internal/buildinfo"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, pinned first then newest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app.SetIO(cmd.InOrStdin(), cmd.OutOrStdout())
		return app.List(cmd.Context())
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show note counts and recent notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app.SetIO(cmd.InOrStdin(), cmd.OutOrStdout())
		return app.Stats(cmd.Context())
	},
}

var moodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "Show mood statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app.SetIO(cmd.InOrStdin(), cmd.OutOrStdout())
		return app.Moods(cmd.Context())
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write all notes and settings to a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app.SetIO(cmd.InOrStdin(), cmd.OutOrStdout())
		return app.Export(cmd.Context(), args[0])
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all notes and settings with a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app.SetIO(cmd.InOrStdin(), cmd.OutOrStdout())
		return app.Import(cmd.Context(), args[0])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	// Overrides the root hooks so no database is opened.
	PersistentPreRunE:  func(cmd *cobra.Command, args []string) error { return nil },
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		buildinfo.PrintBuildData(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd, statsCmd, moodsCmd, exportCmd, importCmd, versionCmd)
}
