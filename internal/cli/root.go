// Package cli wires the taskmaster commands. The bare command launches the
// TUI; subcommands cover data import/export, backups, and wiping.
package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sadopc/taskmaster/internal/store"
	"github.com/sadopc/taskmaster/internal/tui"
)

const Version = "0.1.0"

var dbPath string

var rootCmd = &cobra.Command{
	Use:           "taskmaster",
	Short:         "taskmaster — personal task manager with a pomodoro timer",
	Long:          "taskmaster is a local-first task manager: tasks, projects, categories, tags, and a pomodoro timer, all in your terminal.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		// Storage warnings would corrupt the alternate screen.
		s.SetLogOutput(io.Discard)

		app := tui.NewApp(s)
		p := tea.NewProgram(app, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the database file (default ~/.config/taskmaster/taskmaster.db)")

	rootCmd.AddCommand(
		newExportCmd(),
		newImportCmd(),
		newBackupCmd(),
		newRestoreCmd(),
		newClearCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func openStore() (*store.Store, error) {
	path := dbPath
	if path == "" {
		var err error
		path, err = store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	return store.New(path)
}
