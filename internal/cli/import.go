package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON snapshot, replacing the collections it contains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if !s.ImportData(string(data)) {
				return fmt.Errorf("invalid snapshot: %s", args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s: %d tasks, %d projects\n",
				args[0], len(s.GetTasks()), len(s.GetProjects()))
			return nil
		},
	}
	return cmd
}
