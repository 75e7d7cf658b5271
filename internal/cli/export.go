package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/taskmaster/internal/export"
)

func newExportCmd() *cobra.Command {
	var (
		output string
		asCSV  bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as JSON (or tasks as CSV)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if asCSV {
				if output == "" {
					output = fmt.Sprintf("taskmaster-export-%s.csv", time.Now().Format("2006-01-02"))
				}
				tasks := s.GetTasks()
				if err := export.ToCSV(tasks, s.ProjectIndex(), output); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tasks to %s\n", len(tasks), output)
				return nil
			}

			// No output path: snapshot goes to stdout for piping.
			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), s.ExportData())
				return nil
			}

			if err := export.WriteSnapshot(s.ExportData(), output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported snapshot to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "export tasks as CSV instead of a JSON snapshot")
	return cmd
}
