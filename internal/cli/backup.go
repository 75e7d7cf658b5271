package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Snapshot all data inside the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			ts := s.CreateBackup()
			fmt.Fprintf(cmd.OutOrStdout(), "Backup created at %s (id %d)\n",
				time.UnixMilli(ts).Format(time.RFC3339), ts)
			return nil
		},
	}
	return cmd
}

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore [id]",
		Short: "Restore data from a backup (latest by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			ts := s.LastBackupTime()
			if len(args) == 1 {
				ts, err = strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("id must be a backup timestamp in milliseconds")
				}
			}
			if ts == 0 {
				return fmt.Errorf("no backup found")
			}

			if !s.RestoreFromBackup(ts) {
				return fmt.Errorf("backup %d not found or unreadable", ts)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Restored backup from %s\n",
				time.UnixMilli(ts).Format(time.RFC3339))
			return nil
		},
	}
	return cmd
}
