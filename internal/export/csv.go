package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sadopc/taskmaster/internal/store"
)

// ToCSV writes a flat task listing. Dangling project references render as
// "Unknown" rather than failing.
func ToCSV(tasks []store.Task, projects map[string]*store.Project, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Title", "Status", "Priority", "Due", "Project", "Category", "Tags", "Estimated (min)", "Actual (min)", "Created"}); err != nil {
		return err
	}

	for _, t := range tasks {
		projectName := ""
		if t.ProjectID != "" {
			projectName = "Unknown"
			if p, ok := projects[t.ProjectID]; ok {
				projectName = p.Name
			}
		}

		row := []string{
			t.ID,
			t.Title,
			string(t.Status),
			string(t.Priority),
			t.DueDate,
			projectName,
			t.Category,
			strings.Join(t.Tags, ","),
			fmt.Sprintf("%d", t.EstimatedTime),
			fmt.Sprintf("%d", t.ActualTime),
			t.CreatedAt.Local().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
