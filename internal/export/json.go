package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// WriteSnapshot indents the store's compact snapshot string and writes it
// to path.
func WriteSnapshot(snapshot, path string) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(snapshot), "", "  "); err != nil {
		return fmt.Errorf("indent snapshot: %w", err)
	}
	buf.WriteByte('\n')

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
