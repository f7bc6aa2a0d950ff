package output

import (
	"encoding/json"
	"fmt"
	"os"
)

// Write serializes a metrics record (success or error shape) as indented
// JSON, creating or overwriting the destination, and echoes it to stdout.
func Write(record any, path string) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
