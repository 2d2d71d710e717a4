package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveVideo writes raw video bytes to path, creating parent directories as
// needed and overwriting any existing file.
func SaveVideo(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write video: %w", err)
	}
	return nil
}
