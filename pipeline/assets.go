package pipeline

import (
	"os"

	"github.com/rs/zerolog"
)

// LocateAssets filters candidate asset paths down to those that exist on
// disk, preserving input order. Each missing path is logged at warn level.
// The returned slice is empty when nothing survives; the caller decides
// whether that aborts the run.
func LocateAssets(logger zerolog.Logger, candidates []string) []string {
	var found []string
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			logger.Warn().Str("path", path).Msg("asset not found, skipping")
			continue
		}
		found = append(found, path)
	}
	return found
}
