package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/petal-labs/reel/core"
)

// LoadReferenceImages reads each asset file and wraps it as a reference
// image with the "asset" role. A file that cannot be read is logged and
// skipped; the batch continues. Output order follows input order.
func LoadReferenceImages(logger zerolog.Logger, paths []string) []core.ReferenceImage {
	var refs []core.ReferenceImage
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn().Str("path", path).Err(err).Msg("failed to load asset, skipping")
			continue
		}
		logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("loaded asset")
		refs = append(refs, core.ReferenceImage{
			Data:     data,
			MIMEType: mimeTypeForPath(path),
			Role:     core.ReferenceRoleAsset,
		})
	}
	return refs
}

// mimeTypeForPath guesses an image MIME type from the file extension.
// Assets are PNGs in practice; PNG is also the fallback.
func mimeTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}
