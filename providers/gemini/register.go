package gemini

import (
	"github.com/petal-labs/reel/core"
	"github.com/petal-labs/reel/providers"
)

func init() {
	providers.Register("gemini", func(apiKey string) core.Provider {
		return New(apiKey)
	})
}
