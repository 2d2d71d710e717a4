// Package gemini provides a Google Gemini (Veo) video generation provider for Reel.
package gemini

import "github.com/petal-labs/reel/core"

// Model constants for Google Veo video generation models.
const (
	// Veo 3.1 series (preview) - supports reference images
	ModelVeo31     core.ModelID = "veo-3.1-generate-preview"
	ModelVeo31Fast core.ModelID = "veo-3.1-fast-generate-preview"

	// Veo 3.0 series
	ModelVeo3     core.ModelID = "veo-3.0-generate-001"
	ModelVeo3Fast core.ModelID = "veo-3.0-fast-generate-001"

	// Veo 2 (stable)
	ModelVeo2 core.ModelID = "veo-2.0-generate-001"
)

// models is the static list of supported models.
var models = []core.ModelInfo{
	{
		ID:          ModelVeo31,
		DisplayName: "Veo 3.1 Preview",
		Capabilities: []core.Feature{
			core.FeatureVideoGeneration,
			core.FeatureReferenceImages,
		},
	},
	{
		ID:          ModelVeo31Fast,
		DisplayName: "Veo 3.1 Fast Preview",
		Capabilities: []core.Feature{
			core.FeatureVideoGeneration,
			core.FeatureReferenceImages,
		},
	},
	{
		ID:          ModelVeo3,
		DisplayName: "Veo 3",
		Capabilities: []core.Feature{
			core.FeatureVideoGeneration,
		},
	},
	{
		ID:          ModelVeo3Fast,
		DisplayName: "Veo 3 Fast",
		Capabilities: []core.Feature{
			core.FeatureVideoGeneration,
		},
	},
	{
		ID:          ModelVeo2,
		DisplayName: "Veo 2",
		Capabilities: []core.Feature{
			core.FeatureVideoGeneration,
		},
	},
}
