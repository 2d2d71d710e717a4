package pipeline

import "github.com/petal-labs/reel/core"

// DefaultPrompt is the GameBuddies trailer prompt used when the caller does
// not supply one.
const DefaultPrompt = "A cinematic trailer for a multiplayer game called GameBuddies. " +
	"Show the provided mascot characters (Archer, Knight, Mage, and Base) " +
	"standing together in a vibrant, pixel-art inspired fantasy lobby. " +
	"The camera pans slowly across them as they perform idle animations like " +
	"waving, checking gear, or casting small magical sparks. " +
	"The background is a cheerful, bright game world with floating islands. " +
	"The video feels energetic and inviting, highlighting the variety of customizable characters."

// BuildRequest bundles the prompt and reference images into a generation
// request. Generation parameters (aspect ratio, FPS) are deliberately left
// unset so the provider applies its own defaults.
func BuildRequest(model core.ModelID, prompt string, refs []core.ReferenceImage) *core.VideoGenerateRequest {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return &core.VideoGenerateRequest{
		Model:           model,
		Prompt:          prompt,
		ReferenceImages: refs,
	}
}
