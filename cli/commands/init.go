package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/petal-labs/reel/providers/gemini"
)

var initModel string

var initCmd = &cobra.Command{
	Use:   "init <campaign-name>",
	Short: "Initialize a new campaign directory",
	Long: `Initialize a new campaign directory for video generation.

Creates a campaign directory with:
  - assets/: Directory for reference images
  - reel.yaml: Campaign configuration

Example:
  reel init summer-launch
  reel init summer-launch --model veo-3.1-fast-generate-preview`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initModel, "model", string(gemini.ModelVeo31), "Default model for the campaign")
}

func runInit(cmd *cobra.Command, args []string) error {
	campaignPath := args[0]
	campaignName := filepath.Base(campaignPath)

	// Validate campaign name (just the base name, not full path)
	if err := validateCampaignName(campaignName); err != nil {
		return err
	}

	// Check if directory already exists
	if _, err := os.Stat(campaignPath); err == nil {
		return fmt.Errorf("directory %q already exists", campaignPath)
	}

	assetsDir := filepath.Join(campaignPath, "assets")
	if err := os.MkdirAll(assetsDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", assetsDir, err)
	}

	gitkeep := filepath.Join(assetsDir, ".gitkeep")
	if err := os.WriteFile(gitkeep, []byte{}, 0644); err != nil {
		return fmt.Errorf("failed to create %s: %w", gitkeep, err)
	}

	configPath := filepath.Join(campaignPath, "reel.yaml")
	if err := generateFile(configPath, reelYamlTemplate, templateData{
		Name:  campaignName,
		Model: initModel,
	}); err != nil {
		return fmt.Errorf("failed to create reel.yaml: %w", err)
	}

	fmt.Printf("Created campaign: %s\n\n", campaignName)
	fmt.Println("Next steps:")
	fmt.Printf("  cd %s\n", campaignPath)
	fmt.Println("  # drop reference PNGs into assets/")
	fmt.Println("  reel keys set gemini")
	fmt.Printf("  reel generate --config reel.yaml\n")

	return nil
}

func validateCampaignName(name string) error {
	if name == "" {
		return fmt.Errorf("campaign name cannot be empty")
	}

	// Check for invalid characters
	validName := regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
	if !validName.MatchString(name) {
		return fmt.Errorf("invalid campaign name %q: must start with a letter and contain only letters, numbers, underscores, and hyphens", name)
	}

	// Check for reserved names
	reserved := []string{".", "..", "reel"}
	for _, r := range reserved {
		if name == r {
			return fmt.Errorf("invalid campaign name %q: reserved name", name)
		}
	}

	return nil
}

type templateData struct {
	Name  string
	Model string
}

func generateFile(path string, tmplContent string, data templateData) error {
	tmpl, err := template.New("file").Parse(tmplContent)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}

var reelYamlTemplate = `# Reel campaign configuration for {{.Name}}
default_model: {{.Model}}

# Reference images, relative to assets_dir
assets_dir: assets
assets: []
#  - hero.png
#  - sidekick.png

output_path: {{.Name}}.mp4

# Uncomment to override the built-in prompt
# prompt: "A cinematic trailer for ..."

poll_interval: 10s
timeout: 30m

# API keys should be set via 'reel keys set gemini' or GEMINI_API_KEY
providers:
  gemini:
    api_key_ref: keystore
`
