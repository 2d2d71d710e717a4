package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/petal-labs/reel/cli/keystore"
	"github.com/petal-labs/reel/core"
	"github.com/petal-labs/reel/pipeline"
	"github.com/petal-labs/reel/providers/gemini"
)

// Exit codes
const (
	ExitSuccess    = 0
	ExitValidation = 1
	ExitProvider   = 2
	ExitNetwork    = 3
)

// Built-in defaults reproducing the GameBuddies ad run.
var defaultAssets = []string{"archer.png", "knight.png", "mage.png"}

const (
	defaultAssetsDir  = "public/avatars/premium"
	defaultOutputPath = "gamebuddies_veo_ad.mp4"
)

var (
	assetsDir    string
	assetNames   []string
	outputPath   string
	genPrompt    string
	genModel     string
	pollInterval time.Duration
	genTimeout   time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a promo video from local reference assets",
	Long: `Generate a promotional video with Veo using local reference images.

The pipeline locates the configured assets, submits a generation request,
polls the operation until it completes and writes the video to disk.

Examples:
  reel generate
  reel generate --assets-dir ./avatars --asset hero.png --output ad.mp4
  reel generate --prompt "A calm product walkthrough" --timeout 15m`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&assetsDir, "assets-dir", "", "directory holding reference assets")
	generateCmd.Flags().StringArrayVar(&assetNames, "asset", nil, "asset file name relative to --assets-dir (repeatable)")
	generateCmd.Flags().StringVar(&outputPath, "output", "", "output video path")
	generateCmd.Flags().StringVar(&genPrompt, "prompt", "", "generation prompt (default: built-in trailer prompt)")
	generateCmd.Flags().StringVar(&genModel, "model", "", "Veo model ID")
	generateCmd.Flags().DurationVar(&pollInterval, "poll-interval", 0, "delay between operation polls")
	generateCmd.Flags().DurationVar(&genTimeout, "timeout", 0, "total polling budget")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	runCfg, err := buildRunConfig()
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}

	apiKey, err := resolveAPIKey()
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}

	var opts []gemini.Option
	if c := GetConfig(); c != nil {
		if pc := c.GetProvider("gemini"); pc != nil && pc.BaseURL != "" {
			opts = append(opts, gemini.WithBaseURL(pc.BaseURL))
		}
	}
	provider := gemini.New(apiKey, opts...)

	runner := pipeline.NewRunner(provider, newLogger())
	result, err := runner.Run(context.Background(), *runCfg)
	if err != nil {
		return handleGenerateError(result, err)
	}

	if IsJSONOutput() {
		return outputResultJSON(result)
	}

	fmt.Printf("Video saved to %s (%d bytes)\n", result.OutputPath, result.BytesWritten)
	return nil
}

// buildRunConfig merges flags over config file values over built-in defaults.
func buildRunConfig() (*pipeline.Config, error) {
	c := GetConfig()

	dir := assetsDir
	if dir == "" && c != nil {
		dir = c.AssetsDir
	}
	if dir == "" {
		dir = defaultAssetsDir
	}

	names := assetNames
	if len(names) == 0 && c != nil {
		names = c.Assets
	}
	if len(names) == 0 {
		names = defaultAssets
	}

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(dir, name))
	}

	output := outputPath
	if output == "" && c != nil {
		output = c.OutputPath
	}
	if output == "" {
		output = defaultOutputPath
	}

	prompt := genPrompt
	if prompt == "" && c != nil {
		prompt = c.Prompt
	}

	model := genModel
	if model == "" && c != nil {
		model = c.DefaultModel
	}
	if model == "" {
		model = string(gemini.ModelVeo31)
	}

	poll := core.PollConfig{Interval: pollInterval, Deadline: genTimeout}
	if c != nil {
		if poll.Interval == 0 && c.PollInterval != "" {
			d, err := time.ParseDuration(c.PollInterval)
			if err != nil {
				return nil, fmt.Errorf("invalid poll_interval in config: %w", err)
			}
			poll.Interval = d
		}
		if poll.Deadline == 0 && c.Timeout != "" {
			d, err := time.ParseDuration(c.Timeout)
			if err != nil {
				return nil, fmt.Errorf("invalid timeout in config: %w", err)
			}
			poll.Deadline = d
		}
	}

	return &pipeline.Config{
		AssetPaths: paths,
		OutputPath: output,
		Prompt:     prompt,
		Model:      core.ModelID(model),
		Poll:       poll,
	}, nil
}

// resolveAPIKey looks up the Gemini API key: keystore first, then the
// GEMINI_API_KEY environment variable (with .env loaded when present).
func resolveAPIKey() (string, error) {
	ks, err := keystore.NewKeystore()
	if err == nil {
		if key, err := ks.Get("gemini"); err == nil {
			return key, nil
		}
	}

	// Best-effort .env load; a missing file is fine.
	_ = godotenv.Load()

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}

	return "", fmt.Errorf("no API key for gemini: run 'reel keys set gemini' or set GEMINI_API_KEY")
}

func handleGenerateError(result *pipeline.Result, err error) error {
	var provErr *core.ProviderError
	if errors.As(err, &provErr) {
		if IsJSONOutput() {
			outputErrorJSON(provErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", provErr.Message)
			if provErr.RequestID != "" {
				fmt.Fprintf(os.Stderr, "  Provider: %s, Request ID: %s\n", provErr.Provider, provErr.RequestID)
			}
		}

		if errors.Is(err, core.ErrNetwork) {
			return exitWithCode(ExitNetwork, err)
		}
		return exitWithCode(ExitProvider, err)
	}

	if errors.Is(err, core.ErrNetwork) {
		if IsJSONOutput() {
			outputSimpleErrorJSON("network_error", err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: network error: %v\n", err)
		}
		return exitWithCode(ExitNetwork, err)
	}

	// Validation-class failures: nothing was submitted or the request was bad.
	if errors.Is(err, pipeline.ErrNoAssets) ||
		errors.Is(err, core.ErrModelRequired) ||
		errors.Is(err, core.ErrPromptRequired) {
		if IsJSONOutput() {
			outputSimpleErrorJSON("validation_error", err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return exitWithCode(ExitValidation, err)
	}

	// Remote outcomes: operation error, empty result, poll timeout.
	if IsJSONOutput() {
		outputSimpleErrorJSON("error", err.Error())
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if result != nil && result.State != "" {
			fmt.Fprintf(os.Stderr, "  Operation state: %s\n", result.State)
		}
	}
	return exitWithCode(ExitProvider, err)
}

func outputResultJSON(result *pipeline.Result) error {
	output := map[string]interface{}{
		"run_id":        result.RunID,
		"operation":     result.OperationName,
		"state":         string(result.State),
		"output_path":   result.OutputPath,
		"bytes_written": result.BytesWritten,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputErrorJSON(provErr *core.ProviderError) {
	output := map[string]interface{}{
		"error": map[string]interface{}{
			"type":       provErr.Code,
			"message":    provErr.Message,
			"provider":   provErr.Provider,
			"request_id": provErr.RequestID,
		},
	}

	enc := json.NewEncoder(os.Stderr)
	enc.SetIndent("", "  ")
	enc.Encode(output)
}

func outputSimpleErrorJSON(errType, message string) {
	output := map[string]interface{}{
		"error": map[string]interface{}{
			"type":    errType,
			"message": message,
		},
	}

	enc := json.NewEncoder(os.Stderr)
	enc.SetIndent("", "  ")
	enc.Encode(output)
}

// exitError wraps an error with an exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) ExitCode() int {
	return e.code
}

func exitWithCode(code int, err error) error {
	return &exitError{code: code, err: err}
}
