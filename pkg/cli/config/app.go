package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/quantum-travel/quantumchat/pkg/domain/model"
	"github.com/quantum-travel/quantumchat/pkg/domain/types"
	"github.com/quantum-travel/quantumchat/pkg/service/catalog"
)

// App holds CLI flags for chat behavior configuration
type App struct {
	defaultModel      string
	maxMessageLength  int
	maxFileSize       int64
	generationDelay   time.Duration
	generationTimeout time.Duration
	modelsPath        string
}

// Flags returns CLI flags for chat behavior
func (a *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "default-model",
			Usage:       "Model used when a request does not name one",
			Value:       catalog.DefaultModelID.String(),
			Sources:     cli.EnvVars("QUANTUMCHAT_DEFAULT_MODEL"),
			Destination: &a.defaultModel,
		},
		&cli.IntFlag{
			Name:        "max-message-length",
			Usage:       "Maximum inbound message length in bytes (0 disables the check)",
			Value:       4000,
			Sources:     cli.EnvVars("QUANTUMCHAT_MAX_MESSAGE_LENGTH"),
			Destination: &a.maxMessageLength,
		},
		&cli.Int64Flag{
			Name:        "max-file-size",
			Usage:       "Maximum upload size in bytes",
			Value:       10 << 20,
			Sources:     cli.EnvVars("QUANTUMCHAT_MAX_FILE_SIZE"),
			Destination: &a.maxFileSize,
		},
		&cli.DurationFlag{
			Name:        "generation-delay",
			Usage:       "Simulated inference latency per generation",
			Value:       500 * time.Millisecond,
			Sources:     cli.EnvVars("QUANTUMCHAT_GENERATION_DELAY"),
			Destination: &a.generationDelay,
		},
		&cli.DurationFlag{
			Name:        "generation-timeout",
			Usage:       "Cap on generation latency (0 disables the cap)",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("QUANTUMCHAT_GENERATION_TIMEOUT"),
			Destination: &a.generationTimeout,
		},
		&cli.StringFlag{
			Name:        "models-config",
			Usage:       "TOML file declaring the model catalog (built-in catalog when empty)",
			Sources:     cli.EnvVars("QUANTUMCHAT_MODELS_CONFIG"),
			Destination: &a.modelsPath,
		},
	}
}

// DefaultModel returns the configured default model ID
func (a *App) DefaultModel() string {
	return a.defaultModel
}

// MaxMessageLength returns the configured message length cap
func (a *App) MaxMessageLength() int {
	return a.maxMessageLength
}

// MaxFileSize returns the configured upload size cap
func (a *App) MaxFileSize() int64 {
	return a.maxFileSize
}

// GenerationDelay returns the configured simulated latency
func (a *App) GenerationDelay() time.Duration {
	return a.generationDelay
}

// GenerationTimeout returns the configured generation latency cap
func (a *App) GenerationTimeout() time.Duration {
	return a.generationTimeout
}

// modelEntry is one [[model]] block of the models config file
type modelEntry struct {
	ID           string   `toml:"id"`
	Name         string   `toml:"name"`
	Description  string   `toml:"description"`
	Capabilities []string `toml:"capabilities"`
	Version      string   `toml:"version"`
	Status       string   `toml:"status"`
}

type modelsFile struct {
	Models []modelEntry `toml:"model"`
}

// Configure builds the model catalog, loading the TOML file when one is
// configured and falling back to the built-in catalog otherwise.
func (a *App) Configure() (*catalog.Catalog, error) {
	if a.modelsPath == "" {
		return catalog.NewDefault(), nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(a.modelsPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read models config", goerr.V("path", a.modelsPath))
	}

	var file modelsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML models config", goerr.V("path", a.modelsPath))
	}

	descriptors := make([]model.ModelInfo, len(file.Models))
	for i, entry := range file.Models {
		descriptors[i] = model.ModelInfo{
			ID:           types.ModelID(entry.ID),
			Name:         entry.Name,
			Description:  entry.Description,
			Capabilities: entry.Capabilities,
			Version:      entry.Version,
			Status:       types.ModelStatus(entry.Status),
		}
	}

	cat, err := catalog.New(descriptors)
	if err != nil {
		return nil, goerr.Wrap(err, "models config validation failed", goerr.V("path", a.modelsPath))
	}
	return cat, nil
}
