package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/quantum-travel/quantumchat/pkg/cli/config"
	"github.com/quantum-travel/quantumchat/pkg/domain/types"
)

func runWithFlags(t *testing.T, flags []cli.Flag, args []string, action func(ctx context.Context, c *cli.Command) error) {
	t.Helper()
	cmd := &cli.Command{
		Name:   "test",
		Flags:  flags,
		Action: action,
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...))).Required()
}

func TestAppConfig_DefaultCatalog(t *testing.T) {
	var appCfg config.App
	runWithFlags(t, appCfg.Flags(), nil, func(ctx context.Context, c *cli.Command) error {
		cat, err := appCfg.Configure()
		gt.NoError(t, err).Required()
		gt.Number(t, cat.Len()).Equal(2)
		gt.Value(t, appCfg.DefaultModel()).Equal("quantum-ai")
		gt.Number(t, appCfg.MaxMessageLength()).Equal(4000)
		return nil
	})
}

func TestAppConfig_ModelsFromTOML(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "models.toml")
		content := `
[[model]]
id = "test-model"
name = "Test Model"
description = "A model for testing"
capabilities = ["testing"]
version = "0.1.0"

[[model]]
id = "other-model"
name = "Other Model"
capabilities = ["more testing"]
version = "0.2.0"
status = "inactive"
`
		gt.NoError(t, os.WriteFile(path, []byte(content), 0o644)).Required()

		var appCfg config.App
		runWithFlags(t, appCfg.Flags(), []string{"--models-config", path}, func(ctx context.Context, c *cli.Command) error {
			cat, err := appCfg.Configure()
			gt.NoError(t, err).Required()
			gt.Number(t, cat.Len()).Equal(2)

			m, err := cat.Get("test-model")
			gt.NoError(t, err).Required()
			gt.Value(t, m.Name).Equal("Test Model")
			gt.Value(t, m.Status).Equal(types.ModelStatusActive)

			other, err := cat.Get("other-model")
			gt.NoError(t, err).Required()
			gt.Value(t, other.Status).Equal(types.ModelStatusInactive)
			return nil
		})
	})

	t.Run("descriptor without capabilities fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "models.toml")
		content := `
[[model]]
id = "bad-model"
name = "Bad Model"
version = "0.1.0"
`
		gt.NoError(t, os.WriteFile(path, []byte(content), 0o644)).Required()

		var appCfg config.App
		runWithFlags(t, appCfg.Flags(), []string{"--models-config", path}, func(ctx context.Context, c *cli.Command) error {
			_, err := appCfg.Configure()
			gt.Error(t, err)
			return nil
		})
	})

	t.Run("missing file fails", func(t *testing.T) {
		var appCfg config.App
		runWithFlags(t, appCfg.Flags(), []string{"--models-config", "/nonexistent/models.toml"}, func(ctx context.Context, c *cli.Command) error {
			_, err := appCfg.Configure()
			gt.Error(t, err)
			return nil
		})
	})
}

func TestRepositoryConfig(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		var repoCfg config.Repository
		runWithFlags(t, repoCfg.Flags(), nil, func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			gt.NoError(t, err).Required()
			gt.NoError(t, repo.Close())
			return nil
		})
	})

	t.Run("sqlite backend requires a path", func(t *testing.T) {
		var repoCfg config.Repository
		runWithFlags(t, repoCfg.Flags(), []string{"--repository-backend", "sqlite"}, func(ctx context.Context, c *cli.Command) error {
			_, err := repoCfg.Configure(ctx)
			gt.Error(t, err)
			return nil
		})
	})

	t.Run("sqlite backend with path", func(t *testing.T) {
		var repoCfg config.Repository
		dbPath := filepath.Join(t.TempDir(), "chat.db")
		runWithFlags(t, repoCfg.Flags(), []string{"--repository-backend", "sqlite", "--sqlite-path", dbPath}, func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			gt.NoError(t, err).Required()
			gt.NoError(t, repo.Close())
			return nil
		})
	})

	t.Run("unknown backend fails", func(t *testing.T) {
		var repoCfg config.Repository
		runWithFlags(t, repoCfg.Flags(), []string{"--repository-backend", "cassandra"}, func(ctx context.Context, c *cli.Command) error {
			_, err := repoCfg.Configure(ctx)
			gt.Error(t, err)
			return nil
		})
	})
}
