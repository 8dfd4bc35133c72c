package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/quantum-travel/quantumchat/pkg/cli/config"
)

// cmdModels prints the effective model catalog, which is useful for
// verifying a models-config file before serving with it.
func cmdModels() *cli.Command {
	var appCfg config.App

	return &cli.Command{
		Name:  "models",
		Usage: "Print the model catalog as JSON",
		Flags: appCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			cat, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to build model catalog")
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(cat.List()); err != nil {
				return goerr.Wrap(err, "failed to encode catalog")
			}
			return nil
		},
	}
}
