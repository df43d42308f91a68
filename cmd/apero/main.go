package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GustavoCaso/apero/internal/client"
	"github.com/GustavoCaso/apero/internal/config"
	"github.com/GustavoCaso/apero/internal/crypto"
	"github.com/GustavoCaso/apero/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "apero",
		Short:        "Share a clipboard between machines",
		Long:         "Copy and paste through a small HTTP server. Every payload is sealed with a pre-shared key and signed.",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (default: $HOME/.config/apero.toml)")

	cmd.AddCommand(
		newServeCmd(opts),
		newGenkeysCmd(),
		newSecretboxCmd(opts),
		newProvisionCmd(opts),
		newCopyCmd(opts),
		newPasteCmd(opts),
		newMoveCmd(opts),
		newListCmd(opts),
	)

	return cmd
}

// load reads the config file and configures the logger from it.
func (o *rootOptions) load() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	log.Configure(log.Config{Level: cfg.Log.Level})
	return cfg, nil
}

func (o *rootOptions) client() (*client.Client, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Client.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}
	return client.New(cfg.Client), nil
}

// secretBoxKey returns the key given on the command line, falling back to
// the client then the server key of the config file.
func (o *rootOptions) secretBoxKey(flag string) (crypto.SecretBoxKey, error) {
	if flag != "" {
		return crypto.SecretBoxKeyFromString(flag)
	}

	cfg, err := o.load()
	if err != nil {
		return crypto.SecretBoxKey{}, err
	}

	switch {
	case cfg.Client.PSKey.IsValid():
		return cfg.Client.PSKey, nil
	case cfg.Server.PSKey.IsValid():
		return cfg.Server.PSKey, nil
	default:
		return crypto.SecretBoxKey{}, fmt.Errorf("no key: pass --key or set ps_key in the config")
	}
}
