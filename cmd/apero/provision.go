package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/GustavoCaso/apero/internal/crypto"
	"github.com/GustavoCaso/apero/internal/provisioning"
	"github.com/GustavoCaso/apero/internal/ui"
)

func newProvisionCmd(opts *rootOptions) *cobra.Command {
	var (
		keyFlag  string
		generate bool
	)

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Show the pre-shared key as a mnemonic or hex groups",
		Long:  "Display the pre-shared key so it can be typed on another machine. Switch between the mnemonic and hex tabs with m and x.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				key crypto.SecretBoxKey
				err error
			)
			if generate {
				key, err = crypto.NewSecretBoxKey()
			} else {
				key, err = opts.secretBoxKey(keyFlag)
			}
			if err != nil {
				return err
			}

			data, err := provisioning.New(key)
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				ui.InitialModel(data),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return err
			}

			if generate {
				fmt.Fprintf(cmd.OutOrStdout(), "ps_key = %q\n", key)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&keyFlag, "key", "", "base64 key to display instead of the configured ps_key")
	cmd.Flags().BoolVar(&generate, "new", false, "generate a new key")
	cmd.MarkFlagsMutuallyExclusive("key", "new")

	cmd.AddCommand(newRestoreCmd())

	return cmd
}

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore WORDS...",
		Short: "Rebuild a key from its mnemonic or hex groups",
		Example: "  apero provision restore abandon ability able ... (24 words)\n" +
			"  apero provision restore a0a1a2a3 a4a5a6a7 ... (8 groups)",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := restoreKey(args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ps_key = %q\n", key)
			return nil
		},
	}
}

// restoreKey accepts the words either as separate arguments or as a single
// quoted one.
func restoreKey(args []string) (crypto.SecretBoxKey, error) {
	words := strings.Fields(strings.Join(args, " "))

	switch len(words) {
	case provisioning.MnemonicWords:
		return provisioning.KeyFromMnemonic(words)
	case provisioning.HexGroups:
		return provisioning.KeyFromHex(words...)
	default:
		return crypto.SecretBoxKey{}, fmt.Errorf(
			"expected %d mnemonic words or %d hex groups, got %d",
			provisioning.MnemonicWords, provisioning.HexGroups, len(words),
		)
	}
}
