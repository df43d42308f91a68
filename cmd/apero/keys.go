package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GustavoCaso/apero/internal/crypto"
)

func newGenkeysCmd() *cobra.Command {
	var secretBox, keyPair bool

	cmd := &cobra.Command{
		Use:   "genkeys",
		Short: "Generate a secretbox key or an ed25519 key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			switch {
			case secretBox:
				key, err := crypto.NewSecretBoxKey()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "ps_key = %q\n", key)

			case keyPair:
				pub, priv, err := crypto.GenerateKeyPair()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "sign_private_key = %q\n", priv)
				fmt.Fprintf(out, "sign_public_key = %q\n", pub)

			default:
				return errors.New("one of --secretbox or --keypair is required")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&secretBox, "secretbox", false, "generate a key for a secretbox")
	cmd.Flags().BoolVar(&keyPair, "keypair", false, "generate an ed25519 key pair")
	cmd.MarkFlagsMutuallyExclusive("secretbox", "keypair")

	return cmd
}

func newSecretboxCmd(opts *rootOptions) *cobra.Command {
	var (
		keyFlag    string
		open, seal bool
	)

	cmd := &cobra.Command{
		Use:   "secretbox MESSAGE",
		Short: "Seal and open secret boxes",
		Long:  "Seal a message into a hex encoded box, or open one. The key defaults to the ps_key of the config file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !open && !seal {
				return errors.New("one of --open or --seal is required")
			}

			key, err := opts.secretBoxKey(keyFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if open {
				box, err := hex.DecodeString(args[0])
				if err != nil {
					return fmt.Errorf("decoding box: %w", err)
				}
				message, ok := crypto.SecretBoxOpen(box, key)
				if !ok {
					return crypto.ErrUnableToOpen
				}
				fmt.Fprintf(out, "%s\n", message)
				return nil
			}

			box, err := crypto.SecretBoxSeal([]byte(args[0]), key)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%x\n", box)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyFlag, "key", "", "base64 secret key used to seal or open the box")
	cmd.Flags().BoolVar(&open, "open", false, "open a sealed box")
	cmd.Flags().BoolVar(&seal, "seal", false, "seal a message into a box")
	cmd.MarkFlagsMutuallyExclusive("open", "seal")

	return cmd
}
