package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gls254.mleku.dev"
	"gls254.mleku.dev/kex"
)

// decodeHex decodes a hex argument, naming it in the error
func decodeHex(what, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", what)
	}
	return b, nil
}

func (c *cli) keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a private key and print it with its public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := gls254.GenerateKey(rand.Reader)
			if err != nil {
				return err
			}
			defer key.Zero()

			sec := key.Bytes()
			pub := key.PublicKey()
			enc := pub.Bytes()
			c.logger.Debug("generated key pair", zap.String("pub", hex.EncodeToString(enc[:])))
			fmt.Fprintf(cmd.OutOrStdout(), "sec: %x\npub: %x\n", sec[:], enc[:])
			return nil
		},
	}
}

func (c *cli) pubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pub <sec>",
		Short: "Print the public key of a hex private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sec, err := decodeHex("private key", args[0])
			if err != nil {
				return err
			}
			key, err := gls254.NewPrivateKey(sec)
			if err != nil {
				return err
			}
			defer key.Zero()

			pub := key.PublicKey()
			enc := pub.Bytes()
			fmt.Fprintf(cmd.OutOrStdout(), "%x\n", enc[:])
			return nil
		},
	}
}

func (c *cli) ecdhCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ecdh <sec> <pub>",
		Short: "Print the raw shared secret of a private key and a peer public key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.variant()
			if err != nil {
				return err
			}
			sec, err := decodeHex("private key", args[0])
			if err != nil {
				return err
			}
			pub, err := decodeHex("public key", args[1])
			if err != nil {
				return err
			}

			party := kex.NewGLS254(v)
			defer party.Zero()
			if err = party.InitSec(sec); err != nil {
				return err
			}
			shared, err := party.ECDH(pub)
			if err != nil {
				return err
			}
			c.logger.Debug("computed shared secret", zap.Stringer("variant", v))
			fmt.Fprintf(cmd.OutOrStdout(), "%x\n", shared)
			return nil
		},
	}
}
