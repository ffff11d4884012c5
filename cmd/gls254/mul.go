package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gls254.mleku.dev"
)

// parsePoint decodes a hex point; "G" names the generator
func parsePoint(s string) (gls254.Point, error) {
	if strings.EqualFold(s, "g") {
		return gls254.Generator(), nil
	}
	b, err := decodeHex("point", s)
	if err != nil {
		return gls254.Point{}, err
	}
	return gls254.NewPointFromBytes(b)
}

func (c *cli) mulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul <scalar> <point>",
		Short: "Print k*P for a hex scalar and a hex point (or G)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.variant()
			if err != nil {
				return err
			}
			kb, err := decodeHex("scalar", args[0])
			if err != nil {
				return err
			}
			k, err := gls254.NewScalarFromBytes(kb)
			if err != nil {
				return err
			}
			p, err := parsePoint(args[1])
			if err != nil {
				return err
			}

			r := gls254.ScalarMult(&k, &p, v)
			enc := r.Bytes()
			fmt.Fprintf(cmd.OutOrStdout(), "%x\n", enc[:])
			return nil
		},
	}
}

func (c *cli) benchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time scalar multiplications with the configured variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.variant()
			if err != nil {
				return err
			}
			n := c.config.GetInt(keyIterations)
			if n <= 0 {
				return errors.Errorf("iterations must be positive, got %d", n)
			}

			k := gls254.DeriveScalar("GLS254/bench", []byte(v.String()))
			p := gls254.Generator()
			c.logger.Info("starting benchmark", zap.Stringer("variant", v), zap.Int("iterations", n))

			start := time.Now()
			for i := 0; i < n; i++ {
				p = gls254.ScalarMult(&k, &p, v)
			}
			elapsed := time.Since(start)

			per := elapsed / time.Duration(n)
			c.logger.Info("benchmark done", zap.Duration("elapsed", elapsed), zap.Duration("per-op", per))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d iterations, %v per multiplication\n", v, n, per)
			return nil
		},
	}
	cmd.Flags().Int(keyIterations, 1000, "number of scalar multiplications")
	c.bindFlags(cmd.Flags(), keyIterations)
	return cmd
}
