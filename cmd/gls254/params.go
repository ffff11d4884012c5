package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gls254.mleku.dev"
)

func (c *cli) paramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the curve constants and the derived decomposition basis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			g := gls254.Generator()
			genc := g.Bytes()
			lambda := gls254.Lambda()
			lenc := lambda.Bytes()
			v1, v2 := gls254.LatticeBasis()

			fmt.Fprintln(out, "field:     GF(2^127)[u]/(u^2 + u + 1), GF(2^127) = GF(2)[z]/(z^127 + z^63 + 1)")
			fmt.Fprintln(out, "curve:     y^2 + x*y = x^3 + u*x^2 + (1 + z^27)")
			fmt.Fprintf(out, "order:     %#x\n", gls254.Order())
			fmt.Fprintf(out, "generator: %x\n", genc[:])
			fmt.Fprintf(out, "lambda:    %x (little-endian)\n", lenc[:])
			fmt.Fprintf(out, "basis v1:  (%d, %d)\n", v1[0], v1[1])
			fmt.Fprintf(out, "basis v2:  (%d, %d)\n", v2[0], v2[1])
			for _, v := range gls254.Variants() {
				fmt.Fprintf(out, "variant:   %s (window %d, %d table(s))\n", v, v.Window(), v.Tables())
			}
			return nil
		},
	}
}
