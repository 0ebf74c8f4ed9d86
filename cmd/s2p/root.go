package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexadamm/s2p-go/pkg/logs"
)

const envPrefix = "S2P_"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "s2p",
		Short: "Sign registration requests",
		Long: `s2p builds signed registration requests for gift cards and membership
cards, computes canonical request hashes and exports the public key of a
signing key as a JWKS document.

Every flag can also be set from the environment, for example --key-id from
S2P_KEY_ID. Flags given on the command line take precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setFlagsFromEnv(envPrefix, cmd.Flags())
		},
	}

	logs.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newSignCmd(),
		newHashCmd(),
		newJWKSCmd(),
		newVersionCmd(),
	)

	return cmd
}

func setFlagsFromEnv(prefix string, fs *pflag.FlagSet) {
	set := map[string]bool{}
	fs.Visit(func(f *pflag.Flag) {
		set[f.Name] = true
	})
	fs.VisitAll(func(f *pflag.Flag) {
		// ignore flags set from the commandline
		if set[f.Name] {
			return
		}
		// remove trailing _ to reduce common errors with the prefix, i.e. people setting it to MY_PROG_
		cleanPrefix := strings.TrimSuffix(prefix, "_")
		name := fmt.Sprintf("%s_%s", cleanPrefix, strings.ReplaceAll(strings.ToUpper(f.Name), "-", "_"))
		if e, ok := os.LookupEnv(name); ok {
			_ = f.Value.Set(e)
		}
	})
}
