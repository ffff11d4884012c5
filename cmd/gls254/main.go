// Command gls254 generates GLS254 keys, performs key exchange and scalar
// multiplication, and times the multiplication variants.
package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gls254.mleku.dev"
)

// cmdRoot is the command name and the environment variable prefix
const cmdRoot = "gls254"

// Configuration keys
const (
	keyVariant    = "variant"
	keyIterations = "iterations"
	keyLogLevel   = "log-level"
	keyConfig     = "config"
)

// cli carries the configuration and logger shared by all subcommands
type cli struct {
	config *viper.Viper
	logger *zap.Logger
}

func main() {
	// On failure Cobra prints the usage message and error string, so we only
	// need to exit with a non-0 status
	if newMainCmd().Execute() != nil {
		os.Exit(1)
	}
}

// newMainCmd builds the command tree with its own configuration instance
func newMainCmd() *cobra.Command {
	c := &cli{config: viper.New(), logger: zap.NewNop()}

	// For environment variables: GLS254_VARIANT, GLS254_LOG_LEVEL, ...
	c.config.SetEnvPrefix(cmdRoot)
	c.config.AutomaticEnv()
	c.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	mainCmd := &cobra.Command{
		Use:           cmdRoot,
		Short:         "GLS254 constant-time scalar multiplication and key exchange",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	flags := mainCmd.PersistentFlags()
	flags.String(keyConfig, "", "optional configuration file (yaml, json or toml)")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	flags.String(keyVariant, gls254.DefaultVariant.String(), "scalar multiplication variant")
	c.bindFlags(flags, keyConfig, keyLogLevel, keyVariant)

	mainCmd.AddCommand(c.keygenCmd())
	mainCmd.AddCommand(c.pubCmd())
	mainCmd.AddCommand(c.ecdhCmd())
	mainCmd.AddCommand(c.mulCmd())
	mainCmd.AddCommand(c.paramsCmd())
	mainCmd.AddCommand(c.benchCmd())
	return mainCmd
}

// bindFlags binds the named flags to the configuration keys of the same name
func (c *cli) bindFlags(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := c.config.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// init reads the optional config file and builds the logger
func (c *cli) init() error {
	if file := c.config.GetString(keyConfig); file != "" {
		c.config.SetConfigFile(file)
		if err := c.config.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %s", file)
		}
	}

	level, err := zapcore.ParseLevel(c.config.GetString(keyLogLevel))
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	logger, err := zc.Build()
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	c.logger = logger.Named(cmdRoot)
	return nil
}

// variant returns the configured multiplication variant
func (c *cli) variant() (gls254.Variant, error) {
	return gls254.ParseVariant(c.config.GetString(keyVariant))
}
