// Package cmd provides the command-line interface for patrol.
//
// Configuration System:
//
//	Values are resolved with the following precedence:
//	1. Command-line flags (--workers, --format, ...) - highest priority
//	2. Environment variables (PATROL_SOLVE_WORKERS, PATROL_LOG_LEVEL, ...)
//	3. Configuration file (--config, PATROL_CONFIG_FILE, or .patrol.yml)
//	4. Built-in defaults - lowest priority
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/patrol/internal/config"
)

var (
	cfgFile   string
	configErr error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "patrol [input]",
	Short: "Simulate a guard patrol and find loop-inducing obstacles",
	Long: `patrol reads a grid where '#' marks an obstacle, '.' open floor and
'^' (or '>', 'v', '<') the guard, then prints two numbers:

  1. how many distinct cells the guard covers before leaving the grid
  2. how many single extra obstacles would trap the guard in a loop

Quick Start:
  patrol input.txt                 Solve a puzzle file
  patrol solve --workers 8 in.txt  Try candidate obstacles on 8 goroutines
  cat in.txt | patrol solve        Read the grid from stdin
  patrol watch input.txt           Re-solve whenever the file changes
  patrol config                    Show the effective configuration`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: checkConfig,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && stdinIsTerminal() {
			return cmd.Help()
		}
		return runSolve(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. SIGINT and SIGTERM cancel the running command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is .patrol.yml, can also use PATROL_CONFIG_FILE env var)")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")
	pf.IntP("workers", "w", 0, "goroutines trying candidate obstacles (0 = one per CPU)")
	pf.StringP("format", "f", config.FormatPlain, "output format (plain, summary, yaml, json)")
	pf.IntP("part", "p", 0, "answer to print: 0 both, 1 distinct cells, 2 loop obstacles")
	pf.String("profile", "", "write a pprof profile to the working directory (cpu, mem)")

	bindFlags(pf, map[string]string{
		"log.level":     "log-level",
		"log.format":    "log-format",
		"solve.workers": "workers",
		"solve.format":  "format",
		"solve.part":    "part",
		"solve.profile": "profile",
	})
}

// bindFlags binds each config key to the named flag of fs.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := viper.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %q: %v", name, err))
		}
	}
}

// initConfig wires viper to its sources. Loading priority for the file:
//  1. --config flag
//  2. PATROL_CONFIG_FILE environment variable
//  3. .patrol.yml in the current directory, if present
func initConfig() {
	config.SetDefaults(viper.GetViper())

	explicit := true
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("PATROL_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		explicit = false
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".patrol")
	}

	viper.SetEnvPrefix("PATROL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
	case !explicit && errors.As(err, &notFound):
		// no default file: defaults, env and flags only
	default:
		configErr = fmt.Errorf("config: read %s: %w", viper.ConfigFileUsed(), err)
	}
}

// checkConfig surfaces a config file that was named but could not be read.
func checkConfig(*cobra.Command, []string) error {
	return configErr
}

// loadConfig resolves the effective configuration.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

// stdinIsTerminal reports whether stdin is an interactive terminal rather
// than a pipe or file.
func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return true
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
