// Package cli implements the legwise command line: offline ranking,
// catalog inspection and validation.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/legwise/legwise/internal/catalog"
	"github.com/legwise/legwise/internal/journey"
)

// Configuration keys shared by flags, LEGWISE_* variables and .legwise.yaml.
const (
	keyConfig  = "config"
	keyCatalog = "catalog"
	keyTab     = "tab"
	keyModes   = "modes"
	keyWeight  = "weight"
	keyLimit   = "limit"
	keyDepart  = "depart"
	keyColor   = "color"
	keyVerbose = "verbose"
)

// BuildInfo is stamped in at link time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type app struct {
	v    *viper.Viper
	info BuildInfo
}

// NewRootCommand builds the legwise command tree. Each call gets its own
// viper instance, so commands can be executed repeatedly in tests.
func NewRootCommand(info BuildInfo) *cobra.Command {
	a := &app{v: viper.New(), info: info}

	root := &cobra.Command{
		Use:           "legwise",
		Short:         "Score and rank multi-leg journeys.",
		Long:          `Legwise combines first-mile, main-leg and last-mile options and ranks the door-to-door journeys by time, cost or a blend of both.`,
		Version:       info.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	root.PersistentFlags().String(keyConfig, "", "config file (default .legwise.yaml in . or $HOME)")
	root.PersistentFlags().String(keyCatalog, "", "catalog JSON file (default built-in catalog)")
	root.PersistentFlags().Bool(keyColor, true, "colourise table output")
	root.PersistentFlags().BoolP(keyVerbose, "v", false, "log planner activity to stderr")

	root.AddCommand(
		a.newRankCommand(),
		a.newCatalogCommand(),
		a.newValidateCommand(),
		a.newVersionCommand(),
	)
	return root
}

// Execute runs the command tree with args and returns the first error.
func Execute(ctx context.Context, info BuildInfo, args []string, out io.Writer) error {
	root := NewRootCommand(info)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)
	return root.ExecuteContext(ctx)
}

// initConfig merges defaults, the config file, LEGWISE_* variables and
// flags, in increasing order of precedence.
func (a *app) initConfig(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	if file := a.v.GetString(keyConfig); file != "" {
		a.v.SetConfigFile(file)
	} else {
		a.v.SetConfigName(".legwise")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		a.v.AddConfigPath("$HOME")
	}

	a.v.SetEnvPrefix("LEGWISE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	a.v.SetDefault(keyTab, journey.StrategySmart)
	a.v.SetDefault(keyLimit, journey.DefaultPolicy().ResultLimit)

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}
	return nil
}

// logger writes to stderr only in verbose mode.
func (a *app) logger(cmd *cobra.Command) zerolog.Logger {
	if !a.v.GetBool(keyVerbose) {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
}

func (a *app) loadCatalog() (*catalog.Catalog, error) {
	c, err := catalog.LoadFile(a.v.GetString(keyCatalog))
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

func (a *app) newPlanner(cmd *cobra.Command) (*journey.Planner, error) {
	c, err := a.loadCatalog()
	if err != nil {
		return nil, err
	}

	policy := journey.DefaultPolicy()
	if limit := a.v.GetInt(keyLimit); limit > 0 {
		policy.ResultLimit = limit
	}

	return journey.NewPlanner(journey.PlannerConfig{
		Catalog: c,
		Policy:  policy,
		Logger:  a.logger(cmd),
	}), nil
}
