package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/log"
	"github.com/katalvlaran/wordladder/word"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Version string

const (
	configF    = "config"
	verbosityF = "verbosity"
	indexF     = "index"
	lowercaseF = "lowercase"
	formatF    = "format"
	maxDepthF  = "max-depth"

	defaultConfig    = ""
	defaultVerbosity = "warn"
	defaultIndex     = false
	defaultLowercase = false
	defaultFormat    = FormatDebug
	defaultMaxDepth  = 0

	envPrefix = "WORDLADDER"

	configFlagUsage    = "The yaml configuration file."
	verbosityFlagUsage = "Verbosity of the logs. Options: debug, info, warn, error."
	indexUsage         = "Index the dictionary by wildcard pattern. " +
		"Faster for large dictionaries, same results."
	lowercaseUsage = "Fold dictionary words, origin and target to lower case."
	formatUsage    = "Output format of the ladder. Options: debug, json, yaml."
	maxDepthUsage  = "Longest ladder to look for, in steps. 0 means unlimited."
)

// Config holds the settings merged from flags, environment and config file.
type Config struct {
	Verbosity string `mapstructure:"verbosity"`
	Index     bool   `mapstructure:"index"`
	Lowercase bool   `mapstructure:"lowercase"`
	Format    string `mapstructure:"format"`
	MaxDepth  int    `mapstructure:"max-depth"`
}

// NewCmd returns the root command:
//
//	wordladder <dictionary> <origin> <target>
func NewCmd() *cobra.Command {
	var cfgFile string
	format := defaultFormat

	cmd := &cobra.Command{
		Use:   "wordladder <dictionary> <origin> <target> [flags]",
		Short: "Find the shortest ladder between two words.",
		Long: "Find the shortest sequence of dictionary words leading from origin to target,\n" +
			"changing exactly one letter at each step. The dictionary holds one word per line.",
		Version:       Version,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&cfgFile, configF, defaultConfig, configFlagUsage)
	cmd.Flags().String(verbosityF, defaultVerbosity, verbosityFlagUsage)
	cmd.Flags().Bool(indexF, defaultIndex, indexUsage)
	cmd.Flags().Bool(lowercaseF, defaultLowercase, lowercaseUsage)
	cmd.Flags().Var(&format, formatF, formatUsage)
	cmd.Flags().Int(maxDepthF, defaultMaxDepth, maxDepthUsage)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		if cfgFile != "" {
			v.SetConfigType("yaml")
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return err
			}
		}
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		cfg := new(Config)
		if err := v.Unmarshal(cfg); err != nil {
			return err
		}

		return run(cmd, cfg, args[0], args[1], args[2])
	}

	return cmd
}

func run(cmd *cobra.Command, cfg *Config, dictPath, origin, target string) error {
	var outFormat Format
	if err := outFormat.Set(cfg.Format); err != nil {
		return err
	}
	logger, err := log.NewProductionLogger(cfg.Verbosity)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Lowercase {
		origin, target = strings.ToLower(origin), strings.ToLower(target)
	}
	originW, err := word.Parse(origin)
	if err != nil {
		return fmt.Errorf("origin: %w", err)
	}
	targetW, err := word.Parse(target)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}

	loadOpts := []dictionary.Option{
		dictionary.WithLength(len(origin)),
		dictionary.WithLogger(logger),
	}
	if cfg.Index {
		loadOpts = append(loadOpts, dictionary.WithPatternIndex())
	}
	if cfg.Lowercase {
		loadOpts = append(loadOpts, dictionary.WithLowercase())
	}
	s, _, err := dictionary.LoadFile(dictPath, loadOpts...)
	if err != nil {
		return err
	}

	g, err := ladder.New(s,
		ladder.WithContext(cmd.Context()),
		ladder.WithMaxDepth(cfg.MaxDepth),
		ladder.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	result, err := g.Ladder(originW, targetW)
	switch {
	case errors.Is(err, ladder.ErrWordNotFound), errors.Is(err, ladder.ErrNoPath):
		logger.Warnw("no ladder", "origin", origin, "target", target, "reason", err.Error())
	case err != nil:
		return err
	default:
		logger.Infow("ladder found", "origin", origin, "target", target, "steps", len(result)-1)
	}

	return writeLadder(cmd.OutOrStdout(), outFormat, word.Strings(result))
}
