package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/inoxlang/memds/internal/config"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

const (
	SEARCH_SUBCMD                = "search"
	STACK_SUBCMD                 = "stack"
	RSTACK_SUBCMD                = "rstack"
	QUEUE_SUBCMD                 = "queue"
	BAG_SUBCMD                   = "bag"
	INSTALL_COMPLETIONS_SUBCMD   = "install-completions"
	UNINSTALL_COMPLETIONS_SUBCMD = "uninstall-completions"
	HELP_SUBCMD                  = "help"
)

var (
	SUBCOMMANDS = []string{
		SEARCH_SUBCMD, STACK_SUBCMD, RSTACK_SUBCMD, QUEUE_SUBCMD, BAG_SUBCMD,
		INSTALL_COMPLETIONS_SUBCMD, UNINSTALL_COMPLETIONS_SUBCMD, HELP_SUBCMD,
	}

	CONTAINER_SUBCOMMANDS = []string{STACK_SUBCMD, RSTACK_SUBCMD, QUEUE_SUBCMD, BAG_SUBCMD}

	HELP_SUBCMD_EQUIVALENTS = []string{"--help", "-help", "-h"}

	SUBCOMMAND_DESCRIPTIONS = [][2]string{
		{SEARCH_SUBCMD, "binary search keys in the sorted sequence 0..n-1"},
		{STACK_SUBCMD, "push the tokens read from stdin on a linked stack, '-' pops"},
		{RSTACK_SUBCMD, "push the tokens read from stdin on a resizing array stack, '-' pops"},
		{QUEUE_SUBCMD, "enqueue the tokens read from stdin, '-' dequeues"},
		{BAG_SUBCMD, "add the tokens read from stdin to a bag"},
		{INSTALL_COMPLETIONS_SUBCMD, "install CLI completions (bash, zsh and fish)"},
		{UNINSTALL_COMPLETIONS_SUBCMD, "uninstall CLI completions"},
		{HELP_SUBCMD, "show the general help or command-specific help"},
	}

	MEMDS_CMD_HELP = makeHelp()

	commonFlagPredictors = map[string]complete.Predictor{
		"format":    predict.Set(config.FORMATS),
		"log-level": predict.Set{"trace", "debug", "info", "warn", "error"},
		"config":    predict.Files("*.yaml"),
	}

	completer = &complete.Command{
		Sub: map[string]*complete.Command{
			SEARCH_SUBCMD: {
				Flags: withCommonFlags(map[string]complete.Predictor{
					"n": predict.Nothing,
				}),
			},
			STACK_SUBCMD:                 {Flags: withCommonFlags(nil)},
			RSTACK_SUBCMD:                {Flags: withCommonFlags(nil)},
			QUEUE_SUBCMD:                 {Flags: withCommonFlags(nil)},
			BAG_SUBCMD:                   {Flags: withCommonFlags(nil)},
			INSTALL_COMPLETIONS_SUBCMD:   {},
			UNINSTALL_COMPLETIONS_SUBCMD: {},
			HELP_SUBCMD:                  {Args: predict.Set(SUBCOMMANDS)},
		},
	}
)

func makeHelp() string {
	var b strings.Builder
	b.WriteString("usage: " + COMMAND_NAME + " <command> [flags] [args]\n\ncommands:\n")

	for _, entry := range SUBCOMMAND_DESCRIPTIONS {
		fmt.Fprintf(&b, "  %-22s %s\n", entry[0], entry[1])
	}
	return b.String()
}

func withCommonFlags(flags map[string]complete.Predictor) map[string]complete.Predictor {
	result := map[string]complete.Predictor{}
	for name, predictor := range commonFlagPredictors {
		result[name] = predictor
	}
	for name, predictor := range flags {
		result[name] = predictor
	}
	return result
}

// commonFlags are the flags accepted by all the subcommands that load the configuration.
type commonFlags struct {
	configPath string
	format     string
	logLevel   string
}

func addCommonFlags(flags *flag.FlagSet) *commonFlags {
	common := &commonFlags{}
	flags.StringVar(&common.configPath, "config", "", "path of the configuration file (default: $XDG_CONFIG_HOME/"+config.CONFIG_FILE_RELPATH+")")
	flags.StringVar(&common.format, "format", "", "output format: "+strings.Join(config.FORMATS, " or "))
	flags.StringVar(&common.logLevel, "log-level", "", "minimum level of the logs written to stderr")
	return common
}

// resolveConfig loads the configuration and applies the flags on top of it.
func (f *commonFlags) resolveConfig() (config.Config, error) {
	var cfg config.Config
	var err error

	if f.configPath != "" {
		cfg, err = config.LoadFile(f.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return config.Config{}, err
	}

	if f.format != "" {
		cfg.Format = f.format
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	return cfg, cfg.Validate()
}

func showHelp(flags *flag.FlagSet, outW io.Writer) {
	flags.SetOutput(outW)
	fmt.Fprintf(outW, "usage: %s %s [flags] [args]\n\nflags:\n", COMMAND_NAME, flags.Name())
	flags.PrintDefaults()
}
