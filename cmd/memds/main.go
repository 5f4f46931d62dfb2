package main

import (
	// ====================== MEMDS IMPORTS ============================
	"github.com/inoxlang/memds/internal/config"
	"github.com/inoxlang/memds/internal/utils"

	// ====================== STDLIB ============================
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	// ====================== THIRD PARTY ============================
	"github.com/cockroachdb/errors"
	"github.com/muesli/termenv"
	"github.com/posener/complete/v2/install"
	"github.com/rs/zerolog"
)

const (
	ERROR_STATUS_CODE = 1

	COMMAND_NAME          = "memds"
	SUBCMD_LOG_FIELD_NAME = "subcmd"
)

func main() {
	//handle completions
	completer.Complete(COMMAND_NAME)

	statusCode := _main(os.Args, os.Stdin, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, inR io.Reader, outW io.Writer, errW io.Writer) (statusCode int) {
	if len(args) < 2 {
		fmt.Fprint(errW, MEMDS_CMD_HELP)
		return ERROR_STATUS_CODE
	}

	mainSubCommand := args[1]
	mainSubCommandArgs := args[2:]

	//if the command has the shape help <subcommand> ... we ask the subcommand to print its help message.
	if mainSubCommand == HELP_SUBCMD && len(mainSubCommandArgs) > 0 && slices.Contains(SUBCOMMANDS, mainSubCommandArgs[0]) {
		mainSubCommand = mainSubCommandArgs[0]
		mainSubCommandArgs = []string{"-h"}
	}

	if mainSubCommand == HELP_SUBCMD || slices.Contains(HELP_SUBCMD_EQUIVALENTS, mainSubCommand) {
		fmt.Fprint(outW, MEMDS_CMD_HELP)
		return 0
	}

	//unknown command
	if !slices.Contains(SUBCOMMANDS, mainSubCommand) {
		fmt.Fprintf(errW, "unknown command '%s'", mainSubCommand)

		closest, _, ok := utils.FindClosestString(context.Background(), SUBCOMMANDS, mainSubCommand, 2)
		if ok {
			fmt.Fprintf(errW, ", did you mean '%s' ?\n", closest)
		} else {
			fmt.Fprint(errW, "\n"+MEMDS_CMD_HELP)
		}
		return ERROR_STATUS_CODE
	}

	switch mainSubCommand {
	case INSTALL_COMPLETIONS_SUBCMD:
		err := install.Install(COMMAND_NAME)
		if err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
		fmt.Fprintln(outW, "installed")
		return
	case UNINSTALL_COMPLETIONS_SUBCMD:
		err := install.Uninstall(COMMAND_NAME)
		if err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
		fmt.Fprintln(outW, "uninstalled")
		return
	case SEARCH_SUBCMD:
		return SearchKeys(mainSubCommand, mainSubCommandArgs, outW, errW)
	default:
		return RunContainerClient(mainSubCommand, mainSubCommandArgs, inR, outW, errW)
	}
}

// newLogger creates a logger writing JSON records to w.
func newLogger(w io.Writer, cfg config.Config, subcmd string) zerolog.Logger {
	level, err := cfg.ZerologLevel()
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str(SUBCMD_LOG_FIELD_NAME, subcmd).Logger()
}

// newStyler returns a termenv output used to style the text written to the standard output,
// styling is a no-op if colors are disabled.
func newStyler(w io.Writer, cfg config.Config) *termenv.Output {
	profile := termenv.Ascii
	if cfg.Colorize() {
		profile = termenv.ANSI256
	}
	return termenv.NewOutput(w, termenv.WithProfile(profile))
}

// logAndReturnError logs err and returns the error status code.
func logAndReturnError(logger zerolog.Logger, err error, msg string) int {
	logger.Error().Err(err).Msg(msg)
	return ERROR_STATUS_CODE
}

func wrapConfigError(err error) error {
	return errors.Wrap(err, "failed to load the configuration")
}
