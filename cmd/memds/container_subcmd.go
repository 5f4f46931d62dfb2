package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"github.com/inoxlang/memds/internal/config"
	"github.com/inoxlang/memds/internal/memds"
	"github.com/inoxlang/memds/internal/utils"
	"github.com/rs/zerolog"
)

const (
	REMOVE_TOKEN = "-"
)

// containerClient drives one of the containers, Remove_ is nil for containers that do not support removal.
type containerClient struct {
	Name    string
	Add_    func(item string)
	Remove_ func() (string, error)
	Size_   func() int
	Values_ func() []string
}

type containerReport struct {
	Structure string   `json:"structure"`
	Removed   []string `json:"removed"`
	Remaining []string `json:"remaining"`
	Size      int      `json:"size"`
}

func newContainerClient(subcmd string, logger zerolog.Logger) *containerClient {
	switch subcmd {
	case STACK_SUBCMD:
		s := memds.NewLinkedStack[string]()
		return &containerClient{Name: "stack", Add_: s.Push, Remove_: s.Pop, Size_: s.Size, Values_: s.Values}
	case RSTACK_SUBCMD:
		s := memds.NewResizingArrayStackWithConfig(memds.ResizingArrayStackConfig[string]{
			OnResize: func(oldCapacity, newCapacity int) {
				logger.Debug().Int("old-capacity", oldCapacity).Int("new-capacity", newCapacity).Msg("resized array")
			},
		})
		return &containerClient{Name: "stack", Add_: s.Push, Remove_: s.Pop, Size_: s.Size, Values_: s.Values}
	case QUEUE_SUBCMD:
		q := memds.NewQueue[string]()
		return &containerClient{Name: "queue", Add_: q.Enqueue, Remove_: q.Dequeue, Size_: q.Size, Values_: q.Values}
	case BAG_SUBCMD:
		b := memds.NewBag[string]()
		return &containerClient{Name: "bag", Add_: b.Add, Size_: b.Size, Values_: b.Values}
	default:
		panic(errors.AssertionFailedf("%s is not a container subcommand", subcmd))
	}
}

// RunContainerClient reads whitespace-separated tokens from inR and adds them to a container,
// for containers supporting removal the '-' token removes an item and prints it.
func RunContainerClient(subcmd string, args []string, inR io.Reader, outW, errW io.Writer) (exitCode int) {
	flags := flag.NewFlagSet(subcmd, flag.ContinueOnError)
	flags.SetOutput(errW)
	common := addCommonFlags(flags)

	if slices.Contains(args, "-h") {
		showHelp(flags, outW)
		return 0
	}

	if err := flags.Parse(args); err != nil {
		return ERROR_STATUS_CODE
	}

	if flags.NArg() != 0 {
		fmt.Fprintf(errW, "unexpected arguments: %s, tokens are read from stdin\n", strings.Join(flags.Args(), " "))
		return ERROR_STATUS_CODE
	}

	cfg, err := common.resolveConfig()
	if err != nil {
		fmt.Fprintln(errW, wrapConfigError(err))
		return ERROR_STATUS_CODE
	}
	logger := newLogger(errW, cfg, subcmd)
	client := newContainerClient(subcmd, logger)
	styler := newStyler(outW, cfg)
	textOutput := cfg.Format == config.TEXT_FORMAT

	removed := []string{}
	scanner := bufio.NewScanner(inR)
	scanner.Split(bufio.ScanWords)
	tokenIndex := 0

	for scanner.Scan() {
		token := scanner.Text()

		if token != REMOVE_TOKEN || client.Remove_ == nil {
			client.Add_(token)
			tokenIndex++
			continue
		}

		item, err := client.Remove_()
		if err != nil {
			if textOutput && len(removed) > 0 {
				fmt.Fprintln(outW)
			}
			err = errors.Wrapf(err, "token %d", tokenIndex)
			return logAndReturnError(logger, err, "failed to remove an item")
		}
		removed = append(removed, item)
		tokenIndex++

		if textOutput {
			fmt.Fprint(outW, styler.String(item).Foreground(styler.Color("2")), " ")
		}
	}

	if err := scanner.Err(); err != nil {
		return logAndReturnError(logger, errors.Wrap(err, "failed to read the tokens"), "failed to read stdin")
	}

	logger.Debug().Int("tokens", tokenIndex).Int("removed", len(removed)).Msg("read all the tokens")

	if !textOutput {
		report := containerReport{
			Structure: client.Name,
			Removed:   removed,
			Remaining: client.Values_(),
			Size:      client.Size_(),
		}
		fmt.Fprintf(outW, "%s\n", utils.Must(json.Marshal(report)))
		return 0
	}

	if len(removed) > 0 {
		fmt.Fprintln(outW)
	}

	if client.Remove_ == nil {
		fmt.Fprintf(outW, "(%d items in %s)\n", client.Size_(), client.Name)
	} else {
		fmt.Fprintf(outW, "(%d left on %s)\n", client.Size_(), client.Name)
	}

	if client.Size_() > 0 {
		fmt.Fprintln(outW, strings.Join(client.Values_(), " "))
	}
	return 0
}
