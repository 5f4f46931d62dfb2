package main

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"github.com/inoxlang/memds/internal/config"
	"github.com/inoxlang/memds/internal/search"
	"github.com/inoxlang/memds/internal/utils"
)

const (
	DEFAULT_SEARCH_SEQUENCE_SIZE = 10
)

var (
	DEFAULT_SEARCH_KEYS = []int{1, 5, 11}
)

type searchReport struct {
	Size    int            `json:"size"`
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Key   int `json:"key"`
	Index int `json:"index"`
}

// SearchKeys searches the keys passed as arguments in the sequence 0..n-1,
// without arguments the keys 1, 5 and 11 are searched.
func SearchKeys(subcmd string, args []string, outW, errW io.Writer) (exitCode int) {
	flags := flag.NewFlagSet(subcmd, flag.ContinueOnError)
	flags.SetOutput(errW)

	var size int
	flags.IntVar(&size, "n", DEFAULT_SEARCH_SEQUENCE_SIZE, "size of the searched sequence")
	common := addCommonFlags(flags)

	if slices.Contains(args, "-h") {
		showHelp(flags, outW)
		return 0
	}

	if err := flags.Parse(args); err != nil {
		return ERROR_STATUS_CODE
	}

	cfg, err := common.resolveConfig()
	if err != nil {
		fmt.Fprintln(errW, wrapConfigError(err))
		return ERROR_STATUS_CODE
	}
	logger := newLogger(errW, cfg, subcmd)

	if size < 0 {
		return logAndReturnError(logger, errors.Newf("negative sequence size: %d", size), "invalid arguments")
	}

	keys, err := parseKeys(flags.Args())
	if err != nil {
		return logAndReturnError(logger, err, "invalid arguments")
	}

	sequence := make([]int, size)
	for i := range sequence {
		sequence[i] = i
	}

	logger.Debug().Int("size", size).Ints("keys", keys).Msg("searching keys")

	report := searchReport{Size: size, Results: make([]searchResult, 0, len(keys))}
	for _, key := range keys {
		report.Results = append(report.Results, searchResult{Key: key, Index: search.IndexOf(sequence, key)})
	}

	if cfg.Format == config.JSON_FORMAT {
		fmt.Fprintf(outW, "%s\n", utils.Must(json.Marshal(report)))
		return 0
	}

	styler := newStyler(outW, cfg)
	for _, result := range report.Results {
		index := styler.String(strconv.Itoa(result.Index))
		if result.Index == search.NOT_FOUND {
			index = index.Foreground(styler.Color("1"))
		}
		fmt.Fprintf(outW, "indexOf(%d) = %s\n", result.Key, index)
	}
	return 0
}

func parseKeys(args []string) ([]int, error) {
	if len(args) == 0 {
		return slices.Clone(DEFAULT_SEARCH_KEYS), nil
	}

	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid key %q", arg)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
