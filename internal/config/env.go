package config

import (
	"os"
	"strings"
)

var (
	FORCE_COLOR           bool
	TRUECOLOR_COLORTERM   bool
	NO_COLOR              bool
	TERM_256COLOR_CAPABLE bool
	SHOULD_COLORIZE       bool
)

func init() {
	readColorEnv(os.LookupEnv)
}

func readColorEnv(lookupEnv func(string) (string, bool)) {
	// FORCE COLOR

	FORCE_COLOR = false
	if s, ok := lookupEnv("FORCE_COLOR"); ok {
		FORCE_COLOR = isTruthy(s)
	}

	//TERMCOLOR

	colorterm, _ := lookupEnv("COLORTERM")
	TRUECOLOR_COLORTERM = colorterm == "truecolor"

	//NO_COLOR

	NO_COLOR = false
	if s, ok := lookupEnv("NO_COLOR"); ok {
		NO_COLOR = isTruthy(s)
	}

	//TERM

	term, _ := lookupEnv("TERM")
	TERM_256COLOR_CAPABLE = strings.Contains(term, "256color")

	SHOULD_COLORIZE = !NO_COLOR && (FORCE_COLOR || TRUECOLOR_COLORTERM || TERM_256COLOR_CAPABLE)
}

func isTruthy(s string) bool {
	return len(s) != 0 && s != "false" && s != "0"
}
