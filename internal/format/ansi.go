package format

import (
	"os"

	"golang.org/x/term"
)

var (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"
	Green = "\033[32m"
	Red   = "\033[31m"
	Cyan  = "\033[36m"
)

func init() {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		disableColors()
	} else if !term.IsTerminal(int(os.Stdout.Fd())) {
		disableColors()
	}
}

func disableColors() {
	Reset, Bold, Dim = "", "", ""
	Green, Red, Cyan = "", "", ""
}

// TermWidth returns the terminal width, defaulting to 80.
func TermWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
