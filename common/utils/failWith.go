package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	bettererrors "github.com/xtuc/better-errors"
	bettererrorstree "github.com/xtuc/better-errors/printer/tree"
)

var exit = os.Exit

// Chain turns err into a better-errors chain headed by msg, so that it can
// be given to FailWith and WarnWith.
func Chain(msg string, err error) error {
	return bettererrors.New(msg).With(err)
}

// FailWith prints err and the command line that led to it, then exits.
func FailWith(err error) {
	failWith(os.Stdout, err)
	exit(1)
}

func failWith(w io.Writer, err error) {
	command := strings.Join(os.Args, " ")

	berror := bettererrors.
		New(command).
		SetContext("version", GetVersion()).
		With(err)

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "❌  An error occurred.")
	fmt.Fprintln(w, "")

	fmt.Fprint(w, bettererrorstree.PrintChain(berror))

	fmt.Fprintln(w, "")
}

func WarnWith(err error) {
	warnWith(os.Stdout, err)
}

func warnWith(w io.Writer, err error) {
	if chain, ok := err.(*bettererrors.Chain); ok {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "⚠️  Warning")
		fmt.Fprintln(w, "")

		fmt.Fprint(w, bettererrorstree.PrintChain(chain))

		fmt.Fprintln(w, "")
	} else {
		fmt.Fprintln(w, err.Error())
	}
}
