package utils

import (
	"log"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
)

// Check panics with err wrapped by msg when err is not nil.
func Check(err error, msg string) {
	if err != nil {
		log.Print(chalk.Red, msg, chalk.Reset)
		panic(errors.Wrap(err, msg))
	}
}

func Assert(ok bool, msg string) {
	if !ok {
		log.Print(chalk.Red, msg, chalk.Reset)
		panic(errors.New(msg))
	}
}
