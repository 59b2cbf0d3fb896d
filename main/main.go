package main

import (
	"fmt"
	"os"

	boshlog "github.com/omnihash/omnihash/logger"
)

var version = "0.1.0"

func main() {
	logLevel := boshlog.LevelError
	if levelString := os.Getenv("OMNIHASH_LOG_LEVEL"); levelString != "" {
		level, err := boshlog.Levelify(levelString)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		logLevel = level
	}

	logger := boshlog.NewAsyncWriterLogger(logLevel, os.Stderr)
	defer logger.HandlePanic("Main")

	err := newApp(logger).Run(os.Args[1:])
	logger.Flush() //nolint:errcheck
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
