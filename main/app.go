package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar"
	flags "github.com/jessevdk/go-flags"

	"github.com/omnihash/omnihash/fanout"
	"github.com/omnihash/omnihash/httpclient"
	boshlog "github.com/omnihash/omnihash/logger"
	"github.com/omnihash/omnihash/registry"
	"github.com/omnihash/omnihash/source"
	boshuuid "github.com/omnihash/omnihash/uuid"
)

const mainLogTag = "main"

type app struct {
	opts    Options
	stdin   *os.File
	stdout  io.Writer
	stderr  io.Writer
	engine  fanout.Engine
	client  httpclient.RetryClient
	uuidGen boshuuid.Generator
	logger  boshlog.Logger
}

func newApp(logger boshlog.Logger) *app {
	return &app{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		engine:  fanout.NewEngine(logger),
		client:  httpclient.NewDefaultRetryClient(3, 500*time.Millisecond, logger),
		uuidGen: boshuuid.NewGenerator(),
		logger:  logger,
	}
}

func (a *app) Run(args []string) error {
	parser := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] [HASHME...]"

	_, err := parser.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			parser.WriteHelp(a.stdout)
			return nil
		}
		return err
	}

	if a.opts.Version {
		fmt.Fprintln(a.stdout, version)
		return nil
	}

	config, err := loadConfig(defaultConfigPath())
	if err != nil {
		return err
	}
	a.opts = mergeOptions(a.opts, config)

	criteria := registry.NewCriteria(a.opts.Includes, a.opts.Excludes)
	factories := registry.Collect(criteria, registry.Options{IncludeChecksums: a.opts.Checksums})

	a.logger.Debug(mainLogTag, "Collected %d algorithm(s): %s", factories.Len(), strings.Join(factories.Names(), ", "))

	items := expandArgs(a.opts.Args.HashMes, a.opts.HashString)

	var collected []map[string]string

	if len(items) == 0 {
		if !source.IsPiped(a.stdin) {
			parser.WriteHelp(a.stdout)
			return nil
		}

		a.progress("Hashing standard input..")
		results, err := a.hashSource(source.FromStdin(a.stdin), factories)
		if err != nil {
			return err
		}
		collected = append(collected, results.Map())
	} else {
		for _, item := range items {
			results, skipped, err := a.hashItem(item, factories)
			if err != nil {
				// Recoverable: report and keep going with the other items.
				fmt.Fprintf(a.stderr, "%s :(\n", err.Error())
				continue
			}
			if skipped {
				continue
			}

			resultMap := results.Map()
			resultMap["NAME"] = item
			collected = append(collected, resultMap)
		}
	}

	if a.opts.JSON && len(collected) > 0 {
		rendered, err := json.MarshalIndent(collected, "", "    ")
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, string(rendered))
	}

	return nil
}

func (a *app) hashItem(item string, factories *registry.Factories) (fanout.Results, bool, error) {
	if itemID, err := a.uuidGen.Generate(); err == nil {
		a.logger.Debug(mainLogTag, "Hashing item '%s' [%s]", item, itemID)
	}

	var src source.Source
	var err error

	switch {
	case !a.opts.HashString && source.IsURL(item):
		a.progress("Hashing content of URL %s..", item)
		src, err = source.FromURL(a.client, item)
	case !a.opts.HashString && source.Exists(item):
		if source.IsDirectory(item) {
			a.progress("Skipping directory '%s'..", item)
			return nil, true, nil
		}
		a.progress("Hashing file %s..", item)
		src, err = source.FromFile(item)
	default:
		a.progress("Hashing string %s..", item)
		src = source.FromString(item)
	}

	if err != nil {
		return nil, false, err
	}

	results, err := a.hashSource(src, factories)
	return results, false, err
}

func (a *app) hashSource(src source.Source, factories *registry.Factories) (fanout.Results, error) {
	defer src.Body.Close() //nolint:errcheck

	results, matchFound, err := a.engine.ProduceHashes(src.Hint, src.Body, factories, a.opts.Match)
	if err != nil {
		return nil, err
	}

	if !a.opts.JSON {
		for _, result := range results {
			fmt.Fprintf(a.stdout, "  %-23s%s\n", result.Algorithm+":", result.Digest)
		}
		if a.opts.Match != "" && !matchFound {
			fmt.Fprintln(a.stderr, "No matches found!")
		}
	}

	return results, nil
}

func (a *app) progress(msg string, args ...interface{}) {
	if a.opts.JSON {
		return
	}
	fmt.Fprintf(a.stderr, msg+"\n", args...)
}

// expandArgs resolves glob patterns in file arguments. Arguments that
// match nothing stay literal, so they can still be hashed as strings.
func expandArgs(args []string, hashString bool) []string {
	if hashString {
		return args
	}

	var expanded []string
	for _, arg := range args {
		if strings.ContainsAny(arg, "*?[{") {
			matches, err := doublestar.Glob(arg)
			if err == nil && len(matches) > 0 {
				expanded = append(expanded, matches...)
				continue
			}
		}
		expanded = append(expanded, arg)
	}

	return expanded
}
