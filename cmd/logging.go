package cmd

import (
	"fmt"
	"strings"

	"github.com/achilleasa/polaris-rt/log"
	"github.com/urfave/cli"
)

var logger = log.New("polaris")

func setupLogging(ctx *cli.Context) {
	if name := ctx.GlobalString("log-level"); name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			logger.Warningf("%s; using default level", err.Error())
		} else {
			log.SetLevel(level)
		}
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	// Per-module overrides win over the global level
	for _, entry := range ctx.GlobalStringSlice("log-module") {
		module, level, err := parseModuleLevel(entry)
		if err != nil {
			logger.Warningf("%s; ignoring module level", err.Error())
			continue
		}
		log.SetModuleLevel(module, level)
	}
}

// Parse a "module=level" log level override.
func parseModuleLevel(entry string) (string, log.Level, error) {
	tokens := strings.SplitN(entry, "=", 2)
	if len(tokens) != 2 || strings.TrimSpace(tokens[0]) == "" {
		return "", log.Notice, fmt.Errorf("invalid module level %q; expected module=level", entry)
	}

	level, err := log.ParseLevel(strings.TrimSpace(tokens[1]))
	if err != nil {
		return "", log.Notice, err
	}
	return strings.TrimSpace(tokens[0]), level, nil
}
