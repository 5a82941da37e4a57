// Command dbcgen reads a DBC file and a selection config and writes a Go
// source file containing bit-exact decode/encode value objects for the
// selected CAN messages.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tegimeki/dbc-data/internal/cli"
	"github.com/tegimeki/dbc-data/internal/generate"
	"github.com/tegimeki/dbc-data/internal/selection"
)

func main() {
	var (
		configPath = flag.String("config", "", "selection config file (required)")
		outPath    = flag.String("out", "", "destination .go file (default: stdout)")
		watch      = flag.Bool("watch", false, "regenerate whenever the DBC file or config changes")
		verbose    = flag.Bool("verbose", false, "enable info-level logging")
		version    = flag.Bool("version", false, "print version information and exit")
		jsonOut    = flag.Bool("json", false, "with -version, print as JSON")
	)
	flag.Parse()

	if *version {
		cli.PrintVersion("dbcgen", *jsonOut)
		return
	}

	if *configPath == "" {
		cli.ExitWithError("-config is required")
	}

	log := cli.NewLogger(*verbose, false)

	cfg, err := selection.Load(*configPath)
	if err != nil {
		cli.ExitWithError("%v", err)
	}

	write := func(res *generate.Result, err error) {
		if err != nil {
			log.Error("%v", err)
			return
		}
		for _, d := range res.Diagnostics {
			log.Warn("%s", d)
		}
		if writeErr := writeOutput(*outPath, res.Source); writeErr != nil {
			log.Error("%v", writeErr)
			return
		}
		log.Info("generated %d bytes", len(res.Source))
	}

	if *watch {
		stop := make(chan struct{})
		if err := generate.Watch(*configPath, cfg, stop, write); err != nil {
			cli.ExitWithError("%v", err)
		}
		return
	}

	res, err := generate.Run(cfg)
	if err != nil {
		cli.ExitWithError("%v", err)
	}
	for _, d := range res.Diagnostics {
		fmt.Fprintln(os.Stderr, d)
	}
	if err := writeOutput(*outPath, res.Source); err != nil {
		cli.ExitWithError("%v", err)
	}
}

func writeOutput(path string, src []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(src)
		return err
	}
	return os.WriteFile(path, src, 0o644)
}
