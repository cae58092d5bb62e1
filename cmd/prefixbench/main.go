package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/arloliu/prefixbench"
	"github.com/arloliu/prefixbench/backend"
)

func main() {
	corpusPath := flag.String("corpus", "", "Path to the benchmark corpus file (required)")
	externCmd := flag.String("extern", "", "External compression tool to register as an extra backend (stdin/stdout, -d to decompress)")
	externName := flag.String("extern-name", "extern", "Backend name for the external tool")
	externBuild := flag.String("extern-build", "", "Command run once to build the external tool, e.g. \"cargo build --release\"")
	flag.Parse()

	// Diagnostics go to stderr; stdout carries only data rows.
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *corpusPath == "" {
		fmt.Fprintf(os.Stderr, "Error: -corpus is required\n")
		flag.Usage()
		os.Exit(1)
	}

	opts := prefixbench.Options{
		CorpusPath: *corpusPath,
		Logger:     logger,
	}
	if *externCmd != "" {
		opts.Extern = backend.CatalogOptions{
			ExternName:    *externName,
			ExternCommand: *externCmd,
		}
		if *externBuild != "" {
			opts.Extern.ExternBuild = strings.Fields(*externBuild)
		}
	}

	// Exit status separates "ran and reported" (0) from "aborted before
	// reporting" (1).
	if err := prefixbench.Run(opts); err != nil {
		logger.Error("run aborted", "error", err)
		os.Exit(1)
	}
}
