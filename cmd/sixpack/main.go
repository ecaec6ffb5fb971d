// SPDX-License-Identifier: MIT
// Copyright (c) 2026 The go-fastlz Authors

// Command sixpack packs a single file into a 6pack archive.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/go-fastlz/sixpack/container"
)

const versionString = "0.1.0"

func usage() {
	fmt.Println("6pack: high-speed file compression tool")
	fmt.Println()
	fmt.Println("Usage: sixpack [--help|-h] [--version|-v] input-file output-file")
	fmt.Println()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("sixpack", pflag.ContinueOnError)
	flags.Usage = usage
	help := flags.BoolP("help", "h", false, "show this help message")
	version := flags.BoolP("version", "v", false, "show version information")

	if err := flags.Parse(args); err != nil {
		return 1
	}

	if *help || len(args) == 0 {
		usage()
		return 0
	}
	if *version {
		fmt.Printf("6pack: high-speed file compression tool\n")
		fmt.Printf("Version %s\n", versionString)
		return 0
	}

	rest := flags.Args()
	if len(rest) < 2 {
		usage()
		return 0
	}

	if err := packFile(rest[0], rest[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func packFile(inputPath, outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("file %s already exists, aborted", outputPath)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", inputPath, err)
	}

	if container.HasMagic(data) {
		return fmt.Errorf("file %s is already a 6pack archive", inputPath)
	}

	name := trimDirPrefix(inputPath)

	total := len(data)
	archive, err := container.Pack(name, data, func(processed, _ int) {
		fmt.Printf("\rpacking %s: %d/%d bytes", name, processed, total)
	})
	if err != nil {
		return err
	}
	if total > 0 {
		fmt.Println()
	}

	if err := os.WriteFile(outputPath, archive, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", outputPath, err)
	}

	saved := total - len(archive)
	if saved > 0 && total > 0 {
		fmt.Printf("%.1f%% saved\n", float64(saved)*100/float64(total))
	}
	return nil
}

// trimDirPrefix returns the final path element of p, the way the archive
// records a file's name without its directory.
func trimDirPrefix(p string) string {
	i := len(p)
	for i > 0 && p[i-1] != '/' && p[i-1] != '\\' {
		i--
	}
	return p[i:]
}
