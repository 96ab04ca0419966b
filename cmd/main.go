package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/guitarlab/fretboard/internal/cmd"
	"github.com/guitarlab/fretboard/internal/config"
	"github.com/guitarlab/fretboard/internal/domain"
	"github.com/guitarlab/fretboard/internal/theme"
	"github.com/guitarlab/fretboard/internal/version"
)

// Exit codes
const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Load settings from ~/.fretboard/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	parser, err := kong.New(&cli,
		kong.Name("fretboard"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitRuntime
	}
	defer cli.Close()

	ctx, err := parser.Parse(cmd.NormalizeArgs(args, settings.BPMOrDefault(domain.DefaultBPM)))
	if err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorStyle.Render("fretboard: error: "+err.Error()))
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) && parseErr.Context != nil {
			_ = parseErr.Context.PrintUsage(true)
		}
		return exitUsage
	}

	if err := ctx.Run(); err != nil {
		var missing *domain.MissingAssetError
		if errors.As(err, &missing) {
			fmt.Println(missing.Error())
			return exitRuntime
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitRuntime
	}

	return exitOK
}
