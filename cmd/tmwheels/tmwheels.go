package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/OrhanYigitDurmaz/TMWheelsESP32/internal/config"
	"github.com/OrhanYigitDurmaz/TMWheelsESP32/internal/configpaths"
	"github.com/OrhanYigitDurmaz/TMWheelsESP32/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"golang.org/x/term"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("tmwheels"),
		kong.Description(Description()),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order;
		// flags and env vars override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	color := term.IsTerminal(int(os.Stdout.Fd()))
	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File, color)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup logger:", err)
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	frameLogger := setupFrameLogger(&cli, logger, &closeFiles)

	ctx.Bind(logger)
	ctx.BindTo(frameLogger, (*log.FrameLogger)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i, a := range args {
		if strings.HasPrefix(a, "--config-file=") {
			return a[len("--config-file="):]
		}
		if a == "--config-file" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("TMWHEELS_CONFIG")
}

func setupFrameLogger(cli *config.CLI, logger *slog.Logger, closeFiles *[]io.Closer) log.FrameLogger {
	if cli.Log.RawFile != "" {
		f, err := os.OpenFile(cli.Log.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open raw frame log file", "file", cli.Log.RawFile, "error", err)
			return log.NewFrameLogger(nil)
		}
		*closeFiles = append(*closeFiles, f)
		return log.NewFrameLogger(f)
	}
	if cli.Log.Level == "trace" {
		return log.NewFrameLogger(os.Stdout)
	}
	return log.NewFrameLogger(nil)
}
