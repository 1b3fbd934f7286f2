package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/leterax/go-maze/pkg/config"
	"github.com/leterax/go-maze/pkg/game"
	"github.com/leterax/go-maze/pkg/maze"
	"github.com/leterax/go-maze/pkg/render"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Set at build time with -ldflags "-X main.version=..."
var version = "dev"

var CLI struct {
	Version     kong.VersionFlag `help:"Print version information and exit." short:"v"`
	Debug       bool             `help:"Whether to enable debug logging."`
	PrintConfig bool             `help:"Write the default configuration to standard output and exit."`

	Configs []string `arg:"" optional:"" name:"configs" help:"Configuration files, applied in order over the defaults." type:"existingfile"`
}

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("mazeview"),
		kong.Description("Fly a camera through a small walled maze.\n\nW/A/S/D move, Q/E rise and sink, arrows or mouse drag look around, Escape quits."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if CLI.PrintConfig {
		os.Stdout.Write(config.Default)
		return
	}

	os.Exit(run(CLI.Configs))
}

// run builds the viewer and returns the process exit status
func run(configPaths []string) int {
	cfg, err := config.Process(configPaths)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	scene, err := maze.NewScene(cfg.Bounds())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build scene")
	}

	camera := game.NewCamera(cfg.StartPosition())
	camera.SetClipPlanes(cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far)

	controller, err := game.NewController(camera, cfg.Settings())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up controls")
	}

	renderer, err := render.NewRenderer(render.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		VSync:  cfg.Window.VSync,
	}, scene, camera)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize renderer")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stepper := game.NewStepper(cfg.Controls.TickInterval, game.MaxCatchUpTicks)
	code := renderer.Run(ctx, controller, stepper)
	if code == game.ExitCodeQuit {
		log.Info().Msg("application exited with custom ESC key exit code")
	}
	return code
}
