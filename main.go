package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"tentsandtrees/pkg/engine/logging"
	"tentsandtrees/pkg/engine/terminal"
	"tentsandtrees/pkg/game/gameplay"
	"tentsandtrees/pkg/game/generator"
	"tentsandtrees/pkg/game/i18n"
	"tentsandtrees/pkg/game/renderer"
	ebitenrenderer "tentsandtrees/pkg/game/renderer/ebiten"
	"tentsandtrees/pkg/game/renderer/tui"
	"tentsandtrees/pkg/game/state"
)

func main() {
	size := flag.Int("size", generator.DefaultSize, fmt.Sprintf("board side length (%d to %d)", generator.MinSize, generator.MaxSize))
	seed := flag.Int64("seed", 0, "puzzle seed, 0 picks a new one for every game")
	rendererName := flag.String("renderer", "tui", "renderer to use: tui or ebiten")
	lang := flag.String("lang", i18n.DefaultLanguage, "message language ("+strings.Join(i18n.Languages(), ", ")+")")
	logPath := flag.String("log", "", "log file path (logs are discarded when empty)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	dumpDir := flag.String("dump-dir", ".", "directory for board dumps and screenshots")
	flag.Parse()

	closer, err := logging.Setup(*logPath, *logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(*rendererName, *lang, gameplay.Config{Size: *size, Seed: *seed, DumpDir: *dumpDir}); err != nil {
		logging.Log.WithError(err).Error("exiting")
		fmt.Fprintln(os.Stderr, err)
		closer.Close()
		os.Exit(1)
	}
}

// run validates the settings and starts the chosen front-end
func run(rendererName, lang string, cfg gameplay.Config) error {
	if err := generator.ValidateSize(cfg.Size); err != nil {
		return err
	}

	if err := i18n.SetLanguage(lang); err != nil {
		return err
	}

	logging.Log.WithFields(logrus.Fields{
		"renderer": rendererName,
		"size":     cfg.Size,
		"seed":     cfg.Seed,
		"lang":     lang,
	}).Info("starting")

	switch rendererName {
	case "tui":
		return runTUI(cfg)
	case "ebiten":
		return runEbiten(cfg)
	default:
		return fmt.Errorf("unknown renderer %q (want tui or ebiten)", rendererName)
	}
}

// mainLoop renders and applies intents until the player quits
func mainLoop(g *state.Game) *state.Game {
	for !g.Quit {
		renderer.Clear()
		renderer.RenderFrame(g)
		g = gameplay.ProcessIntent(g, renderer.GetInput())
	}

	renderer.Clear()
	renderer.RenderFrame(g)
	return g
}

// runTUI plays in the terminal on the main goroutine
func runTUI(cfg gameplay.Config) error {
	if !terminal.IsInteractive() {
		return errors.New("the tui renderer needs an interactive terminal, try -renderer ebiten")
	}

	renderer.SetRenderer(tui.New())
	renderer.Init()

	fmt.Print(terminal.HideCursor)
	defer fmt.Print(terminal.ShowCursor)

	mainLoop(gameplay.BuildGame(cfg))
	return nil
}

// runEbiten runs ebiten's loop on the main goroutine and the game loop
// beside it; they share only the intent channel and the render snapshot
func runEbiten(cfg gameplay.Config) error {
	r := ebitenrenderer.New()
	renderer.SetRenderer(r)
	renderer.Init()

	g := gameplay.BuildGame(cfg)
	r.RenderFrame(g)

	done := make(chan struct{})
	go func() {
		defer close(done)
		mainLoop(g)
		r.Shutdown()
	}()

	err := r.Run()
	<-done

	logging.Log.WithField("window", r.String()).Info("window closed")
	return err
}
