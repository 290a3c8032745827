package main

import (
	"flag"

	"chosenoffset.com/gridcaster/internal/audio"
	"chosenoffset.com/gridcaster/internal/game"
	"chosenoffset.com/gridcaster/internal/gamescanner"
	"chosenoffset.com/gridcaster/internal/logger"
	ebitenrender "chosenoffset.com/gridcaster/internal/render/ebiten"
	"chosenoffset.com/gridcaster/internal/simulation"
)

func main() {
	configPath := flag.String("config", "data/config.json", "path to the game config")
	levelsDir := flag.String("levels", "data/levels", "directory of extra level files")
	mute := flag.Bool("mute", false, "disable sound")
	exportDir := flag.String("export-levels", "", "write the built-in levels to this directory and exit")
	flag.Parse()

	logger.Init()

	if *exportDir != "" {
		paths, err := gamescanner.ExportBuiltins(*exportDir)
		if err != nil {
			logger.Log.Fatal(err)
		}
		logger.Log.WithField("files", paths).Info("Exported built-in levels")
		return
	}

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		logger.Log.WithError(err).Warn("Using default config")
		cfg = simulation.DefaultConfig()
	}

	// Built-in levels come first, then any level files found on disk
	levels := gamescanner.LoadCatalog(*levelsDir)
	logger.Log.WithField("count", len(levels)).Info("Levels loaded")

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	gameManager := game.NewManager(renderer, inputMgr, cfg, levels)
	gameManager.SetWindow(engine)
	if cfg.Audio.Enabled && !*mute {
		sound := audio.NewSystem()
		sound.SetMusicVolume(cfg.Audio.MusicVolume)
		sound.SetSFXVolume(cfg.Audio.SFXVolume)
		gameManager.SetSound(sound)
	}
	gameManager.Start()

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	logger.Log.Info("Starting game...")
	if err := engine.RunGame(gameManager); err != nil {
		logger.Log.Fatal(err)
	}
}
