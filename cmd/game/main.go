package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/younwookim/invaders/internal/application/game"
	"github.com/younwookim/invaders/internal/application/simulation"
	"github.com/younwookim/invaders/internal/event"
	sfx "github.com/younwookim/invaders/internal/infrastructure/audio"
	"github.com/younwookim/invaders/internal/infrastructure/config"
	"github.com/younwookim/invaders/internal/infrastructure/input"
)

//go:embed configs
var configFS embed.FS

func main() {
	configDir := flag.String("config", "", "Load game.json from this directory instead of the embedded defaults")
	settingsPath := flag.String("settings", "settings.toml", "User settings file")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headless and print the outcome")
	flag.Parse()

	cfg, err := loadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		if err := runReplay(cfg, *replayFlag); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		log.Printf("Ignoring settings: %v", err)
		settings = config.DefaultSettings()
	}

	events := event.NewDispatcher()
	reader := input.NewReader()

	arcade := game.NewArcade(game.ArcadeOptions{
		Config:     cfg,
		Input:      reader,
		Events:     events,
		Seed:       func() int64 { return time.Now().UnixNano() },
		RecordPath: *recordFlag,
	})

	player := sfx.NewPlayer(audio.NewContext(sfx.SampleRate), settings.SFXVolume)
	player.SetMuted(settings.Muted)
	player.Attach(events)

	stats := game.NewStats(func() simulation.Stats { return arcade.Playing.Simulation().Stats() }, settings.ShowStats)
	controls := game.NewControls(reader)
	controls.Handle(input.ActionToggleMute, func() {
		settings.Muted = player.ToggleMute()
		saveSettings(*settingsPath, settings)
	})
	controls.Handle(input.ActionToggleStats, func() {
		settings.ShowStats = stats.Toggle()
		saveSettings(*settingsPath, settings)
	})
	arcade.AddOverlay(controls)
	arcade.AddOverlay(stats)

	ebiten.SetWindowSize(int(cfg.Stage.Width)*settings.Scale, int(cfg.Stage.Height)*settings.Scale)
	ebiten.SetWindowTitle("Space Invaders")
	ebiten.SetTPS(cfg.Timing.Framerate)

	err = ebiten.RunGame(arcade)
	arcade.Shutdown()
	if err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads game.json from dir, or from the embedded configs when dir is empty
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadGame()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs").LoadGame()
}

func saveSettings(path string, s config.Settings) {
	if err := config.SaveSettings(path, s); err != nil {
		log.Printf("Failed to save settings: %v", err)
	}
}
