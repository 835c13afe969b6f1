package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/automoto/combattext/combattext"
	"github.com/automoto/combattext/config"
	"github.com/automoto/combattext/fonts"
	"github.com/automoto/combattext/scenes"
	"github.com/automoto/combattext/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(templates *combattext.Registry, logger *zap.Logger) *Game {
	return &Game{
		scene: scenes.NewDemoScene(templates, logger),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	templatesPath := flag.String("templates", config.FloatingText.TemplatesPath, "YAML or TOML template file (default: built-in set)")
	lang := flag.String("lang", "", "language for number formatting, e.g. en or de")
	logLevel := flag.String("log-level", config.Logging.Level, "log level")
	logFormat := flag.String("log-format", config.Logging.Format, "log format: console or json")
	stress := flag.Bool("stress", false, "start with the stress test running")
	flag.Parse()

	config.Logging.Level, config.Logging.Format = *logLevel, *logFormat
	logger, err := config.NewLogger(config.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	systems.SetLogger(logger)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence("combattext"); err != nil {
		logger.Warn("Could not initialize persistence", zap.Error(err))
	}
	if saved, err := systems.LoadSettings(); err != nil {
		logger.Warn("Could not load settings", zap.Error(err))
	} else {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Flags win over saved settings
	if *lang != "" {
		config.FloatingText.Language = *lang
	}
	if *stress {
		config.FloatingText.SimulationOnStart = true
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("Failed to load fonts", zap.Error(err))
	}

	var templates *combattext.Registry
	if *templatesPath != "" {
		templates, err = config.LoadTemplates(*templatesPath, logger)
	} else {
		templates, err = config.DefaultTemplates(logger)
	}
	if err != nil {
		logger.Fatal("Failed to load templates", zap.Error(err))
	}
	logger.Info("Templates loaded", zap.Int("count", templates.Count()))

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Floating combat text")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(templates, logger)); err != nil {
		logger.Fatal("Game exited", zap.Error(err))
	}
}
