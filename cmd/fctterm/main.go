// fctterm plays floating combat text in a terminal.
//
// Keys: space hits a random spot, s toggles the stress test, c clears,
// q or Esc quits.
package main

import (
	"flag"
	"log"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/automoto/combattext/combattext"
	"github.com/automoto/combattext/config"
	"github.com/automoto/combattext/fonts"
	"github.com/automoto/combattext/render"
	"github.com/automoto/combattext/render/terminal"
	"github.com/automoto/combattext/scheduler"
)

// pixels per world unit
const worldScale = 32

func main() {
	templatesPath := flag.String("templates", "", "YAML or TOML template file (default: built-in set)")
	tps := flag.Int("tps", 30, "ticks per second")
	stress := flag.Bool("stress", false, "start with the stress test running")
	flag.Parse()

	// Console output would corrupt the screen, so only json errors go to stderr.
	logger, err := config.NewLogger(config.LoggingConfig{Level: "error", Format: "json"})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
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

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("Failed to create screen", zap.Error(err))
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("Failed to init screen", zap.Error(err))
	}
	defer screen.Fini()

	mgr := combattext.NewManager(templates, logger)
	mgr.SetSimulation(config.Simulation)
	mgr.SetSimulationEnabled(*stress)

	camera := &render.SideCamera{Position: mgl64.Vec2{0, 1.5}, Scale: worldScale}
	renderer := terminal.NewRenderer(screen, camera)

	draw := func() {
		w, h := screen.Size()
		camera.Width = float64(w) * renderer.CellWidth
		camera.Height = float64(h) * renderer.CellHeight

		screen.Clear()
		mgr.DrawAll(renderer)
		screen.Show()
	}
	loop := scheduler.NewFrameLoop(mgr, draw, *tps, logger)
	go loop.Run()
	defer func() {
		loop.Stop()
		<-loop.Done()
	}()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return
			}
			if ev.Key() != tcell.KeyRune {
				continue
			}
			switch ev.Rune() {
			case ' ':
				spawnRandomHit(mgr)
			case 's':
				mgr.SetSimulationEnabled(!mgr.SimulationEnabled())
			case 'c':
				mgr.Clear()
			}
		}
	}
}

func spawnRandomHit(mgr *combattext.Manager) {
	reg := mgr.Registry()
	if reg.Count() == 0 {
		return
	}
	pos := mgl64.Vec3{rand.Float64()*8 - 4, rand.Float64() * 2, 0}
	mgr.SpawnNumber(1+rand.IntN(9999), pos, rand.IntN(reg.Count()))
}
