package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ebitenui/ebitenui"

	"github.com/milk9111/revenant/levels"
	"github.com/milk9111/revenant/obj"
	"github.com/milk9111/revenant/prefabs"
	"github.com/milk9111/revenant/system"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	input     *obj.Input
	scheduler *system.Scheduler
	telemetry *system.Telemetry
	watcher   *prefabs.Watcher

	ui     *ebitenui.UI
	paused bool

	lastFrame time.Time
}

func NewGame(levelName string, seed int64) (*Game, error) {
	profile, err := prefabs.LoadProfile("profile.yaml")
	if err != nil {
		return nil, err
	}

	data, err := levels.Load(levelName)
	if err != nil {
		return nil, err
	}
	spec, err := prefabs.ParseLevelSpec(data)
	if err != nil {
		return nil, err
	}

	state, err := obj.NewGameState(spec, profile, seed)
	if err != nil {
		return nil, err
	}

	input := obj.NewInput()
	g := &Game{
		input:     input,
		scheduler: system.NewScheduler(state, input),
		telemetry: system.NewTelemetry(5 * time.Second),
	}

	// Live tuning is best-effort; a missing prefabs dir (installed binary)
	// just means no hot reload.
	watcher, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
	if err != nil {
		log.Printf("tuning watcher disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	g.ui = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	now := time.Now()
	delta := now.Sub(g.lastFrame).Seconds()
	if g.lastFrame.IsZero() {
		delta = system.TickSeconds
	}
	g.lastFrame = now

	g.telemetry.FrameStart()

	// Profile patches merge between ticks only.
	g.applyTuning()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		g.telemetry.FrameEnd(g.scheduler.State(), 0)
		return nil
	}

	g.input.Update()
	ticks := g.scheduler.Advance(delta)
	g.telemetry.FrameEnd(g.scheduler.State(), ticks)
	return nil
}

// applyTuning drains pending watcher events and merges the resulting profile
// patches into the live profile. Merging never resets in-flight timers.
func (g *Game) applyTuning() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.mergeTuningFile(path)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("tuning watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) mergeTuningFile(path string) {
	profile := g.scheduler.State().Profile

	var (
		patch *prefabs.Patch
		err   error
	)
	if strings.EqualFold(filepath.Ext(path), ".tengo") {
		patch, err = prefabs.RunTuningScript(path, profile)
	} else {
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			patch, err = prefabs.ParsePatch(data)
		}
	}
	if err != nil {
		log.Printf("tuning %s: %v", path, err)
		return
	}

	profile.Apply(patch)
	log.Printf("merged tuning patch from %s", filepath.Base(path))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
