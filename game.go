package main

import (
	"fmt"
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/carpark/assets"
	"github.com/milk9111/carpark/ecs"
	"github.com/milk9111/carpark/ecs/component"
	"github.com/milk9111/carpark/navigate"
	"github.com/milk9111/carpark/prefabs"
	"golang.org/x/image/colornames"
)

// Options are the command line settings of a run.
type Options struct {
	Scene string
	Debug bool
	Watch bool
}

type Game struct {
	opts Options
	log  *slog.Logger
	nav  navigate.Navigator

	frames  int
	session *session
	ui      *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(opts Options, log *slog.Logger) (*Game, error) {
	g := &Game{opts: opts, log: log, nav: navigate.New()}

	spec, err := prefabs.LoadSceneSpec(opts.Scene)
	if err != nil {
		return nil, err
	}
	if err := g.start(spec); err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Warn("prefab hot reload disabled", "err", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// start replaces the running session with a fresh one built from spec.
func (g *Game) start(spec *prefabs.SceneSpec) error {
	s, err := newSession(spec, assets.LoadImage, ebiten.TPS(), g.log, func() {
		g.showPlayNow(spec)
	})
	if err != nil {
		return err
	}
	g.session = s
	g.ui = nil
	g.log.Info("scene started", "name", spec.Name, "cars", len(spec.Cars))
	return nil
}

func (g *Game) showPlayNow(spec *prefabs.SceneSpec) {
	var img *ebiten.Image
	if spec.EndScene.Button.Image != "" {
		loaded, err := assets.LoadImage(spec.EndScene.Button.Image)
		if err != nil {
			g.log.Warn("play now image", "err", err)
		} else {
			img = loaded
		}
	}
	url := spec.EndScene.PlayNowURL
	g.ui = NewPlayNowUI(spec.EndScene.Button, img, func() {
		g.log.Info("play now", "url", url)
		if err := g.nav.Open(url); err != nil {
			g.log.Error("play now navigation failed", "err", err)
		}
	})
}

func (g *Game) Update() error {
	g.frames++
	g.pollReload()

	g.session.update()
	if g.ui != nil {
		g.ui.Update()
	}
	return nil
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("prefab watcher", "err", err)
		default:
			return
		}
	}
}

func (g *Game) reload(changed string) {
	spec, err := prefabs.LoadSceneSpec(g.opts.Scene)
	if err != nil {
		g.log.Error("scene reload failed, keeping current scene", "file", changed, "err", err)
		return
	}
	if err := g.start(spec); err != nil {
		g.log.Error("scene rebuild failed", "file", changed, "err", err)
		return
	}
	g.log.Info("scene reloaded", "file", changed)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.session.render.Draw(g.session.world, screen)
	if g.ui != nil {
		g.ui.Draw(screen)
	}
	if g.opts.Debug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	s := g.session
	w := s.world

	ecs.ForEach2(w, component.ParkingSpotComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, spot *component.ParkingSpot, t *component.Transform) {
		vector.StrokeRect(screen, float32(t.X-spot.Width/2), float32(t.Y-spot.Height/2), float32(spot.Width), float32(spot.Height), 1, colornames.Lime, false)
	})
	ecs.ForEach2(w, component.CarComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, car *component.Car, t *component.Transform) {
		clr := colornames.Orange
		if car.Parked {
			clr = colornames.Deepskyblue
		}
		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), 3, clr, false)
	})

	active, dragging := s.ctrl.Active()
	if !dragging {
		active = "-"
	}
	stats := s.feedback.Stats()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Frames: %d    FPS: %.2f    Entities: %d\nDrag: %s  Parked: %d/%d  Drops: %d\nEnd scene: pending=%t fired=%t",
		g.frames, ebiten.ActualFPS(), len(ecs.Entities(w)), active, s.parked(), len(s.ctrl.IDs()), stats.Attempts,
		s.end.Pending(), s.end.Fired(),
	))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.session.spec.Width), float64(g.session.spec.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases the prefab watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
