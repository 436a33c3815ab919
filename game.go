package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/lanerunner/common"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/prefabs"
	"github.com/milk9111/lanerunner/render"
	"github.com/milk9111/lanerunner/session"
)

type Game struct {
	session *session.Session
	scene   *render.Scene
	hud     *HUD
	src     prefabs.Source
	watcher *prefabs.Watcher
	debug   bool

	width, height int
}

func NewGame(s *session.Session, src prefabs.Source, watcher *prefabs.Watcher, debug bool) *Game {
	g := &Game{
		session: s,
		src:     src,
		watcher: watcher,
		debug:   debug,
		width:   common.BaseWidth,
		height:  common.BaseHeight,
	}
	g.scene = render.NewScene(s.Tuning().Scene, g.width, g.height, nil)
	g.hud = NewHUD(g.start, g.restart)
	return g
}

func (g *Game) start() {
	if g.session.Start() {
		g.scene.SetSpec(g.session.Tuning().Scene)
	}
}

func (g *Game) restart() {
	g.session.Restart()
	g.scene.SetSpec(g.session.Tuning().Scene)
}

func (g *Game) Update() error {
	g.reload()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Jump()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		switch g.session.Phase() {
		case component.PhaseIdle:
			g.start()
		case component.PhaseGameOver:
			g.restart()
		}
	}

	state := g.session.State()
	g.hud.Update(state.Phase, state.Score, state.FinalScore)

	g.session.Tick()
	return nil
}

// reload queues edited tuning for the next run. Scripts are recompiled with
// the tuning that names them.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	changes := g.watcher.Poll()
	if len(changes) == 0 {
		return
	}
	for _, c := range changes {
		log.Printf("prefabs: changed %s", c.Path)
	}

	t, err := prefabs.LoadTuning(g.src, prefabs.TuningFile)
	if err != nil {
		log.Printf("prefabs: reload: %v", err)
		return
	}
	if err := g.session.SetTuning(t); err != nil {
		log.Printf("prefabs: reload: %v", err)
		return
	}
	log.Printf("prefabs: tuning reloaded; applies on next run")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen, g.session.World())

	snap := g.session.Snapshot()
	g.hud.Draw(screen, snap.Phase)
	if snap.Phase == component.PhaseRunning {
		g.hud.DrawBanner(screen, snap.Banner)
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  frame: %d  speed: %.2f  obstacles: %d  coins: %d",
			ebiten.ActualFPS(), snap.Frame, snap.Speed, len(snap.Obstacles), len(snap.Coins)), 0, g.height-16)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	w, h := int(outsideWidth), int(outsideHeight)
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.scene.SetViewport(w, h)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
