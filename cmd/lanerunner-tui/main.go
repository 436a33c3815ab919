// Command lanerunner-tui plays the lane runner top-down in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/lanerunner/config"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/prefabs"
	"github.com/milk9111/lanerunner/session"
)

var (
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleEdge     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleAvatar   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x41, 0x69, 0xe1)).Bold(true)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0x44, 0x44))
	styleCoin     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0xd7, 0x00))
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

type Game struct {
	screen  tcell.Screen
	session *session.Session
	width   int
	height  int
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	seed := flag.Int64("seed", cfg.Seed, "spawn placement seed (0 seeds from the clock)")
	prefabsDir := flag.String("prefabs", cfg.PrefabsDir, "directory whose prefabs override the embedded ones")
	flag.Parse()

	src := prefabs.NewSource(*prefabsDir)
	tuning, err := prefabs.LoadTuning(src, prefabs.TuningFile)
	if err != nil {
		log.Printf("prefabs: %v; using defaults", err)
	}

	opts := []session.Option{session.WithTuning(tuning), session.WithSource(src)}
	if *seed != 0 {
		opts = append(opts, session.WithSeed(*seed))
	}
	s, err := session.New(opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	g := &Game{screen: screen, session: s}
	g.width, g.height = screen.Size()
	g.run()
	screen.Fini()
}

func (g *Game) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.session.Tick()
			g.draw()
		}
	}
}

// handleInput returns false when the player quits.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			g.session.Jump()
		case ev.Key() == tcell.KeyEnter:
			switch g.session.Phase() {
			case component.PhaseIdle:
				g.session.Start()
			case component.PhaseGameOver:
				g.session.Restart()
			}
		}
	case *tcell.EventResize:
		g.width, g.height = g.screen.Size()
		g.screen.Sync()
	}
	return true
}

func (g *Game) draw() {
	g.screen.Clear()
	snap := g.session.Snapshot()
	view := newLaneView(g.width, g.height, g.session.Tuning().Lane)

	left, right := view.edges()
	for row := view.top; row < view.top+view.rows; row++ {
		g.screen.SetContent(left, row, '|', nil, styleEdge)
		g.screen.SetContent(right, row, '|', nil, styleEdge)
	}

	for _, c := range snap.Coins {
		if col, row, ok := view.cell(c.X, c.Z); ok {
			g.screen.SetContent(col, row, 'o', nil, styleCoin)
		}
	}
	for _, o := range snap.Obstacles {
		if col, row, ok := view.cell(o.X, o.Z); ok {
			g.screen.SetContent(col, row, '#', nil, styleObstacle)
		}
	}
	if col, row, ok := view.cell(snap.Avatar.X, snap.Avatar.Z); ok {
		glyph := '@'
		if snap.Avatar.Airborne {
			glyph = '^'
		}
		g.screen.SetContent(col, row, glyph, nil, styleAvatar)
	}

	g.drawText(1, 0, fmt.Sprintf("Score: %d", snap.Score), styleText)
	switch snap.Phase {
	case component.PhaseIdle:
		g.drawCentered(g.height/2, "Enter to start, Space to jump, q to quit", styleText)
	case component.PhaseRunning:
		if snap.Banner != "" {
			g.drawCentered(1, snap.Banner, styleBanner)
		}
	case component.PhaseGameOver:
		g.drawCentered(g.height/2-1, "Game Over", styleText)
		g.drawCentered(g.height/2, fmt.Sprintf("Your score: %d", snap.FinalScore), styleText)
		g.drawCentered(g.height/2+1, "Enter to restart", styleText)
	}

	g.screen.Show()
}

func (g *Game) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (g *Game) drawCentered(y int, s string, style tcell.Style) {
	g.drawText((g.width-len([]rune(s)))/2, y, s, style)
}
