package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/lanerunner/common"
	"github.com/milk9111/lanerunner/ecs/component"
)

var (
	hudTextColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	hudPanelColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	hudButtonIdle = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	hudButtonDown = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
)

// HUD holds one ebitenui screen per phase: a start panel, the running score
// and a game over panel with the final score.
type HUD struct {
	face ebtext.Face

	start    *ebitenui.UI
	running  *ebitenui.UI
	gameOver *ebitenui.UI

	score *widget.Text
	final *widget.Text
}

func NewHUD(onStart, onRestart func()) *HUD {
	h := &HUD{face: ebtext.NewGoXFace(basicfont.Face7x13)}

	h.start = h.panel(func(c *widget.Container) {
		c.AddChild(h.label("Lane Runner"))
		c.AddChild(h.label("Space to jump, Enter to start"))
		c.AddChild(h.button("Start", onStart))
	})

	h.final = h.label(finalScoreText(0))
	h.gameOver = h.panel(func(c *widget.Container) {
		c.AddChild(h.label("Game Over"))
		c.AddChild(h.final)
		c.AddChild(h.button("Restart", onRestart))
	})

	h.score = h.label(scoreText(0))
	corner := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Left: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	corner.AddChild(h.score)
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(corner)
	h.running = &ebitenui.UI{Container: root}

	return h
}

func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func finalScoreText(score int) string {
	return fmt.Sprintf("Your score: %d", score)
}

func (h *HUD) label(s string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, &h.face, hudTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func (h *HUD) button(s string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(hudButtonIdle),
			Pressed: imageui.NewNineSliceColor(hudButtonDown),
		}),
		widget.ButtonOpts.Text(s, &h.face, &widget.ButtonTextColor{Idle: hudTextColor}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// panel centers a vertical stack of widgets on a translucent backdrop.
func (h *HUD) panel(fill func(*widget.Container)) *ebitenui.UI {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(hudPanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/4, common.BaseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	fill(panel)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func (h *HUD) current(phase component.Phase) *ebitenui.UI {
	switch phase {
	case component.PhaseRunning:
		return h.running
	case component.PhaseGameOver:
		return h.gameOver
	default:
		return h.start
	}
}

func (h *HUD) Update(phase component.Phase, score, final int) {
	h.score.Label = scoreText(score)
	h.final.Label = finalScoreText(final)
	h.current(phase).Update()
}

func (h *HUD) Draw(screen *ebiten.Image, phase component.Phase) {
	h.current(phase).Draw(screen)
}

// DrawBanner prints the announcer text centered near the top of the screen.
func (h *HUD) DrawBanner(screen *ebiten.Image, banner string) {
	if banner == "" {
		return
	}
	w, lh := ebtext.Measure(banner, h.face, 0)
	x := float64(screen.Bounds().Dx())/2 - w
	vector.FillRect(screen, float32(x-12), 40, float32(2*w+24), float32(2*lh+16), hudPanelColor, false)

	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(x, 48)
	op.ColorScale.ScaleWithColor(hudTextColor)
	ebtext.Draw(screen, banner, h.face, op)
}
