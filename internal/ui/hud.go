//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifegrid/internal/life"
	"lifegrid/internal/patterns"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a translucent status panel in the top-left corner of the view.
type HUD struct {
	panel   *ebiten.Image
	visible bool
	lines   []hudLine
}

type hudLine struct {
	text string
	col  color.Color
}

var (
	hudText  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hudMuted = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	return &HUD{panel: ebiten.NewImage(panelWidth, panelHeight), visible: true}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Update rebuilds the panel text from the latest stats.
func (h *HUD) Update(st life.Stats, paused bool) {
	if h == nil {
		return
	}
	h.lines = h.lines[:0]
	state := "running"
	if paused {
		state = "paused"
	}
	h.lines = append(h.lines,
		hudLine{fmt.Sprintf("gen %d  %s", st.Generation, state), hudText},
		hudLine{fmt.Sprintf("live %d", st.Live), hudText},
	)

	counts := map[string]int{}
	for c, n := range st.ByColor {
		counts[patterns.Describe(c)] += n
	}
	for _, cl := range patterns.Classes() {
		h.lines = append(h.lines, hudLine{fmt.Sprintf("%-11s %d", cl, counts[cl.String()]), cl.Color().ToRGBA()})
	}
	h.lines = append(h.lines,
		hudLine{fmt.Sprintf("%-11s %d", "born", counts["born"]), life.BirthColor.ToRGBA()},
		hudLine{"space pause  n step", hudMuted},
		hudLine{"r reset  c clear  esc quit", hudMuted},
	)
}

// Draw paints the HUD panel onto the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	face := basicfont.Face7x13
	for i, line := range h.lines {
		text.Draw(h.panel, line.text, face, panelPadding, panelPadding+lineBaseline+i*lineHeight, line.col)
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}

const (
	panelPadding = 8
	lineHeight   = 16
	lineBaseline = 11
	panelWidth   = 200
	panelHeight  = 2*panelPadding + 9*lineHeight
)
