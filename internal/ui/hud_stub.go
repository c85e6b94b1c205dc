//go:build !ebiten

package ui

import "lifegrid/internal/life"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD() *HUD { return nil }

// Toggle is a no-op in the headless build.
func (h *HUD) Toggle() {}

// Update is a no-op in the headless build.
func (h *HUD) Update(life.Stats, bool) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
