package roomkit

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DrawOverlay prints FPS, TPS and the size of the last frame in the top-left
// corner of screen. Call it after Draw.
func (s *Scene) DrawOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\ncommands: %d\ntimers: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), len(s.commands), s.NumTimers()))
}
