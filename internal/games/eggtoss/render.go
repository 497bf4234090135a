package eggtoss

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/egg-toss/internal/core"
)

// hudHeight is the number of screen rows above the play area.
const hudHeight = 1

// placeholder is drawn in place of a sprite that is not ready yet.
type placeholder struct {
	fill  rune
	color core.Color
}

var (
	placeholderTree   = placeholder{'▓', core.ColorGreen}
	placeholderTent   = placeholder{'▓', core.ColorOrange}
	placeholderNest   = placeholder{'░', core.ColorBrown}
	placeholderPlayer = placeholder{'█', core.ColorBrightYellow}
	placeholderNPC    = placeholder{'█', core.ColorCyan}
	placeholderEgg    = placeholder{'●', core.ColorBrightWhite}
)

// Draw renders the world back to front. Props use the camera from the start
// of the tick; moving entities use the current camera.
func (s *Sim) Draw(dst *core.Screen, atlas *Atlas) {
	for _, p := range s.Props {
		s.drawProp(dst, atlas, p)
	}
	for _, e := range s.Eggs {
		drawSprite(dst, s.Camera, atlas.Get(spriteEgg), e.Rect, 0, placeholderEgg)
	}
	for _, n := range s.NPCs {
		s.drawNPC(dst, atlas, n)
	}
	drawSprite(dst, s.Camera, atlas.Get(s.Player.Sprite), s.Player.Rect, 0, placeholderPlayer)

	s.drawHUD(dst)
	s.drawOverlay(dst)
}

func (s *Sim) drawProp(dst *core.Screen, atlas *Atlas, p Prop) {
	ph := placeholderTree
	switch p.Type {
	case PropTent:
		ph = placeholderTent
	case PropNest:
		ph = placeholderNest
	}
	drawSprite(dst, s.PrevCamera, atlas.Get(propSprite(p)), p.Rect, 0, ph)
}

func (s *Sim) drawNPC(dst *core.Screen, atlas *Atlas, n NPC) {
	var tint core.Color
	switch {
	case n.Hit:
		tint = core.ColorGray
	case n.Angry:
		tint = core.ColorBrightRed
	}
	drawSprite(dst, s.Camera, atlas.Get(n.Sprite), n.Rect, tint, placeholderNPC)

	x, y, w, _ := s.Camera.ScreenRect(n.Rect)
	y += hudHeight - 1
	if y < hudHeight {
		return
	}
	switch {
	case n.Hit && n.Reaction != "":
		dst.DrawText(x+(w-len(n.Reaction))/2, y, n.Reaction, core.ColorBrightWhite)
	case n.Angry:
		dst.DrawText(x+w/2, y, "!", core.ColorBrightRed)
	}
}

// drawSprite stamps the sprite over the rect's screen footprint, or fills the
// footprint with a placeholder when the sprite is not ready. A zero tint uses
// the sprite's own color.
func drawSprite(dst *core.Screen, cam Camera, sp *Sprite, r core.Rect, tint core.Color, ph placeholder) {
	if !cam.Visible(r) {
		return
	}
	x, y, w, h := cam.ScreenRect(r)
	y += hudHeight

	if !sp.Ready() {
		c := ph.color
		if tint != core.ColorDefault {
			c = tint
		}
		dst.FillRect(x, y, w, h, ph.fill, c)
		return
	}
	if tint == core.ColorDefault {
		tint = sp.Color()
	}
	sp.Stamp(dst, x, y, w, h, tint)
}

func (s *Sim) drawHUD(dst *core.Screen) {
	for x := range dst.Width() {
		dst.SetCell(x, 0, ' ', core.ColorDefault)
	}

	eggs := strings.Repeat("●", s.Player.Eggs) + strings.Repeat("○", max(0, s.Player.MaxEggs-s.Player.Eggs))
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score), core.ColorBrightWhite)
	dst.DrawText(14, 0, "Eggs: "+eggs, core.ColorBrightYellow)

	hint := "Arrows/WASD move  Space throw  P pause  Q quit"
	if x := dst.Width() - len(hint) - 1; x > 30 {
		dst.DrawText(x, 0, hint, core.ColorGray)
	}
}

func (s *Sim) drawOverlay(dst *core.Screen) {
	mid := hudHeight + (dst.Height()-hudHeight)/2
	switch {
	case !s.Landscape:
		dst.DrawTextCentered(mid, "Rotate to landscape to play", core.ColorBrightYellow)
	case s.GameOver:
		dst.DrawTextCentered(mid, "You got caught!", core.ColorBrightRed)
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Score: %d", s.Score), core.ColorBrightWhite)
	case s.Paused:
		dst.DrawTextCentered(mid, "PAUSED", core.ColorBrightYellow)
	case !s.Started:
		dst.DrawTextCentered(mid, "Grab eggs from a nest and pelt the campers", core.ColorBrightWhite)
	}
}
