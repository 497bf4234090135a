package eggtoss

import (
	_ "embed"
	"fmt"
	"sync"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/egg-toss/internal/core"
)

//go:embed sprites/sprites.yaml
var spritesYAML []byte

// SpriteKey names a sprite in the atlas. Keys are derived from entity state
// and never affect simulation.
type SpriteKey string

const spriteEgg SpriteKey = "egg"

func playerSprite(p Player) SpriteKey {
	return SpriteKey("player_" + p.Dir.String())
}

func npcSprite(n NPC) SpriteKey {
	return SpriteKey("npc_" + n.Dir.String())
}

func propSprite(p Prop) SpriteKey {
	return SpriteKey(fmt.Sprintf("%s_%d", p.Type, p.Variant))
}

// Sprite is a handle to a glyph image. It may be requested before the atlas
// finishes loading; callers check Ready and draw a placeholder until then.
type Sprite struct {
	Key   SpriteKey
	rows  [][]rune
	color core.Color
	ready atomic.Bool
}

// Ready reports whether the sprite has glyph data to draw.
func (s *Sprite) Ready() bool {
	return s != nil && s.ready.Load()
}

// Color returns the sprite's tint. Only meaningful once Ready.
func (s *Sprite) Color() core.Color {
	return s.color
}

// Stamp draws the sprite stretched over the cell rect using nearest-neighbor
// sampling. Spaces in the sprite are transparent.
func (s *Sprite) Stamp(dst *core.Screen, x, y, w, h int, tint core.Color) {
	if !s.Ready() || len(s.rows) == 0 {
		return
	}
	srcH := len(s.rows)
	for dy := range h {
		row := s.rows[dy*srcH/h]
		if len(row) == 0 {
			continue
		}
		for dx := range w {
			r := row[dx*len(row)/w]
			if r == ' ' {
				continue
			}
			dst.SetCell(x+dx, y+dy, r, tint)
		}
	}
}

type spriteFile struct {
	Sprites map[string]spriteDef `yaml:"sprites"`
}

type spriteDef struct {
	Color string   `yaml:"color"`
	Rows  []string `yaml:"rows"`
}

// Atlas resolves sprite keys to handles. Handles are created on first
// request and filled in when loading completes.
type Atlas struct {
	mu      sync.Mutex
	sprites map[SpriteKey]*Sprite
	loaded  atomic.Bool
}

// NewAtlas creates an empty atlas. Nothing is ready until Load runs.
func NewAtlas() *Atlas {
	return &Atlas{sprites: make(map[SpriteKey]*Sprite)}
}

// Get returns the handle for key. Unknown keys yield a handle that never
// becomes ready.
func (a *Atlas) Get(key SpriteKey) *Sprite {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.sprites[key]
	if !ok {
		s = &Sprite{Key: key}
		a.sprites[key] = s
	}
	return s
}

// Loaded reports whether a Load has completed successfully.
func (a *Atlas) Loaded() bool {
	return a.loaded.Load()
}

// Load parses sprite definitions and marks their handles ready.
func (a *Atlas) Load(data []byte) error {
	var f spriteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("assets: parse sprites: %w", err)
	}

	for name, def := range f.Sprites {
		color, ok := core.ParseColor(def.Color)
		if !ok {
			return fmt.Errorf("assets: sprite %q: unknown color %q", name, def.Color)
		}
		rows := make([][]rune, len(def.Rows))
		for i, r := range def.Rows {
			rows[i] = []rune(r)
		}

		s := a.Get(SpriteKey(name))
		a.mu.Lock()
		s.rows = rows
		s.color = color
		a.mu.Unlock()
		s.ready.Store(true)
	}
	a.loaded.Store(true)
	return nil
}

// LoadAsync loads the embedded sprites in the background. The returned
// channel receives the load error (or nil) and is then closed.
func (a *Atlas) LoadAsync() <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- a.Load(spritesYAML)
	}()
	return done
}
