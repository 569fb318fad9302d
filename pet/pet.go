package pet

import (
	"log/slog"
	"path"
	"slices"

	"github.com/sasha-s/go-deadlock"
)

// DefaultSize is the display size used when Options.Size is zero.
const DefaultSize = 64

// Options describes a pet to create.
type Options struct {
	Type        string
	Size        int
	Direction   Direction
	Animation   int
	Tint        *uint32  // body tint, nil means DefaultTint
	ShadowAlpha *float64 // nil means DefaultShadowAlpha
	Logger      *slog.Logger
}

// Deps are the collaborators a pet loads and renders through.
type Deps struct {
	Loader    Loader
	Resolver  *Resolver
	Textures  Textures
	Host      Host
	Container Container
	// Root is the directory holding one subdirectory per pet type.
	Root string
}

// Pet is one on-screen pet. Its direction and animation may be changed from
// any goroutine; everything else runs on the host goroutine.
type Pet struct {
	typ         string
	size        int
	tint        uint32
	shadowAlpha float64
	logger      *slog.Logger

	mu        deadlock.Mutex
	direction Direction
	flip      bool
	animation int
	dirty     bool

	sched          Scheduler
	manifest       *Manifest
	compositor     *Compositor
	container      Container
	timer          Cancel
	sprites        []Sprite
	recompositions int
	ready          bool
	destroyed      bool
}

// New creates a pet. Left-facing directions are mirrored immediately. The pet
// renders nothing until Load or Attach completes.
func New(opts Options) *Pet {
	p := &Pet{
		typ:         opts.Type,
		size:        opts.Size,
		tint:        DefaultTint,
		shadowAlpha: DefaultShadowAlpha,
		animation:   opts.Animation,
		logger:      opts.Logger,
	}
	if p.size == 0 {
		p.size = DefaultSize
	}
	if opts.Tint != nil {
		p.tint = *opts.Tint
	}
	if opts.ShadowAlpha != nil {
		p.shadowAlpha = *opts.ShadowAlpha
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	p.logger = p.logger.With("pet", p.typ, "size", p.size)
	p.direction, p.flip = Mirror(opts.Direction)
	return p
}

// Load requests the pet's atlas and manifests and, once the batch completes,
// attaches them and starts the per-tick update. A failed load is logged and
// leaves the pet not ready.
func (p *Pet) Load(deps Deps) {
	typ := p.typ
	deps.Loader.SetPath(path.Join(deps.Root, typ))
	deps.Loader.LoadAtlas(typ, typ+".png", typ+"_spritesheet.json")
	deps.Loader.LoadJSON(VisualizationKey(typ), typ+"_visualization.json")
	deps.Loader.LoadJSON(AssetsKey(typ), typ+"_assets.json")
	deps.Loader.Start(func(err error) {
		p.loaded(deps, err)
	})
}

func (p *Pet) loaded(deps Deps, err error) {
	if p.destroyed {
		return
	}
	if err != nil {
		p.logger.Error("load failed", "err", err)
		return
	}
	m, err := deps.Resolver.Resolve(p.typ, p.size)
	if err != nil {
		p.logger.Error("manifest rejected", "err", err)
		return
	}
	tex, ok := deps.Textures.Texture(p.typ)
	if !ok {
		p.logger.Error("atlas missing after load")
		return
	}
	p.Attach(m, tex, deps.Container)
	step := TickStep(deps.Host.TPS())
	p.timer = deps.Host.Schedule(func() { p.advance(step) }, 0, true)
}

// Attach binds a resolved manifest, atlas and container and composites the
// first frame. Load calls it; tests and tools may call it directly.
func (p *Pet) Attach(m *Manifest, tex TextureQuery, c Container) {
	comp := NewCompositor(m, tex)
	comp.Tint = p.tint
	comp.ShadowAlpha = p.shadowAlpha

	p.mu.Lock()
	p.manifest = m
	p.direction = m.Visualization.ResolveDirection(p.direction)
	p.mu.Unlock()

	p.compositor = comp
	p.container = c
	p.ready = true

	vis := m.Visualization
	p.logger.Debug("attached",
		"layers", vis.LayerCount,
		"directions", vis.Directions,
		"ignoredDirections", vis.IgnoredDirections,
		"animations", len(vis.Animations),
		"postures", vis.Postures,
		"gestures", vis.Gestures,
		"assets", m.Assets.Len(),
	)
	p.recompose()
}

// Update advances the pet by ticks reference ticks (ReferenceTPS per second)
// and recomposites when the logical frame moved or the direction or animation
// changed.
func (p *Pet) Update(ticks int) {
	p.advance(float64(ticks))
}

func (p *Pet) advance(ticks float64) {
	if !p.ready {
		return
	}
	advanced := p.sched.Advance(ticks)
	p.mu.Lock()
	dirty := p.dirty
	p.mu.Unlock()
	if advanced || dirty {
		p.recompose()
	}
}

func (p *Pet) recompose() {
	p.mu.Lock()
	direction, flip, animation := p.direction, p.flip, p.animation
	p.dirty = false
	p.mu.Unlock()

	sprites := p.compositor.Compose(animation, direction, p.sched.FrameCount())
	if p.container != nil {
		p.container.RemoveAll()
		p.container.SetFlip(flip)
		for _, s := range sprites {
			p.container.AddSprite(s)
		}
	}
	p.sprites = sprites
	p.recompositions++
}

// SetDirection turns the pet. Left-facing directions are mirrored and a
// direction the manifest lacks falls back to its first supported one. The
// change shows on the next tick.
func (p *Pet) SetDirection(d Direction) {
	d, flip := Mirror(d)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.manifest != nil {
		d = p.manifest.Visualization.ResolveDirection(d)
	}
	if d == p.direction && flip == p.flip {
		return
	}
	p.direction, p.flip = d, flip
	p.dirty = true
}

// SetAnimation switches the animation. The change shows on the next tick.
func (p *Pet) SetAnimation(animation int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if animation == p.animation {
		return
	}
	p.animation = animation
	p.dirty = true
}

// SetPosture switches to the animation of a named posture such as "sit".
// It reports false when the pet is not attached or has no such posture.
func (p *Pet) SetPosture(name string) bool {
	return p.setNamed(name, func(v *Visualization) map[string]int { return v.Postures })
}

// SetGesture switches to the animation of a named gesture.
// It reports false when the pet is not attached or has no such gesture.
func (p *Pet) SetGesture(name string) bool {
	return p.setNamed(name, func(v *Visualization) map[string]int { return v.Gestures })
}

func (p *Pet) setNamed(name string, table func(*Visualization) map[string]int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.manifest == nil {
		return false
	}
	animation, ok := table(p.manifest.Visualization)[name]
	if !ok {
		return false
	}
	if animation != p.animation {
		p.animation = animation
		p.dirty = true
	}
	return true
}

// Destroy stops the per-tick update and clears the container. The pet cannot
// be reused afterwards.
func (p *Pet) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.ready = false
	if p.timer != nil {
		p.timer.Remove()
		p.timer = nil
	}
	if p.container != nil {
		p.container.RemoveAll()
	}
	p.sprites = nil
}

// Type returns the pet type.
func (p *Pet) Type() string { return p.typ }

// Size returns the display size.
func (p *Pet) Size() int { return p.size }

// Ready reports whether the pet is attached and rendering.
func (p *Pet) Ready() bool { return p.ready }

// Direction returns the facing direction after mirroring and fallback.
func (p *Pet) Direction() Direction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.direction
}

// Flipped reports whether the pet is drawn mirrored.
func (p *Pet) Flipped() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.flip
}

// Animation returns the current animation id.
func (p *Pet) Animation() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.animation
}

// FrameCount returns the current logical frame.
func (p *Pet) FrameCount() int { return p.sched.FrameCount() }

// Recompositions counts how many times the sprite list was rebuilt.
func (p *Pet) Recompositions() int { return p.recompositions }

// Sprites returns a copy of the current composite, back to front.
func (p *Pet) Sprites() []Sprite { return slices.Clone(p.sprites) }

// Manifest returns the attached manifest, or nil before Attach.
func (p *Pet) Manifest() *Manifest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.manifest
}
