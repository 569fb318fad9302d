package roomkit

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sasha-s/go-deadlock"
)

const defaultCommandCap = 256

// DefaultTPS is the host tick rate the scene assumes when converting timer
// intervals into ticks.
const DefaultTPS = 60

// Scene is the top-level object that owns the node tree, timers, tweens,
// loaded atlases and render buffers.
type Scene struct {
	root   *Node
	logger *slog.Logger
	debug  bool
	tps    int

	// Timers and tweens
	timers []*Timer
	tweens []*TweenGroup

	// Loader hand-off: completions queued by background loads and applied on Update.
	pendingMu deadlock.Mutex
	pending   []func()

	// Render state
	commands []RenderCommand
	pages    []*ebiten.Image
	nextPage int
	cache    *Cache
}

// SceneOption configures a Scene.
type SceneOption func(*Scene)

// WithLogger sets the structured logger used by the scene and everything it
// hands a logger to.
func WithLogger(l *slog.Logger) SceneOption {
	return func(s *Scene) { s.logger = l }
}

// WithTPS overrides the tick rate used to convert timer intervals.
func WithTPS(tps int) SceneOption {
	return func(s *Scene) {
		if tps > 0 {
			s.tps = tps
		}
	}
}

// NewScene creates a new scene with a pre-created root container.
func NewScene(opts ...SceneOption) *Scene {
	s := &Scene{
		root:     NewContainer("root"),
		tps:      DefaultTPS,
		commands: make([]RenderCommand, 0, defaultCommandCap),
		cache:    newCache(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = discardLogger()
	}
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Logger returns the scene's structured logger.
func (s *Scene) Logger() *slog.Logger {
	return s.logger
}

// TPS returns the tick rate Update is expected to run at.
func (s *Scene) TPS() int {
	return s.tps
}

// Cache returns the resource cache populated by loaders created from this scene.
func (s *Scene) Cache() *Cache {
	return s.cache
}

// Update applies finished loads, fires due timers and advances tweens.
// It is the only place callbacks registered with the scene run.
func (s *Scene) Update() {
	s.drainPending()

	dt := float32(1.0 / float64(s.tps))
	s.runTimers()
	s.runTweens(dt)

	updateWorldTransform(s.root, identityTransform, 1.0, false)
}

// Draw traverses the scene tree, emits render commands in depth order and
// submits them to the given screen image.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.commands = s.commands[:0]

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.traverse(s.root, identityTransform, 1.0, false)
	traversed := time.Since(t0)

	s.submit(screen)

	if s.debug {
		s.debugLog(debugStats{
			traverseTime: traversed,
			submitTime:   time.Since(t0) - traversed,
			commandCount: len(s.commands),
		})
	}
}

// Commands returns the render commands produced by the most recent Draw.
// The returned slice MUST NOT be mutated.
func (s *Scene) Commands() []RenderCommand {
	return s.commands
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and per-frame timing stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// RegisterPage stores an atlas page image at the given index.
func (s *Scene) RegisterPage(index int, img *ebiten.Image) {
	for len(s.pages) <= index {
		s.pages = append(s.pages, nil)
	}
	s.pages[index] = img
}

func (s *Scene) page(index uint16) *ebiten.Image {
	if int(index) >= len(s.pages) {
		return nil
	}
	return s.pages[index]
}

// LoadAtlas parses TexturePacker JSON, registers atlas pages with the scene,
// and returns the Atlas for region lookups. Pages are registered starting at
// the next available page index.
func (s *Scene) LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	atlas, err := LoadAtlas(jsonData, pages)
	if err != nil {
		return nil, err
	}
	startIndex := s.nextPage
	for i, page := range pages {
		s.RegisterPage(startIndex+i, page)
	}
	s.nextPage = startIndex + len(pages)
	if startIndex > 0 {
		for name, r := range atlas.regions {
			r.Page += uint16(startIndex)
			atlas.regions[name] = r
		}
	}
	return atlas, nil
}

// post queues fn to run on the next Update. Safe to call from any goroutine.
func (s *Scene) post(fn func()) {
	s.pendingMu.Lock()
	s.pending = append(s.pending, fn)
	s.pendingMu.Unlock()
}

func (s *Scene) drainPending() {
	s.pendingMu.Lock()
	fns := s.pending
	s.pending = nil
	s.pendingMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Pending reports whether loader completions are waiting for the next Update.
func (s *Scene) Pending() bool {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	return len(s.pending) > 0
}
