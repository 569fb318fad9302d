// Package roomkit is a small retained-mode 2D host for virtual-room clients
// built on [Ebitengine].
//
// It provides what the room renderer needs from an engine and nothing more:
// a scene graph of containers and sprites ordered by depth, TexturePacker
// atlases, tick-driven timers, position tweens (via [gween]) and a batched
// resource loader with a cache.
//
// # Quick start
//
//	scene := roomkit.NewScene(roomkit.WithLogger(logger))
//	loader := scene.NewLoader(os.DirFS("web-gallery"))
//	loader.LoadAtlas("cat", "pets/cat/cat.png", "pets/cat/cat_spritesheet.json")
//	loader.Start(func(err error) { ... })
//
// Drive it from an [ebiten.Game]:
//
//	func (g *Game) Update() error        { g.scene.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.scene.Draw(s) }
//
// # Threading
//
// Update and Draw must be called from one goroutine. Loaders read files in the
// background and hand their results back through the next Update, so every
// callback registered with a Scene runs on that goroutine.
//
// Pets and rooms live in the pet and room subpackages.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package roomkit
