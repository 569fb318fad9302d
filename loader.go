package roomkit

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // atlas pages are PNG
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cache holds resources loaded by a Scene's loaders. It is only written on the
// scene's Update goroutine, so readers on that goroutine need no locking.
type Cache struct {
	json    map[string][]byte
	atlases map[string]*Atlas
}

func newCache() *Cache {
	return &Cache{
		json:    make(map[string][]byte),
		atlases: make(map[string]*Atlas),
	}
}

// JSON returns the raw bytes of a previously loaded JSON resource.
func (c *Cache) JSON(key string) ([]byte, bool) {
	b, ok := c.json[key]
	return b, ok
}

// Atlas returns a previously loaded atlas.
func (c *Cache) Atlas(key string) (*Atlas, bool) {
	a, ok := c.atlases[key]
	return a, ok
}

// PutJSON stores a JSON resource directly, bypassing any loader.
func (c *Cache) PutJSON(key string, data []byte) {
	c.json[key] = data
}

type requestKind uint8

const (
	requestJSON requestKind = iota
	requestAtlas
)

type loadRequest struct {
	kind      requestKind
	key       string
	path      string
	imagePath string
}

type loadResult struct {
	req   loadRequest
	data  []byte
	image image.Image
	err   error
}

// Loader batches resource requests and loads them from a filesystem in the
// background. The batch-complete callback runs on the scene's Update.
type Loader struct {
	scene    *Scene
	fsys     fs.FS
	base     string
	sync     bool
	requests []loadRequest
}

// NewLoader creates a loader that reads from fsys and stores results in the
// scene's Cache.
func (s *Scene) NewLoader(fsys fs.FS) *Loader {
	return &Loader{scene: s, fsys: fsys}
}

// SetPath sets the directory that subsequent requests are relative to.
func (l *Loader) SetPath(dir string) {
	l.base = dir
}

// SetSynchronous makes Start read files on the calling goroutine. Completion
// is still delivered on the next Update.
func (l *Loader) SetSynchronous(sync bool) {
	l.sync = sync
}

// LoadAtlas queues a TexturePacker atlas: one PNG page plus its JSON.
func (l *Loader) LoadAtlas(key, imagePath, jsonPath string) {
	l.requests = append(l.requests, loadRequest{
		kind:      requestAtlas,
		key:       key,
		path:      path.Join(l.base, jsonPath),
		imagePath: path.Join(l.base, imagePath),
	})
}

// LoadJSON queues a raw JSON resource.
func (l *Loader) LoadJSON(key, jsonPath string) {
	l.requests = append(l.requests, loadRequest{
		kind: requestJSON,
		key:  key,
		path: path.Join(l.base, jsonPath),
	})
}

// Start loads every queued request and calls done exactly once, on the
// scene's Update, after all of them finished. Resources already present in
// the cache are not read again. The error joins every failed request.
func (l *Loader) Start(done func(error)) {
	reqs := l.requests
	l.requests = nil

	cache := l.scene.cache
	var todo []loadRequest
	for _, r := range reqs {
		switch r.kind {
		case requestJSON:
			if _, ok := cache.json[r.key]; ok {
				continue
			}
		case requestAtlas:
			if _, ok := cache.atlases[r.key]; ok {
				continue
			}
		}
		todo = append(todo, r)
	}

	if len(todo) == 0 {
		l.scene.post(func() { done(nil) })
		return
	}

	fsys := l.fsys
	scene := l.scene
	run := func() {
		results := make([]loadResult, len(todo))
		for i, r := range todo {
			results[i] = readRequest(fsys, r)
		}
		scene.post(func() { done(scene.applyResults(results)) })
	}
	if l.sync {
		run()
		return
	}
	go run()
}

func readRequest(fsys fs.FS, r loadRequest) loadResult {
	res := loadResult{req: r}
	data, err := fs.ReadFile(fsys, r.path)
	if err != nil {
		res.err = fmt.Errorf("roomkit: load %q: %w", r.key, err)
		return res
	}
	res.data = data
	if r.kind == requestAtlas {
		raw, err := fs.ReadFile(fsys, r.imagePath)
		if err != nil {
			res.err = fmt.Errorf("roomkit: load %q page: %w", r.key, err)
			return res
		}
		img, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			res.err = fmt.Errorf("roomkit: decode %q page: %w", r.key, err)
			return res
		}
		res.image = img
	}
	return res
}

// applyResults runs on Update: creates GPU images and fills the cache.
func (s *Scene) applyResults(results []loadResult) error {
	var errs []error
	for _, res := range results {
		if res.err != nil {
			errs = append(errs, res.err)
			continue
		}
		switch res.req.kind {
		case requestJSON:
			s.cache.json[res.req.key] = res.data
		case requestAtlas:
			if _, ok := s.cache.atlases[res.req.key]; ok {
				// Another batch loaded it first.
				continue
			}
			page := ebiten.NewImageFromImage(res.image)
			atlas, err := s.LoadAtlas(res.data, []*ebiten.Image{page})
			if err != nil {
				errs = append(errs, fmt.Errorf("roomkit: atlas %q: %w", res.req.key, err))
				continue
			}
			s.cache.atlases[res.req.key] = atlas
		}
	}
	for _, err := range errs {
		s.logger.Warn("resource load failed", "err", err)
	}
	return errors.Join(errs...)
}
