package pet

import (
	"testing"
	"time"
)

// --- Test JSON fixtures ---

const catVisualizationJSON = `{
  "visualizationData": {
    "type": "cat",
    "graphics": {
      "visualization": [
        {"size": "32", "layerCount": "1", "directions": {"direction": [{"id": "2"}]}},
        {
          "size": "64",
          "layerCount": "3",
          "angle": "45",
          "layers": {"layer": [
            {"id": "1", "z": "0.5"},
            {"id": "2", "ink": "ADD", "alpha": "128"}
          ]},
          "directions": {"direction": [{"id": "2"}, {"id": "0"}, {"id": "1"}]},
          "animations": {"animation": [
            {"id": "0", "animationLayer": [
              {"id": "0", "frameSequence": {"frame": [{"id": "10"}, {"id": "11"}, {"id": "12"}, {"id": "13"}]}},
              {"id": "1", "frameRepeat": "3", "frameSequence": {"frame": [{"id": "5"}, {"id": "6"}]}}
            ]},
            {"id": "1", "animationLayer": [
              {"id": "0", "frameSequence": {"frame": {"id": "7"}}},
              {"id": "1", "frameSequence": {"frame": {"id": "8"}}},
              {"id": "2", "frameSequence": {"frame": {"id": "9"}}}
            ]},
            {"id": "2", "animationLayer": {"id": "4", "frameSequence": {"frame": {"id": "44"}}}},
            {"id": "3", "animationLayer": [{"id": "0"}]}
          ]},
          "postures": {"defaultPosture": "std", "posture": [
            {"id": "std", "animationId": "0"},
            {"id": "sit", "animationId": "1"}
          ]},
          "gestures": {"gesture": {"id": "sml", "animationId": "2"}}
        }
      ]
    }
  }
}`

const catAssetsJSON = `{
  "asset": [
    {"name": "cat_64_a_2_10", "x": "12", "y": "40"},
    {"name": "cat_64_a_2_11", "x": 12, "y": 41},
    {"name": "cat_64_b_2_5", "x": "3", "y": "30"},
    {"name": "cat_64_b_2_6", "x": "3", "y": "31"},
    {"name": "cat_64_c_2_0", "x": "-4", "y": "20"},
    {"name": "cat_64_a_0_10", "x": "10", "y": "10"},
    {"name": "cat_64_sd", "x": "16", "y": "-2"}
  ]
}`

// catFrames lists the atlas frames for every asset above except
// cat_64_b_2_6, which exists in the manifest but not in the atlas.
var catFrames = []string{
	"cat_cat_64_a_2_10.png",
	"cat_cat_64_a_2_11.png",
	"cat_cat_64_b_2_5.png",
	"cat_cat_64_c_2_0.png",
	"cat_cat_64_a_0_10.png",
	"cat_cat_64_sd.png",
}

// --- Fakes ---

type fakeAtlas map[string]bool

func newFakeAtlas(frames ...string) fakeAtlas {
	a := fakeAtlas{}
	for _, f := range frames {
		a[f] = true
	}
	return a
}

func (a fakeAtlas) HasFrame(name string) bool { return a[name] }

type fakeCache map[string][]byte

func (c fakeCache) JSON(key string) ([]byte, bool) {
	b, ok := c[key]
	return b, ok
}

func catCache() fakeCache {
	return fakeCache{
		VisualizationKey("cat"): []byte(catVisualizationJSON),
		AssetsKey("cat"):        []byte(catAssetsJSON),
	}
}

type fakeContainer struct {
	sprites []Sprite
	flip    bool
	clears  int
}

func (c *fakeContainer) AddSprite(s Sprite) { c.sprites = append(c.sprites, s) }
func (c *fakeContainer) RemoveAll() { c.sprites = nil; c.clears++ }
func (c *fakeContainer) SetFlip(flip bool) { c.flip = flip }

type fakeTimer struct{ removed bool }

func (t *fakeTimer) Remove() { t.removed = true }

type fakeHost struct {
	tps       int
	callbacks []func()
	timers    []*fakeTimer
}

func (h *fakeHost) Schedule(cb func(), _ time.Duration, _ bool) Cancel {
	t := &fakeTimer{}
	h.callbacks = append(h.callbacks, cb)
	h.timers = append(h.timers, t)
	return t
}

func (h *fakeHost) TPS() int { return h.tps }

// tick runs every live callback once.
func (h *fakeHost) tick() {
	for i, cb := range h.callbacks {
		if !h.timers[i].removed {
			cb()
		}
	}
}

type fakeLoader struct {
	path     string
	atlases  []string
	jsons    []string
	done     func(error)
	startErr error
}

func (l *fakeLoader) SetPath(dir string) { l.path = dir }
func (l *fakeLoader) LoadAtlas(key, _, _ string) { l.atlases = append(l.atlases, key) }
func (l *fakeLoader) LoadJSON(key, _ string) { l.jsons = append(l.jsons, key) }
func (l *fakeLoader) Start(done func(error)) { l.done = done }
func (l *fakeLoader) complete() { l.done(l.startErr) }

type fakeTextures map[string]TextureQuery

func (t fakeTextures) Texture(typ string) (TextureQuery, bool) {
	q, ok := t[typ]
	return q, ok
}

func mustCatManifest(t testing.TB) *Manifest {
	t.Helper()
	m, err := NewResolver(catCache()).Resolve("cat", 64)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return m
}
