package roomkit

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Test JSON fixtures ---

const singlePageJSON = `{
  "frames": {
    "cat_cat_64_a_2_0.png": {
      "frame": {"x": 0, "y": 0, "w": 64, "h": 64},
      "rotated": false,
      "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 64, "h": 64},
      "sourceSize": {"w": 64, "h": 64}
    },
    "cat_cat_64_sd.png": {
      "frame": {"x": 64, "y": 0, "w": 32, "h": 12},
      "rotated": false,
      "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 32, "h": 12},
      "sourceSize": {"w": 32, "h": 12}
    },
    "cat_cat_64_b_2_0.png": {
      "frame": {"x": 100, "y": 50, "w": 60, "h": 58},
      "rotated": false,
      "trimmed": true,
      "spriteSourceSize": {"x": 2, "y": 3, "w": 60, "h": 58},
      "sourceSize": {"w": 64, "h": 64}
    }
  },
  "meta": {"image": "cat.png", "size": {"w": 256, "h": 256}}
}`

const frameListJSON = `{
  "frames": [
    {"filename": "a.png", "frame": {"x": 0, "y": 0, "w": 8, "h": 8}},
    {"filename": "b.png", "frame": {"x": 8, "y": 0, "w": 8, "h": 8}}
  ]
}`

const multiPageJSON = `{
  "textures": [
    {"image": "atlas-0.png", "frames": {"page0.png": {"frame": {"x": 0, "y": 0, "w": 64, "h": 64}}}},
    {"image": "atlas-1.png", "frames": [{"filename": "page1.png", "frame": {"x": 10, "y": 20, "w": 50, "h": 50}}]}
  ]
}`

// --- LoadAtlas tests ---

func TestLoadAtlas_HashFormat(t *testing.T) {
	atlas, err := LoadAtlas([]byte(singlePageJSON), []*ebiten.Image{ebiten.NewImage(256, 256)})
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	for _, name := range []string{"cat_cat_64_a_2_0.png", "cat_cat_64_b_2_0.png", "cat_cat_64_sd.png"} {
		if !atlas.HasFrame(name) {
			t.Errorf("frame %q missing", name)
		}
	}

	r, ok := atlas.Region("cat_cat_64_sd.png")
	if !ok {
		t.Fatal("shadow region missing")
	}
	if r.X != 64 || r.Y != 0 || r.Width != 32 || r.Height != 12 || r.Page != 0 {
		t.Errorf("shadow region = %+v", r)
	}
}

func TestLoadAtlas_TrimmedRegion(t *testing.T) {
	atlas, err := LoadAtlas([]byte(singlePageJSON), nil)
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	r, _ := atlas.Region("cat_cat_64_b_2_0.png")
	if r.OffsetX != 2 || r.OffsetY != 3 {
		t.Errorf("OffsetX/Y = %d/%d, want 2/3", r.OffsetX, r.OffsetY)
	}
	if r.OriginalW != 64 || r.OriginalH != 64 {
		t.Errorf("OriginalW/H = %d/%d, want 64/64", r.OriginalW, r.OriginalH)
	}
}

func TestLoadAtlas_FrameList(t *testing.T) {
	atlas, err := LoadAtlas([]byte(frameListJSON), nil)
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	if !atlas.HasFrame("a.png") || !atlas.HasFrame("b.png") {
		t.Error("frame list entries missing")
	}
}

func TestLoadAtlas_MultiPage(t *testing.T) {
	atlas, err := LoadAtlas([]byte(multiPageJSON), nil)
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	r0, _ := atlas.Region("page0.png")
	r1, _ := atlas.Region("page1.png")
	if r0.Page != 0 || r1.Page != 1 {
		t.Errorf("pages = %d/%d, want 0/1", r0.Page, r1.Page)
	}
	if r1.X != 10 || r1.Y != 20 {
		t.Errorf("page1 region = %+v", r1)
	}
}

func TestAtlas_MissingFrame(t *testing.T) {
	atlas, err := LoadAtlas([]byte(singlePageJSON), nil)
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	if atlas.HasFrame("cat_cat_64_a_2_1.png") {
		t.Error("HasFrame reported a frame the atlas lacks")
	}
	if _, ok := atlas.Region("cat_cat_64_a_2_1.png"); ok {
		t.Error("Region reported a frame the atlas lacks")
	}
}

func TestLoadAtlas_Errors(t *testing.T) {
	cases := map[string]string{
		"invalid json":     `{`,
		"no frames":        `{"meta": {}}`,
		"nameless frame":   `{"frames": [{"frame": {"x": 0, "y": 0, "w": 1, "h": 1}}]}`,
		"bad textures":     `{"textures": 3}`,
		"bad frames value": `{"frames": 3}`,
	}
	for name, data := range cases {
		if _, err := LoadAtlas([]byte(data), nil); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestSceneLoadAtlas_OffsetsPages(t *testing.T) {
	s := NewScene()
	first, err := s.LoadAtlas([]byte(singlePageJSON), []*ebiten.Image{ebiten.NewImage(4, 4)})
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	second, err := s.LoadAtlas([]byte(frameListJSON), []*ebiten.Image{ebiten.NewImage(4, 4)})
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	if r, _ := first.Region("cat_cat_64_sd.png"); r.Page != 0 {
		t.Errorf("first atlas page = %d, want 0", r.Page)
	}
	if r, _ := second.Region("a.png"); r.Page != 1 {
		t.Errorf("second atlas page = %d, want 1", r.Page)
	}
	if s.page(1) == nil || s.page(2) != nil {
		t.Error("scene pages not registered as expected")
	}
}
