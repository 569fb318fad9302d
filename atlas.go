package roomkit

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureRegion describes a sub-rectangle within an atlas page.
// Value type, stored directly on Node.
type TextureRegion struct {
	Page      uint16 // atlas page index (references Scene.pages)
	X, Y      uint16 // top-left corner of the sub-image rect within the atlas page
	Width     uint16 // width of the sub-image rect (may differ from OriginalW if trimmed)
	Height    uint16 // height of the sub-image rect (may differ from OriginalH if trimmed)
	OriginalW uint16 // untrimmed sprite width as authored
	OriginalH uint16 // untrimmed sprite height as authored
	OffsetX   int16  // horizontal trim offset from TexturePacker
	OffsetY   int16  // vertical trim offset from TexturePacker
	Rotated   bool   // true if the region is stored 90 degrees clockwise in the atlas
}

// Atlas holds one or more atlas page images and a map of named regions.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number.
	Pages   []*ebiten.Image
	regions map[string]TextureRegion
}

// Region returns the TextureRegion for the given name and whether it exists.
func (a *Atlas) Region(name string) (TextureRegion, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// HasFrame reports whether the atlas contains a region with exactly this name.
func (a *Atlas) HasFrame(name string) bool {
	_, ok := a.regions[name]
	return ok
}

// LoadAtlas parses TexturePacker JSON data and associates the given page images.
// Supports both the hash format (single "frames" object) and the array format
// ("textures" array with per-page frame lists).
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	// Probe top-level keys to detect format.
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("roomkit: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{
		Pages:   pages,
		regions: make(map[string]TextureRegion),
	}

	switch {
	case probe.Textures != nil:
		if err := parseArrayFormat(probe.Textures, atlas); err != nil {
			return nil, err
		}
	case probe.Frames != nil:
		if err := parseFrames(probe.Frames, 0, atlas); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("roomkit: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	return atlas, nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Filename         string   `json:"filename"`
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonTexturePage struct {
	Image  string          `json:"image"`
	Frames json.RawMessage `json:"frames"`
}

// parseFrames accepts both {"name": {frame...}} and [{"filename": "name", ...}].
// Phaser exports the latter for multi-atlas pages.
func parseFrames(raw json.RawMessage, pageIndex uint16, atlas *Atlas) error {
	var hash map[string]jsonFrame
	if err := json.Unmarshal(raw, &hash); err == nil {
		for name, f := range hash {
			atlas.regions[name] = frameToRegion(f, pageIndex)
		}
		return nil
	}
	var list []jsonFrame
	if err := json.Unmarshal(raw, &list); err != nil {
		return fmt.Errorf("roomkit: failed to parse atlas frames: %w", err)
	}
	for _, f := range list {
		if f.Filename == "" {
			return fmt.Errorf("roomkit: atlas frame without filename")
		}
		atlas.regions[f.Filename] = frameToRegion(f, pageIndex)
	}
	return nil
}

// parseArrayFormat parses the array format: [{"image":"...", "frames":...}, ...]
func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("roomkit: failed to parse atlas textures array: %w", err)
	}
	for i, tex := range textures {
		if err := parseFrames(tex.Frames, uint16(i), atlas); err != nil {
			return err
		}
	}
	return nil
}

func frameToRegion(f jsonFrame, page uint16) TextureRegion {
	return TextureRegion{
		Page:      page,
		X:         uint16(f.Frame.X),
		Y:         uint16(f.Frame.Y),
		Width:     uint16(f.Frame.W),
		Height:    uint16(f.Frame.H),
		OriginalW: uint16(f.SourceSize.W),
		OriginalH: uint16(f.SourceSize.H),
		OffsetX:   int16(f.SpriteSourceSize.X),
		OffsetY:   int16(f.SpriteSourceSize.Y),
		Rotated:   f.Rotated,
	}
}
