package pet

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/tidwall/gjson"
)

// SequenceKind says how an animation layer picks its frame.
type SequenceKind uint8

const (
	SequenceNone   SequenceKind = iota // no frameSequence: default pose
	SequenceSingle                     // frameSequence.frame is one object
	SequenceFrames                     // frameSequence.frame is a list
)

// AnimationLayer is one layer's frame sequence inside an animation.
type AnimationLayer struct {
	FrameRepeat int // ≥ 1
	Kind        SequenceKind
	Frames      []int // frame ids; exactly one for SequenceSingle
}

// Animation maps layer index to that layer's frames.
type Animation struct {
	ID     int
	Layers map[int]AnimationLayer
}

// LayerSpec carries per-layer rendering hints from the visualization.
type LayerSpec struct {
	Z     float64
	Alpha int    // 0–255
	Ink   string // "ADD" selects additive blending
}

// Visualization is the decoded visualization manifest for one type and size.
// It is immutable after decoding and shared by every pet of that type and size.
type Visualization struct {
	Size           int
	LayerCount     int
	Directions     []Direction // ascending
	Animations     map[int]Animation
	Layers         map[int]LayerSpec
	Postures       map[string]int // posture name → animation id
	Gestures       map[string]int // gesture name → animation id
	DefaultPosture string

	// IgnoredDirections holds direction keys outside the eight compass codes.
	IgnoredDirections []string
}

// Asset is a named sprite placement offset.
type Asset struct {
	Name string
	X, Y float64
}

// Assets is the decoded asset manifest of one type.
type Assets struct {
	byName map[string]Asset
}

// NewAssets builds an asset table. Later duplicates of a name are ignored.
func NewAssets(list ...Asset) *Assets {
	a := &Assets{byName: make(map[string]Asset, len(list))}
	for _, asset := range list {
		if _, dup := a.byName[asset.Name]; !dup {
			a.byName[asset.Name] = asset
		}
	}
	return a
}

// Lookup returns the asset with exactly this name.
func (a *Assets) Lookup(name string) (Asset, bool) {
	asset, ok := a.byName[name]
	return asset, ok
}

// Len returns the number of assets.
func (a *Assets) Len() int {
	return len(a.byName)
}

// HasDirection reports whether d is in the supported set.
func (v *Visualization) HasDirection(d Direction) bool {
	_, found := slices.BinarySearch(v.Directions, d)
	return found
}

// ResolveDirection returns d when it is supported and otherwise the first
// supported direction. A visualization without directions leaves d unchanged.
func (v *Visualization) ResolveDirection(d Direction) Direction {
	if len(v.Directions) == 0 || v.HasDirection(d) {
		return d
	}
	return v.Directions[0]
}

// Layer returns the rendering hints of a layer, with defaults when the
// manifest has none.
func (v *Visualization) Layer(layer int) LayerSpec {
	if spec, ok := v.Layers[layer]; ok {
		return spec
	}
	return LayerSpec{Alpha: 255}
}

// DecodeVisualization parses a visualization manifest and returns the entry
// whose size equals size. A missing size is a *DecodeError wrapping
// ErrSizeNotFound that lists the sizes the manifest does provide.
func DecodeVisualization(data []byte, size int) (*Visualization, error) {
	if !gjson.ValidBytes(data) {
		return nil, &DecodeError{Size: size, Err: ErrMalformed}
	}
	root := gjson.ParseBytes(data)
	list := root.Get("visualizationData.graphics.visualization")
	if !list.Exists() {
		list = root.Get("graphics.visualization")
	}
	if !list.Exists() {
		return nil, &DecodeError{Size: size, Field: "visualizationData.graphics.visualization", Err: ErrMalformed}
	}

	var (
		match gjson.Result
		found bool
		sizes []int
	)
	// Array wraps a lone visualization object into a one-element list.
	for _, v := range list.Array() {
		s := int(v.Get("size").Int())
		sizes = append(sizes, s)
		if s == size && !found {
			match, found = v, true
		}
	}
	if !found {
		return nil, &DecodeError{Size: size, Err: fmt.Errorf("%w (have %v)", ErrSizeNotFound, sizes)}
	}
	return decodeEntry(match, size)
}

func decodeEntry(v gjson.Result, size int) (*Visualization, error) {
	lc := v.Get("layerCount")
	if !lc.Exists() {
		return nil, &DecodeError{Size: size, Field: "layerCount", Err: ErrMalformed}
	}
	layerCount := int(lc.Int())
	if layerCount < 0 {
		return nil, &DecodeError{Size: size, Field: "layerCount", Err: fmt.Errorf("%w: negative", ErrMalformed)}
	}

	vis := &Visualization{
		Size:       size,
		LayerCount: layerCount,
		Animations: make(map[int]Animation),
		Layers:     make(map[int]LayerSpec),
		Postures:   make(map[string]int),
		Gestures:   make(map[string]int),
	}

	each(v.Get("directions.direction"), func(id string, _ gjson.Result) {
		code, convErr := strconv.Atoi(id)
		if convErr != nil || !Direction(code).Valid() {
			vis.IgnoredDirections = append(vis.IgnoredDirections, id)
			return
		}
		if !slices.Contains(vis.Directions, Direction(code)) {
			vis.Directions = append(vis.Directions, Direction(code))
		}
	})
	slices.Sort(vis.Directions)

	var err error

	each(v.Get("animations.animation"), func(id string, a gjson.Result) {
		if err != nil {
			return
		}
		animID, convErr := strconv.Atoi(id)
		if convErr != nil {
			err = &DecodeError{Size: size, Field: "animations.animation", Err: fmt.Errorf("%w: animation %q", ErrMalformed, id)}
			return
		}
		anim := Animation{ID: animID, Layers: make(map[int]AnimationLayer)}
		each(a.Get("animationLayer"), func(lid string, l gjson.Result) {
			if err != nil {
				return
			}
			layer, convErr := strconv.Atoi(lid)
			if convErr != nil {
				err = &DecodeError{Size: size, Field: "animationLayer", Err: fmt.Errorf("%w: layer %q", ErrMalformed, lid)}
				return
			}
			anim.Layers[layer] = decodeAnimationLayer(l)
		})
		vis.Animations[animID] = anim
	})
	if err != nil {
		return nil, err
	}

	each(v.Get("layers.layer"), func(id string, l gjson.Result) {
		layer, convErr := strconv.Atoi(id)
		if convErr != nil {
			return
		}
		spec := LayerSpec{Z: l.Get("z").Float(), Alpha: 255, Ink: l.Get("ink").String()}
		if a := l.Get("alpha"); a.Exists() {
			spec.Alpha = int(a.Int())
		}
		vis.Layers[layer] = spec
	})

	each(v.Get("postures.posture"), func(id string, p gjson.Result) {
		vis.Postures[id] = int(p.Get("animationId").Int())
	})
	vis.DefaultPosture = v.Get("postures.defaultPosture").String()
	each(v.Get("gestures.gesture"), func(id string, g gjson.Result) {
		vis.Gestures[id] = int(g.Get("animationId").Int())
	})

	return vis, nil
}

func decodeAnimationLayer(l gjson.Result) AnimationLayer {
	out := AnimationLayer{FrameRepeat: int(l.Get("frameRepeat").Int())}
	if out.FrameRepeat < 1 {
		out.FrameRepeat = 1
	}
	frames := l.Get("frameSequence.frame")
	switch {
	case !frames.Exists():
		out.Kind = SequenceNone
	case frames.IsArray():
		out.Kind = SequenceFrames
		for _, f := range frames.Array() {
			out.Frames = append(out.Frames, int(f.Get("id").Int()))
		}
		if len(out.Frames) == 0 {
			out.Kind = SequenceNone
		}
	default:
		// Anything that is not a list is one fixed frame, whatever its keys.
		out.Kind = SequenceSingle
		out.Frames = []int{int(frames.Get("id").Int())}
	}
	return out
}

// DecodeAssets parses an asset manifest: {"asset": [{"name", "x", "y"}, ...]}.
// The list may also sit under "assets.asset" and may be a single object.
func DecodeAssets(data []byte) (*Assets, error) {
	if !gjson.ValidBytes(data) {
		return nil, &DecodeError{Err: ErrMalformed}
	}
	root := gjson.ParseBytes(data)
	list := root.Get("asset")
	if !list.Exists() {
		list = root.Get("assets.asset")
	}
	if !list.Exists() {
		return nil, &DecodeError{Field: "asset", Err: ErrMalformed}
	}

	assets := &Assets{byName: make(map[string]Asset)}
	var err error
	visit := func(v gjson.Result) {
		if err != nil {
			return
		}
		name := v.Get("name").String()
		if name == "" {
			err = &DecodeError{Field: "asset.name", Err: fmt.Errorf("%w: empty name", ErrMalformed)}
			return
		}
		if _, dup := assets.byName[name]; dup {
			return
		}
		assets.byName[name] = Asset{Name: name, X: v.Get("x").Float(), Y: v.Get("y").Float()}
	}
	if list.IsArray() {
		list.ForEach(func(_, v gjson.Result) bool {
			visit(v)
			return err == nil
		})
	} else {
		visit(list)
	}
	if err != nil {
		return nil, err
	}
	return assets, nil
}

// each visits the entries of a field that authoring tools emit in three
// shapes: a single object with an "id", an array of objects with "id"s (or
// positional ids when absent), or an object keyed by id.
func each(r gjson.Result, fn func(id string, v gjson.Result)) {
	switch {
	case !r.Exists():
	case r.IsArray():
		for i, v := range r.Array() {
			id := strconv.Itoa(i)
			if vid := v.Get("id"); vid.Exists() {
				id = vid.String()
			}
			fn(id, v)
		}
	case r.IsObject() && r.Get("id").Exists():
		fn(r.Get("id").String(), r)
	case r.IsObject():
		r.ForEach(func(k, v gjson.Result) bool {
			fn(k.String(), v)
			return true
		})
	}
}
