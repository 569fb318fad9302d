package pet

import (
	"errors"
	"fmt"
)

// Manifest is the resolved, read-only data a pet of one type and size renders
// from. One Manifest is shared by every pet of that type and size.
type Manifest struct {
	Type          string
	Size          int
	Visualization *Visualization
	Assets        *Assets
}

// VisualizationKey is the cache key of a type's visualization manifest.
func VisualizationKey(typ string) string { return typ + "_visualization" }

// AssetsKey is the cache key of a type's asset manifest.
func AssetsKey(typ string) string { return typ + "_assets" }

type manifestKey struct {
	typ  string
	size int
}

// Resolver turns cached manifest JSON into Manifests and memoizes them.
// It is meant to be used from the host goroutine only.
type Resolver struct {
	cache    Cache
	resolved map[manifestKey]*Manifest
}

// NewResolver creates a resolver reading from cache.
func NewResolver(cache Cache) *Resolver {
	return &Resolver{cache: cache, resolved: make(map[manifestKey]*Manifest)}
}

// Resolve returns the manifest for typ at size. Both JSON resources must have
// been loaded into the cache already.
func (r *Resolver) Resolve(typ string, size int) (*Manifest, error) {
	key := manifestKey{typ, size}
	if m, ok := r.resolved[key]; ok {
		return m, nil
	}

	visData, ok := r.cache.JSON(VisualizationKey(typ))
	if !ok {
		return nil, &DecodeError{Type: typ, Size: size, Field: VisualizationKey(typ), Err: ErrNotLoaded}
	}
	assetData, ok := r.cache.JSON(AssetsKey(typ))
	if !ok {
		return nil, &DecodeError{Type: typ, Size: size, Field: AssetsKey(typ), Err: ErrNotLoaded}
	}

	vis, err := DecodeVisualization(visData, size)
	if err != nil {
		return nil, withType(err, typ)
	}
	assets, err := DecodeAssets(assetData)
	if err != nil {
		return nil, withType(err, typ)
	}

	m := &Manifest{Type: typ, Size: size, Visualization: vis, Assets: assets}
	r.resolved[key] = m
	return m, nil
}

func withType(err error, typ string) error {
	var de *DecodeError
	if errors.As(err, &de) {
		de.Type = typ
		return de
	}
	return fmt.Errorf("pet: %s: %w", typ, err)
}
