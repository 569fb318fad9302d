// Package pet renders room pets from authored visualization and asset
// manifests.
//
// A pet type ships a visualization manifest (layer count, supported
// directions, animations as per-layer frame sequences), an asset manifest
// (named sprite offsets) and an atlas. Every logical frame the pet resolves
// which frame each layer shows, turns that into an asset name such as
// "cat_64_b_2_0", drops layers whose asset or atlas frame is missing, adds the
// optional shadow and hands the depth-sorted sprites to a Container.
//
// Animation advances at a fixed 24 frames per second derived from host ticks;
// recomposition only happens when the logical frame changes.
//
// The package knows nothing about the engine it draws with: it talks to a
// Loader, Cache, Textures, Host and Container. The room package wires those
// to roomkit.
package pet
