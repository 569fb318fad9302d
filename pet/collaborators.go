package pet

import "time"

// Loader queues resources and reports once when the whole batch is in the Cache.
// *roomkit.Loader satisfies it.
type Loader interface {
	SetPath(dir string)
	LoadAtlas(key, imagePath, jsonPath string)
	LoadJSON(key, path string)
	Start(done func(error))
}

// Cache reads previously loaded JSON resources.
type Cache interface {
	JSON(key string) ([]byte, bool)
}

// TextureQuery reports whether an atlas holds a frame. *roomkit.Atlas
// satisfies it.
type TextureQuery interface {
	HasFrame(name string) bool
}

// Textures hands out the atlas of a pet type once it is loaded.
type Textures interface {
	Texture(typ string) (TextureQuery, bool)
}

// Cancel deregisters a scheduled callback.
type Cancel interface {
	Remove()
}

// Host runs per-tick callbacks. An interval of zero means every tick.
// TPS reports how many ticks the host runs per second.
type Host interface {
	Schedule(callback func(), interval time.Duration, repeat bool) Cancel
	TPS() int
}

// Container is the drawable a pet composites into. Implementations add one
// drawable per sprite in call order; sprites already carry their depth.
type Container interface {
	AddSprite(s Sprite)
	RemoveAll()
	SetFlip(flip bool)
}
