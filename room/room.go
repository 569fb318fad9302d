// Package room places pets in a roomkit scene.
//
// A Room keeps its pets as entities in a donburi world, one petData component
// per pet, and bridges each pet to the scene: the pet composites into a
// container node, ticks through a scene timer and reads its atlas from the
// scene cache. PetEntered and PetLeft fire from Update.
package room

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oklog/ulid/v2"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/roomkit"
	"github.com/phanxgames/roomkit/pet"
)

var (
	// ErrUnknownPet is returned for ids that are not in the room.
	ErrUnknownPet = errors.New("room: unknown pet")
	// ErrInvalidSpec is returned by AddPet for a spec it cannot place.
	ErrInvalidSpec = errors.New("room: invalid pet spec")
)

// Config holds the settings every pet in a room shares. Tint and ShadowAlpha
// are used as given, so black and a fully transparent shadow are valid.
type Config struct {
	Root        string  // directory holding one subdirectory per pet type
	Size        int     // default display size
	Tint        uint32  // body tint, 0xRRGGBB
	ShadowAlpha float64 // shadow opacity
}

// PetSpec describes a pet to add.
type PetSpec struct {
	Type      string
	Size      int // 0 uses Config.Size
	Direction pet.Direction
	Animation int
	Position  roomkit.Vec3
}

// PetEvent is published when a pet enters or leaves the room.
type PetEvent struct {
	ID   ulid.ULID
	Type string
}

var (
	PetEntered = events.NewEventType[PetEvent]()
	PetLeft    = events.NewEventType[PetEvent]()
)

type petData struct {
	ID   ulid.ULID
	Pet  *pet.Pet
	Node *roomkit.Node
	Pos  roomkit.Vec3
	move *roomkit.TweenGroup
}

var (
	petComponent = donburi.NewComponentType[petData]()
	petQuery     = donburi.NewQuery(filter.Contains(petComponent))
)

// Room owns a set of pets drawn in one scene.
type Room struct {
	scene    *roomkit.Scene
	loader   pet.Loader
	resolver *pet.Resolver
	cfg      Config
	logger   *slog.Logger

	world    donburi.World
	layer    *roomkit.Node
	entities map[ulid.ULID]donburi.Entity
}

// New creates a room drawing into scene and loading pets through loader.
// A nil logger discards output.
func New(scene *roomkit.Scene, loader pet.Loader, cfg Config, logger *slog.Logger) *Room {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Size == 0 {
		cfg.Size = pet.DefaultSize
	}
	layer := roomkit.NewContainer("room")
	layer.SetDepth(roomkit.DepthFigure)
	scene.Root().AddChild(layer)

	return &Room{
		scene:    scene,
		loader:   loader,
		resolver: pet.NewResolver(scene.Cache()),
		cfg:      cfg,
		logger:   logger.With("component", "room"),
		world:    donburi.NewWorld(),
		layer:    layer,
		entities: make(map[ulid.ULID]donburi.Entity),
	}
}

// World exposes the room's ECS world so callers can subscribe to events.
func (r *Room) World() donburi.World {
	return r.world
}

// AddPet creates a pet, places it and starts loading its resources. The pet
// draws nothing until its resources arrive on a later Update.
func (r *Room) AddPet(spec PetSpec) (ulid.ULID, error) {
	if spec.Type == "" {
		return ulid.ULID{}, fmt.Errorf("%w: empty type", ErrInvalidSpec)
	}
	if !spec.Direction.Valid() {
		return ulid.ULID{}, fmt.Errorf("%w: direction %d", ErrInvalidSpec, spec.Direction)
	}
	size := spec.Size
	if size == 0 {
		size = r.cfg.Size
	}

	id := ulid.Make()
	node := roomkit.NewContainer("pet:" + spec.Type)
	r.layer.AddChild(node)
	place(node, spec.Position)

	p := pet.New(pet.Options{
		Type:        spec.Type,
		Size:        size,
		Direction:   spec.Direction,
		Animation:   spec.Animation,
		Tint:        &r.cfg.Tint,
		ShadowAlpha: &r.cfg.ShadowAlpha,
		Logger:      r.logger.With("id", id.String()),
	})

	e := r.world.Create(petComponent)
	petComponent.SetValue(r.world.Entry(e), petData{ID: id, Pet: p, Node: node, Pos: spec.Position})
	r.entities[id] = e

	p.Load(pet.Deps{
		Loader:    r.loader,
		Resolver:  r.resolver,
		Textures:  cacheTextures{r.scene.Cache()},
		Host:      sceneHost{r.scene},
		Container: &nodeContainer{node: node, cache: r.scene.Cache(), typ: spec.Type},
		Root:      r.cfg.Root,
	})

	PetEntered.Publish(r.world, PetEvent{ID: id, Type: spec.Type})
	r.logger.Debug("pet added", "id", id.String(), "type", spec.Type, "size", size)
	return id, nil
}

// RemovePet destroys a pet and removes its node from the scene.
func (r *Room) RemovePet(id ulid.ULID) error {
	entry, err := r.entry(id)
	if err != nil {
		return err
	}
	data := petComponent.Get(entry)
	if data.move != nil {
		data.move.Stop()
	}
	data.Pet.Destroy()
	data.Node.Dispose()
	typ := data.Pet.Type()

	r.world.Remove(entry.Entity())
	delete(r.entities, id)
	PetLeft.Publish(r.world, PetEvent{ID: id, Type: typ})
	r.logger.Debug("pet removed", "id", id.String())
	return nil
}

// SetDirection turns a pet.
func (r *Room) SetDirection(id ulid.ULID, d pet.Direction) error {
	p, err := r.pet(id)
	if err != nil {
		return err
	}
	p.SetDirection(d)
	return nil
}

// SetAnimation switches a pet's animation.
func (r *Room) SetAnimation(id ulid.ULID, animation int) error {
	p, err := r.pet(id)
	if err != nil {
		return err
	}
	p.SetAnimation(animation)
	return nil
}

// SetPosture switches a pet to a named posture. Unknown postures and pets
// that have not finished loading are left unchanged and reported as errors.
func (r *Room) SetPosture(id ulid.ULID, posture string) error {
	p, err := r.pet(id)
	if err != nil {
		return err
	}
	if !p.SetPosture(posture) {
		return fmt.Errorf("room: pet %s has no posture %q", id, posture)
	}
	return nil
}

// MoveTo walks a pet to a room position over the given number of seconds.
// A non-positive duration moves it at once. A move in progress is replaced.
func (r *Room) MoveTo(id ulid.ULID, x, y, z, seconds float64) error {
	entry, err := r.entry(id)
	if err != nil {
		return err
	}
	data := petComponent.Get(entry)
	if data.move != nil {
		data.move.Stop()
		data.move = nil
	}
	data.Pos = roomkit.Vec3{X: x, Y: y, Z: z}
	data.Node.SetDepth(y)
	if seconds <= 0 {
		place(data.Node, data.Pos)
		return nil
	}

	to := data.Pos.Screen()
	g := roomkit.TweenPosition(data.Node, to.X, to.Y, float32(seconds), ease.Linear)
	g.OnDone = func() {
		if e, ok := r.entities[id]; ok {
			if d := petComponent.Get(r.world.Entry(e)); d.move == g {
				d.move = nil
			}
		}
	}
	data.move = r.scene.AddTween(g)
	return nil
}

// Pet returns the pet with the given id.
func (r *Room) Pet(id ulid.ULID) (*pet.Pet, bool) {
	p, err := r.pet(id)
	return p, err == nil
}

// Position returns the room position a pet stands at or is moving to.
func (r *Room) Position(id ulid.ULID) (roomkit.Vec3, bool) {
	entry, err := r.entry(id)
	if err != nil {
		return roomkit.Vec3{}, false
	}
	return petComponent.Get(entry).Pos, true
}

// Moving reports whether a pet is walking.
func (r *Room) Moving(id ulid.ULID) bool {
	entry, err := r.entry(id)
	if err != nil {
		return false
	}
	return petComponent.Get(entry).move != nil
}

// IDs returns the ids of every pet in the room.
func (r *Room) IDs() []ulid.ULID {
	ids := make([]ulid.ULID, 0, len(r.entities))
	petQuery.Each(r.world, func(entry *donburi.Entry) {
		ids = append(ids, petComponent.Get(entry).ID)
	})
	return ids
}

// Len returns the number of pets in the room.
func (r *Room) Len() int {
	return petQuery.Count(r.world)
}

// Update advances the scene by one tick and then delivers queued room events.
func (r *Room) Update() {
	r.scene.Update()
	PetEntered.ProcessEvents(r.world)
	PetLeft.ProcessEvents(r.world)
}

// Close removes every pet and detaches the room from the scene.
func (r *Room) Close() {
	for _, id := range r.IDs() {
		_ = r.RemovePet(id)
	}
	r.layer.Dispose()
}

func (r *Room) entry(id ulid.ULID) (*donburi.Entry, error) {
	e, ok := r.entities[id]
	if !ok || !r.world.Valid(e) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPet, id)
	}
	return r.world.Entry(e), nil
}

func (r *Room) pet(id ulid.ULID) (*pet.Pet, error) {
	entry, err := r.entry(id)
	if err != nil {
		return nil, err
	}
	return petComponent.Get(entry).Pet, nil
}

// place puts a pet node at the screen projection of pos. Pets lower on the
// floor draw in front.
func place(n *roomkit.Node, pos roomkit.Vec3) {
	s := pos.Screen()
	n.SetPosition(s.X, s.Y)
	n.SetDepth(pos.Y)
}
