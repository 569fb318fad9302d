// Petviewer opens a window with one room and shows pets loaded from disk.
//
//	petviewer -config petviewer.ini -type cat -dir 2 -count 3
//
// Arrow keys turn the first pet, space cycles its animation and P switches to
// its next posture. Clicking walks it to the cursor.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/profile"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/roomkit"
	"github.com/phanxgames/roomkit/config"
	"github.com/phanxgames/roomkit/pet"
	"github.com/phanxgames/roomkit/room"
)

const (
	windowTitle = "roomkit: petviewer"
	screenW     = 640
	screenH     = 480
)

type viewer struct {
	scene *roomkit.Scene
	room  *room.Room
	pets  []ulid.ULID
	debug bool
	dir   pet.Direction
	anim  int
	pose  int
}

func (v *viewer) Update() error {
	if len(v.pets) > 0 {
		v.handleInput(v.pets[0])
	}
	v.room.Update()
	return nil
}

func (v *viewer) handleInput(id ulid.ULID) {
	p, ok := v.room.Pet(id)
	if !ok {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		_ = v.room.SetDirection(id, v.turn(1))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		_ = v.room.SetDirection(id, v.turn(-1))
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.anim = (v.anim + 1) % 16
		_ = v.room.SetAnimation(id, v.anim)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if m := p.Manifest(); m != nil && len(m.Visualization.Postures) > 0 {
			names := make([]string, 0, len(m.Visualization.Postures))
			for name := range m.Visualization.Postures {
				names = append(names, name)
			}
			slices.Sort(names)
			v.pose = (v.pose + 1) % len(names)
			_ = v.room.SetPosture(id, names[v.pose])
		}
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		x, y := ebiten.CursorPosition()
		_ = v.room.MoveTo(id, float64(x), float64(y), 0, 1)
	}
}

// turn steps the requested direction. The pet reports its mirrored
// direction, so stepping from that would never reach the left-facing ones.
func (v *viewer) turn(step int) pet.Direction {
	v.dir = pet.Direction((int(v.dir) + step + 8) % 8)
	return v.dir
}

func (v *viewer) Draw(screen *ebiten.Image) {
	v.scene.Draw(screen)
	if v.debug {
		v.scene.DrawOverlay(screen)
	}
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

func main() {
	var (
		configPath = flag.String("config", "petviewer.ini", "settings file")
		typ        = flag.String("type", "cat", "pet type to show")
		dir        = flag.Int("dir", int(pet.FrontRight), "initial direction, 0-7")
		count      = flag.Int("count", 1, "number of pets")
		prof       = flag.String("profile", "", "write a cpu or mem profile to the current directory")
	)
	flag.Parse()

	if err := run(*configPath, *typ, pet.Direction(*dir), *count, *prof); err != nil {
		fmt.Fprintln(os.Stderr, "petviewer:", err)
		os.Exit(1)
	}
}

func run(configPath, typ string, dir pet.Direction, count int, prof string) error {
	switch prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile %q", prof)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.Level}))

	scene := roomkit.NewScene(roomkit.WithLogger(logger), roomkit.WithTPS(cfg.Render.TPS))
	scene.SetDebugMode(cfg.Render.Debug)

	r := room.New(scene, scene.NewLoader(os.DirFS(cfg.Assets.Root)), room.Config{
		Size:        cfg.Assets.Size,
		Tint:        cfg.Render.Tint,
		ShadowAlpha: cfg.Render.ShadowAlpha,
	}, logger)
	defer r.Close()

	room.PetEntered.Subscribe(r.World(), func(_ donburi.World, e room.PetEvent) {
		logger.Info("pet entered", "id", e.ID.String(), "type", e.Type)
	})

	v := &viewer{scene: scene, room: r, debug: cfg.Render.Debug, dir: dir}
	for i := range count {
		id, err := r.AddPet(room.PetSpec{
			Type:      typ,
			Direction: dir,
			Position:  roomkit.Vec3{X: float64(screenW/(count+1)) * float64(i+1), Y: screenH / 2},
		})
		if err != nil {
			return err
		}
		v.pets = append(v.pets, id)
	}

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetTPS(cfg.Render.TPS)
	return ebiten.RunGame(v)
}
