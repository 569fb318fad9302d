// Package config reads the petviewer settings file.
//
// The file is INI with three sections:
//
//	[assets]
//	root = web-gallery/pets
//	size = 64
//
//	[render]
//	tps          = 60
//	shadow_alpha = 0.1
//	tint         = #FFFFFF
//	debug        = false
//
//	[log]
//	level = info
//
// Every key is optional. A missing file yields Default().
package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// Assets locates pet resources.
type Assets struct {
	Root string // directory holding one subdirectory per pet type
	Size int    // display size requested from visualization manifests
}

// Render holds drawing and timing settings.
type Render struct {
	TPS         int
	ShadowAlpha float64
	Tint        uint32 // 0xRRGGBB applied to body layers
	Debug       bool
}

// Log holds logger settings.
type Log struct {
	Level slog.Level
}

// Config is the full settings file.
type Config struct {
	Assets Assets
	Render Render
	Log    Log
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Assets: Assets{Root: "web-gallery/pets", Size: 64},
		Render: Render{TPS: 60, ShadowAlpha: 0.1, Tint: 0xFFFFFF},
		Log:    Log{Level: slog.LevelInfo},
	}
}

// Load reads the settings file at path. A missing file is not an error.
func Load(path string) (Config, error) {
	f, err := ini.LoadSources(ini.LoadOptions{Loose: true, Insensitive: true}, path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return decode(f)
}

// Parse reads settings from INI text.
func Parse(data []byte) (Config, error) {
	f, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, data)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	return decode(f)
}

func decode(f *ini.File) (Config, error) {
	cfg := Default()

	assets := f.Section("assets")
	cfg.Assets.Root = assets.Key("root").MustString(cfg.Assets.Root)
	cfg.Assets.Size = assets.Key("size").MustInt(cfg.Assets.Size)
	if cfg.Assets.Size <= 0 {
		return Config{}, fmt.Errorf("config: assets.size must be positive, got %d", cfg.Assets.Size)
	}

	render := f.Section("render")
	cfg.Render.TPS = render.Key("tps").MustInt(cfg.Render.TPS)
	if cfg.Render.TPS <= 0 {
		return Config{}, fmt.Errorf("config: render.tps must be positive, got %d", cfg.Render.TPS)
	}
	cfg.Render.ShadowAlpha = render.Key("shadow_alpha").MustFloat64(cfg.Render.ShadowAlpha)
	if cfg.Render.ShadowAlpha < 0 || cfg.Render.ShadowAlpha > 1 {
		return Config{}, fmt.Errorf("config: render.shadow_alpha must be in [0, 1], got %v", cfg.Render.ShadowAlpha)
	}
	cfg.Render.Debug = render.Key("debug").MustBool(cfg.Render.Debug)
	if render.HasKey("tint") {
		tint, err := parseHex(render.Key("tint").String())
		if err != nil {
			return Config{}, fmt.Errorf("config: render.tint: %w", err)
		}
		cfg.Render.Tint = tint
	}

	if key := f.Section("log").Key("level"); key.String() != "" {
		if err := cfg.Log.Level.UnmarshalText([]byte(key.String())); err != nil {
			return Config{}, fmt.Errorf("config: log.level: %w", err)
		}
	}
	return cfg, nil
}

// parseHex accepts "#RRGGBB", "0xRRGGBB" or "RRGGBB".
func parseHex(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	if v > 0xFFFFFF {
		return 0, fmt.Errorf("%q is not an RGB color", s)
	}
	return uint32(v), nil
}
