package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "petviewer.ini")
	data := "[assets]\nroot = /srv/pets\nsize = 32\n\n[render]\ntps = 30\ndebug = true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Assets.Root != "/srv/pets" || cfg.Assets.Size != 32 {
		t.Errorf("assets = %+v", cfg.Assets)
	}
	if cfg.Render.TPS != 30 || !cfg.Render.Debug {
		t.Errorf("render = %+v", cfg.Render)
	}
	if cfg.Render.ShadowAlpha != 0.1 || cfg.Render.Tint != 0xFFFFFF {
		t.Errorf("unset keys should keep defaults, got %+v", cfg.Render)
	}
}

func TestParse_TintAndLevel(t *testing.T) {
	cases := map[string]uint32{
		"#7CB6C1":  0x7CB6C1,
		"0x7cb6c1": 0x7CB6C1,
		"ff0000":   0xFF0000,
	}
	for in, want := range cases {
		cfg, err := Parse([]byte("[render]\ntint = " + in + "\n[log]\nlevel = debug\n"))
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if cfg.Render.Tint != want {
			t.Errorf("tint %q = %06x, want %06x", in, cfg.Render.Tint, want)
		}
		if cfg.Log.Level != slog.LevelDebug {
			t.Errorf("level = %v, want debug", cfg.Log.Level)
		}
	}
}

func TestParse_SectionNamesCaseInsensitive(t *testing.T) {
	cfg, err := Parse([]byte("[Render]\nShadow_Alpha = 0.25\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Render.ShadowAlpha != 0.25 {
		t.Errorf("ShadowAlpha = %v, want 0.25", cfg.Render.ShadowAlpha)
	}
}

func TestParse_Rejects(t *testing.T) {
	bad := []string{
		"[assets]\nsize = 0\n",
		"[render]\ntps = -1\n",
		"[render]\nshadow_alpha = 2\n",
		"[render]\ntint = nope\n",
		"[render]\ntint = 1FFFFFF\n",
		"[log]\nlevel = loud\n",
	}
	for _, data := range bad {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", data)
		}
	}
}
