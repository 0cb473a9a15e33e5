package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/skyshooter/pkg/embedded"
	"github.com/decker502/skyshooter/pkg/game"
)

// TestLoadGameConfig 测试嵌入配置与文件配置
func TestLoadGameConfig(t *testing.T) {
	embedded.Init(os.DirFS(filepath.Join("..", "..")))

	cfg, err := LoadGameConfig("")
	if err != nil {
		t.Fatalf("LoadGameConfig(\"\") error = %v", err)
	}
	if cfg.Playfield.Width != 800 {
		t.Errorf("Playfield.Width = %v, expected 800", cfg.Playfield.Width)
	}

	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("waves:\n  maxWavesPerLevel: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig(%q) error = %v", path, err)
	}
	if cfg.Waves.MaxWavesPerLevel != 5 {
		t.Errorf("MaxWavesPerLevel = %d, expected 5", cfg.Waves.MaxWavesPerLevel)
	}

	if _, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

// TestResetSave 测试清空存档
func TestResetSave(t *testing.T) {
	slot := game.NewMemorySlot()
	if err := slot.Save("level", "4"); err != nil {
		t.Fatal(err)
	}

	ResetSave(slot)

	if slot.Len() != 0 {
		t.Errorf("slot.Len() = %d, expected 0", slot.Len())
	}
}
