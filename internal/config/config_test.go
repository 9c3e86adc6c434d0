package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempConfigDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	original := configDir
	configDir = func() string { return dir }
	t.Cleanup(func() { configDir = original })
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	withTempConfigDir(t)

	original := Config{
		EmojiMode:      EmojiSprite,
		SpriteSheetURL: "https://cdn.example.com/emoji-sheet.png",
	}

	if err := Save(original); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.EmojiMode != original.EmojiMode {
		t.Errorf("EmojiMode = %q, want %q", loaded.EmojiMode, original.EmojiMode)
	}
	if loaded.SpriteSheetURL != original.SpriteSheetURL {
		t.Errorf("SpriteSheetURL = %q, want %q", loaded.SpriteSheetURL, original.SpriteSheetURL)
	}

	// Verify file was written with correct permissions.
	info, err := os.Stat(filepath.Join(configDir(), "config.json"))
	if err != nil {
		t.Fatalf("Stat config file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("file permissions = %o, want 600", perm)
	}
}

func TestLoad_Missing(t *testing.T) {
	withTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.EmojiMode != EmojiNative {
		t.Errorf("EmojiMode = %q, want %q", cfg.EmojiMode, EmojiNative)
	}
	if cfg.SpriteSheetURL != "" {
		t.Errorf("SpriteSheetURL = %q, want empty", cfg.SpriteSheetURL)
	}
}

func TestLoad_LegacyWithoutMode(t *testing.T) {
	withTempConfigDir(t)

	path := filepath.Join(configDir(), "config.json")
	if err := os.MkdirAll(configDir(), 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"spriteSheetUrl":"https://x.test/s.png"}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.EmojiMode != EmojiNative {
		t.Errorf("EmojiMode = %q, want %q (default)", cfg.EmojiMode, EmojiNative)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	withTempConfigDir(t)

	// Write invalid JSON to the config file.
	path := filepath.Join(configDir(), "config.json")
	if err := os.MkdirAll(configDir(), 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not valid json!!!"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Load()
	if err == nil {
		t.Fatal("Load() with corrupt JSON should return error")
	}
}
