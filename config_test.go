package tokenlayer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    Config
		wantErr bool
	}{
		{"empty", "", DefaultConfig(), false},
		{
			"all keys",
			"default-crop-image: true\ndefault-algorithm: true\ndefault-color: \"#ff0000\"\n",
			Config{CropToFit: true, UseRayCastMask: true, MaskPreviewFill: "#ff0000"},
			false,
		},
		{"unknown keys ignored", "theme: dark\ndefault-crop-image: true\n", Config{CropToFit: true}, false},
		{"bad color", "default-color: nope\n", DefaultConfig(), true},
		{"bad yaml", "default-crop-image: [\n", DefaultConfig(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig([]byte(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseConfigBadColorWraps(t *testing.T) {
	_, err := ParseConfig([]byte("default-color: \"#12\"\n"))
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("error = %v, want ErrInvalidColor", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil || cfg != DefaultConfig() {
		t.Fatalf("LoadConfig(missing) = %+v, %v; want defaults", cfg, err)
	}

	want := Config{UseRayCastMask: true, MaskPreviewFill: "#00ff00"}
	data, err := want.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got != want {
		t.Errorf("LoadConfig = %+v, want %+v", got, want)
	}
}

func TestConfigPreviewFill(t *testing.T) {
	if _, ok := DefaultConfig().PreviewFill(); ok {
		t.Error("default config should have no preview fill")
	}
	c, ok := Config{MaskPreviewFill: " #0000ff "}.PreviewFill()
	if !ok || c != RGB(0, 0, 255) {
		t.Errorf("PreviewFill = %v, %v", c, ok)
	}
}
