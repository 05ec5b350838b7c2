package config

import (
	"testing"

	tu "itemctl/internal/testutil"
)

func TestEndpoint_Defaults(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()
	defer tu.WithEnv(t, EnvBase, "")()
	defer tu.WithEnv(t, EnvPath, "")()

	if got := Endpoint(); got != "http://127.0.0.1:8787/items" {
		t.Fatalf("default endpoint = %q", got)
	}
}

func TestEndpoint_EnvComposition(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, EnvBase, "https://api.example.com/")()
	defer tu.WithEnv(t, EnvPath, "v1/items/")()

	if got := Endpoint(); got != "https://api.example.com/v1/items" {
		t.Fatalf("endpoint = %q", got)
	}
}

func TestSettingsFile_Precedence(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()
	defer tu.WithEnv(t, EnvBase, "")()
	defer tu.WithEnv(t, EnvPath, "")()

	if err := SaveSettings(Settings{BaseURL: "http://localhost:9000", APIPath: "/things"}); err != nil {
		t.Fatalf("SaveSettings error: %v", err)
	}
	if got := Endpoint(); got != "http://localhost:9000/things" {
		t.Fatalf("file-backed endpoint = %q", got)
	}

	// env still wins over the file
	defer tu.WithEnv(t, EnvBase, "http://envhost:1")()
	if got := BaseURL(); got != "http://envhost:1" {
		t.Fatalf("env should take precedence, got %q", got)
	}
}

func TestLoadSettings_Missing(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if s != (Settings{}) {
		t.Fatalf("expected zero settings, got %+v", s)
	}
}
