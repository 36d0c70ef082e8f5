package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProjectConfigReturnsEmptyConfigWhenFileMissing(t *testing.T) {
	cfg, err := LoadProjectConfig(filepath.Join(t.TempDir(), ".rbtypegraph.yml"))
	if err != nil {
		t.Fatalf("LoadProjectConfig(missing file) error = %v, want nil", err)
	}
	if len(cfg.Hooks) != 0 {
		t.Errorf("Hooks = %v, want empty", cfg.Hooks)
	}
}

func TestLoadProjectConfigParsesDeclaredHooks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ProjectConfigFileName)
	writeFile(t, path, "hooks:\n  - name: property\n    kind: accessor\n")

	cfg, err := LoadProjectConfig(path)
	if err != nil {
		t.Fatalf("LoadProjectConfig() error = %v", err)
	}
	if len(cfg.Hooks) != 1 || cfg.Hooks[0].Name != "property" || cfg.Hooks[0].Kind != "accessor" {
		t.Fatalf("Hooks = %+v, want one property/accessor hook", cfg.Hooks)
	}
}

func TestLoadProjectConfigRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ProjectConfigFileName)
	writeFile(t, path, "hooks: [not, valid: yaml")

	if _, err := LoadProjectConfig(path); err == nil {
		t.Error("LoadProjectConfig(malformed yaml) error = nil, want non-nil")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture file: %v", err)
	}
}
