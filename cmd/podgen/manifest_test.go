package main

import (
	"os"
	"path/filepath"
	"testing"

	"podgen/internal/token"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "podgen.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestFindPodgenTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := findPodgenToml(nested)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %s, want manifest in %s", path, root)
	}
}

func TestFindPodgenTomlMissing(t *testing.T) {
	_, ok, err := findPodgenToml(t.TempDir())
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if ok {
		t.Fatal("found a manifest where none exists")
	}
}

func TestBuildRegistryDefaultOnly(t *testing.T) {
	reg, err := buildRegistry(t.TempDir())
	if err != nil {
		t.Fatalf("buildRegistry: %v", err)
	}
	trait, ok := reg.Lookup("Pod")
	if !ok {
		t.Fatal("built-in Pod binding missing")
	}
	if got := token.Print(trait); got != "crate::pod::Pod" {
		t.Errorf("Pod trait = %q", got)
	}
}

func TestBuildRegistryFromManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[[derive]]
name = "Zeroable"
trait = "crate::pod::Zeroable"

[[derive]]
name = "Pod"
trait = "mycrate::Pod"
`)

	reg, err := buildRegistry(dir)
	if err != nil {
		t.Fatalf("buildRegistry: %v", err)
	}
	trait, ok := reg.Lookup("Zeroable")
	if !ok || token.Print(trait) != "crate::pod::Zeroable" {
		t.Errorf("Zeroable = %v, %v", trait, ok)
	}
	// The manifest overrides the built-in binding.
	trait, _ = reg.Lookup("Pod")
	if got := token.Print(trait); got != "mycrate::Pod" {
		t.Errorf("Pod override = %q", got)
	}
}

func TestLoadPodgenConfigRejectsIncompleteEntries(t *testing.T) {
	cases := []string{
		"[[derive]]\ntrait = \"a::B\"\n",
		"[[derive]]\nname = \"X\"\n",
	}
	for _, content := range cases {
		dir := t.TempDir()
		path := writeManifest(t, dir, content)
		if _, err := loadPodgenConfig(path); err == nil {
			t.Errorf("config %q accepted, want error", content)
		}
	}
}

func TestBuildRegistryBadTraitPath(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[[derive]]\nname = \"X\"\ntrait = \"foo(bar)\"\n")
	if _, err := buildRegistry(dir); err == nil {
		t.Fatal("invalid trait path accepted")
	}
}
