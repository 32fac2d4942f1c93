package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.json":       `{"name": "Bravo", "description": "second"}`,
		"a.json":       `{"name": "Alpha"}`,
		"unnamed.json": `{"spheres": []}`,
		"broken.json":  `{"name": `,
		"notes.txt":    `not a scene`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles failed: %v", err)
	}

	expected := []string{"Alpha", "Bravo", "unnamed"}
	if len(scenes) != len(expected) {
		t.Fatalf("Expected %d scenes, got %+v", len(expected), scenes)
	}
	for i, name := range expected {
		if scenes[i].Name != name {
			t.Errorf("Scene %d: expected %q, got %q", i, name, scenes[i].Name)
		}
		if scenes[i].Type != "file" || scenes[i].FilePath == "" {
			t.Errorf("Scene %d: expected file metadata, got %+v", i, scenes[i])
		}
	}
	if scenes[1].Description != "second" {
		t.Errorf("Expected description to be read, got %q", scenes[1].Description)
	}
}

func TestListSceneFiles_MissingDirectory(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join(t.TempDir(), "nope"))
	if err != nil || len(scenes) != 0 {
		t.Errorf("Expected empty list for missing directory, got %v, %v", scenes, err)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mine.json"), []byte(`{"name": "mine"}`), 0644); err != nil {
		t.Fatal(err)
	}

	scenes, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes failed: %v", err)
	}

	builtin := len(Names())
	if len(scenes) != builtin+1 {
		t.Fatalf("Expected %d scenes, got %d", builtin+1, len(scenes))
	}
	for _, info := range scenes[:builtin] {
		if info.Type != "builtin" || info.Description == "" {
			t.Errorf("Unexpected built-in entry %+v", info)
		}
	}
	if scenes[builtin].Name != "mine" {
		t.Errorf("Expected scene files after built-ins, got %+v", scenes[builtin])
	}
}
