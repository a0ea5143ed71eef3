package main

import (
	"go/build"
	"path/filepath"
	"strings"
	"testing"
)

const modulePath = "dragon-siege"

// TestTerminalHostStaysOffEbiten walks the module packages reachable from
// this command and fails if any of them pulls in ebiten.
func TestTerminalHostStaysOffEbiten(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	queue := []string{filepath.Join("cmd", "tui")}
	for len(queue) > 0 {
		rel := queue[0]
		queue = queue[1:]
		if seen[rel] {
			continue
		}
		seen[rel] = true

		pkg, err := build.ImportDir(filepath.Join(root, rel), 0)
		if err != nil {
			t.Fatalf("read %s: %v", rel, err)
		}
		for _, imp := range pkg.Imports {
			if strings.Contains(imp, "hajimehoshi/ebiten") {
				t.Errorf("%s imports %s", rel, imp)
			}
			if strings.HasPrefix(imp, modulePath+"/") {
				queue = append(queue, filepath.FromSlash(strings.TrimPrefix(imp, modulePath+"/")))
			}
		}
	}
}
