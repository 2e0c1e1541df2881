package treeio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/wordletree/wordletree/tree"
	"github.com/wordletree/wordletree/word"
)

// Save writes t to path as the specification's vertex/successors JSON
// document. guesses resolves each vertex's guess index to its word;
// length is the fixed word length used to decode feedback codes into
// trit tuples for the successor keys.
func Save(path string, t *tree.Tree, guesses *word.Set, length int) error {
	doc := wireDoc{
		Root:       t.Root,
		Vertices:   make([]vertexEntry, len(t.Vertices)),
		Successors: make(map[string]int),
	}
	for _, v := range t.Vertices {
		doc.Vertices[v.ID] = vertexEntry{ID: v.ID, Guess: guesses.Word(v.Guess)}
		for code, childID := range v.Children {
			trits := word.Trits(code, length)
			doc.Successors[successorKey(v.ID, trits)] = childID
		}
	}
	return saveAtomic(path, doc)
}

// Load reads a tree previously written by Save. guesses must be the
// same guess set (by word identity) used when the tree was built.
func Load(path string, guesses *word.Set, length int) (*tree.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("treeio: read %s: %w", path, err)
	}

	var doc wireDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("treeio: parse %s: %w", path, err)
	}

	vertices := make([]tree.Vertex, len(doc.Vertices))
	for _, entry := range doc.Vertices {
		idx, ok := guesses.Index(entry.Guess)
		if !ok {
			return nil, fmt.Errorf("treeio: %s: unknown guess word %q", path, entry.Guess)
		}
		vertices[entry.ID] = tree.Vertex{ID: entry.ID, Guess: idx, Children: make(map[word.Code]int)}
	}

	for key, childID := range doc.Successors {
		parent, trits, err := parseSuccessorKey(key)
		if err != nil {
			return nil, fmt.Errorf("treeio: %s: %w", path, err)
		}
		if parent < 0 || parent >= len(vertices) {
			return nil, fmt.Errorf("treeio: %s: successor key %q references unknown parent", path, key)
		}
		code := codeFromTrits(trits)
		vertices[parent].Children[code] = childID
	}

	return &tree.Tree{Root: doc.Root, Vertices: vertices}, nil
}

// saveAtomic writes v as indented JSON to a temp file and renames it
// into place, so a crash mid-write never leaves a half-written tree.
func saveAtomic(path string, v any) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if runtime.GOOS == "windows" {
		_ = os.Remove(path)
	}
	return os.Rename(tmp, path)
}
