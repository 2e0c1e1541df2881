package treeio

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/wordletree/wordletree/word"
)

// vertexEntry is the [vertex_id, guess_word] pair the wire format
// uses; its index in the JSON array is the vertex id, so the id is
// also carried explicitly to make round-tripping order-independent.
type vertexEntry struct {
	ID    int
	Guess string
}

func (v vertexEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{v.ID, v.Guess})
}

func (v *vertexEntry) UnmarshalJSON(data []byte) error {
	var raw [2]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("treeio: vertex entry: %w", err)
	}
	if err := json.Unmarshal(raw[0], &v.ID); err != nil {
		return fmt.Errorf("treeio: vertex id: %w", err)
	}
	if err := json.Unmarshal(raw[1], &v.Guess); err != nil {
		return fmt.Errorf("treeio: vertex word: %w", err)
	}
	return nil
}

type wireDoc struct {
	Root       int            `json:"root"`
	Vertices   []vertexEntry  `json:"vertices"`
	Successors map[string]int `json:"successors"`
}

// successorKey builds the "(parent, [t0,...,tL-1])" key the
// specification's wire format uses for one parent/feedback-code edge.
func successorKey(parent int, trits []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%d, [", parent)
	for i, tr := range trits {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(int(tr)))
	}
	b.WriteString("])")
	return b.String()
}

// parseSuccessorKey reverses successorKey.
func parseSuccessorKey(key string) (parent int, trits []byte, err error) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(key, "("), ")")
	parts := strings.SplitN(trimmed, ", [", 2)
	if len(parts) != 2 || !strings.HasSuffix(parts[1], "]") {
		return 0, nil, fmt.Errorf("treeio: malformed successor key %q", key)
	}

	parent, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, nil, fmt.Errorf("treeio: malformed parent in key %q: %w", key, err)
	}

	list := strings.TrimSuffix(parts[1], "]")
	if list == "" {
		return parent, nil, nil
	}
	fields := strings.Split(list, ", ")
	trits = make([]byte, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 || v > 2 {
			return 0, nil, fmt.Errorf("treeio: malformed trit %q in key %q", f, key)
		}
		trits[i] = byte(v)
	}
	return parent, trits, nil
}

func codeFromTrits(trits []byte) word.Code {
	return word.FromTrits(trits)
}
