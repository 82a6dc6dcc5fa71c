package reference

import (
	"encoding/json"
	"path"
	"strconv"
	"strings"

	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
)

// Kind names a folder of reference documents
type Kind string

const (
	KindSpecies Kind = "species"
	KindItem    Kind = "item"
	KindMove    Kind = "move"
	KindAbility Kind = "ability"
	KindNature  Kind = "nature"
)

// AllKinds returns every reference kind in index order
func AllKinds() []Kind {
	return []Kind{KindSpecies, KindItem, KindMove, KindAbility, KindNature}
}

// dataVersion is the folder generation the loader reads
const dataVersion = "v2.0"

var kindFolders = map[Kind]string{
	KindSpecies: dataVersion + "/Pokedex",
	KindItem:    dataVersion + "/Items",
	KindMove:    dataVersion + "/Moves",
	KindAbility: dataVersion + "/Abilities",
	KindNature:  dataVersion + "/Natures",
}

// Index maps document names to repository paths, per kind.
// Names are file names without the .json extension.
type Index struct {
	Species   map[string]string `json:"species"`
	Items     map[string]string `json:"items"`
	Moves     map[string]string `json:"moves"`
	Abilities map[string]string `json:"abilities"`
	Natures   map[string]string `json:"natures"`
}

// NewIndex returns an index with every map allocated
func NewIndex() *Index {
	return &Index{
		Species:   map[string]string{},
		Items:     map[string]string{},
		Moves:     map[string]string{},
		Abilities: map[string]string{},
		Natures:   map[string]string{},
	}
}

// Paths returns the name to path map for kind, or nil for an unknown kind
func (idx *Index) Paths(kind Kind) map[string]string {
	switch kind {
	case KindSpecies:
		return idx.Species
	case KindItem:
		return idx.Items
	case KindMove:
		return idx.Moves
	case KindAbility:
		return idx.Abilities
	case KindNature:
		return idx.Natures
	default:
		return nil
	}
}

// Lookup returns the path of a named document
func (idx *Index) Lookup(kind Kind, name string) (string, bool) {
	paths := idx.Paths(kind)
	if paths == nil {
		return "", false
	}
	p, ok := paths[name]
	return p, ok
}

// add files a tree entry under its kind; entries outside the known folders are ignored
func (idx *Index) add(entry treeEntry) {
	if entry.Type != "blob" || !strings.HasSuffix(entry.Path, ".json") {
		return
	}
	for _, kind := range AllKinds() {
		if strings.Contains(entry.Path, kindFolders[kind]) {
			name := strings.TrimSuffix(path.Base(entry.Path), ".json")
			idx.Paths(kind)[name] = entry.Path
			return
		}
	}
}

type treeEntry struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

type treeResponse struct {
	Tree      []treeEntry `json:"tree"`
	Truncated bool        `json:"truncated"`
}

// speciesDocument overlays the fields whose shape differs between data generations
type speciesDocument struct {
	pokerole.Species
	Number json.RawMessage `json:"Number"`
	BaseHP *int            `json:"BaseHP"`
	HP     *int            `json:"HP"`
}

func (d *speciesDocument) toSpecies() *pokerole.Species {
	s := d.Species
	switch {
	case d.BaseHP != nil:
		s.BaseHP = *d.BaseHP
	case d.HP != nil:
		s.BaseHP = *d.HP
	}
	s.Number = dexNumber(d.Number, s.DexID)
	if s.Image == "" {
		s.Image = s.Name + ".png"
	}
	return &s
}

// dexNumber reads a numeric or string Number, falling back to the DexID
func dexNumber(raw json.RawMessage, dexID string) int {
	if len(raw) > 0 {
		var n int
		if err := json.Unmarshal(raw, &n); err == nil {
			return n
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return leadingInt(s)
		}
	}
	return leadingInt(dexID)
}

// leadingInt parses the leading digits of s after an optional '#', returning 0 when there are none
func leadingInt(s string) int {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
