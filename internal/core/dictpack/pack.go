// Package dictpack loads substitution dictionaries from the embedded default pack
// or from JSON/YAML files and compiles them into leet.Dictionary values
package dictpack

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"leetgen/internal/core/leet"

	"gopkg.in/yaml.v3"
)

//go:embed default.json
var embedded []byte

// Version is the only pack format version understood today
const Version = 1

// Format is a pack encoding
type Format string

// Supported pack encodings
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// rawPack is the on-disk shape shared by JSON and YAML packs
type rawPack struct {
	Version     int                 `json:"version" yaml:"version"`
	Name        string              `json:"name" yaml:"name"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Entries     map[string][]string `json:"entries" yaml:"entries"`
}

// Pack is a compiled dictionary pack
type Pack struct {
	Version     int
	Name        string
	Description string
	Dict        leet.Dictionary
}

// Load returns the compiled embedded default pack
func Load() (*Pack, error) {
	return Parse(embedded, FormatJSON)
}

// Empty is a pack with no entries: every character expands only to itself
func Empty() *Pack {
	return &Pack{Version: Version, Name: "empty", Dict: leet.Dictionary{}}
}

// FromFile reads a pack from path, picking the format from the extension (.json, .yaml, .yml)
func FromFile(path string) (*Pack, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dictpack: read %s: %w", path, err)
	}
	p, err := Parse(data, f)
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// Parse decodes and compiles a pack in the given format
// Empty substitution sets are rejected here; the engine would silently drop words using them
func Parse(data []byte, f Format) (*Pack, error) {
	var rp rawPack
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, &rp); err != nil {
			return nil, fmt.Errorf("dictpack: parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &rp); err != nil {
			return nil, fmt.Errorf("dictpack: parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("dictpack: unsupported format %q", f)
	}
	if rp.Version != Version {
		return nil, fmt.Errorf("dictpack: unsupported pack version %d (want %d)", rp.Version, Version)
	}

	d, err := leet.FromStrings(rp.Entries)
	if err != nil {
		return nil, fmt.Errorf("dictpack: pack %q: %w", rp.Name, err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("dictpack: pack %q: %w", rp.Name, err)
	}

	return &Pack{
		Version:     rp.Version,
		Name:        strings.TrimSpace(rp.Name),
		Description: strings.TrimSpace(rp.Description),
		Dict:        d,
	}, nil
}

// Over layers p on top of base: p's entries win, base fills the rest
func (p *Pack) Over(base *Pack) *Pack {
	if base == nil {
		return p
	}
	return &Pack{
		Version:     p.Version,
		Name:        p.Name,
		Description: p.Description,
		Dict:        base.Dict.Merge(p.Dict),
	}
}

// Resolve loads the pack a caller asked for. Without a path that is the default pack,
// or Empty when bare is set. With one it is the file layered over the default,
// or the file alone when bare is set
func Resolve(path string, bare bool) (*Pack, error) {
	switch {
	case path == "" && bare:
		return Empty(), nil
	case path == "":
		return Load()
	}
	p, err := FromFile(path)
	if err != nil {
		return nil, err
	}
	if bare {
		return p, nil
	}
	def, err := Load()
	if err != nil {
		return nil, err
	}
	return p.Over(def), nil
}

// Keys returns the pack's characters in code point order as strings
func (p *Pack) Keys() []string {
	ks := p.Dict.Keys()
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = string(k)
	}
	return out
}

// Encode renders p back into the given format
func (p *Pack) Encode(f Format) ([]byte, error) {
	rp := rawPack{
		Version:     p.Version,
		Name:        p.Name,
		Description: p.Description,
		Entries:     p.Dict.Strings(),
	}
	switch f {
	case FormatJSON:
		return json.MarshalIndent(rp, "", "  ")
	case FormatYAML:
		return yaml.Marshal(rp)
	default:
		return nil, fmt.Errorf("dictpack: unsupported format %q", f)
	}
}

func formatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("dictpack: unsupported pack file extension %q", filepath.Ext(path))
	}
}
