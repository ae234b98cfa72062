// Package yaml loads difference records from YAML files using yaml.v3.
package yaml

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	yamllib "gopkg.in/yaml.v3"

	"github.com/mstanek/kabigen"
)

// Compile-time interface verification.
var _ kabigen.Loader = (*Loader)(nil)

// Loader reads Difference records from a directory of YAML files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// record mirrors the on-disk YAML schema.
type record struct {
	Symbol      string            `yaml:"symbol"`
	DiffKind    string            `yaml:"diff-kind"`
	LocationOld locationRecord    `yaml:"location-old"`
	LocationNew locationRecord    `yaml:"location-new"`
	Diff        string            `yaml:"diff"`
	Affected    []affectionRecord `yaml:"affected-symbols"`
}

type locationRecord struct {
	File string `yaml:"file"`
	Line int    `yaml:"line"`
}

type symbolRecord struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

type callRecord struct {
	Symbol string `yaml:"symbol"`
	File   string `yaml:"file"`
	Line   int    `yaml:"line"`
}

type affectionRecord struct {
	Symbol       symbolRecord `yaml:"symbol"`
	CallstackOld []callRecord `yaml:"callstack-old"`
	CallstackNew []callRecord `yaml:"callstack-new"`
}

// Load parses every file in dir and returns the differences sorted by
// old-symbol name.
func (l *Loader) Load(dir string) ([]*kabigen.Difference, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var diffs []*kabigen.Difference
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		diff, err := parseRecord(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		diffs = append(diffs, diff)
	}

	sort.Slice(diffs, func(i, j int) bool {
		return diffs[i].SymbolOld.Name < diffs[j].SymbolOld.Name
	})

	return diffs, nil
}

func parseRecord(data []byte) (*kabigen.Difference, error) {
	var rec record
	if err := yamllib.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return convertRecord(rec)
}

// convertRecord translates the raw schema into domain types. The record
// stores a single symbol name and kind; the old and new versions differ
// only in location.
func convertRecord(rec record) (*kabigen.Difference, error) {
	kind, err := kabigen.ParseInternalKind(rec.DiffKind)
	if err != nil {
		return nil, err
	}

	d := &kabigen.Difference{
		SymbolOld: kabigen.InternalSymbol{
			Name:     rec.Symbol,
			Kind:     kind,
			Location: convertLocation(rec.LocationOld),
		},
		SymbolNew: kabigen.InternalSymbol{
			Name:     rec.Symbol,
			Kind:     kind,
			Location: convertLocation(rec.LocationNew),
		},
		Diff: rec.Diff,
	}

	for _, aff := range rec.Affected {
		extKind, err := kabigen.ParseExternalKind(aff.Symbol.Kind)
		if err != nil {
			return nil, err
		}
		d.Affected = append(d.Affected, kabigen.Affection{
			Symbol:       kabigen.ExternalSymbol{Name: aff.Symbol.Name, Kind: extKind},
			CallstackOld: convertCalls(aff.CallstackOld),
			CallstackNew: convertCalls(aff.CallstackNew),
		})
	}

	return d, nil
}

func convertLocation(loc locationRecord) kabigen.Location {
	return kabigen.Location{File: loc.File, Line: loc.Line}
}

func convertCalls(calls []callRecord) []kabigen.Call {
	out := make([]kabigen.Call, 0, len(calls))
	for _, c := range calls {
		out = append(out, kabigen.Call{
			Symbol:   c.Symbol,
			Location: kabigen.Location{File: c.File, Line: c.Line},
		})
	}
	return out
}
