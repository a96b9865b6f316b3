// Package lookup holds the read-only color tables the scanner resolves names
// and codes against: CSS names, Pantone codes and names, RAL and ANSI codes.
//
// Tables are built once during startup and never mutated afterwards, so a
// single *Tables value can be shared by every goroutine without locking.
package lookup

import (
	"fmt"
	"sort"
	"strings"
)

// Table is an immutable, case-insensitive mapping from a key to a lowercase
// #rrggbb string.
type Table struct {
	name    string
	entries map[string]string
}

// NewTable copies entries into a new table, lowercasing keys and values.
func NewTable(name string, entries map[string]string) *Table {
	t := &Table{name: name, entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		t.entries[strings.ToLower(k)] = strings.ToLower(v)
	}
	return t
}

// Name returns the table's name, used in logs and tool output.
func (t *Table) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Get looks up key case-insensitively.
func (t *Table) Get(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.entries[strings.ToLower(key)]
	return v, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Keys returns every key sorted longest first, ties broken alphabetically.
// This is the order named-color alternatives must be tried in so that
// "darkblue" wins over "blue".
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Tables bundles every lookup table the translator consults.
type Tables struct {
	Names        *Table
	PantoneCodes *Table
	PantoneNames *Table
	RAL          *Table
	ANSI         *Table
}

// Table returns the table registered under one of the public names
// "css", "pantone", "pantone_name", "ral" or "ansi".
func (ts *Tables) Table(name string) (*Table, error) {
	switch strings.ToLower(name) {
	case "css", "name", "webcolor":
		return ts.Names, nil
	case "pantone", "pantone_code":
		return ts.PantoneCodes, nil
	case "pantone_name":
		return ts.PantoneNames, nil
	case "ral", "ral_code":
		return ts.RAL, nil
	case "ansi", "ansi_code":
		return ts.ANSI, nil
	default:
		return nil, fmt.Errorf("unknown color table %q — use css, pantone, pantone_name, ral, or ansi", name)
	}
}

// Options configures Load.
type Options struct {
	// PantoneDir is a directory of Pantone book JSON files. Empty disables Pantone.
	PantoneDir string
	// PantoneBooks restricts loading to these file names within PantoneDir.
	// Empty loads every *.json file in the directory.
	PantoneBooks []string
}

// Defaults returns the built-in tables with empty Pantone tables.
func Defaults() *Tables {
	return &Tables{
		Names:        NewTable("css", cssNames()),
		PantoneCodes: NewTable("pantone", nil),
		PantoneNames: NewTable("pantone_name", nil),
		RAL:          NewTable("ral", ralCodes),
		ANSI:         NewTable("ansi", ansiCodes),
	}
}

// Load builds the built-in tables and, when configured, the Pantone tables
// from the books on disk.
func Load(opts Options) (*Tables, error) {
	ts := Defaults()
	if opts.PantoneDir == "" {
		return ts, nil
	}

	codes, names, err := LoadPantoneDir(opts.PantoneDir, opts.PantoneBooks)
	if err != nil {
		return nil, fmt.Errorf("loading Pantone books from %s: %w", opts.PantoneDir, err)
	}
	ts.PantoneCodes = NewTable("pantone", codes)
	ts.PantoneNames = NewTable("pantone_name", names)
	return ts, nil
}
