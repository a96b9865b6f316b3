// Package scan finds color literals in text and translates them to canonical
// #rrggbb colors with an optional alpha channel.
//
// An Engine bundles a Matcher, compiled once from the lookup tables, with the
// per-caller options (allowed notations, hex alpha order, alpha precision and
// cursor window radius). Engines are immutable and safe for concurrent use;
// WithOptions derives a new one that shares the compiled grammar.
package scan

import (
	"iter"
	"log/slog"

	"github.com/evert/color-hints-mcp-go/internal/lookup"
)

// DefaultWindowRadius is how far around a cursor ColorAt looks, in bytes.
const DefaultWindowRadius = 50

// Options configures an Engine. Zero fields take their defaults.
type Options struct {
	Allowed      KindSet // zero means AllKinds
	Order        Order
	Precision    int
	WindowRadius int
}

// DefaultOptions returns the options every field of which is at its default.
func DefaultOptions() Options {
	return Options{
		Allowed:      AllKinds,
		Order:        OrderRGBA,
		Precision:    DefaultPrecision,
		WindowRadius: DefaultWindowRadius,
	}
}

func (o Options) withDefaults() Options {
	if o.Allowed&AllKinds == 0 {
		o.Allowed = AllKinds
	}
	o.Allowed &= AllKinds
	if o.Precision <= 0 {
		o.Precision = DefaultPrecision
	}
	if o.WindowRadius <= 0 {
		o.WindowRadius = DefaultWindowRadius
	}
	return o
}

// Hit is a match together with its translation. Color is the zero value when
// the match could not be resolved.
type Hit struct {
	Match Match
	Color Color
}

// Engine scans text for colors.
type Engine struct {
	matcher    *Matcher
	tables     *lookup.Tables
	opts       Options
	allowed    KindSet
	translator Translator
}

// NewEngine compiles the grammar for tables and returns an engine using opts.
// A nil tables uses lookup.Defaults.
func NewEngine(tables *lookup.Tables, opts Options) (*Engine, error) {
	if tables == nil {
		tables = lookup.Defaults()
	}
	m, err := NewMatcher(tables.Names.Keys())
	if err != nil {
		return nil, err
	}
	return newEngine(m, tables, opts), nil
}

func newEngine(m *Matcher, tables *lookup.Tables, opts Options) *Engine {
	opts = opts.withDefaults()

	allowed := opts.Allowed
	// Without Pantone data every Pantone-shaped match would be unresolvable
	// and would shadow names such as "purple" in "purple is".
	if allowed.Has(KindPantone) && tables.PantoneCodes.Len() == 0 && tables.PantoneNames.Len() == 0 {
		allowed &^= NewKindSet(KindPantone)
		slog.Debug("pantone notation disabled, no Pantone books loaded")
	}

	return &Engine{
		matcher: m,
		tables:  tables,
		opts:    opts,
		allowed: allowed,
		translator: Translator{
			Tables:    tables,
			Order:     opts.Order,
			Precision: opts.Precision,
		},
	}
}

// WithOptions returns an engine sharing e's grammar and tables but using opts.
func (e *Engine) WithOptions(opts Options) *Engine {
	return newEngine(e.matcher, e.tables, opts)
}

// Options returns the engine's effective options.
func (e *Engine) Options() Options { return e.opts }

// Allowed returns the notations the engine actually scans for. It can be
// narrower than Options().Allowed when a table backing a notation is empty.
func (e *Engine) Allowed() KindSet { return e.allowed }

// Tables returns the lookup tables the engine resolves names against.
func (e *Engine) Tables() *lookup.Tables { return e.tables }

// All yields every match in text, in order.
func (e *Engine) All(text string) iter.Seq[Match] {
	return e.matcher.All(text, e.allowed)
}

// Translate resolves a match using the engine's options.
func (e *Engine) Translate(m Match) Color {
	return e.translator.Translate(m)
}

// Scan returns every match in text with its translation.
func (e *Engine) Scan(text string) []Hit {
	var hits []Hit
	for m := range e.All(text) {
		hits = append(hits, Hit{Match: m, Color: e.Translate(m)})
	}
	return hits
}
