// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for rendering. This file defines:
//   - RenderOption (functional options over an internal renderOptions),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherRenderOptions helper (internal).
//
// Design goals:
//   - Deterministic output: no global state, no locale lookups.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultPrecision is the number of digits after the decimal point in Render.
const DefaultPrecision = 2

// Glyphs is the set of bracket glyphs Render wraps rows with.
// Top is used for the first row, Bottom for the last, Middle for the rest.
type Glyphs struct {
	TopLeft, TopRight       string
	MiddleLeft, MiddleRight string
	BottomLeft, BottomRight string
}

// UnicodeGlyphs draws a tall bracket from the Unicode "bracket pieces" block.
// It is the default.
var UnicodeGlyphs = Glyphs{
	TopLeft: "⎡", TopRight: "⎤",
	MiddleLeft: "⎢", MiddleRight: "⎥",
	BottomLeft: "⎣", BottomRight: "⎦",
}

// ASCIIGlyphs is a fallback for terminals without the bracket pieces.
var ASCIIGlyphs = Glyphs{
	TopLeft: "[", TopRight: "]",
	MiddleLeft: "|", MiddleRight: "|",
	BottomLeft: "[", BottomRight: "]",
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= 0"
	panicGlyphsInvalid    = "matrix: WithGlyphs: every glyph must be non-empty"
)

// ---------- Public option type (functional) ----------

// RenderOption mutates internal render options. Safe to apply repeatedly.
type RenderOption func(*renderOptions)

// renderOptions stores the effective configuration after applying RenderOption setters.
type renderOptions struct {
	precision int    // digits after the decimal point; DefaultPrecision
	glyphs    Glyphs // bracket set; UnicodeGlyphs
}

// WithPrecision sets the number of digits after the decimal point.
// Panics when p < 0.
func WithPrecision(p int) RenderOption {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *renderOptions) { o.precision = p }
}

// WithGlyphs replaces the bracket glyph set. Panics when any glyph is empty.
func WithGlyphs(g Glyphs) RenderOption {
	if g.TopLeft == "" || g.TopRight == "" ||
		g.MiddleLeft == "" || g.MiddleRight == "" ||
		g.BottomLeft == "" || g.BottomRight == "" {
		panic(panicGlyphsInvalid)
	}

	return func(o *renderOptions) { o.glyphs = g }
}

// defaultRenderOptions returns the documented defaults.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		precision: DefaultPrecision,
		glyphs:    UnicodeGlyphs,
	}
}

// gatherRenderOptions applies user setters over the defaults, left to right
// (later options win). nil setters are skipped.
func gatherRenderOptions(user ...RenderOption) renderOptions {
	o := defaultRenderOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
