// Package mtef translates MathType Equation binary streams (MTEF
// versions 3 and 5), embedded inside an OLE "Equation Native" stream,
// into LaTeX source.
package mtef

import (
	"log/slog"

	internalmtef "github.com/chl19940220/mtef-latex/internal/mtef"
)

// CharTable is the read-only character mapping the renderer consults to
// turn an MTEF glyph code into a LaTeX token. Callers own and supply it;
// this package ships no character data of its own.
type CharTable = internalmtef.CharTable

// MapCharTable is a convenience CharTable backed by two plain maps.
type MapCharTable = internalmtef.MapCharTable

// Translator holds the configuration for translating MTEF streams to
// LaTeX: the injected character table and an optional logger. Translator
// values are immutable; With* methods return a modified copy, the same
// builder shape wazero's RuntimeConfig uses.
type Translator struct {
	table  CharTable
	logger *slog.Logger
}

// NewTranslator returns a Translator configured with the given character
// table and the default slog logger.
func NewTranslator(table CharTable) *Translator {
	return &Translator{table: table, logger: slog.Default()}
}

// clone ensures all fields are copied even if nil.
func (t *Translator) clone() *Translator {
	return &Translator{table: t.table, logger: t.logger}
}

// WithLogger returns a copy of t that logs render warnings (unknown
// template selectors and embellishments, unemitted arrow variations) to
// logger instead of slog.Default(). A nil logger resets to slog.Default().
func (t *Translator) WithLogger(logger *slog.Logger) *Translator {
	ret := t.clone()
	if logger == nil {
		logger = slog.Default()
	}
	ret.logger = logger
	return ret
}

// Translate decodes an MTEF body (not an OLE-wrapped stream — see Open)
// and renders it to LaTeX. It never returns an error: a malformed stream
// yields the empty string, matching the core pipeline's policy that
// decode failures never propagate past this boundary.
func (t *Translator) Translate(body []byte) string {
	d := internalmtef.Decode(body, t.logger)
	return d.Render(t.table)
}

// Open splits the 28-byte OLE prefix off stream, then translates the MTEF
// body it wraps. Use Translate directly if the caller has already
// stripped the OLE prefix.
func (t *Translator) Open(stream []byte) (string, error) {
	body, err := SplitOLEStream(stream)
	if err != nil {
		return "", err
	}
	return t.Translate(body), nil
}
