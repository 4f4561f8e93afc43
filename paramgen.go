// Package paramgen turns parameter tables copied from API documentation into
// Go struct fields with wrapped doc comments and query string tags.
//
// A table row such as
//
//	limit*, integer, maximum items to return
//
// becomes
//
//	// Required. Maximum items to return.
//	Limit int `qs:"limit,omitempty"`
//
// The output is meant to be reviewed and pasted into a client package.
package paramgen

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Generator runs the parse, format and emit pipeline for one input file at a time.
type Generator struct {
	formatter *Formatter         // Per-record formatting
	layout    Layout             // Header and footer around the fields
	marker    string             // Required marker on parameter names
	delimiter rune               // Forces the table format when non-zero
	goFormat  bool               // Run the block through gofmt
	logger    logrus.FieldLogger // Diagnostics, discarded by default
}

// Option defines a functional option for configuring the Generator.
type Option func(g *Generator)

// New creates a Generator with the default type mapping, a "type NAME struct"
// layout and the given options applied.
func New(opts ...Option) *Generator {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	g := &Generator{
		formatter: NewFormatter(),
		layout:    StructLayout(DefaultStructName),
		marker:    DefaultMarker,
		logger:    discard,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WithTypeMapping returns an Option that replaces the type mapping.
func WithTypeMapping(m TypeMapping) Option {
	return func(g *Generator) {
		g.formatter.Types = m
	}
}

// WithWidth returns an Option that sets the comment wrap width.
func WithWidth(width int) Option {
	return func(g *Generator) {
		g.formatter.Width = width
	}
}

// WithTagKey returns an Option that sets the struct tag key, "qs" by default.
func WithTagKey(key string) Option {
	return func(g *Generator) {
		g.formatter.TagKey = key
	}
}

// WithLayout returns an Option that sets the text around the field lines.
func WithLayout(layout Layout) Option {
	return func(g *Generator) {
		g.layout = layout
	}
}

// WithMarker returns an Option that sets the suffix flagging required parameters.
// An empty marker selects DefaultMarker.
func WithMarker(marker string) Option {
	return func(g *Generator) {
		g.marker = marker
	}
}

// WithDelimiter returns an Option that reads every input as a table separated by d.
func WithDelimiter(d rune) Option {
	return func(g *Generator) {
		g.delimiter = d
	}
}

// WithGoFormat returns an Option that aligns the emitted block with gofmt.
func WithGoFormat() Option {
	return func(g *Generator) {
		g.goFormat = true
	}
}

// WithLogger returns an Option that sets the logger for diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// Formatter returns the field formatter used by the generator.
func (g *Generator) Formatter() *Formatter {
	return g.formatter
}

// Records reads all parameter records from path. The input format is chosen
// from the file extension unless a delimiter was configured.
func (g *Generator) Records(path string) ([]ParameterRecord, error) {
	reader := ReaderFor(path, g.delimiter, g.marker)

	g.logger.WithFields(logrus.Fields{
		"path":   path,
		"reader": fmt.Sprintf("%T", reader),
	}).Debug("reading parameter records")

	records, err := ParseFile(path, reader)
	if err != nil {
		return nil, err
	}

	g.logger.WithFields(logrus.Fields{
		"path":    path,
		"records": len(records),
	}).Debug("parsed parameter records")

	return records, nil
}

// Lines formats every record, in order.
func (g *Generator) Lines(records []ParameterRecord) []string {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		if rec.Type == "" {
			g.logger.WithField("parameter", rec.Name).Warn("parameter has no type")
		}
		line := g.formatter.Line(rec)
		g.logger.WithField("parameter", rec.Name).Trace(line)
		lines = append(lines, line)
	}
	return lines
}

// Write formats records and writes the declaration block to w.
func (g *Generator) Write(w io.Writer, records []ParameterRecord) error {
	emitter := &Emitter{Out: w, Layout: g.layout}
	block := emitter.Block(g.Lines(records))

	if g.goFormat {
		formatted, err := FormatSource(block)
		if err != nil {
			g.logger.WithError(err).Warn("keeping unformatted output")
		} else {
			block = formatted
		}
	}

	return emitter.WriteBlock(block)
}

// Generate reads path and writes its declaration block to w. Nothing is
// written when the input cannot be read.
func (g *Generator) Generate(path string, w io.Writer) error {
	records, err := g.Records(path)
	if err != nil {
		return err
	}
	return g.Write(w, records)
}
