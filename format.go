package paramgen

import (
	"fmt"
	"strings"
)

const (
	// DefaultWidth is the column at which comment text is wrapped, not counting the "// " prefix.
	DefaultWidth = 73
	// DefaultTagKey is the struct tag key of the generated fields.
	DefaultTagKey = "qs"

	requiredPrefix = "Required. "
	commentPrefix  = "// "
)

// Formatter derives the Go declaration of a single parameter.
type Formatter struct {
	Types  TypeMapping // Type token translation
	Width  int         // Comment wrap width, DefaultWidth when zero
	TagKey string      // Struct tag key, DefaultTagKey when empty
}

// NewFormatter returns a Formatter with the default type mapping, width and tag key.
func NewFormatter() *Formatter {
	return &Formatter{
		Types:  DefaultTypeMapping(),
		Width:  DefaultWidth,
		TagKey: DefaultTagKey,
	}
}

// DeclarationName returns the exported Go field name for the record.
func (f *Formatter) DeclarationName(rec ParameterRecord) string {
	if rec.GoName != "" {
		return rec.GoName
	}
	return titleCase(rec.Name)
}

// SerializationKey returns the name used in the struct tag.
func (f *Formatter) SerializationKey(rec ParameterRecord) string {
	return rec.Name
}

// MappedType returns the Go type for the record's documentation type.
func (f *Formatter) MappedType(rec ParameterRecord) string {
	return f.Types.Lookup(rec.Type)
}

// Comment returns the documentation comment block including its trailing
// newline, or an empty string for an optional parameter without description.
func (f *Formatter) Comment(rec ParameterRecord) string {
	text := rec.Description
	if rec.Values != "" {
		text = strings.TrimSpace(normalizeDescription(text) + " Values: " + rec.Values)
	}
	text = normalizeDescription(text)

	if rec.Required {
		text = strings.TrimSpace(requiredPrefix + text)
	}
	if text == "" {
		return ""
	}

	lines := wrapText(text, f.width())
	lines[0] = capitalizeFirst(lines[0])

	var comment strings.Builder
	for i, line := range lines {
		if i > 0 {
			comment.WriteString("\n")
		}
		comment.WriteString(commentPrefix)
		comment.WriteString(line)
	}
	comment.WriteString("\n")

	return comment.String()
}

// Tag returns the raw struct tag including the surrounding backquotes.
func (f *Formatter) Tag(rec ParameterRecord) string {
	return fmt.Sprintf("`%s:\"%s,omitempty\"`", f.tagKey(), f.SerializationKey(rec))
}

// Line returns the complete declaration of rec: the comment block, if any,
// followed by the field declaration.
func (f *Formatter) Line(rec ParameterRecord) string {
	return fmt.Sprintf("%s%s %s %s", f.Comment(rec), f.DeclarationName(rec), f.MappedType(rec), f.Tag(rec))
}

func (f *Formatter) width() int {
	if f.Width <= 0 {
		return DefaultWidth
	}
	return f.Width
}

func (f *Formatter) tagKey() string {
	if f.TagKey == "" {
		return DefaultTagKey
	}
	return f.TagKey
}
