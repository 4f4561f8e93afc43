package paramgen

import (
	"fmt"
	"go/format"
	"io"
	"strings"
)

// DefaultStructName is the placeholder type name used when none is given.
const DefaultStructName = "NAME"

// Layout is the text framing the declaration lines. Empty parts are not written.
type Layout struct {
	Header string
	Footer string
}

// StructLayout frames the fields as a struct type declaration.
func StructLayout(name string) Layout {
	if name == "" {
		name = DefaultStructName
	}
	return Layout{
		Header: fmt.Sprintf("type %s struct {", name),
		Footer: "}",
	}
}

// BareLayout emits only the field lines.
func BareLayout() Layout {
	return Layout{}
}

// Emitter writes declaration blocks.
type Emitter struct {
	Out    io.Writer
	Layout Layout
}

// Block assembles the header, lines and footer, one per output line.
func (e *Emitter) Block(lines []string) string {
	var block strings.Builder

	if e.Layout.Header != "" {
		block.WriteString(e.Layout.Header)
		block.WriteString("\n")
	}
	for _, line := range lines {
		block.WriteString(line)
		block.WriteString("\n")
	}
	if e.Layout.Footer != "" {
		block.WriteString(e.Layout.Footer)
		block.WriteString("\n")
	}

	return block.String()
}

// Emit writes the block for lines to Out with a single write.
func (e *Emitter) Emit(lines []string) error {
	return e.WriteBlock(e.Block(lines))
}

// WriteBlock writes an already assembled block, such as the output of
// FormatSource, to Out with a single write.
func (e *Emitter) WriteBlock(block string) error {
	if _, err := io.WriteString(e.Out, block); err != nil {
		return fmt.Errorf("failed to write declarations: %w", err)
	}
	return nil
}

// FormatSource runs a struct declaration block through gofmt. The block is
// parsed as a declaration list, so bare field lines cannot be formatted.
func FormatSource(block string) (string, error) {
	formatted, err := format.Source([]byte(block))
	if err != nil {
		return "", fmt.Errorf("failed to format declarations: %w", err)
	}
	return string(formatted), nil
}
