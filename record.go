package paramgen

import "strings"

// DefaultMarker is the suffix the API documentation uses to flag a parameter as required.
const DefaultMarker = "*"

// ParameterRecord represents one row of a parameter table.
type ParameterRecord struct {
	Name        string // Wire name of the parameter, required marker removed
	Required    bool   // Whether the documentation marked the parameter as required
	Type        string // Type token as written in the documentation (e.g. "integer")
	Description string // Free text description, may be empty
	GoName      string // Explicit Go field name ("Go Parameter" column), may be empty
	Values      string // Allowed values ("Values" column), may be empty
}

// ParseName strips exactly one trailing marker from raw and reports whether it was present.
// An empty marker disables the detection.
func ParseName(raw, marker string) (name string, required bool) {
	raw = strings.TrimSpace(raw)
	if marker == "" || !strings.HasSuffix(raw, marker) {
		return raw, false
	}
	return strings.TrimSpace(strings.TrimSuffix(raw, marker)), true
}
