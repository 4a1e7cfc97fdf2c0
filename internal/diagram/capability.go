package diagram

import "strings"

// Capability says whether graphical diagrams can be drawn. It is resolved
// once at startup and never re-probed.
type Capability int

const (
	// GraphUnavailable means only the text summary can be shown.
	GraphUnavailable Capability = iota
	// GraphAvailable means the styled tree renderer can be used.
	GraphAvailable
)

// String returns a short name for logs.
func (c Capability) String() string {
	if c == GraphAvailable {
		return "graphical"
	}
	return "text"
}

// DetectCapability resolves the capability from the configured mode
// ("auto", "graphical" or "text") and whether the output can show colour and
// box-drawing glyphs. "graphical" forces the graphical renderer; unknown
// modes behave like "auto".
func DetectCapability(mode string, styledOutput bool) Capability {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "text":
		return GraphUnavailable
	case "graphical":
		return GraphAvailable
	default:
		if styledOutput {
			return GraphAvailable
		}
		return GraphUnavailable
	}
}
