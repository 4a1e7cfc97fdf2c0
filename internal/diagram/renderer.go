package diagram

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Outcome distinguishes a drawn diagram from a text fallback.
type Outcome int

const (
	// Ok means Diagram holds the graphical rendering.
	Ok Outcome = iota
	// Degraded means only the text fields are populated.
	Degraded
)

// String returns "ok" or "degraded".
func (o Outcome) String() string {
	if o == Ok {
		return "ok"
	}
	return "degraded"
}

// Result is the outcome of one render call.
type Result struct {
	Outcome Outcome
	// Diagram is the drawn tree when Outcome is Ok.
	Diagram string
	// Reason explains a Degraded outcome, for logs.
	Reason string
	// Notice is the user-facing warning shown with a Degraded outcome.
	Notice string
	// Summary is the one-line explanation shown with a Degraded outcome.
	Summary string
	// Flow is the numbered text flow, set by the text renderer.
	Flow string
}

// Fallback texts.
const (
	RenderFailedNotice = "The chart module could not render the diagram."
	RenderFailedFlow   = "Flow: Ownership -> Yes (Scope 1) / No (Scope 3) -> Vehicle -> Fuel."

	UnavailableNotice  = "Graphical diagram renderer not available."
	UnavailableSummary = "The system works correctly, but the logic tree view has been simplified to text."
	TextFlow           = "Logic flow:\n" +
		"1. Owned by Massy? -> YES (S1) / NO (S3)\n" +
		"2. Vehicle type? -> Factor configuration\n" +
		"3. Fuel? -> Diesel/Gasoline"
)

// Renderer draws a decision tree.
type Renderer interface {
	Render(g Graph) Result
	Capability() Capability
}

// NewRenderer picks the renderer for capability c.
func NewRenderer(c Capability, logger zerolog.Logger) Renderer {
	if c == GraphAvailable {
		return NewGraphical(logger)
	}
	return Textual{}
}

// Graphical draws the tree with lipgloss. Any failure degrades that call to
// the one-line flow summary.
type Graphical struct {
	logger zerolog.Logger
	draw   func(Graph) (string, error)
}

// NewGraphical returns a graphical renderer that logs degradations to logger.
func NewGraphical(logger zerolog.Logger) *Graphical {
	return &Graphical{logger: logger, draw: drawTree}
}

// Capability reports GraphAvailable.
func (*Graphical) Capability() Capability { return GraphAvailable }

// Render draws g, or returns a Degraded result if drawing fails or panics.
func (r *Graphical) Render(g Graph) Result {
	out, err := r.safeDraw(g)
	if err != nil {
		r.logger.Warn().Err(err).Msg("diagram render failed, showing text flow")
		return Result{
			Outcome: Degraded,
			Reason:  err.Error(),
			Notice:  RenderFailedNotice,
			Summary: RenderFailedFlow,
		}
	}
	return Result{Outcome: Ok, Diagram: out}
}

func (r *Graphical) safeDraw(g Graph) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("diagram renderer panicked: %v", rec)
		}
	}()
	return r.draw(g)
}

// Textual always returns the simplified text flow.
type Textual struct{}

// Capability reports GraphUnavailable.
func (Textual) Capability() Capability { return GraphUnavailable }

// Render returns the text flow; g is not inspected.
func (Textual) Render(Graph) Result {
	return Result{
		Outcome: Degraded,
		Reason:  "graphical renderer unavailable",
		Notice:  UnavailableNotice,
		Summary: UnavailableSummary,
		Flow:    TextFlow,
	}
}
