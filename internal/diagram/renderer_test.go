package diagram

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	assert.IsType(t, &Graphical{}, NewRenderer(GraphAvailable, zerolog.Nop()))
	assert.IsType(t, Textual{}, NewRenderer(GraphUnavailable, zerolog.Nop()))
	assert.Equal(t, GraphAvailable, NewRenderer(GraphAvailable, zerolog.Nop()).Capability())
	assert.Equal(t, GraphUnavailable, NewRenderer(GraphUnavailable, zerolog.Nop()).Capability())
}

func TestGraphical_RenderOk(t *testing.T) {
	r := NewGraphical(zerolog.Nop())

	res := r.Render(DecisionTree())

	require.Equal(t, Ok, res.Outcome)
	assert.Empty(t, res.Notice)
	for _, label := range []string{
		"Owned by Massy Energy?",
		"YES: Scope 1 (Direct)",
		"NO: Scope 3 (Indirect)",
		"What type of vehicle is it?",
		"Who pays for the fuel?",
		"Selection: Diesel/Gasoline",
		"Selection: Client/Supplier",
	} {
		assert.Contains(t, res.Diagram, label)
	}
}

func TestGraphical_DegradesOnInvalidGraph(t *testing.T) {
	var buf bytes.Buffer
	r := NewGraphical(zerolog.New(&buf))

	res := r.Render(Graph{Nodes: []Node{{ID: "A"}}, Edges: []Edge{{From: "A", To: "X"}}})

	assert.Equal(t, Degraded, res.Outcome)
	assert.Empty(t, res.Diagram)
	assert.Equal(t, RenderFailedNotice, res.Notice)
	assert.Equal(t, RenderFailedFlow, res.Summary)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestGraphical_DegradesOnDrawError(t *testing.T) {
	r := NewGraphical(zerolog.Nop())
	r.draw = func(Graph) (string, error) { return "", errors.New("boom") }

	res := r.Render(DecisionTree())

	assert.Equal(t, Degraded, res.Outcome)
	assert.Equal(t, "boom", res.Reason)
}

func TestGraphical_RecoversPanic(t *testing.T) {
	r := NewGraphical(zerolog.Nop())
	r.draw = func(Graph) (string, error) { panic("renderer exploded") }

	var res Result
	require.NotPanics(t, func() { res = r.Render(DecisionTree()) })

	assert.Equal(t, Degraded, res.Outcome)
	assert.Contains(t, res.Reason, "renderer exploded")
	assert.Equal(t, RenderFailedNotice, res.Notice)
}

func TestGraphical_FailureIsPerCall(t *testing.T) {
	r := NewGraphical(zerolog.Nop())
	calls := 0
	r.draw = func(g Graph) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("transient")
		}
		return drawTree(g)
	}

	assert.Equal(t, Degraded, r.Render(DecisionTree()).Outcome)
	assert.Equal(t, Ok, r.Render(DecisionTree()).Outcome)
}

func TestTextual_Render(t *testing.T) {
	res := Textual{}.Render(DecisionTree())

	assert.Equal(t, Degraded, res.Outcome)
	assert.Equal(t, UnavailableNotice, res.Notice)
	assert.Equal(t, UnavailableSummary, res.Summary)
	assert.Equal(t, TextFlow, res.Flow)
	assert.Contains(t, res.Flow, "1. Owned by Massy? -> YES (S1) / NO (S3)")
	assert.Contains(t, res.Flow, "3. Fuel? -> Diesel/Gasoline")
}

func TestDOT(t *testing.T) {
	out := DOT(DecisionTree())

	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, "rankdir")
	assert.Contains(t, out, "Owned by Massy Energy?")
	assert.Contains(t, out, "Selection: Client/Supplier")
	assert.Contains(t, out, "#002664")
	assert.Contains(t, out, "->")
	assert.Contains(t, out, "Yes")
}
