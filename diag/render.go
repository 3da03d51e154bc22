package diag

import (
	"encoding/json"
	"fmt"
	"io"
)

// Renderer formats a sink's accumulated diagnostics for presentation.
// The core never renders diagnostics itself; the driver injects the
// renderer it wants (plain text or JSON). Package tui draws its
// diagnostics pane directly from the sink, not through this interface.
type Renderer interface {
	Render(w io.Writer, s *Sink) error
}

// TextRenderer writes one diagnostic per line in the classic compiler
// style: "line N: kind: message" followed by the offending source text.
type TextRenderer struct{}

func (TextRenderer) Render(w io.Writer, s *Sink) error {
	for _, d := range s.All() {
		if _, err := fmt.Fprintln(w, d.String()); err != nil {
			return err
		}
	}
	return nil
}

// JSONRenderer writes the diagnostic list as a JSON array.
type JSONRenderer struct {
	Indent string
}

type jsonDiagnostic struct {
	Line    int    `json:"line"`
	Source  string `json:"source"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (r JSONRenderer) Render(w io.Writer, s *Sink) error {
	out := make([]jsonDiagnostic, 0, s.Count())
	for _, d := range s.All() {
		out = append(out, jsonDiagnostic{
			Line:    d.Line,
			Source:  d.Source,
			Kind:    d.Kind.String(),
			Message: d.Message,
		})
	}

	enc := json.NewEncoder(w)
	if r.Indent != "" {
		enc.SetIndent("", r.Indent)
	}
	return enc.Encode(out)
}
