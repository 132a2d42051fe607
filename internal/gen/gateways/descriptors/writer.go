package descriptors

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/haukened/bindgate/internal/gen/domain"
	"github.com/haukened/bindgate/internal/gen/services/admission"
)

// decisionJSON is the wire shape of one decision line.
// Reason and Rule are omitted for admitted members.
type decisionJSON struct {
	Class    string `json:"class"`
	Member   string `json:"member"`
	Admitted bool   `json:"admitted"`
	Reason   string `json:"reason,omitempty"`
	Rule     string `json:"rule,omitempty"`
	Source   string `json:"source,omitempty"`
}

// Writer encodes decisions as NDJSON, one line per screened member.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps w in a decision writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write emits one decision line.
func (w *Writer) Write(d domain.MemberDescriptor, dec domain.Decision) error {
	out := decisionJSON{
		Class:    d.Class,
		Member:   d.Member,
		Admitted: dec.Admitted,
	}
	if !dec.Admitted {
		out.Reason = dec.Reason.String()
		out.Rule = dec.Rule
		out.Source = dec.Source
	}
	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush drains buffered output. Call once after the pass completes.
func (w *Writer) Flush() error { return w.w.Flush() }

var _ admission.DecisionSink = (*Writer)(nil)
