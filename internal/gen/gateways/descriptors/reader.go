// Package descriptors is the interchange gateway between bindgate and the
// external C/C++ parsing front-end. The front-end emits one candidate member
// per line as JSON; decisions go back out the same way.
package descriptors

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/haukened/bindgate/internal/gen/common/log"
	"github.com/haukened/bindgate/internal/gen/domain"
	"github.com/haukened/bindgate/internal/gen/services/admission"
)

// memberJSON is the wire shape of one descriptor line.
type memberJSON struct {
	Class      string `json:"class"`
	ClassType  string `json:"class_type,omitempty"`
	Member     string `json:"member"`
	Display    string `json:"display,omitempty"`
	ResultType string `json:"result_type,omitempty"`
	DeclType   string `json:"decl_type,omitempty"`
	Access     string `json:"access,omitempty"`
	Kind       string `json:"kind,omitempty"`
	Static     bool   `json:"static,omitempty"`
}

// Reader decodes NDJSON member descriptors from the front-end stream.
// Malformed lines are logged and skipped; the pass never aborts on bad input.
type Reader struct {
	scanner *bufio.Scanner
	logger  log.Logger
	line    int
	skipped uint64
}

// NewReader wraps r in a descriptor reader.
func NewReader(r io.Reader, logger log.Logger) *Reader {
	s := bufio.NewScanner(r)
	// Display signatures of deeply templated members can get long.
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{scanner: s, logger: logger}
}

// Next returns the next descriptor, or io.EOF when the stream is exhausted.
func (r *Reader) Next() (domain.MemberDescriptor, error) {
	for r.scanner.Scan() {
		r.line++
		raw := strings.TrimSpace(r.scanner.Text())
		if raw == "" {
			continue
		}

		var m memberJSON
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			r.skip("malformed descriptor line", map[string]any{"line": r.line, "error": err.Error()})
			continue
		}
		if m.Class == "" || m.Member == "" {
			r.skip("descriptor missing class or member", map[string]any{"line": r.line})
			continue
		}

		access, err := domain.ParseAccess(m.Access)
		if err != nil {
			r.skip("unknown access specifier", map[string]any{"line": r.line, "access": m.Access})
			continue
		}
		kind, err := domain.ParseMemberKind(m.Kind)
		if err != nil {
			r.skip("unknown member kind", map[string]any{"line": r.line, "kind": m.Kind})
			continue
		}

		return domain.MemberDescriptor{
			Class:      m.Class,
			ClassType:  m.ClassType,
			Member:     m.Member,
			Display:    m.Display,
			ResultType: m.ResultType,
			DeclType:   m.DeclType,
			Access:     access,
			Kind:       kind,
			Static:     m.Static,
		}, nil
	}
	if err := r.scanner.Err(); err != nil {
		return domain.MemberDescriptor{}, err
	}
	return domain.MemberDescriptor{}, io.EOF
}

// Skipped returns the number of lines dropped as malformed.
func (r *Reader) Skipped() uint64 { return r.skipped }

func (r *Reader) skip(msg string, fields map[string]any) {
	r.skipped++
	r.logger.Warn(fields, msg)
}

var _ admission.DescriptorSource = (*Reader)(nil)
