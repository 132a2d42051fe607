package admission

import "github.com/haukened/bindgate/internal/gen/domain"

// Denylist is the overlay denylist consulted after the builtin rules.
// Implementations must be fail-open: on any internal error they return an
// admitted decision.
type Denylist interface {
	Decide(class, member string) domain.Decision
}

// DescriptorSource yields candidate member descriptors, one per call.
// Next returns io.EOF when the stream is exhausted.
type DescriptorSource interface {
	Next() (domain.MemberDescriptor, error)
}

// DecisionSink receives one decision per screened descriptor.
type DecisionSink interface {
	Write(d domain.MemberDescriptor, dec domain.Decision) error
}
