package denylist

import (
	"github.com/haukened/bindgate/internal/gen/domain"
	"github.com/haukened/bindgate/internal/gen/services/admission"
)

// NopDenylist stands in when no overlay is configured. It admits everything.
type NopDenylist struct{}

func (n *NopDenylist) Decide(class, member string) domain.Decision {
	return domain.AdmittedDecision()
}

var _ admission.Denylist = (*NopDenylist)(nil)
