package domain

// Decision is the outcome of evaluating one MemberDescriptor against the
// exclusion rules. Pure value type, no external dependencies.
type Decision struct {
	Admitted bool   // true if the member may be bound
	Reason   Reason // failure class of the matching rule; ReasonNone when admitted
	Rule     string // identifier of the matching rule, e.g. "MeshVS_DataSource::GetGeom"
	Source   string // origin of the rule: "builtin" or an overlay source identifier
}

// IsAdmitted is a convenience accessor.
func (d Decision) IsAdmitted() bool { return d.Admitted }

// AdmittedDecision returns the default decision: no rule matched, member admitted.
func AdmittedDecision() Decision { return Decision{Admitted: true} }

// ExcludedDecision builds a rejection for the given rule and reason.
func ExcludedDecision(reason Reason, rule, source string) Decision {
	return Decision{Admitted: false, Reason: reason, Rule: rule, Source: source}
}
