package admission

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/haukened/bindgate/internal/gen/common/log"
	"github.com/haukened/bindgate/internal/gen/domain"
)

// Filter decides whether a candidate (class, member) is admissible for
// binding generation. Evaluation is pure and total: builtin tables first,
// then the optional overlay denylist, and anything left unmatched is
// admitted. Safe for concurrent use; the only side effect is the
// using-declaration diagnostic.
type Filter struct {
	overlay Denylist
	logger  log.Logger
}

// Options configures a Filter.
type Options struct {
	Overlay Denylist   // optional; nil means builtin rules only
	Logger  log.Logger // optional; nil means no diagnostics
}

// New constructs a Filter.
func New(opts Options) *Filter {
	l := opts.Logger
	if l == nil {
		l = log.NewNoopLogger()
	}
	return &Filter{
		overlay: opts.Overlay,
		logger:  l,
	}
}

// Admit reports whether the member may be included in generated bindings.
func (f *Filter) Admit(d domain.MemberDescriptor) bool {
	return f.Decide(d).Admitted
}

// Decide evaluates the descriptor and returns the full decision, including
// the matching rule and failure class on rejection.
func (f *Filter) Decide(d domain.MemberDescriptor) domain.Decision {
	if dec, matched := f.evalBuiltin(d); matched {
		return dec
	}
	if f.overlay != nil {
		if dec := f.overlay.Decide(d.Class, d.Member); !dec.Admitted {
			return dec
		}
	}
	return domain.AdmittedDecision()
}

// evalBuiltin walks the compiled-in tables. Rules are mutually exclusive by
// construction, so the check order only mirrors the table layout.
func (f *Filter) evalBuiltin(d domain.MemberDescriptor) (domain.Decision, bool) {
	key := pairKey{class: d.Class, member: d.Member}

	if reason, ok := pairDenials[key]; ok {
		return domain.ExcludedDecision(reason, d.Key(), builtinSource), true
	}

	if reason, ok := classDenials[d.Class]; ok {
		return domain.ExcludedDecision(reason, d.Class, builtinSource), true
	}

	if _, ok := bitFieldClassTypes[d.ClassType]; ok {
		return domain.ExcludedDecision(domain.ReasonBitField, d.ClassType, builtinSource), true
	}

	if _, ok := bitFieldMembers[key]; ok {
		return domain.ExcludedDecision(domain.ReasonBitField, d.Key(), builtinSource), true
	}

	if d.Access == domain.AccessPublic && d.Kind == domain.KindUsingDeclaration {
		// Diagnostic on every rejection; repeats are intentional so each
		// offending declaration shows up in the generation log.
		f.logger.Warn(map[string]any{
			"class":  d.Class,
			"member": d.Member,
		}, "using declarations are not supported")
		return domain.ExcludedDecision(domain.ReasonUsingDeclaration, d.Key(), builtinSource), true
	}

	if strings.HasPrefix(d.ResultType, ostreamPrefix) || d.DeclType == ifstreamType {
		return domain.ExcludedDecision(domain.ReasonStreamType, d.Key(), builtinSource), true
	}

	if d.Class == lerpClass && d.Member == lerpMember && d.Static {
		return domain.ExcludedDecision(domain.ReasonTemplateCast, d.Key(), builtinSource), true
	}

	if _, ok := iteratorDenyClasses[d.Class]; ok && strings.Contains(d.Display, iteratorMarker) {
		return domain.ExcludedDecision(domain.ReasonIteratorBloat, d.Key(), builtinSource), true
	}

	return domain.Decision{}, false
}

// Summary aggregates the outcome of one screening pass.
type Summary struct {
	Total    uint64
	Admitted uint64
	Excluded uint64
	ByReason map[domain.Reason]uint64
}

// Screen drives a whole generation pass: it reads descriptors from src until
// io.EOF, decides each one, writes the decision to sink, and returns
// aggregate counts. Context cancellation stops the pass early with the
// counts accumulated so far.
func (f *Filter) Screen(ctx context.Context, src DescriptorSource, sink DecisionSink) (Summary, error) {
	sum := Summary{ByReason: make(map[domain.Reason]uint64)}
	for {
		select {
		case <-ctx.Done():
			return sum, ctx.Err()
		default:
		}

		d, err := src.Next()
		if errors.Is(err, io.EOF) {
			return sum, nil
		}
		if err != nil {
			return sum, err
		}

		dec := f.Decide(d)
		sum.Total++
		if dec.Admitted {
			sum.Admitted++
		} else {
			sum.Excluded++
			sum.ByReason[dec.Reason]++
		}

		if err := sink.Write(d, dec); err != nil {
			return sum, err
		}
	}
}
