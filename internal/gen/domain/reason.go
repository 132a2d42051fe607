package domain

import (
	"fmt"
	"strings"
)

// Reason identifies the toolchain failure an exclusion rule guards against.
// Every rejected member carries exactly one Reason.
type Reason uint8

const (
	// ReasonNone means no rule matched; only valid on admitted decisions.
	ReasonNone Reason = iota
	// ReasonSignatureMismatch: the generated functor signature does not
	// match what the binding layer expects for the member.
	ReasonSignatureMismatch
	// ReasonPrivateConstructor: the accessor would call a private or
	// otherwise inaccessible constructor.
	ReasonPrivateConstructor
	// ReasonTemporaryReference: the binding would bind a non-const lvalue
	// reference to a temporary, whose lifetime cannot cross the boundary.
	ReasonTemporaryReference
	// ReasonRawPointerCallback: binding the member trips the static assert
	// against implicitly bound raw-pointer callback arguments.
	ReasonRawPointerCallback
	// ReasonBitField: the member's storage is a bit-field, whose address
	// cannot be taken.
	ReasonBitField
	// ReasonUsingDeclaration: using-declarations are unsupported by the
	// binding generator.
	ReasonUsingDeclaration
	// ReasonStreamType: the result or declared type is a native I/O stream
	// handle with no safe cross-boundary representation.
	ReasonStreamType
	// ReasonDeletedCopy: materializing the return value needs a deleted or
	// private copy constructor.
	ReasonDeletedCopy
	// ReasonTemplateCast: a template-specialization member whose generated
	// function-pointer cast is ill-formed.
	ReasonTemplateCast
	// ReasonIteratorBloat: instantiating bindings for the member causes
	// unbounded build-time memory growth.
	ReasonIteratorBloat
	// ReasonUndefinedSymbol: the member's implementation is absent in the
	// underlying library and fails at final link/instantiation.
	ReasonUndefinedSymbol
	// ReasonDenylisted: matched an operator-supplied overlay denylist entry
	// with no more specific reason recorded.
	ReasonDenylisted
)

var reasonNames = map[Reason]string{
	ReasonNone:               "none",
	ReasonSignatureMismatch:  "signature-mismatch",
	ReasonPrivateConstructor: "private-constructor",
	ReasonTemporaryReference: "temporary-reference",
	ReasonRawPointerCallback: "raw-pointer-callback",
	ReasonBitField:           "bit-field",
	ReasonUsingDeclaration:   "using-declaration",
	ReasonStreamType:         "stream-type",
	ReasonDeletedCopy:        "deleted-copy",
	ReasonTemplateCast:       "template-cast",
	ReasonIteratorBloat:      "iterator-bloat",
	ReasonUndefinedSymbol:    "undefined-symbol",
	ReasonDenylisted:         "denylisted",
}

// String returns the stable wire/file token for the reason.
func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Reason(%d)", r)
}

// ParseReason converts a reason token back into a Reason.
// Tokens are the same strings String produces (case-insensitive).
func ParseReason(s string) (Reason, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for r, name := range reasonNames {
		if name == t {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unsupported Reason: %q", s)
}
