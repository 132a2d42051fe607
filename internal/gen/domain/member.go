package domain

import (
	"fmt"
	"strings"
)

// Access is the C++ access specifier of a member as reported by the
// parsing front-end.
type Access uint8

const (
	// AccessUnknown is used when the front-end reports no access specifier.
	AccessUnknown Access = iota
	// AccessPublic marks a public member.
	AccessPublic
	// AccessProtected marks a protected member.
	AccessProtected
	// AccessPrivate marks a private member.
	AccessPrivate
)

// String returns a stable string representation of the access specifier.
func (a Access) String() string {
	switch a {
	case AccessUnknown:
		return "unknown"
	case AccessPublic:
		return "public"
	case AccessProtected:
		return "protected"
	case AccessPrivate:
		return "private"
	default:
		return fmt.Sprintf("Access(%d)", a)
	}
}

// ParseAccess converts a string into an Access.
// Accepts: "public", "protected", "private", "unknown", "" (case-insensitive).
func ParseAccess(s string) (Access, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unknown":
		return AccessUnknown, nil
	case "public":
		return AccessPublic, nil
	case "protected":
		return AccessProtected, nil
	case "private":
		return AccessPrivate, nil
	default:
		return 0, fmt.Errorf("unsupported Access: %q", s)
	}
}

// MemberKind classifies a candidate member the way the front-end cursor does.
type MemberKind uint8

const (
	// KindUnknown is used when the front-end reports an unclassified cursor.
	KindUnknown MemberKind = iota
	// KindMethod is an ordinary member function.
	KindMethod
	// KindField is a data member.
	KindField
	// KindUsingDeclaration is a using-declaration pulled into the class scope.
	KindUsingDeclaration
)

// String returns a stable string representation of the member kind.
func (k MemberKind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindMethod:
		return "method"
	case KindField:
		return "field"
	case KindUsingDeclaration:
		return "using_declaration"
	default:
		return fmt.Sprintf("MemberKind(%d)", k)
	}
}

// ParseMemberKind converts a string into a MemberKind.
// Accepts: "method", "field", "using_declaration", "unknown", "" (case-insensitive).
func ParseMemberKind(s string) (MemberKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unknown":
		return KindUnknown, nil
	case "method":
		return KindMethod, nil
	case "field":
		return KindField, nil
	case "using_declaration":
		return KindUsingDeclaration, nil
	default:
		return 0, fmt.Errorf("unsupported MemberKind: %q", s)
	}
}

// MemberDescriptor captures the facts the parsing front-end reports about one
// candidate binding member. It is a pure value type: constructed once per
// candidate, consulted once, then discarded.
//
// Spellings are carried verbatim from the front-end; the filter never
// normalizes them.
type MemberDescriptor struct {
	Class      string     // owning class name, e.g. "MeshVS_DataSource"
	ClassType  string     // owning class storage-type spelling (may differ for typedefs)
	Member     string     // member name, e.g. "GetGeom"
	Display    string     // display signature, e.g. "Value(int)" or "Iterator::Iterator()"
	ResultType string     // result-type spelling for callables
	DeclType   string     // declared-type spelling of the member itself
	Access     Access     // access specifier
	Kind       MemberKind // cursor classification
	Static     bool       // true for static members
}

// Key returns the canonical "Class::Member" form used by the overlay
// denylist store and decision cache.
func (d MemberDescriptor) Key() string {
	return MemberKey(d.Class, d.Member)
}

// MemberKey builds the canonical "Class::Member" key from its parts.
func MemberKey(class, member string) string {
	return class + "::" + member
}
