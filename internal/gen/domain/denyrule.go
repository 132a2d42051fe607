package domain

import (
	"fmt"
	"strings"
	"time"
)

// DenyRuleKind defines how an overlay denylist rule matches members.
//
// pair  - matches one exact (class, member) pair
// class - matches every member of the class
type DenyRuleKind uint8

const (
	// DenyRulePair matches only the exact (class, member) pair.
	DenyRulePair DenyRuleKind = iota
	// DenyRuleClass matches all members of the class.
	DenyRuleClass
)

// String returns a stable string representation of the rule kind.
func (k DenyRuleKind) String() string {
	switch k {
	case DenyRulePair:
		return "pair"
	case DenyRuleClass:
		return "class"
	default:
		return fmt.Sprintf("DenyRuleKind(%d)", k)
	}
}

// ParseDenyRuleKind converts a string into a DenyRuleKind.
// Accepts: "pair", "class" (case-insensitive).
func ParseDenyRuleKind(s string) (DenyRuleKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pair":
		return DenyRulePair, nil
	case "class":
		return DenyRuleClass, nil
	default:
		return 0, fmt.Errorf("unsupported DenyRuleKind: %q", s)
	}
}

// DenyRule is a single overlay denylist entry sourced from an operator file.
// Overlay entries extend the builtin table for toolchain failures that only
// surface against a particular library release.
//
// Notes:
// - Class and Member carry the front-end spellings verbatim.
// - Source identifies where the rule came from (file path or feed alias).
// - AddedAt records when the rule was ingested.
type DenyRule struct {
	Class   string       // owning class name, e.g. "Geom2dHatch_Hatcher"
	Member  string       // member name; empty for class-wide rules
	Kind    DenyRuleKind // pair or class-wide
	Reason  Reason       // failure class; ReasonDenylisted when unspecified
	Source  string       // file/feed identifier
	AddedAt time.Time    // ingestion timestamp
}

// NewDenyRule constructs a DenyRule and validates its fields.
func NewDenyRule(class, member string, kind DenyRuleKind, reason Reason, source string, addedAt time.Time) (DenyRule, error) {
	r := DenyRule{
		Class:   strings.TrimSpace(class),
		Member:  strings.TrimSpace(member),
		Kind:    kind,
		Reason:  reason,
		Source:  strings.TrimSpace(source),
		AddedAt: addedAt,
	}
	if err := r.Validate(); err != nil {
		return DenyRule{}, err
	}
	return r, nil
}

// NewPairDenyRule convenience constructor for an exact (class, member) rule.
func NewPairDenyRule(class, member string, reason Reason, source string, addedAt time.Time) (DenyRule, error) {
	return NewDenyRule(class, member, DenyRulePair, reason, source, addedAt)
}

// NewClassDenyRule convenience constructor for a class-wide rule.
func NewClassDenyRule(class string, reason Reason, source string, addedAt time.Time) (DenyRule, error) {
	return NewDenyRule(class, "", DenyRuleClass, reason, source, addedAt)
}

// Validate checks the DenyRule for required fields and supported values.
func (r DenyRule) Validate() error {
	if r.Class == "" {
		return fmt.Errorf("rule class must not be empty")
	}
	if r.Source == "" {
		return fmt.Errorf("rule source must not be empty")
	}
	if r.AddedAt.IsZero() {
		return fmt.Errorf("rule addedAt must be set")
	}
	switch r.Kind {
	case DenyRulePair:
		if r.Member == "" {
			return fmt.Errorf("pair rule member must not be empty")
		}
	case DenyRuleClass:
		if r.Member != "" {
			return fmt.Errorf("class rule must not name a member")
		}
	default:
		return fmt.Errorf("unsupported DenyRuleKind: %d", r.Kind)
	}
	return nil
}

// Key returns the store key for the rule: "Class::Member" for pair rules,
// the bare class name for class-wide rules.
func (r DenyRule) Key() string {
	if r.Kind == DenyRuleClass {
		return r.Class
	}
	return MemberKey(r.Class, r.Member)
}

// IsPair returns true when the rule kind is pair.
func (r DenyRule) IsPair() bool { return r.Kind == DenyRulePair }

// IsClassWide returns true when the rule kind is class-wide.
func (r DenyRule) IsClassWide() bool { return r.Kind == DenyRuleClass }
