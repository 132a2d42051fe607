package parsers

import (
	"strings"
	"testing"
	"time"

	logpkg "github.com/haukened/bindgate/internal/gen/common/log"
	"github.com/haukened/bindgate/internal/gen/domain"
)

var parseTime = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func parse(t *testing.T, input string) []domain.DenyRule {
	t.Helper()
	rules, err := ParsePlainList(strings.NewReader(input), "test.list", domain.ReasonDenylisted, logpkg.NewNoopLogger(), parseTime)
	if err != nil {
		t.Fatalf("ParsePlainList: %v", err)
	}
	return rules
}

func TestParsePlainList_PairAndClass(t *testing.T) {
	input := `
# version-specific entries for occt 7.6
Geom2dHatch_Hatcher::IsDone undefined-symbol
XSControl_Vars temporary-reference

GeomInt_WLApprox::Perform   # inline comment
`
	rules := parse(t, input)
	if len(rules) != 3 {
		t.Fatalf("parsed %d rules; want 3", len(rules))
	}

	if !rules[0].IsPair() || rules[0].Class != "Geom2dHatch_Hatcher" || rules[0].Member != "IsDone" {
		t.Errorf("rule[0] = %+v", rules[0])
	}
	if rules[0].Reason != domain.ReasonUndefinedSymbol {
		t.Errorf("rule[0] reason = %v; want undefined-symbol", rules[0].Reason)
	}

	if !rules[1].IsClassWide() || rules[1].Class != "XSControl_Vars" {
		t.Errorf("rule[1] = %+v", rules[1])
	}
	if rules[1].Reason != domain.ReasonTemporaryReference {
		t.Errorf("rule[1] reason = %v; want temporary-reference", rules[1].Reason)
	}

	// No reason token falls back to the default.
	if rules[2].Reason != domain.ReasonDenylisted {
		t.Errorf("rule[2] reason = %v; want denylisted", rules[2].Reason)
	}

	for i, r := range rules {
		if r.Source != "test.list" || !r.AddedAt.Equal(parseTime) {
			t.Errorf("rule[%d] attribution = %+v", i, r)
		}
	}
}

func TestParsePlainList_DefaultReason(t *testing.T) {
	rules, err := ParsePlainList(strings.NewReader("Foo::Bar\n"), "test.list", domain.ReasonUndefinedSymbol, logpkg.NewNoopLogger(), parseTime)
	if err != nil {
		t.Fatalf("ParsePlainList: %v", err)
	}
	if len(rules) != 1 || rules[0].Reason != domain.ReasonUndefinedSymbol {
		t.Errorf("rules = %+v; want one undefined-symbol rule", rules)
	}
}

func TestParsePlainList_SkipsMalformed(t *testing.T) {
	input := `
Foo::Bar
too many tokens here
Foo::Bar::Baz
12Bad::Name
Ok_Class::Ok_Member
Foo::Bar unknown-reason-token
`
	rules := parse(t, input)
	if len(rules) != 2 {
		t.Fatalf("parsed %d rules; want 2", len(rules))
	}
	if rules[0].Key() != "Foo::Bar" || rules[1].Key() != "Ok_Class::Ok_Member" {
		t.Errorf("rules = %+v", rules)
	}
}

func TestParsePlainList_Dedupe(t *testing.T) {
	input := `
Foo::Bar
Foo::Bar undefined-symbol
Foo
Foo
`
	rules := parse(t, input)
	if len(rules) != 2 {
		t.Fatalf("parsed %d rules; want 2 (first-seen wins)", len(rules))
	}
	// First occurrence wins, including its reason.
	if rules[0].Reason != domain.ReasonDenylisted {
		t.Errorf("dedupe kept later reason: %+v", rules[0])
	}
}

func TestParsePlainList_BOM(t *testing.T) {
	rules := parse(t, "\ufeffFoo::Bar\n")
	if len(rules) != 1 || rules[0].Key() != "Foo::Bar" {
		t.Errorf("BOM line parsed as %+v", rules)
	}
}

func TestParsePlainList_Empty(t *testing.T) {
	if rules := parse(t, "\n\n# only comments\n"); len(rules) != 0 {
		t.Errorf("parsed %d rules from empty input", len(rules))
	}
}
