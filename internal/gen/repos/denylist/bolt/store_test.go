package bolt

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/haukened/bindgate/internal/gen/domain"
)

func newTestStore(t *testing.T) *boltStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "denylist.db")
	s, err := New(path)
	if err != nil {
		t.Fatalf("New(%q): %v", path, err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s.(*boltStore)
}

func mustRule(t *testing.T, class, member string, reason domain.Reason) domain.DenyRule {
	t.Helper()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	var (
		r   domain.DenyRule
		err error
	)
	if member == "" {
		r, err = domain.NewClassDenyRule(class, reason, "occt-7.6.list", now)
	} else {
		r, err = domain.NewPairDenyRule(class, member, reason, "occt-7.6.list", now)
	}
	if err != nil {
		t.Fatalf("building rule: %v", err)
	}
	return r
}

func TestStore_RebuildAndGet(t *testing.T) {
	s := newTestStore(t)

	rules := []domain.DenyRule{
		mustRule(t, "Geom2dHatch_Hatcher", "IsDone", domain.ReasonUndefinedSymbol),
		mustRule(t, "XSControl_Vars", "", domain.ReasonTemporaryReference),
	}
	if err := s.RebuildAll(rules, 3, 1700000000); err != nil {
		t.Fatalf("RebuildAll: %v", err)
	}

	got, ok, err := s.GetFirstMatch("Geom2dHatch_Hatcher", "IsDone")
	if err != nil || !ok {
		t.Fatalf("GetFirstMatch pair: ok=%v err=%v", ok, err)
	}
	if got.Reason != domain.ReasonUndefinedSymbol || got.Source != "occt-7.6.list" || !got.IsPair() {
		t.Errorf("pair rule round trip = %+v", got)
	}
	if got.AddedAt.Unix() != rules[0].AddedAt.Unix() {
		t.Errorf("AddedAt = %v; want %v", got.AddedAt, rules[0].AddedAt)
	}

	// Class-wide entries match any member of the class.
	got, ok, err = s.GetFirstMatch("XSControl_Vars", "AnyMemberAtAll")
	if err != nil || !ok {
		t.Fatalf("GetFirstMatch class: ok=%v err=%v", ok, err)
	}
	if !got.IsClassWide() || got.Reason != domain.ReasonTemporaryReference {
		t.Errorf("class rule round trip = %+v", got)
	}
}

func TestStore_GetFirstMatch_Miss(t *testing.T) {
	s := newTestStore(t)
	if err := s.RebuildAll([]domain.DenyRule{mustRule(t, "Foo", "Bar", domain.ReasonDenylisted)}, 1, 1); err != nil {
		t.Fatalf("RebuildAll: %v", err)
	}

	_, ok, err := s.GetFirstMatch("Foo", "Other")
	if err != nil {
		t.Fatalf("GetFirstMatch: %v", err)
	}
	if ok {
		t.Error("GetFirstMatch matched a rule that was never stored")
	}
}

func TestStore_ClassRuleDominatesPair(t *testing.T) {
	s := newTestStore(t)
	rules := []domain.DenyRule{
		mustRule(t, "Foo", "Bar", domain.ReasonUndefinedSymbol),
		mustRule(t, "Foo", "", domain.ReasonTemporaryReference),
	}
	if err := s.RebuildAll(rules, 1, 1); err != nil {
		t.Fatalf("RebuildAll: %v", err)
	}

	got, ok, err := s.GetFirstMatch("Foo", "Bar")
	if err != nil || !ok {
		t.Fatalf("GetFirstMatch: ok=%v err=%v", ok, err)
	}
	if !got.IsClassWide() {
		t.Errorf("class-wide rule should win; got %+v", got)
	}
}

func TestStore_RebuildReplacesSnapshot(t *testing.T) {
	s := newTestStore(t)
	if err := s.RebuildAll([]domain.DenyRule{mustRule(t, "Old", "Rule", domain.ReasonDenylisted)}, 1, 10); err != nil {
		t.Fatalf("RebuildAll: %v", err)
	}
	if err := s.RebuildAll([]domain.DenyRule{mustRule(t, "New", "Rule", domain.ReasonDenylisted)}, 2, 20); err != nil {
		t.Fatalf("RebuildAll: %v", err)
	}

	if _, ok, _ := s.GetFirstMatch("Old", "Rule"); ok {
		t.Error("old snapshot still visible after rebuild")
	}
	if _, ok, _ := s.GetFirstMatch("New", "Rule"); !ok {
		t.Error("new snapshot missing after rebuild")
	}

	st := s.Stats()
	if st.PairCount != 1 || st.ClassCount != 0 {
		t.Errorf("Stats counts = %+v", st)
	}
	if st.Version != 2 || st.UpdatedUnix != 20 {
		t.Errorf("Stats meta = %+v; want version 2 updated 20", st)
	}
}

func TestStore_RebuildRejectsInvalidRule(t *testing.T) {
	s := newTestStore(t)
	bad := domain.DenyRule{Class: "Foo", Kind: domain.DenyRulePair, Source: "s", AddedAt: time.Now()}
	if err := s.RebuildAll([]domain.DenyRule{bad}, 1, 1); err == nil {
		t.Error("RebuildAll accepted an invalid rule")
	}
}

func TestStore_EmptySnapshot(t *testing.T) {
	s := newTestStore(t)
	if err := s.RebuildAll(nil, 5, 50); err != nil {
		t.Fatalf("RebuildAll(nil): %v", err)
	}
	st := s.Stats()
	if st.PairCount != 0 || st.ClassCount != 0 || st.Version != 5 {
		t.Errorf("Stats = %+v", st)
	}
}
