package parsers

import "testing"

func TestSplitMemberRef(t *testing.T) {
	tests := []struct {
		in         string
		wantClass  string
		wantMember string
		wantPair   bool
	}{
		{"Foo::Bar", "Foo", "Bar", true},
		{"Foo", "Foo", "", false},
		{"Foo::Bar::Baz", "Foo", "Bar::Baz", true},
		{"::Bar", "", "Bar", true},
	}
	for _, tt := range tests {
		class, member, isPair := splitMemberRef(tt.in)
		if class != tt.wantClass || member != tt.wantMember || isPair != tt.wantPair {
			t.Errorf("splitMemberRef(%q) = (%q, %q, %v); want (%q, %q, %v)",
				tt.in, class, member, isPair, tt.wantClass, tt.wantMember, tt.wantPair)
		}
	}
}

func TestIsValidName(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Geom2dHatch_Hatcher", true},
		{"_internal", true},
		{"gp_Pnt", true},
		{"", false},
		{"2fast", false},
		{"has space", false},
		{"has-dash", false},
		{"Nested::Name", false},
	}
	for _, tt := range tests {
		if got := isValidName(tt.in); got != tt.want {
			t.Errorf("isValidName(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}
