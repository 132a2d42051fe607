package bloom

import "testing"

func TestSizer_Size(t *testing.T) {
	s := NewSizer()

	tests := []struct {
		n     uint64
		p     float64
		wantM uint64
		wantK uint8
	}{
		// Known values from the standard formulas.
		{1000, 0.01, 9586, 7},
		{1000, 0.001, 14378, 10},
		{100, 0.01, 959, 7},
	}
	for _, tt := range tests {
		m, k := s.Size(tt.n, tt.p)
		if m != tt.wantM || k != tt.wantK {
			t.Errorf("Size(%d, %v) = (%d, %d); want (%d, %d)", tt.n, tt.p, m, k, tt.wantM, tt.wantK)
		}
	}
}

func TestSizer_Clamps(t *testing.T) {
	s := NewSizer()

	// Zero capacity clamps to one element.
	m, k := s.Size(0, 0.01)
	if m == 0 || k == 0 {
		t.Errorf("Size(0, 0.01) = (%d, %d); want non-zero", m, k)
	}

	// Invalid FP rates fall back to 1%.
	m1, k1 := s.Size(100, 0)
	m2, k2 := s.Size(100, 0.01)
	if m1 != m2 || k1 != k2 {
		t.Errorf("invalid p did not fall back: (%d,%d) vs (%d,%d)", m1, k1, m2, k2)
	}
	m3, _ := s.Size(100, 1.5)
	if m3 != m2 {
		t.Errorf("p>1 did not fall back: %d vs %d", m3, m2)
	}
}
