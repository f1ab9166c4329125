package lattice

import "testing"

func TestNewLayoutRejectsNonPositiveExtent(t *testing.T) {
	if _, err := NewLayout([]int{4, 0, 4, 4}); err == nil {
		t.Fatalf("expected error for zero extent, got nil")
	}
	if _, err := NewLayout([]int{4, -1, 4, 4}); err == nil {
		t.Fatalf("expected error for negative extent, got nil")
	}
}

func TestSiteIndexRoundTrip(t *testing.T) {
	l, err := NewLayout([]int{2, 3, 4, 5})
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	if l.Volume() != 2*3*4*5 {
		t.Fatalf("want volume %d, got %d", 2*3*4*5, l.Volume())
	}

	for site := 0; site < l.Volume(); site++ {
		coords := l.SiteCoordsOf(site)
		if got := l.SiteIndexOf(coords); got != site {
			t.Fatalf("round trip failed: site=%d coords=%v got=%d", site, coords, got)
		}
	}
}

func TestArrayIndexIsIdentityForCanonicalLayout(t *testing.T) {
	l, err := NewLayout([]int{4, 4})
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	for site := 0; site < l.Volume(); site++ {
		if l.ArrayIndexOf(site) != site {
			t.Fatalf("expected identity array index, got %d for site %d", l.ArrayIndexOf(site), site)
		}
	}
}

func TestSanitiseWrapsNegativeAndOverflowCoords(t *testing.T) {
	l, err := NewLayout([]int{4, 4})
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}

	got := l.Sanitise([]int{-1, 5})
	want := []int{3, 1}
	if got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestShiftWrapsPeriodically(t *testing.T) {
	l, err := NewLayout([]int{4, 4, 4, 4})
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	site := l.SiteIndexOf([]int{0, 0, 0, 0})
	forward := l.Shift(site, 0, 1)
	if got := l.SiteCoordsOf(forward); got[0] != 1 {
		t.Fatalf("want coord 1 on axis 0, got %v", got)
	}
	backward := l.Shift(site, 0, -1)
	if got := l.SiteCoordsOf(backward); got[0] != 3 {
		t.Fatalf("want coord 3 (wrapped) on axis 0, got %v", got)
	}
}
