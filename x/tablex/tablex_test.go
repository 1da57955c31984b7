package tablex

import "testing"

func TestAt(t *testing.T) {
	tab := []uint8{10, 20, 30}
	if got := At(tab, 1, 0xFF); got != 20 {
		t.Fatalf("At(1)=%d", got)
	}
	if got := At(tab, 3, 0xFF); got != 0xFF {
		t.Fatalf("At(3)=%d want default", got)
	}
	if got := At(tab, -1, 0xFF); got != 0xFF {
		t.Fatalf("At(-1)=%d want default", got)
	}
	if got := At(tab, uint8(200), 7); got != 7 {
		t.Fatalf("At(uint8 200)=%d want default", got)
	}
}

func TestIn(t *testing.T) {
	if !In(0, 1) || In(1, 1) || In(-1, 4) {
		t.Fatalf("In bounds wrong")
	}
}
