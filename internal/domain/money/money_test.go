package money

import "testing"

func TestRound2BankersRounding(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{9.9995, 10.00},
		{89.995, 90.00},
		{89.985, 89.98},
		{2.675, 2.68},
		{2.665, 2.66},
		{100.004, 100.00},
		{0, 0},
		{-1.005, -1.00},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Fatalf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestMulRoundsAfterSingleOperation(t *testing.T) {
	// 99.995 * 0.1 = 9.9995 which rounds up to 10.00.
	if got := Mul(99.995, 0.1); got != 10.00 {
		t.Fatalf("Mul(99.995, 0.1) = %v, want 10.00", got)
	}
	if got := Mul(100, 0.08); got != 8.00 {
		t.Fatalf("Mul(100, 0.08) = %v, want 8.00", got)
	}
}

func TestSubAndAdd(t *testing.T) {
	if got := Sub(99.995, 10.00); got != 90.00 {
		t.Fatalf("Sub(99.995, 10.00) = %v, want 90.00", got)
	}
	if got := Add(100.00, 8.00); got != 108.00 {
		t.Fatalf("Add(100.00, 8.00) = %v, want 108.00", got)
	}
}

func TestLineTotalStaysExact(t *testing.T) {
	if got := LineTotal(19.99, 3); got != 59.97 {
		t.Fatalf("LineTotal(19.99, 3) = %v, want 59.97", got)
	}
	if got := Sum(LineTotal(50, 2), LineTotal(0.10, 3)); got != 100.30 {
		t.Fatalf("Sum = %v, want 100.30", got)
	}
}
