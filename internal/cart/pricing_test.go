package cart

import "testing"

func TestSubtotalTaxTotal(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		if got := Subtotal(nil); got != 0 {
			t.Fatalf("expected 0 subtotal, got %v", got)
		}
		if got := ItemCount(nil); got != 0 {
			t.Fatalf("expected 0 count, got %v", got)
		}
	})

	t.Run("single line repeated additions", func(t *testing.T) {
		items := []LineItem{{MenuItemID: 1, UnitPrice: 8.99, Quantity: 3}}
		subtotal := Subtotal(items)
		if subtotal != 26.97 {
			t.Fatalf("expected subtotal 26.97, got %v", subtotal)
		}
		tax := Tax(subtotal, DefaultTaxRate)
		if tax != 2.16 {
			t.Fatalf("expected tax 2.16, got %v", tax)
		}
		if total := Total(subtotal, tax); total != 29.13 {
			t.Fatalf("expected total 29.13, got %v", total)
		}
	})

	t.Run("two distinct lines", func(t *testing.T) {
		items := []LineItem{
			{MenuItemID: 1, UnitPrice: 12.99, Quantity: 1},
			{MenuItemID: 2, UnitPrice: 4.99, Quantity: 2},
		}
		subtotal := Subtotal(items)
		if subtotal != 22.97 {
			t.Fatalf("expected subtotal 22.97, got %v", subtotal)
		}
		tax := Tax(subtotal, DefaultTaxRate)
		if tax != 1.84 {
			t.Fatalf("expected tax 1.84, got %v", tax)
		}
		if total := Total(subtotal, tax); total != 24.81 {
			t.Fatalf("expected total 24.81, got %v", total)
		}
	})

	t.Run("item count sums quantities not lines", func(t *testing.T) {
		items := []LineItem{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 5},
		}
		if got := ItemCount(items); got != 7 {
			t.Fatalf("expected count 7, got %d", got)
		}
	})

	t.Run("deterministic without mutation", func(t *testing.T) {
		items := []LineItem{{MenuItemID: 1, UnitPrice: 9.37, Quantity: 13}}
		first := Subtotal(items)
		for i := 0; i < 10; i++ {
			if got := Subtotal(items); got != first {
				t.Fatalf("subtotal changed between calls: %v vs %v", first, got)
			}
		}
	})
}

func TestRoundCents(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{2.1576, 2.16},
		{1.8376, 1.84},
		{0.125, 0.13},
		{0.004999, 0.0},
		{26.970000000000002, 26.97},
	}
	for _, c := range cases {
		if got := roundCents(c.in); got != c.want {
			t.Fatalf("roundCents(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
