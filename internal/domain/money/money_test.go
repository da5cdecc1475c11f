package money

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		in   Centavos
		want string
	}{
		{0, "0,00"},
		{100, "1,00"},
		{247000, "2470,00"},
		{15050, "150,50"},
		{5, "0,05"},
		{-5000, "-50,00"},
	}
	for _, tc := range cases {
		if got := tc.in.Format(); got != tc.want {
			t.Fatalf("Format(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Centavos(247000).Percent(40); got != 98800 {
		t.Fatalf("40%% of 2470,00 = %d, want 98800", got)
	}
	if got := Centavos(100).Percent(33); got != 33 {
		t.Fatalf("33%% of 1,00 = %d, want 33", got)
	}
	// half-centavo rounds up
	if got := Centavos(150).Percent(33); got != 50 {
		t.Fatalf("33%% of 1,50 = %d, want 50", got)
	}
}

func TestPercentOf(t *testing.T) {
	if got := Centavos(98800).PercentOf(247000); got != 40 {
		t.Fatalf("expected 40, got %d", got)
	}
	if got := Centavos(100).PercentOf(0); got != 0 {
		t.Fatalf("zero total must degrade to 0%%, got %d", got)
	}
	if got := Centavos(100000).PercentOf(300000); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
}

func TestParseDecimal(t *testing.T) {
	t.Run("dot separator", func(t *testing.T) {
		v, ok := ParseDecimal("55.00")
		if !ok || v != 5500 {
			t.Fatalf("expected 5500, got %d ok=%v", v, ok)
		}
	})

	t.Run("comma separator", func(t *testing.T) {
		v, ok := ParseDecimal("27,50")
		if !ok || v != 2750 {
			t.Fatalf("expected 2750, got %d ok=%v", v, ok)
		}
	})

	t.Run("integer", func(t *testing.T) {
		v, ok := ParseDecimal("40")
		if !ok || v != 4000 {
			t.Fatalf("expected 4000, got %d ok=%v", v, ok)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, ok := ParseDecimal("abc"); ok {
			t.Fatalf("expected failure")
		}
		if _, ok := ParseDecimal("   "); ok {
			t.Fatalf("expected failure")
		}
	})
}

func TestFromFloatRounding(t *testing.T) {
	if got := FromFloat(150.50); got != 15050 {
		t.Fatalf("expected 15050, got %d", got)
	}
	if got := FromFloat(0.1 + 0.2); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
}
