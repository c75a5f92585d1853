package alphatrade

import "testing"

func TestMoneyString(t *testing.T) {
	if got, want := M(1543.2, "USD").String(), "$1,543.20"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := M(-1543.2, "USD").String(), "-$1,543.20"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMoneySignedString(t *testing.T) {
	if got, want := M(10, "USD").SignedString(), "+$10.00"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got, want := M(0, "USD").SignedString(), "-"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
}

// A currency-less amount is weak: it adopts the currency of the other
// operand, so trade records stay usable before their currency is known.
func TestMoneyWeakCurrency(t *testing.T) {
	sum := M(10, "").Add(M(5, "USD"))
	if sum.Currency() != "USD" {
		t.Errorf("currency = %q, want %q", sum.Currency(), "USD")
	}
	if !sum.Equal(M(15, "USD")) {
		t.Errorf("sum = %s, want 15 USD", sum)
	}
}

func TestMoneyMulQuantity(t *testing.T) {
	total := M(154.32, "USD").Mul(Q(10))
	if !total.Equal(M(1543.2, "USD")) {
		t.Errorf("total = %s, want 1543.2 USD", total)
	}
}

func TestQuantityIsInteger(t *testing.T) {
	if !Q(100).IsInteger() {
		t.Error("Q(100).IsInteger() = false, want true")
	}
	if Q(0.2).IsInteger() {
		t.Error("Q(0.2).IsInteger() = true, want false")
	}
}

func TestPercentStrings(t *testing.T) {
	if got, want := Percent(10.2286).String(), "10.23%"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := Percent(10.2286).SignedString(), "+10.23%"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got, want := Percent(0).SignedString(), "-"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
}
