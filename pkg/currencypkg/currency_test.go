package currencypkg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"btc", "BTC"},
		{" eth ", "ETH"},
		{"UsDt", "USDT"},
		{"", ""},
	}

	for _, tc := range testCases {
		if got := Normalize(tc.input); got != tc.want {
			t.Errorf("Normalize(%q)=%q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeAll(t *testing.T) {
	got := NormalizeAll([]string{"usd", " EUR", "", "Usd", "czk "})
	want := []string{"USD", "EUR", "CZK"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NormalizeAll mismatch (-want +got):\n%s", diff)
	}
}
