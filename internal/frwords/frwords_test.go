package frwords

import "testing"

func TestToWords(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "zéro"},
		{1, "un"},
		{5, "cinq"},
		{9, "neuf"},
		{10, "dix"},
		{11, "onze"},
		{16, "seize"},
		{17, "dix-sept"},
		{19, "dix-neuf"},
		{20, "vingt"},
		{21, "vingt-un"},
		{45, "quarante-cinq"},
		{60, "soixante"},
		{69, "soixante-neuf"},
		{70, "soixante-dix"},
		{71, "soixante-onze"},
		{77, "soixante-dix-sept"},
		{79, "soixante-dix-neuf"},
		{80, "quatre-vingts"},
		{81, "quatre-vingt-un"},
		{89, "quatre-vingt-neuf"},
		{90, "quatre-vingt-dix"},
		{91, "quatre-vingt-onze"},
		{99, "quatre-vingt-dix-neuf"},
		{100, "cent"},
		{101, "cent un"},
		{171, "cent soixante-onze"},
		{200, "deux cents"},
		{300, "trois cents"},
		{301, "trois cent un"},
		{345, "trois cent quarante-cinq"},
		{999, "neuf cent quatre-vingt-dix-neuf"},
		{1000, "mille"},
		{1001, "mille un"},
		{1100, "mille cent"},
		{2000, "deux mille"},
		{10000, "dix mille"},
		{80000, "quatre-vingts mille"},
		{123456, "cent vingt-trois mille quatre cent cinquante-six"},
		{1000000, "un million"},
		{2000000, "deux millions"},
		{1770000, "un million sept cent soixante-dix mille"},
		{1000000000, "un milliard"},
		{2000000001, "deux milliards un"},
		{3500000000, "trois milliards cinq cents millions"},
		{-1, "moins un"},
		{-1770000, "moins un million sept cent soixante-dix mille"},
	}
	for _, tt := range tests {
		if got := ToWords(tt.n); got != tt.want {
			t.Errorf("ToWords(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestToWordsNoOuterWhitespace(t *testing.T) {
	for _, n := range []int64{0, 1, 80, 100, 1000, 1000000, 1770000, -5} {
		got := ToWords(n)
		if got == "" {
			t.Fatalf("ToWords(%d) empty", n)
		}
		if got[0] == ' ' || got[len(got)-1] == ' ' {
			t.Errorf("ToWords(%d) = %q has leading/trailing space", n, got)
		}
	}
}

func TestAmountInWords(t *testing.T) {
	got := AmountInWords(1770000, "francs CFA")
	want := "un million sept cent soixante-dix mille francs CFA"
	if got != want {
		t.Errorf("AmountInWords() = %q, want %q", got, want)
	}
}
