package payments

import "testing"

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "Zero"},
		{5, "Five"},
		{15, "Fifteen"},
		{20, "Twenty"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{105, "One Hundred Five"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{50000, "Fifty Thousand"},
		{52500, "Fifty Two Thousand Five Hundred"},
		{1250000, "One Million Two Hundred Fifty Thousand"},
		{2000000001, "Two Billion One"},
		{-250, "Negative Two Hundred Fifty"},
	}
	for _, tt := range tests {
		if got := numberToWords(tt.in); got != tt.want {
			t.Errorf("numberToWords(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatUGX(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0 UGX"},
		{500, "500 UGX"},
		{50000, "50,000 UGX"},
		{1250000, "1,250,000 UGX"},
	}
	for _, tt := range tests {
		if got := formatUGX(tt.in); got != tt.want {
			t.Errorf("formatUGX(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
