package graph

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234567, "1,234,567"},
		{999, "999"},
		{1000, "1,000"},
		{0, "0"},
		{2, "2"},
		{2.5, "2.5"},
		{-1234.5, "-1,234.5"},
		{-123, "-123"},
		{123456, "123,456"},
		{1.000004, "1"},
		{0.000006, "0.00001"},
		{1.25, "1.25"},
		{0.333333333, "0.33333"},
		{-0.000001, "0"},
		{12345678901, "12,345,678,901"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Inf"},
		{math.Inf(-1), "-Inf"},
	}
	for _, tc := range tests {
		if got := Format(tc.in); got != tc.want {
			t.Fatalf("Format(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGroupThousands(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"1":       "1",
		"12":      "12",
		"123":     "123",
		"1234":    "1,234",
		"12345":   "12,345",
		"123456":  "123,456",
		"1234567": "1,234,567",
	}
	for in, want := range tests {
		if got := groupThousands(in); got != want {
			t.Fatalf("groupThousands(%q) = %q, want %q", in, got, want)
		}
	}
}
