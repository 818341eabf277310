package internal

import (
	"math"
	"testing"
)

func TestAppendString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Empty", "", `""`},
		{"Plain", "abc", `"abc"`},
		{"Quote", `say "hi"`, `"say \"hi\""`},
		{"Backslash", `a\b`, `"a\\b"`},
		{"Newline", "a\nb", `"a\nb"`},
		{"AllShortEscapes", "\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"Null", "\x00", `"\u0000"`},
		{"VerticalTab", "\x0b", `"\u000b"`},
		{"UnitSeparator", "\x1f", `"\u001f"`},
		{"Space", " ", `" "`},
		{"HTMLUntouched", "<a>&", `"<a>&"`},
		{"UTF8Untouched", "日本", `"日本"`},
		{"InvalidUTF8Untouched", "\xff", "\"\xff\""},
		{"EscapeAtEnd", "abc\n", `"abc\n"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(AppendString(nil, tt.in))
			if got != tt.want {
				t.Errorf("AppendString(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}

	t.Run("AppendsToPrefix", func(t *testing.T) {
		got := string(AppendString([]byte("k="), "v"))
		if got != `k="v"` {
			t.Errorf("got %s", got)
		}
	})
}

func TestNeedsEscape(t *testing.T) {
	if NeedsEscape("plain text ✓") {
		t.Error("plain text should not need escaping")
	}
	for _, s := range []string{"\"", "\\", "\n", "\x01", "x\x1f"} {
		if !NeedsEscape(s) {
			t.Errorf("%q should need escaping", s)
		}
	}
}

func TestAppendNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{2, "2"},
		{-17, "-17"},
		{1.05, "1.05"},
		{-0.25, "-0.25"},
		{1e-7, "1e-07"},
		{9007199254740992, "9007199254740992"},
		{-9223372036854775808, "-9223372036854775808"},
		{9223372036854775808, "9.223372036854776e+18"},
		{1e100, "1e+100"},
		{math.NaN(), "null"},
		{math.Inf(1), "null"},
		{math.Inf(-1), "null"},
	}

	for _, tt := range tests {
		if got := string(AppendNumber(nil, tt.in)); got != tt.want {
			t.Errorf("AppendNumber(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestIsIntegral(t *testing.T) {
	tests := []struct {
		in   float64
		want bool
	}{
		{1, true},
		{-1, true},
		{1.5, false},
		{math.MaxInt32, true},
		{-9223372036854775808, true},
		{9223372036854775808, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}

	for _, tt := range tests {
		if got := IsIntegral(tt.in); got != tt.want {
			t.Errorf("IsIntegral(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTruncInt(t *testing.T) {
	tests := []struct {
		in   float64
		bits int
		want int64
	}{
		{2.9, 64, 2},
		{-2.9, 64, -2},
		{127.9, 8, 127},
		{128, 8, math.MaxInt8},
		{-129, 8, math.MinInt8},
		{40000, 16, math.MaxInt16},
		{-1e10, 32, math.MinInt32},
		{1e19, 64, math.MaxInt64},
		{-1e19, 64, math.MinInt64},
		{math.Inf(1), 64, math.MaxInt64},
		{math.NaN(), 32, 0},
	}

	for _, tt := range tests {
		if got := TruncInt(tt.in, tt.bits); got != tt.want {
			t.Errorf("TruncInt(%v, %d) = %d, want %d", tt.in, tt.bits, got, tt.want)
		}
	}
}

func TestTruncUint(t *testing.T) {
	tests := []struct {
		in   float64
		bits int
		want uint64
	}{
		{2.9, 64, 2},
		{-2.9, 64, 0},
		{255.5, 8, 255},
		{256, 8, math.MaxUint8},
		{70000, 16, math.MaxUint16},
		{1e20, 64, math.MaxUint64},
		{math.Inf(1), 32, math.MaxUint32},
		{math.NaN(), 64, 0},
	}

	for _, tt := range tests {
		if got := TruncUint(tt.in, tt.bits); got != tt.want {
			t.Errorf("TruncUint(%v, %d) = %d, want %d", tt.in, tt.bits, got, tt.want)
		}
	}
}

func BenchmarkAppendString(b *testing.B) {
	buf := make([]byte, 0, 256)
	s := "a moderately long string with a \"quote\" and a\nnewline"

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = AppendString(buf[:0], s)
	}
}

func BenchmarkAppendNumber(b *testing.B) {
	buf := make([]byte, 0, 32)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = AppendNumber(buf[:0], float64(i)*1.5)
	}
}
