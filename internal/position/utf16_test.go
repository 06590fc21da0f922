package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUTF16ToByteOffset(t *testing.T) {
	tests := []struct {
		name       string
		s          string
		utf16Col   int
		expectByte int
	}{
		{"empty string", "", 0, 0},
		{"ASCII only", "Zone,MyZone,180.0;", 5, 5},
		{"ASCII beyond end", "Zone,", 100, 5},
		{"emoji at start", "🏠 Zone", 2, 4},
		{"emoji in middle", "! see 🏠 plan", 8, 10},
		{"CJK characters", "颜色", 2, 6},
		{"negative offset", "Zone,", -1, 0},
		{"zero offset", "Zone,", 0, 0},
		{"invalid byte treated as one unit", "abc\xFFdef", 4, 4},
		{"surrogate pair boundary clamps to rune start", "🏠Zone", 1, 0},
		{"after full surrogate pair", "🏠Zone", 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectByte, UTF16ToByteOffset(tt.s, tt.utf16Col))
		})
	}
}

func TestByteOffsetToUTF16(t *testing.T) {
	tests := []struct {
		name        string
		s           string
		byteOffset  int
		expectUTF16 int
	}{
		{"empty string", "", 0, 0},
		{"ASCII only", "Zone,MyZone,180.0;", 5, 5},
		{"ASCII beyond end", "Zone,", 100, 5},
		{"emoji at start", "🏠 Zone", 4, 2},
		{"CJK characters", "颜色", 6, 2},
		{"negative offset", "Zone,", -1, 0},
		{"mid-rune offset stops before the rune", "🏠Zone", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectUTF16, ByteOffsetToUTF16(tt.s, tt.byteOffset))
		})
	}
}

func TestStringLengthUTF16(t *testing.T) {
	tests := []struct {
		name      string
		s         string
		expectLen int
	}{
		{"empty string", "", 0},
		{"ASCII only", "Zone,MyZone;", 12},
		{"single emoji", "🏠", 2},
		{"CJK characters", "颜色", 2},
		{"mixed content", "! 🏠 plan", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectLen, StringLengthUTF16(tt.s))
		})
	}
}

// The two conversions invert each other at rune boundaries.
func TestConversionRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		s         string
		positions []int // valid UTF-16 positions (at rune boundaries)
	}{
		{"ASCII", "Zone,MyZone;", []int{0, 1, 5, 11, 12}},
		{"emoji", "🏠 plan", []int{0, 2, 3, 7}}, // 1 is inside the surrogate pair
		{"CJK", "颜色 schedule", []int{0, 1, 2, 3, 11}},
		{"empty", "", []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, utf16Pos := range tt.positions {
				bytePos := UTF16ToByteOffset(tt.s, utf16Pos)
				assert.Equal(t, utf16Pos, ByteOffsetToUTF16(tt.s, bytePos),
					"round trip failed for position %d in %q", utf16Pos, tt.s)
			}
		})
	}
}
