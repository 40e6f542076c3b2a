package lexnum

import (
	"testing"

	"github.com/joshuapare/numkit/pkg/types"
)

func TestHexU32(t *testing.T) {
	tests := []struct {
		in   string
		rest string
		want uint32
	}{
		{"ff;", ";", 255},
		{"1be2;", ";", 7138},
		{"c5a31be2;", ";", 3_315_801_058},
		{"C5A31be2;", ";", 3_315_801_058},
		{"00c5a31be2;", "e2;", 12_952_347},
		{"c5a31be201;", "01;", 3_315_801_058},
		{"ffffffff;", ";", 4_294_967_295},
		{"0x1be2;", "x1be2;", 0},
		{"123456789", "9", 0x12345678},
		{"12345678", "", 0x12345678},
	}
	for _, tt := range tests {
		rest, got, err := HexU32([]byte(tt.in), false)
		if err != nil {
			t.Fatalf("HexU32(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("HexU32(%q) = 0x%x, want 0x%x", tt.in, got, tt.want)
		}
		if string(rest) != tt.rest {
			t.Errorf("HexU32(%q) rest = %q, want %q", tt.in, rest, tt.rest)
		}
	}
}

func TestHexU32_Incomplete(t *testing.T) {
	for _, in := range []string{"", "12af", "a"} {
		_, _, err := HexU32([]byte(in), false)
		need, ok := types.IsIncomplete(err)
		if !ok || need != 1 {
			t.Errorf("HexU32(%q) = %v, want Incomplete(1)", in, err)
		}
	}
}

func TestHexU32_Final(t *testing.T) {
	rest, got, err := HexU32([]byte("12af"), true)
	if err != nil {
		t.Fatalf("HexU32 final: %v", err)
	}
	if got != 0x12af || len(rest) != 0 {
		t.Fatalf("HexU32 final = 0x%x rest %q", got, rest)
	}

	_, _, err = HexU32(nil, true)
	if kind, ok := types.KindOf(err); !ok || kind != types.KindIsA || !types.IsRecoverable(err) {
		t.Fatalf("HexU32(nil, final) = %v, want IsA error", err)
	}
}

func TestHexU32_NotHex(t *testing.T) {
	_, _, err := HexU32([]byte(";"), false)
	if kind, ok := types.KindOf(err); !ok || kind != types.KindIsA {
		t.Fatalf("HexU32(;) = %v, want IsA", err)
	}
	if !types.IsRecoverable(err) {
		t.Fatalf("HexU32(;) should be recoverable")
	}
	if _, ok := types.IsIncomplete(err); ok {
		t.Fatalf("HexU32(;) must not be incomplete")
	}
}
