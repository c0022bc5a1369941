package textx_test

import (
	"testing"

	"github.com/katalvlaran/gangaji/textx"
	"github.com/stretchr/testify/assert"
)

// TestReverse_KnownValues verifies fixed reversal cases including the
// empty and single-character inputs.
func TestReverse_KnownValues(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"hello", "olleh"},
		{"", ""},
		{"a", "a"},
		{"ab", "ba"},
		{"Hello World", "dlroW olleH"},
		{"12345", "54321"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, textx.Reverse(c.in), "Reverse(%q)", c.in)
	}
}

// TestReverse_Involution checks Reverse(Reverse(s)) == s across
// representative inputs.
func TestReverse_Involution(t *testing.T) {
	inputs := []string{"", "a", "hello", "racecar", "Hello World", "  spaced  ", "a1b2c3"}
	for _, s := range inputs {
		assert.Equal(t, s, textx.Reverse(textx.Reverse(s)), "double Reverse(%q) must restore input", s)
	}
}

// TestReverse_DoesNotMutate ensures the input string is left intact.
func TestReverse_DoesNotMutate(t *testing.T) {
	in := "hello"
	_ = textx.Reverse(in)
	assert.Equal(t, "hello", in, "input must never be mutated")
}

// TestToUpper_KnownValues verifies ASCII uppercase mapping and
// pass-through of non-letters.
func TestToUpper_KnownValues(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"hello", "HELLO"},
		{"Hello World", "HELLO WORLD"},
		{"", ""},
		{"ALREADY", "ALREADY"},
		{"mix3d_0utput!", "MIX3D_0UTPUT!"},
		{"abc-XYZ", "ABC-XYZ"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, textx.ToUpper(c.in), "ToUpper(%q)", c.in)
	}
}

// TestToLower_KnownValues verifies ASCII lowercase mapping and
// pass-through of non-letters.
func TestToLower_KnownValues(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"HELLO", "hello"},
		{"Hello World", "hello world"},
		{"", ""},
		{"already", "already"},
		{"MIX3D_0UTPUT!", "mix3d_0utput!"},
		{"ABC-xyz", "abc-xyz"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, textx.ToLower(c.in), "ToLower(%q)", c.in)
	}
}

// TestCase_Idempotence checks that applying a case transform twice equals
// applying it once.
func TestCase_Idempotence(t *testing.T) {
	inputs := []string{"", "hello", "HELLO", "Hello World", "a1B2c3", "ünïcode stays"}
	for _, s := range inputs {
		up := textx.ToUpper(s)
		assert.Equal(t, up, textx.ToUpper(up), "ToUpper must be idempotent on %q", s)

		low := textx.ToLower(s)
		assert.Equal(t, low, textx.ToLower(low), "ToLower must be idempotent on %q", s)
	}
}

// TestCase_NonASCIIPassThrough ensures multi-byte UTF-8 sequences survive
// both case transforms byte for byte.
func TestCase_NonASCIIPassThrough(t *testing.T) {
	in := "héllo wörld"
	assert.Equal(t, "HéLLO WöRLD", textx.ToUpper(in), "only ASCII letters change")
	assert.Equal(t, "héllo wörld", textx.ToLower(in), "already-lower ASCII stays")
}
