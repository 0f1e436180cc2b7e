package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_CollapsesAndLowercases(t *testing.T) {
	assert.Equal(t, "hello world", normalizeText("  Hello\t  World "))
}

func TestNormalizeText_Empty(t *testing.T) {
	assert.Equal(t, "", normalizeText("   \t\n  "))
}

func TestNormalizeLine_PreservesCase(t *testing.T) {
	assert.Equal(t, "Hello World", normalizeLine("  Hello\t  World "))
}

func TestSplitLines_NormalizesEndingsAndDropsBlanks(t *testing.T) {
	lines := splitLines("a\r\nb\rc\n\n d \n\t\n")
	assert.Equal(t, []string{"a", "b", "c", "d"}, lines)
}

func TestSplitLines_ReplacesTabs(t *testing.T) {
	lines := splitLines("one\ttwo")
	assert.Equal(t, []string{"one two"}, lines)
}

func TestSplitLines_Empty(t *testing.T) {
	assert.Empty(t, splitLines(""))
}
