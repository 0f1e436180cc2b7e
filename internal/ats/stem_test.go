package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStemWord_ShortWordsUnchanged(t *testing.T) {
	assert.Equal(t, "cat", stemWord("cat"))
	assert.Equal(t, "sql", stemWord("sql"))
}

func TestStemWord_IesToY(t *testing.T) {
	assert.Equal(t, "study", stemWord("studies"))
	assert.Equal(t, "activity", stemWord("activities"))
}

func TestStemWord_Sses(t *testing.T) {
	assert.Equal(t, "class", stemWord("classes"))
}

func TestStemWord_Ing(t *testing.T) {
	assert.Equal(t, "manag", stemWord("managing"))
	// Too short for the ing rule; falls through to the s rule check.
	assert.Equal(t, "boking", stemWord("boking"))
}

func TestStemWord_Ed(t *testing.T) {
	assert.Equal(t, "manag", stemWord("managed"))
	// len must exceed 5 for the ed rule.
	assert.Equal(t, "used", stemWord("used"))
}

func TestStemWord_PluralS(t *testing.T) {
	assert.Equal(t, "booking", stemWord("bookings"))
	assert.Equal(t, "supplier", stemWord("suppliers"))
}

func TestStemWord_FirstMatchWins(t *testing.T) {
	// "ies" applies before the bare "s" rule.
	assert.Equal(t, "company", stemWord("companies"))
}
