package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.AmericanEnglish)

	assert.Equal("step 3 'addr 1 2 3'", From("step %d '%v'", 3, "addr 1 2 3"))
	assert.Equal("id 12 unassigned", From("id %d unassigned", 12))
	assert.Equal("1,234 samples", From("%d samples", 1234))
}
