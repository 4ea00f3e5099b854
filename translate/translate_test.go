package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/language"
)

func TestUse(t *testing.T) {
	assert := assert.New(t)

	saved := current.Load()
	defer current.Store(saved)

	Use("en-US")
	base, _ := Language().Base()
	assert.Equal(language.English.String(), base.String())
	assert.Equal("line 3 'XYZ' bad", From("line %v '%v' %v", 3, "XYZ", "bad"))

	// No tags keeps the current language.
	tag := Language()
	Use()
	assert.Equal(tag, Language())
}
