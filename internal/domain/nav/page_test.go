package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	assert.Equal(t, PageGallery, ParsePage("gallery"))
	assert.Equal(t, PageArtistProfile, ParsePage("artistProfile"))
	assert.Equal(t, PageHome, ParsePage("nowhere"))
	assert.Equal(t, PageHome, ParsePage(""))
}

func TestParseModal(t *testing.T) {
	m, ok := ParseModal("signup")
	assert.True(t, ok)
	assert.Equal(t, ModalSignup, m)

	_, ok = ParseModal("settings")
	assert.False(t, ok)
}
