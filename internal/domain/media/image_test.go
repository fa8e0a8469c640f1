package media

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG signature + IHDR chunk header is enough for sniffing
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestSaveStoresImages(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	img, err := s.Save(bytes.NewReader(pngHeader))
	require.NoError(t, err)

	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, int64(len(pngHeader)), img.Size)
	assert.True(t, strings.HasPrefix(img.URL(), "/media/"))
	assert.True(t, strings.HasSuffix(img.URL(), ".png"))

	onDisk, err := os.ReadFile(img.OriginalPath)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, onDisk)
}

func TestSaveRejectsNonImages(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	_, err := s.Save(strings.NewReader("just some text"))
	assert.ErrorIs(t, err, ErrNotAnImage)
}
