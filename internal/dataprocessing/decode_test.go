package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument(t *testing.T) {
	t.Run("plain utf-8", func(t *testing.T) {
		txt, err := DecodeDocument([]byte("Received Date: 2024-03-05"))
		require.NoError(t, err)
		assert.Equal(t, "Received Date: 2024-03-05", txt)
	})

	t.Run("utf-8 with BOM stripped", func(t *testing.T) {
		txt, err := DecodeDocument([]byte("\xEF\xBB\xBFreport"))
		require.NoError(t, err)
		assert.Equal(t, "report", txt)
	})

	t.Run("latin-1 fallback", func(t *testing.T) {
		// 0xE9 is é in Latin-1 and invalid as a standalone UTF-8 byte.
		txt, err := DecodeDocument([]byte{'c', 'a', 'f', 0xE9})
		require.NoError(t, err)
		assert.Equal(t, "café", txt)
	})

	t.Run("empty input", func(t *testing.T) {
		txt, err := DecodeDocument(nil)
		require.NoError(t, err)
		assert.Equal(t, "", txt)
	})
}
