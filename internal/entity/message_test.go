package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMediaFromBase64(t *testing.T) {
	m, err := NewMediaFromBase64(FileMimeType, "JVBERi0xLjQ=", "contrato.pdf")

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", m.MimeType)
	assert.Equal(t, "contrato.pdf", m.Filename)
	assert.Equal(t, []byte("%PDF-1.4"), m.Data)
	assert.False(t, m.IsImage())
}

func TestNewMediaFromBase64Rejects(t *testing.T) {
	_, err := NewMediaFromBase64(FileMimeType, "%%%", "a.pdf")
	assert.Error(t, err)

	_, err = NewMediaFromBase64(FileMimeType, "", "a.pdf")
	assert.ErrorIs(t, err, ErrEmptyMedia)
}

func TestMediaIsImage(t *testing.T) {
	assert.True(t, (&Media{MimeType: "image/jpeg"}).IsImage())
	assert.False(t, (&Media{MimeType: "application/octet-stream"}).IsImage())
}
