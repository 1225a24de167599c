package entity

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// FileMimeType is stamped on every /send-file payload, whatever the filename says.
const FileMimeType = "application/pdf"

var ErrEmptyMedia = errors.New("media sem conteúdo")

type Media struct {
	MimeType string
	Data     []byte
	Filename string
}

// IsImage reports whether the media should go out as an image message instead of a document.
func (m *Media) IsImage() bool {
	return strings.HasPrefix(m.MimeType, "image/")
}

// NewMediaFromBase64 builds media from an explicit base64 blob.
func NewMediaFromBase64(mimeType, encoded, filename string) (*Media, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("base64 inválido: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyMedia
	}

	return &Media{
		MimeType: mimeType,
		Data:     data,
		Filename: filename,
	}, nil
}

// Payload is what goes to the messaging client: either Text or Media (+ optional Caption).
type Payload struct {
	Text    string
	Media   *Media
	Caption string
}

func TextPayload(text string) Payload {
	return Payload{Text: text}
}

func MediaPayload(media *Media, caption string) Payload {
	return Payload{Media: media, Caption: caption}
}
