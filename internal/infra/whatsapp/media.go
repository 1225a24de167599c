package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/vincent-petithory/dataurl"

	"github.com/xavierca1/wa-gateway/internal/entity"
)

// MaxImageBytes is WhatsApp's size ceiling for images.
const MaxImageBytes = 16 << 20

var ErrMediaTooLarge = errors.New("mídia excede o tamanho máximo")

// MediaFromURL fetches source and wraps it as media. data: URLs are decoded
// in place. The MIME type comes from the response header, or is sniffed.
func (c *Client) MediaFromURL(ctx context.Context, source string) (*entity.Media, error) {
	if strings.HasPrefix(source, "data:") {
		return mediaFromDataURL(source)
	}

	u, err := url.Parse(source)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("url de mídia inválida: %q", source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição de mídia: %w", err)
	}

	resp, err := c.fetcher.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao baixar mídia: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("download de mídia retornou status %d", resp.StatusCode)
	}

	if resp.ContentLength > c.maxMedia {
		return nil, fmt.Errorf("%w: %d bytes", ErrMediaTooLarge, resp.ContentLength)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxMedia+1))
	if err != nil {
		return nil, fmt.Errorf("erro ao ler mídia: %w", err)
	}
	if int64(len(data)) > c.maxMedia {
		return nil, fmt.Errorf("%w: mais de %d bytes", ErrMediaTooLarge, c.maxMedia)
	}
	if len(data) == 0 {
		return nil, entity.ErrEmptyMedia
	}

	return &entity.Media{
		MimeType: contentType(resp.Header.Get("Content-Type"), data),
		Data:     data,
		Filename: filenameFromPath(u.Path),
	}, nil
}

func mediaFromDataURL(source string) (*entity.Media, error) {
	du, err := dataurl.DecodeString(source)
	if err != nil {
		return nil, fmt.Errorf("data url inválida: %w", err)
	}
	if len(du.Data) == 0 {
		return nil, entity.ErrEmptyMedia
	}

	return &entity.Media{
		MimeType: du.MediaType.ContentType(),
		Data:     du.Data,
	}, nil
}

func contentType(header string, data []byte) string {
	if header != "" {
		if mt, _, err := mime.ParseMediaType(header); err == nil && mt != "application/octet-stream" {
			return mt
		}
	}
	mt, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return mt
}

func filenameFromPath(p string) string {
	base := path.Base(p)
	if base == "." || base == "/" {
		return ""
	}
	return base
}
