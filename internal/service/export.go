package service

import (
	"bytes"
	"context"
	"html/template"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"mdlib/internal/logging"
	"mdlib/internal/storage"
)

// ExportResult describes a stored export.
type ExportResult struct {
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	Location string `json:"location"`
}

// ExportService turns rendered HTML into standalone files.
type ExportService interface {
	// ExportHTML wraps an already rendered HTML fragment in a full page with
	// a stylesheet and stores it as <title>.html.
	ExportHTML(ctx context.Context, html, title string) (*ExportResult, error)
	// Open streams a stored export. The caller closes the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error)
	// Remove deletes a stored export. Removing a missing export is not an error.
	Remove(ctx context.Context, key string) error
}

type exportService struct {
	store  storage.Storage
	log    zerolog.Logger
	expiry time.Duration
}

// NewExportService constructs a new ExportService writing to store.
func NewExportService(store storage.Storage, log zerolog.Logger) ExportService {
	return &exportService{
		store:  store,
		log:    logging.Component(log, "export"),
		expiry: 24 * time.Hour,
	}
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    body { max-width: 800px; margin: 40px auto; padding: 20px; line-height: 1.6; color: #24292e;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; }
    pre { background-color: #f6f8fa; border-radius: 6px; padding: 16px; overflow-x: auto; }
    code { background-color: #f6f8fa; padding: 0.2em 0.4em; border-radius: 3px; font-size: 85%;
      font-family: "SFMono-Regular", Consolas, "Liberation Mono", Menlo, monospace; }
    pre code { background-color: transparent; padding: 0; }
    blockquote { border-left: 4px solid #dfe2e5; padding-left: 16px; color: #6a737d; }
    table { border-collapse: collapse; width: 100%; }
    table th, table td { border: 1px solid #dfe2e5; padding: 8px 12px; }
    table th { background-color: #f6f8fa; }
    img { max-width: 100%; }
    a { color: #0366d6; text-decoration: none; }
    a:hover { text-decoration: underline; }
  </style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// RenderPage wraps body in the export page. body is trusted renderer output.
func RenderPage(body, title string) ([]byte, error) {
	if strings.TrimSpace(title) == "" {
		title = "Untitled"
	}
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: template.HTML(body)})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFileName turns a document title into a file name safe on every
// desktop file system.
func ExportFileName(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.TrimSpace(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.':
			b.WriteRune(r)
			dash = false
		case !dash:
			b.WriteRune('-')
			dash = true
		}
	}
	name := strings.Trim(b.String(), "-.")
	if runes := []rune(name); len(runes) > 100 {
		name = strings.Trim(string(runes[:100]), "-.")
	}
	if name == "" {
		name = "untitled"
	}
	return name + ".html"
}

func (s *exportService) ExportHTML(ctx context.Context, html, title string) (*ExportResult, error) {
	page, err := RenderPage(html, title)
	if err != nil {
		return nil, fail(s.log, "export.html", err)
	}

	key := ExportFileName(title)
	info, err := s.store.Put(ctx, key, bytes.NewReader(page), storage.PutObjectOptions{
		Size:        int64(len(page)),
		ContentType: "text/html; charset=utf-8",
	})
	if err != nil {
		return nil, fail(s.log, "export.html", err)
	}

	loc, err := s.store.Locate(ctx, info.Key, s.expiry)
	if err != nil {
		return nil, fail(s.log, "export.html", err)
	}

	s.log.Info().Str("op", "export.html").Str("key", info.Key).Int64("size", info.Size).Msg("document exported")
	return &ExportResult{Key: info.Key, Size: info.Size, Location: loc}, nil
}

func (s *exportService) Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	if strings.TrimSpace(key) == "" {
		return nil, storage.ObjectInfo{}, ErrKeyRequired
	}
	rc, info, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, storage.ObjectInfo{}, fail(s.log, "export.open", err)
	}
	return rc, info, nil
}

func (s *exportService) Remove(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrKeyRequired
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return fail(s.log, "export.remove", err)
	}
	s.log.Info().Str("op", "export.remove").Str("key", key).Msg("export removed")
	return nil
}
