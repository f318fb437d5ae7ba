package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-page-lock/internal/config"
	"github.com/MKhiriev/go-page-lock/internal/logger"
)

// MaxPageSize bounds how much of a page is read into memory.
const MaxPageSize = 64 << 20

// NewPageLoader returns an HTTP loader for http(s) URLs and a file loader
// for everything else, including file:// URLs.
func NewPageLoader(cfg config.ViewerPage, log *logger.Logger) (PageLoader, error) {
	source := strings.TrimSpace(cfg.Source)
	if source == "" {
		return nil, ErrEmptySource
	}

	u, err := url.Parse(source)
	if err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return NewHTTPPageLoader(source, cfg.RequestTimeout, log), nil
		case "file":
			return NewFilePageLoader(u.Path, log), nil
		}
	}

	return NewFilePageLoader(source, log), nil
}

func checkPage(page []byte, source string) error {
	if len(page) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyPage, source)
	}
	return nil
}

func ctxErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("page load cancelled: %w", err)
	}
	return nil
}
