package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-page-lock/internal/logger"
	"github.com/MKhiriev/go-page-lock/internal/utils"
)

type httpPageLoader struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

// NewHTTPPageLoader returns a [PageLoader] fetching pageURL with a GET
// request bounded by timeout.
func NewHTTPPageLoader(pageURL string, timeout time.Duration, log *logger.Logger) PageLoader {
	client := utils.NewHTTPClient(timeout)
	client.SetHeader("Accept", "text/html, application/xhtml+xml;q=0.9, */*;q=0.5")
	client.SetResponseBodyLimit(MaxPageSize)

	return &httpPageLoader{
		client: client,
		url:    pageURL,
		logger: log,
	}
}

func (l *httpPageLoader) Source() string {
	return l.url
}

func (l *httpPageLoader) Load(ctx context.Context) ([]byte, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	resp, err := l.client.R().
		SetContext(ctx).
		Get(l.url)
	if err != nil {
		return nil, fmt.Errorf("error fetching page: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	page := resp.Body()
	l.logger.Debug().
		Str("url", l.url).
		Int("status", resp.StatusCode()).
		Int("bytes", len(page)).
		Msg("page loaded over http")

	return page, checkPage(page, l.url)
}
