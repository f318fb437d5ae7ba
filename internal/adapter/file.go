package adapter

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-page-lock/internal/logger"
)

type filePageLoader struct {
	path   string
	logger *logger.Logger
}

// NewFilePageLoader returns a [PageLoader] reading path from disk.
func NewFilePageLoader(path string, log *logger.Logger) PageLoader {
	return &filePageLoader{path: path, logger: log}
}

func (l *filePageLoader) Source() string {
	return l.path
}

func (l *filePageLoader) Load(ctx context.Context) ([]byte, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("error opening page file: %w", err)
	}
	defer f.Close()

	page, err := io.ReadAll(io.LimitReader(f, MaxPageSize+1))
	if err != nil {
		return nil, fmt.Errorf("error reading page file: %w", err)
	}
	if len(page) > MaxPageSize {
		return nil, fmt.Errorf("%w: %s", ErrPageTooLarge, l.path)
	}

	l.logger.Debug().Str("path", l.path).Int("bytes", len(page)).Msg("page loaded from file")
	return page, checkPage(page, l.path)
}
