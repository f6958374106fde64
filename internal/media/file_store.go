package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// fileStore writes images under a local directory that the router serves.
type fileStore struct {
	dir     string
	baseURL string
	logger  zerolog.Logger
}

// NewFileStore creates a store writing into dir and answering URLs under
// baseURL.
func NewFileStore(dir, baseURL string, logger zerolog.Logger) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory %s: %w", dir, err)
	}
	return &fileStore{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger.With().Str("component", "image-file-store").Logger(),
	}, nil
}

// Save writes the image to disk.
func (s *fileStore) Save(ctx context.Context, file File) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := objectName(file.Name, time.Now())
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("failed to write image")
		return "", fmt.Errorf("failed to write image %s: %w", name, err)
	}

	s.logger.Debug().
		Str("file", path).
		Int("bytes", len(file.Data)).
		Msg("image stored on local file system")

	return s.baseURL + "/" + name, nil
}
