// Package media stores uploaded images and hands back public URLs.
package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxImages is the number of images accepted per upload.
const MaxImages = 10

// File is one uploaded image held in memory.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Store persists images.
type Store interface {
	// Save stores the file and returns the URL clients should use.
	Save(ctx context.Context, file File) (string, error)
}

// SaveAll stores every file in order and returns their URLs. It stops at the
// first failure.
func SaveAll(ctx context.Context, store Store, files []File) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := store.Save(ctx, f)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// objectName builds a collision free name that keeps the original extension.
func objectName(original string, now time.Time) string {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	ext := strings.ToLower(filepath.Ext(base))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if ext == "." {
		ext = ""
	}
	stem = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, stem)
	if stem == "" {
		stem = "image"
	}
	return fmt.Sprintf("%s-%s-%s%s", now.UTC().Format("20060102T150405"), uuid.NewString()[:8], stem, ext)
}
