// Package catalog provides the storefront's listing rules and the loaders
// used to seed the product catalogue.
package catalog

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"mix-store/internal/model"

	"github.com/rs/zerolog"
)

// Loader reads a catalogue seed: a JSON array of products, optionally gzipped
// when the path ends in ".gz".
type Loader interface {
	Load(ctx context.Context, path string) ([]model.Product, error)
}

// fileLoader implements Loader for seed files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a seed file from disk.
func (l *fileLoader) Load(ctx context.Context, path string) ([]model.Product, error) {
	l.logger.Info().Str("file", path).Msg("loading catalog seed")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open catalog seed")
		return nil, fmt.Errorf("failed to open catalog seed %s: %w", path, err)
	}
	defer file.Close()

	products, err := decodeProducts(ctx, file, path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode catalog seed")
		return nil, err
	}

	l.logger.Info().
		Str("file", path).
		Int("products_loaded", len(products)).
		Msg("catalog seed loaded successfully")

	return products, nil
}

// decodeProducts parses a seed stream, unwrapping gzip for ".gz" paths.
func decodeProducts(ctx context.Context, r io.Reader, path string) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.HasSuffix(path, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", path, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var products []model.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog seed %s: %w", path, err)
	}

	for i, p := range products {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("catalog seed %s: product %d is missing id or name", path, i)
		}
	}

	return products, nil
}
