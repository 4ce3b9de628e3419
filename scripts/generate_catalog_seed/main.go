package main

import (
	"compress/gzip"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"mix-store/internal/catalog"
	"mix-store/internal/model"
)

// Writes the built-in inventory as a catalogue seed file that CATALOG_SEED_PATH
// (or the S3 bucket) can serve. A ".gz" suffix produces a gzipped seed.
func main() {
	out := flag.String("out", "data/catalog/products.json.gz", "seed file to write")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	products := catalog.DefaultProducts()
	if err := writeSeed(*out, products); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	fmt.Printf("Created %s with %d products\n", *out, len(products))
	for _, c := range catalog.Categories(products)[1:] {
		fmt.Printf("  - %s (%d)\n", c, len(catalog.Filter(products, c)))
	}
}

func writeSeed(path string, products []model.Product) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	var w io.Writer = file
	if strings.HasSuffix(path, ".gz") {
		gzipWriter := gzip.NewWriter(file)
		defer gzipWriter.Close()
		w = gzipWriter
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(products); err != nil {
		return fmt.Errorf("failed to encode products: %w", err)
	}

	return nil
}
