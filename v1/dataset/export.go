package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/weaviate-verify/v1/weaviate"
)

const (
	defaultPageSize           = 100
	maxConcurrentClassExports = 4
)

// Logger defines the interface for logging operations in the dataset package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Exporter streams collection records out of Weaviate as NDJSON: one JSON
// object per line, in server order.
type Exporter struct {
	client   *weaviate.Client
	logger   Logger
	pageSize int
}

// NewExporter constructs an Exporter with the default page size.
func NewExporter(client *weaviate.Client, logger Logger) *Exporter {
	return &Exporter{
		client:   client,
		logger:   logger,
		pageSize: defaultPageSize,
	}
}

// WithPageSize overrides how many records are fetched per request.
func (e *Exporter) WithPageSize(n int) *Exporter {
	if n > 0 {
		e.pageSize = n
	}
	return e
}

// Export writes all records of one collection to w and returns the count.
// Pagination stops on the first short page.
func (e *Exporter) Export(ctx context.Context, token, class string, w io.Writer) (int, error) {
	encoder := json.NewEncoder(w)
	total := 0

	for offset := 0; ; offset += e.pageSize {
		objects, err := e.client.ListObjectsPage(ctx, token, class, e.pageSize, offset)
		if err != nil {
			return total, fmt.Errorf("dataset: export %s at offset %d: %w", class, offset, err)
		}

		for _, object := range objects {
			if err := encoder.Encode(object); err != nil {
				return total, fmt.Errorf("dataset: encode record: %w", err)
			}
			total++
		}

		if len(objects) < e.pageSize {
			break
		}
	}

	e.logger.Info("collection exported", nil, map[string]interface{}{
		"class":   class,
		"records": total,
	})

	return total, nil
}

// ExportClasses exports several collections into dir, one <Class>.ndjson per
// collection, with bounded concurrency. Unlike a verification run there is no
// ordering requirement here, so classes are fetched in parallel.
func (e *Exporter) ExportClasses(ctx context.Context, token string, classes []string, dir string) error {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentClassExports)

	for _, class := range classes {
		group.Go(func() error {
			path := filepath.Join(dir, class+".ndjson")

			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("dataset: create %s: %w", path, err)
			}
			defer file.Close()

			if _, err := e.Export(ctx, token, class, file); err != nil {
				return err
			}
			return file.Close()
		})
	}

	return group.Wait()
}
