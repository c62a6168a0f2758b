package dataset

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Aleph-Alpha/weaviate-verify/v1/weaviate"
)

// Importer loads NDJSON records into a Weaviate collection.
type Importer struct {
	client *weaviate.Client
	logger Logger
}

// NewImporter constructs an Importer.
func NewImporter(client *weaviate.Client, logger Logger) *Importer {
	return &Importer{
		client: client,
		logger: logger,
	}
}

// Import inserts records from r sequentially and returns how many were
// written. It stops at the first failed insert so a permission rejection
// surfaces immediately instead of being buried in a partial load.
func (i *Importer) Import(ctx context.Context, token, class string, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	total := 0
	line := 0

	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var object weaviate.Object
		if err := json.Unmarshal(raw, &object); err != nil {
			return total, fmt.Errorf("dataset: line %d: decode record: %w", line, err)
		}
		object.Class = class
		// Server-assigned ids keep re-imports collision-free.
		object.ID = ""

		if _, err := i.client.InsertObject(ctx, token, object); err != nil {
			return total, fmt.Errorf("dataset: line %d: %w", line, err)
		}
		total++
	}

	if err := scanner.Err(); err != nil {
		return total, fmt.Errorf("dataset: read input: %w", err)
	}

	i.logger.Info("collection imported", nil, map[string]interface{}{
		"class":   class,
		"records": total,
	})

	return total, nil
}
