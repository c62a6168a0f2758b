package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/weaviate-verify/v1/logger"
	"github.com/Aleph-Alpha/weaviate-verify/v1/weaviate"
)

func newDatasetClient(t *testing.T, handler http.Handler) *weaviate.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	parsed, err := url.Parse(server.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(parsed.Port())
	require.NoError(t, err)

	client, err := weaviate.NewClient(&weaviate.Config{
		Scheme:       parsed.Scheme,
		Host:         parsed.Hostname(),
		Port:         port,
		HTTPTimeoutS: 5,
	}, &logger.Logger{Zap: zap.NewNop()})
	require.NoError(t, err)

	return client
}

func TestExport_PaginatesUntilShortPage(t *testing.T) {
	// 5 stored records, page size 2 → pages of 2, 2, 1.
	stored := make([]weaviate.Object, 5)
	for i := range stored {
		stored[i] = weaviate.Object{
			ID:         strconv.Itoa(i),
			Class:      "Note",
			Properties: map[string]any{"text": strconv.Itoa(i)},
		}
	}

	var requests int
	client := newDatasetClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		end := offset + limit
		if end > len(stored) {
			end = len(stored)
		}
		page := []weaviate.Object{}
		if offset < len(stored) {
			page = stored[offset:end]
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"objects": page})
	}))

	exporter := NewExporter(client, &logger.Logger{Zap: zap.NewNop()}).WithPageSize(2)

	var buf bytes.Buffer
	count, err := exporter.Export(context.Background(), "admin-token", "Note", &buf)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.Equal(t, 3, requests)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)

	var first weaviate.Object
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "0", first.ID)
}

func TestImport_SequentialInserts(t *testing.T) {
	var inserted []weaviate.Object
	client := newDatasetClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var object weaviate.Object
		_ = json.NewDecoder(r.Body).Decode(&object)
		object.ID = strconv.Itoa(len(inserted))
		inserted = append(inserted, object)
		_ = json.NewEncoder(w).Encode(object)
	}))

	input := strings.Join([]string{
		`{"class":"Old","id":"keep-out","properties":{"text":"a"}}`,
		``,
		`{"properties":{"text":"b"}}`,
	}, "\n")

	importer := NewImporter(client, &logger.Logger{Zap: zap.NewNop()})
	count, err := importer.Import(context.Background(), "admin-token", "Note", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.Len(t, inserted, 2)
	for _, object := range inserted {
		assert.Equal(t, "Note", object.Class, "class must be rewritten to the target collection")
	}
}

func TestImport_StopsOnDenial(t *testing.T) {
	client := newDatasetClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rbac: forbidden"}`, http.StatusForbidden)
	}))

	importer := NewImporter(client, &logger.Logger{Zap: zap.NewNop()})
	input := `{"properties":{"text":"a"}}` + "\n" + `{"properties":{"text":"b"}}`

	count, err := importer.Import(context.Background(), "viewer-token", "Note", strings.NewReader(input))
	require.Error(t, err)
	assert.Equal(t, 0, count)
	assert.True(t, weaviate.IsPermissionDenied(err))
}

func TestExportClasses_WritesOneFilePerClass(t *testing.T) {
	client := newDatasetClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		class := r.URL.Query().Get("class")
		_ = json.NewEncoder(w).Encode(map[string]any{"objects": []weaviate.Object{
			{ID: "1", Class: class, Properties: map[string]any{"text": class}},
		}})
	}))

	dir := t.TempDir()
	exporter := NewExporter(client, &logger.Logger{Zap: zap.NewNop()})

	err := exporter.ExportClasses(context.Background(), "admin-token", []string{"Note", "Tag"}, dir)
	require.NoError(t, err)

	for _, class := range []string{"Note", "Tag"} {
		data, err := os.ReadFile(filepath.Join(dir, class+".ndjson"))
		require.NoError(t, err)
		assert.Contains(t, string(data), class)
	}
}
