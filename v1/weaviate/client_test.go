package weaviate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/weaviate-verify/v1/logger"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	parsed, err := url.Parse(server.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(parsed.Port())
	require.NoError(t, err)

	client, err := NewClient(&Config{
		Scheme:       parsed.Scheme,
		Host:         parsed.Hostname(),
		Port:         port,
		HTTPTimeoutS: 5,
	}, &logger.Logger{Zap: zap.NewNop()})
	require.NoError(t, err)

	return client, server
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(&Config{Scheme: "http"}, &logger.Logger{Zap: zap.NewNop()})
	require.Error(t, err)
}

func TestMeta_Success(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/meta", r.URL.Path)
		assert.Equal(t, "Bearer token-a", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]string{"version": "1.28.1", "hostname": "node1"})
	}))

	meta, err := client.Meta(context.Background(), "token-a")
	require.NoError(t, err)
	assert.Equal(t, "1.28.1", meta.Version)
	assert.Equal(t, "node1", meta.Hostname)
}

func TestMeta_MissingTokenUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"version": "1.28.1"})
	}))

	_, err := client.Meta(context.Background(), "")
	require.Error(t, err)
	assert.True(t, IsAuthFailure(err))
	assert.False(t, IsPermissionDenied(err))

	meta, err := client.Meta(context.Background(), "valid")
	require.NoError(t, err)
	assert.NotEmpty(t, meta.Version)
}

func TestCreateClass_Forbidden(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rbac: forbidden"}`, http.StatusForbidden)
	}))

	err := client.CreateClass(context.Background(), "viewer-token", Class{Class: "Note"})
	require.Error(t, err)
	assert.True(t, IsPermissionDenied(err))

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, 403, statusErr.Code)
	assert.Contains(t, statusErr.Body, "forbidden")
}

func TestDeleteClass_MissingClassTolerated(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"class not found"}`, http.StatusNotFound)
	}))

	err := client.DeleteClass(context.Background(), "admin-token", "Ghost")
	assert.NoError(t, err)
}

func TestEnsureClass_DeletesThenCreates(t *testing.T) {
	var calls []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPost {
			var class Class
			_ = json.NewDecoder(r.Body).Decode(&class)
			assert.Equal(t, "Note", class.Class)
			_ = json.NewEncoder(w).Encode(class)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	err := client.EnsureClass(context.Background(), "admin-token", Class{
		Class:      "Note",
		Properties: []Property{{Name: "text", DataType: []string{"text"}}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"DELETE /v1/schema/Note", "POST /v1/schema"}, calls)
}

func TestInsertObject_ReturnsAssignedID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var object Object
		_ = json.NewDecoder(r.Body).Decode(&object)
		object.ID = "0b7235f9"
		_ = json.NewEncoder(w).Encode(object)
	}))

	created, err := client.InsertObject(context.Background(), "admin-token", Object{
		Class:      "Note",
		Properties: map[string]any{"text": "a"},
	})
	require.NoError(t, err)
	assert.Equal(t, "0b7235f9", created.ID)
	assert.Equal(t, "a", created.Properties["text"])
}

func TestListObjects_EmptyResult(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Note", r.URL.Query().Get("class"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode(map[string]any{"objects": []Object{}})
	}))

	objects, err := client.ListObjects(context.Background(), "viewer-token", "Note", 25)
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestListObjectsPage_SetsOffset(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "50", r.URL.Query().Get("offset"))
		_ = json.NewEncoder(w).Encode(map[string]any{"objects": []Object{{Class: "Note"}}})
	}))

	objects, err := client.ListObjectsPage(context.Background(), "t", "Note", 25, 50)
	require.NoError(t, err)
	assert.Len(t, objects, 1)
}

func TestDo_TransportFailure(t *testing.T) {
	client, server := newTestClient(t, http.NotFoundHandler())
	server.Close()

	_, err := client.Meta(context.Background(), "token")
	require.Error(t, err)
	assert.True(t, IsConnectionFailure(err))
	assert.False(t, IsPermissionDenied(err), "transport failure must not look like a denial")
}

func TestBackupStatus_Terminal(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/backups/s3/nightly-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Backup{ID: "nightly-1", Status: BackupSuccess, Path: "s3://backups/nightly-1"})
	}))

	backup, err := client.BackupStatus(context.Background(), "admin-token", "s3", "nightly-1")
	require.NoError(t, err)
	assert.Equal(t, BackupSuccess, backup.Status)
}

func TestWaitForBackup_PollsUntilSuccess(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		status := BackupTransferring
		if calls >= 3 {
			status = BackupSuccess
		}
		_ = json.NewEncoder(w).Encode(Backup{ID: "b1", Status: status})
	}))

	backup, err := client.WaitForBackup(context.Background(), "admin-token", "s3", "b1", 1)
	require.NoError(t, err)
	assert.Equal(t, BackupSuccess, backup.Status)
	assert.GreaterOrEqual(t, calls, 3)
}
