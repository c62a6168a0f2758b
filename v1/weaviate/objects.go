package weaviate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Object is a single record in a resource collection.
type Object struct {
	ID         string         `json:"id,omitempty"`
	Class      string         `json:"class"`
	Properties map[string]any `json:"properties"`
}

// objectList is the envelope returned by GET /v1/objects.
type objectList struct {
	Objects []Object `json:"objects"`
	// TotalResults is only populated by some server versions; pagination
	// therefore stops on a short page instead.
	TotalResults int `json:"totalResults,omitempty"`
}

// InsertObject inserts one record into its collection and returns the stored
// object including the server-assigned id.
// A restricted identity receives ErrForbidden.
func (c *Client) InsertObject(ctx context.Context, token string, object Object) (*Object, error) {
	if object.Class == "" {
		return nil, fmt.Errorf("weaviate: object class is required")
	}

	var created Object
	if err := c.do(ctx, token, http.MethodPost, "/v1/objects", object, &created); err != nil {
		return nil, err
	}

	c.logger.Debug("object inserted", nil, map[string]interface{}{
		"class": object.Class,
		"id":    created.ID,
	})

	return &created, nil
}

// ListObjects fetches up to limit records of a collection, in the order the
// server returns them. The result may be empty; reads succeed for both the
// elevated and the restricted identity.
func (c *Client) ListObjects(ctx context.Context, token, class string, limit int) ([]Object, error) {
	return c.ListObjectsPage(ctx, token, class, limit, 0)
}

// ListObjectsPage fetches one page of records starting at offset.
func (c *Client) ListObjectsPage(ctx context.Context, token, class string, limit, offset int) ([]Object, error) {
	if class == "" {
		return nil, fmt.Errorf("weaviate: class name is required")
	}
	if limit <= 0 {
		limit = 25
	}

	query := url.Values{}
	query.Set("class", class)
	query.Set("limit", fmt.Sprintf("%d", limit))
	if offset > 0 {
		query.Set("offset", fmt.Sprintf("%d", offset))
	}

	var list objectList
	path := "/v1/objects?" + query.Encode()
	if err := c.do(ctx, token, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}

	return list.Objects, nil
}
