package weaviate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Property describes one attribute of a schema class.
type Property struct {
	Name        string   `json:"name"`
	DataType    []string `json:"dataType"`
	Description string   `json:"description,omitempty"`
}

// Class describes one resource collection in the Weaviate schema.
type Class struct {
	Class       string     `json:"class"`
	Description string     `json:"description,omitempty"`
	Vectorizer  string     `json:"vectorizer,omitempty"`
	Properties  []Property `json:"properties,omitempty"`
}

// Schema is the full collection listing returned by GET /v1/schema.
type Schema struct {
	Classes []Class `json:"classes"`
}

// GetSchema fetches the full schema under the given token.
func (c *Client) GetSchema(ctx context.Context, token string) (*Schema, error) {
	var schema Schema
	if err := c.do(ctx, token, http.MethodGet, "/v1/schema", nil, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// GetClass fetches a single class definition. Returns ErrNotFound if the
// class does not exist.
func (c *Client) GetClass(ctx context.Context, token, name string) (*Class, error) {
	var class Class
	path := "/v1/schema/" + url.PathEscape(name)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &class); err != nil {
		return nil, err
	}
	return &class, nil
}

// CreateClass requests creation of a named resource collection.
// A restricted identity receives ErrForbidden.
func (c *Client) CreateClass(ctx context.Context, token string, class Class) error {
	if class.Class == "" {
		return fmt.Errorf("weaviate: class name is required")
	}

	if err := c.do(ctx, token, http.MethodPost, "/v1/schema", class, nil); err != nil {
		return err
	}

	c.logger.Debug("class created", nil, map[string]interface{}{
		"class": class.Class,
	})

	return nil
}

// DeleteClass removes a class and all of its objects. A missing class is not
// an error; deletion only has to guarantee absence.
func (c *Client) DeleteClass(ctx context.Context, token, name string) error {
	path := "/v1/schema/" + url.PathEscape(name)
	err := c.do(ctx, token, http.MethodDelete, path, nil, nil)
	if err != nil && !IsNotFound(err) {
		return err
	}
	return nil
}

// EnsureClass makes class creation idempotent: a pre-existing collection of
// the same name is deleted first, then the class is created fresh.
func (c *Client) EnsureClass(ctx context.Context, token string, class Class) error {
	if err := c.DeleteClass(ctx, token, class.Class); err != nil {
		return fmt.Errorf("weaviate: delete before create: %w", err)
	}
	return c.CreateClass(ctx, token, class)
}
