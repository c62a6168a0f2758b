// Package identity models the credentials a verification run authenticates
// with: an elevated admin identity and a restricted viewer identity, each an
// opaque bearer token with a declared role.
//
// Tokens come from the environment (WEAVIATE_ADMIN_TOKEN,
// WEAVIATE_VIEWER_TOKEN) and are validated to be present and distinct.
package identity
