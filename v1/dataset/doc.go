// Package dataset moves collection records in and out of Weaviate as NDJSON.
//
// Export paginates through a collection and writes one JSON object per line;
// ExportClasses fans multiple collections out to files with bounded
// concurrency. Import reads the same format back, inserting sequentially so
// that a permission rejection surfaces immediately.
//
// Both operations run under an explicit bearer token, same as the client.
package dataset
