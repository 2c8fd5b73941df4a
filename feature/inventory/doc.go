// Package inventory is the ingestion engine behind the viewer.
//
// Export files produced by inventory scanners are decoded, classified into characters,
// weapons, echoes or items, normalized against the mapping registry and appended to an
// in-memory store. The Service owns the store and registry and serializes every mutation.
//
// # HTTP Endpoints
//
//   - POST /inventory/ingest : Ingests multipart "files" as one batch.
//   - GET /inventory : Collection counts and mapping status.
//   - GET /inventory/:category : Records of one category (supports ?q=).
//   - DELETE /inventory : Clears every collection.
//   - DELETE /inventory/:category : Clears one collection.
//   - GET /mapping : Mapping registry status.
//   - POST /mapping : Builds the registry from uploaded mapping files.
//   - POST /mapping/reload : Reloads the registry from the configured source.
//
// A Watcher can additionally ingest files dropped into a folder.
package inventory
