// Package mapping resolves raw exporter ids to display names.
//
// The Registry is built from optional auxiliary dictionaries: slug->id files for
// characters, echoes and sonata sets, slug->object files for weapons and items, a
// passthrough echo-stat label file and a character portrait manifest. Each Build merges
// into what is already loaded.
//
// # Readiness
//
// Until a build adds at least one entry the registry is not ready and Resolve returns its
// input unchanged, so records ingested before mappings arrive simply show raw ids.
//
// # Providers
//
//   - DirProvider: a local data folder (characters.json, weapons.json, ...).
//   - BucketProvider: the same layout in an object storage bucket.
//
// Files are fetched concurrently and missing ones are skipped; the registry is built from
// whatever subset loaded.
package mapping
