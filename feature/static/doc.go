// Package static serves the front-end application's files from disk.
//
// The feature mounts fiber's static handler at "/" over the serving root with
// conventional static-file semantics:
//
//   - GET / and directory paths resolve to index.html when present.
//   - Directories without an index produce a listing.
//   - Content type is inferred from the file extension.
//   - Paths with no file end as 404.
//
// Files are read per request and never modified.
package static
