// Package assets builds the http.FileSystem every file is served from.
//
// The local source wraps the working directory (or server.root) in an afero
// BasePathFs so paths stay inside it; the s3 source exposes a storage bucket
// through storage.FileSystem. Tests use afero.NewMemMapFs with NewLocal.
package assets
