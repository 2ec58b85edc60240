//go:build !unix

package output

// Best-effort fallback for non-Unix platforms: there is no access(2), so
// permission errors surface from the temp file creation instead.
func checkWritable(dir string) error { return nil }
