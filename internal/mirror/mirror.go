// Package mirror maps archive URLs onto a local directory tree and
// creates it on disk.
package mirror

import (
	"os"
	"path/filepath"
	"strings"
)

// archiveSegment is the top-level archive folder name on the remote
// server. It reappears inside translated paths when a listing carries
// absolute links, and marks bare archive-root links that must not be
// materialized.
const archiveSegment = "DRLL/"

// remoteMarker flags a translated path that still contains a piece of
// the remote URL, i.e. a URL that was not under the base prefix. The
// scheme separator can never occur in a clean local path, while path
// fragments of the remote host (such as "ftp") can legitimately appear
// in a root directory.
const remoteMarker = "://"

// LocalPath translates a remote URL below baseURL into a path under
// rootDir. Pure; the caller is responsible for only passing URLs that
// contain the base prefix.
func LocalPath(rawURL, rootDir, baseURL string) string {
	root := rootDir
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}
	p := strings.Replace(rawURL, baseURL, root, 1)
	return strings.ReplaceAll(p, archiveSegment, "")
}

// DirPaths translates directory URLs for materialization, dropping the
// bare archive-root link and anything that did not translate cleanly.
func DirPaths(dirURLs []string, rootDir, baseURL string) []string {
	root := rootDir
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}

	var paths []string
	for _, u := range dirURLs {
		if strings.HasSuffix(u, archiveSegment) {
			continue
		}
		p := strings.Replace(u, baseURL, root, 1)
		if strings.Contains(p, remoteMarker) {
			continue
		}
		paths = append(paths, strings.ReplaceAll(p, archiveSegment, ""))
	}
	return paths
}

// Materialize creates every directory in paths, parents included.
// Existing directories are fine.
func Materialize(paths []string) error {
	for _, p := range paths {
		if err := os.MkdirAll(filepath.FromSlash(p), 0o755); err != nil {
			return err
		}
	}
	return nil
}
