package route

import "strings"

// Top-level route prefixes the console serves.
var Prefixes = []string{
	"/",
	"/auth",
	"/console",
	"/docs",
	"/legal",
	"/repo",
}

// RepoURL is the external target of the /repo shortcut.
const RepoURL = "https://github.com/benchdash/benchdash"

// External maps shortcut paths to targets outside the console.
func External(path string) (string, bool) {
	if path == "/repo" {
		return RepoURL, true
	}
	return "", false
}

// IsConsole reports whether path lives under the authenticated
// console tree.
func IsConsole(path string) bool {
	return path == "/console" || strings.HasPrefix(path, "/console/")
}

// IsAuth reports whether path is one of the authentication pages.
func IsAuth(path string) bool {
	return path == "/auth" || strings.HasPrefix(path, "/auth/")
}
