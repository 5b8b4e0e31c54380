package utils

import (
	"path"
	"path/filepath"
	"regexp"
)

var winAbsolutePathPrefix = regexp.MustCompile(`^[A-Za-z]:`)

// IsAbsolutePath returns if path is an absolute path in *nix and Windows file systems
func IsAbsolutePath(p string) bool {
	return path.IsAbs(p) || winAbsolutePathPrefix.MatchString(p)
}

// JoinBasePathIfRelativeRegularFilePath joins in onto base unless in is absolute or one of the
// reserved log destinations.
func JoinBasePathIfRelativeRegularFilePath(base string, in string) (out string) {
	out = in
	if in == "stdout" || in == "stderr" || in == "null" {
		return
	}

	if !IsAbsolutePath(in) {
		out = filepath.Join(base, out)
	}
	return
}
