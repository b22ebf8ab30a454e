package eddy

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var rawVersion string

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(-[0-9A-Za-z]+(\.[0-9A-Za-z-]+)*)?(\+[0-9A-Za-z]+(\.[0-9A-Za-z-]+)*)?$`)

// Version returns the library version in SemVer form, without the leading v.
func Version() string {
	return strings.TrimSpace(rawVersion)
}

// VersionTag returns Version in git tag form (with the leading v).
func VersionTag() string {
	return "v" + Version()
}

func versionValid(v string) bool {
	return semverRE.MatchString(v)
}
