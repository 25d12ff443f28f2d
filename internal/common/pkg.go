package common

import (
	"path"
	"regexp"
	"strings"
)

// majorVersion matches the trailing major version element of a module path.
var majorVersion = regexp.MustCompile(`^v[0-9]+$`)

// Qualifier returns the prefix written before a declared type from pkgPath
// when a field type is printed, e.g. "time" for time.Time. It is empty for
// types with no package. Major version suffixes are skipped, so
// "example.com/mod/v2" gives "mod" and "gopkg.in/yaml.v3" gives "yaml".
func Qualifier(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if majorVersion.MatchString(base) {
		if dir := path.Dir(pkgPath); dir != "." {
			base = path.Base(dir)
		}
	}

	if i := strings.Index(base, ".v"); i > 0 && majorVersion.MatchString(base[i+1:]) {
		base = base[:i]
	}

	return base
}
