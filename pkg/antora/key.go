package antora

import (
	"regexp"
)

var (
	urlPattern = regexp.MustCompile(`^(https?|file|ftp|irc)://`)

	// 2.0@
	versionPattern = regexp.MustCompile(`^(?P<version>[a-zA-Z0-9._-]*)@`)
	// component:module:
	componentModulePattern = regexp.MustCompile(`^(?P<component>[a-zA-Z0-9._-]*):(?P<module>[a-zA-Z0-9._-]*):`)
	// module:
	modulePattern = regexp.MustCompile(`^(?P<module>[a-zA-Z0-9._-]*):`)
	// family$
	familyPattern = regexp.MustCompile(`^(?P<family>example|attachment|partial|image|page)\$`)
)

// IsURL reports whether key starts with a URL scheme. URL keys are never
// resolved as module-relative references.
func IsURL(key string) bool {
	return urlPattern.MatchString(key)
}

// KeyParts is the left-to-right decomposition of a symbolic key. Each field
// is present only when its prefix pattern matched; Remainder is whatever
// text followed the matched prefixes.
type KeyParts struct {
	Version      string
	HasVersion   bool
	Component    string
	HasComponent bool
	Module       string
	HasModule    bool
	Family       Family
	HasFamily    bool
	Remainder    string
}

// ParseKey decomposes key. Parsing consumes matched prefixes strictly left
// to right: version@, then component:module: or module: (component:module:
// tried first), then family$. It never fails; an unprefixed key comes back
// with only Remainder set.
func ParseKey(key string) KeyParts {
	parts := KeyParts{}

	if m := versionPattern.FindStringSubmatch(key); m != nil {
		parts.Version = m[1]
		parts.HasVersion = true
		key = key[len(m[0]):]
	}

	if m := componentModulePattern.FindStringSubmatch(key); m != nil {
		parts.Component = m[1]
		parts.HasComponent = true
		parts.Module = m[2]
		parts.HasModule = true
		key = key[len(m[0]):]
	} else if m := modulePattern.FindStringSubmatch(key); m != nil {
		parts.Module = m[1]
		parts.HasModule = true
		key = key[len(m[0]):]
	}

	if m := familyPattern.FindStringSubmatch(key); m != nil {
		family, _ := ParseFamily(m[1])
		parts.Family = family
		parts.HasFamily = true
		key = key[len(m[0]):]
	}

	parts.Remainder = key
	return parts
}

// IsValidModuleName reports whether name is usable as a module directory
// name in a prefix (alphanumeric plus . _ -).
func IsValidModuleName(name string) bool {
	m := modulePattern.FindString(name + ":")
	return m == name+":"
}
