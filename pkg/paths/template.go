package paths

import (
	"sort"
	"strings"
)

// Tokens maps template token names to their replacement, e.g.
// {"cartridge": "app_custom"} for "{cartridge}".
type Tokens map[string]string

// Substitute replaces every "{name}" occurrence in template with the
// matching token value. Unknown tokens are left untouched.
func Substitute(template string, tokens Tokens) string {
	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		pairs = append(pairs, "{"+name+"}", tokens[name])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// HasMagic reports whether p contains glob meta characters
func HasMagic(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

// SplitAtMainDir splits p around the first "/<mainDirName>/" segment.
// prefix runs up to and including the main directory name and rest is
// everything after its trailing slash. A path starting with
// "<mainDirName>/" matches as well. ok is false when the segment is
// absent.
func SplitAtMainDir(p, mainDirName string) (prefix, rest string, ok bool) {
	if mainDirName == "" {
		return "", "", false
	}

	marker := "/" + mainDirName + "/"
	idx := strings.Index("/"+p, marker)
	if idx < 0 {
		return "", "", false
	}

	// idx is in "/"+p coordinates; shift back by one for p
	end := idx - 1 + len(marker)
	return p[:end-1], p[end:], true
}
