package types

import "fmt"

// Scope is one of the asset domains with independently configurable paths
type Scope string

const (
	ScopeJS     Scope = "js"
	ScopeStyles Scope = "styles"
)

// Scopes lists every known scope in a stable order
var Scopes = []Scope{ScopeJS, ScopeStyles}

// ParseScope validates a scope name
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeJS, ScopeStyles:
		return Scope(s), nil
	}
	return "", fmt.Errorf("unknown scope %q (expected js or styles)", s)
}

func (s Scope) String() string {
	return string(s)
}
