package types

// Entry is a bundler entry point: either one source file or an ordered
// list of them. Multi records which shape the bundler should receive,
// so a list holding a single path still renders as a list.
type Entry struct {
	Paths []string
	Multi bool
}

// SingleEntry returns an entry rendered as a plain path
func SingleEntry(path string) Entry {
	return Entry{Paths: []string{path}}
}

// MultiEntry returns an entry rendered as a path list
func MultiEntry(paths ...string) Entry {
	return Entry{Paths: paths, Multi: true}
}

// Value returns the bundler representation of the entry: a string for
// single entries, a []string for list entries.
func (e Entry) Value() interface{} {
	if !e.Multi && len(e.Paths) == 1 {
		return e.Paths[0]
	}
	out := make([]string, len(e.Paths))
	copy(out, e.Paths)
	return out
}

// EntryMap maps a logical output name to its sources
type EntryMap map[string]Entry

// Values converts the map into its bundler representation
func (m EntryMap) Values() map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for name, entry := range m {
		out[name] = entry.Value()
	}
	return out
}

// PathData holds the resolved paths of one cartridge for one scope
type PathData struct {
	Cartridge  string
	Scope      Scope
	InputPath  string
	OutputPath string
	Entries    EntryMap

	// DisableRevolver is set when the cartridge is listed in the
	// revolverDisable option. It is merged with a PathSet by
	// RevolverEnabled instead of mutating shared options.
	DisableRevolver bool
}

// RevolverEnabled reports whether override resolution applies when
// building this cartridge against set.
func (p PathData) RevolverEnabled(set PathSet) bool {
	return set.UseRevolver && !p.DisableRevolver
}

// RevolverPath is one cartridge override layer
type RevolverPath struct {
	Name string
	Path string
}

// PathSet is the ordered cartridge override list plus its alias table.
// Paths are in priority order: the first entry wins when the same
// relative file exists in more than one cartridge.
type PathSet struct {
	Paths       []RevolverPath
	UseRevolver bool
	Aliases     map[string]string
}

// Lookup returns the alias target for a symbolic cartridge or
// cartridge/locale name
func (s PathSet) Lookup(alias string) (string, bool) {
	p, ok := s.Aliases[alias]
	return p, ok
}
