package revolver

import (
	"strings"

	"github.com/arthur-debert/cartbuild/pkg/config"
)

// GroupSeparator joins the members of an alias group
const GroupSeparator = "::"

// Descriptor is one entry of a cartridge list
type Descriptor struct {
	// Leader is the physical cartridge name
	Leader string

	// Members are all names of the group, Leader first
	Members []string
}

// ParseDescriptor splits "a::b::c" into its group. Empty member names
// are dropped.
func ParseDescriptor(s string) Descriptor {
	var members []string
	for _, name := range strings.Split(s, GroupSeparator) {
		if name = strings.TrimSpace(name); name != "" {
			members = append(members, name)
		}
	}

	d := Descriptor{Members: members}
	if len(members) > 0 {
		d.Leader = members[0]
	}
	return d
}

// ParseList parses a comma or space separated descriptor list, keeping
// its order and skipping empty descriptors.
func ParseList(s string) []Descriptor {
	var descriptors []Descriptor
	for _, item := range config.SplitList(s) {
		if d := ParseDescriptor(item); d.Leader != "" {
			descriptors = append(descriptors, d)
		}
	}
	return descriptors
}
