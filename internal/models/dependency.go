package models

import (
	"fmt"
	"strings"
)

// WildcardVersion is the version constraint written for every manifest entry.
const WildcardVersion = "*"

// Dependency is an external dependency to declare in a source file or manifest.
type Dependency struct {
	Name string
}

// NewDependency trims name and rejects blank values.
func NewDependency(name string) (Dependency, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Dependency{}, ErrEmptyDependency
	}
	return Dependency{Name: name}, nil
}

// ImportLine is the Python-style declaration: import <name>
func (d Dependency) ImportLine() string {
	return fmt.Sprintf("import %s", d.Name)
}

// IncludeLine is the C++-style declaration: #include "<name>/<name>.h"
func (d Dependency) IncludeLine() string {
	return fmt.Sprintf("#include \"%s/%s.h\"", d.Name, d.Name)
}

// ManifestEntry is the manifest line: <name> = "*"
func (d Dependency) ManifestEntry() string {
	return fmt.Sprintf("%s = %q", d.Name, WildcardVersion)
}

func (d Dependency) String() string {
	return d.Name
}
