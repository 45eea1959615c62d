package geometry

import (
	"fmt"
	"strings"
)

// MaterialKind tags how a surface reflects light.
// Only Diffuse has shading behavior; Specular and Refractive are reserved.
type MaterialKind int

const (
	Diffuse MaterialKind = iota
	Specular
	Refractive
)

var materialNames = map[MaterialKind]string{
	Diffuse:    "diffuse",
	Specular:   "specular",
	Refractive: "refractive",
}

func (m MaterialKind) String() string {
	if name, ok := materialNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MaterialKind(%d)", int(m))
}

// IsValid reports whether m is one of the declared kinds
func (m MaterialKind) IsValid() bool {
	_, ok := materialNames[m]
	return ok
}

// ParseMaterialKind converts a name like "diffuse" to its MaterialKind
func ParseMaterialKind(name string) (MaterialKind, error) {
	for kind, n := range materialNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown material %q", name)
}
