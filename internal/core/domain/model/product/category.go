package product

import "strings"

// GeneralCategoryName labels products without a category.
const GeneralCategoryName = "General"

// Category is the category reference carried by a product. The remote API sends
// either a bare identifier or an embedded object with a name.
type Category struct {
	ID   string
	Name string
}

// IsEmpty reports whether neither an id nor a name is set.
func (c Category) IsEmpty() bool {
	return strings.TrimSpace(c.ID) == "" && strings.TrimSpace(c.Name) == ""
}

// CategoryDirectory maps known category identifiers to display names.
type CategoryDirectory struct {
	names map[string]string
}

// NewCategoryDirectory builds a directory from id -> name pairs.
func NewCategoryDirectory(names map[string]string) CategoryDirectory {
	copied := make(map[string]string, len(names))
	for id, name := range names {
		copied[strings.TrimSpace(id)] = name
	}
	return CategoryDirectory{names: copied}
}

// DefaultCategoryDirectory holds the categories provisioned in the store.
func DefaultCategoryDirectory() CategoryDirectory {
	return NewCategoryDirectory(map[string]string{
		"6998b744c465cfbcbf767e4f": "Cosmetics",
		"6998b729c465cfbcbf767e4d": "Garments",
	})
}

// Label resolves the display name of c. Embedded names win, then known ids;
// unknown ids are shown as is and an empty category reads as General.
func (d CategoryDirectory) Label(c Category) string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	id := strings.TrimSpace(c.ID)
	if id == "" {
		return GeneralCategoryName
	}
	if name, ok := d.names[id]; ok {
		return name
	}
	return id
}

// Lookup returns the name registered for id.
func (d CategoryDirectory) Lookup(id string) (string, bool) {
	name, ok := d.names[strings.TrimSpace(id)]
	return name, ok
}

// Known returns the registered identifiers and names.
func (d CategoryDirectory) Known() map[string]string {
	out := make(map[string]string, len(d.names))
	for id, name := range d.names {
		out[id] = name
	}
	return out
}
