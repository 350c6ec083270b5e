package vocab

import "preset-generator/internal/mapping"

// Named labels a mapping.
func Named(name string) mapping.Partial {
	return mapping.Partial{Name: name}
}

// InGroup puts a mapping into the group with id.
func InGroup(id string) mapping.Partial {
	return mapping.Partial{Group: id}
}
