package gamedata

// KingdomRegistry holds the loaded kingdoms in map order.
type KingdomRegistry struct {
	kingdoms []KingdomDef
	byName   map[string]*KingdomDef
}

// NewKingdomRegistry creates a registry from loaded kingdom definitions.
func NewKingdomRegistry(kingdoms []KingdomDef) *KingdomRegistry {
	registry := &KingdomRegistry{
		kingdoms: kingdoms,
		byName:   make(map[string]*KingdomDef, len(kingdoms)),
	}
	for i := range kingdoms {
		registry.byName[kingdoms[i].Name] = &kingdoms[i]
	}
	return registry
}

// LoadKingdomRegistry loads the embedded kingdoms, or the file at path when
// path is not empty.
func LoadKingdomRegistry(path string) (*KingdomRegistry, error) {
	var (
		kingdoms []KingdomDef
		err      error
	)
	if path != "" {
		kingdoms, err = LoadKingdomsFile(path)
	} else {
		kingdoms, err = LoadKingdoms()
	}
	if err != nil {
		return nil, err
	}
	return NewKingdomRegistry(kingdoms), nil
}

// MustLoadKingdomRegistry loads the embedded kingdoms, panicking on error.
func MustLoadKingdomRegistry() *KingdomRegistry {
	registry, err := LoadKingdomRegistry("")
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByName returns the kingdom with the given name, or nil if not found.
func (r *KingdomRegistry) GetByName(name string) *KingdomDef {
	return r.byName[name]
}

// All returns all kingdom definitions in map order.
func (r *KingdomRegistry) All() []KingdomDef {
	return r.kingdoms
}

// Names returns the kingdom names in map order.
func (r *KingdomRegistry) Names() []string {
	names := make([]string, len(r.kingdoms))
	for i, k := range r.kingdoms {
		names[i] = k.Name
	}
	return names
}

// Count returns the number of kingdoms in the registry.
func (r *KingdomRegistry) Count() int {
	return len(r.kingdoms)
}
