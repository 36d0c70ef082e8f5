package registry

// ConstKind distinguishes a Constant's module/class nature.
type ConstKind int

const (
	ConstModule ConstKind = iota
	ConstClass
)

// Constant is a registered module or class: qualified name, kind, the
// enclosing (parent) constant's qualified name, and every declaration
// site seen so far (a class can be reopened, so there may be several).
type Constant struct {
	QualifiedName string
	Kind          ConstKind
	Parent        string // qualified name of the enclosing constant, "" at top level
	Paths         []string
}

// ConstRegistry maps qualified constant names to their descriptor.
type ConstRegistry struct {
	byName map[string]*Constant
	order  []string
}

// NewConstRegistry returns an empty registry.
func NewConstRegistry() *ConstRegistry {
	return &ConstRegistry{byName: make(map[string]*Constant)}
}

// FindOrAdd returns the existing Constant for qualifiedName, appending
// path to its declaration sites, or creates one if absent.
func (r *ConstRegistry) FindOrAdd(qualifiedName string, kind ConstKind, parent string, path string) *Constant {
	if c, ok := r.byName[qualifiedName]; ok {
		if path != "" {
			c.Paths = append(c.Paths, path)
		}
		return c
	}
	c := &Constant{QualifiedName: qualifiedName, Kind: kind, Parent: parent}
	if path != "" {
		c.Paths = append(c.Paths, path)
	}
	r.byName[qualifiedName] = c
	r.order = append(r.order, qualifiedName)
	return c
}

// Find looks up a constant by qualified name.
func (r *ConstRegistry) Find(qualifiedName string) (*Constant, bool) {
	c, ok := r.byName[qualifiedName]
	return c, ok
}

// All returns every registered constant in first-registration order.
func (r *ConstRegistry) All() []*Constant {
	out := make([]*Constant, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Clear empties the registry.
func (r *ConstRegistry) Clear() {
	r.byName = make(map[string]*Constant)
	r.order = nil
}
