// Package collection provides root and sub-collection path declarations and
// their resolution into a forest of collection paths. Declarations may arrive
// in any order, so resolution runs a fixed-point pass: sub-collections attach
// as soon as their parent is resolved, and whatever never attaches (missing
// parents, cyclic parent chains) is reported after the fixed point.
package collection

import (
	"sort"

	"github.com/firelink-dev/firelink/internal/schema/errors"
)

// PathSeparator joins collection path segments into full paths.
const PathSeparator = "/"

// Declaration declares one collection. An empty ParentPath declares a root
// collection; otherwise ParentPath must name the full path of another
// declared collection. Entity is the declaring entity name, used only in
// diagnostics.
type Declaration struct {
	Entity     string `json:"entity,omitempty" yaml:"entity,omitempty"`
	Path       string `json:"path" yaml:"path"`
	ParentPath string `json:"parent,omitempty" yaml:"parent,omitempty"`
}

// IsRoot reports whether the declaration is a root collection.
func (d Declaration) IsRoot() bool {
	return d.ParentPath == ""
}

// Collection is one resolved node of the collection forest.
type Collection struct {
	// Segment is the declared path segment
	Segment string
	// FullPath is the slash-joined path from the root
	FullPath string
	// Parent is nil for root collections
	Parent *Collection
	// Children are ordered by attachment
	Children []*Collection
	// Entity is the declaring entity name
	Entity string
}

// Forest is the resolved set of collection paths. Multiple roots are
// allowed; the structure is a forest, not a single tree.
type Forest struct {
	roots  []*Collection
	byPath map[string]*Collection
}

// Roots returns the resolved root collections in declaration order.
func (f *Forest) Roots() []*Collection {
	return f.roots
}

// Lookup returns the collection resolved at the given full path.
func (f *Forest) Lookup(path string) (*Collection, bool) {
	c, ok := f.byPath[path]
	return c, ok
}

// Contains reports whether the full path resolved.
func (f *Forest) Contains(path string) bool {
	_, ok := f.byPath[path]
	return ok
}

// Count returns the number of resolved collection paths.
func (f *Forest) Count() int {
	return len(f.byPath)
}

// Paths returns every resolved full path, sorted for deterministic output.
func (f *Forest) Paths() []string {
	paths := make([]string, 0, len(f.byPath))
	for p := range f.byPath {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Resolver accumulates collection declarations and resolves them into a
// Forest.
type Resolver struct {
	decls []Declaration
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Register adds a declaration. Order is irrelevant: a sub-collection may be
// registered before its parent.
func (r *Resolver) Register(d Declaration) {
	r.decls = append(r.decls, d)
}

// Resolve builds the collection forest and returns it with every violation
// found: empty paths, duplicate sibling paths, and sub-collections whose
// parent never resolves. Resolution always terminates, including on cyclic
// parent chains, because each fixed-point iteration must attach at least one
// collection to continue.
func (r *Resolver) Resolve() (*Forest, errors.List) {
	var diags errors.List

	forest := &Forest{byPath: make(map[string]*Collection)}

	var pending []Declaration
	for _, d := range r.decls {
		if d.Path == "" {
			diags = append(diags, errors.NewEmptyCollectionPath(d.Entity))
			continue
		}
		if d.IsRoot() {
			if forest.byPath[d.Path] != nil {
				diags = append(diags, errors.NewDuplicateSiblingPath(d.Path).WithEntity(d.Entity))
				continue
			}
			root := &Collection{Segment: d.Path, FullPath: d.Path, Entity: d.Entity}
			forest.roots = append(forest.roots, root)
			forest.byPath[d.Path] = root
			continue
		}
		pending = append(pending, d)
	}

	// Fixed point: each round attaches every sub-collection whose parent is
	// already resolved. A round with no attachment means the remainder can
	// never resolve.
	for len(pending) > 0 {
		var next []Declaration
		progressed := false

		for _, d := range pending {
			parent, ok := forest.byPath[d.ParentPath]
			if !ok {
				next = append(next, d)
				continue
			}
			progressed = true

			full := parent.FullPath + PathSeparator + d.Path
			if forest.byPath[full] != nil {
				diags = append(diags, errors.NewDuplicateSiblingPath(full).WithEntity(d.Entity))
				continue
			}
			sub := &Collection{Segment: d.Path, FullPath: full, Parent: parent, Entity: d.Entity}
			parent.Children = append(parent.Children, sub)
			forest.byPath[full] = sub
		}

		if !progressed {
			break
		}
		pending = next
	}

	for _, d := range pending {
		diags = append(diags, errors.NewUnresolvedParent(d.Path, d.ParentPath).WithEntity(d.Entity))
	}

	return forest, diags
}
