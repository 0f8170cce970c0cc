package collection

import (
	"testing"

	"github.com/firelink-dev/firelink/internal/schema/errors"
)

func resolve(t *testing.T, decls ...Declaration) (*Forest, errors.List) {
	t.Helper()
	r := NewResolver()
	for _, d := range decls {
		r.Register(d)
	}
	return r.Resolve()
}

func TestResolveRootsAndSubs(t *testing.T) {
	forest, diags := resolve(t,
		Declaration{Path: "users"},
		Declaration{Path: "notifications", ParentPath: "users"},
		Declaration{Path: "posts"},
		Declaration{Path: "comments", ParentPath: "posts"},
		Declaration{Path: "reactions", ParentPath: "posts/comments"},
	)

	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
	if forest.Count() != 5 {
		t.Errorf("expected 5 resolved paths, got %d", forest.Count())
	}
	if len(forest.Roots()) != 2 {
		t.Errorf("expected 2 roots, got %d", len(forest.Roots()))
	}

	deep, ok := forest.Lookup("posts/comments/reactions")
	if !ok {
		t.Fatal("expected posts/comments/reactions to resolve")
	}
	if deep.Parent == nil || deep.Parent.FullPath != "posts/comments" {
		t.Error("expected reactions to attach under posts/comments")
	}
}

// Declarations may arrive child-first; the fixed point must still attach
// them.
func TestResolveOutOfOrder(t *testing.T) {
	forest, diags := resolve(t,
		Declaration{Path: "reactions", ParentPath: "posts/comments"},
		Declaration{Path: "comments", ParentPath: "posts"},
		Declaration{Path: "posts"},
	)

	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
	if !forest.Contains("posts/comments/reactions") {
		t.Error("expected the child-first chain to resolve")
	}
}

func TestResolveMissingParent(t *testing.T) {
	forest, diags := resolve(t,
		Declaration{Path: "users"},
		Declaration{Path: "notifications", ParentPath: "users"},
		Declaration{Path: "x", ParentPath: "ghost"},
	)

	if forest.Count() != 2 {
		t.Errorf("expected 2 resolved paths, got %d", forest.Count())
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
	d := diags[0]
	if d.Code != errors.ErrUnresolvedParent {
		t.Errorf("expected %s, got %s", errors.ErrUnresolvedParent, d.Code)
	}
	if d.Path != "x" {
		t.Errorf("expected diagnostic path x, got %q", d.Path)
	}
}

func TestResolveCycleTerminates(t *testing.T) {
	_, diags := resolve(t,
		Declaration{Path: "a", ParentPath: "b"},
		Declaration{Path: "b", ParentPath: "a"},
	)

	if len(diags) != 2 {
		t.Fatalf("expected one diagnostic per cycle member, got %d: %v", len(diags), diags)
	}
	for _, d := range diags {
		if d.Code != errors.ErrUnresolvedParent {
			t.Errorf("expected %s, got %s", errors.ErrUnresolvedParent, d.Code)
		}
	}
}

func TestDuplicateSiblings(t *testing.T) {
	tests := []struct {
		name     string
		decls    []Declaration
		wantPath string
	}{
		{
			name: "duplicate roots",
			decls: []Declaration{
				{Path: "users"},
				{Path: "users"},
			},
			wantPath: "users",
		},
		{
			name: "duplicate sub paths under one parent",
			decls: []Declaration{
				{Path: "users"},
				{Path: "notifications", ParentPath: "users"},
				{Path: "notifications", ParentPath: "users"},
			},
			wantPath: "users/notifications",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forest, diags := resolve(t, tt.decls...)
			if len(diags) != 1 {
				t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
			}
			if diags[0].Code != errors.ErrDuplicateSiblingPath {
				t.Errorf("expected %s, got %s", errors.ErrDuplicateSiblingPath, diags[0].Code)
			}
			if diags[0].Path != tt.wantPath {
				t.Errorf("expected path %q, got %q", tt.wantPath, diags[0].Path)
			}
			// The first declaration survives.
			if !forest.Contains(tt.wantPath) {
				t.Errorf("expected %q to stay resolved", tt.wantPath)
			}
		})
	}
}

func TestSamePathUnderDifferentParents(t *testing.T) {
	forest, diags := resolve(t,
		Declaration{Path: "users"},
		Declaration{Path: "posts"},
		Declaration{Path: "archive", ParentPath: "users"},
		Declaration{Path: "archive", ParentPath: "posts"},
	)

	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
	if !forest.Contains("users/archive") || !forest.Contains("posts/archive") {
		t.Error("expected the same segment to be valid under different parents")
	}
}

func TestEmptyPath(t *testing.T) {
	_, diags := resolve(t, Declaration{Entity: "Broken", Path: ""})

	if len(diags) != 1 || diags[0].Code != errors.ErrEmptyCollectionPath {
		t.Fatalf("expected a single %s diagnostic, got %v", errors.ErrEmptyCollectionPath, diags)
	}
	if diags[0].Entity != "Broken" {
		t.Errorf("expected entity Broken, got %q", diags[0].Entity)
	}
}

func TestPathsAreSorted(t *testing.T) {
	forest, _ := resolve(t,
		Declaration{Path: "zebra"},
		Declaration{Path: "alpha"},
	)

	paths := forest.Paths()
	if len(paths) != 2 || paths[0] != "alpha" || paths[1] != "zebra" {
		t.Errorf("expected sorted paths, got %v", paths)
	}
}
