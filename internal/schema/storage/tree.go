// Package storage provides the recursive node model for a hierarchical
// storage namespace and its structural validation. Nodes form a tree under
// an implicit root; the model carries no back-references, so the tree is
// acyclic by construction.
package storage

import (
	"strings"

	"github.com/firelink-dev/firelink/internal/schema/errors"
)

// Separator joins node names into dotted paths. Node names must not
// contain it.
const Separator = "."

// Node is one level of the storage namespace. Children are ordered as
// declared.
type Node struct {
	Name     string `json:"name" yaml:"name"`
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Path returns the dotted path for a node name under parentPath.
// parentPath is empty for declared roots.
func Path(parentPath, name string) string {
	if parentPath == "" {
		return name
	}
	return parentPath + Separator + name
}

// BuildTree validates the declared forest and returns it unchanged on
// success. Validation is pre-order, depth-first, left-to-right, and stops
// at the first violation; the returned diagnostic names the full dotted path
// of the offending node. Use ValidateForest to collect every violation
// instead.
func BuildTree(forest []Node) ([]Node, error) {
	diags := walk("", forest, true)
	if len(diags) > 0 {
		return nil, diags[0]
	}
	return forest, nil
}

// ValidateForest validates the declared forest and returns every violation
// found, in pre-order.
func ValidateForest(forest []Node) errors.List {
	return walk("", forest, false)
}

// walk validates one sibling group and recurses into children. When
// firstOnly is set the walk stops at the first diagnostic.
func walk(parentPath string, siblings []Node, firstOnly bool) errors.List {
	var diags errors.List
	seen := make(map[string]struct{}, len(siblings))

	for _, node := range siblings {
		switch {
		case node.Name == "":
			diags = append(diags, errors.NewEmptyNodeName(parentPath))
		case strings.Contains(node.Name, Separator):
			diags = append(diags, errors.NewSeparatorInName(Path(parentPath, node.Name), node.Name, Separator))
		default:
			if _, dup := seen[node.Name]; dup {
				diags = append(diags, errors.NewSiblingConflict(Path(parentPath, node.Name), node.Name))
			}
			seen[node.Name] = struct{}{}
		}
		if firstOnly && len(diags) > 0 {
			return diags
		}

		// Pre-order: the current node is validated before its children.
		diags = append(diags, walk(Path(parentPath, node.Name), node.Children, firstOnly)...)
		if firstOnly && len(diags) > 0 {
			return diags
		}
	}

	return diags
}
