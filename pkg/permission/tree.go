package permission

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Node is one branch of a role's menu-permission tree: either a boolean
// leaf or a nested set of finer-grained nodes. The JSON form is the wire
// and storage format, e.g.
//
//	{"dashboard": true, "master": {"customer_details": {"add": true, "edit": false}}}
type Node struct {
	Leaf     bool
	Allow    bool
	Children Tree
}

// Tree is a named set of permission nodes.
type Tree map[string]Node

// Bool creates a leaf node.
func Bool(allow bool) Node {
	return Node{Leaf: true, Allow: allow}
}

// Branch creates a nested node.
func Branch(children Tree) Node {
	return Node{Children: children}
}

// MarshalJSON encodes a leaf as a bare boolean and a branch as an object.
func (n Node) MarshalJSON() ([]byte, error) {
	if n.Leaf {
		return json.Marshal(n.Allow)
	}
	return json.Marshal(n.Children)
}

// UnmarshalJSON accepts either a boolean leaf or a nested object.
func (n *Node) UnmarshalJSON(data []byte) error {
	var allow bool
	if err := json.Unmarshal(data, &allow); err == nil {
		*n = Node{Leaf: true, Allow: allow}
		return nil
	}
	var children Tree
	if err := json.Unmarshal(data, &children); err != nil {
		return fmt.Errorf("permission: node must be a boolean or an object: %w", err)
	}
	*n = Node{Children: children}
	return nil
}

// Decode parses a stored permission tree. A nil or empty payload yields an
// empty tree, never an error.
func Decode(data []byte) (Tree, error) {
	if len(data) == 0 {
		return Tree{}, nil
	}
	var t Tree
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("permission: invalid tree payload: %w", err)
	}
	if t == nil {
		t = Tree{}
	}
	return t, nil
}

// Encode serializes a tree for storage.
func (t Tree) Encode() ([]byte, error) {
	if t == nil {
		t = Tree{}
	}
	return json.Marshal(t)
}

// Allows walks a dotted path ("master.customer_details.add") and reports
// whether the tree grants it. A missing branch or a path that ends on a
// non-leaf denies; a leaf reached before the path is exhausted denies too.
func (t Tree) Allows(path string) bool {
	parts := strings.Split(path, ".")
	current := t
	for i, part := range parts {
		node, ok := current[part]
		if !ok {
			return false
		}
		last := i == len(parts)-1
		if node.Leaf {
			return last && node.Allow
		}
		if last {
			return false
		}
		current = node.Children
	}
	return false
}
