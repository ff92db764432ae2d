package column

import "strings"

// Node represents a single column definition. Nodes with children are column
// groups; a node without a key is never toggleable on its own.
type Node struct {
	Key      string  `yaml:"key,omitempty"`
	Title    string  `yaml:"title,omitempty"`
	Width    int     `yaml:"width,omitempty"`
	Children []*Node `yaml:"children,omitempty"`
	Parent   *Node   `yaml:"-"`
}

// Label returns the text shown for the column header.
func (n *Node) Label() string {
	if n.Title != "" {
		return n.Title
	}
	return n.Key
}

// Path returns the labels from the outermost group down to n joined by "/".
func (n *Node) Path() string {
	var parts []string
	for cur := n; cur != nil; cur = cur.Parent {
		if label := cur.Label(); label != "" {
			parts = append(parts, label)
		}
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// IsGroup reports whether the node groups other columns.
func (n *Node) IsGroup() bool {
	return len(n.Children) > 0
}

// ChildByTitle returns the child group or column with the given label.
func (n *Node) ChildByTitle(title string) *Node {
	for _, child := range n.Children {
		if child.Label() == title {
			return child
		}
	}
	return nil
}

// AddChild appends child and points it back at n.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Link sets the Parent pointer of every node in the tree.
func Link(tree []*Node) {
	var walk func(parent *Node, nodes []*Node)
	walk = func(parent *Node, nodes []*Node) {
		for _, node := range nodes {
			if node == nil {
				continue
			}
			node.Parent = parent
			walk(node, node.Children)
		}
	}
	walk(nil, tree)
}
