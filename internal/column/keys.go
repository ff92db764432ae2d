package column

// Walk visits every node in pre-order. depth starts at zero for top-level
// columns. Returning false from visit skips the node's children.
func Walk(tree []*Node, visit func(node *Node, depth int) bool) {
	var walk func(nodes []*Node, depth int)
	walk = func(nodes []*Node, depth int) {
		for _, node := range nodes {
			if node == nil {
				continue
			}
			if !visit(node, depth) {
				continue
			}
			if len(node.Children) > 0 {
				walk(node.Children, depth+1)
			}
		}
	}
	walk(tree, 0)
}

// Keys flattens the tree into its column keys in pre-order. Keyless nodes
// contribute only their children. Duplicates are kept.
func Keys(tree []*Node) []string {
	keys := []string{}
	Walk(tree, func(node *Node, _ int) bool {
		if node.Key != "" {
			keys = append(keys, node.Key)
		}
		return true
	})
	return keys
}

// UniqueKeys is Keys with repeated keys dropped after their first occurrence.
func UniqueKeys(tree []*Node) []string {
	return Dedupe(Keys(tree))
}

// Dedupe returns keys without repeats or empty strings, preserving order.
func Dedupe(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// Find returns the first node with the given key, or nil.
func Find(tree []*Node, key string) *Node {
	if key == "" {
		return nil
	}
	var found *Node
	Walk(tree, func(node *Node, _ int) bool {
		if found != nil {
			return false
		}
		if node.Key == key {
			found = node
			return false
		}
		return true
	})
	return found
}

// Visible returns the leaf columns that should be rendered for the display
// set. A keyed node outside the set hides its whole subtree; keyless groups
// are transparent.
func Visible(tree []*Node, display map[string]struct{}) []*Node {
	var leaves []*Node
	Walk(tree, func(node *Node, _ int) bool {
		if node.Key != "" {
			if _, ok := display[node.Key]; !ok {
				return false
			}
		}
		if !node.IsGroup() && node.Key != "" {
			leaves = append(leaves, node)
		}
		return true
	})
	return leaves
}

// Set converts keys into a lookup set.
func Set(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if key == "" {
			continue
		}
		set[key] = struct{}{}
	}
	return set
}
