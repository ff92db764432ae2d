package column

import "strings"

// Build constructs a column tree from slash-separated header paths such as
// "contact/email". Intermediate segments become keyless groups and the full
// path becomes the key of the leaf. Columns keep the order they first appear.
func Build(paths []string) []*Node {
	root := &Node{}

	for _, raw := range paths {
		key := NormalizePath(raw)
		if key == "" {
			continue
		}
		parts := strings.Split(key, "/")
		current := root

		for i, part := range parts {
			if i < len(parts)-1 {
				child := current.ChildByTitle(part)
				if child == nil || child.Key != "" {
					child = &Node{Title: part}
					current.AddChild(child)
				}
				current = child
				continue
			}
			current.AddChild(&Node{
				Key:   key,
				Title: part,
			})
		}
	}

	for _, child := range root.Children {
		child.Parent = nil
	}
	return root.Children
}

// NormalizePath trims blanks around every segment of a header path and drops
// empty segments, so " contact / email/" becomes "contact/email".
func NormalizePath(raw string) string {
	parts := strings.Split(raw, "/")
	out := parts[:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return strings.Join(out, "/")
}
