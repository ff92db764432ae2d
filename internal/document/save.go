package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	delimiter         = "---\n"
	displayColumnsKey = "displayColumns"
)

// Encode renders the front matter with the current display columns followed
// by the unchanged body. Everything else in the front matter, comments and
// keys colview does not know about included, is written back as it was read.
func (d *Document) Encode() ([]byte, error) {
	root, err := d.frontMatterNode()
	if err != nil {
		return nil, err
	}
	setSequence(root.Content[0], displayColumnsKey, d.Header.DisplayColumns)

	var buf bytes.Buffer
	buf.WriteString(delimiter)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encode front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteString(delimiter)
	buf.Write(d.body)
	return buf.Bytes(), nil
}

func (d *Document) frontMatterNode() (*yaml.Node, error) {
	var root yaml.Node
	if len(bytes.TrimSpace(d.front)) > 0 {
		if err := yaml.Unmarshal(d.front, &root); err != nil {
			return nil, fmt.Errorf("decode front matter: %w", err)
		}
	}
	if len(root.Content) == 0 {
		var mapping yaml.Node
		if err := mapping.Encode(d.Header); err != nil {
			return nil, fmt.Errorf("encode front matter: %w", err)
		}
		root.Kind = yaml.DocumentNode
		root.Content = []*yaml.Node{&mapping}
	}
	if root.Content[0].Kind != yaml.MappingNode {
		return nil, errors.New("front matter is not a mapping")
	}
	return &root, nil
}

// setSequence replaces the value of key in mapping with values, keeping the
// comments and the flow or block style of the old value. A nil values
// removes the key.
func setSequence(mapping *yaml.Node, key string, values *[]string) {
	var next *yaml.Node
	if values != nil {
		next = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, v := range *values {
			next.Content = append(next.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v})
		}
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != key {
			continue
		}
		if next == nil {
			mapping.Content = slices.Delete(mapping.Content, i, i+2)
			return
		}
		old := mapping.Content[i+1]
		if old.Kind == yaml.SequenceNode {
			next.Style = old.Style
		}
		next.HeadComment = old.HeadComment
		next.LineComment = old.LineComment
		next.FootComment = old.FootComment
		mapping.Content[i+1] = next
		return
	}
	if next != nil {
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			next,
		)
	}
}

// splitFrontMatter returns the YAML between the "---" lines that open data,
// or nil when data has no front matter. Blank lines before the opening
// delimiter are skipped, as the front matter parser does.
func splitFrontMatter(data []byte) []byte {
	start := -1
	for offset := 0; offset < len(data); {
		line, next := nextLine(data, offset)
		trimmed := bytes.TrimSpace(line)
		switch {
		case start < 0 && len(trimmed) == 0:
		case start < 0 && string(trimmed) == "---":
			start = next
		case start < 0:
			return nil
		case string(trimmed) == "---":
			return data[start:offset]
		}
		offset = next
	}
	return nil
}

func nextLine(data []byte, offset int) ([]byte, int) {
	if n := bytes.IndexByte(data[offset:], '\n'); n >= 0 {
		return data[offset : offset+n], offset + n + 1
	}
	return data[offset:], len(data)
}

// SetDisplayColumns replaces the declared display columns.
func (d *Document) SetDisplayColumns(keys []string) {
	value := slices.Clone(keys)
	if value == nil {
		value = []string{}
	}
	d.Header.DisplayColumns = &value
}

// SaveDisplayColumns writes keys into the front matter of the document at
// path, keeping its body untouched.
func SaveDisplayColumns(path string, keys []string) error {
	doc, err := Load(path)
	if err != nil {
		return err
	}
	doc.SetDisplayColumns(keys)

	data, err := doc.Encode()
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, info.Mode().Perm())
}
