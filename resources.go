package bouncy

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Resources resolves string resource ids for SetTextResource.
type Resources interface {
	String(id string) (string, bool)
}

// StringTable is a Resources backed by a map.
type StringTable map[string]string

// String implements Resources.
func (t StringTable) String(id string) (string, bool) {
	s, ok := t[id]
	return s, ok
}

// LoadStringTable parses a flat YAML mapping of id to string. Non-string
// scalars are kept in their YAML text form, so `default_value: 1000` yields
// "1000".
func LoadStringTable(data []byte) (StringTable, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("bouncy: parse string table: %w", err)
	}
	t := make(StringTable)
	if len(root.Content) == 0 {
		return t, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("bouncy: string table must be a mapping, line %d", doc.Line)
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, val := doc.Content[i], doc.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("bouncy: string table entry %q is not a scalar, line %d", key.Value, val.Line)
		}
		t[key.Value] = val.Value
	}
	return t, nil
}
