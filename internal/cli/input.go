package cli

import (
	"cmp"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/cybergodev/jvalue"
)

// Input formats accepted by convert.
const (
	inputYAML = "yaml"
	inputJSON = "json"
	inputTOML = "toml"
)

var (
	errKeyNotScalar = errors.New("mapping key is not a scalar")
	errAliasCycle   = errors.New("alias refers to an enclosing anchor")
	errAliasBudget  = errors.New("aliases expand to too many nodes")
)

// detectInput picks the input format from an explicit name or the file extension.
// JSON is read through the YAML decoder, which accepts it unchanged.
func detectInput(path, from string) (string, error) {
	if from != "" {
		switch name := strings.ToLower(from); name {
		case inputYAML, "yml", inputJSON, inputTOML:
			if name == "yml" {
				return inputYAML, nil
			}
			return name, nil
		}
		return "", fmt.Errorf("unknown input format %q", from)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return inputTOML, nil
	case ".json":
		return inputJSON, nil
	default:
		return inputYAML, nil
	}
}

// decodeDocument turns raw file contents into a document
func decodeDocument(data []byte, format string) (jvalue.Value, error) {
	switch format {
	case inputTOML:
		return fromTOML(data)
	default:
		return fromYAML(data)
	}
}

// maxAliasNodes bounds how many nodes alias expansion may produce in one document
const maxAliasNodes = 100_000

// fromYAML decodes a YAML (or JSON) document, keeping mapping order
func fromYAML(data []byte) (jvalue.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return jvalue.Value{}, fmt.Errorf("decode yaml: %w", err)
	}
	w := yamlWalker{expanding: make(map[*yaml.Node]bool), budget: maxAliasNodes}
	return w.value(&doc)
}

// yamlWalker converts a node tree. Anchors are registered before their children
// are parsed, so an alias may point back at one of its ancestors; expanding
// tracks the anchors on the current path to reject such cycles.
type yamlWalker struct {
	expanding map[*yaml.Node]bool
	expanded  int
	budget    int
}

func (w *yamlWalker) value(n *yaml.Node) (jvalue.Value, error) {
	if len(w.expanding) > 0 {
		w.expanded++
		if w.expanded > w.budget {
			return jvalue.Value{}, fmt.Errorf("line %d: %w (limit %d)", n.Line, errAliasBudget, w.budget)
		}
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return jvalue.NullValue(), nil
		}
		return w.value(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return jvalue.NullValue(), nil
		}
		if w.expanding[n.Alias] {
			return jvalue.Value{}, fmt.Errorf("line %d: %w: *%s", n.Line, errAliasCycle, n.Value)
		}
		w.expanding[n.Alias] = true
		v, err := w.value(n.Alias)
		delete(w.expanding, n.Alias)
		return v, err
	case yaml.SequenceNode:
		items := make([]jvalue.Value, 0, len(n.Content))
		for _, child := range n.Content {
			v, err := w.value(child)
			if err != nil {
				return jvalue.Value{}, err
			}
			items = append(items, v)
		}
		return jvalue.Arr(items...), nil
	case yaml.MappingNode:
		members := make([]jvalue.Member, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return jvalue.Value{}, fmt.Errorf("line %d: %w", k.Line, errKeyNotScalar)
			}
			v, err := w.value(n.Content[i+1])
			if err != nil {
				return jvalue.Value{}, err
			}
			members = append(members, jvalue.Member{Key: k.Value, Value: v})
		}
		return jvalue.Obj(members...), nil
	case yaml.ScalarNode:
		return yamlScalar(n)
	}
	return jvalue.NullValue(), nil
}

func yamlScalar(n *yaml.Node) (jvalue.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return jvalue.NullValue(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return jvalue.Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return jvalue.Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return jvalue.Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return jvalue.Float(f), nil
	default:
		return jvalue.Str(n.Value), nil
	}
}

// fromTOML decodes a TOML document. Tables keep the order in which their keys
// appear in the file.
func fromTOML(data []byte) (jvalue.Value, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return jvalue.Value{}, fmt.Errorf("decode toml: %w", err)
	}

	order := make(map[string]int)
	for i, k := range md.Keys() {
		if _, seen := order[k.String()]; !seen {
			order[k.String()] = i
		}
	}
	return tomlValue(raw, nil, order)
}

func tomlValue(x any, path toml.Key, order map[string]int) (jvalue.Value, error) {
	switch t := x.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		position := func(k string) int {
			if p, ok := order[append(slices.Clone(path), k).String()]; ok {
				return p
			}
			return len(order)
		}
		slices.SortFunc(keys, func(a, b string) int {
			return cmp.Or(cmp.Compare(position(a), position(b)), strings.Compare(a, b))
		})

		members := make([]jvalue.Member, 0, len(keys))
		for _, k := range keys {
			v, err := tomlValue(t[k], append(slices.Clone(path), k), order)
			if err != nil {
				return jvalue.Value{}, err
			}
			members = append(members, jvalue.Member{Key: k, Value: v})
		}
		return jvalue.Obj(members...), nil
	case []map[string]any:
		items := make([]jvalue.Value, 0, len(t))
		for _, m := range t {
			v, err := tomlValue(m, path, order)
			if err != nil {
				return jvalue.Value{}, err
			}
			items = append(items, v)
		}
		return jvalue.Arr(items...), nil
	case []any:
		items := make([]jvalue.Value, 0, len(t))
		for _, e := range t {
			v, err := tomlValue(e, path, order)
			if err != nil {
				return jvalue.Value{}, err
			}
			items = append(items, v)
		}
		return jvalue.Arr(items...), nil
	case time.Time:
		return jvalue.Str(tomlTime(t)), nil
	}
	return jvalue.Of(x)
}

// tomlTime formats a decoded TOML date or time. Local values carry one of the
// decoder's marker zones and are written without an offset.
func tomlTime(t time.Time) string {
	switch t.Location().String() {
	case "date-local":
		return t.Format(time.DateOnly)
	case "time-local":
		return t.Format("15:04:05.999999999")
	case "datetime-local":
		return t.Format("2006-01-02T15:04:05.999999999")
	}
	return t.Format(time.RFC3339Nano)
}
