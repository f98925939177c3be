package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/textparser-go/textparser"
)

func writeTree(w io.Writer, tree any, format string) error {
	switch format {
	case "tree":
		_, err := fmt.Fprintln(w, textparser.FormatTree(tree))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(plainTree(tree)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(yamlTree(tree)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// plainTree converts a parse tree into values encoding/json knows
// about.  Dict keys are rendered as strings.
func plainTree(v any) any {
	switch node := v.(type) {
	case []any:
		items := make([]any, len(node))
		for i, item := range node {
			items[i] = plainTree(item)
		}
		return items
	case *textparser.Dict:
		m := make(map[string]any, node.Len())
		for _, key := range node.Keys() {
			items, _ := node.Get(key)
			m[keyString(key)] = plainTree(items)
		}
		return m
	case textparser.Tagged:
		return map[string]any{"tag": node.Name, "value": plainTree(node.Value)}
	case textparser.Token:
		return map[string]any{"kind": node.Kind, "value": node.Value, "offset": node.Offset}
	default:
		return v
	}
}

// yamlTree converts a parse tree into a yaml node.  Unlike plainTree
// it keeps the insertion order of Dict keys.
func yamlTree(v any) *yaml.Node {
	switch node := v.(type) {
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range node {
			seq.Content = append(seq.Content, yamlTree(item))
		}
		return seq
	case *textparser.Dict:
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range node.Keys() {
			items, _ := node.Get(key)
			m.Content = append(m.Content, yamlString(keyString(key)), yamlTree(items))
		}
		return m
	case textparser.Tagged:
		return yamlMap("tag", yamlString(node.Name), "value", yamlTree(node.Value))
	case textparser.Token:
		return yamlMap(
			"kind", yamlString(node.Kind),
			"value", yamlString(node.Value),
			"offset", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(node.Offset)},
		)
	case string:
		return yamlString(node)
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	default:
		return yamlString(fmt.Sprint(node))
	}
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// yamlMap builds a mapping out of key, value pairs
func yamlMap(pairs ...any) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i < len(pairs); i += 2 {
		m.Content = append(m.Content, yamlString(pairs[i].(string)), pairs[i+1].(*yaml.Node))
	}
	return m
}

func keyString(key any) string {
	if t, ok := key.(textparser.Token); ok {
		return t.Value
	}
	return fmt.Sprint(key)
}
