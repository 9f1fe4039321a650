package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/blockberries/pagepack/pkg/pagelist"
)

type mappingFormat string

const (
	formatJSON mappingFormat = "json"
	formatYAML mappingFormat = "yaml"
)

// detectFormat picks the mapping format from an explicit name, then the
// file extension of path, then fallback.
func detectFormat(explicit, path string, fallback mappingFormat) (mappingFormat, error) {
	if explicit != "" {
		switch strings.ToLower(explicit) {
		case "json":
			return formatJSON, nil
		case "yaml", "yml":
			return formatYAML, nil
		}
		return "", fmt.Errorf("unknown mapping format %q", explicit)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return fallback, nil
}

// parseMapping reads an extension to pages object. Groups come out sorted
// by extension.
func parseMapping(data []byte, format mappingFormat) (pagelist.Images, error) {
	var m map[string][]int
	var err error
	switch format {
	case formatYAML:
		err = yaml.Unmarshal(data, &m)
	default:
		err = json.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s mapping: %w", format, err)
	}
	return pagelist.FromMap(m), nil
}

// formatMapping renders images as an object whose keys keep group order,
// so the default extension comes first after a decode.
func formatMapping(images pagelist.Images, format mappingFormat) ([]byte, error) {
	if format == formatYAML {
		return yamlMapping(images)
	}
	return jsonMapping(images)
}

func jsonMapping(images pagelist.Images) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, g := range images {
		key, err := json.Marshal(g.Ext)
		if err != nil {
			return nil, err
		}
		pages := g.Pages
		if pages == nil {
			pages = []int{}
		}
		val, err := json.Marshal(pages)
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
		if i < len(images)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func yamlMapping(images pagelist.Images) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, g := range images {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, p := range g.Pages {
			seq.Content = append(seq.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!int",
				Value: fmt.Sprint(p),
			})
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: g.Ext}
		root.Content = append(root.Content, key, seq)
	}
	return yaml.Marshal(root)
}

// readInput reads path, or stdin for "" and "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes data to path, or stdout for "" and "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
