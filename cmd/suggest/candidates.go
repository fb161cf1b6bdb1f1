package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// candidateFile is the mapping form of a YAML candidates file.
type candidateFile struct {
	Candidates []string `yaml:"candidates"`
}

// loadCandidates reads suggestion candidates from path. Files ending in
// .yaml or .yml hold either a plain list or a mapping with a candidates key;
// anything else is read as one candidate per non-blank line.
func loadCandidates(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candidates: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAMLCandidates(data)
	default:
		return parseLineCandidates(data), nil
	}
}

func parseYAMLCandidates(data []byte) ([]string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse candidates: %w", err)
	}
	if len(node.Content) == 0 {
		return []string{}, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := root.Decode(&list); err != nil {
			return nil, fmt.Errorf("parse candidates: %w", err)
		}
		return list, nil
	case yaml.MappingNode:
		var file candidateFile
		if err := root.Decode(&file); err != nil {
			return nil, fmt.Errorf("parse candidates: %w", err)
		}
		return file.Candidates, nil
	default:
		return nil, fmt.Errorf("parse candidates: expected a list or a mapping with a candidates key")
	}
}

func parseLineCandidates(data []byte) []string {
	var result []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}
