package yaml

import (
	"fmt"
	"os"

	"wakeproxy/pkg/api"

	"gopkg.in/yaml.v2"
)

type Parser interface {
	Parse(file string) (*api.Config, error)
}

type YamlParser struct{}

func NewParser() Parser {
	return &YamlParser{}
}

func (p *YamlParser) Parse(file string) (*api.Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var config api.Config
	if err = yaml.UnmarshalStrict(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}
	return &config, nil
}
