package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/galaplate/patterns/env"
	"gopkg.in/yaml.v3"
)

// ErrDirNotFound is returned by Loader.Load when the config directory is absent.
var ErrDirNotFound = errors.New("config directory does not exist")

// Loader reads every YAML file of a directory into one nested map keyed by
// file name without extension.
type Loader struct {
	configPath string
	lookup     func(string) string
}

func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
		lookup:     env.Get,
	}
}

func (l *Loader) Load() (map[string]any, error) {
	config := make(map[string]any)

	info, err := os.Stat(l.configPath)
	if os.IsNotExist(err) {
		return config, fmt.Errorf("%w: %s", ErrDirNotFound, l.configPath)
	}
	if err != nil {
		return config, err
	}
	if !info.IsDir() {
		return config, fmt.Errorf("config path is not a directory: %s", l.configPath)
	}

	files, err := os.ReadDir(l.configPath)
	if err != nil {
		return config, fmt.Errorf("failed to read config directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := filepath.Ext(file.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		filename := filepath.Join(l.configPath, file.Name())
		fileConfig, err := l.loadFile(filename)
		if err != nil {
			return config, fmt.Errorf("failed to load config file %s: %w", filename, err)
		}

		config[strings.TrimSuffix(file.Name(), ext)] = fileConfig
	}

	return config, nil
}

func (l *Loader) loadFile(filename string) (any, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var data any
	if err := yaml.Unmarshal([]byte(l.expand(string(content))), &data); err != nil {
		return nil, err
	}

	return normalize(data), nil
}

// expand replaces ${VAR} and ${VAR:default} with environment values.
func (l *Loader) expand(content string) string {
	result := content
	start := 0

	for {
		idx := strings.Index(result[start:], "${")
		if idx == -1 {
			break
		}
		idx += start

		endIdx := strings.Index(result[idx:], "}")
		if endIdx == -1 {
			break
		}
		endIdx += idx

		name, fallback, _ := strings.Cut(result[idx+2:endIdx], ":")

		value := l.lookup(name)
		if value == "" {
			value = fallback
		}

		result = result[:idx] + value + result[endIdx+1:]
		start = idx + len(value)
	}

	return result
}

func normalize(data any) any {
	switch v := data.(type) {
	case map[any]any:
		result := make(map[string]any, len(v))
		for key, val := range v {
			result[fmt.Sprintf("%v", key)] = normalize(val)
		}
		return result
	case map[string]any:
		for key, val := range v {
			v[key] = normalize(val)
		}
		return v
	case []any:
		for i, val := range v {
			v[i] = normalize(val)
		}
		return v
	default:
		return v
	}
}
