package feeds

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Package feeds holds the syndication source registry (YAML/JSON) and
// the concurrent feed fetcher.

// Source identifies one syndication endpoint.
type Source struct {
	ID      string            `json:"id" yaml:"id"`
	Name    string            `json:"name" yaml:"name"`
	URL     string            `json:"url" yaml:"url"`
	Headers map[string]string `json:"headers" yaml:"headers"`
}

// Payload is the raw bytes fetched from one source. Body is nil when
// the fetch failed; the source is carried along so downstream stages
// can attribute entries.
type Payload struct {
	Source Source
	Body   []byte
}

type registryFile struct {
	Feeds []Source `json:"feeds" yaml:"feeds"`
}

// Registry materializes feed sources loaded from a config file.
type Registry struct {
	sources []Source
	idx     map[string]Source
}

// LoadRegistry loads the feed source registry from a YAML/JSON file.
func LoadRegistry(path string) (*Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("feeds file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feeds file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read feeds file: %w", err)
	}

	fileReg, err := parseRegistry(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if len(fileReg.Feeds) == 0 {
		return nil, errors.New("feeds file contains no feed entries")
	}

	reg := &Registry{
		sources: make([]Source, len(fileReg.Feeds)),
		idx:     make(map[string]Source, len(fileReg.Feeds)),
	}
	for i := range fileReg.Feeds {
		src := sanitizeSource(fileReg.Feeds[i])
		if err := validateSource(src); err != nil {
			return nil, fmt.Errorf("feeds[%d]: %w", i, err)
		}
		if _, exists := reg.idx[src.ID]; exists {
			return nil, fmt.Errorf("duplicate feed id %q", src.ID)
		}
		reg.sources[i] = src
		reg.idx[src.ID] = src
	}

	return reg, nil
}

func parseRegistry(data []byte, ext string) (registryFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var reg registryFile
		if err := d.fn(data, &reg); err == nil {
			return reg, nil
		}
	}

	return registryFile{}, errors.New("feeds file format not recognized (expected YAML or JSON)")
}

func sanitizeSource(src Source) Source {
	src.ID = strings.TrimSpace(src.ID)
	src.Name = strings.TrimSpace(src.Name)
	src.URL = strings.TrimSpace(src.URL)

	if len(src.Headers) > 0 {
		headers := make(map[string]string, len(src.Headers))
		for k, v := range src.Headers {
			key := strings.TrimSpace(k)
			val := strings.TrimSpace(v)
			if key == "" || val == "" {
				continue
			}
			headers[key] = val
		}
		if len(headers) == 0 {
			headers = nil
		}
		src.Headers = headers
	}
	return src
}

func validateSource(src Source) error {
	if src.ID == "" {
		return errors.New("id is required")
	}
	if src.URL == "" {
		return fmt.Errorf("url is required for feed %q", src.ID)
	}
	return nil
}

// All returns the configured sources in declaration order.
func (r *Registry) All() []Source {
	if r == nil {
		return nil
	}
	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// ByID returns the source for the given id, if loaded.
func (r *Registry) ByID(id string) (Source, bool) {
	if r == nil {
		return Source{}, false
	}
	src, ok := r.idx[strings.TrimSpace(id)]
	return src, ok
}
