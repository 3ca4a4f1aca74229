package taxonomy

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Package taxonomy holds the keyword sets driving relevance filtering
// and region/stream classification. The sets are data, not logic: they
// are loaded from a YAML file so they can be revised without touching
// pipeline code. Matching everywhere is case-insensitive substring
// containment, which trades false positives on keyword collisions for
// simplicity.

// CountryOverride maps a single country keyword directly to a region.
// Overrides are checked in declaration order before the broader region
// sets.
type CountryOverride struct {
	Keyword string `yaml:"keyword"`
	Region  string `yaml:"region"`
}

// RegionSet is one named region with its keyword list. Region sets are
// checked in declaration order; the first match wins.
type RegionSet struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Taxonomy bundles every keyword group used by the pipeline.
type Taxonomy struct {
	CoreEnergy       []string          `yaml:"core_energy"`
	Irrelevant       []string          `yaml:"irrelevant"`
	JunkDomains      []string          `yaml:"junk_domains"`
	CountryOverrides []CountryOverride `yaml:"country_overrides"`
	Regions          []RegionSet       `yaml:"regions"`
	Upstream         []string          `yaml:"upstream"`
	Midstream        []string          `yaml:"midstream"`
	Downstream       []string          `yaml:"downstream"`
}

// Load reads a taxonomy from a YAML file. Keywords are lowercased and
// trimmed; empty entries are dropped.
func Load(path string) (*Taxonomy, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("taxonomy file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open taxonomy file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}

	var tax Taxonomy
	if err := yaml.Unmarshal(raw, &tax); err != nil {
		return nil, fmt.Errorf("decode taxonomy: %w", err)
	}

	sanitize(&tax)
	if err := validate(&tax); err != nil {
		return nil, err
	}
	return &tax, nil
}

func sanitize(tax *Taxonomy) {
	tax.CoreEnergy = sanitizeKeywords(tax.CoreEnergy)
	tax.Irrelevant = sanitizeKeywords(tax.Irrelevant)
	tax.JunkDomains = sanitizeKeywords(tax.JunkDomains)
	tax.Upstream = sanitizeKeywords(tax.Upstream)
	tax.Midstream = sanitizeKeywords(tax.Midstream)
	tax.Downstream = sanitizeKeywords(tax.Downstream)

	overrides := tax.CountryOverrides[:0]
	for _, o := range tax.CountryOverrides {
		o.Keyword = strings.ToLower(strings.TrimSpace(o.Keyword))
		o.Region = strings.TrimSpace(o.Region)
		if o.Keyword == "" || o.Region == "" {
			continue
		}
		overrides = append(overrides, o)
	}
	tax.CountryOverrides = overrides

	regions := tax.Regions[:0]
	for _, r := range tax.Regions {
		r.Name = strings.TrimSpace(r.Name)
		r.Keywords = sanitizeKeywords(r.Keywords)
		if r.Name == "" || len(r.Keywords) == 0 {
			continue
		}
		regions = append(regions, r)
	}
	tax.Regions = regions
}

func sanitizeKeywords(keywords []string) []string {
	out := keywords[:0]
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		out = append(out, k)
	}
	return out
}

func validate(tax *Taxonomy) error {
	if len(tax.CoreEnergy) == 0 {
		return errors.New("taxonomy has no core_energy keywords")
	}
	if len(tax.Regions) == 0 {
		return errors.New("taxonomy has no region sets")
	}
	if len(tax.Upstream) == 0 || len(tax.Midstream) == 0 || len(tax.Downstream) == 0 {
		return errors.New("taxonomy requires upstream, midstream and downstream keyword sets")
	}
	return nil
}

// ContainsAny reports whether text contains at least one of the
// keywords. Text is lowercased once; keywords are assumed lowercase
// already. Substring containment, not word matching.
func ContainsAny(text string, keywords []string) bool {
	text = strings.ToLower(text)
	for _, k := range keywords {
		if k != "" && strings.Contains(text, k) {
			return true
		}
	}
	return false
}
