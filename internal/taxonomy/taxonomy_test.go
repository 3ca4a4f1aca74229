package taxonomy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestContainsAnySubstringMatch(t *testing.T) {
	keywords := []string{"oil", "gas"}

	if !ContainsAny("OPEC Oil Deal", keywords) {
		t.Fatalf("expected case-insensitive match")
	}
	// Substring containment is intentional: "oilfield" matches "oil".
	if !ContainsAny("major oilfield find", keywords) {
		t.Fatalf("expected substring match inside larger word")
	}
	if ContainsAny("renewable power auction", keywords) {
		t.Fatalf("unexpected match")
	}
	if ContainsAny("anything", nil) {
		t.Fatalf("empty keyword list must never match")
	}
}

func TestDefaultTaxonomyIsValid(t *testing.T) {
	tax := Default()
	if err := validate(tax); err != nil {
		t.Fatalf("default taxonomy invalid: %v", err)
	}
	if len(tax.CountryOverrides) == 0 {
		t.Fatalf("default taxonomy has no country overrides")
	}
	if tax.Regions[0].Name != "India" {
		t.Fatalf("first region should be India, got %q", tax.Regions[0].Name)
	}
	if !ContainsAny("opec meeting", tax.CoreEnergy) {
		t.Fatalf("opec should be a core energy keyword")
	}
}

func TestLoadTaxonomyFile(t *testing.T) {
	raw := `
core_energy: ["  Oil ", "GAS", ""]
irrelevant: [bbq]
junk_domains: [example.com]
country_overrides:
  - keyword: " Norway "
    region: Europe
regions:
  - name: Europe
    keywords: [north sea]
upstream: [drilling]
midstream: [pipeline]
downstream: [refinery]
`
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tax, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tax.CoreEnergy) != 2 || tax.CoreEnergy[0] != "oil" || tax.CoreEnergy[1] != "gas" {
		t.Fatalf("core keywords not sanitized: %v", tax.CoreEnergy)
	}
	if tax.CountryOverrides[0].Keyword != "norway" || tax.CountryOverrides[0].Region != "Europe" {
		t.Fatalf("override not sanitized: %+v", tax.CountryOverrides[0])
	}
}

func TestLoadTaxonomyRejectsIncomplete(t *testing.T) {
	raw := `
core_energy: [oil]
regions:
  - name: Europe
    keywords: [north sea]
upstream: [drilling]
midstream: [pipeline]
`
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for missing downstream set")
	}
}
