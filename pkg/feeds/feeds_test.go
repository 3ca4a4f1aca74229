package feeds

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadRegistryYAML(t *testing.T) {
	path := writeFixture(t, "feeds.yaml", `
feeds:
  - id: " eia "
    name: EIA Today in Energy
    url: " https://www.eia.gov/rss/todayinenergy.xml "
  - id: oilprice
    url: https://oilprice.com/rss/main
    headers:
      User-Agent: custom
`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	all := reg.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(all))
	}
	if all[0].ID != "eia" || all[0].URL != "https://www.eia.gov/rss/todayinenergy.xml" {
		t.Fatalf("source not sanitized: %+v", all[0])
	}

	src, ok := reg.ByID("oilprice")
	if !ok || src.Headers["User-Agent"] != "custom" {
		t.Fatalf("ByID = %+v, %v", src, ok)
	}
}

func TestLoadRegistryJSON(t *testing.T) {
	path := writeFixture(t, "feeds.json", `{"feeds":[{"id":"a","url":"https://a.example/rss"}]}`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if len(reg.All()) != 1 {
		t.Fatalf("expected 1 source")
	}
}

func TestLoadRegistryRejectsDuplicateIDs(t *testing.T) {
	path := writeFixture(t, "feeds.yaml", `
feeds:
  - id: a
    url: https://a.example/rss
  - id: a
    url: https://b.example/rss
`)
	if _, err := LoadRegistry(path); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestLoadRegistryRejectsMissingURL(t *testing.T) {
	path := writeFixture(t, "feeds.yaml", `
feeds:
  - id: a
    name: no url
`)
	if _, err := LoadRegistry(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadRegistryRejectsEmptyFile(t *testing.T) {
	path := writeFixture(t, "feeds.yaml", `feeds: []`)
	if _, err := LoadRegistry(path); err == nil {
		t.Fatalf("expected empty registry error")
	}
}
