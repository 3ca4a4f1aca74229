package classify

import (
	"strings"

	"github.com/enerlens-hq/enerlens-pipeline/internal/domain"
	"github.com/enerlens-hq/enerlens-pipeline/internal/taxonomy"
)

// Classifier assigns region and stream labels from keyword membership.
// Classification is a pure function of the input text: same text, same
// labels. Check order is fixed and meaningful — an entry matching both
// Upstream and Downstream keywords is Upstream because Upstream is
// checked first.
type Classifier struct {
	tax *taxonomy.Taxonomy
}

// NewClassifier builds a classifier over the given taxonomy (Default
// when nil).
func NewClassifier(tax *taxonomy.Taxonomy) *Classifier {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Classifier{tax: tax}
}

// Classify returns the (region, stream) pair for the text.
func (c *Classifier) Classify(text string) (region, stream string) {
	return c.Region(text), c.Stream(text)
}

// Region classifies geography. Country overrides are checked first in
// declaration order, then the region sets in declaration order; the
// first match wins.
func (c *Classifier) Region(text string) string {
	lower := strings.ToLower(text)

	for _, o := range c.tax.CountryOverrides {
		if strings.Contains(lower, o.Keyword) {
			return o.Region
		}
	}

	for _, set := range c.tax.Regions {
		if taxonomy.ContainsAny(lower, set.Keywords) {
			return set.Name
		}
	}
	return domain.RegionUnclassified
}

// Stream classifies the industry-chain position: Upstream, then
// Midstream, then Downstream; first match wins.
func (c *Classifier) Stream(text string) string {
	lower := strings.ToLower(text)

	switch {
	case taxonomy.ContainsAny(lower, c.tax.Upstream):
		return domain.StreamUpstream
	case taxonomy.ContainsAny(lower, c.tax.Midstream):
		return domain.StreamMidstream
	case taxonomy.ContainsAny(lower, c.tax.Downstream):
		return domain.StreamDownstream
	}
	return domain.StreamUnclassified
}
