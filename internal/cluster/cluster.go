// Package cluster groups near-duplicate description strings and rewrites
// them to one canonical payee name per cluster.
package cluster

import (
	"strings"

	"awiese/finance-master/internal/logging"
	"awiese/finance-master/internal/models"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultThreshold is the similarity ratio at or above which two
// descriptions are considered the same payee.
const DefaultThreshold = 0.8

// Clusterer canonicalizes near-duplicate descriptions.
type Clusterer struct {
	threshold float64
	logger    logging.Logger
}

// New creates a Clusterer with the given similarity threshold.
func New(threshold float64, logger logging.Logger) *Clusterer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Clusterer{threshold: threshold, logger: logger}
}

// Ratio computes the character-level sequence-alignment similarity of two
// strings in [0,1]: twice the matched character count over the combined
// length (Ratcliff/Obershelp). Descriptions match case-insensitively, so
// the comparison folds case.
func Ratio(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	matcher := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return matcher.Ratio()
}

type group struct {
	base    string
	aliases []string
}

// Canonicalize returns a copy of the transaction set with every description
// belonging to a cluster rewritten to the cluster's base name. The
// transaction count is invariant; only descriptions change.
//
// Distinct descriptions are enumerated in first-seen order and every
// unordered pair is scored. The first value of a similar pair becomes the
// cluster's base name; aliases rewrite in discovery order, so a value
// similar to more than one base deterministically joins the first.
func (c *Clusterer) Canonicalize(transactions []models.Transaction) []models.Transaction {
	out := models.CloneAll(transactions)

	var unique []string
	seen := map[string]struct{}{}
	for _, tx := range out {
		if _, ok := seen[tx.Description]; !ok {
			seen[tx.Description] = struct{}{}
			unique = append(unique, tx.Description)
		}
	}

	var groups []group
	groupIndex := map[string]int{}
	for i, base := range unique {
		for _, candidate := range unique[i+1:] {
			if Ratio(base, candidate) < c.threshold {
				continue
			}
			gi, ok := groupIndex[base]
			if !ok {
				groups = append(groups, group{base: base})
				gi = len(groups) - 1
				groupIndex[base] = gi
			}
			groups[gi].aliases = append(groups[gi].aliases, candidate)
		}
	}

	rewritten := 0
	for _, g := range groups {
		for _, alias := range g.aliases {
			for i := range out {
				if out[i].Description == alias {
					out[i].Description = g.base
					rewritten++
				}
			}
		}
	}

	if len(groups) > 0 {
		c.logger.Debug("Canonicalized payee names",
			logging.Field{Key: "clusters", Value: len(groups)},
			logging.Field{Key: "rewritten", Value: rewritten},
			logging.Field{Key: logging.FieldThreshold, Value: c.threshold})
	}

	return out
}
