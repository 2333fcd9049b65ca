package registry

import "context"

// UnknownBracket is the registry's "employee count not known" code.
const UnknownBracket = "NN"

// Candidate is one company record returned by the registry search.
type Candidate struct {
	Name            string `json:"nom_complet"`
	EmployeeBracket string `json:"tranche_effectif_salarie"`

	Raw []byte `json:"-"` // full registry record
}

type Provider interface {
	// Lookup searches the registry for a cleaned company name.
	// A miss returns (nil, nil): not finding a company is not an error.
	Lookup(ctx context.Context, name string) ([]Candidate, error)
}

// PickBest selects the candidate to keep: companies with a known
// employee-count bracket win over unknown ones, ties break toward the
// higher bracket code. Returns nil for an empty slate.
func PickBest(candidates []Candidate) *Candidate {
	var best *Candidate
	for i := range candidates {
		c := &candidates[i]
		if best == nil || better(c, best) {
			best = c
		}
	}
	return best
}

func better(a, b *Candidate) bool {
	ab, bb := bracket(a), bracket(b)
	aKnown, bKnown := ab != UnknownBracket, bb != UnknownBracket
	if aKnown != bKnown {
		return aKnown
	}
	return ab > bb
}

func bracket(c *Candidate) string {
	if c.EmployeeBracket == "" {
		return "00"
	}
	return c.EmployeeBracket
}
