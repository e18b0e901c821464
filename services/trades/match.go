package trades

import (
	"regexp"
	"sort"

	"arctraders-backend/lib/catalog"
	"arctraders-backend/lib/textutil"

	"github.com/antzucaro/matchr"
)

// MatchOptions fix the decision policy at startup. Threshold is the
// minimum similarity for any candidate to count; Epsilon is how close a
// runner-up must be to the best score to make the query ambiguous.
type MatchOptions struct {
	Threshold float64 `json:"threshold"`
	Epsilon   float64 `json:"epsilon"`
}

func DefaultMatchOptions() MatchOptions {
	return MatchOptions{
		Threshold: 0.85,
		Epsilon:   0.02,
	}
}

func (o MatchOptions) withDefaults() MatchOptions {
	def := DefaultMatchOptions()
	if o.Threshold <= 0 {
		o.Threshold = def.Threshold
	}
	if o.Epsilon <= 0 {
		o.Epsilon = def.Epsilon
	}
	return o
}

type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchUnique
	MatchAmbiguous
)

type Candidate struct {
	// display name of the matched entity
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	// set when the pool was the catalog
	Entry *catalog.Entry `json:"entry,omitempty"`
	// set when the pool was a list of offers
	Offer *Offer `json:"offer,omitempty"`
}

type Match struct {
	Kind       MatchKind
	Best       Candidate
	Candidates []Candidate
}

// scoreNames compares two names by Jaro-Winkler similarity over their
// normalized forms. Identical normalized names score 1.
func scoreNames(query, name string) float64 {
	a := textutil.NormalizeName(query)
	b := textutil.NormalizeName(name)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	return matchr.JaroWinkler(a, b, false)
}

// decide applies the threshold/epsilon policy to candidates already
// sorted by descending score.
func decide(candidates []Candidate, opts MatchOptions) Match {
	if len(candidates) == 0 || candidates[0].Score < opts.Threshold {
		return Match{Kind: MatchNone, Candidates: candidates}
	}

	best := candidates[0]
	nearTied := []Candidate{best}
	for _, c := range candidates[1:] {
		if c.Score < opts.Threshold || c.Score < best.Score-opts.Epsilon {
			break
		}
		nearTied = append(nearTied, c)
	}

	if len(nearTied) > 1 {
		return Match{Kind: MatchAmbiguous, Best: best, Candidates: nearTied}
	}
	return Match{Kind: MatchUnique, Best: best, Candidates: candidates}
}

// MatchCatalog resolves free text against the item catalog. A query
// matching any alias of an entry scores as matching the entry itself.
// Ties keep catalog insertion order.
func MatchCatalog(store *catalog.Store, query string, opts MatchOptions) Match {
	opts = opts.withDefaults()
	if textutil.NormalizeName(query) == "" || store == nil || store.Len() == 0 {
		return Match{Kind: MatchNone}
	}

	entries := store.Entries()
	scores := make([]float64, len(entries))
	for _, name := range store.Names() {
		score := scoreNames(query, name.Text)
		if score > scores[name.Entry] {
			scores[name.Entry] = score
		}
	}

	candidates := make([]Candidate, len(entries))
	for i := range entries {
		candidates[i] = Candidate{
			Name:  entries[i].Name,
			Score: scores[i],
			Entry: &entries[i],
		}
	}
	// stable: equal scores keep insertion order
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Score > candidates[b].Score
	})

	return decide(candidates, opts)
}

// accept queries come in "<item> from <player>" or "<player>'s <item>"
// shapes, on top of plain item text
var fromPattern = regexp.MustCompile(`(?i)^(.+?)\s+(?:from|by)\s+(.+)$`)
var possessivePattern = regexp.MustCompile(`^(.+?)(?:'s|’s)\s+(.+)$`)

type offerQuery struct {
	item   string
	player string
}

func parseOfferQuery(raw string) offerQuery {
	raw = textutil.CollapseWhitespace(raw)
	if groups := fromPattern.FindStringSubmatch(raw); groups != nil {
		return offerQuery{item: groups[1], player: groups[2]}
	}
	if groups := possessivePattern.FindStringSubmatch(raw); groups != nil {
		return offerQuery{item: groups[2], player: groups[1]}
	}
	return offerQuery{item: raw}
}

// MatchOffers resolves free text against a pool of offers. The item
// fragment is scored against both the normalized and the raw item text;
// a player fragment, when present, is scored against the offerer and
// averaged in. Ties prefer the most recently created offer.
func MatchOffers(offers []Offer, query string, opts MatchOptions) Match {
	opts = opts.withDefaults()
	parsed := parseOfferQuery(query)
	if textutil.NormalizeName(parsed.item) == "" || len(offers) == 0 {
		return Match{Kind: MatchNone}
	}

	candidates := make([]Candidate, 0, len(offers))
	for i := range offers {
		offer := offers[i]

		score := scoreNames(parsed.item, offer.Item)
		if raw := scoreNames(parsed.item, offer.ItemRaw); raw > score {
			score = raw
		}
		if parsed.player != "" {
			player := scoreNames(parsed.player, offer.OffererName)
			if byID := scoreNames(parsed.player, offer.OffererID); byID > player {
				player = byID
			}
			score = (score + player) / 2
		}

		candidates = append(candidates, Candidate{
			Name:  offer.Item,
			Score: score,
			Offer: &offer,
		})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].Score != candidates[b].Score {
			return candidates[a].Score > candidates[b].Score
		}
		return candidates[a].Offer.CreatedAt.After(candidates[b].Offer.CreatedAt)
	})

	return decide(candidates, opts)
}
