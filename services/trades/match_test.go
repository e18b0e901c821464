package trades

import (
	"strings"
	"testing"
	"time"

	"arctraders-backend/lib/catalog"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func testCatalog() *catalog.Store {
	return catalog.New([]catalog.Entry{
		{Name: "Anvil", Aliases: []string{"Anvil Blueprint"}},
		{Name: "Pliers", Aliases: []string{"Pliers Blueprint"}},
		{Name: "Atlas Chassis"},
		{Name: "ARC Alloy"},
	})
}

func TestMatchCatalogExact(t *testing.T) {
	store := testCatalog()

	for _, query := range []string{"Anvil", "anvil", "ANVIL", "  anvil  "} {
		match := MatchCatalog(store, query, MatchOptions{})
		require.Equal(t, MatchUnique, match.Kind, "query %q", query)
		require.Equal(t, "Anvil", match.Best.Entry.Name)
		require.Equal(t, float64(1), match.Best.Score)
	}
}

func TestMatchCatalogAlias(t *testing.T) {
	store := testCatalog()

	byAlias := MatchCatalog(store, "anvil blueprint", MatchOptions{})
	require.Equal(t, MatchUnique, byAlias.Kind)

	byName := MatchCatalog(store, "anvil", MatchOptions{})
	require.Equal(t, MatchUnique, byName.Kind)

	require.Equal(t, byName.Best.Entry.Name, byAlias.Best.Entry.Name)
}

func TestMatchCatalogNoMatch(t *testing.T) {
	store := testCatalog()

	match := MatchCatalog(store, "rocket launcher", MatchOptions{})
	require.Equal(t, MatchNone, match.Kind)

	match = MatchCatalog(store, "", MatchOptions{})
	require.Equal(t, MatchNone, match.Kind)

	match = MatchCatalog(catalog.New(nil), "anvil", MatchOptions{})
	require.Equal(t, MatchNone, match.Kind)
}

func TestMatchCatalogNormalizationInvariance(t *testing.T) {
	store := testCatalog()

	rapid.Check(t, func(t *rapid.T) {
		entry := rapid.SampledFrom(store.Entries()).Draw(t, "entry")

		// mangle casing and pad with whitespace, the match must survive
		mangled := strings.Builder{}
		for _, c := range entry.Name {
			if rapid.Bool().Draw(t, "upper") {
				mangled.WriteString(strings.ToUpper(string(c)))
			} else {
				mangled.WriteString(strings.ToLower(string(c)))
			}
		}
		pad := rapid.SliceOfN(rapid.SampledFrom([]string{" ", "\t"}), 0, 3).Draw(t, "pad")
		query := strings.Join(pad, "") + mangled.String()

		match := MatchCatalog(store, query, MatchOptions{})
		if match.Kind != MatchUnique {
			t.Fatalf("query %q did not match uniquely", query)
		}
		if match.Best.Entry.Name != entry.Name {
			t.Fatalf("query %q matched %q, want %q", query, match.Best.Entry.Name, entry.Name)
		}
		if match.Best.Score != 1 {
			t.Fatalf("query %q scored %f, want 1", query, match.Best.Score)
		}
	})
}

func testOffers() []Offer {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []Offer{
		{
			ID:          "aaaa1111",
			Status:      StatusOpen,
			Item:        "Anvil",
			ItemRaw:     "Anvil Blueprint",
			OffererID:   "100",
			OffererName: "Doug",
			CreatedAt:   base,
		},
		{
			ID:          "bbbb2222",
			Status:      StatusOpen,
			Item:        "Pliers",
			ItemRaw:     "pliers",
			OffererID:   "200",
			OffererName: "Ava",
			CreatedAt:   base.Add(time.Minute),
		},
		{
			ID:          "cccc3333",
			Status:      StatusOpen,
			Item:        "Pliers",
			ItemRaw:     "pliers",
			OffererID:   "300",
			OffererName: "Kit",
			CreatedAt:   base.Add(2 * time.Minute),
		},
	}
}

func TestMatchOffersUnique(t *testing.T) {
	match := MatchOffers(testOffers(), "anvil", MatchOptions{})
	require.Equal(t, MatchUnique, match.Kind)
	require.Equal(t, "aaaa1111", match.Best.Offer.ID)
}

func TestMatchOffersPlayerQualifier(t *testing.T) {
	// two pliers offers, the player fragment disambiguates
	match := MatchOffers(testOffers(), "pliers from Ava", MatchOptions{})
	require.Equal(t, MatchUnique, match.Kind)
	require.Equal(t, "bbbb2222", match.Best.Offer.ID)

	match = MatchOffers(testOffers(), "Kit's pliers", MatchOptions{})
	require.Equal(t, MatchUnique, match.Kind)
	require.Equal(t, "cccc3333", match.Best.Offer.ID)
}

func TestMatchOffersAmbiguous(t *testing.T) {
	match := MatchOffers(testOffers(), "pliers", MatchOptions{})
	require.Equal(t, MatchAmbiguous, match.Kind)
	require.Len(t, match.Candidates, 2)
	// ties surface the newest offer first
	require.Equal(t, "cccc3333", match.Candidates[0].Offer.ID)
	require.Equal(t, "bbbb2222", match.Candidates[1].Offer.ID)
}

func TestMatchOffersEmpty(t *testing.T) {
	match := MatchOffers(nil, "anvil", MatchOptions{})
	require.Equal(t, MatchNone, match.Kind)

	match = MatchOffers(testOffers(), "   ", MatchOptions{})
	require.Equal(t, MatchNone, match.Kind)
}

func TestParseOfferQuery(t *testing.T) {
	q := parseOfferQuery("anvil from Doug")
	require.Equal(t, "anvil", q.item)
	require.Equal(t, "Doug", q.player)

	q = parseOfferQuery("Doug's anvil")
	require.Equal(t, "anvil", q.item)
	require.Equal(t, "Doug", q.player)

	q = parseOfferQuery("anvil")
	require.Equal(t, "anvil", q.item)
	require.Equal(t, "", q.player)
}
