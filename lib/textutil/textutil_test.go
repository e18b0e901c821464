package textutil

import "testing"

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"Anvil Blueprint":    "anvilblueprint",
		"  anvil\tBLUEPRINT": "anvilblueprint",
		"pliers":             "pliers",
		"":                   "",
	}
	for in, want := range cases {
		got := NormalizeName(in)
		if got != want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	got := CollapseWhitespace("  Anvil \n Blueprint\t")
	if got != "Anvil Blueprint" {
		t.Fatalf("got %q", got)
	}
}

func TestSnakeCase(t *testing.T) {
	got := SnakeCase("Crafting  Recipe")
	if got != "crafting_recipe" {
		t.Fatalf("got %q", got)
	}
}
