package suggest

import "testing"

func TestName_PicksClosestWithinDistance(t *testing.T) {
	got := Name("Uuid", []string{"UUID", "String", "Int"}, 3)
	if got != "UUID" {
		t.Errorf("expected UUID suggested for Uuid, got %q", got)
	}
}

func TestName_NoneWithinDistanceReturnsEmpty(t *testing.T) {
	got := Name("Zzzzzzzzz", []string{"UUID", "String", "Int"}, 2)
	if got != "" {
		t.Errorf("expected no suggestion, got %q", got)
	}
}

func TestName_ExcludesExactMatchFromCandidates(t *testing.T) {
	got := Name("balance", []string{"balance"}, 3)
	if got != "" {
		t.Errorf("expected an exact match not to be suggested as its own correction, got %q", got)
	}
}

func TestName_TiesKeepFirstEncountered(t *testing.T) {
	got := Name("cat", []string{"bat", "hat"}, 1)
	if got != "bat" {
		t.Errorf("expected the first equally-close candidate kept on a tie, got %q", got)
	}
}

func TestLevenshtein_CaseSensitive(t *testing.T) {
	if levenshtein("abc", "abc") != 0 {
		t.Error("expected identical strings to have distance 0")
	}
	if levenshtein("ABC", "abc") == 0 {
		t.Error("expected case differences to count as edits")
	}
}
