package service

import (
	"reflect"
	"testing"
)

func TestIndustryComparisonKnownRole(t *testing.T) {
	got := IndustryComparison("Manager", 40.04, 7, 55)

	if got.RoleAvgScore != 52 || got.SampleSize != 9800 {
		t.Fatalf("expected manager benchmark, got %+v", got)
	}
	if got.GlobalAvgScore != 43 {
		t.Fatalf("expected global avg 43, got %v", got.GlobalAvgScore)
	}
	if got.ScoreDiff != -12 || !got.ScoreBetter {
		t.Fatalf("expected score diff -12 and better, got %v/%v", got.ScoreDiff, got.ScoreBetter)
	}
	if got.StressDiff != -0.1 {
		t.Fatalf("expected stress diff -0.1, got %v", got.StressDiff)
	}
	if got.HoursDiff != 4 {
		t.Fatalf("expected hours diff 4, got %v", got.HoursDiff)
	}
	if got.UserScore != 40 {
		t.Fatalf("expected user score rounded to 40, got %v", got.UserScore)
	}
}

func TestIndustryComparisonUnknownRoleFallsBackToGlobal(t *testing.T) {
	got := IndustryComparison("Astronaut", 60, 6.2, 46.5)

	if got.Role != "Astronaut" {
		t.Fatalf("expected role name preserved, got %q", got.Role)
	}
	if got.RoleAvgScore != 43 || got.SampleSize != 48400 {
		t.Fatalf("expected global benchmark, got %+v", got)
	}
	if got.ScoreDiff != 17 || got.ScoreBetter {
		t.Fatalf("expected worse-than-average score, got %+v", got)
	}
	if got.StressDiff != 0 || got.HoursDiff != 0 {
		t.Fatalf("expected zero diffs against global averages, got %+v", got)
	}
}

func TestIndustryComparisonIsIdempotent(t *testing.T) {
	for _, role := range []string{"Engineer", "Sales", "HR", "Analyst", "unknown", ""} {
		first := IndustryComparison(role, 33.3, 5, 44)
		second := IndustryComparison(role, 33.3, 5, 44)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("role %q: lookup not idempotent: %+v vs %+v", role, first, second)
		}
	}
}

func TestIndustryComparisonEqualScoreIsNotBetter(t *testing.T) {
	got := IndustryComparison("Engineer", 42, 6.2, 47)
	if got.ScoreDiff != 0 || got.ScoreBetter {
		t.Fatalf("expected equal score to not be better, got %+v", got)
	}
}
