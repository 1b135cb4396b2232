package metrics

import (
	"math"
	"strings"
	"testing"
)

const tolerance float64 = 1e-9

// TestSummarizeOdd checks the summary statistics of a small
// collection with an extreme outlier. The interquartile mean and
// median should shrug the outlier off while the mean and standard
// deviation absorb it.
func TestSummarizeOdd(t *testing.T) {
	returns := []float64{1, 2, 3, 4, 100}

	summary, err := Summarize(returns)
	if err != nil {
		t.Fatalf("could not summarize returns: %v", err)
	}

	if math.Abs(summary.Mean-22) > tolerance {
		t.Errorf("expected mean 22, got %v", summary.Mean)
	}
	if math.Abs(summary.StdDev-math.Sqrt(1522)) > tolerance {
		t.Errorf("expected standard deviation %v, got %v",
			math.Sqrt(1522), summary.StdDev)
	}
	if math.Abs(summary.Median-3) > tolerance {
		t.Errorf("expected median 3, got %v", summary.Median)
	}
	if math.Abs(summary.IQM-3) > tolerance {
		t.Errorf("expected interquartile mean 3, got %v", summary.IQM)
	}
	if summary.Min != 1 || summary.Max != 100 {
		t.Errorf("expected min 1 and max 100, got %v and %v",
			summary.Min, summary.Max)
	}
}

// TestSummarizeEven checks the statistics that depend on the parity
// of the collection's length.
func TestSummarizeEven(t *testing.T) {
	returns := []float64{4, 1, 3, 2}

	summary, err := Summarize(returns)
	if err != nil {
		t.Fatalf("could not summarize returns: %v", err)
	}

	if math.Abs(summary.Median-2.5) > tolerance {
		t.Errorf("expected median 2.5, got %v", summary.Median)
	}
	if math.Abs(summary.IQM-2.5) > tolerance {
		t.Errorf("expected interquartile mean 2.5, got %v", summary.IQM)
	}
	if math.Abs(summary.StdDev-math.Sqrt(1.25)) > tolerance {
		t.Errorf("expected standard deviation %v, got %v",
			math.Sqrt(1.25), summary.StdDev)
	}
}

// TestSummarizeTrim ensures that the interquartile mean drops a
// quarter of the values from each tail, rounding the trim down.
func TestSummarizeTrim(t *testing.T) {
	returns := make([]float64, 16)
	for i := range returns {
		returns[i] = float64(i + 1)
	}

	summary, err := Summarize(returns)
	if err != nil {
		t.Fatalf("could not summarize returns: %v", err)
	}

	// 4 values trimmed from each tail leaves 5 through 12
	if math.Abs(summary.IQM-8.5) > tolerance {
		t.Errorf("expected interquartile mean 8.5, got %v", summary.IQM)
	}

	// A trim of 3/4 truncates to 0, so nothing is dropped
	summary, err = Summarize([]float64{9, 3, 6})
	if err != nil {
		t.Fatalf("could not summarize returns: %v", err)
	}
	if math.Abs(summary.IQM-6) > tolerance {
		t.Errorf("expected interquartile mean 6, got %v", summary.IQM)
	}
}

// TestSummarizeSingle ensures that a single return produces that
// return for every statistic with zero spread.
func TestSummarizeSingle(t *testing.T) {
	summary, err := Summarize([]float64{42})
	if err != nil {
		t.Fatalf("could not summarize returns: %v", err)
	}

	if summary.Mean != 42 || summary.Median != 42 || summary.IQM != 42 {
		t.Errorf("unexpected summary %+v", summary)
	}
	if summary.StdDev != 0 {
		t.Errorf("expected zero standard deviation, got %v",
			summary.StdDev)
	}
}

// TestSummarizeEmpty ensures that an empty collection is rejected.
func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(nil); err == nil {
		t.Error("expected error for empty returns")
	}
}

// TestSummaryString checks the printable form of a Summary.
func TestSummaryString(t *testing.T) {
	summary, err := Summarize([]float64{1, 2, 3, 4, 100})
	if err != nil {
		t.Fatalf("could not summarize returns: %v", err)
	}

	want := "mean: 22.00\nstd: 39.01\nmedian: 3.00\niqm: 3.00"
	if summary.String() != want {
		t.Errorf("unexpected summary string %q, want %q",
			summary.String(), want)
	}
}

// TestNormalize checks human normalization against the published
// baselines.
func TestNormalize(t *testing.T) {
	random := AtariBaselines["breakout"].Random
	human := AtariBaselines["breakout"].Human

	score, err := AtariBaselines.Normalize("breakout", human)
	if err != nil {
		t.Fatalf("could not normalize score: %v", err)
	}
	if math.Abs(score-1) > tolerance {
		t.Errorf("human play should normalize to 1, got %v", score)
	}

	score, err = AtariBaselines.Normalize("breakout", random)
	if err != nil {
		t.Fatalf("could not normalize score: %v", err)
	}
	if math.Abs(score) > tolerance {
		t.Errorf("random play should normalize to 0, got %v", score)
	}

	midpoint := random + (human-random)/2
	score, err = AtariBaselines.Normalize("breakout", midpoint)
	if err != nil {
		t.Fatalf("could not normalize score: %v", err)
	}
	if math.Abs(score-0.5) > tolerance {
		t.Errorf("midpoint should normalize to 0.5, got %v", score)
	}
}

// TestNormalizeUnknownGame ensures that a game without baselines is
// reported as a lookup failure naming the game.
func TestNormalizeUnknownGame(t *testing.T) {
	_, err := AtariBaselines.Normalize("pinball_wizard", 100)
	if err == nil {
		t.Fatal("expected error for unknown game")
	}
	if !IsUnknownGame(err) {
		t.Errorf("expected an unknown game error, got %v", err)
	}

	if got := err.Error(); !strings.Contains(got, "pinball_wizard") {
		t.Errorf("error %q does not name the game", got)
	}
}

// TestNormalizeAll ensures that whole collections normalize
// element-wise and that lookup failures discard the collection.
func TestNormalizeAll(t *testing.T) {
	random := AtariBaselines["pong"].Random
	human := AtariBaselines["pong"].Human

	scores, err := AtariBaselines.NormalizeAll("pong",
		[]float64{random, human})
	if err != nil {
		t.Fatalf("could not normalize scores: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 scores, got %v", len(scores))
	}
	if math.Abs(scores[0]) > tolerance ||
		math.Abs(scores[1]-1) > tolerance {
		t.Errorf("unexpected normalized scores %v", scores)
	}

	scores, err = AtariBaselines.NormalizeAll("pinball_wizard",
		[]float64{1, 2})
	if err == nil {
		t.Fatal("expected error for unknown game")
	}
	if scores != nil {
		t.Errorf("expected no scores on lookup failure, got %v", scores)
	}
}
