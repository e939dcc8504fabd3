package assessment

import (
	"reflect"
	"testing"
)

func twoQuestionTest() Test {
	opts := []Option{
		{Text: "a", Score: 0},
		{Text: "b", Score: 5},
		{Text: "c", Score: 10},
		{Text: "d", Score: 20},
	}
	return Test{
		ID:    "screen",
		Title: "Screen",
		Questions: []Question{
			{Text: "q1", Options: opts},
			{Text: "q2", Options: opts},
		},
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		answers []int
		want    Outcome
	}{
		{name: "top picks", answers: []int{3, 2}, want: Outcome{Score: 30, Band: BandHigh}},
		{name: "all zero", answers: []int{0, 0}, want: Outcome{Score: 0, Band: BandLow}},
		{name: "missing second answer", answers: []int{1}, want: Outcome{Score: 5, Band: BandLow, Partial: true}},
		{name: "empty answers", answers: []int{}, want: Outcome{Score: 0, Band: BandLow, Partial: true}},
		{name: "nil answers", answers: nil, want: Outcome{Score: 0, Band: BandLow, Partial: true}},
		{name: "out of range index", answers: []int{9, 2}, want: Outcome{Score: 10, Band: BandLow, Partial: true}},
		{name: "negative index", answers: []int{-1, 3}, want: Outcome{Score: 20, Band: BandModerate, Partial: true}},
		{name: "extra answers ignored", answers: []int{3, 2, 7, 7}, want: Outcome{Score: 30, Band: BandHigh}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(twoQuestionTest(), tc.answers)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Score(%v) = %+v, want %+v", tc.answers, got, tc.want)
			}
		})
	}
}

func TestScoreNoQuestions(t *testing.T) {
	got := Score(Test{ID: "empty"}, []int{1, 2})
	if got.Score != 0 || got.Band != BandLow || got.Partial {
		t.Fatalf("got %+v, want score 0, Low, not partial", got)
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{total: -5, want: BandLow},
		{total: 0, want: BandLow},
		{total: 15, want: BandLow},
		{total: 16, want: BandModerate},
		{total: 25, want: BandModerate},
		{total: 26, want: BandHigh},
		{total: 100, want: BandHigh},
	}
	for _, tc := range tests {
		if got := BandFor(tc.total); got != tc.want {
			t.Errorf("BandFor(%d) = %q, want %q", tc.total, got, tc.want)
		}
	}
}
