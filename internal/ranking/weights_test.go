package ranking

import (
	"reflect"
	"testing"

	"github.com/julianstephens/watchlit/internal/models"
)

func weights(shows []*models.Show) []int {
	out := make([]int, len(shows))
	for i, s := range shows {
		out[i] = s.Weight
	}
	return out
}

func TestExistingWeights(t *testing.T) {
	shows := []*models.Show{
		newShow("a", 5, ""),
		newShow("b", 3, ""),
		newShow("c", 5, ""),
		newShow("d", -1, ""),
	}

	got := ExistingWeights(shows)
	want := []WeightCount{{5, 2}, {3, 1}, {-1, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExistingWeights() = %v, want %v", got, want)
	}

	if got := ExistingWeights(nil); len(got) != 0 {
		t.Errorf("ExistingWeights(nil) = %v, want empty", got)
	}
}

func TestChangeWeights_NoCascade(t *testing.T) {
	shows := []*models.Show{
		newShow("a", 1, ""),
		newShow("b", 2, ""),
		newShow("c", 7, ""),
	}

	changed := ChangeWeights(shows, map[int]int{1: 2, 2: 3, 7: 7})

	if got, want := weights(shows), []int{2, 3, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("weights = %v, want %v", got, want)
	}
	if len(changed) != 2 {
		t.Errorf("changed %d shows, want 2", len(changed))
	}
}

func TestShiftWeights(t *testing.T) {
	counts := []WeightCount{{5, 2}, {3, 1}, {1, 4}}

	tests := []struct {
		name        string
		index       int
		delta       int
		wantCounts  []WeightCount
		wantMapping map[int]int
	}{
		{
			name:        "up raises index and heavier rows",
			index:       1,
			delta:       1,
			wantCounts:  []WeightCount{{6, 2}, {4, 1}, {1, 4}},
			wantMapping: map[int]int{5: 6, 3: 4, 1: 1},
		},
		{
			name:        "down lowers index and lighter rows",
			index:       1,
			delta:       -1,
			wantCounts:  []WeightCount{{5, 2}, {2, 1}, {0, 4}},
			wantMapping: map[int]int{5: 5, 3: 2, 1: 0},
		},
		{
			name:        "up at top moves only the top row",
			index:       0,
			delta:       1,
			wantCounts:  []WeightCount{{6, 2}, {3, 1}, {1, 4}},
			wantMapping: map[int]int{5: 6, 3: 3, 1: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotCounts, gotMapping, err := ShiftWeights(counts, tt.index, tt.delta)
			if err != nil {
				t.Fatalf("ShiftWeights() error = %v", err)
			}
			if !reflect.DeepEqual(gotCounts, tt.wantCounts) {
				t.Errorf("counts = %v, want %v", gotCounts, tt.wantCounts)
			}
			if !reflect.DeepEqual(gotMapping, tt.wantMapping) {
				t.Errorf("mapping = %v, want %v", gotMapping, tt.wantMapping)
			}
		})
	}

	if _, _, err := ShiftWeights(counts, 3, 1); err == nil {
		t.Error("expected error for out of range index")
	}
	if _, _, err := ShiftWeights(counts, -1, 1); err == nil {
		t.Error("expected error for negative index")
	}
}

func TestShiftThenChangeWeights(t *testing.T) {
	shows := []*models.Show{
		newShow("a", 5, ""),
		newShow("b", 4, ""),
		newShow("c", 2, ""),
	}

	_, mapping, err := ShiftWeights(ExistingWeights(shows), 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	ChangeWeights(shows, mapping)

	if got, want := weights(shows), []int{6, 5, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("weights = %v, want %v", got, want)
	}
}
