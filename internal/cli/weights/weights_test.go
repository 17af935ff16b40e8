package weights

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/watchlit/internal/cli"
	"github.com/julianstephens/watchlit/internal/models"
	"github.com/julianstephens/watchlit/internal/storage/sqlite"
)

func setupTestDB(t *testing.T, weights ...int) *cli.Context {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for i, w := range weights {
		show := models.NewShow(string(rune('A'+i)), "")
		show.ID = i
		show.Weight = w
		if err := store.AddShow(show); err != nil {
			t.Fatal(err)
		}
	}
	return &cli.Context{Store: store}
}

func storedWeights(t *testing.T, ctx *cli.Context) map[string]int {
	t.Helper()
	shows, err := ctx.Store.GetAllShows()
	if err != nil {
		t.Fatal(err)
	}
	out := make(map[string]int, len(shows))
	for _, s := range shows {
		out[s.Title] = s.Weight
	}
	return out
}

func TestWeightsShiftCmd(t *testing.T) {
	tests := []struct {
		name    string
		cmd     WeightsShiftCmd
		want    map[string]int
		wantErr bool
	}{
		{
			name: "up moves the row and heavier rows",
			cmd:  WeightsShiftCmd{Index: 1, Direction: "up", By: 1},
			want: map[string]int{"A": 6, "B": 3, "C": 3, "D": 0},
		},
		{
			name: "down moves the row and lighter rows",
			cmd:  WeightsShiftCmd{Index: 1, Direction: "down", By: 2},
			want: map[string]int{"A": 5, "B": 0, "C": 0, "D": -2},
		},
		{
			name:    "index out of range",
			cmd:     WeightsShiftCmd{Index: 5, Direction: "up", By: 1},
			want:    map[string]int{"A": 5, "B": 2, "C": 2, "D": 0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setupTestDB(t, 5, 2, 2, 0)

			err := tt.cmd.Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}

			got := storedWeights(t, ctx)
			for title, w := range tt.want {
				if got[title] != w {
					t.Errorf("weight of %s = %d, want %d", title, got[title], w)
				}
			}
		})
	}
}

func TestWeightsShiftCmd_Validate(t *testing.T) {
	if err := (&WeightsShiftCmd{By: 0}).Validate(); err == nil {
		t.Error("--by 0 should be rejected")
	}
}

func TestWeightsListCmd(t *testing.T) {
	if err := (&WeightsListCmd{}).Run(setupTestDB(t)); err != nil {
		t.Errorf("empty list failed: %v", err)
	}
	if err := (&WeightsListCmd{}).Run(setupTestDB(t, 1, 1, 3)); err != nil {
		t.Errorf("list failed: %v", err)
	}
}
