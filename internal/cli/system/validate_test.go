package system

import (
	"testing"

	"github.com/julianstephens/watchlit/internal/models"
)

func TestValidateCmd(t *testing.T) {
	tests := []struct {
		name      string
		fix       bool
		wantColor int
		wantEp    int
	}{
		{name: "report only", fix: false, wantColor: 9, wantEp: -2},
		{name: "fix", fix: true, wantColor: 0, wantEp: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setupTestContext(t)

			broken := models.NewShow("Severance", "fri 21:00")
			broken.Color = 9
			broken.Episode = -2
			addShows(t, ctx, models.NewShow("Andor", ""), broken)

			if err := (&ValidateCmd{Fix: tt.fix}).Run(ctx); err != nil {
				t.Fatalf("validate failed: %v", err)
			}

			stored, err := ctx.Store.GetShow(broken.ID)
			if err != nil {
				t.Fatal(err)
			}
			if stored.Color != tt.wantColor || stored.Episode != tt.wantEp {
				t.Errorf("color = %d, episode = %d, want %d, %d", stored.Color, stored.Episode, tt.wantColor, tt.wantEp)
			}
		})
	}
}

func TestValidateCmd_Clean(t *testing.T) {
	ctx := setupTestContext(t)
	addShows(t, ctx, models.NewShow("Andor", "wed 18:00"))

	if err := (&ValidateCmd{Fix: true}).Run(ctx); err != nil {
		t.Errorf("validate on a clean watchlist failed: %v", err)
	}
}
