package storage

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/julianstephens/watchlit/internal/models"
)

// fakeRow replays a fixed set of column values into Scan destinations.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int:
			*p = r.values[i].(int)
		case *int64:
			*p = r.values[i].(int64)
		case *string:
			*p = r.values[i].(string)
		case *bool:
			*p = r.values[i].(bool)
		}
	}
	return nil
}

func TestLinksRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		links []string
		want  string
	}{
		{name: "nil", links: nil, want: "[]"},
		{name: "empty", links: []string{}, want: "[]"},
		{name: "two links", links: []string{"https://a.example", "https://b.example"}, want: `["https://a.example","https://b.example"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeLinks(tt.links)
			if err != nil {
				t.Fatalf("EncodeLinks() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("EncodeLinks() = %q, want %q", got, tt.want)
			}

			back, err := DecodeLinks(got)
			if err != nil {
				t.Fatalf("DecodeLinks() error = %v", err)
			}
			if len(tt.links) == 0 {
				if back != nil {
					t.Errorf("DecodeLinks() = %v, want nil", back)
				}
				return
			}
			if !slices.Equal(back, tt.links) {
				t.Errorf("DecodeLinks() = %v, want %v", back, tt.links)
			}
		})
	}
}

func TestDecodeLinks_Invalid(t *testing.T) {
	if _, err := DecodeLinks("not json"); err == nil {
		t.Error("expected error for malformed links column")
	}
	if links, err := DecodeLinks(""); err != nil || links != nil {
		t.Errorf("DecodeLinks(\"\") = %v, %v, want nil, nil", links, err)
	}
}

func TestScanShow(t *testing.T) {
	row := fakeRow{values: []any{
		3, "Frieren", 12, 1, `["https://example.com"]`, 2, 1,
		true, false, false, "fri 18:00", int64(1736157600),
	}}

	show, err := ScanShow(row)
	if err != nil {
		t.Fatalf("ScanShow() error = %v", err)
	}
	if show.ID != 3 || show.Title != "Frieren" || show.Episode != 12 || show.Season != 1 {
		t.Errorf("unexpected show fields: %+v", show)
	}
	if !show.ShowDetails || show.Hidden || show.Ended {
		t.Errorf("unexpected flags: %+v", show)
	}
	if show.Schedule() != "fri 18:00" || !show.Release.IsDefined() {
		t.Errorf("schedule = %q, defined = %v", show.Schedule(), show.Release.IsDefined())
	}
	if len(show.Links) != 1 || show.Links[0] != "https://example.com" {
		t.Errorf("links = %v", show.Links)
	}

	args, err := ShowArgs(show)
	if err != nil {
		t.Fatalf("ShowArgs() error = %v", err)
	}
	for i, want := range row.values {
		if args[i] != want {
			t.Errorf("ShowArgs()[%d] = %v, want %v", i, args[i], want)
		}
	}
}

func TestScanShow_Error(t *testing.T) {
	sentinel := errors.New("boom")
	if _, err := ScanShow(fakeRow{err: sentinel}); !errors.Is(err, sentinel) {
		t.Errorf("ScanShow() error = %v, want %v", err, sentinel)
	}
}

func TestScanNotification(t *testing.T) {
	sent := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
	n, err := ScanNotification(fakeRow{values: []any{"abc", 4, "New episode", sent.Unix()}})
	if err != nil {
		t.Fatalf("ScanNotification() error = %v", err)
	}
	want := models.Notification{ID: "abc", ShowID: 4, Message: "New episode"}
	if n.ID != want.ID || n.ShowID != want.ShowID || n.Message != want.Message {
		t.Errorf("ScanNotification() = %+v", n)
	}
	if !n.SentAt.Equal(sent) {
		t.Errorf("SentAt = %v, want %v", n.SentAt, sent)
	}
}
