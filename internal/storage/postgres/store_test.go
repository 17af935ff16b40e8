package postgres

import (
	"errors"
	"testing"
)

func TestHasParam(t *testing.T) {
	tests := []struct {
		connStr string
		key     string
		want    bool
	}{
		{connStr: "", key: "sslmode", want: false},
		{connStr: "host=localhost dbname=watchlit user=postgres", key: "search_path", want: false},
		{connStr: "host=localhost SEARCH_PATH=watchlit", key: "search_path", want: true},
		{connStr: "search_path=public,watchlit host=localhost", key: "search_path", want: true},
		{connStr: "host=localhost user=sslmode dbname=db", key: "sslmode", want: false},
		{connStr: "host=localhost password=search_path_1", key: "search_path", want: false},
		{connStr: "postgres://user@localhost:5432/db", key: "sslmode", want: false},
		{connStr: "postgres://user@localhost:5432/db?SSLMODE=require", key: "sslmode", want: true},
		{connStr: "postgresql://localhost/db?search_path=public", key: "search_path", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.connStr+"/"+tt.key, func(t *testing.T) {
			if got := hasParam(tt.connStr, tt.key); got != tt.want {
				t.Errorf("hasParam(%q, %q) = %v, want %v", tt.connStr, tt.key, got, tt.want)
			}
		})
	}
}

func TestValidateConnString(t *testing.T) {
	tests := []struct {
		name    string
		connStr string
		wantErr error
	}{
		{name: "url", connStr: "postgres://user@localhost:5432/db?sslmode=disable"},
		{name: "dsn", connStr: "host=localhost user=user dbname=db sslmode=disable"},
		{name: "url with password", connStr: "postgres://user:pw@localhost:5432/db", wantErr: ErrEmbeddedCredentials},
		{name: "dsn with password", connStr: "host=localhost password=pw dbname=db", wantErr: ErrEmbeddedCredentials},
		{name: "empty", connStr: "  ", wantErr: ErrInvalidConnectionString},
		{name: "malformed", connStr: "://invalid", wantErr: ErrInvalidConnectionString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := ValidateConnString(tt.connStr)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateConnString() error = %v, want %v", err, tt.wantErr)
			}
			if ok != (tt.wantErr == nil) {
				t.Errorf("ValidateConnString() = %v with error %v", ok, err)
			}
		})
	}
}

func TestNew_SearchPath(t *testing.T) {
	tests := []struct {
		connStr string
		want    string
	}{
		{connStr: "postgres://user@localhost:5432/db", want: "postgres://user@localhost:5432/db?search_path=watchlit"},
		{connStr: "postgres://user@localhost:5432/db?search_path=public", want: "postgres://user@localhost:5432/db?search_path=public"},
		{connStr: "host=localhost dbname=db ", want: "host=localhost dbname=db search_path=watchlit"},
		{connStr: "host=localhost search_path=public", want: "host=localhost search_path=public"},
	}

	for _, tt := range tests {
		t.Run(tt.connStr, func(t *testing.T) {
			if got := New(tt.connStr).connStr; got != tt.want {
				t.Errorf("New(%q).connStr = %q, want %q", tt.connStr, got, tt.want)
			}
		})
	}
}
