package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/watchlit/internal/constants"
)

func setupTestDB(t *testing.T, titles ...string) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "watchlit.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE shows (id INTEGER PRIMARY KEY, title TEXT NOT NULL)`); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}
	for i, title := range titles {
		if _, err := db.Exec("INSERT INTO shows (id, title) VALUES (?, ?)", i, title); err != nil {
			t.Fatalf("failed to insert test data: %v", err)
		}
	}
	return dbPath
}

func countShows(t *testing.T, path string) int {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM shows").Scan(&count); err != nil {
		t.Fatalf("failed to count shows in %s: %v", path, err)
	}
	return count
}

// fixedClock returns a clock that advances one minute per call.
func fixedClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(time.Minute)
		return t
	}
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t, "Andor", "Severance")

	mgr := NewManager(dbPath)
	mgr.now = fixedClock(time.Date(2025, 1, 6, 12, 30, 0, 0, time.Local))

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	wantName := constants.BackupFilePrefix + "20250106-1230" + constants.BackupFileSuffix
	if filepath.Base(backupPath) != wantName {
		t.Errorf("backup name = %s, want %s", filepath.Base(backupPath), wantName)
	}
	if filepath.Dir(backupPath) != mgr.GetBackupDir() {
		t.Errorf("backup dir = %s, want %s", filepath.Dir(backupPath), mgr.GetBackupDir())
	}
	if got := countShows(t, backupPath); got != 2 {
		t.Errorf("backup has %d shows, want 2", got)
	}
}

func TestCreateBackup_MissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestCreateBackup_SameMinute(t *testing.T) {
	dbPath := setupTestDB(t, "Andor")
	mgr := NewManager(dbPath)
	at := time.Date(2025, 1, 6, 12, 30, 15, 0, time.Local)
	mgr.now = func() time.Time { return at }

	var names []string
	for i := 0; i < 3; i++ {
		path, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		names = append(names, filepath.Base(path))
	}

	want := []string{
		"watchlit-20250106-1230.db",
		"watchlit-20250106-123015.db",
		"watchlit-20250106-123015-1.db",
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("backup %d = %s, want %s", i, names[i], want[i])
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 3 {
		t.Errorf("ListBackups() returned %d backups, want 3", len(backups))
	}
}

func TestListBackups(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups before the directory exists, got %d", len(backups))
	}

	mgr.now = fixedClock(time.Date(2025, 1, 6, 12, 0, 0, 0, time.Local))
	for i := 0; i < 3; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatal(err)
		}
	}
	// Foreign files are ignored.
	if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), "watchlit-garbage.db"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("ListBackups() returned %d backups, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if !backups[i-1].Timestamp.After(backups[i].Timestamp) {
			t.Errorf("backups not sorted newest first: %v then %v", backups[i-1].Timestamp, backups[i].Timestamp)
		}
	}
	if backups[0].Size == 0 {
		t.Error("expected a non-empty backup size")
	}
}

func TestParseBackupName(t *testing.T) {
	tests := []struct {
		name string
		want time.Time
		ok   bool
	}{
		{name: "watchlit-20250106-1230.db", want: time.Date(2025, 1, 6, 12, 30, 0, 0, time.Local), ok: true},
		{name: "watchlit-20250106-123015.db", want: time.Date(2025, 1, 6, 12, 30, 15, 0, time.Local), ok: true},
		{name: "watchlit-20250106-123015-7.db", want: time.Date(2025, 1, 6, 12, 30, 15, 0, time.Local), ok: true},
		{name: "watchlit-20250106-123015-x.db"},
		{name: "other-20250106-1230.db"},
		{name: "watchlit-20250106-1230.sqlite"},
		{name: "watchlit-yesterday.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseBackupName(tt.name)
			if ok != tt.ok {
				t.Fatalf("parseBackupName() ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("parseBackupName() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotateBackups(t *testing.T) {
	dbPath := setupTestDB(t, "Andor")
	mgr := NewManager(dbPath)
	mgr.now = fixedClock(time.Date(2025, 1, 6, 12, 0, 0, 0, time.Local))

	var first string
	for i := 0; i < constants.MaxBackups+3; i++ {
		path, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup() #%d error = %v", i, err)
		}
		if i == 0 {
			first = path
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("kept %d backups, want %d", len(backups), constants.MaxBackups)
	}
	if _, err := os.Stat(first); !os.IsNotExist(err) {
		t.Errorf("oldest backup %s should have been rotated away", first)
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t, "Andor", "Severance")
	mgr := NewManager(dbPath)
	mgr.now = fixedClock(time.Date(2025, 1, 6, 12, 0, 0, 0, time.Local))

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("DELETE FROM shows"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	preserved, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}
	if got := countShows(t, dbPath); got != 2 {
		t.Errorf("restored database has %d shows, want 2", got)
	}
	if preserved == "" {
		t.Fatal("expected the pre-restore database to be backed up")
	}
	if got := countShows(t, preserved); got != 0 {
		t.Errorf("pre-restore backup has %d shows, want 0", got)
	}
	if _, err := os.Stat(dbPath + ".restore.tmp"); !os.IsNotExist(err) {
		t.Error("temporary restore file left behind")
	}
}

func TestRestoreBackup_Invalid(t *testing.T) {
	dbPath := setupTestDB(t, "Andor")
	mgr := NewManager(dbPath)

	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("expected error for missing backup")
	}

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	if err := os.WriteFile(bogus, []byte(strings.Repeat("not a database ", 100)), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.RestoreBackup(bogus); err == nil {
		t.Error("expected error for corrupted backup")
	}
	if got := countShows(t, dbPath); got != 1 {
		t.Errorf("database changed after failed restore: %d shows", got)
	}
}
