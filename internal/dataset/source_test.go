package dataset

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/jask/admissions/internal/config"
	"github.com/jask/admissions/internal/database"
	"github.com/jask/admissions/internal/roster"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFromConfig(t *testing.T) {
	src, err := FromConfig(config.DatasetConfig{Source: "sample"})
	require.NoError(t, err)
	require.IsType(t, Static{}, src)

	src, err = FromConfig(config.DatasetConfig{Source: "YAML", Path: "r.yaml"})
	require.NoError(t, err)
	require.Equal(t, YAMLFile{Path: "r.yaml"}, src)

	src, err = FromConfig(config.DatasetConfig{Source: "sqlite", Path: "r.db"})
	require.NoError(t, err)
	require.Equal(t, SQLite{Path: "r.db"}, src)

	_, err = FromConfig(config.DatasetConfig{Source: "http"})
	require.ErrorIs(t, err, ErrUnknownSource)
}

func TestLoadStatic(t *testing.T) {
	cands, err := Load(context.Background(), Static{}, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, cands, 10)
}

func TestLoadYAMLFixture(t *testing.T) {
	cands, err := Load(context.Background(), YAMLFile{Path: filepath.Join("testdata", "roster.yaml")}, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, cands, 2)

	priya := cands[0]
	require.Equal(t, "Computer Science", priya.Program)
	require.Equal(t, "Jan 3, 2025", priya.AppliedDate.Format("Jan 2, 2006"))
	require.Len(t, priya.Stamps, 2)
	require.Equal(t, roster.CategoryLeadership, priya.Stamps[1].Category, "category matching ignores case")

	marcus := cands[1]
	require.Equal(t, roster.Status("Waitlisted"), marcus.Status)
	require.True(t, marcus.BirthDate.IsZero())
	require.Empty(t, marcus.Stamps)
}

func TestDecodeYAMLErrors(t *testing.T) {
	tests := map[string]string{
		"bad applied date": "candidates:\n  - id: 1\n    applied_date: 03/01/2025\n",
		"bad category":     "candidates:\n  - id: 1\n    applied_date: \"2025-01-03\"\n    stamps:\n      - id: 1\n        category: Athletics\n        earned_date: \"2024-01-01\"\n",
		"unknown key":      "candidates:\n  - id: 1\n    colour: blue\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeYAML(strings.NewReader(doc))
			require.Error(t, err)
		})
	}
}

func TestDecodeYAMLEmptyDocument(t *testing.T) {
	cands, err := DecodeYAML(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, cands)
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dupes.yaml")
	doc := "candidates:\n  - id: 1\n    applied_date: \"2025-01-03\"\n  - id: 1\n    applied_date: \"2025-01-04\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := Load(context.Background(), YAMLFile{Path: path}, zap.NewNop())
	require.ErrorIs(t, err, roster.ErrDuplicateID)
}

func TestLoadSQLiteSeededRoster(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "roster.db")
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	seeded, err := Load(ctx, YAMLFile{Path: filepath.Join("testdata", "roster.yaml")}, zap.NewNop())
	require.NoError(t, err)
	_, err = database.SeedRoster(ctx, db, seeded)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	cands, err := Load(ctx, SQLite{Path: dbPath}, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, cands, 2)
	require.Len(t, cands[0].Stamps, 2)
	require.Equal(t, "Peer Mentor", cands[0].Stamps[0].Name)
}

func TestLoadSQLiteMissingFile(t *testing.T) {
	_, err := Load(context.Background(), SQLite{Path: filepath.Join(t.TempDir(), "nope.db")}, zap.NewNop())
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadRejectsNaNGPA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.yaml")
	doc := "candidates:\n  - id: 1\n    gpa: .nan\n    applied_date: \"2025-01-03\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := Load(context.Background(), YAMLFile{Path: path}, zap.NewNop())
	require.ErrorIs(t, err, roster.ErrGPAOutOfRange)
}
