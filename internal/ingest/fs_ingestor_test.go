package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reefwatch/icp-tracker/gen/ent"
	"github.com/reefwatch/icp-tracker/internal/entity"
	"github.com/reefwatch/icp-tracker/internal/repository"
)

type fakeTanksRepo struct {
	known map[uuid.UUID]bool
}

func (f *fakeTanksRepo) GetByID(context.Context, uuid.UUID) (*ent.Tank, error)   { return nil, nil }
func (f *fakeTanksRepo) GetByName(context.Context, string) (*ent.Tank, error)    { return nil, nil }
func (f *fakeTanksRepo) CreateTank(context.Context, *repository.Tank) (*ent.Tank, error) {
	return nil, nil
}
func (f *fakeTanksRepo) GetOrCreateByName(context.Context, string) (*ent.Tank, error) {
	return nil, nil
}
func (f *fakeTanksRepo) ListTanks(context.Context) ([]*entity.Tank, error) { return nil, nil }
func (f *fakeTanksRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

type fakeFilesRepo struct {
	byHash map[string]*ent.ReportFile
}

func (f *fakeFilesRepo) GetByID(context.Context, uuid.UUID) (*ent.ReportFile, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeFilesRepo) GetByTankAndHash(context.Context, uuid.UUID, []byte) (*ent.ReportFile, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeFilesRepo) Create(context.Context, uuid.UUID, string, string, string, int, []byte, time.Time) (*ent.ReportFile, error) {
	return nil, nil
}

func (f *fakeFilesRepo) UpsertByHash(_ context.Context, tankID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ReportFile, bool, error) {
	key := hex.EncodeToString(hash)
	if row, ok := f.byHash[key]; ok {
		return row, true, nil
	}
	row := &ent.ReportFile{
		ID:          uuid.New(),
		TankID:      tankID,
		SourcePath:  sourcePath,
		ContentHash: hash,
		Filename:    filename,
		FileExt:     ext,
		FileSize:    size,
		UploadedAt:  uploadedAt,
	}
	f.byHash[key] = row
	return row, false, nil
}

func newTestIngestor(t *testing.T) (*FSIngestor, uuid.UUID) {
	t.Helper()
	tankID := uuid.New()
	tanks := &fakeTanksRepo{known: map[uuid.UUID]bool{tankID: true}}
	files := &fakeFilesRepo{byHash: map[string]*ent.ReportFile{}}
	return NewFSIngestor(tanks, files, nil), tankID
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIngestPath(t *testing.T) {
	ing, tankID := newTestIngestor(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "ati-2026-05-14.pdf", "%PDF-1.7 fake report")

	res, err := ing.IngestPath(context.Background(), tankID, path)
	require.NoError(t, err)

	sum := sha256.Sum256([]byte("%PDF-1.7 fake report"))
	assert.Equal(t, hex.EncodeToString(sum[:]), res.HashHex)
	assert.Equal(t, "pdf", res.FileExt)
	assert.False(t, res.Deduplicated)
	assert.NotEmpty(t, res.FileID)
}

func TestIngestPathRejectsNonPDF(t *testing.T) {
	ing, tankID := newTestIngestor(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "not a report")

	_, err := ing.IngestPath(context.Background(), tankID, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestIngestPathUnknownTank(t *testing.T) {
	ing, _ := newTestIngestor(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "report.pdf", "%PDF")

	_, err := ing.IngestPath(context.Background(), uuid.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tank not found")
}

func TestIngestDirectory(t *testing.T) {
	ing, tankID := newTestIngestor(t)
	dir := t.TempDir()
	writeFile(t, dir, "one.pdf", "report one")
	writeFile(t, dir, "two.pdf", "report two")
	writeFile(t, dir, "copy-of-one.pdf", "report one")
	writeFile(t, dir, "skip.txt", "not a report")
	writeFile(t, dir, ".hidden/three.pdf", "hidden report")

	results, stats, err := ing.IngestDirectory(context.Background(), tankID, dir, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), stats.Matched)
	assert.Equal(t, uint32(3), stats.Succeeded)
	assert.Equal(t, uint32(1), stats.Deduplicated)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Len(t, results, 3)
}
