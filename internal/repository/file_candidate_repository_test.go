package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hireai/hireai/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "candidates_db.json")
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := tempStorePath(t)
	repo := NewFileCandidateRepository(path)

	key := "ABCD-EFGH"
	require.NoError(t, repo.Create(&model.Candidate{
		ID:        "c1",
		Name:      "Ada",
		AccessKey: &key,
		Status:    model.StatusScreening,
		CreatedAt: time.Now(),
	}))

	// The file holds a single JSON array.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk []model.Candidate
	require.NoError(t, json.Unmarshal(data, &onDisk))
	require.Len(t, onDisk, 1)
	assert.Equal(t, "c1", onDisk[0].ID)

	// A fresh repository instance reads the same records back.
	reloaded := NewFileCandidateRepository(path)
	found, err := reloaded.FindByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.Name)
}

func TestFileStoreAccessKeyCaseInsensitive(t *testing.T) {
	repo := NewFileCandidateRepository(tempStorePath(t))
	key := "ABCD-EFGH"
	require.NoError(t, repo.Create(&model.Candidate{ID: "c1", AccessKey: &key}))

	found, err := repo.FindByAccessKey("abcd-efgh")
	require.NoError(t, err)
	assert.Equal(t, "c1", found.ID)
	assert.True(t, repo.AccessKeyInUse("Abcd-Efgh"))
	assert.False(t, repo.AccessKeyInUse("ZZZZ-ZZZZ"))
}

func TestFileStoreFingerprintReturnsEarliest(t *testing.T) {
	repo := NewFileCandidateRepository(tempStorePath(t))
	base := time.Now()
	require.NoError(t, repo.Create(&model.Candidate{ID: "later", ResumeHash: "v1_1_1_a_a", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(&model.Candidate{ID: "earlier", ResumeHash: "v1_1_1_a_a", CreatedAt: base}))
	require.NoError(t, repo.Create(&model.Candidate{ID: "other", ResumeHash: "v1_2_1_b_b", CreatedAt: base}))

	found, err := repo.FindByFingerprint("v1_1_1_a_a")
	require.NoError(t, err)
	assert.Equal(t, "earlier", found.ID)

	_, err = repo.FindByFingerprint("v1_9_1_z_z")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreUpdate(t *testing.T) {
	repo := NewFileCandidateRepository(tempStorePath(t))
	require.NoError(t, repo.Create(&model.Candidate{ID: "c1", Name: "Ada", Status: model.StatusScreening}))

	found, err := repo.FindByID("c1")
	require.NoError(t, err)
	found.Status = model.StatusAptitudeScheduled
	require.NoError(t, repo.Update(found))

	again, err := repo.FindByID("c1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusAptitudeScheduled, again.Status)

	assert.ErrorIs(t, repo.Update(&model.Candidate{ID: "missing"}), ErrNotFound)
}

func TestFileStoreSwallowsWriteErrors(t *testing.T) {
	// Point the store at a path whose parent does not exist; writes fail but
	// the in-memory list keeps serving.
	path := filepath.Join(t.TempDir(), "missing-dir", "candidates_db.json")
	repo := NewFileCandidateRepository(path)

	require.NoError(t, repo.Create(&model.Candidate{ID: "c1", Name: "Ada"}))

	found, err := repo.FindByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.Name)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	path := tempStorePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	repo := NewFileCandidateRepository(path)
	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}
