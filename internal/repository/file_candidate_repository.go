package repository

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/hireai/hireai/internal/model"
	"github.com/rs/zerolog/log"
)

// fileCandidateRepository is the local fallback store: the whole candidate
// list serialized as a single JSON array in one file. Write failures are
// logged and swallowed; the in-memory list stays authoritative for the
// session.
type fileCandidateRepository struct {
	mu         sync.Mutex
	path       string
	candidates []model.Candidate
}

func NewFileCandidateRepository(path string) CandidateRepository {
	r := &fileCandidateRepository{path: path}
	r.load()
	return r
}

func (r *fileCandidateRepository) load() {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", r.path).Msg("Could not read candidate store file")
		}
		return
	}
	if err := json.Unmarshal(data, &r.candidates); err != nil {
		log.Warn().Err(err).Str("path", r.path).Msg("Corrupt candidate store file, starting empty")
		r.candidates = nil
	}
}

// persist writes the full list back. Callers hold r.mu.
func (r *fileCandidateRepository) persist() {
	data, err := json.MarshalIndent(r.candidates, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to serialize candidate list")
		return
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		log.Error().Err(err).Str("path", r.path).Msg("Failed to write candidate store file")
	}
}

func (r *fileCandidateRepository) Create(candidate *model.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.candidates = append(r.candidates, *candidate)
	r.persist()
	return nil
}

func (r *fileCandidateRepository) FindAll() ([]model.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Candidate, len(r.candidates))
	copy(out, r.candidates)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fileCandidateRepository) FindByID(id string) (*model.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.candidates {
		if r.candidates[i].ID == id {
			c := r.candidates[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fileCandidateRepository) FindByAccessKey(key string) (*model.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.candidates {
		k := r.candidates[i].AccessKey
		if k != nil && strings.EqualFold(*k, key) {
			c := r.candidates[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fileCandidateRepository) FindByFingerprint(hash string) (*model.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var earliest *model.Candidate
	for i := range r.candidates {
		c := &r.candidates[i]
		if c.ResumeHash != hash {
			continue
		}
		if earliest == nil || c.CreatedAt.Before(earliest.CreatedAt) {
			earliest = c
		}
	}
	if earliest == nil {
		return nil, ErrNotFound
	}
	c := *earliest
	return &c, nil
}

func (r *fileCandidateRepository) Update(candidate *model.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.candidates {
		if r.candidates[i].ID == candidate.ID {
			r.candidates[i] = *candidate
			r.persist()
			return nil
		}
	}
	return ErrNotFound
}

func (r *fileCandidateRepository) AccessKeyInUse(key string) bool {
	if _, err := r.FindByAccessKey(key); err == nil {
		return true
	}
	return false
}
