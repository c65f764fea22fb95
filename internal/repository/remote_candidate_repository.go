package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hireai/hireai/internal/model"
)

// remoteCandidateRepository talks to the hosted candidate API. The remote
// contract is coarse: GET returns the full list, POST replaces it. Reads are
// bearer-token authenticated.
type remoteCandidateRepository struct {
	client *resty.Client
}

func NewRemoteCandidateRepository(baseURL, token string) CandidateRepository {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetTimeout(15 * time.Second)
	return &remoteCandidateRepository{client: client}
}

func (r *remoteCandidateRepository) fetch() ([]model.Candidate, error) {
	var candidates []model.Candidate
	resp, err := r.client.R().SetResult(&candidates).Get("/api/candidates")
	if err != nil {
		return nil, fmt.Errorf("remote store fetch: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("remote store fetch: status %d", resp.StatusCode())
	}
	return candidates, nil
}

func (r *remoteCandidateRepository) push(candidates []model.Candidate) error {
	resp, err := r.client.R().SetBody(candidates).Post("/api/candidates")
	if err != nil {
		return fmt.Errorf("remote store push: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("remote store push: status %d", resp.StatusCode())
	}
	return nil
}

func (r *remoteCandidateRepository) Create(candidate *model.Candidate) error {
	candidates, err := r.fetch()
	if err != nil {
		return err
	}
	return r.push(append(candidates, *candidate))
}

func (r *remoteCandidateRepository) FindAll() ([]model.Candidate, error) {
	return r.fetch()
}

func (r *remoteCandidateRepository) FindByID(id string) (*model.Candidate, error) {
	candidates, err := r.fetch()
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		if candidates[i].ID == id {
			return &candidates[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *remoteCandidateRepository) FindByAccessKey(key string) (*model.Candidate, error) {
	candidates, err := r.fetch()
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		k := candidates[i].AccessKey
		if k != nil && strings.EqualFold(*k, key) {
			return &candidates[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *remoteCandidateRepository) FindByFingerprint(hash string) (*model.Candidate, error) {
	candidates, err := r.fetch()
	if err != nil {
		return nil, err
	}
	var earliest *model.Candidate
	for i := range candidates {
		c := &candidates[i]
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
	return earliest, nil
}

func (r *remoteCandidateRepository) Update(candidate *model.Candidate) error {
	candidates, err := r.fetch()
	if err != nil {
		return err
	}
	for i := range candidates {
		if candidates[i].ID == candidate.ID {
			candidates[i] = *candidate
			return r.push(candidates)
		}
	}
	return ErrNotFound
}

func (r *remoteCandidateRepository) AccessKeyInUse(key string) bool {
	if _, err := r.FindByAccessKey(key); err == nil {
		return true
	}
	return false
}
