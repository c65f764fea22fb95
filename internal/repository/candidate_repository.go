package repository

import (
	"errors"
	"strings"

	"github.com/hireai/hireai/internal/model"
	"gorm.io/gorm"
)

// ErrNotFound is returned by every store backend when a candidate lookup
// misses, so services do not depend on gorm error values.
var ErrNotFound = errors.New("candidate not found")

// CandidateRepository is the injected store abstraction over the postgres,
// file and remote backends. Updates are whole-record, last-writer-wins;
// multi-user optimistic concurrency is out of scope.
type CandidateRepository interface {
	Create(candidate *model.Candidate) error
	FindAll() ([]model.Candidate, error)
	FindByID(id string) (*model.Candidate, error)
	FindByAccessKey(key string) (*model.Candidate, error)
	// FindByFingerprint returns the earliest candidate with the given resume
	// hash, which is the record a duplicate flag points back to.
	FindByFingerprint(hash string) (*model.Candidate, error)
	Update(candidate *model.Candidate) error
	AccessKeyInUse(key string) bool
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(candidate *model.Candidate) error {
	return r.db.Create(candidate).Error
}

func (r *candidateRepository) FindAll() ([]model.Candidate, error) {
	var candidates []model.Candidate
	if err := r.db.Order("created_at desc").Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *candidateRepository) FindByID(id string) (*model.Candidate, error) {
	var candidate model.Candidate
	err := r.db.First(&candidate, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) FindByAccessKey(key string) (*model.Candidate, error) {
	var candidate model.Candidate
	err := r.db.First(&candidate, "upper(access_key) = ?", strings.ToUpper(key)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) FindByFingerprint(hash string) (*model.Candidate, error) {
	var candidate model.Candidate
	err := r.db.Where("resume_hash = ?", hash).Order("created_at asc").First(&candidate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) Update(candidate *model.Candidate) error {
	return r.db.Save(candidate).Error
}

func (r *candidateRepository) AccessKeyInUse(key string) bool {
	var count int64
	r.db.Model(&model.Candidate{}).Where("upper(access_key) = ?", strings.ToUpper(key)).Count(&count)
	return count > 0
}
