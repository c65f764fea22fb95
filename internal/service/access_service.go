package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/hireai/hireai/internal/accesskey"
	"github.com/hireai/hireai/internal/dto"
	"github.com/hireai/hireai/internal/model"
	"github.com/hireai/hireai/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	destinationSession = "session"
	destinationOffer   = "offer"
)

// AccessService is the candidate-facing gate. An access key alone is not
// enough: entry also requires the candidate's scheduled window to have
// opened, unless they are already past the aptitude stage.
type AccessService interface {
	Verify(accessKey string) (*dto.AccessVerifyResponse, error)
}

type accessService struct {
	candidateRepo repository.CandidateRepository
	now           func() time.Time
}

func NewAccessService(candidateRepo repository.CandidateRepository) AccessService {
	return &accessService{candidateRepo: candidateRepo, now: time.Now}
}

func (s *accessService) Verify(accessKey string) (*dto.AccessVerifyResponse, error) {
	candidate, err := s.candidateRepo.FindByAccessKey(accesskey.Normalize(accessKey))
	if errors.Is(err, repository.ErrNotFound) {
		return &dto.AccessVerifyResponse{Granted: false, Message: "Invalid access key."}, nil
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	effective := candidate.EffectiveStatus(now)

	// Candidates already past the aptitude stage are never held at the door
	// by an old test schedule.
	if effective.PastAptitude() {
		return s.grant(candidate, effective), nil
	}

	scheduledAt, ok := candidate.AptitudeSchedule()
	if !ok {
		return &dto.AccessVerifyResponse{
			Granted: false,
			Message: "Your aptitude test has not been scheduled yet. Please wait for an invitation.",
		}, nil
	}
	if now.Before(scheduledAt) {
		minutes := int(math.Ceil(scheduledAt.Sub(now).Minutes()))
		return &dto.AccessVerifyResponse{
			Granted: false,
			Message: fmt.Sprintf("Your test is scheduled for later. Please come back in %d minutes.", minutes),
		}, nil
	}

	log.Info().Str("candidate_id", candidate.ID).Str("status", string(effective)).Msg("Access granted")
	return s.grant(candidate, effective), nil
}

func (s *accessService) grant(candidate *model.Candidate, effective model.CandidateStatus) *dto.AccessVerifyResponse {
	destination := destinationSession
	if effective.OfferStage() {
		destination = destinationOffer
	}
	view := NewCandidateResponse(candidate, s.now())
	return &dto.AccessVerifyResponse{
		Granted:     true,
		Destination: destination,
		Candidate:   &view,
	}
}
