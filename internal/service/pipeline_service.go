package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hireai/hireai/internal/accesskey"
	"github.com/hireai/hireai/internal/model"
	"github.com/hireai/hireai/internal/repository"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrNotQualified      = errors.New("aptitude score below the pass mark")
	ErrOfferExpired      = errors.New("offer has expired")
	ErrNoOffer           = errors.New("no offer letter on record")
)

// PipelineService owns every forward move through the hiring pipeline. All
// mutations validate against the transition table; there is no path backwards
// and no path around a guard.
type PipelineService interface {
	ScheduleAptitude(id, date, timeSlot string) (*model.Candidate, error)
	RecordAptitudeResult(id string, correct, total int) (*model.Candidate, error)
	ScheduleRoundTwo(id, date, timeSlot string) (*model.Candidate, error)
	Advance(id string) (*model.Candidate, error)
	SignOffer(id, signedBy string) (*model.Candidate, error)
	AcceptOffer(id, accessKey string) (*model.Candidate, error)
	PendingApproval() ([]model.Candidate, error)
}

type pipelineService struct {
	candidateRepo repository.CandidateRepository
	mailer        MailerService
	now           func() time.Time
}

func NewPipelineService(candidateRepo repository.CandidateRepository, mailer MailerService) PipelineService {
	return &pipelineService{candidateRepo: candidateRepo, mailer: mailer, now: time.Now}
}

func (s *pipelineService) transition(candidate *model.Candidate, next model.CandidateStatus) error {
	if !candidate.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, candidate.Status, next)
	}
	candidate.Status = next
	return nil
}

func (s *pipelineService) ScheduleAptitude(id, date, timeSlot string) (*model.Candidate, error) {
	candidate, err := s.candidateRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(candidate, model.StatusAptitudeScheduled); err != nil {
		return nil, err
	}
	candidate.AptitudeDate = &date
	candidate.AptitudeTime = &timeSlot
	if err := s.candidateRepo.Update(candidate); err != nil {
		return nil, err
	}
	s.mailer.SendAptitudeInvite(candidate, date, timeSlot)
	log.Info().Str("candidate_id", id).Str("date", date).Str("time", timeSlot).Msg("Aptitude test scheduled")
	return candidate, nil
}

// RecordAptitudeResult stores the exam score and completes the aptitude
// stage. Score is round(100*correct/total).
func (s *pipelineService) RecordAptitudeResult(id string, correct, total int) (*model.Candidate, error) {
	if total <= 0 {
		return nil, fmt.Errorf("aptitude result needs at least one question")
	}
	candidate, err := s.candidateRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(candidate, model.StatusAptitudeCompleted); err != nil {
		return nil, err
	}
	score := int(math.Round(100 * float64(correct) / float64(total)))
	candidate.AptitudeScore = &score
	if err := s.candidateRepo.Update(candidate); err != nil {
		return nil, err
	}
	log.Info().Str("candidate_id", id).Int("score", score).Msg("Aptitude test completed")
	return candidate, nil
}

func (s *pipelineService) ScheduleRoundTwo(id, date, timeSlot string) (*model.Candidate, error) {
	candidate, err := s.candidateRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if candidate.AptitudeScore == nil || *candidate.AptitudeScore < model.AptitudePassMark {
		return nil, ErrNotQualified
	}
	if err := s.transition(candidate, model.StatusInterviewScheduled); err != nil {
		return nil, err
	}
	link := "https://meet.hireai.dev/" + uuid.NewString()
	candidate.Round2Date = &date
	candidate.Round2Time = &timeSlot
	candidate.Round2Link = &link
	if err := s.candidateRepo.Update(candidate); err != nil {
		return nil, err
	}
	log.Info().Str("candidate_id", id).Str("link", link).Msg("Round 2 interview scheduled")
	return candidate, nil
}

// Advance performs the plain HR-driven forward moves: sending an interviewed
// candidate to VP approval, and sending a signed offer out to the candidate.
func (s *pipelineService) Advance(id string) (*model.Candidate, error) {
	candidate, err := s.candidateRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	switch candidate.Status {
	case model.StatusInterviewScheduled:
		candidate.Status = model.StatusVPApproval
	case model.StatusOfferSigned:
		candidate.Status = model.StatusOfferSent
	default:
		return nil, fmt.Errorf("%w: no advance from %s", ErrInvalidTransition, candidate.Status)
	}
	if err := s.candidateRepo.Update(candidate); err != nil {
		return nil, err
	}
	if candidate.Status == model.StatusOfferSent {
		s.mailer.SendOfferNotification(candidate)
	}
	log.Info().Str("candidate_id", id).Str("status", string(candidate.Status)).Msg("Candidate advanced")
	return candidate, nil
}

func (s *pipelineService) SignOffer(id, signedBy string) (*model.Candidate, error) {
	candidate, err := s.candidateRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(candidate, model.StatusOfferSigned); err != nil {
		return nil, err
	}
	signedAt := s.now()
	candidate.OfferLetter = &model.OfferLetter{
		SignedBy:   signedBy,
		DateSigned: signedAt,
		ExpiryDate: signedAt.Add(model.OfferValidity),
	}
	if err := s.candidateRepo.Update(candidate); err != nil {
		return nil, err
	}
	log.Info().Str("candidate_id", id).Str("signed_by", signedBy).
		Time("expires", candidate.OfferLetter.ExpiryDate).Msg("Offer signed")
	return candidate, nil
}

// AcceptOffer is candidate-initiated and authenticated by access key. The
// expiry check happens here against the stored timestamp, so a client holding
// a stale view cannot accept a lapsed offer.
func (s *pipelineService) AcceptOffer(id, accessKey string) (*model.Candidate, error) {
	candidate, err := s.candidateRepo.FindByAccessKey(accesskey.Normalize(accessKey))
	if err != nil {
		return nil, err
	}
	if candidate.ID != id {
		return nil, repository.ErrNotFound
	}
	if candidate.OfferLetter == nil {
		return nil, ErrNoOffer
	}
	if s.now().After(candidate.OfferLetter.ExpiryDate) {
		return nil, ErrOfferExpired
	}
	if err := s.transition(candidate, model.StatusOfferAccepted); err != nil {
		return nil, err
	}
	candidate.OfferLetter.IsAccepted = true
	if err := s.candidateRepo.Update(candidate); err != nil {
		return nil, err
	}
	log.Info().Str("candidate_id", id).Msg("Offer accepted")
	return candidate, nil
}

// PendingApproval lists candidates waiting on a VP signature.
func (s *pipelineService) PendingApproval() ([]model.Candidate, error) {
	candidates, err := s.candidateRepo.FindAll()
	if err != nil {
		return nil, err
	}
	pending := make([]model.Candidate, 0)
	for _, c := range candidates {
		if c.Status == model.StatusVPApproval {
			pending = append(pending, c)
		}
	}
	return pending, nil
}
