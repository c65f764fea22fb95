package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hireai/hireai/internal/accesskey"
	"github.com/hireai/hireai/internal/dto"
	"github.com/hireai/hireai/internal/model"
	"github.com/hireai/hireai/internal/repository"
	"github.com/rs/zerolog/log"
)

type SessionType string

const (
	SessionProctored SessionType = "proctored"
	SessionPractice  SessionType = "practice"
	SessionAptitude  SessionType = "aptitude"
)

type sessionPhase string

const (
	phaseSetup      sessionPhase = "Setup"
	phaseLoading    sessionPhase = "Loading"
	phaseActive     sessionPhase = "Active"
	phaseTerminated sessionPhase = "Terminated"
)

// Termination reasons shown to the candidate. Exactly one is recorded per
// session; the first cause wins.
const (
	ReasonTimeExpired   = "Time Expired"
	ReasonTabSwitch     = "Tab Switching Detected"
	ReasonFocusLost     = "Application Focus Lost"
	ReasonEmergencyStop = "Emergency Stop Activated"
)

const (
	proctoredDuration = 1800
	aptitudeDuration  = 1200
)

const closingMessage = "That was the last question. Thank you for your time, the session is now complete."

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrMediaDenied      = errors.New("camera and microphone access is required")
	ErrSessionClosed    = errors.New("session is not active")
	ErrWrongSessionType = errors.New("operation not valid for this session type")
	ErrSessionNotSetup  = errors.New("session has already started")
)

type generated struct {
	questions []model.InterviewQuestion
	aptitude  []model.AptitudeQuestion
	err       error
}

// session is one live interview or exam. All fields behind mu; the timer
// goroutine, monitoring events and the answer loop all contend for it.
type session struct {
	id          string
	sessionType SessionType
	candidateID string
	role        string

	mu            sync.Mutex
	phase         sessionPhase
	remaining     int
	reason        string
	completed     bool
	scored        bool
	mediaHeld     bool
	questions     []model.InterviewQuestion
	aptitude      []model.AptitudeQuestion
	messages      []dto.SessionMessage
	current       int
	answerScores  []int
	genDone       chan generated
	stopTimer     chan struct{}
}

// ProctorService runs interview and exam sessions in memory. Sessions are
// single-use and vanish on restart; the only durable side effects go through
// the candidate store.
type ProctorService interface {
	Create(ctx context.Context, req dto.CreateSessionRequest) (*dto.SessionResponse, error)
	Start(ctx context.Context, id string, mediaGranted bool) (*dto.SessionResponse, error)
	Get(id string) (*dto.SessionResponse, error)
	Answer(ctx context.Context, id, text string) (*dto.SessionResponse, error)
	Event(id, event string) (*dto.SessionResponse, error)
	SubmitAptitude(id string, req dto.AptitudeSubmitRequest) (*dto.AptitudeResultResponse, error)
}

type proctorService struct {
	candidateRepo repository.CandidateRepository
	aiService     AIService
	pipeline      PipelineService

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewProctorService(candidateRepo repository.CandidateRepository, aiService AIService, pipeline PipelineService) ProctorService {
	return &proctorService{
		candidateRepo: candidateRepo,
		aiService:     aiService,
		pipeline:      pipeline,
		sessions:      make(map[string]*session),
	}
}

func (p *proctorService) lookup(id string) (*session, error) {
	p.mu.RLock()
	s, ok := p.sessions[id]
	p.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Create opens a session in Setup and kicks off question generation in the
// background, so the AI round-trip overlaps the client's media permission
// prompt.
func (p *proctorService) Create(ctx context.Context, req dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	s := &session{
		id:          uuid.NewString(),
		sessionType: SessionType(req.Type),
		phase:       phaseSetup,
		role:        req.Role,
		genDone:     make(chan generated, 1),
		stopTimer:   make(chan struct{}),
	}

	switch s.sessionType {
	case SessionProctored, SessionAptitude:
		candidate, err := p.candidateRepo.FindByAccessKey(accesskey.Normalize(req.AccessKey))
		if err != nil {
			return nil, err
		}
		s.candidateID = candidate.ID
		s.role = candidate.Role
	case SessionPractice:
		if s.role == "" {
			s.role = "Software Engineer"
		}
	default:
		return nil, ErrWrongSessionType
	}

	go p.generate(s)

	p.mu.Lock()
	p.sessions[s.id] = s
	p.mu.Unlock()

	log.Info().Str("session_id", s.id).Str("type", req.Type).Msg("Session created")
	return p.render(s), nil
}

func (p *proctorService) generate(s *session) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var out generated
	if s.sessionType == SessionAptitude {
		out.aptitude, out.err = p.aiService.GenerateAptitudeTest(ctx, s.role)
	} else {
		name := "the candidate"
		if s.candidateID != "" {
			if candidate, err := p.candidateRepo.FindByID(s.candidateID); err == nil {
				name = candidate.Name
			}
		}
		out.questions, out.err = p.aiService.GenerateInterviewQuestions(ctx, name, s.role)
	}
	s.genDone <- out
}

// Start consumes the client's media permission result. Denial drops the
// session back to Setup so the client can retry; a generation failure is
// fatal for the session.
func (p *proctorService) Start(ctx context.Context, id string, mediaGranted bool) (*dto.SessionResponse, error) {
	s, err := p.lookup(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.phase != phaseSetup {
		s.mu.Unlock()
		return nil, ErrSessionNotSetup
	}
	if !mediaGranted {
		s.mu.Unlock()
		return nil, ErrMediaDenied
	}
	s.phase = phaseLoading
	s.mediaHeld = true
	s.mu.Unlock()

	var out generated
	select {
	case out = <-s.genDone:
	case <-ctx.Done():
		// Drop back to Setup so the client can retry; the generation result
		// stays buffered for the next Start.
		s.mu.Lock()
		s.phase = phaseSetup
		s.mediaHeld = false
		s.mu.Unlock()
		return nil, ctx.Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if out.err != nil {
		s.phase = phaseTerminated
		s.reason = "Session could not be prepared"
		s.mediaHeld = false
		return nil, fmt.Errorf("question generation failed: %w", out.err)
	}

	s.questions = out.questions
	s.aptitude = out.aptitude
	s.phase = phaseActive

	switch s.sessionType {
	case SessionProctored:
		s.remaining = proctoredDuration
	case SessionAptitude:
		s.remaining = aptitudeDuration
	}

	if s.sessionType != SessionAptitude && len(s.questions) > 0 {
		s.messages = append(s.messages, dto.SessionMessage{Role: "interviewer", Text: s.questions[0].Question})
	}
	if s.remaining > 0 {
		go p.runTimer(s)
	}

	log.Info().Str("session_id", s.id).Int("remaining", s.remaining).Msg("Session active")
	return p.renderLocked(s), nil
}

func (p *proctorService) runTimer(s *session) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopTimer:
			return
		case <-ticker.C:
			if s.tick() {
				return
			}
		}
	}
}

// tick advances the countdown by one second. Returns true once the session
// has left Active, which stops the timer goroutine.
func (s *session) tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != phaseActive {
		return true
	}
	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.terminateLocked(ReasonTimeExpired)
		return true
	}
	return false
}

// terminateLocked is the single exit from Active. The first caller records
// the reason; later causes are no-ops.
func (s *session) terminateLocked(reason string) {
	if s.phase == phaseTerminated {
		return
	}
	s.phase = phaseTerminated
	s.reason = reason
	s.mediaHeld = false
	close(s.stopTimer)
	log.Info().Str("session_id", s.id).Str("reason", reason).Msg("Session terminated")
}

// finishLocked is the orderly completion path: no termination reason, the
// transcript stands.
func (s *session) finishLocked() {
	if s.phase == phaseTerminated {
		return
	}
	s.phase = phaseTerminated
	s.completed = true
	s.mediaHeld = false
	close(s.stopTimer)
	log.Info().Str("session_id", s.id).Msg("Session completed")
}

func (p *proctorService) Get(id string) (*dto.SessionResponse, error) {
	s, err := p.lookup(id)
	if err != nil {
		return nil, err
	}
	return p.render(s), nil
}

// Answer runs one turn of the question loop. Proctored sessions evaluate
// silently; practice sessions hand the structured feedback straight back.
func (p *proctorService) Answer(ctx context.Context, id, text string) (*dto.SessionResponse, error) {
	s, err := p.lookup(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.sessionType == SessionAptitude {
		s.mu.Unlock()
		return nil, ErrWrongSessionType
	}
	if s.phase != phaseActive {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	if s.current >= len(s.questions) {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	question := s.questions[s.current].Question
	s.mu.Unlock()

	eval, err := p.aiService.EvaluateResponse(ctx, question, text)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	// The session may have been terminated while the evaluation was in
	// flight; a dead session takes no more answers.
	if s.phase != phaseActive {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}

	answer := dto.SessionMessage{Role: "candidate", Text: text}
	if s.sessionType == SessionPractice {
		answer.Feedback = eval
	}
	s.messages = append(s.messages, answer)
	s.answerScores = append(s.answerScores, eval.Score)
	s.current++

	finished := s.current >= len(s.questions)
	if finished {
		s.messages = append(s.messages, dto.SessionMessage{Role: "interviewer", Text: closingMessage})
		s.finishLocked()
	} else {
		s.messages = append(s.messages, dto.SessionMessage{Role: "interviewer", Text: s.questions[s.current].Question})
	}
	resp := p.renderLocked(s)
	candidateID := s.candidateID
	scores := append([]int(nil), s.answerScores...)
	s.mu.Unlock()

	// Store I/O stays outside the session lock.
	if finished {
		p.awardPoints(candidateID, scores)
	}
	return resp, nil
}

// awardPoints persists the gamification outcome of a finished interview.
func (p *proctorService) awardPoints(candidateID string, scores []int) {
	if candidateID == "" {
		return
	}
	candidate, err := p.candidateRepo.FindByID(candidateID)
	if err != nil {
		log.Warn().Err(err).Str("candidate_id", candidateID).Msg("Cannot award points")
		return
	}
	points := 100
	best := 0
	for _, score := range scores {
		points += score / 2
		if score > best {
			best = score
		}
	}
	candidate.Points += points
	if best >= 95 {
		candidate.Badges = appendBadge(candidate.Badges, "Star Performer")
	}
	if err := p.candidateRepo.Update(candidate); err != nil {
		log.Warn().Err(err).Str("candidate_id", candidate.ID).Msg("Failed to persist points")
		return
	}
	log.Info().Str("candidate_id", candidate.ID).Int("points", points).Msg("Points awarded")
}

func appendBadge(badges []string, badge string) []string {
	for _, b := range badges {
		if b == badge {
			return badges
		}
	}
	return append(badges, badge)
}

// Event applies a monitoring signal. Practice sessions are unproctored, so
// only an explicit emergency stop does anything there.
func (p *proctorService) Event(id, event string) (*dto.SessionResponse, error) {
	s, err := p.lookup(id)
	if err != nil {
		return nil, err
	}

	var reason string
	switch event {
	case "tab_hidden":
		reason = ReasonTabSwitch
	case "focus_lost":
		reason = ReasonFocusLost
	case "emergency_stop":
		reason = ReasonEmergencyStop
	default:
		return nil, fmt.Errorf("unknown session event %q", event)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionType == SessionPractice && event != "emergency_stop" {
		return p.renderLocked(s), nil
	}
	if s.phase == phaseActive {
		s.terminateLocked(reason)
	}
	return p.renderLocked(s), nil
}

// SubmitAptitude scores the answer sheet and completes the aptitude stage of
// the pipeline.
func (p *proctorService) SubmitAptitude(id string, req dto.AptitudeSubmitRequest) (*dto.AptitudeResultResponse, error) {
	s, err := p.lookup(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.sessionType != SessionAptitude {
		s.mu.Unlock()
		return nil, ErrWrongSessionType
	}
	// Countdown expiry submits automatically: the sheet that follows a
	// "Time Expired" termination is still scored, exactly once.
	expired := s.phase == phaseTerminated && s.reason == ReasonTimeExpired && !s.scored
	if s.phase != phaseActive && !expired {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}

	selected := make(map[int]int, len(req.Answers))
	for _, a := range req.Answers {
		selected[a.QuestionID] = a.Option
	}
	correct := 0
	total := len(s.aptitude)
	for _, q := range s.aptitude {
		if option, ok := selected[q.ID]; ok && option == q.CorrectAnswer {
			correct++
		}
	}
	s.scored = true
	if s.phase == phaseActive {
		s.finishLocked()
	} else {
		s.completed = true
	}
	candidateID := s.candidateID
	s.mu.Unlock()

	candidate, err := p.pipeline.RecordAptitudeResult(candidateID, correct, total)
	if err != nil {
		return nil, err
	}
	score := 0
	if candidate.AptitudeScore != nil {
		score = *candidate.AptitudeScore
	}
	return &dto.AptitudeResultResponse{Score: score, Correct: correct, Total: total}, nil
}

func (p *proctorService) render(s *session) *dto.SessionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return p.renderLocked(s)
}

// renderLocked builds the client view. Practice sessions present friendlier
// phase names; aptitude questions go out with the correct answers stripped.
func (p *proctorService) renderLocked(s *session) *dto.SessionResponse {
	phase := string(s.phase)
	if s.sessionType == SessionPractice {
		switch s.phase {
		case phaseSetup:
			phase = "Intro"
		case phaseTerminated:
			phase = "Finished"
		}
	}

	resp := &dto.SessionResponse{
		ID:                s.id,
		Type:              string(s.sessionType),
		Phase:             phase,
		RemainingSeconds:  s.remaining,
		TerminationReason: s.reason,
		Messages:          append([]dto.SessionMessage(nil), s.messages...),
		Completed:         s.completed,
	}
	for _, q := range s.aptitude {
		resp.AptitudeQuestions = append(resp.AptitudeQuestions, dto.AptitudeQuestionView{
			ID:       q.ID,
			Question: q.Question,
			Category: q.Category,
			Options:  q.Options,
		})
	}
	return resp
}
