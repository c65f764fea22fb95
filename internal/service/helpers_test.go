package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hireai/hireai/internal/model"
	"github.com/hireai/hireai/internal/repository"
)

// fakeCandidateRepo is an in-memory CandidateRepository for service tests.
type fakeCandidateRepo struct {
	mu         sync.Mutex
	candidates map[string]*model.Candidate
}

func newFakeCandidateRepo(candidates ...*model.Candidate) *fakeCandidateRepo {
	r := &fakeCandidateRepo{candidates: make(map[string]*model.Candidate)}
	for _, c := range candidates {
		clone := *c
		r.candidates[c.ID] = &clone
	}
	return r
}

func (r *fakeCandidateRepo) Create(candidate *model.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if candidate.CreatedAt.IsZero() {
		candidate.CreatedAt = time.Now()
	}
	clone := *candidate
	r.candidates[candidate.ID] = &clone
	return nil
}

func (r *fakeCandidateRepo) FindAll() ([]model.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Candidate, 0, len(r.candidates))
	for _, c := range r.candidates {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCandidateRepo) FindByID(id string) (*model.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.candidates[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCandidateRepo) FindByAccessKey(key string) (*model.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.candidates {
		if c.AccessKey != nil && strings.EqualFold(*c.AccessKey, key) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCandidateRepo) FindByFingerprint(hash string) (*model.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var earliest *model.Candidate
	for _, c := range r.candidates {
		if c.ResumeHash != hash {
			continue
		}
		if earliest == nil || c.CreatedAt.Before(earliest.CreatedAt) {
			earliest = c
		}
	}
	if earliest == nil {
		return nil, repository.ErrNotFound
	}
	clone := *earliest
	return &clone, nil
}

func (r *fakeCandidateRepo) Update(candidate *model.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *candidate
	r.candidates[candidate.ID] = &clone
	return nil
}

func (r *fakeCandidateRepo) AccessKeyInUse(key string) bool {
	c, err := r.FindByAccessKey(key)
	return err == nil && c != nil
}

// fakeAIService returns canned answers; individual funcs can be overridden
// per test.
type fakeAIService struct {
	screenFn   func(resumeText, jobDescription string) (*model.ScreeningAnalysis, error)
	questionFn func(candidateName, role string) ([]model.InterviewQuestion, error)
	evaluateFn func(question, answer string) (*model.AnswerEvaluation, error)
	aptitudeFn func(role string) ([]model.AptitudeQuestion, error)
}

func (f *fakeAIService) ScreenResume(_ context.Context, resumeText, jobDescription string) (*model.ScreeningAnalysis, error) {
	if f.screenFn != nil {
		return f.screenFn(resumeText, jobDescription)
	}
	return &model.ScreeningAnalysis{
		OverallScore:        80,
		TechnicalScore:      75,
		CommunicationScore:  70,
		ProblemSolvingScore: 85,
		Summary:             "Solid generalist.",
	}, nil
}

func (f *fakeAIService) GenerateInterviewQuestions(_ context.Context, candidateName, role string) ([]model.InterviewQuestion, error) {
	if f.questionFn != nil {
		return f.questionFn(candidateName, role)
	}
	return []model.InterviewQuestion{
		{Question: "Tell me about a project you are proud of."},
		{Question: "How do you handle disagreements in a team?"},
	}, nil
}

func (f *fakeAIService) EvaluateResponse(_ context.Context, question, answer string) (*model.AnswerEvaluation, error) {
	if f.evaluateFn != nil {
		return f.evaluateFn(question, answer)
	}
	return &model.AnswerEvaluation{Score: 60, Feedback: "Reasonable answer."}, nil
}

func (f *fakeAIService) GenerateAptitudeTest(_ context.Context, role string) ([]model.AptitudeQuestion, error) {
	if f.aptitudeFn != nil {
		return f.aptitudeFn(role)
	}
	questions := make([]model.AptitudeQuestion, 0, 4)
	for i := 1; i <= 4; i++ {
		questions = append(questions, model.AptitudeQuestion{
			ID:            i,
			Question:      "Pick option A.",
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: 0,
		})
	}
	return questions, nil
}

// fakeMailer records notifications instead of sending them.
type fakeMailer struct {
	mu            sync.Mutex
	aptitudeSends int
	offerSends    int
}

func (m *fakeMailer) SendAptitudeInvite(*model.Candidate, string, string) {
	m.mu.Lock()
	m.aptitudeSends++
	m.mu.Unlock()
}

func (m *fakeMailer) SendOfferNotification(*model.Candidate) {
	m.mu.Lock()
	m.offerSends++
	m.mu.Unlock()
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
