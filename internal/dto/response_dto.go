package dto

import (
	"time"

	"github.com/hireai/hireai/internal/model"
)

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// CandidateResponse mirrors the candidate record for the HR views. Status is
// the effective status, with offer expiry derived at render time.
type CandidateResponse struct {
	ID                      string              `json:"id"`
	Name                    string              `json:"name"`
	Email                   string              `json:"email"`
	Role                    string              `json:"role"`
	Status                  string              `json:"status"`
	AccessKey               *string             `json:"access_key,omitempty"`
	ResumeHash              string              `json:"resume_hash,omitempty"`
	IsDuplicate             bool                `json:"is_duplicate"`
	DuplicateOf             *string             `json:"duplicate_of,omitempty"`
	OverallScore            int                 `json:"overall_score"`
	TechnicalScore          int                 `json:"technical_score"`
	CommunicationScore      int                 `json:"communication_score"`
	ProblemSolvingScore     int                 `json:"problem_solving_score"`
	TechnicalReasoning      string              `json:"technical_reasoning,omitempty"`
	CommunicationReasoning  string              `json:"communication_reasoning,omitempty"`
	ProblemSolvingReasoning string              `json:"problem_solving_reasoning,omitempty"`
	ResumeSummary           string              `json:"resume_summary,omitempty"`
	AptitudeScore           *int                `json:"aptitude_score,omitempty"`
	AptitudeDate            *string             `json:"aptitude_date,omitempty"`
	AptitudeTime            *string             `json:"aptitude_time,omitempty"`
	Round2Date              *string             `json:"round2_date,omitempty"`
	Round2Time              *string             `json:"round2_time,omitempty"`
	Round2Link              *string             `json:"round2_link,omitempty"`
	InterviewDate           *string             `json:"interview_date,omitempty"`
	InterviewTime           *string             `json:"interview_time,omitempty"`
	OfferLetter             *model.OfferLetter  `json:"offer_letter,omitempty"`
	NoticePeriod            *string             `json:"notice_period,omitempty"`
	Points                  int                 `json:"points"`
	Badges                  []string            `json:"badges,omitempty"`
	Skills                  []model.SkillScore  `json:"skills,omitempty"`
	CreatedAt               time.Time           `json:"created_at"`
}

// ApplyResponse confirms a submitted application. The access key is shown to
// the candidate exactly once here.
type ApplyResponse struct {
	Candidate CandidateResponse `json:"candidate"`
	AccessKey string            `json:"access_key"`
}

// BatchScreenResult is the per-file outcome of a batch screening run. Failed
// files carry Error and create no record.
type BatchScreenResult struct {
	Filename     string `json:"filename"`
	CandidateID  string `json:"candidate_id,omitempty"`
	Name         string `json:"name,omitempty"`
	OverallScore int    `json:"overall_score"`
	Summary      string `json:"summary,omitempty"`
	IsDuplicate  bool   `json:"is_duplicate"`
	Error        string `json:"error,omitempty"`
}

// AccessVerifyResponse is the access gate decision. Denials carry the
// field-level message; grants carry the candidate and where to send them.
type AccessVerifyResponse struct {
	Granted     bool               `json:"granted"`
	Message     string             `json:"message,omitempty"`
	Destination string             `json:"destination,omitempty"` // "session" or "offer"
	Candidate   *CandidateResponse `json:"candidate,omitempty"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SessionMessage is one entry in the session transcript.
type SessionMessage struct {
	Role     string                  `json:"role"` // "interviewer" or "candidate"
	Text     string                  `json:"text"`
	Feedback *model.AnswerEvaluation `json:"feedback,omitempty"`
}

// AptitudeQuestionView is an exam question with the correct answer stripped.
type AptitudeQuestionView struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Category string   `json:"category"`
	Options  []string `json:"options"`
}

// SessionResponse is the full client-visible session state.
type SessionResponse struct {
	ID                string                 `json:"id"`
	Type              string                 `json:"type"`
	Phase             string                 `json:"phase"`
	RemainingSeconds  int                    `json:"remaining_seconds"`
	TerminationReason string                 `json:"termination_reason,omitempty"`
	Messages          []SessionMessage       `json:"messages,omitempty"`
	AptitudeQuestions []AptitudeQuestionView `json:"aptitude_questions,omitempty"`
	Completed         bool                   `json:"completed"`
}

// AptitudeResultResponse reports the scored exam.
type AptitudeResultResponse struct {
	Score   int `json:"score"`
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// LeaderboardEntry ranks candidates by gamification points.
type LeaderboardEntry struct {
	CandidateID string   `json:"candidate_id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Points      int      `json:"points"`
	Badges      []string `json:"badges,omitempty"`
}
