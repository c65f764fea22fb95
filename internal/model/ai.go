package model

// Typed contracts for the generative scoring boundary. Responses are
// validated against these shapes before anything reaches the store; missing
// required fields are an error, never a silent zero.

// ScreeningAnalysis is the resume scoring result. All scores are integers
// 0-100.
type ScreeningAnalysis struct {
	OverallScore            int      `json:"overallScore"`
	TechnicalScore          int      `json:"technicalScore"`
	CommunicationScore      int      `json:"communicationScore"`
	ProblemSolvingScore     int      `json:"problemSolvingScore"`
	TechnicalReasoning      string   `json:"technicalReasoning"`
	CommunicationReasoning  string   `json:"communicationReasoning"`
	ProblemSolvingReasoning string   `json:"problemSolvingReasoning"`
	Summary                 string   `json:"summary"`
	Strengths               []string `json:"strengths,omitempty"`
	Weaknesses              []string `json:"weaknesses,omitempty"`
}

// InterviewQuestion is one generated question for a proctored or practice
// session.
type InterviewQuestion struct {
	Question string `json:"question"`
	Category string `json:"category"`
	Intent   string `json:"intent"`
}

// AnswerEvaluation scores one interview response. The structured feedback
// fields are surfaced to the candidate in practice mode only.
type AnswerEvaluation struct {
	Score                int    `json:"score"`
	Feedback             string `json:"feedback"`
	Clarity              string `json:"clarity"`
	Conciseness          string `json:"conciseness"`
	Relevance            string `json:"relevance"`
	SuggestedImprovement string `json:"suggestedImprovement"`
}

// AptitudeQuestion is one multiple-choice exam question. CorrectAnswer is
// the index into Options and is never exposed to candidates.
type AptitudeQuestion struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Category      string   `json:"category"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}
