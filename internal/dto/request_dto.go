package dto

// ApplyRequest is a candidate submitting their own application.
type ApplyRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Role       string `json:"role" binding:"required"`
	ResumeText string `json:"resume_text" binding:"required"`
}

// BatchScreenFile is one resume within a batch screening import.
type BatchScreenFile struct {
	Filename   string `json:"filename" binding:"required"`
	ResumeText string `json:"resume_text"`
}

// BatchScreenRequest imports multiple resumes against one job description.
type BatchScreenRequest struct {
	JobDescription string            `json:"job_description" binding:"required"`
	Files          []BatchScreenFile `json:"files" binding:"required,min=1,dive"`
}

// ScheduleRequest sets a date/time slot for an aptitude exam or a round-2
// interview.
type ScheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// AccessVerifyRequest is the candidate login by access key.
type AccessVerifyRequest struct {
	AccessKey string `json:"access_key" binding:"required"`
}

// LoginRequest is an HR/VP portal login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateSessionRequest opens an interview or exam session. Proctored and
// aptitude sessions require an access key; practice sessions only need a
// target role.
type CreateSessionRequest struct {
	Type      string `json:"type" binding:"required,oneof=proctored practice aptitude"`
	AccessKey string `json:"access_key"`
	Role      string `json:"role"`
}

// StartSessionRequest reports the client's media acquisition result and
// moves the session out of setup.
type StartSessionRequest struct {
	MediaGranted *bool `json:"media_granted" binding:"required"`
}

// AnswerRequest is one candidate response in the question loop.
type AnswerRequest struct {
	Text string `json:"text" binding:"required"`
}

// SessionEventRequest delivers a monitoring signal from the client.
type SessionEventRequest struct {
	Event string `json:"event" binding:"required,oneof=tab_hidden focus_lost emergency_stop"`
}

// AptitudeAnswer is one selected option in the aptitude exam.
type AptitudeAnswer struct {
	QuestionID int `json:"question_id" binding:"required"`
	Option     int `json:"option"`
}

// AptitudeSubmitRequest submits the whole aptitude answer sheet.
type AptitudeSubmitRequest struct {
	Answers []AptitudeAnswer `json:"answers" binding:"dive"`
}

// UpdateCandidateRequest is a partial, last-writer-wins edit of candidate
// fields. Status changes go through the dedicated pipeline endpoints, never
// through here.
type UpdateCandidateRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Role          *string `json:"role"`
	NoticePeriod  *string `json:"notice_period"`
	InterviewDate *string `json:"interview_date"`
	InterviewTime *string `json:"interview_time"`
	Points        *int    `json:"points"`
}

// AcceptOfferRequest is a candidate accepting their offer, authenticated by
// access key.
type AcceptOfferRequest struct {
	AccessKey string `json:"access_key" binding:"required"`
}
