package model

import (
	"time"

	"gorm.io/gorm"
)

// SkillScore is one entry of the candidate's per-skill breakdown.
type SkillScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Max   int    `json:"max"`
}

// OfferLetter is the signed offer attached to a candidate once the VP
// approves them. ExpiryDate is signing time + OfferValidity.
type OfferLetter struct {
	SignedBy   string    `json:"signed_by"`
	DateSigned time.Time `json:"date_signed"`
	ExpiryDate time.Time `json:"expiry_date"`
	IsAccepted bool      `json:"is_accepted"`
}

// Candidate is one applicant record. Records are created on application
// submission or batch screening import and never deleted.
type Candidate struct {
	ID    string `gorm:"primarykey" json:"id"`
	Name  string `json:"name" gorm:"not null"`
	Email string `json:"email" gorm:"not null"`
	Role  string `json:"role" gorm:"not null"`

	Status CandidateStatus `json:"status" gorm:"not null;default:'Screening'"`

	// AccessKey uniquely identifies the candidate for proctored session
	// logins once issued. Lookups are case-insensitive; the stored value is
	// always upper case.
	AccessKey  *string `json:"access_key,omitempty" gorm:"uniqueIndex"`
	ResumeHash string  `json:"resume_hash" gorm:"index"`

	// Duplicate metadata is set at creation time only and never blocks a
	// submission. DuplicateOf holds the name of the earliest candidate with
	// the same resume fingerprint.
	IsDuplicate bool    `json:"is_duplicate"`
	DuplicateOf *string `json:"duplicate_of,omitempty"`

	OverallScore        int `json:"overall_score"`
	TechnicalScore      int `json:"technical_score"`
	CommunicationScore  int `json:"communication_score"`
	ProblemSolvingScore int `json:"problem_solving_score"`

	TechnicalReasoning      string `json:"technical_reasoning,omitempty" gorm:"type:text"`
	CommunicationReasoning  string `json:"communication_reasoning,omitempty" gorm:"type:text"`
	ProblemSolvingReasoning string `json:"problem_solving_reasoning,omitempty" gorm:"type:text"`
	ResumeSummary           string `json:"resume_summary,omitempty" gorm:"type:text"`

	AptitudeScore *int    `json:"aptitude_score,omitempty"`
	AptitudeDate  *string `json:"aptitude_date,omitempty"`
	AptitudeTime  *string `json:"aptitude_time,omitempty"`

	Round2Date *string `json:"round2_date,omitempty"`
	Round2Time *string `json:"round2_time,omitempty"`
	Round2Link *string `json:"round2_link,omitempty"`

	InterviewDate *string `json:"interview_date,omitempty"`
	InterviewTime *string `json:"interview_time,omitempty"`

	OfferLetter  *OfferLetter `json:"offer_letter,omitempty" gorm:"serializer:json"`
	NoticePeriod *string      `json:"notice_period,omitempty"`

	Points int          `json:"points"`
	Badges []string     `json:"badges" gorm:"serializer:json"`
	Skills []SkillScore `json:"skills" gorm:"serializer:json"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// EffectiveStatus derives the display status at the given instant. An unsent
// acceptance past the expiry date reads as Offer Expired without any store
// mutation.
func (c *Candidate) EffectiveStatus(now time.Time) CandidateStatus {
	if c.Status == StatusOfferSent && c.OfferLetter != nil &&
		!c.OfferLetter.IsAccepted && now.After(c.OfferLetter.ExpiryDate) {
		return StatusOfferExpired
	}
	return c.Status
}

// AptitudeSchedule parses the stored aptitude date and time into a single
// local instant. Returns false when no schedule has been set.
func (c *Candidate) AptitudeSchedule() (time.Time, bool) {
	if c.AptitudeDate == nil || c.AptitudeTime == nil {
		return time.Time{}, false
	}
	at, err := time.ParseInLocation("2006-01-02 15:04", *c.AptitudeDate+" "+*c.AptitudeTime, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}
