package model

import "time"

// CandidateStatus is the candidate's stage in the hiring pipeline. The
// extended nine-state scheme is the single source of truth; transitions only
// move forward.
type CandidateStatus string

const (
	StatusScreening          CandidateStatus = "Screening"
	StatusAptitudeScheduled  CandidateStatus = "Aptitude Scheduled"
	StatusAptitudeCompleted  CandidateStatus = "Aptitude Completed"
	StatusInterviewScheduled CandidateStatus = "Interview Scheduled"
	StatusVPApproval         CandidateStatus = "VP Approval"
	StatusOfferSigned        CandidateStatus = "Offer Signed"
	StatusOfferSent          CandidateStatus = "Offer Sent"
	StatusOfferAccepted      CandidateStatus = "Offer Accepted"

	// StatusOfferExpired is never persisted. It is derived from
	// StatusOfferSent plus the offer expiry timestamp at read time, so a
	// stale client can never race the clock into the store.
	StatusOfferExpired CandidateStatus = "Offer Expired"
)

// AptitudePassMark gates the Schedule Round 2 action and nothing else.
const AptitudePassMark = 50

// OfferValidity is how long a signed offer remains acceptable.
const OfferValidity = 72 * time.Hour

// transitions holds the forward edges of the pipeline. Offer Expired has no
// stored edge; see EffectiveStatus.
var transitions = map[CandidateStatus]CandidateStatus{
	StatusScreening:          StatusAptitudeScheduled,
	StatusAptitudeScheduled:  StatusAptitudeCompleted,
	StatusAptitudeCompleted:  StatusInterviewScheduled,
	StatusInterviewScheduled: StatusVPApproval,
	StatusVPApproval:         StatusOfferSigned,
	StatusOfferSigned:        StatusOfferSent,
	StatusOfferSent:          StatusOfferAccepted,
}

// CanTransitionTo reports whether next is the legal forward step from s.
func (s CandidateStatus) CanTransitionTo(next CandidateStatus) bool {
	return transitions[s] == next
}

// PastAptitude reports whether the candidate has already moved beyond the
// aptitude stage. These statuses bypass the scheduled-time check at access
// key login.
func (s CandidateStatus) PastAptitude() bool {
	switch s {
	case StatusInterviewScheduled, StatusVPApproval, StatusOfferSigned,
		StatusOfferSent, StatusOfferAccepted, StatusOfferExpired:
		return true
	}
	return false
}

// OfferStage reports whether the candidate should land on the offer view
// rather than a proctored session after access key login.
func (s CandidateStatus) OfferStage() bool {
	switch s {
	case StatusOfferSent, StatusOfferAccepted, StatusOfferExpired:
		return true
	}
	return false
}

// Valid reports whether s is a status that may be persisted. Offer Expired
// is display-only and therefore not valid for storage.
func (s CandidateStatus) Valid() bool {
	switch s {
	case StatusScreening, StatusAptitudeScheduled, StatusAptitudeCompleted,
		StatusInterviewScheduled, StatusVPApproval, StatusOfferSigned,
		StatusOfferSent, StatusOfferAccepted:
		return true
	}
	return false
}
