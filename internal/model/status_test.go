package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from CandidateStatus
		to   CandidateStatus
		ok   bool
	}{
		{"screening to aptitude scheduled", StatusScreening, StatusAptitudeScheduled, true},
		{"aptitude scheduled to completed", StatusAptitudeScheduled, StatusAptitudeCompleted, true},
		{"aptitude completed to interview", StatusAptitudeCompleted, StatusInterviewScheduled, true},
		{"interview to vp approval", StatusInterviewScheduled, StatusVPApproval, true},
		{"vp approval to offer signed", StatusVPApproval, StatusOfferSigned, true},
		{"offer signed to offer sent", StatusOfferSigned, StatusOfferSent, true},
		{"offer sent to accepted", StatusOfferSent, StatusOfferAccepted, true},

		{"no backward move", StatusVPApproval, StatusScreening, false},
		{"no stage skipping", StatusScreening, StatusInterviewScheduled, false},
		{"accepted is terminal", StatusOfferAccepted, StatusOfferSent, false},
		{"expired is never a stored target", StatusOfferSent, StatusOfferExpired, false},
		{"screening cannot jump to offer", StatusScreening, StatusOfferSigned, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPastAptitude(t *testing.T) {
	past := []CandidateStatus{
		StatusInterviewScheduled, StatusVPApproval, StatusOfferSigned,
		StatusOfferSent, StatusOfferAccepted, StatusOfferExpired,
	}
	for _, s := range past {
		assert.True(t, s.PastAptitude(), string(s))
	}
	for _, s := range []CandidateStatus{StatusScreening, StatusAptitudeScheduled, StatusAptitudeCompleted} {
		assert.False(t, s.PastAptitude(), string(s))
	}
}

func TestEffectiveStatusDerivesExpiry(t *testing.T) {
	signed := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	c := &Candidate{
		Status: StatusOfferSent,
		OfferLetter: &OfferLetter{
			SignedBy:   "Vice President",
			DateSigned: signed,
			ExpiryDate: signed.Add(OfferValidity),
		},
	}

	assert.Equal(t, StatusOfferSent, c.EffectiveStatus(signed.Add(71*time.Hour)))
	assert.Equal(t, StatusOfferExpired, c.EffectiveStatus(signed.Add(73*time.Hour)))

	// acceptance freezes the status even past expiry
	c.Status = StatusOfferAccepted
	c.OfferLetter.IsAccepted = true
	assert.Equal(t, StatusOfferAccepted, c.EffectiveStatus(signed.Add(100*time.Hour)))
}

func TestEffectiveStatusWithoutOffer(t *testing.T) {
	c := &Candidate{Status: StatusScreening}
	assert.Equal(t, StatusScreening, c.EffectiveStatus(time.Now()))
}

func TestAptitudeSchedule(t *testing.T) {
	d, tm := "2026-09-01", "14:30"
	c := &Candidate{AptitudeDate: &d, AptitudeTime: &tm}

	at, ok := c.AptitudeSchedule()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 1, 14, 30, 0, 0, time.Local), at)

	_, ok = (&Candidate{}).AptitudeSchedule()
	assert.False(t, ok)
}

func TestValid(t *testing.T) {
	assert.True(t, StatusOfferAccepted.Valid())
	assert.True(t, StatusScreening.Valid())
	assert.False(t, StatusOfferExpired.Valid())
	assert.False(t, CandidateStatus("Hired").Valid())
}
