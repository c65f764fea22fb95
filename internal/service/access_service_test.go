package service

import (
	"testing"
	"time"

	"github.com/hireai/hireai/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccessForTest(t *testing.T, now time.Time, candidates ...*model.Candidate) *accessService {
	t.Helper()
	svc := NewAccessService(newFakeCandidateRepo(candidates...)).(*accessService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestVerifyUnknownKey(t *testing.T) {
	svc := newAccessForTest(t, time.Now())
	resp, err := svc.Verify("ZZZZ-ZZZZ")
	require.NoError(t, err)
	assert.False(t, resp.Granted)
	assert.Equal(t, "Invalid access key.", resp.Message)
}

func TestVerifyCaseInsensitiveKey(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.Local)
	svc := newAccessForTest(t, now, &model.Candidate{
		ID:           "c1",
		Status:       model.StatusAptitudeScheduled,
		AccessKey:    strPtr("ABCD-EFGH"),
		AptitudeDate: strPtr("2026-09-01"),
		AptitudeTime: strPtr("14:00"),
	})

	resp, err := svc.Verify("abcd-efgh")
	require.NoError(t, err)
	assert.True(t, resp.Granted)
	assert.Equal(t, destinationSession, resp.Destination)
}

func TestVerifyBeforeScheduledWindow(t *testing.T) {
	// 2 hours early: denial message counts down 120 minutes.
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	svc := newAccessForTest(t, now, &model.Candidate{
		ID:           "c1",
		Status:       model.StatusAptitudeScheduled,
		AccessKey:    strPtr("ABCD-EFGH"),
		AptitudeDate: strPtr("2026-09-01"),
		AptitudeTime: strPtr("14:00"),
	})

	resp, err := svc.Verify("ABCD-EFGH")
	require.NoError(t, err)
	assert.False(t, resp.Granted)
	assert.Contains(t, resp.Message, "120 minutes")
}

func TestVerifyPartialMinuteRoundsUp(t *testing.T) {
	now := time.Date(2026, 9, 1, 13, 59, 30, 0, time.Local)
	svc := newAccessForTest(t, now, &model.Candidate{
		ID:           "c1",
		Status:       model.StatusAptitudeScheduled,
		AccessKey:    strPtr("ABCD-EFGH"),
		AptitudeDate: strPtr("2026-09-01"),
		AptitudeTime: strPtr("14:00"),
	})

	resp, err := svc.Verify("ABCD-EFGH")
	require.NoError(t, err)
	assert.False(t, resp.Granted)
	assert.Contains(t, resp.Message, "1 minutes")
}

func TestVerifyNoScheduleYet(t *testing.T) {
	svc := newAccessForTest(t, time.Now(), &model.Candidate{
		ID:        "c1",
		Status:    model.StatusScreening,
		AccessKey: strPtr("ABCD-EFGH"),
	})

	resp, err := svc.Verify("ABCD-EFGH")
	require.NoError(t, err)
	assert.False(t, resp.Granted)
	assert.Contains(t, resp.Message, "not been scheduled")
}

func TestVerifyPastAptitudeBypassesSchedule(t *testing.T) {
	// Schedule is in the future but the candidate is already interviewing.
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	tests := []struct {
		status      model.CandidateStatus
		destination string
	}{
		{model.StatusInterviewScheduled, destinationSession},
		{model.StatusVPApproval, destinationSession},
		{model.StatusOfferSigned, destinationSession},
		{model.StatusOfferSent, destinationOffer},
		{model.StatusOfferAccepted, destinationOffer},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			svc := newAccessForTest(t, now, &model.Candidate{
				ID:           "c1",
				Status:       tt.status,
				AccessKey:    strPtr("ABCD-EFGH"),
				AptitudeDate: strPtr("2026-09-02"),
				AptitudeTime: strPtr("14:00"),
			})
			resp, err := svc.Verify("ABCD-EFGH")
			require.NoError(t, err)
			assert.True(t, resp.Granted)
			assert.Equal(t, tt.destination, resp.Destination)
			require.NotNil(t, resp.Candidate)
			assert.Equal(t, "c1", resp.Candidate.ID)
		})
	}
}

func TestVerifyExpiredOfferStillLandsOnOfferView(t *testing.T) {
	signedAt := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	now := signedAt.Add(100 * time.Hour)
	svc := newAccessForTest(t, now, &model.Candidate{
		ID:        "c1",
		Status:    model.StatusOfferSent,
		AccessKey: strPtr("ABCD-EFGH"),
		OfferLetter: &model.OfferLetter{
			SignedBy:   "vp_admin",
			DateSigned: signedAt,
			ExpiryDate: signedAt.Add(model.OfferValidity),
		},
	})

	resp, err := svc.Verify("ABCD-EFGH")
	require.NoError(t, err)
	assert.True(t, resp.Granted)
	assert.Equal(t, destinationOffer, resp.Destination)
	require.NotNil(t, resp.Candidate)
	assert.Equal(t, string(model.StatusOfferExpired), resp.Candidate.Status)
}
