package service

import (
	"testing"
	"time"

	"github.com/hireai/hireai/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPipelineForTest(t *testing.T, candidates ...*model.Candidate) (*pipelineService, *fakeCandidateRepo, *fakeMailer) {
	t.Helper()
	repo := newFakeCandidateRepo(candidates...)
	mailer := &fakeMailer{}
	svc := NewPipelineService(repo, mailer).(*pipelineService)
	return svc, repo, mailer
}

func TestScheduleAptitude(t *testing.T) {
	svc, _, mailer := newPipelineForTest(t, &model.Candidate{
		ID:     "c1",
		Status: model.StatusScreening,
	})

	candidate, err := svc.ScheduleAptitude("c1", "2026-09-10", "14:00")
	require.NoError(t, err)
	assert.Equal(t, model.StatusAptitudeScheduled, candidate.Status)
	require.NotNil(t, candidate.AptitudeDate)
	assert.Equal(t, "2026-09-10", *candidate.AptitudeDate)
	assert.Equal(t, 1, mailer.aptitudeSends)
}

func TestScheduleAptitudeRejectsWrongStage(t *testing.T) {
	svc, _, _ := newPipelineForTest(t, &model.Candidate{
		ID:     "c1",
		Status: model.StatusOfferSent,
	})

	_, err := svc.ScheduleAptitude("c1", "2026-09-10", "14:00")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRecordAptitudeResultRounding(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{"perfect", 20, 20, 100},
		{"two thirds rounds up", 2, 3, 67},
		{"one third rounds down", 1, 3, 33},
		{"half", 10, 20, 50},
		{"zero", 0, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newPipelineForTest(t, &model.Candidate{
				ID:     "c1",
				Status: model.StatusAptitudeScheduled,
			})
			candidate, err := svc.RecordAptitudeResult("c1", tt.correct, tt.total)
			require.NoError(t, err)
			require.NotNil(t, candidate.AptitudeScore)
			assert.Equal(t, tt.want, *candidate.AptitudeScore)
			assert.Equal(t, model.StatusAptitudeCompleted, candidate.Status)
		})
	}
}

func TestScheduleRoundTwoGate(t *testing.T) {
	t.Run("below pass mark", func(t *testing.T) {
		svc, _, _ := newPipelineForTest(t, &model.Candidate{
			ID:            "c1",
			Status:        model.StatusAptitudeCompleted,
			AptitudeScore: intPtr(40),
		})
		_, err := svc.ScheduleRoundTwo("c1", "2026-09-12", "10:00")
		assert.ErrorIs(t, err, ErrNotQualified)
	})

	t.Run("at pass mark", func(t *testing.T) {
		svc, _, _ := newPipelineForTest(t, &model.Candidate{
			ID:            "c1",
			Status:        model.StatusAptitudeCompleted,
			AptitudeScore: intPtr(50),
		})
		candidate, err := svc.ScheduleRoundTwo("c1", "2026-09-12", "10:00")
		require.NoError(t, err)
		assert.Equal(t, model.StatusInterviewScheduled, candidate.Status)
		require.NotNil(t, candidate.Round2Link)
		assert.Contains(t, *candidate.Round2Link, "https://meet.hireai.dev/")
	})

	t.Run("no score at all", func(t *testing.T) {
		svc, _, _ := newPipelineForTest(t, &model.Candidate{
			ID:     "c1",
			Status: model.StatusAptitudeCompleted,
		})
		_, err := svc.ScheduleRoundTwo("c1", "2026-09-12", "10:00")
		assert.ErrorIs(t, err, ErrNotQualified)
	})
}

func TestAdvance(t *testing.T) {
	t.Run("interview to vp approval", func(t *testing.T) {
		svc, _, mailer := newPipelineForTest(t, &model.Candidate{
			ID:     "c1",
			Status: model.StatusInterviewScheduled,
		})
		candidate, err := svc.Advance("c1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusVPApproval, candidate.Status)
		assert.Equal(t, 0, mailer.offerSends)
	})

	t.Run("offer signed to offer sent notifies candidate", func(t *testing.T) {
		svc, _, mailer := newPipelineForTest(t, &model.Candidate{
			ID:     "c1",
			Status: model.StatusOfferSigned,
		})
		candidate, err := svc.Advance("c1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusOfferSent, candidate.Status)
		assert.Equal(t, 1, mailer.offerSends)
	})

	t.Run("no advance from screening", func(t *testing.T) {
		svc, _, _ := newPipelineForTest(t, &model.Candidate{
			ID:     "c1",
			Status: model.StatusScreening,
		})
		_, err := svc.Advance("c1")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestSignOfferSetsExpiry(t *testing.T) {
	svc, _, _ := newPipelineForTest(t, &model.Candidate{
		ID:     "c1",
		Status: model.StatusVPApproval,
	})
	signedAt := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return signedAt }

	candidate, err := svc.SignOffer("c1", "vp_admin")
	require.NoError(t, err)
	assert.Equal(t, model.StatusOfferSigned, candidate.Status)
	require.NotNil(t, candidate.OfferLetter)
	assert.Equal(t, "vp_admin", candidate.OfferLetter.SignedBy)
	assert.Equal(t, signedAt.Add(72*time.Hour), candidate.OfferLetter.ExpiryDate)
	assert.False(t, candidate.OfferLetter.IsAccepted)
}

func TestAcceptOffer(t *testing.T) {
	signedAt := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	base := &model.Candidate{
		ID:        "c1",
		Status:    model.StatusOfferSent,
		AccessKey: strPtr("ABCD-EFGH"),
		OfferLetter: &model.OfferLetter{
			SignedBy:   "vp_admin",
			DateSigned: signedAt,
			ExpiryDate: signedAt.Add(model.OfferValidity),
		},
	}

	t.Run("before expiry", func(t *testing.T) {
		svc, _, _ := newPipelineForTest(t, base)
		svc.now = func() time.Time { return signedAt.Add(71 * time.Hour) }

		candidate, err := svc.AcceptOffer("c1", "abcd-efgh")
		require.NoError(t, err)
		assert.Equal(t, model.StatusOfferAccepted, candidate.Status)
		assert.True(t, candidate.OfferLetter.IsAccepted)
	})

	t.Run("after expiry", func(t *testing.T) {
		svc, _, _ := newPipelineForTest(t, base)
		svc.now = func() time.Time { return signedAt.Add(73 * time.Hour) }

		_, err := svc.AcceptOffer("c1", "ABCD-EFGH")
		assert.ErrorIs(t, err, ErrOfferExpired)
	})

	t.Run("key for a different candidate", func(t *testing.T) {
		svc, _, _ := newPipelineForTest(t, base)
		svc.now = func() time.Time { return signedAt.Add(time.Hour) }

		_, err := svc.AcceptOffer("someone-else", "ABCD-EFGH")
		assert.Error(t, err)
	})

	t.Run("no offer letter", func(t *testing.T) {
		svc, _, _ := newPipelineForTest(t, &model.Candidate{
			ID:        "c1",
			Status:    model.StatusOfferSent,
			AccessKey: strPtr("ABCD-EFGH"),
		})
		_, err := svc.AcceptOffer("c1", "ABCD-EFGH")
		assert.ErrorIs(t, err, ErrNoOffer)
	})
}

func TestPendingApproval(t *testing.T) {
	svc, _, _ := newPipelineForTest(t,
		&model.Candidate{ID: "c1", Status: model.StatusVPApproval},
		&model.Candidate{ID: "c2", Status: model.StatusScreening},
		&model.Candidate{ID: "c3", Status: model.StatusVPApproval},
	)
	pending, err := svc.PendingApproval()
	require.NoError(t, err)
	assert.Len(t, pending, 2)
	for _, c := range pending {
		assert.Equal(t, model.StatusVPApproval, c.Status)
	}
}
