package fraud

import (
	"context"
	"errors"
	"testing"
	"time"

	"sahay/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSignalReader struct {
	recent      int64
	avg, max    float64
	completed   int64
	toRecipient int64
	amountToday float64
	flagged     []models.Transaction
	failReads   bool
	failFlagged bool
}

func (f *fakeSignalReader) CountRecentAttempts(uint, time.Time) (int64, error) {
	if f.failReads {
		return 0, errors.New("connection refused")
	}
	return f.recent, nil
}

func (f *fakeSignalReader) CompletedAmountStats(uint) (float64, float64, int64, error) {
	if f.failReads {
		return 0, 0, 0, errors.New("connection refused")
	}
	return f.avg, f.max, f.completed, nil
}

func (f *fakeSignalReader) CountCompletedToRecipient(uint, string) (int64, error) {
	if f.failReads {
		return 0, errors.New("connection refused")
	}
	return f.toRecipient, nil
}

func (f *fakeSignalReader) SumActiveAmountSince(uint, time.Time) (float64, error) {
	if f.failReads {
		return 0, errors.New("connection refused")
	}
	return f.amountToday, nil
}

func (f *fakeSignalReader) RecentFlagged(uint, int) ([]models.Transaction, error) {
	if f.failFlagged {
		return nil, errors.New("connection refused")
	}
	return f.flagged, nil
}

type fakeUserReader struct {
	user *models.User
	err  error
}

func (f *fakeUserReader) GetByID(uint) (*models.User, error) { return f.user, f.err }

func newTestService(reader *fakeSignalReader, users *fakeUserReader, at time.Time) *service {
	svc := NewService(reader, users, nil, DefaultConfig()).(*service)
	svc.now = func() time.Time { return at }
	return svc
}

func testSender() *models.User {
	u := &models.User{
		UpiID:            "asha@sahay",
		Balance:          10000,
		TransactionLimit: 10000,
		DailyLimit:       50000,
		AccountStatus:    models.AccountStatusActive,
	}
	u.ID = 1
	return u
}

func TestEvaluate_CleanTransfer(t *testing.T) {
	svc := newTestService(&fakeSignalReader{}, &fakeUserReader{}, afternoon)

	v := svc.Evaluate(context.Background(), testSender(), "ravi@sahay", 5000)

	assert.Equal(t, 0.0, v.RiskScore)
	assert.False(t, v.Flagged)
	assert.True(t, v.IsNewRecipient)
	assert.Equal(t, 30, v.TimeWindowMinutes)
}

func TestEvaluate_FlaggedTransfer(t *testing.T) {
	reader := &fakeSignalReader{recent: 6, toRecipient: 1}
	svc := newTestService(reader, &fakeUserReader{}, afternoon)

	v := svc.Evaluate(context.Background(), testSender(), "ravi@sahay", 60000)

	assert.Equal(t, 75.0, v.RiskScore)
	assert.True(t, v.Flagged)
	assert.Equal(t, 6, v.RecentTransactionCount)
}

func TestEvaluate_SignalsUnavailable(t *testing.T) {
	// A failing signal store must never block the transfer attempt: the
	// verdict degrades to zero risk, unflagged.
	reader := &fakeSignalReader{failReads: true}
	svc := newTestService(reader, &fakeUserReader{}, afternoon)

	v := svc.Evaluate(context.Background(), testSender(), "ravi@sahay", 60000)

	assert.Equal(t, 0.0, v.RiskScore)
	assert.False(t, v.Flagged)
	assert.Equal(t, []string{"fraud signals unavailable"}, v.Reasons)
}

func TestGetStats_RiskLevels(t *testing.T) {
	tests := []struct {
		score float64
		level string
	}{
		{0, "Low"},
		{39, "Low"},
		// Four flagged transfers land exactly on the Medium bound.
		{40, "Medium"},
		{70, "Medium"},
		{71, "High"},
	}

	for _, tt := range tests {
		user := testSender()
		user.FraudScore = tt.score
		svc := newTestService(&fakeSignalReader{}, &fakeUserReader{user: user}, afternoon)

		stats, err := svc.GetStats(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, tt.level, stats.RiskLevel, "score %.0f", tt.score)
		assert.Equal(t, tt.score, stats.FraudScore)
	}
}

func TestGetStats_Recommendations(t *testing.T) {
	t.Run("clean account", func(t *testing.T) {
		user := testSender()
		svc := newTestService(&fakeSignalReader{}, &fakeUserReader{user: user}, afternoon)

		stats, err := svc.GetStats(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.FlaggedCount)
		require.Len(t, stats.Recommendations, 1)
		assert.Contains(t, stats.Recommendations[0], "excellent")
	})

	t.Run("elevated score with flagged transfers", func(t *testing.T) {
		user := testSender()
		user.FraudScore = 60
		reader := &fakeSignalReader{flagged: []models.Transaction{{TransactionID: "TXN-1"}}}
		svc := newTestService(reader, &fakeUserReader{user: user}, afternoon)

		stats, err := svc.GetStats(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.FlaggedCount)
		assert.Contains(t, stats.Recommendations[0], "unusual activity")
		assert.Contains(t, stats.Recommendations[1], "flagged")
		assert.GreaterOrEqual(t, len(stats.Recommendations), 4)
	})
}

func TestGetStats_UserLookupFails(t *testing.T) {
	svc := newTestService(&fakeSignalReader{}, &fakeUserReader{err: errors.New("user not found")}, afternoon)

	_, err := svc.GetStats(context.Background(), 1)
	assert.Error(t, err)
}
