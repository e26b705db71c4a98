package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleOperator.Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}

func TestAccountChanges_Apply(t *testing.T) {
	account := Account{Role: RoleUser, IsActive: true}

	assert.NoError(t, AccountChanges{}.Apply(&account))
	assert.Equal(t, Account{Role: RoleUser, IsActive: true}, account)

	operator := RoleOperator
	inactive := false
	assert.NoError(t, AccountChanges{Role: &operator, IsActive: &inactive}.Apply(&account))
	assert.Equal(t, RoleOperator, account.Role)
	assert.False(t, account.IsActive)

	unknown := Role("admin")
	assert.ErrorIs(t, AccountChanges{Role: &unknown}.Apply(&account), ErrInvalidRole)
	assert.Equal(t, RoleOperator, account.Role)
}

func TestAd_Validate(t *testing.T) {
	valid := Ad{Title: "Video", Type: AdTypeVideo, DurationSeconds: 30, Reward: decimal.RequireFromString("4.00")}
	assert.NoError(t, valid.Validate())

	zeroDuration := valid
	zeroDuration.DurationSeconds = 0
	assert.ErrorIs(t, zeroDuration.Validate(), ErrInvalidAd)

	zeroReward := valid
	zeroReward.Reward = decimal.Zero
	assert.ErrorIs(t, zeroReward.Validate(), ErrInvalidAd)

	badType := valid
	badType.Type = "popup"
	assert.ErrorIs(t, badType.Validate(), ErrInvalidAd)
}

func TestAdView_WatchableAt(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	view := AdView{CreatedAt: start, DurationSeconds: 30}

	assert.Equal(t, start.Add(30*time.Second), view.WatchableAt(0))
	assert.Equal(t, start.Add(28*time.Second), view.WatchableAt(2*time.Second))
}

func TestAdView_CheckCompletion(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	grace := 2 * time.Second

	tests := []struct {
		name      string
		view      AdView
		accountID int64
		now       time.Time
		want      error
	}{
		{
			name:      "owner after duration",
			view:      AdView{AccountID: 1, CreatedAt: start, DurationSeconds: 30},
			accountID: 1,
			now:       start.Add(31 * time.Second),
		},
		{
			name:      "within grace",
			view:      AdView{AccountID: 1, CreatedAt: start, DurationSeconds: 30},
			accountID: 1,
			now:       start.Add(28 * time.Second),
		},
		{
			name:      "another account",
			view:      AdView{AccountID: 1, CreatedAt: start, DurationSeconds: 30},
			accountID: 2,
			now:       start.Add(31 * time.Second),
			want:      ErrForbidden,
		},
		{
			name:      "already completed",
			view:      AdView{AccountID: 1, Completed: true, CreatedAt: start, DurationSeconds: 30},
			accountID: 1,
			now:       start.Add(31 * time.Second),
			want:      ErrAlreadyCompleted,
		},
		{
			name:      "too early",
			view:      AdView{AccountID: 1, CreatedAt: start, DurationSeconds: 30},
			accountID: 1,
			now:       start.Add(10 * time.Second),
			want:      ErrViewTooEarly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.view.CheckCompletion(tt.accountID, tt.now, grace)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
