package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/adrewards/internal/domain"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "4500.00", Money(decimal.NewFromInt(4500)))
	assert.Equal(t, "0.10", Money(decimal.RequireFromString("0.1")))
	assert.Equal(t, "-12.35", Money(decimal.RequireFromString("-12.35")))
}

func TestCheckPrecision(t *testing.T) {
	tests := []struct {
		amount string
		err    error
	}{
		{"4500", nil},
		{"4500.5", nil},
		{"4500.55", nil},
		{"4500.550", nil},
		{"4500.555", ErrAmountPrecision},
		{"0.001", ErrAmountPrecision},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.err, CheckPrecision(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestWithdrawRequestDTO_Decode(t *testing.T) {
	for _, body := range []string{
		`{"amount": 4500.25, "method": "upi", "details": "asha@okaxis"}`,
		`{"amount": "4500.25", "method": "upi", "details": "asha@okaxis"}`,
	} {
		var req WithdrawRequestDTO
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		assert.True(t, req.Amount.Equal(decimal.RequireFromString("4500.25")), body)
		assert.Equal(t, "upi", req.Method)
	}
}

func TestCreateAdRequestDTO_ToDomain(t *testing.T) {
	inactive := false
	req := CreateAdRequestDTO{
		Title:           "Banner",
		Type:            "banner",
		DurationSeconds: 10,
		Reward:          decimal.NewFromInt(2),
	}
	ad := req.ToDomain()
	assert.True(t, ad.IsActive)
	assert.Equal(t, domain.AdTypeBanner, ad.Type)

	req.IsActive = &inactive
	assert.False(t, req.ToDomain().IsActive)
}

func TestUpdateAdRequestDTO_Apply(t *testing.T) {
	ad := &domain.Ad{
		ID:              3,
		Title:           "Old",
		Type:            domain.AdTypeVideo,
		DurationSeconds: 30,
		Reward:          decimal.NewFromInt(5),
		IsActive:        true,
	}
	var req UpdateAdRequestDTO
	require.NoError(t, json.Unmarshal([]byte(`{"title": "New", "reward": "7.50", "is_active": false}`), &req))

	req.Apply(ad)

	assert.Equal(t, int64(3), ad.ID)
	assert.Equal(t, "New", ad.Title)
	assert.Equal(t, domain.AdTypeVideo, ad.Type)
	assert.Equal(t, 30, ad.DurationSeconds)
	assert.Equal(t, "7.50", Money(ad.Reward))
	assert.False(t, ad.IsActive)
}

func TestUpdateAccountRequestDTO_ToDomain(t *testing.T) {
	var req UpdateAccountRequestDTO
	require.NoError(t, json.Unmarshal([]byte(`{"is_active": false}`), &req))

	changes := req.ToDomain()
	assert.Nil(t, changes.Role)
	require.NotNil(t, changes.IsActive)
	assert.False(t, *changes.IsActive)

	require.NoError(t, json.Unmarshal([]byte(`{"role": "operator"}`), &req))
	changes = req.ToDomain()
	require.NotNil(t, changes.Role)
	assert.Equal(t, domain.RoleOperator, *changes.Role)
}

func TestNewTransactionsResponse(t *testing.T) {
	resp := NewTransactionsResponse([]domain.Transaction{
		{ID: 1, Kind: domain.TransactionWithdrawal, Amount: decimal.NewFromInt(-4500), Status: "pending"},
		{ID: 9, Kind: domain.TransactionEarning, Amount: decimal.RequireFromString("5.5"), Status: "completed"},
	})
	require.Len(t, resp, 2)
	assert.Equal(t, "-4500.00", resp[0].Amount)
	assert.Equal(t, "withdrawal", resp[0].Type)
	assert.Equal(t, "5.50", resp[1].Amount)
}
