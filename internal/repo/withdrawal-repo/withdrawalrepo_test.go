package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/adrewards/internal/domain"
	"github.com/GlebRadaev/adrewards/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

var (
	withdrawalColumnNames = []string{"id", "account_id", "amount", "method", "details", "status", "requested_at", "updated_at"}
	requestedAt           = time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	amount                = decimal.RequireFromString("4500.00")

	lockBalanceQuery   = regexp.QuoteMeta(`SELECT available_balance FROM accounts WHERE id = $1 FOR UPDATE`)
	adjustBalanceQuery = regexp.QuoteMeta(`UPDATE accounts SET available_balance = available_balance + $2 WHERE id = $1`)
)

func withdrawalRows(ws ...domain.Withdrawal) *pgxmock.Rows {
	rows := pgxmock.NewRows(withdrawalColumnNames)
	for _, w := range ws {
		rows.AddRow(w.ID, w.AccountID, w.Amount, w.Method, w.Details, w.Status, w.RequestedAt, w.UpdatedAt)
	}
	return rows
}

func balanceRows(balance string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"available_balance"}).AddRow(decimal.RequireFromString(balance))
}

func storedWithdrawal(status domain.WithdrawalStatus) domain.Withdrawal {
	return domain.Withdrawal{
		ID:          5,
		AccountID:   1,
		Amount:      amount,
		Method:      domain.PaymentUPI,
		Details:     "asha@okaxis",
		Status:      status,
		RequestedAt: requestedAt,
		UpdatedAt:   requestedAt,
	}
}

func TestRepository_CreateWithdrawal(t *testing.T) {
	insertQuery := regexp.QuoteMeta(`INSERT INTO withdrawals (account_id, amount, method, details, status) VALUES ($1, $2, $3, $4, $5)`)

	tests := []struct {
		name        string
		mockSetup   func(mock pgxmock.PgxPoolIface)
		expectedErr error
	}{
		{
			name: "Reserves the balance",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(lockBalanceQuery).WithArgs(int64(1)).WillReturnRows(balanceRows("5000.00"))
				mock.ExpectExec(adjustBalanceQuery).WithArgs(int64(1), amount.Neg()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectQuery(insertQuery).
					WithArgs(int64(1), amount, domain.PaymentUPI, "asha@okaxis", domain.StatusPending).
					WillReturnRows(withdrawalRows(storedWithdrawal(domain.StatusPending)))
			},
		},
		{
			name: "Exact balance is enough",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(lockBalanceQuery).WithArgs(int64(1)).WillReturnRows(balanceRows("4500.00"))
				mock.ExpectExec(adjustBalanceQuery).WithArgs(int64(1), amount.Neg()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectQuery(insertQuery).
					WithArgs(int64(1), amount, domain.PaymentUPI, "asha@okaxis", domain.StatusPending).
					WillReturnRows(withdrawalRows(storedWithdrawal(domain.StatusPending)))
			},
		},
		{
			name: "Insufficient balance changes nothing",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(lockBalanceQuery).WithArgs(int64(1)).WillReturnRows(balanceRows("4499.99"))
			},
			expectedErr: domain.ErrInsufficientBalance,
		},
		{
			name: "Account missing",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(lockBalanceQuery).WithArgs(int64(1)).WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Insert failure",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(lockBalanceQuery).WithArgs(int64(1)).WillReturnRows(balanceRows("5000.00"))
				mock.ExpectExec(adjustBalanceQuery).WithArgs(int64(1), amount.Neg()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectQuery(insertQuery).
					WithArgs(int64(1), amount, domain.PaymentUPI, "asha@okaxis", domain.StatusPending).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("insert withdrawal: database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, tx := NewMock(t)
			tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
				tt.mockSetup(mock)
				return fn(ctx)
			})

			result, err := repo.CreateWithdrawal(context.Background(), &domain.Withdrawal{
				AccountID: 1,
				Amount:    amount,
				Method:    domain.PaymentUPI,
				Details:   "asha@okaxis",
			})

			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				expected := storedWithdrawal(domain.StatusPending)
				assert.Equal(t, &expected, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetWithdrawalsByAccountID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`FROM withdrawals WHERE account_id = $1 ORDER BY requested_at DESC, id DESC`)
	first := storedWithdrawal(domain.StatusCompleted)
	second := storedWithdrawal(domain.StatusPending)
	second.ID = 6

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Withdrawal
	}{
		{
			name: "Withdrawals found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnRows(withdrawalRows(first, second))
			},
			result: []domain.Withdrawal{first, second},
		},
		{
			name: "No withdrawals found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnRows(withdrawalRows())
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Error scanning row",
			mockSetup: func() {
				rows := pgxmock.NewRows(withdrawalColumnNames).
					AddRow(int64(1), int64(1), "invalid_data", domain.PaymentUPI, "x", domain.StatusPending, "invalid_data", requestedAt)
				mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetWithdrawalsByAccountID(context.Background(), 1)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_ListAll(t *testing.T) {
	repo, mock, _ := NewMock(t)
	w := storedWithdrawal(domain.StatusPending)

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN accounts a ON a.id = w.account_id`)).
		WillReturnRows(pgxmock.NewRows(append(withdrawalColumnNames, "username", "email")).
			AddRow(w.ID, w.AccountID, w.Amount, w.Method, w.Details, w.Status, w.RequestedAt, w.UpdatedAt, "asha", "asha@example.com"))

	result, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.WithdrawalWithOwner{{Withdrawal: w, Username: "asha", Email: "asha@example.com"}}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	now := requestedAt.Add(time.Hour)
	lockQuery := regexp.QuoteMeta(`FROM withdrawals WHERE id = $1 FOR UPDATE`)
	updateQuery := regexp.QuoteMeta(`UPDATE withdrawals SET status = $2, updated_at = $3 WHERE id = $1`)

	updatedRows := func(status domain.WithdrawalStatus) *pgxmock.Rows {
		w := storedWithdrawal(status)
		w.UpdatedAt = now
		return withdrawalRows(w)
	}

	tests := []struct {
		name        string
		status      domain.WithdrawalStatus
		refund      bool
		mockSetup   func(mock pgxmock.PgxPoolIface)
		expectedErr error
	}{
		{
			name:   "Pending to processing keeps the reservation",
			status: domain.StatusProcessing,
			refund: true,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(lockQuery).WithArgs(int64(5)).WillReturnRows(withdrawalRows(storedWithdrawal(domain.StatusPending)))
				mock.ExpectQuery(updateQuery).WithArgs(int64(5), domain.StatusProcessing, now).
					WillReturnRows(updatedRows(domain.StatusProcessing))
			},
		},
		{
			name:   "Failure refunds the amount",
			status: domain.StatusFailed,
			refund: true,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(lockQuery).WithArgs(int64(5)).WillReturnRows(withdrawalRows(storedWithdrawal(domain.StatusProcessing)))
				mock.ExpectQuery(lockBalanceQuery).WithArgs(int64(1)).WillReturnRows(balanceRows("10.00"))
				mock.ExpectExec(adjustBalanceQuery).WithArgs(int64(1), amount).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectQuery(updateQuery).WithArgs(int64(5), domain.StatusFailed, now).
					WillReturnRows(updatedRows(domain.StatusFailed))
			},
		},
		{
			name:   "Failure without refund policy only changes status",
			status: domain.StatusFailed,
			refund: false,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(lockQuery).WithArgs(int64(5)).WillReturnRows(withdrawalRows(storedWithdrawal(domain.StatusPending)))
				mock.ExpectQuery(updateQuery).WithArgs(int64(5), domain.StatusFailed, now).
					WillReturnRows(updatedRows(domain.StatusFailed))
			},
		},
		{
			name:   "Reset from failed reserves again",
			status: domain.StatusPending,
			refund: true,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(lockQuery).WithArgs(int64(5)).WillReturnRows(withdrawalRows(storedWithdrawal(domain.StatusFailed)))
				mock.ExpectQuery(lockBalanceQuery).WithArgs(int64(1)).WillReturnRows(balanceRows("4600.00"))
				mock.ExpectExec(adjustBalanceQuery).WithArgs(int64(1), amount.Neg()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectQuery(updateQuery).WithArgs(int64(5), domain.StatusPending, now).
					WillReturnRows(updatedRows(domain.StatusPending))
			},
		},
		{
			name:   "Reset from failed needs the balance",
			status: domain.StatusPending,
			refund: true,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(lockQuery).WithArgs(int64(5)).WillReturnRows(withdrawalRows(storedWithdrawal(domain.StatusFailed)))
				mock.ExpectQuery(lockBalanceQuery).WithArgs(int64(1)).WillReturnRows(balanceRows("100.00"))
			},
			expectedErr: domain.ErrInsufficientBalance,
		},
		{
			name:   "Withdrawal missing",
			status: domain.StatusCompleted,
			refund: true,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(lockQuery).WithArgs(int64(5)).WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, tx := NewMock(t)
			tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
				tt.mockSetup(mock)
				return fn(ctx)
			})

			result, err := repo.UpdateStatus(context.Background(), 5, tt.status, tt.refund, now)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.status, result.Status)
				assert.Equal(t, now, result.UpdatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
