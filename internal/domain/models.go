package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleUser     Role = "user"
	RoleOperator Role = "operator"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleOperator
}

type Account struct {
	ID               int64           `db:"id"`
	Username         string          `db:"username"`
	Email            string          `db:"email"`
	PasswordHash     string          `db:"password_hash"`
	TotalEarnings    decimal.Decimal `db:"total_earnings"`
	AvailableBalance decimal.Decimal `db:"available_balance"`
	AdsWatchedToday  int             `db:"ads_watched_today"`
	CurrentStreak    int             `db:"current_streak"`
	Role             Role            `db:"role"`
	IsActive         bool            `db:"is_active"`
	CreatedAt        time.Time       `db:"created_at"`
}

func (a *Account) IsOperator() bool {
	return a.Role == RoleOperator
}

// AccountChanges holds the operator-editable fields of an account. Nil
// fields keep their current value.
type AccountChanges struct {
	Role     *Role
	IsActive *bool
}

func (c AccountChanges) Apply(a *Account) error {
	if c.Role != nil {
		if !c.Role.Valid() {
			return ErrInvalidRole
		}
		a.Role = *c.Role
	}
	if c.IsActive != nil {
		a.IsActive = *c.IsActive
	}
	return nil
}

type AdType string

const (
	AdTypeVideo       AdType = "video"
	AdTypeBanner      AdType = "banner"
	AdTypeInteractive AdType = "interactive"
)

func (t AdType) Valid() bool {
	switch t {
	case AdTypeVideo, AdTypeBanner, AdTypeInteractive:
		return true
	}
	return false
}

type Ad struct {
	ID              int64           `db:"id"`
	Title           string          `db:"title"`
	Type            AdType          `db:"type"`
	Category        string          `db:"category"`
	DurationSeconds int             `db:"duration_seconds"`
	Reward          decimal.Decimal `db:"reward"`
	NetworkCode     string          `db:"network_code"`
	IsActive        bool            `db:"is_active"`
}

// Validate checks the catalog invariants: a positive duration and reward.
func (a *Ad) Validate() error {
	if a.Title == "" || !a.Type.Valid() || a.DurationSeconds <= 0 || !a.Reward.IsPositive() {
		return ErrInvalidAd
	}
	return nil
}

// AdView is one attempt of an account to watch an ad. Reward and
// DurationSeconds are copied from the ad when the view starts.
type AdView struct {
	ID              int64           `db:"id"`
	AccountID       int64           `db:"account_id"`
	AdID            int64           `db:"ad_id"`
	Completed       bool            `db:"completed"`
	Reward          decimal.Decimal `db:"reward"`
	DurationSeconds int             `db:"duration_seconds"`
	CreatedAt       time.Time       `db:"created_at"`
	CompletedAt     *time.Time      `db:"completed_at"`
}

// WatchableAt returns the earliest instant the view may be completed.
func (v *AdView) WatchableAt(grace time.Duration) time.Time {
	return v.CreatedAt.Add(time.Duration(v.DurationSeconds)*time.Second - grace)
}

// CheckCompletion reports why accountID may not complete the view at now,
// or nil when it may.
func (v *AdView) CheckCompletion(accountID int64, now time.Time, grace time.Duration) error {
	switch {
	case v.AccountID != accountID:
		return ErrForbidden
	case v.Completed:
		return ErrAlreadyCompleted
	case now.Before(v.WatchableAt(grace)):
		return ErrViewTooEarly
	}
	return nil
}

type Withdrawal struct {
	ID          int64            `db:"id"`
	AccountID   int64            `db:"account_id"`
	Amount      decimal.Decimal  `db:"amount"`
	Method      PaymentMethod    `db:"method"`
	Details     string           `db:"details"`
	Status      WithdrawalStatus `db:"status"`
	RequestedAt time.Time        `db:"requested_at"`
	UpdatedAt   time.Time        `db:"updated_at"`
}

// WithdrawalWithOwner is a withdrawal joined with its account's contact data
// for the operator listing.
type WithdrawalWithOwner struct {
	Withdrawal
	Username string `db:"username"`
	Email    string `db:"email"`
}

type TransactionKind string

const (
	TransactionEarning    TransactionKind = "earning"
	TransactionWithdrawal TransactionKind = "withdrawal"
)

// Transaction is a signed entry of the account history: earnings are
// positive, withdrawals negative.
type Transaction struct {
	ID     int64
	Kind   TransactionKind
	Amount decimal.Decimal
	Status string
	Date   time.Time
}

type DailyStats struct {
	TotalEarnings    decimal.Decimal
	AvailableBalance decimal.Decimal
	AdsWatchedToday  int
	TodayEarnings    decimal.Decimal
	CurrentStreak    int
}

type PlatformStats struct {
	TotalAccounts      int
	ActiveAccounts     int
	TotalEarnings      decimal.Decimal
	PendingWithdrawals int
	TotalWithdrawals   decimal.Decimal
	CompletedViews     int
}

// RolloverCandidate is an account whose daily counters have not been rolled
// over to the current day yet.
type RolloverCandidate struct {
	AccountID     int64
	CurrentStreak int
	LastRollover  time.Time
}
