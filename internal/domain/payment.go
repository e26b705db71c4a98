package domain

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

type PaymentMethod string

const (
	PaymentUPI    PaymentMethod = "upi"
	PaymentBank   PaymentMethod = "bank"
	PaymentPaytm  PaymentMethod = "paytm"
	PaymentPayPal PaymentMethod = "paypal"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentUPI, PaymentBank, PaymentPaytm, PaymentPayPal:
		return true
	}
	return false
}

type WithdrawalStatus string

const (
	StatusPending    WithdrawalStatus = "pending"
	StatusProcessing WithdrawalStatus = "processing"
	StatusCompleted  WithdrawalStatus = "completed"
	StatusFailed     WithdrawalStatus = "failed"
)

func ParseWithdrawalStatus(s string) (WithdrawalStatus, error) {
	status := WithdrawalStatus(s)
	switch status {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return status, nil
	}
	return "", ErrInvalidStatus
}

// Reserves reports whether a withdrawal in this status holds its amount out
// of the available balance when failed withdrawals are refunded.
func (s WithdrawalStatus) Reserves() bool {
	return s != StatusFailed
}

var (
	ifscPattern  = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	upiPattern   = regexp.MustCompile(`^[a-zA-Z0-9.\-_]{2,256}@[a-zA-Z]{2,64}$`)
	mobilePatten = regexp.MustCompile(`^[6-9][0-9]{9}$`)

	detailsValidator = validator.New()
)

type BankDetails struct {
	HolderName    string
	AccountNumber string
	IFSC          string
	BankName      string
}

// ParseBankDetails decomposes "holder|account|IFSC|bank".
func ParseBankDetails(details string) (*BankDetails, error) {
	parts := strings.Split(details, "|")
	if len(parts) != 4 {
		return nil, ErrInvalidPaymentDetails
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return nil, ErrInvalidPaymentDetails
		}
	}
	if !ifscPattern.MatchString(parts[2]) {
		return nil, ErrInvalidPaymentDetails
	}
	return &BankDetails{
		HolderName:    parts[0],
		AccountNumber: parts[1],
		IFSC:          parts[2],
		BankName:      parts[3],
	}, nil
}

func ValidatePaymentDetails(method PaymentMethod, details string) error {
	details = strings.TrimSpace(details)
	if details == "" {
		return ErrInvalidPaymentDetails
	}
	switch method {
	case PaymentBank:
		_, err := ParseBankDetails(details)
		return err
	case PaymentUPI:
		if !upiPattern.MatchString(details) {
			return ErrInvalidPaymentDetails
		}
	case PaymentPaytm:
		if !mobilePatten.MatchString(details) {
			return ErrInvalidPaymentDetails
		}
	case PaymentPayPal:
		if err := detailsValidator.Var(details, "email"); err != nil {
			return ErrInvalidPaymentDetails
		}
	default:
		return ErrInvalidPaymentDetails
	}
	return nil
}
