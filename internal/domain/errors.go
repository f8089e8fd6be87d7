package domain

import "errors"

var (
	ErrVoucherNotFound      = errors.New("voucher not found")
	ErrVoucherInactive      = errors.New("voucher is not active")
	ErrVoucherNotYetStarted = errors.New("voucher is not yet valid")
	ErrVoucherExpired       = errors.New("voucher has expired")
	ErrVoucherBelowMinimum  = errors.New("order amount below voucher minimum")
	ErrVoucherExhausted     = errors.New("voucher usage limit reached")
	ErrVoucherPerUserLimit  = errors.New("voucher already used the maximum number of times by this user")
	ErrRatesUnavailable     = errors.New("exchange rates unavailable")
	ErrUnknownCurrency      = errors.New("unknown currency code")
)
