package social

import "errors"

// Discrete transition outcomes. Every top-level transition returns either
// a success value or exactly one of these, wrapped with call-site context.
var (
	ErrUnauthorized      = errors.New("social: unauthorized")
	ErrAlreadyExists     = errors.New("social: already exists")
	ErrNotFound          = errors.New("social: not found")
	ErrProfileNotFound   = errors.New("social: profile not found")
	ErrContentNotFound   = errors.New("social: content not found")
	ErrInvalidAmount     = errors.New("social: invalid amount")
	ErrInsufficientFunds = errors.New("social: insufficient funds")
	ErrInvalidParams     = errors.New("social: invalid params")
	ErrInvalidURL        = errors.New("social: invalid url")
	ErrInvalidMessage    = errors.New("social: invalid message")
	ErrAlreadyTipped     = errors.New("social: already tipped")
	ErrSelfTip           = errors.New("social: self tip")

	errNilState  = errors.New("social: engine state not configured")
	errNilLedger = errors.New("social: ledger not configured")
)
