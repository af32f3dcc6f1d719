package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Roster errors
	ErrMsgEmptyRoster   = "enemy roster is empty"
	ErrMsgUnknownEnemy  = "unknown enemy type"
	ErrMsgInvalidEnemy  = "invalid enemy descriptor"
	ErrMsgInvalidLevel  = "invalid hero level"
	ErrMsgMissingHeroID = "hero id is required"

	// Combat errors
	ErrMsgInvalidAction = "invalid action"

	// Storage errors
	ErrMsgStorage        = "storage error"
	ErrMsgDatabaseError  = "database error"
	ErrMsgCorruptPayload = "corrupt cached payload"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrEmptyRoster   = errors.New(ErrMsgEmptyRoster)
	ErrUnknownEnemy  = errors.New(ErrMsgUnknownEnemy)
	ErrInvalidEnemy  = errors.New(ErrMsgInvalidEnemy)
	ErrInvalidLevel  = errors.New(ErrMsgInvalidLevel)
	ErrMissingHeroID = errors.New(ErrMsgMissingHeroID)

	ErrInvalidAction = errors.New(ErrMsgInvalidAction)

	ErrStorage        = errors.New(ErrMsgStorage)
	ErrDatabaseError  = errors.New(ErrMsgDatabaseError)
	ErrCorruptPayload = errors.New(ErrMsgCorruptPayload)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
