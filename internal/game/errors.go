package game

import "errors"

// Sentinel errors returned by the engine. Callers classify failures with
// errors.Is; operations wrap these with context via fmt.Errorf and %w.
var (
	// ErrValidation means the request was malformed or out of range.
	// Retrying without correcting it will not help.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound means a referenced game, player or card does not exist
	// or is not visible to the caller.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the caller is not allowed to perform the action,
	// e.g. the judge submitting cards or a non-member acting on a game.
	ErrForbidden = errors.New("forbidden")

	// ErrAlreadySubmitted means the player already submitted cards for the
	// current round. The first submission stands.
	ErrAlreadySubmitted = errors.New("already submitted this round")

	// ErrDeckExhausted means no cards remain to draw. On the black pile
	// this is a terminal game-state signal, not a transient failure.
	ErrDeckExhausted = errors.New("deck exhausted")

	// ErrConflict means the operation lost a concurrency race or arrived
	// in the wrong round state. Safe to retry once.
	ErrConflict = errors.New("conflict")
)
