package planner

import "errors"

var (
	// ErrMissingCredential blocks every flow until an API key is supplied.
	ErrMissingCredential = errors.New("missing api key")
	// ErrServiceInit means the provider client could not be constructed.
	ErrServiceInit = errors.New("could not initialize the text-generation service")
	// ErrGeneration means one or both plan calls failed; nothing was committed.
	ErrGeneration = errors.New("plan generation failed")
	// ErrAnswer means the follow-up call failed; history is unchanged.
	ErrAnswer = errors.New("could not get an answer")
	// ErrEmptyInput marks a blank question. Callers treat it as a silent no-op.
	ErrEmptyInput = errors.New("empty question")
	// ErrNoPlans rejects questions asked before any plans exist.
	ErrNoPlans = errors.New("no plans generated yet")
)
