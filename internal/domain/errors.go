package domain

import "errors"

// League errors
var (
	ErrLeagueNotFound  = errors.New("league not found")
	ErrLeagueFull      = errors.New("league is full")
	ErrWrongPassword   = errors.New("incorrect league password")
	ErrAlreadyMember   = errors.New("user is already a member of this league")
	ErrNotMember       = errors.New("not a member of this league")
	ErrRosterLocked    = errors.New("league roster is locked once the draft has started")
	ErrJoinCodeTaken   = errors.New("join code is already in use")
	ErrInvalidJoinCode = errors.New("join code must be 6 alphanumeric characters")
)

// Draft errors
var (
	ErrTeamNotFound       = errors.New("team not found")
	ErrTeamAlreadyDrafted = errors.New("team already drafted")
	ErrPickLimitReached   = errors.New("you have already drafted 6 teams")
)

// Game result errors
var (
	ErrInvalidOutcome = errors.New(`result must be either "win" or "loss"`)
	ErrInvalidWeek    = errors.New("week number must be at least 1")
)
