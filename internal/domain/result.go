package domain

import "net/http"

// Outcome mirrors the shared contract for lookup results.
type Outcome string

const (
	OutcomeFound         Outcome = "FOUND"
	OutcomeNotFound      Outcome = "NOT_FOUND"
	OutcomeUnsupported   Outcome = "UNSUPPORTED"
	OutcomeUpstreamError Outcome = "UPSTREAM_ERROR"
)

// Account identifies the matched in-game account.
type Account struct {
	IGN  string `json:"ign"`
	ID   string `json:"id"`
	Zone string `json:"zone,omitempty"`
}

// LookupResult is the normalized outcome of a single IGN check. Exactly one
// lookup produces one result; results are immutable once produced.
type LookupResult struct {
	Outcome Outcome `json:"outcome"`

	// Found
	Game    string  `json:"game,omitempty"`
	Account Account `json:"account,omitempty"`

	// NotFound
	Reason string `json:"reason,omitempty"`

	// Unsupported
	GameCode string `json:"gameCode,omitempty"`
	GameName string `json:"gameName,omitempty"`

	// UpstreamError
	Detail string `json:"detail,omitempty"`
}

// Found builds a successful result.
func Found(game, ign, accountID, zone string) LookupResult {
	return LookupResult{
		Outcome: OutcomeFound,
		Game:    game,
		Account: Account{IGN: ign, ID: accountID, Zone: zone},
	}
}

// NotFound builds a business-negative result.
func NotFound(reason string) LookupResult {
	return LookupResult{Outcome: OutcomeNotFound, Reason: reason}
}

// Unsupported builds a result for games with no provider integration.
func Unsupported(gameCode, gameName string) LookupResult {
	return LookupResult{Outcome: OutcomeUnsupported, GameCode: gameCode, GameName: gameName}
}

// UpstreamError builds a result for provider transport or contract failures.
func UpstreamError(detail string) LookupResult {
	return LookupResult{Outcome: OutcomeUpstreamError, Detail: detail}
}

// HTTPStatus maps an outcome to the status code the API surface uses.
func (r LookupResult) HTTPStatus() int {
	switch r.Outcome {
	case OutcomeFound:
		return http.StatusOK
	case OutcomeNotFound:
		return http.StatusNotFound
	case OutcomeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusBadGateway
	}
}

// LookupRequest is the input to a single check.
type LookupRequest struct {
	GameCode string `json:"gameId"`
	UserID   string `json:"id"`
	ZoneID   string `json:"zone,omitempty"`
}
