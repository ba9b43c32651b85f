// Package entity defines the JSON envelopes returned by the REST API.
package entity

import (
	"bioanalytica/database/model"
	"bioanalytica/web/service"
	"bioanalytica/web/token"
)

// AuthResult is returned by register and login: the sanitized user plus a
// freshly minted bearer token.
type AuthResult struct {
	Success bool        `json:"success"`
	User    *model.User `json:"user"`
	Token   string      `json:"token"`
}

// VerifyResult is returned by verify-token with the claims embedded in the
// presented token.
type VerifyResult struct {
	Success bool          `json:"success"`
	User    *token.Claims `json:"user"`
}

// SampleResult wraps a single stored sample.
type SampleResult struct {
	Success bool          `json:"success"`
	Sample  *model.Sample `json:"sample"`
}

// SampleList wraps the caller's samples, newest first.
type SampleList struct {
	Success bool           `json:"success"`
	Samples []model.Sample `json:"samples"`
}

// ResearcherList wraps the researcher directory.
type ResearcherList struct {
	Success     bool                 `json:"success"`
	Researchers []service.Researcher `json:"researchers"`
}

// OK is the bare success envelope.
type OK struct {
	Success bool `json:"success"`
}

// Error is the uniform failure envelope, paired with an HTTP status code.
type Error struct {
	Error string `json:"error"`
}
