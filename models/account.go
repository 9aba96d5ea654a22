// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is the private record of the authenticated user. It extends the
// public [User] fields with account-only flags.
type Account struct {
	User

	// Followable reports whether other players may follow this account.
	Followable bool `json:"followable,omitempty"`

	// Following reports whether the authenticated user follows this account.
	Following bool `json:"following,omitempty"`

	// Blocking reports whether this account is blocked.
	Blocking bool `json:"blocking,omitempty"`
}

// EmailResponse wraps the email address of the authenticated user.
type EmailResponse struct {
	Email string `json:"email"`
}

// PreferencesResponse wraps the account preferences map. Preference keys and
// values are server defined and passed through untyped.
type PreferencesResponse struct {
	Prefs    map[string]any `json:"prefs"`
	Language string         `json:"language,omitempty"`
}

// KidModeResponse wraps the kid mode flag of the authenticated user.
type KidModeResponse struct {
	Kid bool `json:"kid"`
}

// OKResponse is the generic {"ok": true} acknowledgement returned by most
// mutating endpoints.
type OKResponse struct {
	OK bool `json:"ok"`
}
