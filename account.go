// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-simul/models"
)

// AccountClient groups the account endpoints. All of them require an
// authenticated session.
type AccountClient struct {
	r *Requestor
}

// Get returns the public information of the authenticated user.
func (c *AccountClient) Get(ctx context.Context) (*models.Account, error) {
	var account models.Account
	if err := c.r.Do(ctx, Get("api/account"), Params{}, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Email returns the email address of the authenticated user.
func (c *AccountClient) Email(ctx context.Context) (string, error) {
	var resp models.EmailResponse
	if err := c.r.Do(ctx, Get("api/account/email"), Params{}, &resp); err != nil {
		return "", err
	}
	return resp.Email, nil
}

// Preferences returns the account preferences of the authenticated user.
func (c *AccountClient) Preferences(ctx context.Context) (map[string]any, error) {
	var resp models.PreferencesResponse
	if err := c.r.Do(ctx, Get("api/account/preferences"), Params{}, &resp); err != nil {
		return nil, err
	}
	return resp.Prefs, nil
}

// KidMode returns the current kid mode status.
func (c *AccountClient) KidMode(ctx context.Context) (bool, error) {
	var resp models.KidModeResponse
	if err := c.r.Do(ctx, Get("api/account/kid"), Params{}, &resp); err != nil {
		return false, err
	}
	return resp.Kid, nil
}

// SetKidMode enables or disables kid mode.
func (c *AccountClient) SetKidMode(ctx context.Context, value bool) (bool, error) {
	var resp models.OKResponse
	p := Params{Query: map[string]string{"v": strconv.FormatBool(value)}}
	if err := c.r.Do(ctx, Post("api/account/kid"), p, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// UpgradeToBot upgrades the account to a bot account. Requires the bot:play
// scope and an account without any previously played games.
func (c *AccountClient) UpgradeToBot(ctx context.Context) (bool, error) {
	var resp models.OKResponse
	if err := c.r.Do(ctx, Post("api/bot/account/upgrade"), Params{}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}
