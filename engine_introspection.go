package totpgate

// Accounts returns the safe projection of every account, ordered by id.
// No hash material or TOTP secret crosses this boundary.
func (e *Engine) Accounts() []AccountSummary {
	if !e.ready() {
		return nil
	}

	accounts := e.registry.List()
	out := make([]AccountSummary, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, AccountSummary{
			ID:               acc.ID,
			Username:         acc.Username,
			TwoFactorEnabled: acc.TwoFactor.Enabled,
		})
	}
	return out
}

// AccountSessions returns a copy of the session tokens issued to the
// account, in issuance order. Unknown ids yield an empty slice.
func (e *Engine) AccountSessions(accountID string) []string {
	if !e.ready() {
		return nil
	}
	return e.sessions.TokensFor(accountID)
}

// ValidateSession re-checks a token against the stored account→tokens
// relation and returns the owning account id. The account id encoded in
// the token is never trusted; only the stored relation decides ownership.
func (e *Engine) ValidateSession(token string) (string, error) {
	if !e.ready() {
		return "", ErrEngineNotReady
	}

	owner, ok := e.sessions.Owner(token)
	if !ok {
		return "", ErrSessionInvalid
	}
	return owner, nil
}
