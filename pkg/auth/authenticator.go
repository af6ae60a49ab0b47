package auth

import "log/slog"

// The bot itself is open; only the /admin* command surface is gated, by a
// single fixed user id.
type authenticator struct {
	adminUserID int64
}

func NewAuthenticator(adminUserID int64) *authenticator {
	slog.Info("telegram admin user ID", "user_id", adminUserID)

	return &authenticator{
		adminUserID: adminUserID,
	}
}

func (a *authenticator) IsAdmin(userID int64) bool {
	return a.adminUserID != 0 && userID == a.adminUserID
}
