package authorization

import "github.com/amirhossein-jamali/points-bot/internal/domain/port/usecase"

// AdminChecker tests identifiers against a fixed allow-list
type AdminChecker struct {
	admins map[int64]struct{}
}

var _ usecase.Authorizer = (*AdminChecker)(nil)

// NewAdminChecker builds the allow-list; the slice is copied
func NewAdminChecker(adminIDs []int64) *AdminChecker {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &AdminChecker{admins: admins}
}

// IsAdmin reports whether discordID may mutate balances
func (c *AdminChecker) IsAdmin(discordID int64) bool {
	_, ok := c.admins[discordID]
	return ok
}

// Count returns the size of the allow-list
func (c *AdminChecker) Count() int {
	return len(c.admins)
}
