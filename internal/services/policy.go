package services

import (
	"github.com/Lalo789/weddingplan/internal/types"
)

// Access policy. A single account representation with capability checks;
// the only behavioral difference between roles is authorization.

// CanViewEvent reports whether actor may read event: the owner or any
// administrator.
func CanViewEvent(actor *types.User, event *types.Event) bool {
	if actor == nil || event == nil {
		return false
	}
	return actor.ID == event.UserID || actor.IsAdmin()
}

// CanMutateEvent is the same rule as CanViewEvent; the domain has no
// separate edit tier.
func CanMutateEvent(actor *types.User, event *types.Event) bool {
	return CanViewEvent(actor, event)
}

// RequireAdmin reports whether actor is an authenticated administrator.
func RequireAdmin(actor *types.User) bool {
	return actor != nil && actor.IsAdmin()
}
