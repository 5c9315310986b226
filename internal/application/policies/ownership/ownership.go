package ownership

import (
	"roost-backend/internal/domain"
	"roost-backend/internal/models"
)

// CanWrite reports whether actor may mutate or delete the listing: only the
// host may. Anonymous actors can never write. Total function, never errors.
func CanWrite(actor domain.Actor, listing *models.Listing) bool {
	if listing == nil || !actor.Authenticated {
		return false
	}
	return actor.ID == listing.HostID
}

// CanRead reports whether actor may read the listing. Reads are open to
// everyone, anonymous included.
func CanRead(actor domain.Actor, listing *models.Listing) bool {
	return true
}
