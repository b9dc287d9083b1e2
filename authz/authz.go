package authz

import (
	"strconv"

	"food-hub-api/apierrors"
	"food-hub-api/models"
)

// Actor is the identity extracted from a verified session token.
type Actor struct {
	ID   uint
	Role models.UserRole
}

// CheckPermissions decides whether the actor may access a resource owned by
// resourceUserID. Admins are allowed unconditionally; everyone else must own
// the resource. Both ids are canonicalized to strings before comparing, since
// the actor id comes from a token claim and the owner id from a typed record
// field.
func CheckPermissions(actor Actor, resourceUserID uint) error {
	if actor.Role == models.RoleAdmin {
		return nil
	}
	if strconv.FormatUint(uint64(actor.ID), 10) == strconv.FormatUint(uint64(resourceUserID), 10) {
		return nil
	}
	return apierrors.Unauthorized("Not authorized to access this route")
}
