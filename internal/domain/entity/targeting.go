// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// TargetingKind discriminates the targeting descriptor union.
type TargetingKind string

const (
	// TargetingUsers targets an explicit list of user IDs.
	TargetingUsers TargetingKind = "users"
	// TargetingRole targets all active users holding a role.
	TargetingRole TargetingKind = "role"
	// TargetingMotel targets all users who favorited a motel.
	TargetingMotel TargetingKind = "motel"
	// TargetingBroadcast targets every active user, optionally including guest devices.
	TargetingBroadcast TargetingKind = "broadcast"
)

// Targeting describes which users are candidates for a notification.
// Exactly one mode applies; use the constructors so the mutual-exclusivity
// invariant holds structurally instead of by convention.
type Targeting struct {
	Kind          TargetingKind `json:"kind"`
	UserIDs       []uuid.UUID   `json:"user_ids,omitempty"`       // Set for TargetingUsers.
	Role          Role          `json:"role,omitempty"`           // Set for TargetingRole.
	MotelID       *uuid.UUID    `json:"motel_id,omitempty"`       // Set for TargetingMotel.
	IncludeGuests bool          `json:"include_guests,omitempty"` // Only meaningful for TargetingBroadcast.
}

// TargetUsers builds a descriptor for an explicit user-id list.
func TargetUsers(userIDs []uuid.UUID) Targeting {
	return Targeting{Kind: TargetingUsers, UserIDs: userIDs}
}

// TargetRole builds a descriptor for all active users with the given role.
func TargetRole(role Role) Targeting {
	return Targeting{Kind: TargetingRole, Role: role}
}

// TargetMotel builds a descriptor for users holding a favorite on the motel.
func TargetMotel(motelID uuid.UUID) Targeting {
	return Targeting{Kind: TargetingMotel, MotelID: &motelID}
}

// Broadcast builds a descriptor covering every active user. Guest devices
// (tokens with no owning user) are included only when includeGuests is true.
func Broadcast(includeGuests bool) Targeting {
	return Targeting{Kind: TargetingBroadcast, IncludeGuests: includeGuests}
}

// ResolveTargeting derives the descriptor from independently supplied fields,
// applying the strict priority: explicit users, then role, then motel, then
// broadcast. Kept for callers that still speak the flattened wire shape.
func ResolveTargeting(userIDs []uuid.UUID, role Role, motelID *uuid.UUID, includeGuests bool) Targeting {
	switch {
	case len(userIDs) > 0:
		return TargetUsers(userIDs)
	case role != "":
		return TargetRole(role)
	case motelID != nil:
		return TargetMotel(*motelID)
	default:
		return Broadcast(includeGuests)
	}
}
