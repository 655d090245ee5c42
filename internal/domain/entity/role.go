// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents the kind of actor calling into the engine.
type Role string

const (
	// RoleCustomer is a registered customer placing and tracking orders.
	RoleCustomer Role = "customer"
	// RoleGuest is an anonymous customer; guest orders carry no customer reference.
	RoleGuest Role = "guest"
	// RoleMerchant operates a single restaurant.
	RoleMerchant Role = "merchant"
	// RoleAgent is a delivery agent.
	RoleAgent Role = "agent"
	// RoleAdmin is a platform administrator.
	RoleAdmin Role = "admin"
	// RoleSystem is used by the dispatch engine and background workers.
	RoleSystem Role = "system"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleGuest, RoleMerchant, RoleAgent, RoleAdmin, RoleSystem:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// Actor is the authenticated caller of a core operation, as supplied by the identity layer.
// The engine trusts it and performs no authentication of its own.
type Actor struct {
	UserID       uuid.UUID  // The authenticated user account.
	Role         Role       // The role the call is made under.
	RestaurantID *uuid.UUID // Set for merchants: the restaurant they operate.
	AgentID      *uuid.UUID // Set for agents: their agent profile.
}

// SystemActor returns the actor used by the dispatch engine and workers.
func SystemActor() Actor {
	return Actor{Role: RoleSystem}
}

// OwnsRestaurant reports whether a merchant actor operates the given restaurant.
func (a Actor) OwnsRestaurant(restaurantID uuid.UUID) bool {
	return a.RestaurantID != nil && *a.RestaurantID == restaurantID
}

// IsAgent reports whether the actor is the given agent.
func (a Actor) IsAgent(agentID uuid.UUID) bool {
	return a.Role == RoleAgent && a.AgentID != nil && *a.AgentID == agentID
}
