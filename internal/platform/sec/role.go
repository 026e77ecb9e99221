// Copyright (c) 2026 NitikBatik. All rights reserved.

package sec

import "github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/constants"

// # User Roles

// UserRole represents the authorization level granted to an account by the backend.
type UserRole string

const (
	// Platform administrator: manages articles and users.
	RoleAdmin UserRole = "admin"

	// Seller: owns at most one shop and manages its products.
	RolePenjual UserRole = "penjual"

	// Buyer: the default role for registered customers.
	RolePembeli UserRole = "pembeli"
)

// # Role Homes

// Home returns the landing path for an authenticated user of this role.
//
// Roles without a dashboard land on the public storefront.
func (r UserRole) Home() string {
	switch r {
	case RoleAdmin:
		return constants.RouteAdminDashboard
	case RolePenjual:
		return constants.RouteSellerDashboard
	default:
		return constants.RouteHome
	}
}
