package perm

// Package perm centralizes the role→capability matrix. Earlier revisions of
// the client scattered `role == "Manager" || role == "Admin"` checks across
// every tab; keeping the matrix in one table stops the sidebar and the tab
// gates from drifting apart when the role rules change.

import (
	domainauth "github.com/bluemoon-pm/bluemoon-ui/internal/domain/auth"
)

// Capability is a named yes/no permission derived purely from Role.
type Capability string

const (
	CanManageAccounts         Capability = "canManageAccounts"
	CanManageBuildingManagers Capability = "canManageBuildingManagers"
	CanManageBuildings        Capability = "canManageBuildings"
	CanManageAccountants      Capability = "canManageAccountants"
	CanManageResidents        Capability = "canManageResidents"
	CanViewApartments         Capability = "canViewApartments"
	CanViewMyBills            Capability = "canViewMyBills"
	CanViewMyPayments         Capability = "canViewMyPayments"
	CanCreateQRPayment        Capability = "canCreateQRPayment"
	CanManageOfflinePayments  Capability = "canManageOfflinePayments"
	CanViewReceipts           Capability = "canViewReceipts"
	CanBroadcastNotifications Capability = "canBroadcastNotifications"
)

// grants is the single source of truth for which roles hold a capability.
// A role absent from a capability's set simply gets false, so unrecognized
// roles fail closed without any special casing.
var grants = map[Capability][]domainauth.Role{
	CanManageAccounts:         {domainauth.RoleManager, domainauth.RoleAdmin},
	CanManageBuildingManagers: {domainauth.RoleManager, domainauth.RoleAdmin},
	CanManageBuildings:        {domainauth.RoleManager, domainauth.RoleAdmin},
	CanManageAccountants:      {domainauth.RoleManager, domainauth.RoleAdmin},
	CanManageResidents:        {domainauth.RoleManager, domainauth.RoleAdmin},
	CanViewApartments:         {domainauth.RoleAccountant, domainauth.RoleManager, domainauth.RoleAdmin},
	CanViewMyBills:            {domainauth.RoleResident, domainauth.RoleAdmin},
	CanViewMyPayments:         {domainauth.RoleResident, domainauth.RoleAdmin},
	CanCreateQRPayment:        {domainauth.RoleResident, domainauth.RoleAdmin},
	CanManageOfflinePayments:  {domainauth.RoleAccountant, domainauth.RoleAdmin},
	CanViewReceipts:           {domainauth.RoleAccountant, domainauth.RoleAdmin},
	CanBroadcastNotifications: {domainauth.RoleManager, domainauth.RoleAdmin},
}

// Allowed reports whether role holds the named capability. Pure and
// deterministic; unknown capabilities and unknown roles both answer false.
func Allowed(c Capability, role domainauth.Role) bool {
	if !role.Known() {
		return false
	}
	for _, r := range grants[c] {
		if r == role {
			return true
		}
	}
	return false
}

// Capabilities returns every capability role holds, in a stable order.
// Used by the session endpoints so the browser shell can gate its controls
// without re-deriving the matrix client-side.
func Capabilities(role domainauth.Role) []Capability {
	out := make([]Capability, 0, len(all))
	for _, c := range all {
		if Allowed(c, role) {
			out = append(out, c)
		}
	}
	return out
}

// all fixes the enumeration order for Capabilities.
var all = []Capability{
	CanManageAccounts,
	CanManageBuildingManagers,
	CanManageBuildings,
	CanManageAccountants,
	CanManageResidents,
	CanViewApartments,
	CanViewMyBills,
	CanViewMyPayments,
	CanCreateQRPayment,
	CanManageOfflinePayments,
	CanViewReceipts,
	CanBroadcastNotifications,
}
