package perm

import (
	domainauth "github.com/bluemoon-pm/bluemoon-ui/internal/domain/auth"
)

// MenuEntry is one sidebar navigation item.
type MenuEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// candidate pairs a menu entry with the capability that gates it.
// A zero capability means the entry is visible to every authenticated role.
type candidate struct {
	entry MenuEntry
	gate  Capability
}

// candidates is the fixed, ordered list the sidebar is filtered from.
// Dashboard is always first so navigation position never jumps between
// sessions of the same role.
var candidates = []candidate{
	{entry: MenuEntry{ID: "dashboard", Label: "Overview", Icon: "home"}},
	{entry: MenuEntry{ID: "bills", Label: "My bills", Icon: "file-text"}, gate: CanViewMyBills},
	{entry: MenuEntry{ID: "payments", Label: "Payments", Icon: "credit-card"}, gate: CanViewMyPayments},
	{entry: MenuEntry{ID: "accounts", Label: "Accounts", Icon: "user-cog"}, gate: CanManageAccounts},
	{entry: MenuEntry{ID: "residents", Label: "Residents", Icon: "users"}, gate: CanManageResidents},
	{entry: MenuEntry{ID: "apartments", Label: "Apartments", Icon: "building"}, gate: CanViewApartments},
	{entry: MenuEntry{ID: "building-managers", Label: "Building managers", Icon: "clipboard-list"}, gate: CanManageBuildingManagers},
	{entry: MenuEntry{ID: "accountants", Label: "Accountants", Icon: "clipboard-list"}, gate: CanManageAccountants},
	{entry: MenuEntry{ID: "offline-payments", Label: "Offline payments", Icon: "credit-card"}, gate: CanManageOfflinePayments},
	{entry: MenuEntry{ID: "receipts", Label: "Receipts", Icon: "receipt"}, gate: CanViewReceipts},
	{entry: MenuEntry{ID: "notifications", Label: "Notifications", Icon: "bell"}, gate: CanBroadcastNotifications},
}

// MenuFor returns the ordered sidebar entries visible to role. The result is
// a pure function of role: two sessions with the same role always see the
// same navigation. Unknown roles see nothing, not even the dashboard entry.
func MenuFor(role domainauth.Role) []MenuEntry {
	if !role.Known() {
		return nil
	}
	out := make([]MenuEntry, 0, len(candidates))
	for _, c := range candidates {
		if c.gate == "" || Allowed(c.gate, role) {
			out = append(out, c.entry)
		}
	}
	return out
}
