// rbac/permissions.go
package rbac

// Permission is one (resource, action) grant for a role. Own restricts the
// grant to records whose owner matches the acting user.
type Permission struct {
	Resource    string `json:"resource"`
	Action      string `json:"action"`
	Own         bool   `json:"own"`
	Description string `json:"description"`
}

const (
	RoleAdmin   = "admin"
	RoleCompany = "company"
	RoleStudent = "student"
)

const (
	ResourceCompany = "company"
	ResourceStudent = "student"
	ResourceCache   = "cache"
)

const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionClear  = "clear"
)

// RolePermissions is the static permission table. Loaded once, immutable for
// the process lifetime. At most one tuple per (role, resource, action);
// a duplicate is a configuration bug, not a runtime concern.
var RolePermissions = map[string][]Permission{
	RoleAdmin: {
		{Resource: ResourceCompany, Action: ActionCreate, Description: "Create any company profile"},
		{Resource: ResourceCompany, Action: ActionRead, Description: "Read any company profile"},
		{Resource: ResourceCompany, Action: ActionUpdate, Description: "Update any company profile"},
		{Resource: ResourceCompany, Action: ActionDelete, Description: "Delete any company profile"},
		{Resource: ResourceStudent, Action: ActionCreate, Description: "Create any student profile"},
		{Resource: ResourceStudent, Action: ActionRead, Description: "Read any student profile"},
		{Resource: ResourceStudent, Action: ActionUpdate, Description: "Update any student profile"},
		{Resource: ResourceStudent, Action: ActionDelete, Description: "Delete any student profile"},
		{Resource: ResourceCache, Action: ActionClear, Description: "Clear lookup caches"},
	},
	RoleCompany: {
		{Resource: ResourceCompany, Action: ActionCreate, Description: "Register a company profile"},
		{Resource: ResourceCompany, Action: ActionRead, Description: "Read company profiles"},
		{Resource: ResourceCompany, Action: ActionUpdate, Own: true, Description: "Update own company profile"},
		{Resource: ResourceCompany, Action: ActionDelete, Own: true, Description: "Delete own company profile"},
		{Resource: ResourceStudent, Action: ActionRead, Description: "Browse student profiles"},
	},
	RoleStudent: {
		{Resource: ResourceStudent, Action: ActionCreate, Description: "Register a student profile"},
		{Resource: ResourceStudent, Action: ActionRead, Description: "Read student profiles"},
		{Resource: ResourceStudent, Action: ActionUpdate, Own: true, Description: "Update own student profile"},
		{Resource: ResourceStudent, Action: ActionDelete, Own: true, Description: "Delete own student profile"},
		{Resource: ResourceCompany, Action: ActionRead, Description: "Browse company profiles"},
	},
}
