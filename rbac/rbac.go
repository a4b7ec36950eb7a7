// rbac/rbac.go
package rbac

// Context carries the identities needed for own-resource checks.
type Context struct {
	UserID  string
	OwnerID string
}

// HasPermission reports whether role may perform action on resource.
// Unknown role, resource or action yields denial, never an error. A grant
// scoped to own resources requires both identities and an exact match.
func HasPermission(role, resource, action string, ctx Context) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p.Resource != resource || p.Action != action {
			continue
		}
		if !p.Own {
			return true
		}
		return ctx.UserID != "" && ctx.OwnerID != "" && ctx.UserID == ctx.OwnerID
	}
	return false
}
