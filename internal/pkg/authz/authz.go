// Package authz centralizes the capability check applied before every
// mutating operation: a request is allowed when the actor holds one of the
// required roles or owns the target resource.
package authz

import "github.com/bryerblack/projeto-principios-dev-web/internal/domain"

func Allowed(actorRole domain.Role, actorID, resourceOwnerID string, requiredRoles ...domain.Role) bool {
	for _, r := range requiredRoles {
		if actorRole == r {
			return true
		}
	}
	return resourceOwnerID != "" && actorID == resourceOwnerID
}
