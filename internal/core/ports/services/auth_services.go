package services

import "context"

// PermissionAuthorizerSvc is the boolean gate consulted before every
// mutating operation. Implementations live outside this engine (role
// checks are a collaborator concern); a denial must surface as
// apperrors.ErrForbidden and the operation must not touch the store.
type PermissionAuthorizerSvc interface {
	// AuthorizeAction checks that userID may perform the named action.
	AuthorizeAction(ctx context.Context, userID string, action string) error
}
