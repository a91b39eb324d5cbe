package access

//go:generate mockgen -source=interfaces.go -destination=../mock/access_mock.go -package=mock

import (
	"context"

	"github.com/Art-of-Technology/collab-sub012/models"
)

// MembershipLookup resolves a user's role in a workspace. It returns
// [models.RoleNone] with a nil error when the user is not a member.
type MembershipLookup interface {
	GetRole(ctx context.Context, userID, workspaceID string) (models.WorkspaceRole, error)
}
