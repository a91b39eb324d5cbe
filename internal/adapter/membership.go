package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Art-of-Technology/collab-sub012/internal/config"
	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/internal/utils"
	"github.com/Art-of-Technology/collab-sub012/models"
)

const (
	membershipPath = "/api/workspaces/{workspaceID}/members/{userID}"
	retryCount     = 2
)

// HTTPMembershipAdapter looks up workspace roles on the membership service.
type HTTPMembershipAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

type membershipResponse struct {
	Role string `json:"role"`
}

// NewHTTPMembershipAdapter builds an adapter for cfg.MembershipURL. Requests
// carry cfg.ServiceToken as a bearer token and are retried on transport
// errors and 5xx responses.
func NewHTTPMembershipAdapter(cfg config.Adapter, logger *logger.Logger) (*HTTPMembershipAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.MembershipURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:     baseURL,
		Timeout:     cfg.RequestTimeout,
		BearerToken: cfg.ServiceToken,
		Retries:     retryCount,
	})

	return &HTTPMembershipAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetRole returns the user's role in the workspace. A 404 from the service
// means the user is not a member and yields [models.RoleNone] without error.
// Roles the vault does not know are treated as [models.RoleNone].
func (a *HTTPMembershipAdapter) GetRole(ctx context.Context, userID, workspaceID string) (models.WorkspaceRole, error) {
	log := logger.FromContext(ctx)

	var body membershipResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"workspaceID": workspaceID,
			"userID":      userID,
		}).
		SetResult(&body).
		Get(membershipPath)
	if err != nil {
		log.Err(err).Str("func", "*HTTPMembershipAdapter.GetRole").Msg("membership request failed")
		return models.RoleNone, fmt.Errorf("membership request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotMember) {
			return models.RoleNone, nil
		}
		log.Err(err).Str("func", "*HTTPMembershipAdapter.GetRole").
			Int("status", resp.StatusCode()).
			Msg("membership service returned error")
		return models.RoleNone, err
	}

	role := models.WorkspaceRole(strings.ToUpper(strings.TrimSpace(body.Role)))
	switch role {
	case models.RoleOwner, models.RoleAdmin, models.RoleMember, models.RoleViewer:
		return role, nil
	default:
		log.Warn().Str("func", "*HTTPMembershipAdapter.GetRole").
			Str("role", body.Role).
			Msg("unknown workspace role, treating as non-member")
		return models.RoleNone, nil
	}
}
