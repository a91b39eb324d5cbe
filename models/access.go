package models

import "time"

// NoteAccessContext is the access-relevant metadata of a note. It is rebuilt
// from the store on every request and never cached.
type NoteAccessContext struct {
	NoteID       string
	AuthorID     string
	Scope        NoteScope
	IsRestricted bool
	ExpiresAt    *time.Time
	WorkspaceID  string
	SharedWith   []NoteShare
}

// ShareFor returns the explicit grant for userID, if any.
func (c NoteAccessContext) ShareFor(userID string) (NoteShare, bool) {
	for _, share := range c.SharedWith {
		if share.UserID == userID {
			return share, true
		}
	}
	return NoteShare{}, false
}

// AccessDecision is the outcome of an access check. A denial is a decision
// with CanAccess == false and a Reason, not an error.
type AccessDecision struct {
	CanAccess bool   `json:"canAccess"`
	CanEdit   bool   `json:"canEdit"`
	CanShare  bool   `json:"canShare"`
	CanDelete bool   `json:"canDelete"`
	IsOwner   bool   `json:"isOwner"`
	IsExpired bool   `json:"isExpired"`
	Reason    string `json:"reason,omitempty"`
}
