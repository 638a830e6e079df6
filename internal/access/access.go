package access

import (
	"context"

	"github.com/communitycal/events-api/pkg/helper"
	"github.com/communitycal/events-api/pkg/shared"
)

// Identity authenticated caller, nil identity means anonymous
type Identity struct {
	ID     string
	Roles  []string
	Groups []string
}

// IsAdmin check role
func (i *Identity) IsAdmin() bool {
	return i != nil && helper.StringInSlice(helper.RoleAdmin, i.Roles)
}

// IsEditor check role
func (i *Identity) IsEditor() bool {
	return i != nil && helper.StringInSlice(helper.RoleEditor, i.Roles)
}

// MemberOf check group membership
func (i *Identity) MemberOf(groupID string) bool {
	return i != nil && helper.StringInSlice(groupID, i.Groups)
}

// DecisionKind discriminates Decision variants
type DecisionKind int

const (
	// Allow full access
	Allow DecisionKind = iota
	// Deny no access
	Deny
	// FilterByGroups published events plus any event of the listed groups
	FilterByGroups
	// PublishedOnly published events only
	PublishedOnly
)

// Decision outcome of an access rule, FilterByGroups carries the group ids
type Decision struct {
	Kind     DecisionKind
	GroupIDs []string
}

// ReadEvents rule for listing and reading events
func ReadEvents(identity *Identity) Decision {
	if identity.IsAdmin() {
		return Decision{Kind: Allow}
	}
	if identity.IsEditor() && len(identity.Groups) > 0 {
		return Decision{Kind: FilterByGroups, GroupIDs: identity.Groups}
	}
	return Decision{Kind: PublishedOnly}
}

// MutateEvent rule for creating or updating an event of the given group
func MutateEvent(identity *Identity, groupID string) Decision {
	if identity.IsAdmin() {
		return Decision{Kind: Allow}
	}
	if identity.IsEditor() && identity.MemberOf(groupID) {
		return Decision{Kind: Allow}
	}
	return Decision{Kind: Deny}
}

// ManageTaxonomies rule for creating groups and tags
func ManageTaxonomies(identity *Identity) Decision {
	if identity.IsAdmin() {
		return Decision{Kind: Allow}
	}
	return Decision{Kind: Deny}
}

// SetToContext attach identity to context
func SetToContext(ctx context.Context, identity *Identity) context.Context {
	return shared.SetToContext(ctx, shared.ContextKeyIdentity, identity)
}

// GetIdentity extract identity from context, nil for anonymous caller
func GetIdentity(ctx context.Context) *Identity {
	identity, _ := shared.GetValueFromContext(ctx, shared.ContextKeyIdentity).(*Identity)
	return identity
}
