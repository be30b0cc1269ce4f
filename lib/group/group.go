// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package group keeps membership sets of identities, such as the
// governance committee and the CDD providers.
package group

import (
	"errors"
	"fmt"
	"sort"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/storage"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/system"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
	"github.com/samber/lo"
)

var (
	ErrDuplicateMember = errors.New("identity is already a member")
	ErrNoSuchMember    = errors.New("identity is not a member")
)

// EventDepositor deposits events in the block being built.
type EventDepositor interface {
	DepositEvent(event system.Event)
}

// EventMemberAdded is deposited when an identity joins the group.
type EventMemberAdded struct {
	Group  string
	Member types.IdentityID
}

// EventMemberRemoved is deposited when an identity leaves the group.
type EventMemberRemoved struct {
	Group  string
	Member types.IdentityID
}

// EventMembersSwapped is deposited when a member is replaced.
type EventMembersSwapped struct {
	Group   string
	Removed types.IdentityID
	Added   types.IdentityID
}

// EventMembersReset is deposited when the members are replaced at once.
type EventMembersReset struct {
	Group   string
	Members []types.IdentityID
}

// EventReleaseCoordinatorUpdated is deposited when the release
// coordinator of a committee changes.
type EventReleaseCoordinatorUpdated struct {
	Group       string
	Coordinator scale.Option[types.IdentityID]
}

func (EventMemberAdded) Pallet() string               { return "Group" }
func (EventMemberRemoved) Pallet() string             { return "Group" }
func (EventMembersSwapped) Pallet() string            { return "Group" }
func (EventMembersReset) Pallet() string              { return "Group" }
func (EventReleaseCoordinatorUpdated) Pallet() string { return "Group" }

// Group is a sorted set of member identities stored under its instance name.
type Group struct {
	instance string
	events   EventDepositor
	members  *storage.Value[[]types.IdentityID]
}

// New creates the group stored under the instance name given.
func New(state *storage.State, instance string, events EventDepositor) *Group {
	return &Group{
		instance: instance,
		events:   events,
		members:  storage.NewValue[[]types.IdentityID](state, instance, "ActiveMembers"),
	}
}

// Name returns the instance name of the group.
func (g *Group) Name() string {
	return g.instance
}

// Members returns the sorted members of the group.
func (g *Group) Members() ([]types.IdentityID, error) {
	return g.members.Get()
}

// IsMember returns true if the identity is a member of the group.
func (g *Group) IsMember(id types.IdentityID) (bool, error) {
	members, err := g.members.Get()
	if err != nil {
		return false, err
	}
	return lo.Contains(members, id), nil
}

func sortMembers(members []types.IdentityID) {
	sort.Slice(members, func(i, j int) bool {
		return members[i].Compare(members[j]) < 0
	})
}

// AddMember adds an identity to the group. It requires the root origin.
func (g *Group) AddMember(origin types.Origin, id types.IdentityID) error {
	err := origin.EnsureRoot()
	if err != nil {
		return err
	}

	err = g.members.Mutate(func(members *[]types.IdentityID) error {
		if lo.Contains(*members, id) {
			return fmt.Errorf("%w: %s", ErrDuplicateMember, id)
		}
		*members = append(*members, id)
		sortMembers(*members)
		return nil
	})
	if err != nil {
		return err
	}

	g.events.DepositEvent(EventMemberAdded{Group: g.instance, Member: id})
	return nil
}

// RemoveMember removes an identity from the group. It requires the root origin.
func (g *Group) RemoveMember(origin types.Origin, id types.IdentityID) error {
	err := origin.EnsureRoot()
	if err != nil {
		return err
	}

	err = g.members.Mutate(func(members *[]types.IdentityID) error {
		if !lo.Contains(*members, id) {
			return fmt.Errorf("%w: %s", ErrNoSuchMember, id)
		}
		*members = lo.Without(*members, id)
		return nil
	})
	if err != nil {
		return err
	}

	g.events.DepositEvent(EventMemberRemoved{Group: g.instance, Member: id})
	return nil
}

// SwapMember replaces a member by another identity. It requires the root origin.
func (g *Group) SwapMember(origin types.Origin, remove, add types.IdentityID) error {
	err := origin.EnsureRoot()
	if err != nil {
		return err
	}

	err = g.members.Mutate(func(members *[]types.IdentityID) error {
		if !lo.Contains(*members, remove) {
			return fmt.Errorf("%w: %s", ErrNoSuchMember, remove)
		}
		if lo.Contains(*members, add) {
			return fmt.Errorf("%w: %s", ErrDuplicateMember, add)
		}
		*members = append(lo.Without(*members, remove), add)
		sortMembers(*members)
		return nil
	})
	if err != nil {
		return err
	}

	g.events.DepositEvent(EventMembersSwapped{Group: g.instance, Removed: remove, Added: add})
	return nil
}

// ResetMembers replaces all the members. It requires the root origin.
func (g *Group) ResetMembers(origin types.Origin, members []types.IdentityID) error {
	err := origin.EnsureRoot()
	if err != nil {
		return err
	}
	return g.SetMembers(members)
}

// SetMembers replaces all the members, deduplicated and sorted.
func (g *Group) SetMembers(members []types.IdentityID) error {
	members = lo.Uniq(members)
	sortMembers(members)

	err := g.members.Put(members)
	if err != nil {
		return err
	}

	g.events.DepositEvent(EventMembersReset{Group: g.instance, Members: members})
	return nil
}
