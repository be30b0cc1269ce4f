// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package group

import (
	"fmt"

	"github.com/PolymeshAssociation/Polymesh-sub002/dot/types"
	"github.com/PolymeshAssociation/Polymesh-sub002/lib/storage"
	"github.com/PolymeshAssociation/Polymesh-sub002/pkg/scale"
)

// Committee is a group with a release coordinator, one of its members
// allowed to reschedule the execution of approved proposals.
type Committee struct {
	*Group
	releaseCoordinator *storage.Value[scale.Option[types.IdentityID]]
}

// NewCommittee creates the committee stored under the instance name given.
func NewCommittee(state *storage.State, instance string, events EventDepositor) *Committee {
	return &Committee{
		Group:              New(state, instance, events),
		releaseCoordinator: storage.NewValue[scale.Option[types.IdentityID]](state, instance, "ReleaseCoordinator"),
	}
}

// ReleaseCoordinator returns the release coordinator, if set.
func (c *Committee) ReleaseCoordinator() (scale.Option[types.IdentityID], error) {
	return c.releaseCoordinator.Get()
}

// SetReleaseCoordinator sets the release coordinator, which must be a
// member of the committee. It requires the root origin.
func (c *Committee) SetReleaseCoordinator(origin types.Origin, id types.IdentityID) error {
	err := origin.EnsureRoot()
	if err != nil {
		return err
	}
	return c.PutReleaseCoordinator(id)
}

// PutReleaseCoordinator sets the release coordinator, which must be a
// member of the committee.
func (c *Committee) PutReleaseCoordinator(id types.IdentityID) error {
	isMember, err := c.IsMember(id)
	if err != nil {
		return err
	}
	if !isMember {
		return fmt.Errorf("%w: release coordinator %s", ErrNoSuchMember, id)
	}

	coordinator := scale.Some(id)
	err = c.releaseCoordinator.Put(coordinator)
	if err != nil {
		return err
	}

	c.events.DepositEvent(EventReleaseCoordinatorUpdated{Group: c.instance, Coordinator: coordinator})
	return nil
}

// RemoveMember removes an identity from the committee, clearing the
// release coordinator if it is the identity removed.
func (c *Committee) RemoveMember(origin types.Origin, id types.IdentityID) error {
	err := c.Group.RemoveMember(origin, id)
	if err != nil {
		return err
	}

	coordinator, err := c.releaseCoordinator.Get()
	if err != nil {
		return err
	}
	if current, ok := coordinator.Get(); ok && current == id {
		c.releaseCoordinator.Kill()
		c.events.DepositEvent(EventReleaseCoordinatorUpdated{
			Group:       c.instance,
			Coordinator: scale.None[types.IdentityID](),
		})
	}
	return nil
}
