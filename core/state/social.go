package state

import (
	"errors"
	"math/big"

	"socialnet/native/social"
)

// Social-ledger accessors. ProfilePut stages the record together with the
// handle and owner reverse indices, so the injectivity of both mappings
// survives every commit or rollback as a unit.

// ProfilePut stores the profile and registers its reverse indices.
func (m *Manager) ProfilePut(p *social.Profile) error {
	if p == nil {
		return errors.New("state: profile required")
	}
	if p.ID == 0 {
		return errors.New("state: profile id required")
	}
	stored := p.Clone()
	if stored.TotalTipsReceived == nil {
		stored.TotalTipsReceived = big.NewInt(0)
	}
	if stored.TotalTipsSent == nil {
		stored.TotalTipsSent = big.NewInt(0)
	}
	if err := m.KVPut(profileKey(stored.ID), stored); err != nil {
		return err
	}
	if err := m.KVPut(profileHandleKey(stored.Handle), stored.ID); err != nil {
		return err
	}
	return m.KVPut(profileOwnerKey(stored.Owner), stored.ID)
}

// ProfileGet loads a profile by identifier.
func (m *Manager) ProfileGet(id uint64) (*social.Profile, bool, error) {
	profile := new(social.Profile)
	ok, err := m.KVGet(profileKey(id), profile)
	if err != nil || !ok {
		return nil, false, err
	}
	return profile, true, nil
}

// ProfileIDByHandle resolves the handle index.
func (m *Manager) ProfileIDByHandle(handle string) (uint64, bool, error) {
	var id uint64
	ok, err := m.KVGet(profileHandleKey(handle), &id)
	if err != nil || !ok {
		return 0, false, err
	}
	return id, true, nil
}

// ProfileIDByOwner resolves the owner index.
func (m *Manager) ProfileIDByOwner(owner [20]byte) (uint64, bool, error) {
	var id uint64
	ok, err := m.KVGet(profileOwnerKey(owner), &id)
	if err != nil || !ok {
		return 0, false, err
	}
	return id, true, nil
}

// ContentPut stores a content record.
func (m *Manager) ContentPut(c *social.Content) error {
	if c == nil {
		return errors.New("state: content required")
	}
	if c.ID == 0 {
		return errors.New("state: content id required")
	}
	stored := c.Clone()
	if stored.TotalTips == nil {
		stored.TotalTips = big.NewInt(0)
	}
	return m.KVPut(contentKey(stored.ID), stored)
}

// ContentGet loads a content record by identifier.
func (m *Manager) ContentGet(id uint64) (*social.Content, bool, error) {
	content := new(social.Content)
	ok, err := m.KVGet(contentKey(id), content)
	if err != nil || !ok {
		return nil, false, err
	}
	return content, true, nil
}

// TipPut stores a tip under its (content, tipper) key.
func (m *Manager) TipPut(t *social.Tip) error {
	if t == nil {
		return errors.New("state: tip required")
	}
	stored := t.Clone()
	if stored.Amount == nil {
		stored.Amount = big.NewInt(0)
	}
	return m.KVPut(tipKey(stored.ContentID, stored.Tipper), stored)
}

// TipGet loads a tip by its (content, tipper) key.
func (m *Manager) TipGet(contentID uint64, tipper [20]byte) (*social.Tip, bool, error) {
	tip := new(social.Tip)
	ok, err := m.KVGet(tipKey(contentID, tipper), tip)
	if err != nil || !ok {
		return nil, false, err
	}
	return tip, true, nil
}

// FollowPut stores a follow edge under its ordered pair key.
func (m *Manager) FollowPut(e *social.SocialEdge) error {
	if e == nil {
		return errors.New("state: edge required")
	}
	return m.KVPut(followKey(e.FollowerID, e.FollowingID), e)
}

// FollowGet loads a follow edge by its ordered pair key.
func (m *Manager) FollowGet(followerID, followingID uint64) (*social.SocialEdge, bool, error) {
	edge := new(social.SocialEdge)
	ok, err := m.KVGet(followKey(followerID, followingID), edge)
	if err != nil || !ok {
		return nil, false, err
	}
	return edge, true, nil
}

// CommunityPut stores a community record.
func (m *Manager) CommunityPut(c *social.Community) error {
	if c == nil {
		return errors.New("state: community required")
	}
	if c.ID == 0 {
		return errors.New("state: community id required")
	}
	stored := c.Clone()
	if stored.TotalSupply == nil {
		stored.TotalSupply = big.NewInt(0)
	}
	if stored.GovernanceThreshold == nil {
		stored.GovernanceThreshold = big.NewInt(0)
	}
	return m.KVPut(communityKey(stored.ID), stored)
}

// CommunityGet loads a community by identifier.
func (m *Manager) CommunityGet(id uint64) (*social.Community, bool, error) {
	community := new(social.Community)
	ok, err := m.KVGet(communityKey(id), community)
	if err != nil || !ok {
		return nil, false, err
	}
	return community, true, nil
}

// MembershipPut stores a membership under its (community, member) key.
func (m *Manager) MembershipPut(mem *social.Membership) error {
	if mem == nil {
		return errors.New("state: membership required")
	}
	stored := mem.Clone()
	if stored.TokenBalance == nil {
		stored.TokenBalance = big.NewInt(0)
	}
	return m.KVPut(membershipKey(stored.CommunityID, stored.MemberID), stored)
}

// MembershipGet loads a membership by its (community, member) key.
func (m *Manager) MembershipGet(communityID, memberID uint64) (*social.Membership, bool, error) {
	membership := new(social.Membership)
	ok, err := m.KVGet(membershipKey(communityID, memberID), membership)
	if err != nil || !ok {
		return nil, false, err
	}
	return membership, true, nil
}

// EngagementPut stores a period bucket under its (profile, period) key.
func (m *Manager) EngagementPut(ep *social.EngagementPeriod) error {
	if ep == nil {
		return errors.New("state: engagement bucket required")
	}
	return m.KVPut(engagementKey(ep.ProfileID, ep.Period), ep)
}

// EngagementGet loads a period bucket by its (profile, period) key.
func (m *Manager) EngagementGet(profileID, period uint64) (*social.EngagementPeriod, bool, error) {
	bucket := new(social.EngagementPeriod)
	ok, err := m.KVGet(engagementKey(profileID, period), bucket)
	if err != nil || !ok {
		return nil, false, err
	}
	return bucket, true, nil
}

// ProtocolPut stores the protocol-wide settings record.
func (m *Manager) ProtocolPut(p *social.ProtocolState) error {
	if p == nil {
		return errors.New("state: protocol state required")
	}
	stored := p.Clone()
	if stored.TipVolume == nil {
		stored.TipVolume = big.NewInt(0)
	}
	return m.KVPut(protocolKeyBytes, stored)
}

// ProtocolGet loads the protocol-wide settings record.
func (m *Manager) ProtocolGet() (*social.ProtocolState, bool, error) {
	protocol := new(social.ProtocolState)
	ok, err := m.KVGet(protocolKeyBytes, protocol)
	if err != nil || !ok {
		return nil, false, err
	}
	return protocol, true, nil
}
