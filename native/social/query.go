package social

import (
	"math/big"
	"strings"
)

// Read-only query surface. Queries never fail on missing records: absence
// is reported through the boolean, reserving the error for state faults.
// None of these check the pause flag.

// ProfileByID returns the profile stored under the supplied identifier.
func (e *Engine) ProfileByID(id uint64) (*Profile, bool, error) {
	if e == nil || e.state == nil {
		return nil, false, errNilState
	}
	profile, ok, err := e.state.ProfileGet(id)
	if err != nil || !ok {
		return nil, false, err
	}
	return profile.Clone(), true, nil
}

// ProfileByHandle resolves a handle to its profile.
func (e *Engine) ProfileByHandle(handle string) (*Profile, bool, error) {
	if e == nil || e.state == nil {
		return nil, false, errNilState
	}
	id, ok, err := e.state.ProfileIDByHandle(strings.TrimSpace(handle))
	if err != nil || !ok {
		return nil, false, err
	}
	return e.ProfileByID(id)
}

// ProfileByOwner resolves a principal to the profile it owns.
func (e *Engine) ProfileByOwner(owner [20]byte) (*Profile, bool, error) {
	if e == nil || e.state == nil {
		return nil, false, errNilState
	}
	id, ok, err := e.state.ProfileIDByOwner(owner)
	if err != nil || !ok {
		return nil, false, err
	}
	return e.ProfileByID(id)
}

// ContentByID returns the content record stored under the identifier.
func (e *Engine) ContentByID(id uint64) (*Content, bool, error) {
	if e == nil || e.state == nil {
		return nil, false, errNilState
	}
	content, ok, err := e.state.ContentGet(id)
	if err != nil || !ok {
		return nil, false, err
	}
	return content.Clone(), true, nil
}

// TipFor returns the tip a principal left on a piece of content.
func (e *Engine) TipFor(contentID uint64, tipper [20]byte) (*Tip, bool, error) {
	if e == nil || e.state == nil {
		return nil, false, errNilState
	}
	tip, ok, err := e.state.TipGet(contentID, tipper)
	if err != nil || !ok {
		return nil, false, err
	}
	return tip.Clone(), true, nil
}

// CommunityByID returns the community stored under the identifier.
func (e *Engine) CommunityByID(id uint64) (*Community, bool, error) {
	if e == nil || e.state == nil {
		return nil, false, errNilState
	}
	community, ok, err := e.state.CommunityGet(id)
	if err != nil || !ok {
		return nil, false, err
	}
	return community.Clone(), true, nil
}

// MembershipFor returns a profile's membership in a community.
func (e *Engine) MembershipFor(communityID, memberID uint64) (*Membership, bool, error) {
	if e == nil || e.state == nil {
		return nil, false, errNilState
	}
	membership, ok, err := e.state.MembershipGet(communityID, memberID)
	if err != nil || !ok {
		return nil, false, err
	}
	return membership.Clone(), true, nil
}

// EngagementFor returns a profile's aggregate bucket for a period. A
// period with no recorded activity yields a zeroed bucket.
func (e *Engine) EngagementFor(profileID, period uint64) (*EngagementPeriod, bool, error) {
	if e == nil || e.state == nil {
		return nil, false, errNilState
	}
	bucket, ok, err := e.state.EngagementGet(profileID, period)
	if err != nil || !ok {
		return nil, false, err
	}
	clone := *bucket
	return &clone, true, nil
}

// StatsSnapshot aggregates the protocol-wide counters together with the
// configured fee rate, tip floor and pause flag.
func (e *Engine) StatsSnapshot() (*Stats, error) {
	if e == nil || e.state == nil {
		return nil, errNilState
	}
	protocol, err := e.protocolState()
	if err != nil {
		return nil, err
	}
	profiles, err := e.state.SequenceCurrent(seqProfile)
	if err != nil {
		return nil, err
	}
	contents, err := e.state.SequenceCurrent(seqContent)
	if err != nil {
		return nil, err
	}
	communities, err := e.state.SequenceCurrent(seqCommunity)
	if err != nil {
		return nil, err
	}
	return &Stats{
		ProfileCount:   profiles,
		ContentCount:   contents,
		CommunityCount: communities,
		TipCount:       protocol.TipCount,
		TipVolume:      new(big.Int).Set(protocol.TipVolume),
		FeeBasisPoints: e.params.FeeBasisPoints,
		MinimumTip:     new(big.Int).Set(e.params.MinimumTip),
		FeeRecipient:   protocol.FeeRecipient,
		Paused:         protocol.Paused,
	}, nil
}
