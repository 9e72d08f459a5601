package social

import (
	"fmt"
	"math/big"

	"socialnet/core/events"
)

// CreateCommunity allocates a token-denominated community. The creator's
// membership is written in the same transition holding the entire supply
// and the moderator flag; the governance threshold is half the supply,
// fixed at creation.
func (e *Engine) CreateCommunity(caller [20]byte, name, description, tokenSymbol string, initialSupply *big.Int) (*Community, error) {
	if e == nil || e.state == nil {
		return nil, errNilState
	}
	creator, err := e.callerProfile(caller)
	if err != nil {
		return nil, err
	}
	if err := validateCommunityName(name); err != nil {
		return nil, err
	}
	if err := validateCommunityDescription(description); err != nil {
		return nil, err
	}
	if err := validateTokenSymbol(tokenSymbol); err != nil {
		return nil, err
	}
	if initialSupply == nil || initialSupply.Sign() <= 0 {
		return nil, fmt.Errorf("%w: initial supply must be positive", ErrInvalidParams)
	}
	id, err := e.state.SequenceNext(seqCommunity)
	if err != nil {
		return nil, err
	}
	community := &Community{
		ID:                  id,
		Name:                name,
		Description:         description,
		CreatorID:           creator.ID,
		TokenSymbol:         tokenSymbol,
		TotalSupply:         new(big.Int).Set(initialSupply),
		MemberCount:         1,
		CreatedAt:           e.height(),
		GovernanceThreshold: new(big.Int).Div(initialSupply, big.NewInt(2)),
	}
	if err := e.state.CommunityPut(community); err != nil {
		return nil, err
	}
	membership := &Membership{
		CommunityID:  id,
		MemberID:     creator.ID,
		TokenBalance: new(big.Int).Set(initialSupply),
		JoinedAt:     e.height(),
		IsModerator:  true,
	}
	if err := e.state.MembershipPut(membership); err != nil {
		return nil, err
	}
	e.emit(events.CommunityCreated{
		CommunityID: community.ID,
		CreatorID:   community.CreatorID,
		TokenSymbol: community.TokenSymbol,
		TotalSupply: community.TotalSupply,
		CreatedAt:   community.CreatedAt,
	})
	return community.Clone(), nil
}

// JoinCommunity adds the caller to an existing community with a zero
// token balance. Membership is open; no approval gate exists here.
func (e *Engine) JoinCommunity(caller [20]byte, communityID uint64) (*Membership, error) {
	if e == nil || e.state == nil {
		return nil, errNilState
	}
	member, err := e.callerProfile(caller)
	if err != nil {
		return nil, err
	}
	community, ok, err := e.state.CommunityGet(communityID)
	if err != nil {
		return nil, err
	}
	if !ok || community == nil {
		return nil, fmt.Errorf("%w: community %d", ErrNotFound, communityID)
	}
	if _, ok, err := e.state.MembershipGet(communityID, member.ID); err != nil {
		return nil, err
	} else if ok {
		return nil, fmt.Errorf("%w: already a member", ErrAlreadyExists)
	}
	membership := &Membership{
		CommunityID:  communityID,
		MemberID:     member.ID,
		TokenBalance: big.NewInt(0),
		JoinedAt:     e.height(),
	}
	if err := e.state.MembershipPut(membership); err != nil {
		return nil, err
	}
	community.MemberCount++
	if err := e.state.CommunityPut(community); err != nil {
		return nil, err
	}
	e.emit(events.CommunityJoined{
		CommunityID: membership.CommunityID,
		MemberID:    membership.MemberID,
		JoinedAt:    membership.JoinedAt,
	})
	return membership.Clone(), nil
}
