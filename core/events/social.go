package events

import (
	"math/big"

	"socialnet/core/types"
)

const (
	TypeProfileCreated     = "social.profile.created"
	TypeProfileUpdated     = "social.profile.updated"
	TypeProfileVerified    = "social.profile.verified"
	TypeFollowed           = "social.graph.followed"
	TypeContentPublished   = "social.content.published"
	TypeContentTipped      = "social.content.tipped"
	TypeCommunityCreated   = "social.community.created"
	TypeCommunityJoined    = "social.community.joined"
	TypeFeeApplied         = "social.fees.applied"
	TypeEngagementRecorded = "social.engagement.recorded"
	TypePauseChanged       = "social.admin.pause"
	TypeFeeRecipientSet    = "social.admin.feeRecipient"
)

type ProfileCreated struct {
	ProfileID uint64
	Owner     [20]byte
	Handle    string
	CreatedAt uint64
}

func (ProfileCreated) EventType() string { return TypeProfileCreated }

func (e ProfileCreated) Event() *types.Event {
	return &types.Event{
		Type: TypeProfileCreated,
		Attributes: map[string]string{
			"profileId": uintToString(e.ProfileID),
			"owner":     formatAddress(e.Owner),
			"handle":    e.Handle,
			"createdAt": uintToString(e.CreatedAt),
		},
	}
}

type ProfileUpdated struct {
	ProfileID uint64
	Owner     [20]byte
}

func (ProfileUpdated) EventType() string { return TypeProfileUpdated }

func (e ProfileUpdated) Event() *types.Event {
	return &types.Event{
		Type: TypeProfileUpdated,
		Attributes: map[string]string{
			"profileId": uintToString(e.ProfileID),
			"owner":     formatAddress(e.Owner),
		},
	}
}

type ProfileVerified struct {
	ProfileID uint64
	Admin     [20]byte
}

func (ProfileVerified) EventType() string { return TypeProfileVerified }

func (e ProfileVerified) Event() *types.Event {
	return &types.Event{
		Type: TypeProfileVerified,
		Attributes: map[string]string{
			"profileId": uintToString(e.ProfileID),
			"admin":     formatAddress(e.Admin),
		},
	}
}

type Followed struct {
	FollowerID  uint64
	FollowingID uint64
	ConnectedAt uint64
}

func (Followed) EventType() string { return TypeFollowed }

func (e Followed) Event() *types.Event {
	return &types.Event{
		Type: TypeFollowed,
		Attributes: map[string]string{
			"followerId":  uintToString(e.FollowerID),
			"followingId": uintToString(e.FollowingID),
			"connectedAt": uintToString(e.ConnectedAt),
		},
	}
}

type ContentPublished struct {
	ContentID   uint64
	AuthorID    uint64
	ContentType string
	CommunityID uint64
	CreatedAt   uint64
}

func (ContentPublished) EventType() string { return TypeContentPublished }

func (e ContentPublished) Event() *types.Event {
	return &types.Event{
		Type: TypeContentPublished,
		Attributes: map[string]string{
			"contentId":   uintToString(e.ContentID),
			"authorId":    uintToString(e.AuthorID),
			"contentType": e.ContentType,
			"communityId": uintToString(e.CommunityID),
			"createdAt":   uintToString(e.CreatedAt),
		},
	}
}

type ContentTipped struct {
	ContentID uint64
	AuthorID  uint64
	TipperID  uint64
	Amount    *big.Int
	TippedAt  uint64
}

func (ContentTipped) EventType() string { return TypeContentTipped }

func (e ContentTipped) Event() *types.Event {
	return &types.Event{
		Type: TypeContentTipped,
		Attributes: map[string]string{
			"contentId": uintToString(e.ContentID),
			"authorId":  uintToString(e.AuthorID),
			"tipperId":  uintToString(e.TipperID),
			"amount":    formatAmount(e.Amount),
			"tippedAt":  uintToString(e.TippedAt),
		},
	}
}

type FeeApplied struct {
	ContentID   uint64
	Fee         *big.Int
	AuthorShare *big.Int
	Recipient   [20]byte
}

func (FeeApplied) EventType() string { return TypeFeeApplied }

func (e FeeApplied) Event() *types.Event {
	return &types.Event{
		Type: TypeFeeApplied,
		Attributes: map[string]string{
			"contentId":   uintToString(e.ContentID),
			"fee":         formatAmount(e.Fee),
			"authorShare": formatAmount(e.AuthorShare),
			"recipient":   formatAddress(e.Recipient),
		},
	}
}

type CommunityCreated struct {
	CommunityID uint64
	CreatorID   uint64
	TokenSymbol string
	TotalSupply *big.Int
	CreatedAt   uint64
}

func (CommunityCreated) EventType() string { return TypeCommunityCreated }

func (e CommunityCreated) Event() *types.Event {
	return &types.Event{
		Type: TypeCommunityCreated,
		Attributes: map[string]string{
			"communityId": uintToString(e.CommunityID),
			"creatorId":   uintToString(e.CreatorID),
			"tokenSymbol": e.TokenSymbol,
			"totalSupply": formatAmount(e.TotalSupply),
			"createdAt":   uintToString(e.CreatedAt),
		},
	}
}

type CommunityJoined struct {
	CommunityID uint64
	MemberID    uint64
	JoinedAt    uint64
}

func (CommunityJoined) EventType() string { return TypeCommunityJoined }

func (e CommunityJoined) Event() *types.Event {
	return &types.Event{
		Type: TypeCommunityJoined,
		Attributes: map[string]string{
			"communityId": uintToString(e.CommunityID),
			"memberId":    uintToString(e.MemberID),
			"joinedAt":    uintToString(e.JoinedAt),
		},
	}
}

type EngagementRecorded struct {
	ProfileID uint64
	Period    uint64
	Kind      string
}

func (EngagementRecorded) EventType() string { return TypeEngagementRecorded }

func (e EngagementRecorded) Event() *types.Event {
	return &types.Event{
		Type: TypeEngagementRecorded,
		Attributes: map[string]string{
			"profileId": uintToString(e.ProfileID),
			"period":    uintToString(e.Period),
			"kind":      e.Kind,
		},
	}
}

type PauseChanged struct {
	Paused bool
	Admin  [20]byte
}

func (PauseChanged) EventType() string { return TypePauseChanged }

func (e PauseChanged) Event() *types.Event {
	return &types.Event{
		Type: TypePauseChanged,
		Attributes: map[string]string{
			"paused": boolToString(e.Paused),
			"admin":  formatAddress(e.Admin),
		},
	}
}

type FeeRecipientSet struct {
	Recipient [20]byte
	Admin     [20]byte
}

func (FeeRecipientSet) EventType() string { return TypeFeeRecipientSet }

func (e FeeRecipientSet) Event() *types.Event {
	return &types.Event{
		Type: TypeFeeRecipientSet,
		Attributes: map[string]string{
			"recipient": formatAddress(e.Recipient),
			"admin":     formatAddress(e.Admin),
		},
	}
}
