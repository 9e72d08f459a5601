package social

import "math/big"

// ContentType enumerates the kinds of content a profile can publish.
type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeImage ContentType = "image"
	ContentTypeVideo ContentType = "video"
	ContentTypeAudio ContentType = "audio"
	ContentTypeLink  ContentType = "link"
)

// Profile is the identity record bound one-to-one to a caller principal.
// Handle is immutable after creation; reputation and the cumulative
// counters only ever grow.
type Profile struct {
	ID                uint64   `json:"id"`
	Owner             [20]byte `json:"owner"`
	Handle            string   `json:"handle"`
	Bio               string   `json:"bio"`
	AvatarURL         string   `json:"avatarUrl"`
	Reputation        uint64   `json:"reputation"`
	TotalTipsReceived *big.Int `json:"totalTipsReceived"`
	TotalTipsSent     *big.Int `json:"totalTipsSent"`
	ContentCount      uint64   `json:"contentCount"`
	FollowerCount     uint64   `json:"followerCount"`
	FollowingCount    uint64   `json:"followingCount"`
	CreatedAt         uint64   `json:"createdAt"`
	Verified          bool     `json:"verified"`
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	clone := *p
	if p.TotalTipsReceived != nil {
		clone.TotalTipsReceived = new(big.Int).Set(p.TotalTipsReceived)
	}
	if p.TotalTipsSent != nil {
		clone.TotalTipsSent = new(big.Int).Set(p.TotalTipsSent)
	}
	return &clone
}

// Content is a published record owned by its author profile. The tip
// counters are mutated only by the tipping engine after creation.
type Content struct {
	ID              uint64      `json:"id"`
	AuthorID        uint64      `json:"authorId"`
	Text            string      `json:"text"`
	ContentType     ContentType `json:"contentType"`
	MediaURL        string      `json:"mediaUrl"`
	TipCount        uint64      `json:"tipCount"`
	TotalTips       *big.Int    `json:"totalTips"`
	EngagementScore uint64      `json:"engagementScore"`
	CreatedAt       uint64      `json:"createdAt"`
	CommunityID     uint64      `json:"communityId"`
}

// Clone returns a deep copy of the content record.
func (c *Content) Clone() *Content {
	if c == nil {
		return nil
	}
	clone := *c
	if c.TotalTips != nil {
		clone.TotalTips = new(big.Int).Set(c.TotalTips)
	}
	return &clone
}

// Tip records a one-time contribution from a tipper principal to a piece
// of content. At most one tip per (content, tipper) pair exists; the
// record is immutable once written.
type Tip struct {
	ContentID uint64   `json:"contentId"`
	Tipper    [20]byte `json:"tipper"`
	Amount    *big.Int `json:"amount"`
	Message   string   `json:"message"`
	TippedAt  uint64   `json:"tippedAt"`
}

// Clone returns a deep copy of the tip.
func (t *Tip) Clone() *Tip {
	if t == nil {
		return nil
	}
	clone := *t
	if t.Amount != nil {
		clone.Amount = new(big.Int).Set(t.Amount)
	}
	return &clone
}

// SocialEdge is a directed follow relation between two profiles.
type SocialEdge struct {
	FollowerID  uint64 `json:"followerId"`
	FollowingID uint64 `json:"followingId"`
	ConnectedAt uint64 `json:"connectedAt"`
}

// Community is a token-denominated group. Supply and the governance
// threshold are fixed at creation; no mint, burn or transfer path exists
// at this layer.
type Community struct {
	ID                  uint64   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	CreatorID           uint64   `json:"creatorId"`
	TokenSymbol         string   `json:"tokenSymbol"`
	TotalSupply         *big.Int `json:"totalSupply"`
	MemberCount         uint64   `json:"memberCount"`
	CreatedAt           uint64   `json:"createdAt"`
	GovernanceThreshold *big.Int `json:"governanceThreshold"`
}

// Clone returns a deep copy of the community.
func (c *Community) Clone() *Community {
	if c == nil {
		return nil
	}
	clone := *c
	if c.TotalSupply != nil {
		clone.TotalSupply = new(big.Int).Set(c.TotalSupply)
	}
	if c.GovernanceThreshold != nil {
		clone.GovernanceThreshold = new(big.Int).Set(c.GovernanceThreshold)
	}
	return &clone
}

// Membership ties a profile to a community together with its internal
// token balance and moderator flag.
type Membership struct {
	CommunityID  uint64   `json:"communityId"`
	MemberID     uint64   `json:"memberId"`
	TokenBalance *big.Int `json:"tokenBalance"`
	JoinedAt     uint64   `json:"joinedAt"`
	IsModerator  bool     `json:"isModerator"`
}

// Clone returns a deep copy of the membership.
func (m *Membership) Clone() *Membership {
	if m == nil {
		return nil
	}
	clone := *m
	if m.TokenBalance != nil {
		clone.TokenBalance = new(big.Int).Set(m.TokenBalance)
	}
	return &clone
}

// EngagementPeriod buckets a profile's activity into fixed-width height
// windows. A period rollover starts a fresh record under a new key; the
// aggregates within a record only grow.
type EngagementPeriod struct {
	ProfileID       uint64 `json:"profileId"`
	Period          uint64 `json:"period"`
	TipsReceived    uint64 `json:"tipsReceived"`
	TipsSent        uint64 `json:"tipsSent"`
	ContentPosted   uint64 `json:"contentPosted"`
	EngagementScore uint64 `json:"engagementScore"`
}

// ProtocolState carries the mutable protocol-wide settings and the global
// tip counters surfaced through the stats query.
type ProtocolState struct {
	Paused       bool     `json:"paused"`
	FeeRecipient [20]byte `json:"feeRecipient"`
	TipCount     uint64   `json:"tipCount"`
	TipVolume    *big.Int `json:"tipVolume"`
}

// Clone returns a deep copy of the protocol state.
func (p *ProtocolState) Clone() *ProtocolState {
	if p == nil {
		return nil
	}
	clone := *p
	if p.TipVolume != nil {
		clone.TipVolume = new(big.Int).Set(p.TipVolume)
	}
	return &clone
}

// Stats is the read-only aggregate snapshot returned by the query surface.
type Stats struct {
	ProfileCount   uint64   `json:"profileCount"`
	ContentCount   uint64   `json:"contentCount"`
	CommunityCount uint64   `json:"communityCount"`
	TipCount       uint64   `json:"tipCount"`
	TipVolume      *big.Int `json:"tipVolume"`
	FeeBasisPoints uint32   `json:"feeBasisPoints"`
	MinimumTip     *big.Int `json:"minimumTip"`
	FeeRecipient   [20]byte `json:"feeRecipient"`
	Paused         bool     `json:"paused"`
}
