package social

import (
	"fmt"
	"math/big"
	"testing"

	"socialnet/core/events"
	"socialnet/core/ledger"
)

type mockState struct {
	profiles    map[uint64]*Profile
	byHandle    map[string]uint64
	byOwner     map[[20]byte]uint64
	contents    map[uint64]*Content
	tips        map[string]*Tip
	follows     map[string]*SocialEdge
	communities map[uint64]*Community
	memberships map[string]*Membership
	engagement  map[string]*EngagementPeriod
	protocol    *ProtocolState
	sequences   map[string]uint64
	balances    map[[20]byte]*big.Int
}

func newMockState() *mockState {
	return &mockState{
		profiles:    make(map[uint64]*Profile),
		byHandle:    make(map[string]uint64),
		byOwner:     make(map[[20]byte]uint64),
		contents:    make(map[uint64]*Content),
		tips:        make(map[string]*Tip),
		follows:     make(map[string]*SocialEdge),
		communities: make(map[uint64]*Community),
		memberships: make(map[string]*Membership),
		engagement:  make(map[string]*EngagementPeriod),
		sequences:   make(map[string]uint64),
		balances:    make(map[[20]byte]*big.Int),
	}
}

func (m *mockState) ProfileGet(id uint64) (*Profile, bool, error) {
	profile, ok := m.profiles[id]
	if !ok {
		return nil, false, nil
	}
	return profile.Clone(), true, nil
}

func (m *mockState) ProfilePut(p *Profile) error {
	if p == nil {
		return nil
	}
	m.profiles[p.ID] = p.Clone()
	m.byHandle[p.Handle] = p.ID
	m.byOwner[p.Owner] = p.ID
	return nil
}

func (m *mockState) ProfileIDByOwner(owner [20]byte) (uint64, bool, error) {
	id, ok := m.byOwner[owner]
	return id, ok, nil
}

func (m *mockState) ProfileIDByHandle(handle string) (uint64, bool, error) {
	id, ok := m.byHandle[handle]
	return id, ok, nil
}

func (m *mockState) ContentGet(id uint64) (*Content, bool, error) {
	content, ok := m.contents[id]
	if !ok {
		return nil, false, nil
	}
	return content.Clone(), true, nil
}

func (m *mockState) ContentPut(c *Content) error {
	if c == nil {
		return nil
	}
	m.contents[c.ID] = c.Clone()
	return nil
}

func tipMapKey(contentID uint64, tipper [20]byte) string {
	return fmt.Sprintf("%d/%x", contentID, tipper)
}

func (m *mockState) TipGet(contentID uint64, tipper [20]byte) (*Tip, bool, error) {
	tip, ok := m.tips[tipMapKey(contentID, tipper)]
	if !ok {
		return nil, false, nil
	}
	return tip.Clone(), true, nil
}

func (m *mockState) TipPut(t *Tip) error {
	if t == nil {
		return nil
	}
	m.tips[tipMapKey(t.ContentID, t.Tipper)] = t.Clone()
	return nil
}

func followMapKey(followerID, followingID uint64) string {
	return fmt.Sprintf("%d/%d", followerID, followingID)
}

func (m *mockState) FollowGet(followerID, followingID uint64) (*SocialEdge, bool, error) {
	edge, ok := m.follows[followMapKey(followerID, followingID)]
	if !ok {
		return nil, false, nil
	}
	clone := *edge
	return &clone, true, nil
}

func (m *mockState) FollowPut(e *SocialEdge) error {
	if e == nil {
		return nil
	}
	clone := *e
	m.follows[followMapKey(e.FollowerID, e.FollowingID)] = &clone
	return nil
}

func (m *mockState) CommunityGet(id uint64) (*Community, bool, error) {
	community, ok := m.communities[id]
	if !ok {
		return nil, false, nil
	}
	return community.Clone(), true, nil
}

func (m *mockState) CommunityPut(c *Community) error {
	if c == nil {
		return nil
	}
	m.communities[c.ID] = c.Clone()
	return nil
}

func memberMapKey(communityID, memberID uint64) string {
	return fmt.Sprintf("%d/%d", communityID, memberID)
}

func (m *mockState) MembershipGet(communityID, memberID uint64) (*Membership, bool, error) {
	membership, ok := m.memberships[memberMapKey(communityID, memberID)]
	if !ok {
		return nil, false, nil
	}
	return membership.Clone(), true, nil
}

func (m *mockState) MembershipPut(mem *Membership) error {
	if mem == nil {
		return nil
	}
	m.memberships[memberMapKey(mem.CommunityID, mem.MemberID)] = mem.Clone()
	return nil
}

func (m *mockState) EngagementGet(profileID, period uint64) (*EngagementPeriod, bool, error) {
	bucket, ok := m.engagement[memberMapKey(profileID, period)]
	if !ok {
		return nil, false, nil
	}
	clone := *bucket
	return &clone, true, nil
}

func (m *mockState) EngagementPut(ep *EngagementPeriod) error {
	if ep == nil {
		return nil
	}
	clone := *ep
	m.engagement[memberMapKey(ep.ProfileID, ep.Period)] = &clone
	return nil
}

func (m *mockState) ProtocolGet() (*ProtocolState, bool, error) {
	if m.protocol == nil {
		return nil, false, nil
	}
	return m.protocol.Clone(), true, nil
}

func (m *mockState) ProtocolPut(p *ProtocolState) error {
	if p == nil {
		return nil
	}
	m.protocol = p.Clone()
	return nil
}

func (m *mockState) SequenceNext(name string) (uint64, error) {
	m.sequences[name]++
	return m.sequences[name], nil
}

func (m *mockState) SequenceCurrent(name string) (uint64, error) {
	return m.sequences[name], nil
}

func (m *mockState) BalanceGet(addr [20]byte) (*big.Int, error) {
	balance, ok := m.balances[addr]
	if !ok {
		return big.NewInt(0), nil
	}
	return new(big.Int).Set(balance), nil
}

func (m *mockState) BalancePut(addr [20]byte, amount *big.Int) error {
	m.balances[addr] = new(big.Int).Set(amount)
	return nil
}

func addr(b byte) [20]byte {
	var a [20]byte
	a[19] = b
	return a
}

var (
	adminAddr        = addr(0xAA)
	feeRecipientAddr = addr(0xFE)
)

type testEnv struct {
	engine   *Engine
	state    *mockState
	recorder *events.Recorder
	height   uint64
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{state: newMockState(), recorder: &events.Recorder{}}
	env.engine = NewEngine()
	env.engine.SetState(env.state)
	env.engine.SetLedger(ledger.NewBook(env.state))
	env.engine.SetEmitter(env.recorder)
	env.engine.SetAdmins([][20]byte{adminAddr})
	env.engine.SetHeightFunc(func() uint64 { return env.height })
	env.state.protocol = &ProtocolState{FeeRecipient: feeRecipientAddr, TipVolume: big.NewInt(0)}
	return env
}

func (env *testEnv) fund(owner [20]byte, amount int64) {
	env.state.balances[owner] = big.NewInt(amount)
}

func (env *testEnv) mustProfile(t *testing.T, owner [20]byte, handle string) *Profile {
	t.Helper()
	profile, err := env.engine.CreateProfile(owner, handle, "", "")
	if err != nil {
		t.Fatalf("create profile %q: %v", handle, err)
	}
	return profile
}

func (env *testEnv) mustContent(t *testing.T, owner [20]byte, text string) *Content {
	t.Helper()
	content, err := env.engine.CreateContent(owner, text, ContentTypeText, "", 0)
	if err != nil {
		t.Fatalf("create content: %v", err)
	}
	return content
}
