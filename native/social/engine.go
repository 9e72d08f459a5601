package social

import (
	"errors"
	"fmt"
	"math/big"

	"socialnet/core/events"
	"socialnet/core/ledger"
)

const (
	seqProfile   = "profile"
	seqContent   = "content"
	seqCommunity = "community"
)

const initialReputation = 100

var errFeeRecipientNotSet = errors.New("social: fee recipient not configured")

// engineState is the subset of state-manager functionality the engine
// needs. Implementations must stage every write issued within one
// transition so the host can commit or discard them as a unit.
type engineState interface {
	ProfileGet(id uint64) (*Profile, bool, error)
	ProfilePut(p *Profile) error
	ProfileIDByOwner(owner [20]byte) (uint64, bool, error)
	ProfileIDByHandle(handle string) (uint64, bool, error)
	ContentGet(id uint64) (*Content, bool, error)
	ContentPut(c *Content) error
	TipGet(contentID uint64, tipper [20]byte) (*Tip, bool, error)
	TipPut(t *Tip) error
	FollowGet(followerID, followingID uint64) (*SocialEdge, bool, error)
	FollowPut(e *SocialEdge) error
	CommunityGet(id uint64) (*Community, bool, error)
	CommunityPut(c *Community) error
	MembershipGet(communityID, memberID uint64) (*Membership, bool, error)
	MembershipPut(m *Membership) error
	EngagementGet(profileID, period uint64) (*EngagementPeriod, bool, error)
	EngagementPut(ep *EngagementPeriod) error
	ProtocolGet() (*ProtocolState, bool, error)
	ProtocolPut(p *ProtocolState) error
	SequenceNext(name string) (uint64, error)
	SequenceCurrent(name string) (uint64, error)
}

// Params carries the protocol constants consumed by the engine. They are
// fixed for the lifetime of a node; only the fee recipient and pause flag
// live in state and can change at runtime.
type Params struct {
	MinimumTip     *big.Int
	FeeBasisPoints uint32
	PeriodLength   uint64
}

// DefaultParams returns the protocol defaults: a 1000 minor-unit tip
// floor, a 2.5% fee and 2016-height engagement windows.
func DefaultParams() Params {
	return Params{
		MinimumTip:     big.NewInt(1_000),
		FeeBasisPoints: 250,
		PeriodLength:   2_016,
	}
}

// Validate ensures the parameter set is internally consistent.
func (p Params) Validate() error {
	if p.MinimumTip == nil || p.MinimumTip.Sign() <= 0 {
		return fmt.Errorf("social: minimum tip must be positive")
	}
	if p.FeeBasisPoints >= basisPointDenominator {
		return fmt.Errorf("social: fee basis points must be below %d", basisPointDenominator)
	}
	if p.PeriodLength == 0 {
		return fmt.Errorf("social: engagement period length must be positive")
	}
	return nil
}

// Engine applies the social-ledger state transitions. Each exported
// transition validates its inputs before touching state; value-moving
// transitions drive the external ledger collaborator and only persist
// their records once the transfer has succeeded.
type Engine struct {
	state    engineState
	transfer ledger.Transfer
	emitter  events.Emitter
	heightFn func() uint64
	params   Params
	admins   map[[20]byte]struct{}
}

// NewEngine constructs an engine with default parameters and no wired
// collaborators.
func NewEngine() *Engine {
	return &Engine{
		emitter:  events.NoopEmitter{},
		heightFn: func() uint64 { return 0 },
		params:   DefaultParams(),
		admins:   make(map[[20]byte]struct{}),
	}
}

// SetState configures the state backend used by the engine.
func (e *Engine) SetState(state engineState) { e.state = state }

// SetLedger configures the external value-transfer collaborator.
func (e *Engine) SetLedger(transfer ledger.Transfer) { e.transfer = transfer }

// SetEmitter configures the event emitter used by the engine.
func (e *Engine) SetEmitter(emitter events.Emitter) {
	if emitter == nil {
		e.emitter = events.NoopEmitter{}
		return
	}
	e.emitter = emitter
}

// SetHeightFunc wires the logical clock collaborator. The supplied
// function must be monotonically non-decreasing across transitions.
func (e *Engine) SetHeightFunc(height func() uint64) {
	if height == nil {
		e.heightFn = func() uint64 { return 0 }
		return
	}
	e.heightFn = height
}

// SetParams overrides the protocol parameters.
func (e *Engine) SetParams(params Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	e.params = params
	return nil
}

// SetAdmins configures the administrator principals allowed to call the
// protocol administration transitions.
func (e *Engine) SetAdmins(admins [][20]byte) {
	set := make(map[[20]byte]struct{}, len(admins))
	for _, addr := range admins {
		set[addr] = struct{}{}
	}
	e.admins = set
}

func (e *Engine) emit(evt events.Event) {
	if e == nil || evt == nil || e.emitter == nil {
		return
	}
	e.emitter.Emit(evt)
}

func (e *Engine) height() uint64 {
	if e == nil || e.heightFn == nil {
		return 0
	}
	return e.heightFn()
}

func (e *Engine) isAdmin(caller [20]byte) bool {
	if e == nil || len(e.admins) == 0 {
		return false
	}
	_, ok := e.admins[caller]
	return ok
}

// protocolState loads the protocol record, falling back to a zeroed
// default when nothing has been written yet.
func (e *Engine) protocolState() (*ProtocolState, error) {
	stored, ok, err := e.state.ProtocolGet()
	if err != nil {
		return nil, err
	}
	if !ok || stored == nil {
		return &ProtocolState{TipVolume: big.NewInt(0)}, nil
	}
	if stored.TipVolume == nil {
		stored.TipVolume = big.NewInt(0)
	}
	return stored, nil
}

// callerProfile resolves the caller principal to its profile record.
func (e *Engine) callerProfile(caller [20]byte) (*Profile, error) {
	id, ok, err := e.state.ProfileIDByOwner(caller)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrProfileNotFound
	}
	profile, ok, err := e.state.ProfileGet(id)
	if err != nil {
		return nil, err
	}
	if !ok || profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}
