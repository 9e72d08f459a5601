package social

import (
	"fmt"
	"math/big"
	"strings"

	"socialnet/core/events"
)

// CreateProfile registers the caller's identity record. Each principal
// owns at most one profile; the handle must be unused across the whole
// registry. Profile creation is gated by the protocol pause flag.
func (e *Engine) CreateProfile(caller [20]byte, handle, bio, avatarURL string) (*Profile, error) {
	if e == nil || e.state == nil {
		return nil, errNilState
	}
	protocol, err := e.protocolState()
	if err != nil {
		return nil, err
	}
	if protocol.Paused {
		return nil, fmt.Errorf("%w: protocol paused", ErrUnauthorized)
	}
	if _, ok, err := e.state.ProfileIDByOwner(caller); err != nil {
		return nil, err
	} else if ok {
		return nil, fmt.Errorf("%w: principal already owns a profile", ErrAlreadyExists)
	}
	trimmed := strings.TrimSpace(handle)
	if err := validateHandle(trimmed); err != nil {
		return nil, err
	}
	if _, ok, err := e.state.ProfileIDByHandle(trimmed); err != nil {
		return nil, err
	} else if ok {
		return nil, fmt.Errorf("%w: handle %q already registered", ErrInvalidParams, trimmed)
	}
	if err := validateBio(bio); err != nil {
		return nil, err
	}
	if avatarURL != "" {
		if err := validateURL(avatarURL); err != nil {
			return nil, err
		}
	}
	id, err := e.state.SequenceNext(seqProfile)
	if err != nil {
		return nil, err
	}
	profile := &Profile{
		ID:                id,
		Owner:             caller,
		Handle:            trimmed,
		Bio:               bio,
		AvatarURL:         avatarURL,
		Reputation:        initialReputation,
		TotalTipsReceived: big.NewInt(0),
		TotalTipsSent:     big.NewInt(0),
		CreatedAt:         e.height(),
	}
	if err := e.state.ProfilePut(profile); err != nil {
		return nil, err
	}
	e.emit(events.ProfileCreated{
		ProfileID: profile.ID,
		Owner:     profile.Owner,
		Handle:    profile.Handle,
		CreatedAt: profile.CreatedAt,
	})
	return profile.Clone(), nil
}

// UpdateProfile replaces the caller's bio and avatar URL. The handle is
// immutable after creation. An empty avatar URL clears the field.
func (e *Engine) UpdateProfile(caller [20]byte, bio, avatarURL string) (*Profile, error) {
	if e == nil || e.state == nil {
		return nil, errNilState
	}
	profile, err := e.callerProfile(caller)
	if err != nil {
		return nil, err
	}
	if profile.Owner != caller {
		return nil, fmt.Errorf("%w: profile owner mismatch", ErrUnauthorized)
	}
	if err := validateBio(bio); err != nil {
		return nil, err
	}
	if avatarURL != "" {
		if err := validateURL(avatarURL); err != nil {
			return nil, err
		}
	}
	profile.Bio = bio
	profile.AvatarURL = avatarURL
	if err := e.state.ProfilePut(profile); err != nil {
		return nil, err
	}
	e.emit(events.ProfileUpdated{ProfileID: profile.ID, Owner: profile.Owner})
	return profile.Clone(), nil
}

// VerifyProfile marks the supplied profile as verified. Administrator
// only; verification is idempotent and there is no unverify path.
func (e *Engine) VerifyProfile(caller [20]byte, profileID uint64) error {
	if e == nil || e.state == nil {
		return errNilState
	}
	if !e.isAdmin(caller) {
		return fmt.Errorf("%w: admin required", ErrUnauthorized)
	}
	profile, ok, err := e.state.ProfileGet(profileID)
	if err != nil {
		return err
	}
	if !ok || profile == nil {
		return fmt.Errorf("%w: profile %d", ErrProfileNotFound, profileID)
	}
	profile.Verified = true
	if err := e.state.ProfilePut(profile); err != nil {
		return err
	}
	e.emit(events.ProfileVerified{ProfileID: profile.ID, Admin: caller})
	return nil
}

// AdjustReputation credits reputation points to the supplied profile. The
// delta is unsigned: reputation never decreases. Called by the tipping
// engine; not reachable from profile owners.
func (e *Engine) AdjustReputation(profileID uint64, delta uint64) error {
	if e == nil || e.state == nil {
		return errNilState
	}
	if delta == 0 {
		return nil
	}
	profile, ok, err := e.state.ProfileGet(profileID)
	if err != nil {
		return err
	}
	if !ok || profile == nil {
		return fmt.Errorf("%w: profile %d", ErrProfileNotFound, profileID)
	}
	profile.Reputation += delta
	return e.state.ProfilePut(profile)
}
