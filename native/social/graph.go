package social

import (
	"fmt"

	"socialnet/core/events"
)

// FollowUser inserts a directed follow edge from the caller's profile to
// the profile owning targetHandle. The edge and both follow counters land
// in the same staged write set, so one is never visible without the other.
func (e *Engine) FollowUser(caller [20]byte, targetHandle string) (*SocialEdge, error) {
	if e == nil || e.state == nil {
		return nil, errNilState
	}
	follower, err := e.callerProfile(caller)
	if err != nil {
		return nil, err
	}
	targetID, ok, err := e.state.ProfileIDByHandle(targetHandle)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: handle %q", ErrProfileNotFound, targetHandle)
	}
	if targetID == follower.ID {
		return nil, fmt.Errorf("%w: cannot follow self", ErrInvalidParams)
	}
	target, ok, err := e.state.ProfileGet(targetID)
	if err != nil {
		return nil, err
	}
	if !ok || target == nil {
		return nil, fmt.Errorf("%w: profile %d", ErrProfileNotFound, targetID)
	}
	if _, ok, err := e.state.FollowGet(follower.ID, targetID); err != nil {
		return nil, err
	} else if ok {
		return nil, fmt.Errorf("%w: already following", ErrAlreadyExists)
	}
	edge := &SocialEdge{
		FollowerID:  follower.ID,
		FollowingID: targetID,
		ConnectedAt: e.height(),
	}
	if err := e.state.FollowPut(edge); err != nil {
		return nil, err
	}
	follower.FollowingCount++
	if err := e.state.ProfilePut(follower); err != nil {
		return nil, err
	}
	target.FollowerCount++
	if err := e.state.ProfilePut(target); err != nil {
		return nil, err
	}
	e.emit(events.Followed{
		FollowerID:  edge.FollowerID,
		FollowingID: edge.FollowingID,
		ConnectedAt: edge.ConnectedAt,
	})
	return edge, nil
}

// IsFollowing reports whether a follow edge exists between the profiles
// owning the supplied handles. Unknown handles yield false, not an error.
func (e *Engine) IsFollowing(followerHandle, followingHandle string) (bool, error) {
	if e == nil || e.state == nil {
		return false, errNilState
	}
	followerID, ok, err := e.state.ProfileIDByHandle(followerHandle)
	if err != nil || !ok {
		return false, err
	}
	followingID, ok, err := e.state.ProfileIDByHandle(followingHandle)
	if err != nil || !ok {
		return false, err
	}
	_, ok, err = e.state.FollowGet(followerID, followingID)
	return ok, err
}
