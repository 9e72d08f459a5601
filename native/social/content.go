package social

import (
	"fmt"
	"math/big"

	"socialnet/core/events"
)

// CreateContent publishes a record for the caller's profile. A non-zero
// communityID that does not reference an existing community is cleared to
// zero rather than rejected; the content is still created. Content
// creation is gated by the protocol pause flag.
func (e *Engine) CreateContent(caller [20]byte, text string, kind ContentType, mediaURL string, communityID uint64) (*Content, error) {
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
	author, err := e.callerProfile(caller)
	if err != nil {
		return nil, err
	}
	if err := validateText(text); err != nil {
		return nil, err
	}
	if err := validateContentType(kind); err != nil {
		return nil, err
	}
	if mediaURL != "" {
		if err := validateURL(mediaURL); err != nil {
			return nil, err
		}
	}
	if communityID != 0 {
		if _, ok, err := e.state.CommunityGet(communityID); err != nil {
			return nil, err
		} else if !ok {
			communityID = 0
		}
	}
	id, err := e.state.SequenceNext(seqContent)
	if err != nil {
		return nil, err
	}
	content := &Content{
		ID:          id,
		AuthorID:    author.ID,
		Text:        text,
		ContentType: kind,
		MediaURL:    mediaURL,
		TotalTips:   big.NewInt(0),
		CreatedAt:   e.height(),
		CommunityID: communityID,
	}
	if err := e.state.ContentPut(content); err != nil {
		return nil, err
	}
	author.ContentCount++
	if err := e.state.ProfilePut(author); err != nil {
		return nil, err
	}
	if err := e.recordEngagement(author.ID, engagementContentPosted); err != nil {
		return nil, err
	}
	e.emit(events.ContentPublished{
		ContentID:   content.ID,
		AuthorID:    content.AuthorID,
		ContentType: string(content.ContentType),
		CommunityID: content.CommunityID,
		CreatedAt:   content.CreatedAt,
	})
	return content.Clone(), nil
}
