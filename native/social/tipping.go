package social

import (
	"errors"
	"fmt"
	"math/big"

	"socialnet/core/events"
	"socialnet/core/ledger"
)

// TipContent moves value from the caller to a content author, splitting
// off the protocol fee. Preconditions are checked in a fixed order, each
// with a distinct outcome: content existence, caller profile, amount
// floor, self-tip, duplicate tip, message bound. Both transfer legs run
// through one TransferPair call; no record is written unless it succeeds.
func (e *Engine) TipContent(caller [20]byte, contentID uint64, amount *big.Int, message string) (*Tip, error) {
	if e == nil || e.state == nil {
		return nil, errNilState
	}
	if e.transfer == nil {
		return nil, errNilLedger
	}
	content, ok, err := e.state.ContentGet(contentID)
	if err != nil {
		return nil, err
	}
	if !ok || content == nil {
		return nil, fmt.Errorf("%w: content %d", ErrContentNotFound, contentID)
	}
	tipper, err := e.callerProfile(caller)
	if err != nil {
		return nil, err
	}
	if amount == nil || amount.Cmp(e.params.MinimumTip) < 0 {
		return nil, fmt.Errorf("%w: minimum tip is %s", ErrInvalidAmount, e.params.MinimumTip)
	}
	if tipper.ID == content.AuthorID {
		return nil, fmt.Errorf("%w: cannot tip own content", ErrSelfTip)
	}
	if _, ok, err := e.state.TipGet(contentID, caller); err != nil {
		return nil, err
	} else if ok {
		return nil, fmt.Errorf("%w: content %d", ErrAlreadyTipped, contentID)
	}
	if message != "" {
		if err := validateMessage(message); err != nil {
			return nil, err
		}
	}
	author, ok, err := e.state.ProfileGet(content.AuthorID)
	if err != nil {
		return nil, err
	}
	if !ok || author == nil {
		return nil, fmt.Errorf("%w: author %d", ErrProfileNotFound, content.AuthorID)
	}
	protocol, err := e.protocolState()
	if err != nil {
		return nil, err
	}
	authorShare, fee := splitTipAmount(amount, e.params.FeeBasisPoints)
	if fee.Sign() > 0 && protocol.FeeRecipient == ([20]byte{}) {
		return nil, errFeeRecipientNotSet
	}
	if err := e.transfer.TransferPair(caller, author.Owner, protocol.FeeRecipient, authorShare, fee); err != nil {
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			return nil, fmt.Errorf("%w: %v", ErrInsufficientFunds, err)
		}
		return nil, err
	}
	tip := &Tip{
		ContentID: contentID,
		Tipper:    caller,
		Amount:    new(big.Int).Set(amount),
		Message:   message,
		TippedAt:  e.height(),
	}
	if err := e.state.TipPut(tip); err != nil {
		return nil, err
	}
	content.TipCount++
	content.TotalTips = new(big.Int).Add(content.TotalTips, amount)
	content.EngagementScore++
	if err := e.state.ContentPut(content); err != nil {
		return nil, err
	}
	author.TotalTipsReceived = new(big.Int).Add(author.TotalTipsReceived, authorShare)
	if err := e.state.ProfilePut(author); err != nil {
		return nil, err
	}
	tipper.TotalTipsSent = new(big.Int).Add(tipper.TotalTipsSent, amount)
	if err := e.state.ProfilePut(tipper); err != nil {
		return nil, err
	}
	if credit := reputationCredit(amount); credit > 0 {
		if err := e.AdjustReputation(author.ID, credit); err != nil {
			return nil, err
		}
	}
	if err := e.recordEngagement(author.ID, engagementTipReceived); err != nil {
		return nil, err
	}
	if err := e.recordEngagement(tipper.ID, engagementTipSent); err != nil {
		return nil, err
	}
	protocol.TipCount++
	protocol.TipVolume = new(big.Int).Add(protocol.TipVolume, amount)
	if err := e.state.ProtocolPut(protocol); err != nil {
		return nil, err
	}
	e.emit(events.ContentTipped{
		ContentID: tip.ContentID,
		AuthorID:  author.ID,
		TipperID:  tipper.ID,
		Amount:    tip.Amount,
		TippedAt:  tip.TippedAt,
	})
	e.emit(events.FeeApplied{
		ContentID:   tip.ContentID,
		Fee:         fee,
		AuthorShare: authorShare,
		Recipient:   protocol.FeeRecipient,
	})
	return tip.Clone(), nil
}
