package social

import (
	"fmt"

	"socialnet/core/events"
)

// SetFeeRecipient points the protocol fee share at a new principal.
// Administrator only.
func (e *Engine) SetFeeRecipient(caller [20]byte, recipient [20]byte) error {
	if e == nil || e.state == nil {
		return errNilState
	}
	if !e.isAdmin(caller) {
		return fmt.Errorf("%w: admin required", ErrUnauthorized)
	}
	protocol, err := e.protocolState()
	if err != nil {
		return err
	}
	protocol.FeeRecipient = recipient
	if err := e.state.ProtocolPut(protocol); err != nil {
		return err
	}
	e.emit(events.FeeRecipientSet{Recipient: recipient, Admin: caller})
	return nil
}

// Pause raises the global pause flag. While paused, profile and content
// creation are rejected; tipping, following and community operations keep
// working against pre-existing records.
func (e *Engine) Pause(caller [20]byte) error {
	return e.setPaused(caller, true)
}

// Unpause clears the global pause flag.
func (e *Engine) Unpause(caller [20]byte) error {
	return e.setPaused(caller, false)
}

func (e *Engine) setPaused(caller [20]byte, paused bool) error {
	if e == nil || e.state == nil {
		return errNilState
	}
	if !e.isAdmin(caller) {
		return fmt.Errorf("%w: admin required", ErrUnauthorized)
	}
	protocol, err := e.protocolState()
	if err != nil {
		return err
	}
	protocol.Paused = paused
	if err := e.state.ProtocolPut(protocol); err != nil {
		return err
	}
	e.emit(events.PauseChanged{Paused: paused, Admin: caller})
	return nil
}
