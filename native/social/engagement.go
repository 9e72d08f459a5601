package social

import "socialnet/core/events"

// Engagement activity kinds recorded into the per-profile period buckets.
const (
	engagementContentPosted = "content_posted"
	engagementTipSent       = "tip_sent"
	engagementTipReceived   = "tip_received"
)

// recordEngagement bumps the caller's aggregate for the current period.
// A period rollover simply lands in a fresh record under the new key;
// nothing is ever reset in place.
func (e *Engine) recordEngagement(profileID uint64, kind string) error {
	period := periodFor(e.height(), e.params.PeriodLength)
	bucket, ok, err := e.state.EngagementGet(profileID, period)
	if err != nil {
		return err
	}
	if !ok || bucket == nil {
		bucket = &EngagementPeriod{ProfileID: profileID, Period: period}
	}
	switch kind {
	case engagementContentPosted:
		bucket.ContentPosted++
	case engagementTipSent:
		bucket.TipsSent++
	case engagementTipReceived:
		bucket.TipsReceived++
	}
	bucket.EngagementScore++
	if err := e.state.EngagementPut(bucket); err != nil {
		return err
	}
	e.emit(events.EngagementRecorded{ProfileID: profileID, Period: period, Kind: kind})
	return nil
}
