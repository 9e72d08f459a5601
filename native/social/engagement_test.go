package social

import (
	"math/big"
	"testing"
)

func TestEngagementPeriodRollover(t *testing.T) {
	env := newTestEnv(t)
	alice := env.mustProfile(t, addr(1), "alice")

	env.height = 100 // period 0
	env.mustContent(t, addr(1), "first")
	env.height = 2_016 // period 1
	env.mustContent(t, addr(1), "second")
	env.mustContent(t, addr(1), "third")

	first, ok, _ := env.state.EngagementGet(alice.ID, 0)
	if !ok || first.ContentPosted != 1 {
		t.Fatalf("period 0 bucket wrong: %+v", first)
	}
	second, ok, _ := env.state.EngagementGet(alice.ID, 1)
	if !ok || second.ContentPosted != 2 {
		t.Fatalf("period 1 bucket wrong: %+v", second)
	}
	// Rollover starts a new bucket; the old one is untouched.
	if first.EngagementScore != 1 || second.EngagementScore != 2 {
		t.Fatalf("engagement scores wrong: %d, %d", first.EngagementScore, second.EngagementScore)
	}
}

func TestEngagementAggregatesPerSide(t *testing.T) {
	env := newTestEnv(t)
	alice := env.mustProfile(t, addr(1), "alice")
	bob := env.mustProfile(t, addr(2), "bob")
	content := env.mustContent(t, addr(2), "post")
	env.fund(addr(1), 10_000)

	if _, err := env.engine.TipContent(addr(1), content.ID, big.NewInt(1_000), ""); err != nil {
		t.Fatalf("tip: %v", err)
	}

	sent, _, _ := env.state.EngagementGet(alice.ID, 0)
	if sent.TipsSent != 1 || sent.TipsReceived != 0 {
		t.Fatalf("tipper bucket wrong: %+v", sent)
	}
	received, _, _ := env.state.EngagementGet(bob.ID, 0)
	if received.TipsReceived != 1 || received.TipsSent != 0 {
		t.Fatalf("author bucket wrong: %+v", received)
	}
	// Bob also posted content into the same bucket.
	if received.ContentPosted != 1 {
		t.Fatalf("author contentPosted = %d, want 1", received.ContentPosted)
	}
}

func TestEngagementQueryAbsentPeriod(t *testing.T) {
	env := newTestEnv(t)
	alice := env.mustProfile(t, addr(1), "alice")

	if _, ok, err := env.engine.EngagementFor(alice.ID, 7); err != nil || ok {
		t.Fatalf("absent period must report (nil, false, nil), got ok=%v err=%v", ok, err)
	}
}
