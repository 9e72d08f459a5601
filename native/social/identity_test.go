package social

import (
	"errors"
	"strings"
	"testing"
)

func TestCreateProfileSeedsDefaults(t *testing.T) {
	env := newTestEnv(t)
	env.height = 42

	profile := env.mustProfile(t, addr(1), "alice")
	if profile.ID != 1 {
		t.Fatalf("expected first profile id 1, got %d", profile.ID)
	}
	if profile.Reputation != 100 {
		t.Fatalf("expected seeded reputation 100, got %d", profile.Reputation)
	}
	if profile.Verified {
		t.Fatalf("new profile must not be verified")
	}
	if profile.CreatedAt != 42 {
		t.Fatalf("expected createdAt 42, got %d", profile.CreatedAt)
	}
	if profile.ContentCount != 0 || profile.FollowerCount != 0 || profile.FollowingCount != 0 {
		t.Fatalf("expected zeroed counters, got %+v", profile)
	}
	if profile.TotalTipsReceived.Sign() != 0 || profile.TotalTipsSent.Sign() != 0 {
		t.Fatalf("expected zeroed tip totals")
	}

	if id, ok, _ := env.state.ProfileIDByOwner(addr(1)); !ok || id != profile.ID {
		t.Fatalf("owner index not registered")
	}
	if id, ok, _ := env.state.ProfileIDByHandle("alice"); !ok || id != profile.ID {
		t.Fatalf("handle index not registered")
	}
}

func TestCreateProfileOnePerPrincipal(t *testing.T) {
	env := newTestEnv(t)
	env.mustProfile(t, addr(1), "alice")

	if _, err := env.engine.CreateProfile(addr(1), "alice2", "", ""); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreateProfileHandleUniqueness(t *testing.T) {
	env := newTestEnv(t)
	env.mustProfile(t, addr(1), "alice")

	if _, err := env.engine.CreateProfile(addr(2), "alice", "", ""); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams for duplicate handle, got %v", err)
	}
	if len(env.state.profiles) != 1 {
		t.Fatalf("expected exactly one profile, got %d", len(env.state.profiles))
	}
}

func TestCreateProfileValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name    string
		handle  string
		bio     string
		avatar  string
		wantErr error
	}{
		{"empty handle", "", "", "", ErrInvalidParams},
		{"long handle", strings.Repeat("h", 33), "", "", ErrInvalidParams},
		{"long bio", "bob", strings.Repeat("b", 257), "", ErrInvalidParams},
		{"relative avatar", "bob", "", "/avatar.png", ErrInvalidURL},
		{"ftp avatar", "bob", "", "ftp://cdn.example/a.png", ErrInvalidURL},
		{"long avatar", "bob", "", "https://cdn.example/" + strings.Repeat("a", 256), ErrInvalidURL},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := env.engine.CreateProfile(addr(9), tc.handle, tc.bio, tc.avatar); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateProfileRejectedWhilePaused(t *testing.T) {
	env := newTestEnv(t)
	if err := env.engine.Pause(adminAddr); err != nil {
		t.Fatalf("pause: %v", err)
	}

	if _, err := env.engine.CreateProfile(addr(1), "alice", "", ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized while paused, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	env.mustProfile(t, addr(1), "alice")

	updated, err := env.engine.UpdateProfile(addr(1), "new bio", "https://cdn.example/alice.png")
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Bio != "new bio" || updated.AvatarURL != "https://cdn.example/alice.png" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Handle != "alice" {
		t.Fatalf("handle must be immutable")
	}
}

func TestUpdateProfileWithoutProfile(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.engine.UpdateProfile(addr(1), "bio", ""); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestVerifyProfileAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	profile := env.mustProfile(t, addr(1), "alice")

	if err := env.engine.VerifyProfile(addr(1), profile.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for non-admin, got %v", err)
	}
	if err := env.engine.VerifyProfile(adminAddr, 999); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if err := env.engine.VerifyProfile(adminAddr, profile.ID); err != nil {
		t.Fatalf("verify: %v", err)
	}
	// Idempotent.
	if err := env.engine.VerifyProfile(adminAddr, profile.ID); err != nil {
		t.Fatalf("second verify: %v", err)
	}
	stored, _, _ := env.state.ProfileGet(profile.ID)
	if !stored.Verified {
		t.Fatalf("verified flag not set")
	}
}

func TestAdjustReputationOnlyIncreases(t *testing.T) {
	env := newTestEnv(t)
	profile := env.mustProfile(t, addr(1), "alice")

	if err := env.engine.AdjustReputation(profile.ID, 7); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if err := env.engine.AdjustReputation(profile.ID, 0); err != nil {
		t.Fatalf("zero adjust: %v", err)
	}
	stored, _, _ := env.state.ProfileGet(profile.ID)
	if stored.Reputation != 107 {
		t.Fatalf("expected reputation 107, got %d", stored.Reputation)
	}
}
