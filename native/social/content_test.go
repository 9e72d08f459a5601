package social

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

func TestCreateContent(t *testing.T) {
	env := newTestEnv(t)
	env.height = 10
	alice := env.mustProfile(t, addr(1), "alice")

	content, err := env.engine.CreateContent(addr(1), "hello world", ContentTypeText, "", 0)
	if err != nil {
		t.Fatalf("create content: %v", err)
	}
	if content.ID != 1 || content.AuthorID != alice.ID {
		t.Fatalf("unexpected content %+v", content)
	}
	if content.TipCount != 0 || content.TotalTips.Sign() != 0 || content.EngagementScore != 0 {
		t.Fatalf("expected zeroed counters, got %+v", content)
	}
	if content.CreatedAt != 10 {
		t.Fatalf("expected createdAt 10, got %d", content.CreatedAt)
	}

	storedAlice, _, _ := env.state.ProfileGet(alice.ID)
	if storedAlice.ContentCount != 1 {
		t.Fatalf("author content count not bumped, got %d", storedAlice.ContentCount)
	}

	bucket, ok, _ := env.state.EngagementGet(alice.ID, 0)
	if !ok || bucket.ContentPosted != 1 {
		t.Fatalf("content posting not recorded in engagement bucket: %+v", bucket)
	}
}

func TestCreateContentRequiresProfile(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.engine.CreateContent(addr(1), "text", ContentTypeText, "", 0); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestCreateContentValidation(t *testing.T) {
	env := newTestEnv(t)
	env.mustProfile(t, addr(1), "alice")

	if _, err := env.engine.CreateContent(addr(1), strings.Repeat("x", 1025), ContentTypeText, "", 0); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams for long text, got %v", err)
	}
	if _, err := env.engine.CreateContent(addr(1), "text", ContentType("gif"), "", 0); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams for unknown content type, got %v", err)
	}
	if _, err := env.engine.CreateContent(addr(1), "text", ContentTypeImage, "not-a-url", 0); !errors.Is(err, ErrInvalidURL) {
		t.Fatalf("expected ErrInvalidURL, got %v", err)
	}
}

func TestCreateContentClearsUnknownCommunity(t *testing.T) {
	env := newTestEnv(t)
	env.mustProfile(t, addr(1), "alice")

	content, err := env.engine.CreateContent(addr(1), "text", ContentTypeText, "", 404)
	if err != nil {
		t.Fatalf("create content: %v", err)
	}
	if content.CommunityID != 0 {
		t.Fatalf("unknown community must be cleared, got %d", content.CommunityID)
	}
}

func TestCreateContentKeepsKnownCommunity(t *testing.T) {
	env := newTestEnv(t)
	env.mustProfile(t, addr(1), "alice")
	community, err := env.engine.CreateCommunity(addr(1), "gophers", "", "GPH", big.NewInt(1_000))
	if err != nil {
		t.Fatalf("create community: %v", err)
	}

	content, err := env.engine.CreateContent(addr(1), "text", ContentTypeText, "", community.ID)
	if err != nil {
		t.Fatalf("create content: %v", err)
	}
	if content.CommunityID != community.ID {
		t.Fatalf("expected community %d, got %d", community.ID, content.CommunityID)
	}
}

func TestCreateContentRejectedWhilePaused(t *testing.T) {
	env := newTestEnv(t)
	env.mustProfile(t, addr(1), "alice")
	if err := env.engine.Pause(adminAddr); err != nil {
		t.Fatalf("pause: %v", err)
	}

	if _, err := env.engine.CreateContent(addr(1), "text", ContentTypeText, "", 0); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized while paused, got %v", err)
	}
}
