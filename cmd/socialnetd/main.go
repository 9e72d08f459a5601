package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"socialnet/config"
	"socialnet/core/ledger"
	"socialnet/core/state"
	"socialnet/native/social"
	"socialnet/observability"
	"socialnet/observability/logging"
	"socialnet/storage"
)

func main() {
	configFile := flag.String("config", "./config.toml", "Path to the configuration file")
	journalFile := flag.String("journal", "", "Path to a transition journal to apply (JSON lines)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	env := strings.TrimSpace(os.Getenv("SOCIALNET_ENV"))
	if env == "" {
		env = cfg.Environment
	}
	logger := logging.Setup("socialnetd", env, cfg.LogPath)

	db, err := storage.NewLevelDB(filepath.Join(cfg.DataDir, "socialnet"))
	if err != nil {
		logger.Error("Failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	host, err := newHost(cfg, db)
	if err != nil {
		logger.Error("Failed to initialise engine", slog.Any("error", err))
		os.Exit(1)
	}

	if *journalFile == "" {
		logger.Info("No journal supplied; nothing to apply")
		return
	}
	applied, failed, err := host.applyJournal(*journalFile, logger)
	if err != nil {
		logger.Error("Journal processing aborted", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Journal applied",
		slog.Int("applied", applied),
		slog.Int("failed", failed),
	)
}

// host serialises transitions against the shared state, committing each
// one atomically. It stands in for the out-of-scope consensus collaborator.
type host struct {
	manager *state.Manager
	book    *ledger.Book
	engine  *social.Engine
	height  uint64
}

func newHost(cfg *config.Config, db storage.Database) (*host, error) {
	manager := state.NewManager(db)
	book := ledger.NewBook(manager)

	engine := social.NewEngine()
	engine.SetState(manager)
	engine.SetLedger(book)

	params := social.DefaultParams()
	params.MinimumTip = new(big.Int).SetUint64(cfg.MinimumTip)
	params.FeeBasisPoints = cfg.FeeBasisPoints
	params.PeriodLength = cfg.EngagementPeriodLength
	if err := engine.SetParams(params); err != nil {
		return nil, err
	}
	admins, err := cfg.AdminAddresses()
	if err != nil {
		return nil, err
	}
	engine.SetAdmins(admins)

	h := &host{manager: manager, book: book, engine: engine}
	engine.SetHeightFunc(func() uint64 { return h.height })

	recipient, err := cfg.FeeRecipientAddress()
	if err != nil {
		return nil, err
	}
	if recipient != ([20]byte{}) {
		if err := h.seedFeeRecipient(recipient); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// seedFeeRecipient writes the configured recipient when state carries
// none, leaving any admin-set value in place.
func (h *host) seedFeeRecipient(recipient [20]byte) error {
	current, ok, err := h.manager.ProtocolGet()
	if err != nil {
		return err
	}
	if ok && current != nil && current.FeeRecipient != ([20]byte{}) {
		h.manager.Discard()
		return nil
	}
	if current == nil {
		current = &social.ProtocolState{TipVolume: big.NewInt(0)}
	}
	current.FeeRecipient = recipient
	if err := h.manager.ProtocolPut(current); err != nil {
		h.manager.Discard()
		return err
	}
	return h.manager.Commit()
}

// transition is one journal line. Amounts are minor units.
type transition struct {
	Op          string `json:"op"`
	Caller      string `json:"caller"`
	Height      uint64 `json:"height"`
	Handle      string `json:"handle"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatarUrl"`
	Text        string `json:"text"`
	ContentType string `json:"contentType"`
	MediaURL    string `json:"mediaUrl"`
	CommunityID uint64 `json:"communityId"`
	ContentID   uint64 `json:"contentId"`
	ProfileID   uint64 `json:"profileId"`
	Amount      uint64 `json:"amount"`
	Message     string `json:"message"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TokenSymbol string `json:"tokenSymbol"`
	Supply      uint64 `json:"supply"`
	Target      string `json:"target"`
}

func (h *host) applyJournal(path string, logger *slog.Logger) (applied, failed int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	metrics := observability.Metrics()
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		var t transition
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			return applied, failed, fmt.Errorf("journal line %d: %w", line, err)
		}
		if t.Height < h.height {
			return applied, failed, fmt.Errorf("journal line %d: height moved backwards", line)
		}
		h.height = t.Height
		applyErr := h.apply(t)
		metrics.ObserveTransition(t.Op, applyErr)
		if applyErr != nil {
			h.manager.Discard()
			failed++
			logger.Warn("Transition rejected",
				slog.String("op", t.Op),
				slog.Int("line", line),
				slog.Any("error", applyErr),
			)
			continue
		}
		if err := h.manager.Commit(); err != nil {
			return applied, failed, fmt.Errorf("journal line %d: commit: %w", line, err)
		}
		applied++
		if t.Op == "tip_content" {
			metrics.ObserveTipVolume(float64(t.Amount))
		}
	}
	return applied, failed, scanner.Err()
}

func (h *host) apply(t transition) error {
	caller, err := config.ParseAddress(t.Caller)
	if err != nil {
		return err
	}
	switch t.Op {
	case "mint":
		return h.book.Mint(caller, new(big.Int).SetUint64(t.Amount))
	case "create_profile":
		_, err := h.engine.CreateProfile(caller, t.Handle, t.Bio, t.AvatarURL)
		return err
	case "update_profile":
		_, err := h.engine.UpdateProfile(caller, t.Bio, t.AvatarURL)
		return err
	case "verify_profile":
		return h.engine.VerifyProfile(caller, t.ProfileID)
	case "follow":
		_, err := h.engine.FollowUser(caller, t.Handle)
		return err
	case "create_content":
		_, err := h.engine.CreateContent(caller, t.Text, social.ContentType(t.ContentType), t.MediaURL, t.CommunityID)
		return err
	case "tip_content":
		_, err := h.engine.TipContent(caller, t.ContentID, new(big.Int).SetUint64(t.Amount), t.Message)
		return err
	case "create_community":
		_, err := h.engine.CreateCommunity(caller, t.Name, t.Description, t.TokenSymbol, new(big.Int).SetUint64(t.Supply))
		return err
	case "join_community":
		_, err := h.engine.JoinCommunity(caller, t.CommunityID)
		return err
	case "set_fee_recipient":
		recipient, err := config.ParseAddress(t.Target)
		if err != nil {
			return err
		}
		return h.engine.SetFeeRecipient(caller, recipient)
	case "pause":
		return h.engine.Pause(caller)
	case "unpause":
		return h.engine.Unpause(caller)
	}
	return fmt.Errorf("unknown op %q", t.Op)
}
