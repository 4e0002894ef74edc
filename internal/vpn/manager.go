package vpn

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/logger"
	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/port"
)

var (
	// ErrConfigNotFound signals an unknown tunnel profile ID.
	ErrConfigNotFound = errors.New("VPN config not found")
	// ErrBinaryMissing signals that the tunnel binary is not installed.
	ErrBinaryMissing = errors.New("OpenVPN is not installed")
	// ErrUnsupportedConfig signals a profile upload that is not an .ovpn file.
	ErrUnsupportedConfig = errors.New("only .ovpn files are allowed")
)

// State is where the tunnel lifecycle currently stands. Transitions only
// move Inactive→Starting→Active and Active→Stopping→Inactive.
type State string

const (
	StateInactive State = "inactive"
	StateStarting State = "starting"
	StateActive   State = "active"
	StateStopping State = "stopping"
)

// Status merges the persisted active profile with the live process state.
type Status struct {
	IsActive     bool              `json:"is_active"`
	IsRunning    bool              `json:"is_running"`
	State        State             `json:"state"`
	ActiveConfig *model.VPNConfig  `json:"active_vpn"`
	AllConfigs   []model.VPNConfig `json:"all_vpns"`
}

// Manager owns the tunnel lifecycle: profile uploads, activation and the
// state machine around the runner. Safe for concurrent use.
type Manager struct {
	repo    port.VPNConfigRepository
	strg    port.Storage
	runner  Runner
	dir     string
	genUUID port.UUIDGen

	mu    sync.Mutex
	state State
}

// compile-time check: *Manager must satisfy port.TunnelStatus
var _ port.TunnelStatus = (*Manager)(nil)

func NewManager(repo port.VPNConfigRepository, strg port.Storage, runner Runner, dir string, genUUID port.UUIDGen) *Manager {
	return &Manager{
		repo:    repo,
		strg:    strg,
		runner:  runner,
		dir:     dir,
		genUUID: genUUID,
		state:   StateInactive,
	}
}

// State returns where the lifecycle currently stands.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// UploadConfig stores a tunnel profile and records it, inactive.
func (m *Manager) UploadConfig(ctx context.Context, originalName string, reader io.Reader) (*model.VPNConfig, error) {
	if !strings.HasSuffix(strings.ToLower(originalName), ".ovpn") {
		return nil, ErrUnsupportedConfig
	}

	stored, err := m.strg.SaveFile(ctx, originalName, reader)
	if err != nil {
		return nil, fmt.Errorf("save profile %q: %w", originalName, err)
	}

	cfg := &model.VPNConfig{
		ID:           m.genUUID(),
		Filename:     stored,
		OriginalName: originalName,
		UploadedAt:   time.Now().UTC(),
	}
	if err := m.repo.Create(ctx, cfg); err != nil {
		if rmErr := m.strg.RemoveFile(stored); rmErr != nil {
			logger.Warnf(ctx, "could not remove orphan profile %q: %v", stored, rmErr)
		}
		return nil, err
	}
	return cfg, nil
}

// Activate brings the tunnel up on the given profile, tearing down any
// previous one first. On failure the lifecycle lands back on Inactive with
// every profile deactivated.
func (m *Manager) Activate(ctx context.Context, id db.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg, err := m.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrConfigNotFound
		}
		return err
	}

	if err := m.runner.Available(); err != nil {
		return err
	}

	m.state = StateStarting

	if err := m.repo.DeactivateAll(ctx); err != nil {
		m.state = StateInactive
		return err
	}
	if err := m.runner.Stop(ctx); err != nil {
		logger.Warnf(ctx, "could not stop previous tunnel: %v", err)
	}

	if err := m.runner.Start(ctx, filepath.Join(m.dir, cfg.Filename)); err != nil {
		m.state = StateInactive
		return err
	}

	if err := m.repo.SetActive(ctx, id); err != nil {
		if stopErr := m.runner.Stop(ctx); stopErr != nil {
			logger.Warnf(ctx, "could not stop tunnel after activation failure: %v", stopErr)
		}
		m.state = StateInactive
		return err
	}

	m.state = StateActive
	logger.Infof(ctx, "✅  Tunnel up on profile #%s (%q)", id, cfg.Filename)
	return nil
}

// Deactivate tears the tunnel down and clears every active flag. Always
// lands on Inactive, even when nothing was running.
func (m *Manager) Deactivate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateStopping
	if err := m.runner.Stop(ctx); err != nil {
		logger.Warnf(ctx, "could not stop tunnel: %v", err)
	}
	err := m.repo.DeactivateAll(ctx)
	m.state = StateInactive
	if err != nil {
		return err
	}

	logger.Infof(ctx, "🛑  Tunnel down")
	return nil
}

// Status merges the persisted active flag with the live process state.
func (m *Manager) Status(ctx context.Context) (Status, error) {
	active, err := m.repo.GetActive(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Status{}, err
	}

	all, err := m.repo.List(ctx)
	if err != nil {
		return Status{}, err
	}
	if all == nil {
		all = []model.VPNConfig{}
	}

	return Status{
		IsActive:     active != nil,
		IsRunning:    m.runner.Running(ctx),
		State:        m.State(),
		ActiveConfig: active,
		AllConfigs:   all,
	}, nil
}

// DeleteConfig removes a profile, deactivating the tunnel first when the
// profile is the active one.
func (m *Manager) DeleteConfig(ctx context.Context, id db.UUID) error {
	cfg, err := m.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrConfigNotFound
		}
		return err
	}

	if cfg.IsActive {
		if err := m.Deactivate(ctx); err != nil {
			return err
		}
	}

	if err := m.strg.RemoveFile(cfg.Filename); err != nil {
		logger.Warnf(ctx, "could not remove profile file %q: %v", cfg.Filename, err)
	}
	return m.repo.Delete(ctx, id)
}

// IsTunnelActive reports whether a profile is flagged active AND the process
// is really up. Both playlist fetching and page browsing gate on this.
func (m *Manager) IsTunnelActive(ctx context.Context) bool {
	active, err := m.repo.GetActive(ctx)
	if err != nil || active == nil {
		return false
	}
	return m.runner.Running(ctx)
}
