package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/julisunkan/maka/internal/db"
	"github.com/julisunkan/maka/internal/model"
	"github.com/julisunkan/maka/internal/port"
)

type VPNConfigRepository struct {
	db *sql.DB
}

// compile-time check: *VPNConfigRepository must satisfy port.VPNConfigRepository
var _ port.VPNConfigRepository = (*VPNConfigRepository)(nil)

func NewVPNConfigRepository(db *sql.DB) *VPNConfigRepository {
	return &VPNConfigRepository{db: db}
}

const vpnColumns = "id, filename, original_name, uploaded_at, is_active"

func (r *VPNConfigRepository) Create(ctx context.Context, cfg *model.VPNConfig) error {
	log.Printf("creating database record for VPN profile #%s (%q)...", cfg.ID, cfg.Filename)

	const query = `
      INSERT INTO vpn_configs (id, filename, original_name, uploaded_at, is_active)
      VALUES (?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		cfg.ID, cfg.Filename, cfg.OriginalName, cfg.UploadedAt, cfg.IsActive,
	)
	return err
}

func (r *VPNConfigRepository) GetByID(ctx context.Context, ID db.UUID) (*model.VPNConfig, error) {
	const query = "SELECT " + vpnColumns + " FROM vpn_configs WHERE id = ?"
	return scanVPNConfig(r.db.QueryRowContext(ctx, query, ID))
}

func (r *VPNConfigRepository) GetActive(ctx context.Context) (*model.VPNConfig, error) {
	const query = "SELECT " + vpnColumns + " FROM vpn_configs WHERE is_active = 1 LIMIT 1"
	return scanVPNConfig(r.db.QueryRowContext(ctx, query))
}

func (r *VPNConfigRepository) List(ctx context.Context) ([]model.VPNConfig, error) {
	const query = "SELECT " + vpnColumns + " FROM vpn_configs ORDER BY uploaded_at DESC"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []model.VPNConfig
	for rows.Next() {
		var cfg model.VPNConfig
		if err := rows.Scan(&cfg.ID, &cfg.Filename, &cfg.OriginalName, &cfg.UploadedAt, &cfg.IsActive); err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}

func (r *VPNConfigRepository) SetActive(ctx context.Context, ID db.UUID) error {
	log.Printf("flagging VPN profile #%s active...", ID)

	const query = "UPDATE vpn_configs SET is_active = 1 WHERE id = ?"
	_, err := r.db.ExecContext(ctx, query, ID)
	return err
}

func (r *VPNConfigRepository) DeactivateAll(ctx context.Context) error {
	const query = "UPDATE vpn_configs SET is_active = 0"
	_, err := r.db.ExecContext(ctx, query)
	return err
}

func (r *VPNConfigRepository) Delete(ctx context.Context, ID db.UUID) error {
	log.Printf("deleting database record for VPN profile #%s...", ID)

	const query = "DELETE FROM vpn_configs WHERE id = ?"
	_, err := r.db.ExecContext(ctx, query, ID)
	return err
}

func scanVPNConfig(row *sql.Row) (*model.VPNConfig, error) {
	var cfg model.VPNConfig
	if err := row.Scan(&cfg.ID, &cfg.Filename, &cfg.OriginalName, &cfg.UploadedAt, &cfg.IsActive); err != nil {
		return nil, err
	}
	return &cfg, nil
}
