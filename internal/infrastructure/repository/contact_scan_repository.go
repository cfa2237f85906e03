package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	domain "github.com/mohammadpnp/contact-import/internal/domain/contact"
)

type rowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ domain.ContactScanner = (*ContactScanRepository)(nil)

// ContactScanRepository streams active contacts straight from pgx for duplicate review.
type ContactScanRepository struct {
	pool rowQuerier
}

func NewContactScanRepository(pool rowQuerier) *ContactScanRepository {
	return &ContactScanRepository{pool: pool}
}

func (r *ContactScanRepository) ListActiveSnapshots(ctx context.Context, ownerID string) ([]domain.ContactSnapshot, error) {
	rows, err := r.pool.Query(ctx, `
SELECT
  c.id::text,
  c.first_name,
  c.last_name,
  COALESCE(c.email, ''),
  c.phone,
  COALESCE(co.name, ''),
  c.created_at
FROM contacts c
LEFT JOIN companies co ON co.id = c.company_id
WHERE c.user_id = $1 AND c.is_active
ORDER BY c.created_at ASC
`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query active contacts: %w", err)
	}

	snapshots, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ContactSnapshot, error) {
		var s domain.ContactSnapshot
		err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Phone, &s.CompanyName, &s.CreatedAt)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan active contacts: %w", err)
	}

	return snapshots, nil
}
