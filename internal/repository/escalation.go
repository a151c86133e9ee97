package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/shenikar/alertcare_dispatch/internal/service"
)

type EscalationRepository struct {
	db *pgxpool.Pool
}

func NewEscalationRepository(db *pgxpool.Pool) service.EscalationRepository {
	return &EscalationRepository{db: db}
}

// CreateWithGrant пишет эскалацию и временный доступ учреждения одной транзакцией
func (r *EscalationRepository) CreateWithGrant(ctx context.Context, e *models.Escalation, grant *models.AccessGrant) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin escalation tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	_, err = tx.Exec(ctx, `
		INSERT INTO escalations (id, patient_id, doctor_id, facility_id, reason, distance_km, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`, e.ID, e.PatientID, e.DoctorID, e.FacilityID, e.Reason, e.DistanceKm, e.Status, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert escalation: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO facility_access_grants (patient_id, facility_id, granted_by, granted_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (patient_id, facility_id) DO UPDATE SET
			granted_by = EXCLUDED.granted_by,
			granted_at = EXCLUDED.granted_at,
			expires_at = EXCLUDED.expires_at;
	`, grant.PatientID, grant.FacilityID, grant.GrantedBy, grant.GrantedAt, grant.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to upsert access grant: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit escalation: %w", err)
	}
	return nil
}
