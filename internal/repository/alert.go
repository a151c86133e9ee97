package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/shenikar/alertcare_dispatch/internal/service"
)

const alertColumns = `id, patient_id, recipient_type, recipient_id, category, message, priority, acknowledged, created_at, acknowledged_at`

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

// InsertUnlessSuppressed выполняет проверку и вставку в одной транзакции под
// advisory-блокировкой получателя, чтобы два параллельных предсказания не создали дубль
func (r *AlertRepository) InsertUnlessSuppressed(ctx context.Context, alert *models.Alert, suppress bool) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin alert tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if suppress {
		lockKey := fmt.Sprintf("alert:%s:%s:%s", alert.PatientID, alert.RecipientType, alert.RecipientID)
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0));`, lockKey); err != nil {
			return false, fmt.Errorf("failed to lock recipient alerts: %w", err)
		}

		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM alerts
				WHERE patient_id = $1
					AND recipient_type = $2
					AND recipient_id = $3
					AND acknowledged = FALSE
					AND priority_rank >= $4
			);
		`, alert.PatientID, alert.RecipientType, alert.RecipientID, alert.Priority.Rank()).Scan(&exists)
		if err != nil {
			return false, fmt.Errorf("failed to check pending alerts: %w", err)
		}
		if exists {
			return false, nil
		}
	}

	query := `
		INSERT INTO alerts (id, patient_id, recipient_type, recipient_id, category, message, priority, priority_rank, acknowledged, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9);
	`
	_, err = tx.Exec(ctx, query,
		alert.ID,
		alert.PatientID,
		alert.RecipientType,
		alert.RecipientID,
		alert.Category,
		alert.Message,
		alert.Priority,
		alert.Priority.Rank(),
		alert.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert alert: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit alert: %w", err)
	}
	return true, nil
}

// List возвращает алерты получателя, новые первыми
func (r *AlertRepository) List(ctx context.Context, filter models.AlertFilter) ([]*models.Alert, error) {
	conditions := []string{"recipient_type = $1", "recipient_id = $2"}
	args := []any{filter.RecipientType, filter.RecipientID}
	if filter.Acknowledged != nil {
		args = append(args, *filter.Acknowledged)
		conditions = append(conditions, fmt.Sprintf("acknowledged = $%d", len(args)))
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM alerts
		WHERE %s
		ORDER BY created_at DESC;
	`, alertColumns, strings.Join(conditions, " AND "))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error alerts iteration: %w", err)
	}
	return alerts, nil
}

// Acknowledge помечает алерт подтвержденным; время первого подтверждения сохраняется
func (r *AlertRepository) Acknowledge(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	query := fmt.Sprintf(`
		UPDATE alerts SET
			acknowledged = TRUE,
			acknowledged_at = COALESCE(acknowledged_at, NOW())
		WHERE id = $1
		RETURNING %s;
	`, alertColumns)

	alert, err := scanAlert(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert %s: %w", id, service.ErrAlertNotFound)
		}
		return nil, fmt.Errorf("failed to acknowledge alert: %w", err)
	}
	return alert, nil
}

func scanAlert(row pgx.Row) (*models.Alert, error) {
	alert := &models.Alert{}
	err := row.Scan(
		&alert.ID,
		&alert.PatientID,
		&alert.RecipientType,
		&alert.RecipientID,
		&alert.Category,
		&alert.Message,
		&alert.Priority,
		&alert.Acknowledged,
		&alert.CreatedAt,
		&alert.AcknowledgedAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}
