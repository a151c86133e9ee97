package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/shenikar/alertcare_dispatch/internal/service"
)

type PredictionRepository struct {
	db *pgxpool.Pool
}

func NewPredictionRepository(db *pgxpool.Pool) service.PredictionRepository {
	return &PredictionRepository{db: db}
}

// SaveIfLatest делает upsert по source_reading_id, если у пациента нет предсказания
// по более новому измерению. Возвращает false, если запись вытеснена.
func (r *PredictionRepository) SaveIfLatest(ctx context.Context, p *models.StabilityPrediction) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin prediction tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	// сериализуем запись предсказаний одного пациента
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0));`, "prediction:"+p.PatientID.String()); err != nil {
		return false, fmt.Errorf("failed to lock patient predictions: %w", err)
	}

	query := `
		INSERT INTO predictions (
			source_reading_id, patient_id, reading_at, score,
			edge_subscore, sequence_subscore, reconstruction_error, created_at
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8
		WHERE NOT EXISTS (
			SELECT 1 FROM predictions WHERE patient_id = $2 AND reading_at > $3
		)
		ON CONFLICT (source_reading_id) DO UPDATE SET
			score = EXCLUDED.score,
			edge_subscore = EXCLUDED.edge_subscore,
			sequence_subscore = EXCLUDED.sequence_subscore,
			reconstruction_error = EXCLUDED.reconstruction_error,
			created_at = EXCLUDED.created_at;
	`
	cmdTag, err := tx.Exec(ctx, query,
		p.SourceReadingID,
		p.PatientID,
		p.ReadingAt,
		p.Score,
		p.EdgeSubscore,
		p.SequenceSubscore,
		p.ReconstructionError,
		p.Timestamp,
	)
	if err != nil {
		return false, fmt.Errorf("failed to save prediction: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit prediction: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
