package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/shenikar/alertcare_dispatch/internal/service"
)

type ReadingRepository struct {
	db *pgxpool.Pool
}

func NewReadingRepository(db *pgxpool.Pool) service.ReadingRepository {
	return &ReadingRepository{db: db}
}

// GetReading возвращает измерение по id
func (r *ReadingRepository) GetReading(ctx context.Context, id uuid.UUID) (*models.Reading, error) {
	query := `
		SELECT id, patient_id, recorded_at, blood_pressure, blood_glucose, heart_rate, activity
		FROM readings
		WHERE id = $1;
	`
	reading := &models.Reading{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reading.ID,
		&reading.PatientID,
		&reading.RecordedAt,
		&reading.BloodPressure,
		&reading.BloodGlucose,
		&reading.HeartRate,
		&reading.Activity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("reading %s: %w", id, service.ErrReadingNotFound)
		}
		return nil, fmt.Errorf("failed to get reading by id: %w", err)
	}
	return reading, nil
}

// ListWindow возвращает измерения пациента в [from, to] по возрастанию времени
func (r *ReadingRepository) ListWindow(ctx context.Context, patientID uuid.UUID, from, to time.Time) ([]*models.Reading, error) {
	query := `
		SELECT id, patient_id, recorded_at, blood_pressure, blood_glucose, heart_rate, activity
		FROM readings
		WHERE patient_id = $1 AND recorded_at >= $2 AND recorded_at <= $3
		ORDER BY recorded_at ASC, id ASC;
	`
	rows, err := r.db.Query(ctx, query, patientID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list readings window: %w", err)
	}
	defer rows.Close()

	readings := make([]*models.Reading, 0)
	for rows.Next() {
		reading := &models.Reading{}
		err := rows.Scan(
			&reading.ID,
			&reading.PatientID,
			&reading.RecordedAt,
			&reading.BloodPressure,
			&reading.BloodGlucose,
			&reading.HeartRate,
			&reading.Activity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reading row: %w", err)
		}
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error readings iteration: %w", err)
	}
	return readings, nil
}
