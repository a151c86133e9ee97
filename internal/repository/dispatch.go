package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/shenikar/alertcare_dispatch/internal/service"
)

type TicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) service.TicketRepository {
	return &TicketRepository{db: db}
}

// Create сохраняет тикет вместе со снимком ресурсов на момент фиксации
func (r *TicketRepository) Create(ctx context.Context, ticket *models.DispatchTicket) error {
	resources, err := json.Marshal(ticket.ResourcesAtCommit)
	if err != nil {
		return fmt.Errorf("failed to marshal ticket resources: %w", err)
	}

	query := `
		INSERT INTO dispatch_tickets (id, patient_id, facility_id, eta_minutes, resources_at_commit, status, sector, condition, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = r.db.Exec(ctx, query,
		ticket.ID,
		ticket.PatientID,
		ticket.FacilityID,
		ticket.ETAMinutes,
		resources,
		ticket.Status,
		ticket.Sector,
		ticket.Condition,
		ticket.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create dispatch ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*models.DispatchTicket, error) {
	query := `
		SELECT id, patient_id, facility_id, eta_minutes, resources_at_commit, status, sector, condition, created_at
		FROM dispatch_tickets
		WHERE patient_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]*models.DispatchTicket, 0)
	for rows.Next() {
		t := &models.DispatchTicket{}
		var resources []byte
		err := rows.Scan(
			&t.ID,
			&t.PatientID,
			&t.FacilityID,
			&t.ETAMinutes,
			&resources,
			&t.Status,
			&t.Sector,
			&t.Condition,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket row: %w", err)
		}
		if err := json.Unmarshal(resources, &t.ResourcesAtCommit); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket resources: %w", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error tickets iteration: %w", err)
	}
	return tickets, nil
}
