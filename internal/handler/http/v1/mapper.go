package v1

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/alertcare_dispatch/internal/models"
)

// QueryToAlertFilter преобразует провалидированные параметры запроса в фильтр
func QueryToAlertFilter(q AlertsQuery) models.AlertFilter {
	return models.AlertFilter{
		RecipientType: models.RecipientType(q.RecipientType),
		RecipientID:   uuid.MustParse(q.RecipientID),
		Acknowledged:  q.Acknowledged,
	}
}

func DTOToDispatchRequest(dto ExecuteDispatchRequest) models.DispatchRequest {
	return models.DispatchRequest{
		PatientID:  dto.PatientID,
		FacilityID: strings.TrimSpace(dto.FacilityID),
		Sector:     dto.Sector,
		Condition:  dto.Condition,
	}
}

func DTOToOverrideRequest(dto SetOverrideRequest) models.OverrideRequest {
	return models.OverrideRequest{
		AllowDispatch: *dto.AllowDispatch,
		Reason:        dto.Reason,
		SetBy:         dto.SetBy,
	}
}

// ModelToAlertResponse преобразует доменную модель в DTO для ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:             model.ID,
		PatientID:      model.PatientID,
		RecipientType:  string(model.RecipientType),
		RecipientID:    model.RecipientID,
		Category:       string(model.Category),
		Message:        model.Message,
		Priority:       string(model.Priority),
		Acknowledged:   model.Acknowledged,
		CreatedAt:      model.CreatedAt,
		AcknowledgedAt: model.AcknowledgedAt,
	}
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(models []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}
