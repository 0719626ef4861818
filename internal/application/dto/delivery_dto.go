package dto

import "time"

// DeliveryAgentDTO agente embebido en la entrega.
type DeliveryAgentDTO struct {
	Name           string `json:"name"`
	Type           string `json:"type"` // waybill | logistic company | other
	Phone          string `json:"phone"`
	CompletedCount int    `json:"completed_count"`
}

// CreateDeliveryRequest payload de alta de entrega.
type CreateDeliveryRequest struct {
	Customer string           `json:"customer"`
	Package  string           `json:"package"`
	Date     time.Time        `json:"date"`
	Agent    DeliveryAgentDTO `json:"agent"`
	Status   string           `json:"status"` // por defecto pending
}

// UpdateDeliveryRequest payload parcial de actualización.
type UpdateDeliveryRequest struct {
	Customer *string           `json:"customer"`
	Package  *string           `json:"package"`
	Date     *time.Time        `json:"date"`
	Agent    *DeliveryAgentDTO `json:"agent"`
	Status   *string           `json:"status"`
}

// DeliveryResponse representación JSON de una entrega.
type DeliveryResponse struct {
	ID        string           `json:"id"`
	Customer  string           `json:"customer"`
	Package   string           `json:"package"`
	Date      time.Time        `json:"date"`
	Agent     DeliveryAgentDTO `json:"agent"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
