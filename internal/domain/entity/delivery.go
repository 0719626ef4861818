package entity

import "time"

// Estados válidos para Delivery y tipos de agente.
const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusCompleted = "completed"
	DeliveryStatusCancelled = "cancelled"

	AgentTypeWaybill  = "waybill"
	AgentTypeLogistic = "logistic company"
	AgentTypeOther    = "other"
)

// DeliveryAgent es el agente embebido en la entrega (no es una colección propia).
type DeliveryAgent struct {
	Name           string
	Type           string // waybill, logistic company, other
	Phone          string
	CompletedCount int
}

// Delivery representa una entrega de paquete a un cliente. Propiedad de un User.
// Transiciones: pending -> completed, pending -> cancelled. No se sale de
// completed ni de cancelled.
type Delivery struct {
	ID        string
	UserID    string
	Customer  string
	Package   string
	Date      time.Time
	Agent     DeliveryAgent
	Status    string // pending, completed, cancelled
	CreatedAt time.Time
	UpdatedAt time.Time
}
