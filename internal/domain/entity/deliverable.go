package entity

import "time"

// Estados de Deliverable (ciclo de vida independiente del de Order e Invoice).
const (
	DeliverableStatusPending    = "PENDING"
	DeliverableStatusInProgress = "IN_PROGRESS"
	DeliverableStatusReview     = "REVIEW"
	DeliverableStatusDone       = "DONE"
	DeliverableStatusCancelled  = "CANCELLED"
)

// ValidDeliverableStatus indica si s es un estado de entregable conocido.
func ValidDeliverableStatus(s string) bool {
	switch s {
	case DeliverableStatusPending, DeliverableStatusInProgress,
		DeliverableStatusReview, DeliverableStatusDone, DeliverableStatusCancelled:
		return true
	}
	return false
}

// Deliverable representa una tarea/entregable asociado a una orden.
// Se asigna a lo sumo a uno de {Employee, Provider}, nunca a ambos.
type Deliverable struct {
	ID          string
	OrderID     string
	Description string
	Version     int
	Status      string
	EmployeeID  string // asignación interna (excluyente con ProviderID)
	ProviderID  string // asignación externa (excluyente con EmployeeID)
	DueDate     time.Time
	Feedback    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
