package dto

import "github.com/shopspring/decimal"

// TopServiceDTO servicio más vendido por cantidad en el periodo.
type TopServiceDTO struct {
	ServiceID string          `json:"service_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// TopCustomerDTO cliente con mayor facturación en el periodo.
type TopCustomerDTO struct {
	CustomerID string          `json:"customer_id"`
	Name       string          `json:"name"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// StatusCountDTO conteo de entidades por estado.
type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DashboardSummaryDTO KPIs del negocio para el dashboard.
// RevenueLastMonth cubre el mes calendario anterior completo; los demás
// indicadores de rango, el mes en curso (PeriodLabel).
type DashboardSummaryDTO struct {
	RevenueLastMonth  decimal.Decimal  `json:"revenue_last_month"`
	AverageOrderValue decimal.Decimal  `json:"average_order_value"`
	TopServices       []TopServiceDTO  `json:"top_services"`
	TopCustomers      []TopCustomerDTO `json:"top_customers"`
	InvoiceSummary    []StatusCountDTO `json:"invoice_summary"`
	TaskSummary       []StatusCountDTO `json:"task_summary"`
	AvgCycleHours     decimal.Decimal  `json:"avg_cycle_hours"`
	PeriodLabel       string           `json:"period_label"`
}
