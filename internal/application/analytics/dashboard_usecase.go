// Package analytics contiene los casos de uso para los KPIs de negocio del
// dashboard operativo.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

const dashboardTopN = 5 // número de servicios y clientes en los widgets del dashboard

// DashboardUseCase genera el resumen de KPIs del mes en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a las tablas de órdenes o pagos; delega todo en el
// repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Periodos: RevenueLastMonth se calcula sobre el mes calendario anterior
// completo; el resto de KPIs de rango usan el mes en curso.
//
// Llamadas en paralelo:
//  1. RevenueBetween(mes anterior) → RevenueLastMonth
//  2. AverageOrderValue(mes)       → AverageOrderValue
//  3. TopServices(mes, top 5)      → TopServices
//  4. TopCustomers(mes, top 5)     → TopCustomers
//  5. InvoiceStatusCounts          → InvoiceSummary
//  6. DeliverableStatusCounts      → TaskSummary
//  7. AverageCycleHours(mes)       → AvgCycleHours
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Mes calendario anterior completo
	prevMonthStart := monthStart.AddDate(0, -1, 0)
	prevMonthEnd := monthStart.Add(-time.Nanosecond)

	type decimalResult struct {
		value decimal.Decimal
		err   error
	}
	type topServicesResult struct {
		services []dto.TopServiceDTO
		err      error
	}
	type topCustomersResult struct {
		customers []dto.TopCustomerDTO
		err       error
	}
	type countsResult struct {
		counts []dto.StatusCountDTO
		err    error
	}

	revenueCh := make(chan decimalResult, 1)
	avgOrderCh := make(chan decimalResult, 1)
	servicesCh := make(chan topServicesResult, 1)
	customersCh := make(chan topCustomersResult, 1)
	invoicesCh := make(chan countsResult, 1)
	tasksCh := make(chan countsResult, 1)
	cycleCh := make(chan decimalResult, 1)

	go func() {
		v, err := uc.analyticsRepo.RevenueBetween(ctx, prevMonthStart, prevMonthEnd)
		revenueCh <- decimalResult{v, err}
	}()
	go func() {
		v, err := uc.analyticsRepo.AverageOrderValue(ctx, monthStart, monthEnd)
		avgOrderCh <- decimalResult{v, err}
	}()
	go func() {
		s, err := uc.analyticsRepo.TopServices(ctx, monthStart, monthEnd, dashboardTopN)
		servicesCh <- topServicesResult{s, err}
	}()
	go func() {
		c, err := uc.analyticsRepo.TopCustomers(ctx, monthStart, monthEnd, dashboardTopN)
		customersCh <- topCustomersResult{c, err}
	}()
	go func() {
		c, err := uc.analyticsRepo.InvoiceStatusCounts(ctx)
		invoicesCh <- countsResult{c, err}
	}()
	go func() {
		c, err := uc.analyticsRepo.DeliverableStatusCounts(ctx)
		tasksCh <- countsResult{c, err}
	}()
	go func() {
		v, err := uc.analyticsRepo.AverageCycleHours(ctx, monthStart, monthEnd)
		cycleCh <- decimalResult{v, err}
	}()

	revenue := <-revenueCh
	avgOrder := <-avgOrderCh
	services := <-servicesCh
	customers := <-customersCh
	invoices := <-invoicesCh
	tasks := <-tasksCh
	cycle := <-cycleCh

	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos del mes: %w", revenue.err)
	}
	if avgOrder.err != nil {
		return nil, fmt.Errorf("dashboard: valor medio de orden: %w", avgOrder.err)
	}
	if services.err != nil {
		return nil, fmt.Errorf("dashboard: top servicios: %w", services.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: top clientes: %w", customers.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("dashboard: facturas por estado: %w", invoices.err)
	}
	if tasks.err != nil {
		return nil, fmt.Errorf("dashboard: entregables por estado: %w", tasks.err)
	}
	if cycle.err != nil {
		return nil, fmt.Errorf("dashboard: ciclo medio de entrega: %w", cycle.err)
	}

	return &dto.DashboardSummaryDTO{
		RevenueLastMonth:  revenue.value.Round(2),
		AverageOrderValue: avgOrder.value.Round(2),
		TopServices:       services.services,
		TopCustomers:      customers.customers,
		InvoiceSummary:    invoices.counts,
		TaskSummary:       tasks.counts,
		AvgCycleHours:     cycle.value.Round(1),
		PeriodLabel:       monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
