// Package orders contiene los casos de uso de órdenes: cabecera, líneas de
// servicio con captura histórica de precio y recálculo síncrono del total.
package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Gestion-api/internal/application/audit"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	domaincatalog "github.com/jhoicas/Gestion-api/internal/domain/catalog"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	domainorders "github.com/jhoicas/Gestion-api/internal/domain/orders"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// OrderUseCase casos de uso de órdenes.
type OrderUseCase struct {
	txRunner        TxRunner
	orderRepo       repository.OrderRepository
	customerRepo    repository.CustomerRepository
	employeeRepo    repository.EmployeeRepository
	serviceRepo     repository.ServiceRepository
	priceRepo       repository.PriceRepository
	deliverableRepo repository.DeliverableRepository
	auditRec        *audit.Recorder
	defaultCurrency string
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	employeeRepo repository.EmployeeRepository,
	serviceRepo repository.ServiceRepository,
	priceRepo repository.PriceRepository,
	deliverableRepo repository.DeliverableRepository,
	auditRec *audit.Recorder,
	defaultCurrency string,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:        txRunner,
		orderRepo:       orderRepo,
		customerRepo:    customerRepo,
		employeeRepo:    employeeRepo,
		serviceRepo:     serviceRepo,
		priceRepo:       priceRepo,
		deliverableRepo: deliverableRepo,
		auditRec:        auditRec,
		defaultCurrency: defaultCurrency,
	}
}

// Create crea una orden en estado DRAFT con date_received = ahora.
// Si vienen líneas, se insertan en la misma transacción y el total queda
// calculado antes del commit.
func (uc *OrderUseCase) Create(ctx context.Context, actorID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.EmployeeID != "" {
		employee, err := uc.employeeRepo.GetByID(in.EmployeeID)
		if err != nil || employee == nil {
			return nil, domain.ErrNotFound
		}
	}
	priority := in.Priority
	if priority == 0 {
		priority = 3
	}
	if priority < 1 || priority > 5 {
		return nil, domain.ErrInvalidInput
	}
	var dateRequired time.Time
	if in.DateRequired != "" {
		parsed, err := time.Parse(dateLayout, in.DateRequired)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		dateRequired = parsed
	}

	// Resolver precios fuera de la tx (solo lectura del catálogo)
	items := make([]*entity.OrderService, 0, len(in.Items))
	for i := range in.Items {
		item, err := uc.buildItem("", &in.Items[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	now := time.Now()
	order := &entity.Order{
		ID:           uuid.New().String(),
		CustomerID:   in.CustomerID,
		EmployeeID:   in.EmployeeID,
		Status:       entity.OrderStatusDraft,
		Priority:     priority,
		DateReceived: now,
		DateRequired: dateRequired,
		TotalAmount:  decimal.Zero,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, item := range items {
			item.OrderID = order.ID
			if err := orderRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return recalculateOrderTotal(orderRepo, order)
	})
	if err != nil {
		return nil, err
	}
	uc.auditRec.Record(actorID, audit.ActionCreate, "order", order.ID, "")
	return uc.toOrderResponse(order, items, nil), nil
}

// GetByID obtiene una orden con líneas y entregables. Si ownCustomerID no es
// vacío (cuenta de cliente), solo se entregan órdenes de ese cliente.
func (uc *OrderUseCase) GetByID(id, ownCustomerID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if ownCustomerID != "" && order.CustomerID != ownCustomerID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.orderRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	deliverables, err := uc.deliverableRepo.ListByOrder(id)
	if err != nil {
		return nil, err
	}
	return uc.toOrderResponse(order, items, deliverables), nil
}

// List lista órdenes con filtros y paginación. ownCustomerID fuerza el filtro
// de cliente para cuentas con permiso de solo-propias.
func (uc *OrderUseCase) List(customerID, status, ownCustomerID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.Normalize()
	if ownCustomerID != "" {
		customerID = ownCustomerID
	}
	filter := repository.OrderFilter{
		CustomerID: customerID,
		Status:     status,
		Limit:      page.Limit(),
		Offset:     page.Offset(),
	}
	list, err := uc.orderRepo.List(filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.orderRepo.Count(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *uc.toOrderResponse(o, nil, nil))
	}
	return &dto.OrderListResponse{
		Items: items,
		Meta:  dto.PageResponse{Page: page.Page, PerPage: dto.PerPage, Total: total},
	}, nil
}

// Update actualiza la cabecera. El cambio de estado compara el anterior con el
// nuevo en cada guardado: entrar a DELIVERED sella completed_at, salir lo
// limpia. Una orden CANCELLED no admite más transiciones.
func (uc *OrderUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != "" {
		if !entity.ValidOrderStatus(in.Status) {
			return nil, domain.ErrInvalidInput
		}
		if order.Status == entity.OrderStatusCancelled && in.Status != entity.OrderStatusCancelled {
			return nil, domain.ErrConflict
		}
		order.CompletedAt = domainorders.ResolveCompletedAt(order.Status, in.Status, order.CompletedAt, time.Now())
		order.Status = in.Status
	}
	if in.EmployeeID != "" {
		employee, err := uc.employeeRepo.GetByID(in.EmployeeID)
		if err != nil || employee == nil {
			return nil, domain.ErrNotFound
		}
		order.EmployeeID = in.EmployeeID
	}
	if in.Priority != 0 {
		if in.Priority < 1 || in.Priority > 5 {
			return nil, domain.ErrInvalidInput
		}
		order.Priority = in.Priority
	}
	if in.DateRequired != "" {
		parsed, err := time.Parse(dateLayout, in.DateRequired)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		order.DateRequired = parsed
	}
	if in.Notes != "" {
		order.Notes = in.Notes
	}
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	uc.auditRec.Record(actorID, audit.ActionUpdate, "order", order.ID, "status="+order.Status)
	items, _ := uc.orderRepo.ListItems(id)
	return uc.toOrderResponse(order, items, nil), nil
}

// Delete elimina una orden. Solo DRAFT o CANCELLED pueden eliminarse.
func (uc *OrderUseCase) Delete(ctx context.Context, actorID, id string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusDraft && order.Status != entity.OrderStatusCancelled {
		return domain.ErrConflict
	}
	if err := uc.orderRepo.Delete(id); err != nil {
		return err
	}
	uc.auditRec.Record(actorID, audit.ActionDelete, "order", id, "")
	return nil
}

// ── Líneas ────────────────────────────────────────────────────────────────────

// AddItem agrega una línea y recalcula el total de la orden en la misma
// transacción. Si el precio viene en cero se captura el precio vigente del
// catálogo en la moneda de referencia (foto histórica).
func (uc *OrderUseCase) AddItem(ctx context.Context, actorID, orderID string, in dto.CreateOrderItemRequest) (*dto.OrderItemResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.buildItem(orderID, &in)
	if err != nil {
		return nil, err
	}
	err = uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository) error {
		if err := orderRepo.CreateItem(item); err != nil {
			return err
		}
		return recalculateOrderTotal(orderRepo, order)
	})
	if err != nil {
		return nil, err
	}
	uc.auditRec.Record(actorID, audit.ActionCreate, "order_item", item.ID, "order="+orderID)
	return toItemResponse(item), nil
}

// UpdateItem modifica cantidad, precio o nota de una línea y recalcula el total.
func (uc *OrderUseCase) UpdateItem(ctx context.Context, actorID, itemID string, in dto.UpdateOrderItemRequest) (*dto.OrderItemResponse, error) {
	item, err := uc.orderRepo.GetItemByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	order, err := uc.orderRepo.GetByID(item.OrderID)
	if err != nil || order == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity != 0 {
		if in.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = in.Quantity
	}
	if !in.UnitPrice.IsZero() {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.UnitPrice = in.UnitPrice
	}
	if in.Note != "" {
		item.Note = in.Note
	}
	item.UpdatedAt = time.Now()
	err = uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository) error {
		if err := orderRepo.UpdateItem(item); err != nil {
			return err
		}
		return recalculateOrderTotal(orderRepo, order)
	})
	if err != nil {
		return nil, err
	}
	uc.auditRec.Record(actorID, audit.ActionUpdate, "order_item", item.ID, "")
	return toItemResponse(item), nil
}

// DeleteItem elimina una línea y recalcula el total.
func (uc *OrderUseCase) DeleteItem(ctx context.Context, actorID, itemID string) error {
	item, err := uc.orderRepo.GetItemByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	order, err := uc.orderRepo.GetByID(item.OrderID)
	if err != nil || order == nil {
		return domain.ErrNotFound
	}
	err = uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository) error {
		if err := orderRepo.DeleteItem(itemID); err != nil {
			return err
		}
		return recalculateOrderTotal(orderRepo, order)
	})
	if err != nil {
		return err
	}
	uc.auditRec.Record(actorID, audit.ActionDelete, "order_item", itemID, "order="+item.OrderID)
	return nil
}

// recalculateOrderTotal recalcula Σ(precio × cantidad) sobre las líneas vivas
// y lo persiste de inmediato. Llamada explícita en la ruta de escritura: el
// flujo de datos es trazable sin un bus de eventos oculto.
func recalculateOrderTotal(orderRepo repository.OrderRepository, order *entity.Order) error {
	items, err := orderRepo.ListItems(order.ID)
	if err != nil {
		return err
	}
	total := domainorders.ComputeTotal(items)
	order.TotalAmount = total
	order.UpdatedAt = time.Now()
	return orderRepo.UpdateTotal(order.ID, total, order.UpdatedAt)
}

// buildItem valida la línea y captura el precio: el explícito si viene, o el
// vigente del catálogo en la moneda de referencia.
func (uc *OrderUseCase) buildItem(orderID string, in *dto.CreateOrderItemRequest) (*entity.OrderService, error) {
	if in.ServiceID == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	service, err := uc.serviceRepo.GetByID(in.ServiceID)
	if err != nil || service == nil {
		return nil, domain.ErrNotFound
	}
	currency := in.Currency
	if currency == "" {
		currency = uc.defaultCurrency
	}
	unitPrice := in.UnitPrice
	if unitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if unitPrice.IsZero() {
		prices, err := uc.priceRepo.ListByService(in.ServiceID)
		if err != nil {
			return nil, err
		}
		current := domaincatalog.ResolveCurrentPrice(prices, currency, time.Now())
		if current == nil {
			return nil, domain.ErrNoPrice
		}
		unitPrice = current.Amount
		currency = current.Currency
	}
	now := time.Now()
	return &entity.OrderService{
		ID:        uuid.New().String(),
		OrderID:   orderID,
		ServiceID: in.ServiceID,
		Quantity:  in.Quantity,
		UnitPrice: unitPrice,
		Currency:  currency,
		Note:      in.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (uc *OrderUseCase) toOrderResponse(o *entity.Order, items []*entity.OrderService, deliverables []*entity.Deliverable) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		EmployeeID:   o.EmployeeID,
		Status:       o.Status,
		Priority:     o.Priority,
		DateReceived: o.DateReceived,
		CompletedAt:  o.CompletedAt,
		TotalAmount:  o.TotalAmount,
		Notes:        o.Notes,
	}
	if !o.DateRequired.IsZero() {
		resp.DateRequired = o.DateRequired.Format(dateLayout)
	}
	for _, it := range items {
		resp.Items = append(resp.Items, *toItemResponse(it))
	}
	for _, d := range deliverables {
		resp.Deliverables = append(resp.Deliverables, *toDeliverableResponse(d))
	}
	return resp
}

func toItemResponse(it *entity.OrderService) *dto.OrderItemResponse {
	return &dto.OrderItemResponse{
		ID:        it.ID,
		ServiceID: it.ServiceID,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice,
		Currency:  it.Currency,
		Subtotal:  it.Subtotal(),
		Note:      it.Note,
	}
}
