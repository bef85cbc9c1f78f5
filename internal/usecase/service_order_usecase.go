package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/lifecycle"
	"oficina_xpto/internal/domain/valuation"
	"oficina_xpto/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound          = errors.New("service order not found")
	ErrInvalidOrderNumber     = errors.New("invalid order number")
	ErrInvalidStatus          = errors.New("invalid order status")
	ErrInvalidFinancialStatus = errors.New("invalid financial status")
	ErrInvalidPercentage      = errors.New("invalid percentage")
)

// IServiceOrderUseCase exposes the service-order operations.
//
// Status and financial changes are independent: ChangeStatus derives date side
// effects through the lifecycle engine and persists them with the status in one
// atomic patch; ChangeFinancial is a flat field update with no side effects.

type IServiceOrderUseCase interface {
	Create(ctx context.Context, draft entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByNumber(ctx context.Context, orderNumber int) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, orderNumber int, changes OrderChanges) (entities.ServiceOrder, error)
	ChangeStatus(ctx context.Context, orderNumber int, next entities.OrderStatus) (entities.ServiceOrder, error)
	ChangeFinancial(ctx context.Context, orderNumber int, next entities.FinancialStatus) (entities.ServiceOrder, error)
	Clone(ctx context.Context, orderNumber int) (entities.ServiceOrder, error)
	Totals(ctx context.Context, orderNumber int) (valuation.Breakdown, error)
	Timeline(ctx context.Context, orderNumber int) ([]lifecycle.Event, error)
	Delete(ctx context.Context, orderNumber int) error
}

// OrderChanges carries the editable fields of an order. Pointer fields are
// applied only when non-nil, so a partial edit never zeroes untouched data.

type OrderChanges struct {
	CustomerID           *string
	Equipment            *string
	Brand                *string
	Model                *string
	SerialNumber         *string
	Defect               *string
	Notes                *string
	Services             *[]entities.ServiceItem
	DiscountPercentage   *float64
	AdditionPercentage   *float64
	PaymentMethod        *string
	ExpectedDeliveryDate *time.Time
}

type ServiceOrderUseCase struct {
	repo     interfaces.IServiceOrderRepository
	sequence interfaces.ISequenceRepository
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IServiceOrderRepository, sequence interfaces.ISequenceRepository) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo, sequence: sequence}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, draft entities.ServiceOrder) (entities.ServiceOrder, error) {
	if err := validatePercentage(draft.DiscountPercentage); err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := validatePercentage(draft.AdditionPercentage); err != nil {
		return entities.ServiceOrder{}, err
	}

	number, err := u.sequence.NextOrderNumber(ctx)
	if err != nil {
		log.Printf("[order][usecase] sequence failed err=%v", err)
		return entities.ServiceOrder{}, err
	}

	now := time.Now().UTC()
	draft.OrderNumber = number
	draft.Status = entities.OrderStatusConfirmar
	draft.Financial = entities.FinancialEmAberto
	draft.ApprovalDate = nil
	draft.DeliveryDate = nil
	draft.EntryDate = now
	draft.CreatedAt = now
	draft.UpdatedAt = now
	if draft.Services == nil {
		draft.Services = []entities.ServiceItem{}
	}

	created, err := u.repo.Create(ctx, draft)
	if err != nil {
		log.Printf("[order][usecase] create failed order_number=%d err=%v", number, err)
		return entities.ServiceOrder{}, err
	}
	log.Printf("[order][usecase] created order_number=%d customer_id=%s", created.OrderNumber, created.CustomerID)
	return created, nil
}

func (u *ServiceOrderUseCase) GetByNumber(ctx context.Context, orderNumber int) (entities.ServiceOrder, error) {
	return u.load(ctx, orderNumber)
}

func (u *ServiceOrderUseCase) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.List(ctx)
}

func (u *ServiceOrderUseCase) Update(ctx context.Context, orderNumber int, changes OrderChanges) (entities.ServiceOrder, error) {
	o, err := u.load(ctx, orderNumber)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	if changes.DiscountPercentage != nil {
		if err := validatePercentage(*changes.DiscountPercentage); err != nil {
			return entities.ServiceOrder{}, err
		}
		o.DiscountPercentage = *changes.DiscountPercentage
	}
	if changes.AdditionPercentage != nil {
		if err := validatePercentage(*changes.AdditionPercentage); err != nil {
			return entities.ServiceOrder{}, err
		}
		o.AdditionPercentage = *changes.AdditionPercentage
	}
	if changes.CustomerID != nil {
		o.CustomerID = *changes.CustomerID
	}
	if changes.Equipment != nil {
		o.Equipment = *changes.Equipment
	}
	if changes.Brand != nil {
		o.Brand = *changes.Brand
	}
	if changes.Model != nil {
		o.Model = *changes.Model
	}
	if changes.SerialNumber != nil {
		o.SerialNumber = *changes.SerialNumber
	}
	if changes.Defect != nil {
		o.Defect = *changes.Defect
	}
	if changes.Notes != nil {
		o.Notes = *changes.Notes
	}
	if changes.Services != nil {
		o.Services = *changes.Services
	}
	if changes.PaymentMethod != nil {
		o.PaymentMethod = *changes.PaymentMethod
	}
	if changes.ExpectedDeliveryDate != nil {
		t := *changes.ExpectedDeliveryDate
		o.ExpectedDeliveryDate = &t
	}
	o.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] update failed order_number=%d err=%v", orderNumber, err)
		return entities.ServiceOrder{}, err
	}
	return saved, nil
}

func (u *ServiceOrderUseCase) ChangeStatus(ctx context.Context, orderNumber int, next entities.OrderStatus) (entities.ServiceOrder, error) {
	if !entities.ValidOrderStatus(next) {
		return entities.ServiceOrder{}, ErrInvalidStatus
	}

	o, err := u.load(ctx, orderNumber)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	patch := lifecycle.StatusPatch(o, next, time.Now().UTC())
	updated, err := u.repo.ApplyStatusPatch(ctx, orderNumber, patch)
	if err != nil {
		log.Printf("[order][usecase] status patch failed order_number=%d status=%s err=%v", orderNumber, next, err)
		return entities.ServiceOrder{}, err
	}
	if updated.OrderNumber == 0 {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] status changed order_number=%d %s -> %s", orderNumber, o.Status, next)
	return updated, nil
}

func (u *ServiceOrderUseCase) ChangeFinancial(ctx context.Context, orderNumber int, next entities.FinancialStatus) (entities.ServiceOrder, error) {
	if !entities.ValidFinancialStatus(next) {
		return entities.ServiceOrder{}, ErrInvalidFinancialStatus
	}
	if orderNumber <= 0 {
		return entities.ServiceOrder{}, ErrInvalidOrderNumber
	}

	updated, err := u.repo.UpdateFinancial(ctx, orderNumber, next)
	if err != nil {
		log.Printf("[order][usecase] financial update failed order_number=%d financial=%s err=%v", orderNumber, next, err)
		return entities.ServiceOrder{}, err
	}
	if updated.OrderNumber == 0 {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *ServiceOrderUseCase) Clone(ctx context.Context, orderNumber int) (entities.ServiceOrder, error) {
	src, err := u.load(ctx, orderNumber)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	number, err := u.sequence.NextOrderNumber(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	draft := lifecycle.CloneOrder(src, time.Now().UTC())
	draft.OrderNumber = number

	created, err := u.repo.Create(ctx, draft)
	if err != nil {
		log.Printf("[order][usecase] clone failed source=%d target=%d err=%v", orderNumber, number, err)
		return entities.ServiceOrder{}, err
	}
	log.Printf("[order][usecase] cloned order_number=%d from=%d", created.OrderNumber, orderNumber)
	return created, nil
}

func (u *ServiceOrderUseCase) Totals(ctx context.Context, orderNumber int) (valuation.Breakdown, error) {
	o, err := u.load(ctx, orderNumber)
	if err != nil {
		return valuation.Breakdown{}, err
	}
	return valuation.OrderTotals(o), nil
}

func (u *ServiceOrderUseCase) Timeline(ctx context.Context, orderNumber int) ([]lifecycle.Event, error) {
	o, err := u.load(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	return lifecycle.Timeline(o), nil
}

func (u *ServiceOrderUseCase) Delete(ctx context.Context, orderNumber int) error {
	if _, err := u.load(ctx, orderNumber); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, orderNumber); err != nil {
		log.Printf("[order][usecase] delete failed order_number=%d err=%v", orderNumber, err)
		return err
	}
	log.Printf("[order][usecase] deleted order_number=%d", orderNumber)
	return nil
}

func (u *ServiceOrderUseCase) load(ctx context.Context, orderNumber int) (entities.ServiceOrder, error) {
	if orderNumber <= 0 {
		return entities.ServiceOrder{}, ErrInvalidOrderNumber
	}
	o, err := u.repo.GetByNumber(ctx, orderNumber)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.OrderNumber == 0 {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func validatePercentage(v float64) error {
	if v < 0 || v > 100 {
		return ErrInvalidPercentage
	}
	return nil
}
