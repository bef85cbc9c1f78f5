package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/lifecycle"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// The order service must be able to:
//   - create an order with a pre-assigned sequential number
//   - read one order / scan all orders
//   - replace the editable fields (equipment, items, percentages, notes)
//   - apply a lifecycle status patch as one atomic update
//   - update the financial status independently
//   - delete an order (hard delete; there is no soft-delete state)

type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByNumber(ctx context.Context, orderNumber int) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	Save(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	ApplyStatusPatch(ctx context.Context, orderNumber int, p lifecycle.Patch) (entities.ServiceOrder, error)
	UpdateFinancial(ctx context.Context, orderNumber int, f entities.FinancialStatus) (entities.ServiceOrder, error)
	Delete(ctx context.Context, orderNumber int) error
}
