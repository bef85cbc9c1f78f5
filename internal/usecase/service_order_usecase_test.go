package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/lifecycle"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newOrderMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIServiceOrderRepository, *mock_interfaces.MockISequenceRepository) {
	ctrl := gomock.NewController(t)
	return ctrl, mock_interfaces.NewMockIServiceOrderRepository(ctrl), mock_interfaces.NewMockISequenceRepository(ctrl)
}

func TestServiceOrderUseCase_Create(t *testing.T) {
	t.Run("invalid discount percentage", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.ServiceOrder{DiscountPercentage: 120})
		if !errors.Is(err, ErrInvalidPercentage) {
			t.Fatalf("expected ErrInvalidPercentage, got %v", err)
		}
	})

	t.Run("invalid addition percentage", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.ServiceOrder{AdditionPercentage: -1})
		if !errors.Is(err, ErrInvalidPercentage) {
			t.Fatalf("expected ErrInvalidPercentage, got %v", err)
		}
	})

	t.Run("sequence error", func(t *testing.T) {
		ctrl, repo, seq := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, seq)

		seq.EXPECT().NextOrderNumber(gomock.Any()).Return(0, errors.New("db"))

		_, err := uc.Create(context.Background(), entities.ServiceOrder{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, repo, seq := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, seq)

		seq.EXPECT().NextOrderNumber(gomock.Any()).Return(7, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).Return(entities.ServiceOrder{}, errors.New("db"))

		_, err := uc.Create(context.Background(), entities.ServiceOrder{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success forces fresh lifecycle", func(t *testing.T) {
		ctrl, repo, seq := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, seq)

		stale := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		draft := entities.ServiceOrder{
			CustomerID:   "cust-1",
			Status:       entities.OrderStatusEntregue,
			Financial:    entities.FinancialPago,
			ApprovalDate: &stale,
			DeliveryDate: &stale,
			EntryDate:    stale,
		}

		seq.EXPECT().NextOrderNumber(gomock.Any()).Return(7, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.OrderNumber != 7 {
					t.Fatalf("expected sequence number 7, got %d", o.OrderNumber)
				}
				if o.Status != entities.OrderStatusConfirmar || o.Financial != entities.FinancialEmAberto {
					t.Fatalf("lifecycle not reset: status=%s financial=%s", o.Status, o.Financial)
				}
				if o.ApprovalDate != nil || o.DeliveryDate != nil {
					t.Fatalf("dates must be dropped on create: %+v", o)
				}
				if o.EntryDate.Equal(stale) || o.EntryDate.IsZero() {
					t.Fatalf("entry date not restamped: %v", o.EntryDate)
				}
				if o.Services == nil {
					t.Fatalf("items must default to empty slice")
				}
				return o, nil
			},
		)

		res, err := uc.Create(context.Background(), draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.OrderNumber != 7 || res.CustomerID != "cust-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestServiceOrderUseCase_GetByNumber(t *testing.T) {
	t.Run("invalid number", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil)
		_, err := uc.GetByNumber(context.Background(), 0)
		if !errors.Is(err, ErrInvalidOrderNumber) {
			t.Fatalf("expected ErrInvalidOrderNumber, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(entities.ServiceOrder{}, errors.New("db"))

		_, err := uc.GetByNumber(context.Background(), 7)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(entities.ServiceOrder{}, nil)

		_, err := uc.GetByNumber(context.Background(), 7)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(entities.ServiceOrder{OrderNumber: 7}, nil)

		res, err := uc.GetByNumber(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.OrderNumber != 7 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestServiceOrderUseCase_Update(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	floatPtr := func(f float64) *float64 { return &f }

	t.Run("not found", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(entities.ServiceOrder{}, nil)

		_, err := uc.Update(context.Background(), 7, OrderChanges{})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("invalid percentage", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(entities.ServiceOrder{OrderNumber: 7}, nil)

		_, err := uc.Update(context.Background(), 7, OrderChanges{DiscountPercentage: floatPtr(101)})
		if !errors.Is(err, ErrInvalidPercentage) {
			t.Fatalf("expected ErrInvalidPercentage, got %v", err)
		}
	})

	t.Run("partial edit keeps untouched fields", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)

		current := entities.ServiceOrder{
			OrderNumber: 7,
			CustomerID:  "cust-1",
			Equipment:   "notebook",
			Defect:      "não liga",
		}
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(current, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.Defect != "tela quebrada" {
					t.Fatalf("defect not applied: %q", o.Defect)
				}
				if o.CustomerID != "cust-1" || o.Equipment != "notebook" {
					t.Fatalf("untouched fields lost: %+v", o)
				}
				if o.UpdatedAt.IsZero() {
					t.Fatalf("expected updated timestamp")
				}
				return o, nil
			},
		)

		res, err := uc.Update(context.Background(), 7, OrderChanges{Defect: strPtr("tela quebrada")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Defect != "tela quebrada" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("repo save error", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(entities.ServiceOrder{OrderNumber: 7}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, errors.New("db"))

		_, err := uc.Update(context.Background(), 7, OrderChanges{Notes: strPtr("x")})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_ChangeStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil)
		_, err := uc.ChangeStatus(context.Background(), 7, "desconhecido")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("invalid number", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil)
		_, err := uc.ChangeStatus(context.Background(), 0, entities.OrderStatusAprovado)
		if !errors.Is(err, ErrInvalidOrderNumber) {
			t.Fatalf("expected ErrInvalidOrderNumber, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(entities.ServiceOrder{}, nil)

		_, err := uc.ChangeStatus(context.Background(), 7, entities.OrderStatusAprovado)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("approval stamps date in patch", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)

		current := entities.ServiceOrder{OrderNumber: 7, Status: entities.OrderStatusConfirmar}
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(current, nil)
		repo.EXPECT().ApplyStatusPatch(gomock.Any(), 7, gomock.AssignableToTypeOf(lifecycle.Patch{})).DoAndReturn(
			func(_ context.Context, _ int, p lifecycle.Patch) (entities.ServiceOrder, error) {
				if p.Status != entities.OrderStatusAprovado {
					t.Fatalf("patch status = %s", p.Status)
				}
				if !p.ApprovalDate.Set || p.ApprovalDate.Value == nil {
					t.Fatalf("approval date not stamped: %+v", p)
				}
				if p.DeliveryDate.Set || p.ExpectedDeliveryDate.Set {
					t.Fatalf("unrelated dates touched: %+v", p)
				}
				return lifecycle.Apply(current, p), nil
			},
		)

		res, err := uc.ChangeStatus(context.Background(), 7, entities.OrderStatusAprovado)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OrderStatusAprovado || res.ApprovalDate == nil {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("reopen clears dates in patch", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)

		approval := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		current := entities.ServiceOrder{OrderNumber: 7, Status: entities.OrderStatusAprovado, ApprovalDate: &approval}
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(current, nil)
		repo.EXPECT().ApplyStatusPatch(gomock.Any(), 7, gomock.AssignableToTypeOf(lifecycle.Patch{})).DoAndReturn(
			func(_ context.Context, _ int, p lifecycle.Patch) (entities.ServiceOrder, error) {
				for _, dc := range []lifecycle.DateChange{p.ApprovalDate, p.DeliveryDate, p.ExpectedDeliveryDate} {
					if !dc.Set || dc.Value != nil {
						t.Fatalf("reopen must clear every date: %+v", p)
					}
				}
				return lifecycle.Apply(current, p), nil
			},
		)

		res, err := uc.ChangeStatus(context.Background(), 7, entities.OrderStatusConfirmar)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ApprovalDate != nil {
			t.Fatalf("approval date survived reopen: %+v", res)
		}
	})

	t.Run("patch repo error", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(entities.ServiceOrder{OrderNumber: 7}, nil)
		repo.EXPECT().ApplyStatusPatch(gomock.Any(), 7, gomock.Any()).Return(entities.ServiceOrder{}, errors.New("db"))

		_, err := uc.ChangeStatus(context.Background(), 7, entities.OrderStatusPronto)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("deleted between read and patch", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(entities.ServiceOrder{OrderNumber: 7}, nil)
		repo.EXPECT().ApplyStatusPatch(gomock.Any(), 7, gomock.Any()).Return(entities.ServiceOrder{}, nil)

		_, err := uc.ChangeStatus(context.Background(), 7, entities.OrderStatusPronto)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_ChangeFinancial(t *testing.T) {
	t.Run("invalid financial status", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil)
		_, err := uc.ChangeFinancial(context.Background(), 7, "quitado")
		if !errors.Is(err, ErrInvalidFinancialStatus) {
			t.Fatalf("expected ErrInvalidFinancialStatus, got %v", err)
		}
	})

	t.Run("invalid number", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil)
		_, err := uc.ChangeFinancial(context.Background(), -1, entities.FinancialPago)
		if !errors.Is(err, ErrInvalidOrderNumber) {
			t.Fatalf("expected ErrInvalidOrderNumber, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)
		repo.EXPECT().UpdateFinancial(gomock.Any(), 7, entities.FinancialPago).Return(entities.ServiceOrder{}, errors.New("db"))

		_, err := uc.ChangeFinancial(context.Background(), 7, entities.FinancialPago)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)
		repo.EXPECT().UpdateFinancial(gomock.Any(), 7, entities.FinancialPago).Return(entities.ServiceOrder{}, nil)

		_, err := uc.ChangeFinancial(context.Background(), 7, entities.FinancialPago)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)
		expected := entities.ServiceOrder{OrderNumber: 7, Financial: entities.FinancialPago}
		repo.EXPECT().UpdateFinancial(gomock.Any(), 7, entities.FinancialPago).Return(expected, nil)

		res, err := uc.ChangeFinancial(context.Background(), 7, entities.FinancialPago)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Financial != entities.FinancialPago {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestServiceOrderUseCase_Clone(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl, repo, seq := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, seq)
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(entities.ServiceOrder{}, nil)

		_, err := uc.Clone(context.Background(), 7)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("sequence error", func(t *testing.T) {
		ctrl, repo, seq := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, seq)
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(entities.ServiceOrder{OrderNumber: 7}, nil)
		seq.EXPECT().NextOrderNumber(gomock.Any()).Return(0, errors.New("db"))

		_, err := uc.Clone(context.Background(), 7)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success resets lifecycle under new number", func(t *testing.T) {
		ctrl, repo, seq := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, seq)

		approval := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		src := entities.ServiceOrder{
			OrderNumber:  7,
			CustomerID:   "cust-1",
			Status:       entities.OrderStatusEntregue,
			Financial:    entities.FinancialPago,
			ApprovalDate: &approval,
			Services:     []entities.ServiceItem{{Description: "reparo", Quantity: 1.0, UnitValue: 100.0}},
		}
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(src, nil)
		seq.EXPECT().NextOrderNumber(gomock.Any()).Return(8, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.OrderNumber != 8 {
					t.Fatalf("expected new number 8, got %d", o.OrderNumber)
				}
				if o.Status != entities.OrderStatusConfirmar || o.Financial != entities.FinancialEmAberto {
					t.Fatalf("lifecycle not reset: %+v", o)
				}
				if o.ApprovalDate != nil || o.DeliveryDate != nil || o.ExpectedDeliveryDate != nil {
					t.Fatalf("dates carried over: %+v", o)
				}
				if len(o.Services) != 1 || o.CustomerID != "cust-1" {
					t.Fatalf("descriptive data lost: %+v", o)
				}
				return o, nil
			},
		)

		res, err := uc.Clone(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.OrderNumber != 8 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestServiceOrderUseCase_TotalsAndTimeline(t *testing.T) {
	t.Run("totals", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)

		o := entities.ServiceOrder{
			OrderNumber:        7,
			Services:           []entities.ServiceItem{{Quantity: 2.0, UnitValue: 100.0}},
			DiscountPercentage: 10,
		}
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(o, nil)

		b, err := uc.Totals(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.FinalTotal != 180 {
			t.Fatalf("FinalTotal = %v, want 180", b.FinalTotal)
		}
	})

	t.Run("timeline", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)

		entry := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(entities.ServiceOrder{OrderNumber: 7, EntryDate: entry}, nil)

		events, err := uc.Timeline(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected entry and financial events, got %d", len(events))
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(entities.ServiceOrder{}, nil).Times(2)

		if _, err := uc.Totals(context.Background(), 7); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
		if _, err := uc.Timeline(context.Background(), 7); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(entities.ServiceOrder{}, nil)

		if err := uc.Delete(context.Background(), 7); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(entities.ServiceOrder{OrderNumber: 7}, nil)
		repo.EXPECT().Delete(gomock.Any(), 7).Return(errors.New("db"))

		if err := uc.Delete(context.Background(), 7); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, repo, _ := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(repo, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), 7).Return(entities.ServiceOrder{OrderNumber: 7}, nil)
		repo.EXPECT().Delete(gomock.Any(), 7).Return(nil)

		if err := uc.Delete(context.Background(), 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
