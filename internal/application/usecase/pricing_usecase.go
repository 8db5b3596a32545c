package usecase

import (
	"github.com/schartrand77/stockworks/internal/application/dto"
	"github.com/schartrand77/stockworks/internal/domain"
	"github.com/schartrand77/stockworks/internal/domain/pricing"
	"github.com/schartrand77/stockworks/internal/domain/repository"
)

// PricingUseCase resuelve el material y delega el cálculo al servicio de
// dominio. Sin estado: la cotización no se persiste.
type PricingUseCase struct {
	materials repository.MaterialRepository
}

// NewPricingUseCase construye el caso de uso.
func NewPricingUseCase(materials repository.MaterialRepository) *PricingUseCase {
	return &PricingUseCase{materials: materials}
}

// Quote calcula el desglose y lo devuelve redondeado a 2 decimales junto con
// el snapshot del material usado.
func (uc *PricingUseCase) Quote(in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	material, err := uc.materials.GetByID(in.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	q, err := pricing.Quote(material, pricing.QuoteInput{
		WeightGrams:     in.WeightGrams,
		PrintTimeHours:  in.PrintTimeHours,
		MachineHourRate: in.MachineHourRate,
		LaborCost:       in.LaborCost,
		MarginPct:       in.MarginPct,
	})
	if err != nil {
		return nil, err
	}
	return &dto.QuoteResponse{
		Pricing: dto.QuoteBreakdownDTO{
			MaterialCost: q.MaterialCost.Round(2),
			MachineCost:  q.MachineCost.Round(2),
			LaborCost:    q.LaborCost.Round(2),
			Subtotal:     q.Subtotal.Round(2),
			MarginAmount: q.MarginAmount.Round(2),
			Total:        q.Total.Round(2),
		},
		MaterialSnapshot: *toMaterialResponse(material),
	}, nil
}
