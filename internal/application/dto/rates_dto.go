package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
)

// RatesRequest actualización de tasas; los campos nil se mantienen.
type RatesRequest struct {
	PlatformCommissionRate *entity.Number `json:"platform_commission_rate"`
	KDVRate                *entity.Number `json:"kdv_rate"`
	BankCommissionRate     *entity.Number `json:"bank_commission_rate"`
}

// RatesResponse tasas vigentes.
type RatesResponse struct {
	PlatformCommissionRate decimal.Decimal `json:"platform_commission_rate"`
	KDVRate                decimal.Decimal `json:"kdv_rate"`
	BankCommissionRate     decimal.Decimal `json:"bank_commission_rate"`
}

// ToRatesResponse mapea la configuración.
func ToRatesResponse(r entity.RateConfig) RatesResponse {
	return RatesResponse{
		PlatformCommissionRate: Percent(r.PlatformCommissionRate.Float()),
		KDVRate:                Percent(r.KDVRate.Float()),
		BankCommissionRate:     Percent(r.BankCommissionRate.Float()),
	}
}
