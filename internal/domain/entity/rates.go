package entity

import (
	"fmt"

	"github.com/jhoicas/fiyatvizyon-api/internal/domain"
)

// Valores por defecto del documento nuevo.
const (
	DefaultPlatformCommissionRate = 15
	DefaultKDVRate                = 10
	DefaultBankCommissionRate     = 2.5
)

// RateConfig tasas globales del documento (porcentajes).
type RateConfig struct {
	PlatformCommissionRate Number `json:"platformCommissionRate"`
	KDVRate                Number `json:"kdvRate"`
	BankCommissionRate     Number `json:"bankCommissionRate"`
}

// DefaultRates devuelve las tasas iniciales.
func DefaultRates() RateConfig {
	return RateConfig{
		PlatformCommissionRate: DefaultPlatformCommissionRate,
		KDVRate:                DefaultKDVRate,
		BankCommissionRate:     DefaultBankCommissionRate,
	}
}

// Validate exige comisiones en [0, 100) y KDV >= 0.
func (r RateConfig) Validate() error {
	if err := validateCommission("platformCommissionRate", r.PlatformCommissionRate.Float()); err != nil {
		return err
	}
	if err := validateCommission("bankCommissionRate", r.BankCommissionRate.Float()); err != nil {
		return err
	}
	if r.KDVRate.Float() < 0 {
		return fmt.Errorf("kdvRate %v: %w", r.KDVRate.Float(), domain.ErrInvalidRate)
	}
	return nil
}

// CommissionFor devuelve la comisión que grava el canal.
func (r RateConfig) CommissionFor(ch Channel) float64 {
	if ch == ChannelOnline {
		return r.PlatformCommissionRate.Float()
	}
	return r.BankCommissionRate.Float()
}

func validateCommission(name string, v float64) error {
	if v < 0 || v >= 100 {
		return fmt.Errorf("%s %v: %w", name, v, domain.ErrInvalidRate)
	}
	return nil
}
