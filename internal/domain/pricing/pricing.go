// Package pricing convierte un costo unitario en precio de venta por canal y calcula
// lo que el vendedor realmente cobra de un precio de lista declarado.
package pricing

import (
	"fmt"

	"github.com/jhoicas/fiyatvizyon-api/internal/domain"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
)

// Quote desglose del precio sugerido para (costo, margen, canal).
type Quote struct {
	Channel        entity.Channel
	Cost           float64
	MarginPct      float64
	BasePrice      float64 // costo * (1 + margen/100)
	GrossPrice     float64 // base con KDV
	CommissionRate float64
	SellingPrice   float64 // bruto inflado para absorber la comisión del canal
}

// BasePrice aplica el margen sobre el costo.
func BasePrice(cost, marginPct float64) float64 {
	return entity.Finite(cost) * (1 + entity.Finite(marginPct)/100)
}

// GrossPrice agrega el KDV al precio base.
func GrossPrice(basePrice, kdvRate float64) float64 {
	return basePrice * (1 + entity.Finite(kdvRate)/100)
}

// NewQuote calcula el precio de venta. La comisión se cobra sobre el precio final, por eso
// se divide por (1 - comisión/100). Una comisión fuera de [0, 100) o un KDV negativo
// devuelven ErrInvalidRate en lugar de Inf/NaN.
func NewQuote(cost, marginPct float64, ch entity.Channel, rates entity.RateConfig) (Quote, error) {
	if ch != entity.ChannelStore && ch != entity.ChannelOnline {
		return Quote{}, fmt.Errorf("canal %q: %w", ch, domain.ErrInvalidInput)
	}
	commission := rates.CommissionFor(ch)
	if commission < 0 || commission >= 100 {
		return Quote{}, fmt.Errorf("comisión %s %v: %w", ch, commission, domain.ErrInvalidRate)
	}
	kdv := rates.KDVRate.Float()
	if kdv < 0 {
		return Quote{}, fmt.Errorf("kdv %v: %w", kdv, domain.ErrInvalidRate)
	}

	q := Quote{
		Channel:        ch,
		Cost:           entity.Finite(cost),
		MarginPct:      entity.Finite(marginPct),
		CommissionRate: commission,
	}
	q.BasePrice = BasePrice(q.Cost, q.MarginPct)
	q.GrossPrice = GrossPrice(q.BasePrice, kdv)
	q.SellingPrice = q.GrossPrice / (1 - commission/100)
	return q, nil
}

// SellingPrice precio de venta recomendado para el canal.
func SellingPrice(cost, marginPct float64, ch entity.Channel, rates entity.RateConfig) (float64, error) {
	q, err := NewQuote(cost, marginPct, ch, rates)
	if err != nil {
		return 0, err
	}
	return q.SellingPrice, nil
}

// NetSettlement importe que recibe el vendedor por un precio de lista declarado.
//
//	tienda: la comisión bancaria se cobra sobre el precio con impuestos
//	        neto = lista * (1 - banco/100)
//	online: la plataforma cobra sobre el importe sin KDV
//	        neto = (lista / (1 + kdv/100)) * (1 - plataforma/100)
//
// La asimetría entre canales es una regla de negocio. Con KDV = -100 el resultado no es finito;
// RateConfig.Validate lo impide antes de llegar aquí.
func NetSettlement(listPrice float64, ch entity.Channel, rates entity.RateConfig) float64 {
	listPrice = entity.Finite(listPrice)
	switch ch {
	case entity.ChannelOnline:
		return (listPrice / (1 + rates.KDVRate.Float()/100)) * (1 - rates.PlatformCommissionRate.Float()/100)
	default:
		return listPrice * (1 - rates.BankCommissionRate.Float()/100)
	}
}
