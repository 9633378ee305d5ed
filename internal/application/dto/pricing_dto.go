package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/pricing"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/report"
)

// QuoteRequest cotización puntual (costo, margen, canal) con las tasas vigentes.
type QuoteRequest struct {
	Cost      entity.Number `json:"cost"`
	MarginPct entity.Number `json:"margin_pct"`
	Channel   string        `json:"channel"`
}

// QuoteResponse desglose del precio de venta.
type QuoteResponse struct {
	Channel        string          `json:"channel"`
	Cost           Money           `json:"cost"`
	MarginPct      decimal.Decimal `json:"margin_pct"`
	BasePrice      Money           `json:"base_price"`
	GrossPrice     Money           `json:"gross_price"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	SellingPrice   Money           `json:"selling_price"`
}

// ToQuoteResponse mapea la cotización del motor.
func ToQuoteResponse(q pricing.Quote) QuoteResponse {
	return QuoteResponse{
		Channel:        string(q.Channel),
		Cost:           NewMoney(q.Cost),
		MarginPct:      Percent(q.MarginPct),
		BasePrice:      NewMoney(q.BasePrice),
		GrossPrice:     NewMoney(q.GrossPrice),
		CommissionRate: Percent(q.CommissionRate),
		SellingPrice:   NewMoney(q.SellingPrice),
	}
}

// PriceCellResponse precio para una columna de margen y diferencia contra el precio de lista.
type PriceCellResponse struct {
	MarginID     string          `json:"margin_id"`
	MarginPct    decimal.Decimal `json:"margin_pct"`
	SellingPrice Money           `json:"selling_price"`
	Diff         Money           `json:"diff"`
}

// ChannelPricesResponse precios de un canal.
type ChannelPricesResponse struct {
	ListPrice     Money               `json:"list_price"`
	NetSettlement Money               `json:"net_settlement"`
	Cells         []PriceCellResponse `json:"cells"`
}

// PricingRowResponse fila de producto.
type PricingRowResponse struct {
	ProductID   string                `json:"product_id"`
	ProductName string                `json:"product_name"`
	Order       int                   `json:"order"`
	UnitCost    Money                 `json:"unit_cost"`
	Store       ChannelPricesResponse `json:"store"`
	Online      ChannelPricesResponse `json:"online"`
}

// PricingSectionResponse grupo de categoría; category nil = sin categoría.
type PricingSectionResponse struct {
	Category *CategoryResponse   `json:"category"`
	Label    string              `json:"label"`
	Rows     []PricingRowResponse `json:"rows"`
}

// PricingTableResponse tabla completa de márgenes por canal.
type PricingTableResponse struct {
	Rates         RatesResponse            `json:"rates"`
	StoreMargins  []MarginResponse         `json:"store_margins"`
	OnlineMargins []MarginResponse         `json:"online_margins"`
	Sections      []PricingSectionResponse `json:"sections"`
}

// UncategorizedLabel etiqueta del grupo sin categoría.
const UncategorizedLabel = "Kategorisiz"

// ToPricingTableResponse mapea la tabla del dominio.
func ToPricingTableResponse(t report.Table) PricingTableResponse {
	out := PricingTableResponse{
		Rates:         ToRatesResponse(t.Rates),
		StoreMargins:  marginList(t.StoreMargins),
		OnlineMargins: marginList(t.OnlineMargins),
		Sections:      make([]PricingSectionResponse, 0, len(t.Sections)),
	}
	for _, s := range t.Sections {
		sec := PricingSectionResponse{Label: UncategorizedLabel, Rows: make([]PricingRowResponse, 0, len(s.Rows))}
		if s.Category != nil {
			c := ToCategoryResponse(*s.Category)
			sec.Category = &c
			sec.Label = c.Name
		}
		for _, r := range s.Rows {
			sec.Rows = append(sec.Rows, PricingRowResponse{
				ProductID:   r.Product.ID,
				ProductName: r.Product.Name,
				Order:       r.Product.Order,
				UnitCost:    NewMoney(r.Cost),
				Store:       channelPrices(r.Store),
				Online:      channelPrices(r.Online),
			})
		}
		out.Sections = append(out.Sections, sec)
	}
	return out
}

func marginList(ms []entity.Margin) []MarginResponse {
	out := make([]MarginResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToMarginResponse(m))
	}
	return out
}

func channelPrices(v report.ChannelView) ChannelPricesResponse {
	out := ChannelPricesResponse{
		ListPrice:     NewMoney(v.ListPrice),
		NetSettlement: NewMoney(v.NetSettlement),
		Cells:         make([]PriceCellResponse, 0, len(v.Cells)),
	}
	for _, c := range v.Cells {
		out.Cells = append(out.Cells, PriceCellResponse{
			MarginID:     c.Margin.ID,
			MarginPct:    Percent(c.Margin.Value.Float()),
			SellingPrice: NewMoney(c.SellingPrice),
			Diff:         NewMoney(c.Diff),
		})
	}
	return out
}
