package report

import (
	"math"

	"github.com/jhoicas/fiyatvizyon-api/internal/domain/costing"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/pricing"
)

// Cell precio de venta de un producto para una columna de margen.
// Con tasas inválidas SellingPrice y Diff son NaN y la presentación muestra un marcador.
type Cell struct {
	Margin       entity.Margin
	SellingPrice float64
	Diff         float64 // precio por margen - precio de lista declarado
}

// ChannelView precios de un producto en un canal.
type ChannelView struct {
	Channel       entity.Channel
	ListPrice     float64
	NetSettlement float64
	Cells         []Cell
}

// Row fila de la tabla de precios.
type Row struct {
	Product entity.Product
	Cost    float64
	Store   ChannelView
	Online  ChannelView
}

// Section filas de un grupo de categoría.
type Section struct {
	Category *entity.Category
	Rows     []Row
}

// Table tabla comparativa completa con columnas de tienda y online independientes.
type Table struct {
	Rates         entity.RateConfig
	StoreMargins  []entity.Margin
	OnlineMargins []entity.Margin
	Sections      []Section
}

// BuildTable arma la tabla a partir de una instantánea del documento.
func BuildTable(doc *entity.Document) Table {
	idx := costing.NewIngredientIndex(doc.Ingredients)
	t := Table{
		Rates:         doc.RateConfig,
		StoreMargins:  MarginColumns(doc.Margins, entity.ChannelStore),
		OnlineMargins: MarginColumns(doc.Margins, entity.ChannelOnline),
	}
	for _, g := range GroupByCategory(doc.Products, doc.Categories) {
		s := Section{Category: g.Category, Rows: make([]Row, 0, len(g.Products))}
		for _, p := range g.Products {
			cost := costing.UnitCost(p, idx)
			s.Rows = append(s.Rows, Row{
				Product: p,
				Cost:    cost,
				Store:   channelView(p, cost, entity.ChannelStore, t.StoreMargins, doc.RateConfig),
				Online:  channelView(p, cost, entity.ChannelOnline, t.OnlineMargins, doc.RateConfig),
			})
		}
		t.Sections = append(t.Sections, s)
	}
	return t
}

func channelView(p entity.Product, cost float64, ch entity.Channel, margins []entity.Margin, rates entity.RateConfig) ChannelView {
	list := p.ListPrice(ch)
	v := ChannelView{
		Channel:       ch,
		ListPrice:     list,
		NetSettlement: pricing.NetSettlement(list, ch, rates),
		Cells:         make([]Cell, 0, len(margins)),
	}
	for _, m := range margins {
		price, err := pricing.SellingPrice(cost, m.Value.Float(), ch, rates)
		if err != nil {
			v.Cells = append(v.Cells, Cell{Margin: m, SellingPrice: math.NaN(), Diff: math.NaN()})
			continue
		}
		v.Cells = append(v.Cells, Cell{Margin: m, SellingPrice: price, Diff: price - list})
	}
	return v
}

// RowCount total de filas en todas las secciones.
func (t Table) RowCount() int {
	n := 0
	for _, s := range t.Sections {
		n += len(s.Rows)
	}
	return n
}
