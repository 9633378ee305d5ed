// Package report deriva agrupaciones y filas comparativas listas para presentar,
// sin mutar el documento de origen.
package report

import (
	"sort"

	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
)

// Group productos de una categoría. Category nil = "sin categoría".
type Group struct {
	Category *entity.Category
	Products []entity.Product
}

// Uncategorized indica si es el grupo de productos sin categoría.
func (g Group) Uncategorized() bool { return g.Category == nil }

// GroupByCategory un grupo por categoría con al menos un producto (en el orden de la lista de
// categorías), seguido del grupo sin categoría si hace falta. Un categoryId que no resuelve
// se trata como ausente. Dentro de cada grupo los productos van por Order ascendente.
func GroupByCategory(products []entity.Product, categories []entity.Category) []Group {
	sorted := append([]entity.Product{}, products...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}

	byCategory := make(map[string][]entity.Product)
	var uncategorized []entity.Product
	for _, p := range sorted {
		if p.CategoryID != "" && known[p.CategoryID] {
			byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
			continue
		}
		uncategorized = append(uncategorized, p)
	}

	groups := make([]Group, 0, len(categories)+1)
	seen := make(map[string]bool, len(categories))
	for i := range categories {
		c := categories[i]
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		if members := byCategory[c.ID]; len(members) > 0 {
			groups = append(groups, Group{Category: &c, Products: members})
		}
	}
	if len(uncategorized) > 0 {
		groups = append(groups, Group{Products: uncategorized})
	}
	return groups
}

// MarginColumns márgenes del canal ordenados por valor ascendente.
func MarginColumns(margins []entity.Margin, ch entity.Channel) []entity.Margin {
	out := make([]entity.Margin, 0, len(margins))
	for _, m := range margins {
		if m.Type == ch {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value.Float() < out[j].Value.Float() })
	return out
}
