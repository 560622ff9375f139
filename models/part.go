package models

import "strings"

// Part - ehtiyot qism modeli
// @Description Ombordagi ehtiyot qism
type Part struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Supplier string  `json:"supplier,omitempty"`
}

// PartRequest - qism qo'shish/tahrirlash so'rovi
type PartRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Supplier string  `json:"supplier"`
}

// IsComplete - barcha maydonlar to'ldirilganmi
func (r *PartRequest) IsComplete() bool {
	return r.Name != "" && r.Category != "" && r.Quantity > 0 &&
		r.Price > 0 && r.Supplier != ""
}

// FilterParts - qismlarni nomi yoki kategoriyasi bo'yicha qidirish
func FilterParts(parts []Part, search string) []Part {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return parts
	}
	filtered := []Part{}
	for _, p := range parts {
		if strings.Contains(strings.ToLower(p.Name), search) ||
			strings.Contains(strings.ToLower(p.Category), search) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// TotalPartsCost - tanlangan qismlar umumiy narxi.
// Ro'yxatda bo'lmagan partId hisobga olinmaydi.
func TotalPartsCost(parts []Part, selected []SparePart) float64 {
	index := make(map[string]Part, len(parts))
	for _, p := range parts {
		index[p.ID] = p
	}
	var total float64
	for _, sp := range selected {
		if p, ok := index[sp.PartID]; ok {
			total += p.Price * float64(sp.Quantity)
		}
	}
	return total
}

// ClampQuantities - miqdorlarni [1, ombordagi qoldiq] oralig'iga keltirish.
// Omborda yo'q qismlar ro'yxatdan chiqariladi.
func ClampQuantities(parts []Part, selected []SparePart) []SparePart {
	index := make(map[string]Part, len(parts))
	for _, p := range parts {
		index[p.ID] = p
	}
	clamped := []SparePart{}
	for _, sp := range selected {
		p, ok := index[sp.PartID]
		if !ok {
			continue
		}
		q := sp.Quantity
		if q < 1 {
			q = 1
		}
		if q > p.Quantity {
			q = p.Quantity
		}
		clamped = append(clamped, SparePart{PartID: sp.PartID, Quantity: q})
	}
	return clamped
}

// PartResponse - bitta qism javobi
type PartResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Part    *Part  `json:"part,omitempty"`
}

// PartsResponse - qismlar ro'yxati javobi
type PartsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Parts   []Part `json:"parts"`
	Total   int    `json:"total"`
}
