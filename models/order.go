package models

import (
	"encoding/json"
	"strings"
)

// Order statuslari (backend lug'ati)
const (
	OrderStatusYangi        = "yangi"
	OrderStatusJarayonda    = "jarayonda"
	OrderStatusKutilmoqda   = "kutilmoqda"
	OrderStatusTasdiqlangan = "tasdiqlangan"
	OrderStatusArxiv        = "arxiv"
)

// FilterHammasi - "hammasi" filtri barcha buyurtmalarni qaytaradi
const FilterHammasi = "hammasi"

// Address - buyurtma manzili
// Backend ba'zan string ("Toshkent, Chilonzor, ..."), ba'zan obyekt
// ({city, district, street}) qaytaradi. UnmarshalJSON ikkalasini ham qabul qiladi.
type Address struct {
	City     string `json:"city"`
	District string `json:"district"`
	Street   string `json:"street,omitempty"`
}

// UnmarshalJSON - string yoki obyekt ko'rinishidagi manzilni o'qish
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		// Vergul bilan ajratilgan string: "shahar, tuman, ko'cha"
		parts := strings.Split(s, ",")
		if len(parts) > 0 {
			a.City = strings.TrimSpace(parts[0])
		}
		if len(parts) > 1 {
			a.District = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			a.Street = strings.TrimSpace(strings.Join(parts[2:], ","))
		}
		return nil
	}

	type plain Address
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Address(p)
	return nil
}

// IsEmpty - manzil to'ldirilganmi
func (a Address) IsEmpty() bool {
	return a.City == "" && a.District == "" && a.Street == ""
}

// SparePart - buyurtmaga biriktirilgan ehtiyot qism
type SparePart struct {
	PartID   string `json:"partId"`
	Quantity int    `json:"quantity"`
}

// Order - buyurtma (support ticket) modeli
// @Description Buyurtma ma'lumotlari
type Order struct {
	ID              string      `json:"id"`
	Status          string      `json:"status"`
	CustomerName    string      `json:"customerName"`
	Phone           string      `json:"phone,omitempty"`
	Address         Address     `json:"address"`
	ProductID       string      `json:"productId,omitempty"`
	ProductName     string      `json:"productName,omitempty"`
	Category        string      `json:"category,omitempty"`
	Description     string      `json:"description,omitempty"`
	Price           float64     `json:"price,omitempty"`
	AppointmentDate string      `json:"appointmentDate,omitempty"`
	CompletionTime  string      `json:"completionTime,omitempty"`
	AssignedMaster  string      `json:"kimga,omitempty"`
	Specialist      string      `json:"specialist,omitempty"`
	MasterID        string      `json:"masterId,omitempty"`
	Priority        string      `json:"priority,omitempty"`
	SpareParts      []SparePart `json:"spareParts,omitempty"`
	OrderDate       string      `json:"orderDate,omitempty"`
	CreatedAt       string      `json:"createdAt,omitempty"`
	UpdatedAt       string      `json:"updatedAt,omitempty"`
}

// EventDate - statistika uchun sana (orderDate bo'lmasa createdAt)
func (o *Order) EventDate() string {
	if o.OrderDate != "" {
		return o.OrderDate
	}
	return o.CreatedAt
}

// MasterRef - buyurtma qaysi masterga tegishli (kimga -> specialist -> masterId)
func (o *Order) MasterRef() string {
	if o.AssignedMaster != "" {
		return o.AssignedMaster
	}
	if o.Specialist != "" {
		return o.Specialist
	}
	return o.MasterID
}

// ValidOrderStatuses - ruxsat etilgan statuslar
var ValidOrderStatuses = []string{
	OrderStatusYangi,
	OrderStatusJarayonda,
	OrderStatusKutilmoqda,
	OrderStatusTasdiqlangan,
	OrderStatusArxiv,
}

// IsValidOrderStatus - statusni tekshirish
func IsValidOrderStatus(status string) bool {
	for _, s := range ValidOrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// GetStatusLabel - status uchun o'zbekcha nom
func GetStatusLabel(status string) string {
	switch strings.ToLower(status) {
	case OrderStatusYangi:
		return "Yangi"
	case OrderStatusJarayonda:
		return "Jarayonda"
	case OrderStatusKutilmoqda:
		return "Kutilmoqda"
	case OrderStatusTasdiqlangan:
		return "Tasdiqlangan"
	case OrderStatusArxiv:
		return "Arxiv"
	default:
		return "Noma'lum"
	}
}

// FilterOrders - buyurtmalarni status va qidiruv bo'yicha filtrlash.
// Filtrlash xotiradagi ro'yxat ustida bajariladi, backendga qayta so'rov yuborilmaydi.
func FilterOrders(orders []Order, statusID, search string) []Order {
	statusID = strings.ToLower(strings.TrimSpace(statusID))
	search = strings.ToLower(strings.TrimSpace(search))

	// Eski frontend filtri "yangilar" identifikatorini yuboradi
	if statusID == "yangilar" {
		statusID = OrderStatusYangi
	}

	filtered := []Order{}
	for _, o := range orders {
		status := strings.ToLower(o.Status)
		if statusID != "" && statusID != FilterHammasi && status != statusID {
			continue
		}
		if search != "" {
			id := strings.ToLower(o.ID)
			name := strings.ToLower(o.CustomerName)
			if !strings.Contains(id, search) && !strings.Contains(name, search) {
				continue
			}
		}
		filtered = append(filtered, o)
	}
	return filtered
}

// StatusCounts - filter chiplari uchun har bir status bo'yicha soni
func StatusCounts(orders []Order) map[string]int {
	counts := map[string]int{FilterHammasi: len(orders)}
	for _, s := range ValidOrderStatuses {
		counts[s] = 0
	}
	for _, o := range orders {
		status := strings.ToLower(o.Status)
		if _, ok := counts[status]; ok {
			counts[status]++
		}
	}
	return counts
}

// OrderResponse - bitta buyurtma javobi
type OrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Order   *Order `json:"order,omitempty"`
}

// OrdersResponse - buyurtmalar ro'yxati javobi
type OrdersResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Orders  []Order        `json:"orders"`
	Total   int            `json:"total"`
	Counts  map[string]int `json:"counts,omitempty"`
}

// OrderStatusRequest - status o'zgartirish so'rovi
type OrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderEditRequest - master buyurtmani tahrirlash so'rovi
type OrderEditRequest struct {
	Price          float64     `json:"price,omitempty"`
	CompletionTime string      `json:"completionTime,omitempty"`
	SpareParts     []SparePart `json:"spareParts,omitempty"`
}

// OrderCreateRequest - yangi buyurtma yaratish so'rovi
type OrderCreateRequest struct {
	ProductName string  `json:"productName" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Address     Address `json:"address"`
	Kimga       string  `json:"kimga,omitempty"`
	Priority    string  `json:"priority,omitempty"`
}
