package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressUnmarshalString(t *testing.T) {
	var a Address
	require.NoError(t, json.Unmarshal([]byte(`"Toshkent, Chilonzor, Bunyodkor 12"`), &a))
	assert.Equal(t, "Toshkent", a.City)
	assert.Equal(t, "Chilonzor", a.District)
	assert.Equal(t, "Bunyodkor 12", a.Street)
}

func TestAddressUnmarshalObject(t *testing.T) {
	var a Address
	require.NoError(t, json.Unmarshal([]byte(`{"city":"Samarqand","district":"Registon"}`), &a))
	assert.Equal(t, "Samarqand", a.City)
	assert.Equal(t, "Registon", a.District)
	assert.Empty(t, a.Street)
}

func TestAddressUnmarshalCityOnly(t *testing.T) {
	var a Address
	require.NoError(t, json.Unmarshal([]byte(`"Buxoro"`), &a))
	assert.Equal(t, "Buxoro", a.City)
	assert.Empty(t, a.District)
}

func TestFilterOrdersByStatus(t *testing.T) {
	orders := []Order{
		{ID: "1", Status: OrderStatusYangi},
		{ID: "2", Status: OrderStatusJarayonda},
		{ID: "3", Status: OrderStatusTasdiqlangan},
	}

	filtered := FilterOrders(orders, OrderStatusJarayonda, "")
	require.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].ID)

	assert.Len(t, FilterOrders(orders, FilterHammasi, ""), 3)
	assert.Len(t, FilterOrders(orders, "", ""), 3)
	assert.Len(t, FilterOrders(orders, OrderStatusArxiv, ""), 0)

	// Eski frontend "yangilar" identifikatori "yangi" ga normallanadi
	filtered = FilterOrders(orders, "yangilar", "")
	require.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].ID)
}

func TestFilterOrdersBySearch(t *testing.T) {
	orders := []Order{
		{ID: "ord-100", Status: OrderStatusYangi, CustomerName: "Aziz Karimov"},
		{ID: "ord-200", Status: OrderStatusYangi, CustomerName: "Bobur Aliyev"},
	}

	filtered := FilterOrders(orders, FilterHammasi, "aziz")
	require.Len(t, filtered, 1)
	assert.Equal(t, "ord-100", filtered[0].ID)

	filtered = FilterOrders(orders, FilterHammasi, "200")
	require.Len(t, filtered, 1)
	assert.Equal(t, "ord-200", filtered[0].ID)

	assert.Empty(t, FilterOrders(orders, FilterHammasi, "yo'q"))
}

func TestStatusCounts(t *testing.T) {
	orders := []Order{
		{Status: OrderStatusYangi},
		{Status: OrderStatusYangi},
		{Status: OrderStatusJarayonda},
		{Status: "bekor"}, // lug'atdan tashqari status sanalmaydi
	}

	counts := StatusCounts(orders)
	assert.Equal(t, 4, counts[FilterHammasi])
	assert.Equal(t, 2, counts[OrderStatusYangi])
	assert.Equal(t, 1, counts[OrderStatusJarayonda])
	assert.Equal(t, 0, counts[OrderStatusArxiv])
	_, ok := counts["bekor"]
	assert.False(t, ok)
}

func TestGetStatusLabel(t *testing.T) {
	assert.Equal(t, "Yangi", GetStatusLabel(OrderStatusYangi))
	assert.Equal(t, "Jarayonda", GetStatusLabel(OrderStatusJarayonda))
	assert.Equal(t, "Noma'lum", GetStatusLabel("boshqa"))
}

func TestOrderEventDate(t *testing.T) {
	o := Order{OrderDate: "2025-01-01", CreatedAt: "2024-12-31"}
	assert.Equal(t, "2025-01-01", o.EventDate())

	o = Order{CreatedAt: "2024-12-31"}
	assert.Equal(t, "2024-12-31", o.EventDate())
}

func TestOrderMasterRef(t *testing.T) {
	o := Order{AssignedMaster: "m1", Specialist: "m2", MasterID: "m3"}
	assert.Equal(t, "m1", o.MasterRef())

	o = Order{Specialist: "m2", MasterID: "m3"}
	assert.Equal(t, "m2", o.MasterRef())

	o = Order{MasterID: "m3"}
	assert.Equal(t, "m3", o.MasterRef())
}

// Faqat masterId bilan bog'langan buyurtma ham masterga tegishli hisoblanadi
func TestOrderMasterRefFromJSON(t *testing.T) {
	var o Order
	require.NoError(t, json.Unmarshal([]byte(`{"id":"o1","status":"yangi","masterId":"m1"}`), &o))
	assert.Equal(t, "m1", o.MasterRef())
}
