package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMasterUpdateApplyTo(t *testing.T) {
	master := Master{
		ID:        "m1",
		FullName:  "Aziz Karimov",
		Email:     "aziz@example.com",
		Phone:     "+998901112233",
		Specialty: "Kompyuter ustasi",
		Status:    MasterStatusActive,
	}

	req := MasterUpdateRequest{Phone: "+998909998877"}
	req.ApplyTo(&master)

	// Faqat telefon o'zgaradi, qolgan maydonlar saqlanadi
	assert.Equal(t, "+998909998877", master.Phone)
	assert.Equal(t, "Aziz Karimov", master.FullName)
	assert.Equal(t, "aziz@example.com", master.Email)
	assert.Equal(t, "Kompyuter ustasi", master.Specialty)
	assert.Equal(t, MasterStatusActive, master.Status)
}

func TestMasterUpdateApplyToAddress(t *testing.T) {
	master := Master{ID: "m1", Address: Address{City: "Toshkent"}}

	req := MasterUpdateRequest{Address: &Address{City: "Samarqand", District: "Registon"}}
	req.ApplyTo(&master)

	assert.Equal(t, "Samarqand", master.Address.City)
	assert.Equal(t, "Registon", master.Address.District)
}

func TestMasterUpdateIsEmpty(t *testing.T) {
	assert.True(t, (&MasterUpdateRequest{}).IsEmpty())
	assert.False(t, (&MasterUpdateRequest{Name: "Aziz"}).IsEmpty())
	assert.False(t, (&MasterUpdateRequest{Address: &Address{}}).IsEmpty())
}

func TestMasterCreateHasAnyField(t *testing.T) {
	assert.False(t, (&MasterCreateRequest{}).HasAnyField())
	assert.True(t, (&MasterCreateRequest{Soha: "Kompyuter ustasi"}).HasAnyField())
	assert.True(t, (&MasterCreateRequest{Address: Address{City: "Toshkent"}}).HasAnyField())
}

func TestGetMasterStatusLabel(t *testing.T) {
	assert.Equal(t, "Faol", GetMasterStatusLabel(MasterStatusActive))
	assert.Equal(t, "Nofaol", GetMasterStatusLabel(MasterStatusInactive))
	assert.Equal(t, "Band", GetMasterStatusLabel(MasterStatusBusy))
	assert.Equal(t, "Noma'lum", GetMasterStatusLabel("boshqa"))
}

func TestDashboardRoute(t *testing.T) {
	assert.Equal(t, "/dashboard/admin", DashboardRoute(RoleAdmin))
	assert.Equal(t, "/dashboard/master", DashboardRoute(RoleMaster))
	assert.Equal(t, "/dashboard/user", DashboardRoute(RoleUser))
	assert.Equal(t, "", DashboardRoute("moderator"))
}
