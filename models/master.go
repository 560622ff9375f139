package models

// Master statuslari
const (
	MasterStatusActive   = "active"
	MasterStatusInactive = "inactive"
	MasterStatusBusy     = "busy"
)

// Master sohalari (mutaxassisliklar)
var MasterSpecialties = []string{
	"Dasturiy ta'minot mutahasisi",
	"Kompyuter ustasi",
}

// MasterJobs - master bajargan ishlar hisobi
type MasterJobs struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
}

// Master - texnik mutaxassis modeli
// @Description Master (texnik) ma'lumotlari
type Master struct {
	ID        string     `json:"id"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Specialty string     `json:"specialty,omitempty"`
	Status    string     `json:"status"`
	IsOnline  bool       `json:"isOnline,omitempty"`
	Address   Address    `json:"address"`
	Jobs      MasterJobs `json:"jobs"`
}

// GetMasterStatusLabel - master statusi uchun o'zbekcha nom
func GetMasterStatusLabel(status string) string {
	switch status {
	case MasterStatusActive:
		return "Faol"
	case MasterStatusInactive:
		return "Nofaol"
	case MasterStatusBusy:
		return "Band"
	default:
		return "Noma'lum"
	}
}

// MasterCreateRequest - yangi master qo'shish so'rovi.
// Backend "soha" nomini kutadi, gateway specialty ni shu maydonga yozadi.
type MasterCreateRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string  `json:"phone,omitempty" validate:"omitempty,phone_uz"`
	Soha    string  `json:"soha,omitempty"`
	Status  string  `json:"status,omitempty"`
	Address Address `json:"address"`
}

// HasAnyField - kamida bitta maydon to'ldirilganmi
func (r *MasterCreateRequest) HasAnyField() bool {
	return r.Name != "" || r.Email != "" || r.Phone != "" ||
		r.Soha != "" || !r.Address.IsEmpty()
}

// MasterUpdateRequest - masterni tahrirlash so'rovi (faqat o'zgargan maydonlar)
type MasterUpdateRequest struct {
	Name    string   `json:"name,omitempty"`
	Email   string   `json:"email,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	Soha    string   `json:"soha,omitempty"`
	Status  string   `json:"status,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// IsEmpty - so'rovda hech narsa o'zgarmaganmi
func (r *MasterUpdateRequest) IsEmpty() bool {
	return r.Name == "" && r.Email == "" && r.Phone == "" &&
		r.Soha == "" && r.Status == "" && r.Address == nil
}

// ApplyTo - yangilangan maydonlarni xotiradagi nusxaga qo'shish.
// To'liq qayta yuklashsiz lokal ro'yxat yangilanadi.
func (r *MasterUpdateRequest) ApplyTo(m *Master) {
	if r.Name != "" {
		m.FullName = r.Name
	}
	if r.Email != "" {
		m.Email = r.Email
	}
	if r.Phone != "" {
		m.Phone = r.Phone
	}
	if r.Soha != "" {
		m.Specialty = r.Soha
	}
	if r.Status != "" {
		m.Status = r.Status
	}
	if r.Address != nil {
		m.Address = *r.Address
	}
}

// OnlineStatusRequest - master online holatini o'zgartirish
type OnlineStatusRequest struct {
	IsOnline bool `json:"isOnline"`
}

// MasterResponse - bitta master javobi
type MasterResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Master  *Master `json:"master,omitempty"`
}

// MastersResponse - masterlar ro'yxati javobi
type MastersResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Masters []Master `json:"masters"`
	Total   int      `json:"total"`
}
