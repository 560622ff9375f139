package models

// Foydalanuvchi turlari (ro'yxatdan o'tishda)
const (
	UserTypeJismoniy = "jismoniy"
	UserTypeYuridik  = "yuridik"
)

// Rollar
const (
	RoleAdmin  = "admin"
	RoleMaster = "master"
	RoleUser   = "user"
)

// UserOrders - mijoz buyurtmalari hisobi
type UserOrders struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// SupportUser - mijoz hisobi (admin ko'rinishi)
// @Description Mijoz hisobi ma'lumotlari
type SupportUser struct {
	ID               string     `json:"id"`
	FullName         string     `json:"fullName"`
	Email            string     `json:"email,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	Status           string     `json:"status"` // active, inactive, pending
	RegistrationDate string     `json:"registrationDate,omitempty"`
	Orders           UserOrders `json:"orders"`
}

// SessionUser - sessiyada saqlanadigan foydalanuvchi ma'lumoti.
// Backend /orders/:id so'rovlariga userId query param sifatida shu id ni kutadi.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Login string `json:"login,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// RegisterRequest - ro'yxatdan o'tish so'rovi
type RegisterRequest struct {
	UserType        string `json:"userType"`
	Name            string `json:"name"`
	Login           string `json:"login"`
	CompanyName     string `json:"companyName,omitempty"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest - kirish so'rovi
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AuthResponse - autentifikatsiya javobi
type AuthResponse struct {
	Success  bool         `json:"success"`
	Message  string       `json:"message,omitempty"`
	Redirect string       `json:"redirect,omitempty"`
	User     *SessionUser `json:"user,omitempty"`
}

// CheckAuthResponse - /check-auth javobi
type CheckAuthResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *SessionUser `json:"user,omitempty"`
}

// SupportUsersResponse - mijozlar ro'yxati javobi
type SupportUsersResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Users   []SupportUser `json:"users"`
	Total   int           `json:"total"`
}

// DashboardRoute - rolga mos dashboard yo'li
func DashboardRoute(role string) string {
	switch role {
	case RoleAdmin:
		return "/dashboard/admin"
	case RoleMaster:
		return "/dashboard/master"
	case RoleUser:
		return "/dashboard/user"
	default:
		return ""
	}
}
