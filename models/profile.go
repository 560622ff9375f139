package models

// Profile - joriy foydalanuvchi profili
// @Description Profil ma'lumotlari
type Profile struct {
	Name      string `json:"name"`
	Login     string `json:"login"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// AvatarOptions - profil uchun tanlanadigan avatarlar (frontend ro'yxati bilan bir xil)
var AvatarOptions = []string{
	"https://cdn-icons-png.flaticon.com/128/149/149071.png",
	"https://cdn-icons-png.flaticon.com/128/924/924874.png",
	"https://cdn-icons-png.flaticon.com/128/4140/4140039.png",
	"https://cdn-icons-png.flaticon.com/128/4140/4140061.png",
	"https://cdn-icons-png.flaticon.com/128/4333/4333609.png",
	"https://cdn-icons-png.flaticon.com/128/1154/1154448.png",
	"https://cdn-icons-png.flaticon.com/128/16683/16683419.png",
	"https://cdn-icons-png.flaticon.com/128/1177/1177568.png",
	"https://cdn-icons-png.flaticon.com/128/6997/6997674.png",
}

// IsValidAvatar - avatar ro'yxatdagi rasmlardan birimi
func IsValidAvatar(avatar string) bool {
	for _, a := range AvatarOptions {
		if a == avatar {
			return true
		}
	}
	return false
}

// ProfileUpdateRequest - profilni tahrirlash so'rovi
type ProfileUpdateRequest struct {
	Name   string `json:"name,omitempty"`
	Login  string `json:"login,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// ChangePasswordRequest - parol o'zgartirish so'rovi
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// VerifyChangeRequest - parol/email o'zgartirishni tasdiqlash kodi
type VerifyChangeRequest struct {
	Code string `json:"code"`
}

// ChangeEmailRequest - email o'zgartirish so'rovi
type ChangeEmailRequest struct {
	NewEmail string `json:"newEmail"`
}

// ProfileResponse - profil javobi
type ProfileResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Profile *Profile `json:"profile,omitempty"`
}

// ThemeRequest - mavzu (dark/light) o'zgartirish so'rovi
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ThemeResponse - mavzu javobi
type ThemeResponse struct {
	Success bool   `json:"success"`
	Theme   string `json:"theme"`
}
