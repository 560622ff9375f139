package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"dern-support-gateway/models"
)

var validate *validator.Validate

var (
	phoneRegexp = regexp.MustCompile(`^\+998\d{9}$`)
	emailRegexp = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

func init() {
	validate = validator.New()

	validate.RegisterValidation("phone_uz", validateUzbekPhone)
	validate.RegisterValidation("strong_password", validateStrongPassword)
}

// Validate - strukturani validate teglari bo'yicha tekshirish
func Validate(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// validateUzbekPhone - o'zbek telefon raqami formati
func validateUzbekPhone(fl validator.FieldLevel) bool {
	return phoneRegexp.MatchString(fl.Field().String())
}

// validateStrongPassword - parol mustahkamligi (kamida 8 belgi, harf va raqam)
func validateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)
	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	return hasDigit && hasLetter
}

// ValidateRegisterForm - ro'yxatdan o'tish formasini tekshirish.
// Tartib muhim: birinchi topilgan xato qaytadi va so'rov backendga yuborilmaydi.
func ValidateRegisterForm(req models.RegisterRequest) error {
	if req.Password != req.ConfirmPassword {
		return errors.New("Parollar mos kelmadi!")
	}
	if len(req.Password) < 8 {
		return errors.New("Parol kamida 8 ta belgidan iborat bo'lishi shart!")
	}
	if !phoneRegexp.MatchString(req.Phone) {
		return errors.New("Telefon raqami +998XXXXXXXXX formatida bo'lishi kerak")
	}
	if !emailRegexp.MatchString(req.Email) {
		return errors.New("Elektron pochta formati noto'g'ri")
	}
	if req.UserType == models.UserTypeYuridik && req.CompanyName == "" {
		return errors.New("Biznes hisoblari uchun kompaniya nomi talab qilinadi")
	}
	return nil
}

// IsValidPhone - telefon raqami formatini tekshirish
func IsValidPhone(phone string) bool {
	return phoneRegexp.MatchString(phone)
}

// IsValidEmail - email formatini tekshirish
func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// formatValidationError - validator xatolarini foydalanuvchi tiliga o'girish
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, formatFieldError(e))
		}
		return errors.New(strings.Join(messages, "; "))
	}
	return err
}

// formatFieldError - bitta maydon xatosi
func formatFieldError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s to'ldirilishi shart", field)
	case "email":
		return fmt.Sprintf("%s yaroqli email bo'lishi kerak", field)
	case "min":
		return fmt.Sprintf("%s kamida %s belgidan iborat bo'lishi kerak", field, e.Param())
	case "max":
		return fmt.Sprintf("%s ko'pi bilan %s belgidan iborat bo'lishi kerak", field, e.Param())
	case "phone_uz":
		return fmt.Sprintf("%s +998XXXXXXXXX formatida bo'lishi kerak", field)
	case "strong_password":
		return fmt.Sprintf("%s kamida 8 ta belgi, harf va raqamdan iborat bo'lishi kerak", field)
	default:
		return fmt.Sprintf("%s tekshiruvdan o'tmadi: %s", field, e.Tag())
	}
}
