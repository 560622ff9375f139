package api

import (
	"encoding/json"
	"fmt"

	"dern-support-gateway/models"
)

// ParseError - backend javobi kutilgan shaklga mos kelmadi.
// Har bir resurs bitta adapterda normallashtiriladi: sahifalar "Noma'lum"
// placeholder bilan yashirin ishlash o'rniga aniq xato oladi.
type ParseError struct {
	Resource string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s javobini o'qib bo'lmadi: %s", e.Resource, e.Reason)
}

// unwrapList - backend ro'yxatlarni uch xil shaklda qaytaradi:
// to'g'ridan-to'g'ri massiv, {data: [...]} yoki {data: {<key>: [...]}} / {<key>: [...]}.
// Hammasi bitta joyda massivga keltiriladi.
func unwrapList(raw json.RawMessage, resource string, keys ...string) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &ParseError{Resource: resource, Reason: "massiv ham, obyekt ham emas"}
	}

	candidates := append([]string{"data"}, keys...)
	for _, key := range candidates {
		inner, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(inner, &items); err == nil {
			return items, nil
		}
		// {data: {masters: [...]}} ko'rinishi
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(inner, &nested); err == nil {
			for _, k := range keys {
				if list, ok := nested[k]; ok {
					if err := json.Unmarshal(list, &items); err == nil {
						return items, nil
					}
				}
			}
		}
	}
	return nil, &ParseError{Resource: resource, Reason: "ro'yxat maydoni topilmadi"}
}

// unwrapObject - bitta hujjatni {data: {...}} yoki {<key>: {...}} qobig'idan chiqarish
func unwrapObject(raw json.RawMessage, resource string, keys ...string) (json.RawMessage, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &ParseError{Resource: resource, Reason: "obyekt emas"}
	}
	candidates := append([]string{"data"}, keys...)
	for _, key := range candidates {
		if inner, ok := envelope[key]; ok {
			var probe map[string]json.RawMessage
			if err := json.Unmarshal(inner, &probe); err == nil {
				return inner, nil
			}
		}
	}
	// Qobiq yo'q - hujjatning o'zi
	return raw, nil
}

// extractID - id yoki MongoDB uslubidagi _id maydonini o'qish (string yoki raqam)
func extractID(raw json.RawMessage) string {
	var d struct {
		ID  json.RawMessage `json:"id"`
		MID json.RawMessage `json:"_id"`
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		return ""
	}
	for _, field := range []json.RawMessage{d.ID, d.MID} {
		if len(field) == 0 {
			continue
		}
		var s string
		if err := json.Unmarshal(field, &s); err == nil && s != "" {
			return s
		}
		var n json.Number
		if err := json.Unmarshal(field, &n); err == nil {
			return n.String()
		}
	}
	return ""
}

// toOrder - buyurtma hujjatini normallashtirish
func toOrder(raw json.RawMessage) (models.Order, error) {
	var o models.Order
	if err := json.Unmarshal(raw, &o); err != nil {
		return o, &ParseError{Resource: "order", Reason: err.Error()}
	}
	if o.ID == "" {
		o.ID = extractID(raw)
	}
	if o.ID == "" {
		return o, &ParseError{Resource: "order", Reason: "id maydoni yo'q"}
	}
	return o, nil
}

// toMaster - master hujjatini normallashtirish (name/fullName farqi bilan)
func toMaster(raw json.RawMessage) (models.Master, error) {
	var m models.Master
	if err := json.Unmarshal(raw, &m); err != nil {
		return m, &ParseError{Resource: "master", Reason: err.Error()}
	}
	if m.ID == "" {
		m.ID = extractID(raw)
	}
	if m.ID == "" {
		return m, &ParseError{Resource: "master", Reason: "id maydoni yo'q"}
	}
	if m.FullName == "" {
		var alt struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &alt); err == nil {
			m.FullName = alt.Name
		}
	}
	if m.Specialty == "" {
		var alt struct {
			Soha string `json:"soha"`
		}
		if err := json.Unmarshal(raw, &alt); err == nil {
			m.Specialty = alt.Soha
		}
	}
	return m, nil
}

// toSupportUser - mijoz hujjatini normallashtirish
func toSupportUser(raw json.RawMessage) (models.SupportUser, error) {
	var u models.SupportUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return u, &ParseError{Resource: "user", Reason: err.Error()}
	}
	if u.ID == "" {
		u.ID = extractID(raw)
	}
	if u.ID == "" {
		return u, &ParseError{Resource: "user", Reason: "id maydoni yo'q"}
	}
	if u.FullName == "" {
		var alt struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &alt); err == nil {
			u.FullName = alt.Name
		}
	}
	return u, nil
}

// toPart - qism hujjatini normallashtirish
func toPart(raw json.RawMessage) (models.Part, error) {
	var p models.Part
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, &ParseError{Resource: "part", Reason: err.Error()}
	}
	if p.ID == "" {
		p.ID = extractID(raw)
	}
	if p.ID == "" {
		return p, &ParseError{Resource: "part", Reason: "id maydoni yo'q"}
	}
	return p, nil
}

// toSessionUser - auth javobidagi foydalanuvchi bloki
func toSessionUser(raw json.RawMessage) (*models.SessionUser, error) {
	var u models.SessionUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, &ParseError{Resource: "auth user", Reason: err.Error()}
	}
	if u.ID == "" {
		u.ID = extractID(raw)
	}
	if u.ID == "" {
		return nil, &ParseError{Resource: "auth user", Reason: "id maydoni yo'q"}
	}
	return &u, nil
}
