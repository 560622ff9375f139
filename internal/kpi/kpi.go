// Package kpi buyurtma va master ro'yxatlarini chart uchun tayyor
// agregatlarga aylantiradi. Har bir metrika bitta chiziqli o'tishda
// hisoblanadi va har yangilanishda qaytadan quriladi.
package kpi

import (
	"math"
	"sort"
	"strings"
	"time"

	"dern-support-gateway/models"
)

// Status klasslari
type Class int

const (
	ClassUnknown Class = iota
	ClassCompleted
	ClassInProgress
	ClassPlanned
)

// Classify - statusni uchta klassdan biriga ajratish.
// Bir nechta lug'at qo'llab-quvvatlanadi (o'zbekcha va inglizcha statuslar).
// Noma'lum status hech bir klassga kirmaydi.
func Classify(status string) Class {
	switch strings.ToLower(status) {
	case "tasdiqlangan", "arxiv", "completed":
		return ClassCompleted
	case "jarayonda", "in_progress":
		return ClassInProgress
	case "yangi", "new", "pending":
		return ClassPlanned
	default:
		return ClassUnknown
	}
}

// MonthLabels - oylarning qisqa o'zbekcha nomlari
var MonthLabels = [12]string{"Yan", "Fev", "Mar", "Apr", "May", "Iyn", "Iyl", "Avg", "Sen", "Okt", "Noy", "Dek"}

// dateFormats - backend sanalarining kuzatilgan formatlari
var dateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate - sanani moslashuvchan o'qish; o'qib bo'lmasa ok=false
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// StatusBuckets - bitta bo'lak uchun klasslar bo'yicha hisob
type StatusBuckets struct {
	Name       string `json:"name"`
	Completed  int    `json:"completed"`
	InProgress int    `json:"inProgress"`
	Planned    int    `json:"planned"`
	Total      int    `json:"total"`
}

func (b *StatusBuckets) add(status string) {
	b.Total++
	switch Classify(status) {
	case ClassCompleted:
		b.Completed++
	case ClassInProgress:
		b.InProgress++
	case ClassPlanned:
		b.Planned++
	}
}

// MasterStat - bitta master bo'yicha ko'rsatkichlar
type MasterStat struct {
	Name           string `json:"name"`
	Completed      int    `json:"completed"`
	InProgress     int    `json:"inProgress"`
	Planned        int    `json:"planned"`
	Total          int    `json:"total"`
	CompletionRate int    `json:"completionRate"`
}

// ProcessMasterData - buyurtmalarni masterlar bo'yicha guruhlash.
// Buyurtmasiz masterlar ro'yxatga kirmaydi.
func ProcessMasterData(masters []models.Master, orders []models.Order) []MasterStat {
	type entry struct {
		stat  MasterStat
		order int // masterlar ro'yxatidagi tartib
	}
	index := make(map[string]*entry, len(masters))
	keys := make([]string, 0, len(masters))
	for i, m := range masters {
		name := m.FullName
		if name == "" {
			name = "Master " + m.ID
		}
		index[m.ID] = &entry{stat: MasterStat{Name: name}, order: i}
		keys = append(keys, m.ID)
	}

	for _, o := range orders {
		ref := o.MasterRef()
		e, ok := index[ref]
		if !ok {
			continue
		}
		e.stat.Total++
		switch Classify(o.Status) {
		case ClassCompleted:
			e.stat.Completed++
		case ClassInProgress:
			e.stat.InProgress++
		case ClassPlanned:
			e.stat.Planned++
		}
	}

	stats := make([]MasterStat, 0, len(keys))
	for _, key := range keys {
		e := index[key]
		if e.stat.Total == 0 {
			continue
		}
		e.stat.CompletionRate = int(math.Round(float64(e.stat.Completed) / float64(e.stat.Total) * 100))
		stats = append(stats, e.stat)
	}
	return stats
}

// NameCount - nom bo'yicha sanash (pie/bar chartlar uchun)
type NameCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ProcessRegionData - buyurtmalarni shahar bo'yicha guruhlash (top 8).
// Manzil stringdan vergul bo'yicha ajratilgan birinchi bo'lak shahar hisoblanadi.
func ProcessRegionData(orders []models.Order) []NameCount {
	counts := map[string]int{}
	for _, o := range orders {
		city := o.Address.City
		if city == "" {
			city = "Noma'lum"
		}
		counts[city]++
	}
	return topCounts(counts, 8)
}

// ProcessDistrictData - buyurtmalarni tuman bo'yicha guruhlash (top 10).
// Tuman bo'sh bo'lsa shahar, u ham bo'sh bo'lsa "Noma'lum" ishlatiladi.
func ProcessDistrictData(orders []models.Order) []NameCount {
	counts := map[string]int{}
	for _, o := range orders {
		district := o.Address.District
		if district == "" {
			district = o.Address.City
		}
		if district == "" {
			district = "Noma'lum"
		}
		counts[district]++
	}
	return topCounts(counts, 10)
}

// topCounts - kamayish tartibida saralab eng kattalarini olish
func topCounts(counts map[string]int, limit int) []NameCount {
	result := make([]NameCount, 0, len(counts))
	for name, value := range counts {
		result = append(result, NameCount{Name: name, Value: value})
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Value != result[j].Value {
			return result[i].Value > result[j].Value
		}
		return result[i].Name < result[j].Name
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// ProcessMonthlyData - 12 ta qat'iy oy bo'lagi bo'yicha hisob.
// Yil farqlanmaydi: yanvar buyurtmasi 0-indeksga, mart 2-indeksga tushadi.
func ProcessMonthlyData(orders []models.Order) []StatusBuckets {
	buckets := make([]StatusBuckets, 12)
	for i := range buckets {
		buckets[i].Name = MonthLabels[i]
	}
	for _, o := range orders {
		t, ok := parseDate(o.EventDate())
		if !ok {
			continue
		}
		buckets[int(t.Month())-1].add(o.Status)
	}
	return buckets
}

// DayCount - oxirgi 30 kunlik trend bo'lagi
type DayCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ProcessDailyData - oxirgi 30 kun bo'yicha kunlik hisob.
// Bo'laklar 30 kun avvaldan boshlab kun ofseti bo'yicha indekslanadi.
func ProcessDailyData(orders []models.Order, now time.Time) []DayCount {
	start := now.AddDate(0, 0, -30)

	buckets := make([]DayCount, 30)
	for i := range buckets {
		day := start.AddDate(0, 0, i)
		buckets[i] = DayCount{Name: day.Format("2")}
	}

	for _, o := range orders {
		t, ok := parseDate(o.EventDate())
		if !ok || t.Before(start) || t.After(now) {
			continue
		}
		idx := int(t.Sub(start).Hours() / 24)
		if idx >= 0 && idx < 30 {
			buckets[idx].Value++
		}
	}
	return buckets
}

// Summary - umumiy ko'rsatkichlar
type Summary struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	InProgress     int `json:"inProgress"`
	Planned        int `json:"planned"`
	CompletionRate int `json:"completionRate"`
}

// Summarize - buyurtmalar bo'yicha umumiy hisob
func Summarize(orders []models.Order) Summary {
	var s Summary
	s.Total = len(orders)
	for _, o := range orders {
		switch Classify(o.Status) {
		case ClassCompleted:
			s.Completed++
		case ClassInProgress:
			s.InProgress++
		case ClassPlanned:
			s.Planned++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

// FilterByMaster - buyurtmalarni bitta masterga tegishlilari bilan cheklash
func FilterByMaster(orders []models.Order, masterID string) []models.Order {
	filtered := []models.Order{}
	for _, o := range orders {
		if o.MasterRef() == masterID {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
