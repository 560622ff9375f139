package handlers

import (
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"dern-support-gateway/internal/api"
	"dern-support-gateway/internal/kpi"
	"dern-support-gateway/models"
	"dern-support-gateway/pkg/logger"
)

// AdminStatsResponse - admin dashboard statistikasi
// @Description Admin KPI agregatlari
type AdminStatsResponse struct {
	Success  bool                `json:"success"`
	Summary  kpi.Summary         `json:"summary"`
	Monthly  []kpi.StatusBuckets `json:"monthly"`
	Daily    []kpi.DayCount      `json:"daily"`
	Region   []kpi.NameCount     `json:"region"`
	District []kpi.NameCount     `json:"district"`
	Masters  []kpi.MasterStat    `json:"masters"`
	Clients  int                 `json:"clients"`
}

// MasterStatsResponse - master dashboard statistikasi
// @Description Master KPI agregatlari
type MasterStatsResponse struct {
	Success bool                `json:"success"`
	Summary kpi.Summary         `json:"summary"`
	Monthly []kpi.StatusBuckets `json:"monthly"`
	Daily   []kpi.DayCount      `json:"daily"`
}

// GetAdminStats godoc
// @Summary      Admin dashboard statistikasi
// @Description  Buyurtma va master ro'yxatlari parallel yuklanadi. Bittasi xato bersa bo'sh ro'yxat bilan davom etiladi
// @Tags         stats
// @Produce      json
// @Success      200  {object}  AdminStatsResponse
// @Security     SessionCookie
// @Router       /stats/admin [get]
func GetAdminStats(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Faqat GET metodi qo'llab-quvvatlanadi",
			})
			return
		}

		sid := sessionID(r)

		var (
			wg      sync.WaitGroup
			orders  []models.Order
			masters []models.Master
			users   []models.SupportUser
		)

		wg.Add(3)
		go func() {
			defer wg.Done()
			var err error
			if orders, err = client.Orders(r.Context(), sid); err != nil {
				logger.Warn("statistika: buyurtmalarni yuklab bo'lmadi", zap.Error(err))
				orders = []models.Order{}
			}
		}()
		go func() {
			defer wg.Done()
			var err error
			if masters, err = client.Masters(r.Context(), sid); err != nil {
				logger.Warn("statistika: masterlarni yuklab bo'lmadi", zap.Error(err))
				masters = []models.Master{}
			}
		}()
		go func() {
			defer wg.Done()
			var err error
			if users, err = client.SupportUsers(r.Context(), sid); err != nil {
				logger.Warn("statistika: mijozlarni yuklab bo'lmadi", zap.Error(err))
				users = []models.SupportUser{}
			}
		}()
		wg.Wait()

		writeJSON(w, http.StatusOK, AdminStatsResponse{
			Success:  true,
			Summary:  kpi.Summarize(orders),
			Monthly:  kpi.ProcessMonthlyData(orders),
			Daily:    kpi.ProcessDailyData(orders, time.Now()),
			Region:   kpi.ProcessRegionData(orders),
			District: kpi.ProcessDistrictData(orders),
			Masters:  kpi.ProcessMasterData(masters, orders),
			Clients:  len(users),
		})
	}
}

// GetMasterStats godoc
// @Summary      Master dashboard statistikasi
// @Description  Faqat joriy masterga biriktirilgan buyurtmalar bo'yicha hisob
// @Tags         stats
// @Produce      json
// @Success      200  {object}  MasterStatsResponse
// @Security     SessionCookie
// @Router       /stats/master [get]
func GetMasterStats(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, models.AuthResponse{
				Success: false,
				Message: "Faqat GET metodi qo'llab-quvvatlanadi",
			})
			return
		}

		orders, err := client.MasterOrders(r.Context(), sessionID(r))
		if err != nil {
			logger.Warn("statistika: master buyurtmalarini yuklab bo'lmadi", zap.Error(err))
			orders = []models.Order{}
		}

		writeJSON(w, http.StatusOK, MasterStatsResponse{
			Success: true,
			Summary: kpi.Summarize(orders),
			Monthly: kpi.ProcessMonthlyData(orders),
			Daily:   kpi.ProcessDailyData(orders, time.Now()),
		})
	}
}
