package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"dern-support-gateway/handlers"
	"dern-support-gateway/internal/api"
	"dern-support-gateway/internal/session"
	"dern-support-gateway/models"
	"dern-support-gateway/pkg/config"
	"dern-support-gateway/pkg/logger"
	"dern-support-gateway/pkg/ratelimit"
	"dern-support-gateway/pkg/websocket"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// @title           Dern-Support Gateway API
// @version         1.0
// @description     Dern-Support IT yordam platformasi uchun gateway serveri. Rol bo'yicha himoyalangan dashboard endpointlari.

// @contact.name   API Support
// @contact.email  support@dern-support.uz

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name dern_session
// @description Login orqali olinadigan sessiya cookie

// CORS middleware - barcha so'rovlarga CORS headerlarini qo'shadi
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// CORS headers
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept")
		w.Header().Set("Access-Control-Max-Age", "86400")

		// OPTIONS so'rovlarini darhol qaytarish (preflight)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		log.Printf("📥 %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)

		next(w, r)
	}
}

func main() {
	// .env faylini yuklash
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env fayli topilmadi, environment variablelardan foydalaniladi")
	} else {
		fmt.Println("✅ .env fayli yuklandi")
	}

	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		log.Fatal("❌ Logger init error: ", err)
	}
	defer logger.Sync()

	// 1. Sessiya ombori: Redis sozlangan bo'lsa Redis, aks holda xotira
	var store session.Store
	var limiter ratelimit.Limiter

	if cfg.HasRedis() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			cancel()
			log.Fatal("❌ Redis ping error: ", err)
		}
		cancel()
		fmt.Printf("✅ Redis ulangan! (%s)\n", cfg.RedisAddr)

		store = session.NewRedisStore(rdb)
		limiter = ratelimit.NewRedisLimiter(rdb, 10, time.Minute)
	} else {
		fmt.Println("✅ Xotira sessiya ombori ishlatiladi (REDIS_ADDR berilmagan)")
		store = session.NewMemoryStore()
		limiter = ratelimit.NewMemoryLimiter(10, 20)
	}

	// 2. Backend API client
	client := api.New(cfg.APIBaseURL, cfg.APITimeout, store)
	fmt.Printf("✅ Backend API: %s\n", cfg.APIBaseURL)

	// 3. WebSocket Hub ishga tushirish
	websocket.InitGlobalHub()

	adminOnly := handlers.RequireRole(client, store, models.RoleAdmin)
	masterOnly := handlers.RequireRole(client, store, models.RoleMaster)
	userOnly := handlers.RequireRole(client, store, models.RoleUser)
	adminOrMaster := handlers.RequireRole(client, store, models.RoleAdmin, models.RoleMaster)
	anyRole := handlers.RequireAnyRole(client, store)

	// ============================================
	// AUTH ENDPOINTS (ochiq)
	// ============================================
	http.HandleFunc("/api/login", corsMiddleware(handlers.Login(client, store, limiter)))
	http.HandleFunc("/api/register", corsMiddleware(handlers.Register(client)))
	http.HandleFunc("/api/check-auth", corsMiddleware(handlers.CheckAuth(client, store)))
	http.HandleFunc("/api/logout", corsMiddleware(handlers.Logout(client, store)))

	// Bosh sahifa yordam formasi (ochiq, rate limit bilan)
	http.HandleFunc("/api/support", corsMiddleware(handlers.SubmitSupportRequest(client, limiter)))

	// Mavzu (dark/light) - sessiya bo'lmasa ham GET ishlaydi
	http.HandleFunc("/api/theme", corsMiddleware(handlers.ThemeHandler(store)))

	// ============================================
	// ORDERS (admin + master)
	// ============================================
	http.HandleFunc("/api/orders", corsMiddleware(adminOnly(handlers.GetOrders(client))))
	http.HandleFunc("/api/orders/master", corsMiddleware(masterOnly(handlers.GetMasterOrders(client))))
	http.HandleFunc("/api/orders/", corsMiddleware(adminOrMaster(handlers.OrderByIDHandler(client))))

	// ============================================
	// USER ORDERS (mijoz)
	// ============================================
	http.HandleFunc("/api/user-orders", corsMiddleware(userOnly(handlers.UserOrdersHandler(client))))
	http.HandleFunc("/api/user-orders/", corsMiddleware(userOnly(handlers.UserOrderByIDHandler(client))))

	// ============================================
	// MASTERS (admin)
	// ============================================
	http.HandleFunc("/api/masters", corsMiddleware(adminOnly(handlers.MastersHandler(client))))
	http.HandleFunc("/api/masters/", corsMiddleware(adminOnly(handlers.MasterByIDHandler(client))))

	// ============================================
	// PARTS (admin + master)
	// ============================================
	http.HandleFunc("/api/parts", corsMiddleware(adminOrMaster(handlers.PartsHandler(client))))
	http.HandleFunc("/api/parts/", corsMiddleware(adminOrMaster(handlers.PartByIDHandler(client))))

	// ============================================
	// USERS (admin)
	// ============================================
	http.HandleFunc("/api/users", corsMiddleware(adminOnly(handlers.GetSupportUsers(client))))

	// ============================================
	// STATS (dashboard KPI)
	// ============================================
	http.HandleFunc("/api/stats/admin", corsMiddleware(adminOnly(handlers.GetAdminStats(client))))
	http.HandleFunc("/api/stats/master", corsMiddleware(masterOnly(handlers.GetMasterStats(client))))

	// ============================================
	// PROFILE (har qanday rol)
	// ============================================
	http.HandleFunc("/api/profile", corsMiddleware(anyRole(handlers.ProfileHandler(client))))
	http.HandleFunc("/api/profile/change-password", corsMiddleware(anyRole(handlers.ChangePassword(client))))
	http.HandleFunc("/api/profile/change-password/verify", corsMiddleware(anyRole(handlers.VerifyPasswordChange(client))))
	http.HandleFunc("/api/profile/change-email", corsMiddleware(anyRole(handlers.ChangeEmail(client))))
	http.HandleFunc("/api/profile/change-email/verify", corsMiddleware(anyRole(handlers.VerifyEmailChange(client))))

	// ============================================
	// WEBSOCKET ENDPOINT (Real-time)
	// ============================================
	http.HandleFunc("/ws/orders", websocket.HandleWebSocket(store))

	// Serverni yoqish
	fmt.Printf("🚀 Server %s-portda ishlayapti...\n", cfg.ServerPort)
	fmt.Println("")
	fmt.Println("🔐 Auth endpoints:")
	fmt.Println("   POST /api/login      - Kirish (rolga mos redirect)")
	fmt.Println("   POST /api/register   - Ro'yxatdan o'tish")
	fmt.Println("   GET  /api/check-auth - Sessiyani tekshirish")
	fmt.Println("   POST /api/logout     - Chiqish")
	fmt.Println("")
	fmt.Println("🛒 Orders endpoints:")
	fmt.Println("   GET   /api/orders               - Buyurtmalar (admin, ?status=&search=)")
	fmt.Println("   GET   /api/orders/master        - Master buyurtmalari")
	fmt.Println("   GET   /api/orders/{id}          - Batafsil")
	fmt.Println("   PATCH /api/orders/{id}/status   - Status o'zgartirish")
	fmt.Println("   PATCH /api/orders/{id}/edit     - Master tahriri")
	fmt.Println("")
	fmt.Println("👤 User orders endpoints:")
	fmt.Println("   GET   /api/user-orders              - Mening buyurtmalarim")
	fmt.Println("   POST  /api/user-orders              - Yangi buyurtma")
	fmt.Println("   GET   /api/user-orders/{id}         - Batafsil")
	fmt.Println("   PUT   /api/user-orders/{id}         - Tahrirlash")
	fmt.Println("   PATCH /api/user-orders/{id}/cancel  - Bekor qilish")
	fmt.Println("")
	fmt.Println("🔧 Masters endpoints (admin):")
	fmt.Println("   GET    /api/masters                     - Ro'yxat")
	fmt.Println("   POST   /api/masters                     - Qo'shish")
	fmt.Println("   PUT    /api/masters/{id}                - Tahrirlash")
	fmt.Println("   DELETE /api/masters/{id}                - O'chirish")
	fmt.Println("   PATCH  /api/masters/{id}/online-status  - Online holat")
	fmt.Println("")
	fmt.Println("📊 Stats endpoints:")
	fmt.Println("   GET /api/stats/admin  - Admin KPI")
	fmt.Println("   GET /api/stats/master - Master KPI")
	fmt.Println("")
	fmt.Println("🔌 WebSocket:")
	fmt.Println("   WS /ws/orders - Buyurtma yangilanishlari (rol kanali)")

	if err := http.ListenAndServe(":"+cfg.ServerPort, nil); err != nil {
		log.Fatal("❌ Server error: ", err)
	}
}
