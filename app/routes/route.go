package routes

import (
	"net/http"

	"shopfront/app/configs"
	"shopfront/app/handlers"
	"shopfront/app/middlewares"
	"shopfront/app/repositories"
	"shopfront/app/services"
	"shopfront/app/utils/sessions"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers onto the /api surface.
// Reads are public; catalog and order mutations sit behind the admin guard.
func NewRouter(db *gorm.DB) http.Handler {
	renderer := render.New()
	store := sessions.NewCookieSessionStore(configs.LoadENV.SessionKey)

	settingsRepo := repositories.NewSiteSettingRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	userRepo := repositories.NewUserRepository(db)

	carouselSvc := services.NewCarouselService(catalogRepo)
	homeSvc := services.NewHomeService(settingsRepo, catalogRepo, carouselSvc)
	orderSvc := services.NewOrderService(db, settingsRepo, catalogRepo, orderRepo, orderItemRepo)

	homeHandler := handlers.NewHomeHandler(renderer, homeSvc)
	productHandler := handlers.NewProductHandler(renderer, catalogRepo)
	categoryHandler := handlers.NewCategoryHandler(renderer, categoryRepo)
	orderHandler := handlers.NewOrderHandler(renderer, orderSvc, orderRepo)
	paymentHandler := handlers.NewPaymentHandler(renderer, paymentRepo)
	authHandler := handlers.NewAuthHandler(renderer, userRepo, store)

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	api.StrictSlash(true)
	api.Use(middlewares.CurrentUserMiddleware(store))

	api.HandleFunc("/home/", homeHandler.HomeConfigGet).Methods("GET")

	api.HandleFunc("/products/", productHandler.ListGet).Methods("GET")
	api.HandleFunc("/products/{id}/", productHandler.DetailGet).Methods("GET")

	api.HandleFunc("/categories/", categoryHandler.ListGet).Methods("GET")
	api.HandleFunc("/categories/tree/", categoryHandler.TreeGet).Methods("GET")

	api.HandleFunc("/orders/", orderHandler.CreatePost).Methods("POST")
	api.HandleFunc("/orders/", orderHandler.ListGet).Methods("GET")
	api.HandleFunc("/orders/{id}/", orderHandler.DetailGet).Methods("GET")

	api.HandleFunc("/payment/settings/", paymentHandler.SettingsGet).Methods("GET")
	api.HandleFunc("/payment/gateways/", paymentHandler.GatewaysGet).Methods("GET")

	api.HandleFunc("/auth/register/", authHandler.RegisterPost).Methods("POST")
	api.HandleFunc("/auth/login/", authHandler.LoginPost).Methods("POST")
	api.HandleFunc("/auth/logout/", authHandler.LogoutPost).Methods("POST")
	api.HandleFunc("/auth/me/", authHandler.MeGet).Methods("GET")
	api.HandleFunc("/auth/csrf/", authHandler.CSRFGet).Methods("GET")

	admin := api.NewRoute().Subrouter()
	admin.Use(middlewares.AdminAuthMiddleware(userRepo, renderer))

	admin.HandleFunc("/products/", productHandler.CreatePost).Methods("POST")
	admin.HandleFunc("/products/{id}/", productHandler.UpdatePut).Methods("PUT")
	admin.HandleFunc("/products/{id}/", productHandler.PartialUpdatePatch).Methods("PATCH")
	admin.HandleFunc("/products/{id}/", productHandler.DeleteDelete).Methods("DELETE")
	admin.HandleFunc("/products/{id}/clone/", productHandler.ClonePost).Methods("POST")

	admin.HandleFunc("/categories/", categoryHandler.CreatePost).Methods("POST")
	admin.HandleFunc("/categories/{id}/", categoryHandler.UpdatePut).Methods("PUT")
	admin.HandleFunc("/categories/{id}/", categoryHandler.DeleteDelete).Methods("DELETE")

	admin.HandleFunc("/orders/{id}/status/", orderHandler.StatusPatch).Methods("PATCH")
	admin.HandleFunc("/orders/{id}/items/", orderHandler.ItemsPut).Methods("PUT")

	if key := configs.LoadENV.CSRFKey; key != "" {
		protect := csrf.Protect(
			[]byte(key),
			csrf.Path("/"),
			csrf.Secure(configs.LoadENV.AppEnv == "production"),
		)
		return protect(router)
	}
	return router
}
