package api

import (
	"log"
	stdhttp "net/http"

	intconfig "bookingplan/internal/config"
	"bookingplan/internal/domain"
	h "bookingplan/internal/http/handlers"
	"bookingplan/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetAuthConfig([]byte(env.JWTSecret), env.JWTTTL)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authed := middleware.RequireAuth(h.ParseToken)
	admin := middleware.RequireRoles(domain.RoleAdmin)
	agencyStaff := middleware.RequireRoles(domain.RoleAdmin, domain.RoleAgencyReceptionist)
	accommodationStaff := middleware.RequireRoles(domain.RoleAdmin, domain.RoleAccommodationReceptionist)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", authed, admin, h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)

		// Users & profiles
		users := api.Group("/users", authed)
		users.GET("/me", h.Me)
		users.POST("", admin, h.CreateUser)

		profile := api.Group("/profile", authed)
		profile.GET("", h.GetProfile)
		profile.PUT("", h.SaveProfile)

		// Agencies
		agencies := api.Group("/agencies")
		agencies.GET("", h.ListAgencies)
		agencies.GET("/:id", h.GetAgency)
		agencies.POST("", authed, admin, h.CreateAgency)

		// Travel plans & reservations
		plans := api.Group("/travel-plans")
		plans.GET("", h.ListTravelPlans)
		plans.GET("/:id", h.GetTravelPlan)
		plans.POST("", authed, agencyStaff, h.CreateTravelPlan)
		plans.PUT("/:id/complete", authed, agencyStaff, h.CompleteTravelPlan)
		plans.POST("/:id/reservations", authed, h.CreateReservation)
		plans.GET("/:id/reservations", authed, agencyStaff, h.ListPlanReservations)

		reservations := api.Group("/reservations", authed)
		reservations.GET("", h.ListMyReservations)
		reservations.GET("/:id", h.GetReservation)
		reservations.GET("/:id/ticket", h.GetReservationTicket)

		// Accommodations & bookings
		accommodations := api.Group("/accommodations")
		accommodations.GET("", h.ListAccommodations)
		accommodations.GET("/:id", h.GetAccommodation)
		accommodations.POST("", authed, accommodationStaff, h.CreateAccommodation)

		bookings := api.Group("/bookings", authed)
		bookings.POST("", h.CreateBooking)
		bookings.GET("/me", h.GetMyBooking)

		// Destinations
		destinations := api.Group("/destinations")
		destinations.GET("", h.ListDestinations)
		destinations.GET("/:id", h.GetDestination)
		destinations.POST("", authed, admin, h.CreateDestination)
	}

	h.SetRouter(r)
	return r
}
