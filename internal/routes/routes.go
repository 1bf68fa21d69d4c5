package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/i-ankit-here/scrap-con-backend/internal/auth"
	"github.com/i-ankit-here/scrap-con-backend/internal/config"
	"github.com/i-ankit-here/scrap-con-backend/internal/handlers"
	"github.com/i-ankit-here/scrap-con-backend/internal/middleware"
)

// Setup wires the HTTP surface. Role gating per route and the RequireRole
// middleware together form the authorization table.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	pickupHandler *handlers.PickupHandler,
	vendorHandler *handlers.VendorHandler,
	reviewHandler *handlers.ReviewHandler,
	addressHandler *handlers.AddressHandler,
	categoryHandler *handlers.CategoryHandler,
	mediaHandler *handlers.MediaHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	protected := middleware.JWTProtected(cfg)
	customerOnly := middleware.RequireRole(auth.RoleCustomer)
	vendorOnly := middleware.RequireRole(auth.RoleVendor)

	// Auth rate limit: 10 req/min per IP (stricter)
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})

	// Customer accounts
	users := app.Group("/users")
	users.Post("/register", authLimiter, authHandler.RegisterUser)
	users.Post("/login", authLimiter, authHandler.LoginUser)
	users.Post("/addresses", protected, customerOnly, addressHandler.CreateAddress)
	users.Get("/addresses", protected, customerOnly, addressHandler.ListAddresses)
	users.Delete("/addresses/:addressId", protected, customerOnly, addressHandler.DeleteAddress)

	// Token lifecycle
	authGroup := app.Group("/auth")
	authGroup.Post("/refresh", authLimiter, authHandler.Refresh)
	authGroup.Post("/logout", protected, authHandler.Logout)

	// Vendors
	vendors := app.Group("/vendors")
	vendors.Post("/register", authLimiter, authHandler.RegisterVendor)
	vendors.Post("/login", authLimiter, authHandler.LoginVendor)
	vendors.Get("/profile", protected, vendorOnly, vendorHandler.GetProfile)
	vendors.Put("/profile", protected, vendorOnly, vendorHandler.UpdateProfile)
	vendors.Put("/service-area", protected, vendorOnly, vendorHandler.UpdateServiceArea)
	vendors.Get("/service-area", protected, vendorOnly, vendorHandler.GetServiceArea)
	vendors.Put("/location", protected, vendorOnly, vendorHandler.UpdateLocation)
	vendors.Put("/availability", protected, vendorOnly, vendorHandler.UpdateAvailability)
	vendors.Get("/nearby", vendorHandler.GetNearbyVendors)
	vendors.Get("/nearby-for-user", protected, customerOnly, vendorHandler.GetNearbyVendorsForUser)

	// Pickups
	pickups := app.Group("/pickups", protected)
	pickups.Post("/request", customerOnly, pickupHandler.RequestPickup)
	pickups.Get("/vendor", vendorOnly, pickupHandler.GetVendorPickups)
	pickups.Get("/customer", customerOnly, pickupHandler.GetCustomerPickups)
	pickups.Put("/:pickupId/status", vendorOnly, pickupHandler.UpdatePickupStatus)

	// Reviews. Delete is exposed as GET to match the existing client contract.
	reviews := app.Group("/reviews", protected)
	reviews.Post("/createReview", customerOnly, reviewHandler.CreateReview)
	reviews.Post("/updateReview", customerOnly, reviewHandler.UpdateReview)
	reviews.Get("/getAllReviewsByUser", customerOnly, reviewHandler.GetAllReviewsByUser)
	reviews.Get("/getReviewByPickup/:pickupId", reviewHandler.GetReviewByPickup)
	reviews.Get("/deleteReview/:reviewId", customerOnly, reviewHandler.DeleteReview)

	// Reference data
	app.Get("/categories", categoryHandler.ListCategories)

	// Media presigning
	media := app.Group("/media", protected)
	media.Post("/presign-upload", mediaHandler.PresignUpload)
	media.Get("/presign-download", mediaHandler.PresignDownload)
}
