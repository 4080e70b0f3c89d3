package handler

import (
	"log/slog"

	"faq-service/internal/http/middleware"
	"faq-service/internal/realtime"
	"faq-service/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type AppDeps struct {
	Auth          *service.AuthService
	FAQs          *service.FAQService
	Hub           *realtime.FAQHub // optional
	Checks        map[string]Pinger
	CORSOrigins   string
	SecureCookies bool
	AccessLog     bool
	Logger        *slog.Logger
}

// NewApp builds the fiber app with every route mounted.
func NewApp(d AppDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
		ErrorHandler:  middleware.ErrorHandler(d.Logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if d.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		}))
	}
	origins := d.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: origins != "*",
	}))

	app.Get("/", Home)
	app.Get("/health", Health(d.Checks))

	adminAuth := middleware.AdminAuth(d.Auth)

	// Admin
	auth := NewAuthHandler(d.Auth, d.SecureCookies)
	admin := app.Group("/admin")
	admin.Post("/register", auth.Register)
	admin.Post("/login", auth.Login)
	admin.Post("/refresh-token", auth.RefreshToken)
	admin.Post("/logout", auth.Logout)

	// FAQ
	faqs := NewFAQHandler(d.FAQs)
	app.Get("/faq", faqs.GetAllFAQs)
	app.Get("/faq/:id", faqs.GetFAQByID)
	app.Post("/faq", adminAuth, faqs.CreateFAQ)
	app.Put("/faq/:id", adminAuth, faqs.UpdateFAQ)
	app.Delete("/faq/:id", adminAuth, faqs.DeleteFAQ)

	if d.Hub != nil {
		app.Get("/ws/faqs", RequireUpgrade, adminAuth, FAQEventsWS(d.Hub))
	}

	return app
}
