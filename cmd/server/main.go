package main

import (
	"context"
	"log"
	"runtime"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"helpdesk-backend/internal/config"
	"helpdesk-backend/internal/http/handler"
	"helpdesk-backend/internal/notify"
	"helpdesk-backend/internal/realtime"
	"helpdesk-backend/internal/store"
	"helpdesk-backend/internal/ticket"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	app := fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
		BodyLimit:     2 * 1024 * 1024, // inline base64 attachments
	})

	config.LoadEnv()
	config.InitRedis()

	// Storage adapter: in-memory by default, MySQL when configured.
	var st store.TicketStore
	switch driver := config.GetEnv("STORE_DRIVER", "memory"); driver {
	case "memory":
		st = store.NewMemoryStore()
		log.Println("Using in-memory ticket store (data is lost on restart)")
	case "mysql":
		config.InitDB()
		defer config.CloseDB()
		ms := store.NewMySQLStore(config.DB)
		if err := ms.EnsureSchema(context.Background()); err != nil {
			log.Fatal("Schema init failed:", err)
		}
		st = ms
	default:
		log.Fatal("Unknown STORE_DRIVER: ", driver)
	}

	var seq ticket.Sequencer = ticket.NewCounterSequencer()
	if config.Redis != nil {
		seq = ticket.NewRedisSequencer(config.Redis)
	}

	hub := realtime.NewTicketsHub()
	go hub.Run()

	requireAttachment := config.GetEnv("REQUIRE_ATTACHMENT", "false") == "true"
	svc := ticket.NewService(st, seq, notify.NewLogMailer(), hub, requireAttachment)

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PATCH, DELETE",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Helpdesk API running",
		})
	})

	uploadDir := config.GetEnv("UPLOAD_DIR", "./uploads")
	handler.RegisterRoutes(app,
		handler.NewTicketHandler(svc),
		handler.NewUploadHandler(uploadDir),
		handler.NewTicketsWS(svc, hub),
	)
	app.Static("/uploads", uploadDir)

	addr := config.GetEnv("APP_HOST", "") + ":" + config.GetEnv("APP_PORT", "8080")
	log.Println("Server listening on", addr)
	log.Fatal(app.Listen(addr))
}
