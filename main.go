package main

import (
	"os"

	"github.com/DedS3t/monopoly-engine/app/controllers"
	"github.com/DedS3t/monopoly-engine/pkg/routes"
	"github.com/DedS3t/monopoly-engine/platform/cache"
	"github.com/DedS3t/monopoly-engine/platform/database"
	"github.com/DedS3t/monopoly-engine/platform/logging"
	socket "github.com/DedS3t/monopoly-engine/platform/sockets"
	"github.com/DedS3t/monopoly-engine/platform/telegram"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

func main() {
	logging.Init()

	db := database.PostgreSQLConnection()
	defer db.Close()

	pool := cache.CreateRedisPool()
	defer pool.Close()

	server, err := socket.CreateSocketIOServer()
	if err != nil {
		log.WithError(err).Fatal("socket server init failed")
	}
	go func() {
		if err := socket.Serve(server); err != nil {
			log.WithError(err).Fatal("socket server stopped")
		}
	}()

	api, err := tgbotapi.NewBotAPI(os.Getenv("TELEGRAM_TOKEN"))
	if err != nil {
		log.WithError(err).Fatal("telegram init failed")
	}
	bot := telegram.NewBot(api, pool, db, server)
	go bot.Run()

	app := fiber.New()

	app.Use(cors.New())
	routes.AuthRoutes(app)
	routes.GameRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(os.Getenv("JWT_SECRET")),
	}))

	app.Get("/user/cur", controllers.Cur)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":4101"
	}
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("http server stopped")
	}
}
