package controllers

import (
	"strconv"

	"github.com/DedS3t/monopoly-engine/platform/cache"
	"github.com/DedS3t/monopoly-engine/platform/database"
	"github.com/DedS3t/monopoly-engine/platform/queries"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// ActiveSessions lists every game currently in progress, for the spectator
// frontend to pick from.
func ActiveSessions(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	sessions, err := queries.ActiveSessions(db)
	if err != nil {
		log.WithError(err).Error("session list failed")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(sessions)
}

// SessionState returns the chat's latest game snapshot.
func SessionState(c *fiber.Ctx) error {
	chatID, err := strconv.ParseInt(c.Params("chat"), 10, 64)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	conn, err := cache.CreateRedisConnection()
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	defer conn.Close()

	snap, err := cache.LoadGame(chatID, &conn)
	if err != nil {
		log.WithError(err).Error("snapshot load failed")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	if snap == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(snap)
}
