package controllers

import (
	"os"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/database"
	jwt "github.com/form3tech-oss/jwt-go"
	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// CreateUser registers a spectator account with a hashed password.
func CreateUser(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	userDto := new(models.UserDto)
	if err := c.BodyParser(userDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(userDto.Pass), bcrypt.DefaultCost)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	_, err = db.Model(&models.User{
		Id:       uuid.NewV4().String(),
		Email:    userDto.Email,
		Password: string(hash)}).Insert()
	if err != nil {
		log.WithError(err).Error("user insert failed")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Login exchanges valid credentials for a JWT.
func Login(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	userDto := new(models.UserDto)
	if err := c.BodyParser(userDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	user := new(models.User)
	if err := db.Model(user).Where("email = ?", userDto.Email).Select(); err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(userDto.Pass)); err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = user.Id
	t, err := token.SignedString(jwtSecret())
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"access_token": t})
}

// Cur returns the authenticated user's id.
func Cur(c *fiber.Ctx) error {
	user := c.Locals("user").(*jwt.Token)
	claims := user.Claims.(jwt.MapClaims)
	return c.SendString(claims["user_id"].(string))
}
