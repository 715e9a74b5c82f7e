package routes

import (
	"log"

	"liftout/internal/config"
	"liftout/internal/database"
	v1 "liftout/internal/delivery/http/routes/v1"
	"liftout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, cache usecase.MatchCache, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, cache, logger)
}
