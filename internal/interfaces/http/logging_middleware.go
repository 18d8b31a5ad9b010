package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventory-alerts/pkg/logger"
)

// RequestLogger registra una línea por petición: método, ruta, status y latencia.
// 5xx sale en nivel error, 4xx en warn y el resto en info.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// El status solo existe después de que el ErrorHandler escriba la respuesta, así que se
			// invoca aquí y se devuelve nil: si el error siguiera subiendo, Fiber llamaría al
			// ErrorHandler una segunda vez. Mismo esquema que middleware/logger de Fiber.
			// Consecuencia: los middlewares registrados ANTES de éste ya no ven el error; recover
			// debe ir antes (más afuera) para que un panic no lo salte.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", requestID(c)).
			Str("company_id", GetCompanyID(c)).
			Msg("request")
		return nil
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
