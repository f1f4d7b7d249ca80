package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/evcharge-admin-api/internal/application/dto"
	"github.com/jhoicas/evcharge-admin-api/internal/domain"
	"github.com/jhoicas/evcharge-admin-api/pkg/logger"
)

// emptyData se serializa como [] cuando una respuesta no lleva payload.
var emptyData = []any{}

// ErrorHandler traduce los errores de los handlers al sobre uniforme de respuesta.
//
//	*domain.StatusError      → 400, message = estado, data = Data
//	*domain.ValidationError  → 422, data = campo -> mensajes
//	*fiber.Error             → su código, message = texto del error
//	cualquier otro           → 500
//
// En producción el mensaje de un 500 no se expone.
func ErrorHandler(log *logger.Logger, env string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		r := classify(err, env)

		ev := log.Warn()
		if r.status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Err(err).
			Str("error_name", r.name).
			Int("status", r.status).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg(r.message)

		return c.Status(r.status).JSON(dto.Envelope{Status: r.status, Data: r.data, Message: r.message})
	}
}

type errorReply struct {
	status  int
	name    string
	message string
	data    any
}

func classify(err error, env string) errorReply {
	var se *domain.StatusError
	var ve *domain.ValidationError
	var fe *fiber.Error
	switch {
	case errors.As(err, &se):
		r := errorReply{status: fiber.StatusBadRequest, name: "BUSINESS_RULE_ERROR", message: se.Status, data: emptyData}
		if se.Data != nil {
			r.data = se.Data
		}
		return r
	case errors.As(err, &ve):
		return errorReply{status: fiber.StatusUnprocessableEntity, name: "VALIDATION_ERROR", message: "Unprocessable Entity", data: ve.Fields}
	case errors.As(err, &fe):
		return errorReply{status: fe.Code, name: "HTTP_ERROR", message: fe.Message, data: emptyData}
	}
	r := errorReply{status: fiber.StatusInternalServerError, name: "INTERNAL_ERROR", message: "Internal Server Error", data: emptyData}
	if env != "production" {
		r.message = err.Error()
	}
	return r
}

// NotFound responde el sobre 404 para rutas no registradas.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
		Status:  fiber.StatusNotFound,
		Data:    emptyData,
		Message: "Not Found",
	})
}

// ok responde 200 con el sobre de éxito.
func ok(c *fiber.Ctx, data any) error {
	if data == nil {
		data = emptyData
	}
	return c.Status(fiber.StatusOK).JSON(dto.Envelope{
		Status:  fiber.StatusOK,
		Data:    data,
		Message: dto.MessageSuccess,
	})
}
