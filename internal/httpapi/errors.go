package httpapi

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/aaronromeo/healthplanner/internal/planner"
	"github.com/aaronromeo/healthplanner/internal/profile"
)

const (
	kindMissingCredential = "missing_credential"
	kindServiceInit       = "service_init"
	kindInvalidProfile    = "invalid_profile"
	kindInvalidRequest    = "invalid_request"
	kindGeneration        = "generation_failure"
	kindAnswer            = "answer_failure"
	kindNoPlans           = "no_plans"
	kindInternal          = "internal"
)

// writeError turns a flow error into the one message the user sees.
func writeError(c *fiber.Ctx, err error) error {
	var verr *profile.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "kind": kindInvalidProfile, "problems": verr.Problems})
	case errors.Is(err, planner.ErrMissingCredential):
		return errorJSON(c, http.StatusUnauthorized, kindMissingCredential, err.Error())
	case errors.Is(err, planner.ErrServiceInit):
		return errorJSON(c, http.StatusInternalServerError, kindServiceInit, err.Error())
	case errors.Is(err, planner.ErrGeneration):
		return errorJSON(c, http.StatusBadGateway, kindGeneration, err.Error())
	case errors.Is(err, planner.ErrAnswer):
		return errorJSON(c, http.StatusBadGateway, kindAnswer, err.Error())
	case errors.Is(err, planner.ErrNoPlans):
		return errorJSON(c, http.StatusConflict, kindNoPlans, err.Error())
	default:
		return errorJSON(c, http.StatusInternalServerError, kindInternal, err.Error())
	}
}

func errorJSON(c *fiber.Ctx, status int, kind, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg, "kind": kind})
}
