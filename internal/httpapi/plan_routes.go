package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/aaronromeo/healthplanner/internal/planner"
	"github.com/aaronromeo/healthplanner/internal/profile"
)

func registerPlans(app *fiber.App, s *server) {
	app.Get("/api/options", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"sex":                profile.Sexes,
			"activity_level":     profile.ActivityLevels,
			"dietary_preference": profile.DietaryPreferences,
			"fitness_goal":       profile.FitnessGoals,
			"age":                fiber.Map{"min": profile.MinAge, "max": profile.MaxAge},
			"weight_kg":          fiber.Map{"min": profile.MinWeightKg, "max": profile.MaxWeightKg},
			"height_cm":          fiber.Map{"min": profile.MinHeightCm, "max": profile.MaxHeightCm},
		})
	})

	app.Post("/api/plans", func(c *fiber.Ctx) error {
		sess, ok := currentSession(c, s)
		if !ok {
			return writeError(c, planner.ErrMissingCredential)
		}
		prof, err := profile.FromJSON(c.Body())
		if err != nil {
			return writeError(c, err)
		}
		st, err := sess.Update(func(p *planner.Planner, st planner.State) (planner.State, error) {
			return p.Generate(c.UserContext(), st, prof)
		})
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(newStateView(st))
	})

	app.Post("/api/questions", func(c *fiber.Ctx) error {
		sess, ok := currentSession(c, s)
		if !ok {
			return writeError(c, planner.ErrMissingCredential)
		}
		var in struct {
			Question string `json:"question"`
		}
		if err := json.Unmarshal(c.Body(), &in); err != nil {
			return errorJSON(c, http.StatusBadRequest, kindInvalidRequest, "invalid json: "+err.Error())
		}
		st, err := sess.Update(func(p *planner.Planner, st planner.State) (planner.State, error) {
			return p.Ask(c.UserContext(), st, in.Question)
		})
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(newStateView(st))
	})

	app.Get("/api/plans/export", func(c *fiber.Ctx) error {
		sess, ok := currentSession(c, s)
		if !ok {
			return writeError(c, planner.ErrMissingCredential)
		}
		st := sess.State()
		b, err := st.ExportYAML()
		if err != nil {
			return writeError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/yaml")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", st.ExportName()))
		return c.Send(b)
	})
}
