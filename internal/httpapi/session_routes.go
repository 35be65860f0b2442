package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/aaronromeo/healthplanner/internal/llm"
	"github.com/aaronromeo/healthplanner/internal/planner"
	"github.com/aaronromeo/healthplanner/internal/session"
)

const sessionCookie = "hp_session"

// Session endpoints. The API key lives only in the session's provider client
// and is never echoed back or logged.

func registerSession(app *fiber.App, s *server) {
	app.Post("/api/session", func(c *fiber.Ctx) error {
		var in struct {
			APIKey string `json:"api_key"`
		}
		if len(c.Body()) > 0 {
			if err := json.Unmarshal(c.Body(), &in); err != nil {
				return errorJSON(c, http.StatusBadRequest, kindInvalidRequest, "invalid json: "+err.Error())
			}
		}
		key := bearerToken(c)
		if key == "" {
			key = strings.TrimSpace(in.APIKey)
		}
		if key == "" {
			key = s.cfg.LlmAPIKey
		}
		if key == "" {
			return writeError(c, planner.ErrMissingCredential)
		}

		p, err := s.newProvider(c.UserContext(), key)
		if err != nil {
			s.logger.Error("provider init failed", "provider", s.cfg.LlmProvider, "error", err)
			return writeError(c, fmt.Errorf("%w: %w", planner.ErrServiceInit, err))
		}
		cli, err := llm.New(llm.WithProvider(p), llm.WithLogger(s.logger), llm.WithTimeout(s.cfg.LlmTimeout))
		if err != nil {
			return writeError(c, fmt.Errorf("%w: %w", planner.ErrServiceInit, err))
		}
		pl := planner.New(cli, planner.WithLogger(s.logger), planner.WithParallel(s.cfg.LlmParallel))

		if old := c.Cookies(sessionCookie); old != "" {
			s.sessions.Delete(old)
		}
		sess := s.sessions.Create(pl)
		setSessionCookie(c, s, sess.ID)
		return c.Status(http.StatusCreated).JSON(newStateView(sess.State()))
	})

	app.Get("/api/session", func(c *fiber.Ctx) error {
		sess, ok := currentSession(c, s)
		if !ok {
			return writeError(c, planner.ErrMissingCredential)
		}
		return c.JSON(newStateView(sess.State()))
	})

	app.Delete("/api/session", func(c *fiber.Ctx) error {
		if id := c.Cookies(sessionCookie); id != "" {
			s.sessions.Delete(id)
		}
		c.ClearCookie(sessionCookie)
		return c.SendStatus(http.StatusNoContent)
	})
}

// currentSession resolves the session cookie and re-issues it, so the
// browser's expiry follows the store's sliding TTL.
func currentSession(c *fiber.Ctx, s *server) (*session.Session, bool) {
	sess, ok := s.sessions.Get(utils.CopyString(c.Cookies(sessionCookie)))
	if !ok {
		return nil, false
	}
	setSessionCookie(c, s, sess.ID)
	return sess, true
}

func setSessionCookie(c *fiber.Ctx, s *server, id string) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HTTPOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(s.cfg.SessionTTL),
	})
}

// bearerToken returns the key from the Authorization header. Header values
// point into fasthttp's reused buffer, so the key is copied before it
// outlives the request.
func bearerToken(c *fiber.Ctx) string {
	tok, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if !ok {
		return ""
	}
	return utils.CopyString(strings.TrimSpace(tok))
}
