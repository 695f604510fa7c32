package handler

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"safesign/internal/auth"
	"safesign/internal/http/middleware"
	"safesign/internal/service"
	"safesign/internal/template"
)

// createDocumentRequest is the body for POST /api/documents.
type createDocumentRequest struct {
	Type  string `json:"type"`
	Title string `json:"title"`
}

// signRequest is the body for POST /api/sign/:link.
type signRequest struct {
	SignerID      string         `json:"signerId"`
	FieldValues   map[string]any `json:"fieldValues"`
	SignatureData string         `json:"signatureData"`
}

// principal reads the identity stored by the auth middleware.
func principal(c *fiber.Ctx) service.Principal {
	uid, _ := c.Locals(middleware.UserIDLocalKey).(string)
	admin, _ := c.Locals(middleware.AdminLocalKey).(bool)
	return service.Principal{UserID: uid, Admin: admin}
}

// termsOverride builds a preview terms override from query parameters.
// Returns nil when no override parameter is present.
func termsOverride(c *fiber.Ctx) (*template.Terms, error) {
	override := &template.Terms{}
	set := false

	for key, dst := range map[string]*float64{
		"rent":    &override.Rent,
		"charges": &override.Charges,
		"deposit": &override.Deposit,
	} {
		if v := c.Query(key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+key)
			}
			*dst = f
			set = true
		}
	}
	if v := c.Query("durationMonths"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid durationMonths")
		}
		override.DurationMonths = n
		set = true
	}
	if v := c.Query("startDate"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid startDate")
		}
		override.StartDate = d
		set = true
	}

	if !set {
		return nil, nil
	}
	return override, nil
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// db may be nil when running on the memory repository; the health
// endpoint then skips the connectivity check.
func RegisterRoutes(app *fiber.App, db *sql.DB, docSvc service.DocumentService, tokens *auth.TokenManager) {
	app.Get("/health", func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// Simple liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	api := app.Group("/api")

	// Template catalog, public
	api.Get("/templates", func(c *fiber.Ctx) error {
		return c.JSON(docSvc.ListTemplateTypes())
	})

	api.Get("/templates/:type/config", func(c *fiber.Ctx) error {
		cfg, err := docSvc.GetTemplateConfig(c.Params("type"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(cfg)
	})

	// Public signing surface, addressed by share link only
	api.Get("/sign/:link", func(c *fiber.Ctx) error {
		view, err := docSvc.GetForSigning(c.UserContext(), c.Params("link"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(view)
	})

	api.Post("/sign/:link", func(c *fiber.Ctx) error {
		var req signRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		if req.SignerID == "" {
			return writeError(c, fiber.StatusBadRequest, "SIGNER_REQUIRED", "signerId is required")
		}

		meta := service.SignatureMeta{
			IPAddress: c.IP(),
			UserAgent: c.Get(fiber.HeaderUserAgent),
		}
		res, err := docSvc.SubmitSignature(c.UserContext(), c.Params("link"), req.SignerID, req.FieldValues, req.SignatureData, meta)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	})

	// Post-completion viewing, addressed by envelope id only
	api.Get("/envelopes/:envelopeId", func(c *fiber.Ctx) error {
		html, err := docSvc.RenderFinal(c.UserContext(), c.Params("envelopeId"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.Type("html").SendString(html)
	})

	// Owner surface, bearer token required
	docs := api.Group("/documents", middleware.Auth(tokens))

	docs.Get("/", func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := docSvc.ListDocuments(c.UserContext(), principal(c), limit, offset)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	})

	docs.Post("/", func(c *fiber.Ctx) error {
		var req createDocumentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		if req.Type == "" {
			return writeError(c, fiber.StatusBadRequest, "TYPE_REQUIRED", "document type is required")
		}

		view, err := docSvc.CreateDocument(c.UserContext(), req.Type, req.Title, principal(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(view)
	})

	docs.Get("/:id", func(c *fiber.Ctx) error {
		view, err := docSvc.GetDocument(c.UserContext(), c.Params("id"), principal(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(view)
	})

	docs.Put("/:id", func(c *fiber.Ctx) error {
		var patch service.UpdateDocumentInput
		if err := c.BodyParser(&patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		view, err := docSvc.UpdateDocument(c.UserContext(), c.Params("id"), patch, principal(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(view)
	})

	docs.Delete("/:id", func(c *fiber.Ctx) error {
		if err := docSvc.DeleteDocument(c.UserContext(), c.Params("id"), principal(c)); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	docs.Post("/:id/share", func(c *fiber.Ctx) error {
		info, err := docSvc.ActivateSharing(c.UserContext(), c.Params("id"), principal(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(info)
	})

	docs.Post("/:id/cancel", func(c *fiber.Ctx) error {
		view, err := docSvc.CancelDocument(c.UserContext(), c.Params("id"), principal(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(view)
	})

	docs.Get("/:id/preview", func(c *fiber.Ctx) error {
		override, err := termsOverride(c)
		if err != nil {
			return err
		}

		html, err := docSvc.RenderPreview(c.UserContext(), c.Params("id"), override, principal(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.Type("html").SendString(html)
	})

	docs.Get("/:id/archive", func(c *fiber.Ctx) error {
		url, err := docSvc.ArchiveURL(c.UserContext(), c.Params("id"), principal(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	})
}
