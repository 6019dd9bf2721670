package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"patientapi/internal/auth"
	"patientapi/internal/http/middleware"
	"patientapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. All clinical
// data routes sit behind token verification; health and docs stay open.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	verifier auth.Verifier,
	patientSvc service.PatientService,
	recordSvc service.RecordService,
	analyticsSvc service.AnalyticsService,
	attachmentSvc service.AttachmentService,
) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health: /health checks DB connectivity, /healthz is a bare liveness probe
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	requireAuth := middleware.RequireAuth(verifier)

	// Patient collection, scoped to the authenticated doctor
	patients := app.Group("/patients", requireAuth)
	patients.Get("/", ListPatients(patientSvc))
	patients.Post("/", CreatePatient(patientSvc))
	patients.Get("/:patient_id", GetPatient(patientSvc))

	app.Get("/analytics", requireAuth, GetAnalytics(analyticsSvc))

	// Per-patient sub-resources live under the singular /patient prefix
	patient := app.Group("/patient/:patient_id", requireAuth)
	patient.Get("/records", ListPatientRecords(recordSvc))
	patient.Post("/records", CreatePatientRecord(recordSvc))
	patient.Get("/records/:record_id", GetPatientRecord(recordSvc))

	patient.Get("/attachments", ListAttachments(attachmentSvc))
	patient.Post("/attachments", UploadAttachment(attachmentSvc))
	patient.Get("/attachments/:attachment_id", GetAttachment(attachmentSvc))
	patient.Get("/attachments/:attachment_id/download", DownloadAttachment(attachmentSvc))
	patient.Delete("/attachments/:attachment_id", DeleteAttachment(attachmentSvc))
}
