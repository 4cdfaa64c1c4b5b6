package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/callygym/service-gym/internal/repository"
)

// OpsHandler serves operational endpoints: one-shot schema provisioning
// and liveness.
type OpsHandler struct {
	provisioner *repository.SchemaProvisioner
	db          *gorm.DB
	logger      *zap.Logger
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(provisioner *repository.SchemaProvisioner, db *gorm.DB, logger *zap.Logger) *OpsHandler {
	return &OpsHandler{provisioner: provisioner, db: db, logger: logger}
}

// RegisterRoutes registers the operational routes on the given router group.
func (h *OpsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/create-tables", h.CreateTables)
	r.GET("/healthz", h.Healthz)
}

// CreateTables handles GET /create-tables. The DDL is create-if-not-exists
// so repeat calls succeed without touching existing rows.
func (h *OpsHandler) CreateTables(c *gin.Context) {
	if err := h.provisioner.EnsureTables(c.Request.Context()); err != nil {
		h.logger.Error("table provisioning failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Error creating tables: %v", err)
		return
	}
	c.String(http.StatusOK, "Tables created successfully (or already exist).")
}

// Healthz handles GET /healthz and reports whether the database answers a
// ping.
func (h *OpsHandler) Healthz(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		h.logger.Error("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
