package http

import (
	gomath "math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/calcunits/internal/catalog"
	"github.com/GriffinCanCode/calcunits/internal/logging"
	"github.com/GriffinCanCode/calcunits/internal/middleware"
	"github.com/GriffinCanCode/calcunits/internal/monitoring"
	mathprovider "github.com/GriffinCanCode/calcunits/internal/providers/math"
	"github.com/GriffinCanCode/calcunits/internal/service"
	"github.com/GriffinCanCode/calcunits/internal/types"
	"github.com/GriffinCanCode/calcunits/internal/units"
	"github.com/GriffinCanCode/calcunits/internal/utils"
)

// ServiceName and Version are reported by the root endpoint
const (
	ServiceName = "calcunits"
	Version     = "1.0.0"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates a new handler set. metrics may be nil.
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
}

// Root handles the liveness check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": ServiceName,
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if categoryStr := c.Query("category"); categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	if services == nil {
		services = []types.Service{}
	}

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices ranks services by relevance to an intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := utils.ValidateIntent(req.Intent); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"intent":   req.Intent,
		"services": h.registry.Discover(req.Intent, req.Limit),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := utils.ValidateToolID(req.ToolID); err != nil {
		respondErr(c, err)
		return
	}
	if err := utils.ValidateParams(req.Params); err != nil {
		respondErr(c, err)
		return
	}

	requestID := middleware.GetRequestID(c)
	clientIP := c.ClientIP()
	appCtx := &types.Context{RequestID: &requestID, ClientIP: &clientIP}

	serviceID := serviceOf(req.ToolID)
	var timer *monitoring.Timer
	if h.metrics != nil {
		timer = monitoring.NewTimer(h.metrics, serviceID, req.ToolID)
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		if timer != nil {
			timer.Stop("error")
		}
		h.logger.Error("tool execution failed",
			zap.String("request_id", requestID),
			zap.String("tool_id", req.ToolID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	// JSON has no encoding for NaN or Inf
	if result.Success {
		if key, ok := nonFinite(result.Data); ok {
			msg := "result " + key + " is not a finite number"
			result = &types.Result{Success: false, Error: &msg, Code: types.CodeInvalidInput}
		}
	}

	if timer != nil {
		status := "success"
		if !result.Success {
			status = "failure"
		}
		timer.Stop(status)
	}

	if !result.Success {
		if h.metrics != nil {
			h.metrics.RecordServiceError(serviceID, req.ToolID, result.Code)
		}
		h.logger.Debug("tool returned failure",
			zap.String("request_id", requestID),
			zap.String("tool_id", req.ToolID),
			zap.String("code", result.Code))
		c.JSON(StatusFor(result.Code), result)
		return
	}

	if req.ToolID == "math.convert" && h.metrics != nil {
		if category, ok := result.Data["category"].(string); ok {
			h.metrics.RecordConversion(category)
		}
	}

	c.JSON(http.StatusOK, result)
}

// Convert handles GET /convert?value=&from=&to=
func (h *Handlers) Convert(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if err := utils.ValidateUnitName(from, "from"); err != nil {
		respondErr(c, err)
		return
	}
	if err := utils.ValidateUnitName(to, "to"); err != nil {
		respondErr(c, err)
		return
	}

	raw, ok := c.GetQuery("value")
	if !ok {
		respondError(c, types.CodeInvalidInput, "value parameter required")
		return
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || gomath.IsNaN(value) || gomath.IsInf(value, 0) {
		respondError(c, types.CodeInvalidInput, "value must be a finite number: "+strconv.Quote(raw))
		return
	}

	result, err := units.Convert(value, from, to)
	if err != nil {
		respondErr(c, err)
		return
	}

	if gomath.IsInf(result, 0) {
		respondError(c, types.CodeInvalidInput, "result is not a finite number")
		return
	}

	// Both names resolved inside Convert
	src, _ := units.Lookup(from)
	dst, _ := units.Lookup(to)
	if h.metrics != nil {
		h.metrics.RecordConversion(string(src.Category))
	}

	c.JSON(http.StatusOK, types.ConvertResponse{
		Result:   result,
		From:     src.Code,
		To:       dst.Code,
		Category: string(src.Category),
	})
}

// Units handles GET /units?category=&format=
func (h *Handlers) Units(c *gin.Context) {
	format, err := catalog.ParseFormat(c.DefaultQuery("format", string(catalog.FormatJSON)))
	if err != nil {
		respondErr(c, err)
		return
	}

	cat, err := catalog.Build(units.Category(c.Query("category")))
	if err != nil {
		respondErr(c, err)
		return
	}

	data, err := cat.Marshal(format)
	if err != nil {
		h.logger.Error("catalog encoding failed", zap.String("format", string(format)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.Data(http.StatusOK, contentType(format), data)
}

func contentType(format catalog.Format) string {
	switch format {
	case catalog.FormatYAML:
		return "application/yaml; charset=utf-8"
	case catalog.FormatTOML:
		return "application/toml; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}

// codeOf maps an operation error to its result code, treating anything
// unrecognized as invalid input.
func codeOf(err error) string {
	if code := mathprovider.ErrorCode(err); code != "" {
		return code
	}
	return types.CodeInvalidInput
}
