package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/circuitsmith/quantity-service/internal/adapters/http/dto"
	"github.com/circuitsmith/quantity-service/internal/app"
	"github.com/circuitsmith/quantity-service/internal/domain"
)

// QuantityHandler handles quantity and unit HTTP endpoints.
type QuantityHandler struct {
	service *app.QuantityService
}

// NewQuantityHandler creates a new quantity handler.
func NewQuantityHandler(service *app.QuantityService) *QuantityHandler {
	return &QuantityHandler{
		service: service,
	}
}

// QuantityRequest is the request body for parse, validate and normalize.
type QuantityRequest struct {
	// Value is the raw magnitude-with-unit text, e.g. "100k" or "3.3V".
	Value string `json:"value" binding:"required"`

	// Context optionally restricts the value to one engineering domain.
	Context string `json:"context"`
}

// QuantityResponse is the HTTP response structure for a parsed quantity.
// Magnitudes are serialized as strings so that infinite values survive
// the trip through JSON.
type QuantityResponse struct {
	Value         string `json:"value"`
	Context       string `json:"context,omitempty"`
	Magnitude     string `json:"magnitude"`
	Unit          string `json:"unit,omitempty"`
	Normalized    Scalar `json:"normalized"`
	Dimensionless bool   `json:"dimensionless"`
}

// Scalar is a magnitude-and-unit pair in a response.
type Scalar struct {
	Magnitude string `json:"magnitude"`
	Unit      string `json:"unit,omitempty"`
}

// toQuantityResponse converts a domain AttributeValue to an HTTP response.
func toQuantityResponse(v *domain.AttributeValue) *QuantityResponse {
	return &QuantityResponse{
		Value:     v.Raw,
		Context:   v.Context,
		Magnitude: formatMagnitude(v.Magnitude),
		Unit:      v.Unit,
		Normalized: Scalar{
			Magnitude: formatMagnitude(v.NormalizedMagnitude),
			Unit:      v.NormalizedUnit,
		},
		Dimensionless: v.Dimensionless,
	}
}

// formatMagnitude renders a magnitude with full float64 precision.
func formatMagnitude(m float64) string {
	return strconv.FormatFloat(m, 'g', -1, 64)
}

// Parse handles POST /api/v1/quantities/parse
// Parses a raw value, optionally validating it against a context.
//
// @Summary Parse a quantity
// @Description Parses a magnitude-with-unit string such as "100k" or "10uF"
// @Tags quantities
// @Accept json
// @Produce json
// @Success 200 {object} QuantityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quantities/parse [post]
func (h *QuantityHandler) Parse(c *gin.Context) {
	var req QuantityRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.service.Parse(c.Request.Context(), req.Value, req.Context)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuantityResponse(result))
}

// Validate handles POST /api/v1/quantities/validate
// Runs the full validation use case for a single value.
//
// @Summary Validate a quantity
// @Description Validates a raw value against an engineering context
// @Tags quantities
// @Accept json
// @Produce json
// @Success 200 {object} QuantityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quantities/validate [post]
func (h *QuantityHandler) Validate(c *gin.Context) {
	var req QuantityRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.service.Validate(c.Request.Context(), req.Value, req.Context)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuantityResponse(result))
}

// BatchValidateRequest is the request body for batch validation.
type BatchValidateRequest struct {
	Items []QuantityRequest `json:"items" binding:"required,min=1,dive"`
}

// BatchItemResponse is one entry in a batch validation response.
// Exactly one of Result and Error is set.
type BatchItemResponse struct {
	Value   string            `json:"value"`
	Context string            `json:"context,omitempty"`
	Valid   bool              `json:"valid"`
	Result  *QuantityResponse `json:"result,omitempty"`
	Error   *dto.ErrorDetail  `json:"error,omitempty"`
}

// BatchValidateResponse is the response body for batch validation.
type BatchValidateResponse struct {
	Items  []BatchItemResponse `json:"items"`
	Failed int                 `json:"failed"`
}

// ValidateBatch handles POST /api/v1/quantities/validate-batch
// Validates many values in one request; entries fail independently.
//
// @Summary Validate a batch of quantities
// @Description Validates many raw values concurrently, reporting per-entry outcomes
// @Tags quantities
// @Accept json
// @Produce json
// @Success 200 {object} BatchValidateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quantities/validate-batch [post]
func (h *QuantityHandler) ValidateBatch(c *gin.Context) {
	var req BatchValidateRequest
	if !h.bind(c, &req) {
		return
	}

	if limit := h.service.BatchLimit(); len(req.Items) > limit {
		dto.HandleError(c, domain.NewValidationError("items",
			fmt.Sprintf("batch exceeds the limit of %d items", limit)))
		return
	}

	items := make([]app.BatchItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = app.BatchItem{Value: item.Value, Context: item.Context}
	}

	outcomes := h.service.ValidateBatch(c.Request.Context(), items)

	resp := BatchValidateResponse{
		Items: make([]BatchItemResponse, len(outcomes)),
	}

	for i, outcome := range outcomes {
		entry := BatchItemResponse{
			Value:   outcome.Item.Value,
			Context: outcome.Item.Context,
			Valid:   outcome.Err == nil,
		}

		if outcome.Err != nil {
			_, errResp := dto.MapError(outcome.Err)
			entry.Error = &errResp.Error
			resp.Failed++
		} else {
			entry.Result = toQuantityResponse(outcome.Result)
		}

		resp.Items[i] = entry
	}

	c.JSON(http.StatusOK, resp)
}

// Normalize handles POST /api/v1/quantities/normalize
// Rewrites a value into its context's default unit.
//
// @Summary Normalize a quantity
// @Description Converts a raw value into the storage form for its context
// @Tags quantities
// @Accept json
// @Produce json
// @Success 200 {object} QuantityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quantities/normalize [post]
func (h *QuantityHandler) Normalize(c *gin.Context) {
	var req QuantityRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.service.Normalize(c.Request.Context(), req.Value, req.Context)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuantityResponse(result))
}

// CompareRequest is the request body for quantity comparison.
type CompareRequest struct {
	A string `json:"a" binding:"required"`
	B string `json:"b" binding:"required"`
}

// CompareResponse is the response body for quantity comparison.
type CompareResponse struct {
	Comparable bool   `json:"comparable"`
	Relation   string `json:"relation,omitempty"`
}

// Compare handles POST /api/v1/quantities/compare
// Reports whether two values' units are comparable and how the
// magnitudes order when they are.
//
// @Summary Compare two quantities
// @Description Checks unit comparability and magnitude ordering
// @Tags quantities
// @Accept json
// @Produce json
// @Success 200 {object} CompareResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quantities/compare [post]
func (h *QuantityHandler) Compare(c *gin.Context) {
	var req CompareRequest
	if !h.bind(c, &req) {
		return
	}

	cmp, err := h.service.Compare(c.Request.Context(), req.A, req.B)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, CompareResponse{
		Comparable: cmp.Comparable,
		Relation:   cmp.Relation,
	})
}

// UnitSummary describes one unit in listing responses.
type UnitSummary struct {
	Symbol        string `json:"symbol"`
	Context       string `json:"context,omitempty"`
	Dimensionless bool   `json:"dimensionless"`
}

// ListUnits handles GET /api/v1/units
// Returns the registered unit vocabulary with cursor pagination.
//
// @Summary List units
// @Description Lists registered unit symbols in sorted order
// @Tags units
// @Produce json
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {object} dto.PaginatedResponse[UnitSummary]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/units [get]
func (h *QuantityHandler) ListUnits(c *gin.Context) {
	var page dto.PaginationRequest
	if err := dto.BindQueryAndValidate(c, &page); err != nil {
		dto.HandleError(c, err)
		return
	}

	symbols := h.service.UnitSymbols(c.Request.Context())

	cursor, err := page.DecodeCursor()
	if err != nil && !errors.Is(err, dto.ErrNoCursor) {
		dto.HandleError(c, err)
		return
	}

	// Resume after the cursor position in the sorted symbol list.
	start := 0
	if cursor != nil {
		for i, symbol := range symbols {
			if symbol > cursor.Value {
				start = i
				break
			}
			start = len(symbols)
		}
	}

	limit := page.GetLimit()

	end := start + limit + 1
	if end > len(symbols) {
		end = len(symbols)
	}

	summaries := make([]UnitSummary, 0, end-start)
	for _, symbol := range symbols[start:end] {
		summaries = append(summaries, h.unitSummary(c, symbol))
	}

	resp := dto.NewPaginatedResponse(summaries, limit, func(u UnitSummary) *dto.CursorData {
		return dto.NewCursor("symbol", u.Symbol, u.Symbol)
	})

	c.JSON(http.StatusOK, resp)
}

func (h *QuantityHandler) unitSummary(c *gin.Context, symbol string) UnitSummary {
	summary := UnitSummary{Symbol: symbol}

	detail, err := h.service.UnitInfo(c.Request.Context(), symbol)
	if err == nil {
		summary.Context = detail.Context
		summary.Dimensionless = detail.Dimensionless
	}

	return summary
}

// UnitResponse is the HTTP response structure for a resolved unit.
type UnitResponse struct {
	Symbol        string `json:"symbol"`
	Canonical     string `json:"canonical"`
	Context       string `json:"context,omitempty"`
	Dimensionless bool   `json:"dimensionless"`
}

// GetUnit handles GET /api/v1/units/:symbol
// Resolves a unit symbol, including derived prefixed and compound forms.
//
// @Summary Resolve a unit symbol
// @Description Resolves a symbol such as "uF", "kohm" or "m/s^2"
// @Tags units
// @Produce json
// @Param symbol path string true "Unit symbol"
// @Success 200 {object} UnitResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/units/{symbol} [get]
func (h *QuantityHandler) GetUnit(c *gin.Context) {
	symbol := c.Param("symbol")

	detail, err := h.service.UnitInfo(c.Request.Context(), symbol)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, UnitResponse{
		Symbol:        detail.Symbol,
		Canonical:     detail.Canonical,
		Context:       detail.Context,
		Dimensionless: detail.Dimensionless,
	})
}

// UnitContextResponse is the response body for a unit's context lookup.
type UnitContextResponse struct {
	Symbol  string `json:"symbol"`
	Context string `json:"context,omitempty"`
}

// GetUnitContext handles GET /api/v1/units/:symbol/context
// Reports which engineering context a unit belongs to. A known unit
// outside every context yields an empty context, not an error.
//
// @Summary Classify a unit symbol
// @Description Reports the engineering context a unit symbol belongs to
// @Tags units
// @Produce json
// @Param symbol path string true "Unit symbol"
// @Success 200 {object} UnitContextResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/units/{symbol}/context [get]
func (h *QuantityHandler) GetUnitContext(c *gin.Context) {
	symbol := c.Param("symbol")

	name, err := h.service.UnitContext(c.Request.Context(), symbol)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, UnitContextResponse{
		Symbol:  symbol,
		Context: name,
	})
}

// ContextResponse describes one engineering context.
type ContextResponse struct {
	Name        string `json:"name"`
	BaseUnit    string `json:"baseUnit"`
	DefaultUnit string `json:"defaultUnit"`
}

// ListContexts handles GET /api/v1/contexts
// Lists every engineering context with its canonical and storage units.
//
// @Summary List engineering contexts
// @Description Lists contexts with their canonical and default units
// @Tags contexts
// @Produce json
// @Success 200 {array} ContextResponse
// @Router /api/v1/contexts [get]
func (h *QuantityHandler) ListContexts(c *gin.Context) {
	infos := h.service.Contexts(c.Request.Context())

	resp := make([]ContextResponse, len(infos))
	for i, info := range infos {
		resp[i] = ContextResponse{
			Name:        info.Name,
			BaseUnit:    info.BaseUnit,
			DefaultUnit: info.DefaultUnit,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterQuantityRoutes registers quantity and unit routes on the group.
func (h *QuantityHandler) RegisterQuantityRoutes(rg *gin.RouterGroup) {
	quantities := rg.Group("/quantities")
	quantities.POST("/parse", h.Parse)
	quantities.POST("/validate", h.Validate)
	quantities.POST("/validate-batch", h.ValidateBatch)
	quantities.POST("/normalize", h.Normalize)
	quantities.POST("/compare", h.Compare)

	units := rg.Group("/units")
	units.GET("", h.ListUnits)
	units.GET("/:symbol", h.GetUnit)
	units.GET("/:symbol/context", h.GetUnitContext)

	rg.GET("/contexts", h.ListContexts)
}

// bind binds and validates a JSON request body, writing the error
// response itself on failure.
func (h *QuantityHandler) bind(c *gin.Context, v any) bool {
	if err := dto.BindAndValidate(c, v); err != nil {
		dto.HandleError(c, err)
		return false
	}

	return true
}
