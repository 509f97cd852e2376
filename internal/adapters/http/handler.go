package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/randomtoy/manabase-go/internal/app"
	"github.com/randomtoy/manabase-go/internal/domain"
)

const maxBodyBytes = 64 << 10

var errDuplicateColor = errors.New("color given more than once")

type Handler struct {
	svc          *app.LandService
	schema       *jsonschema.Schema
	defaultLands int
}

func NewHandler(svc *app.LandService, defaultLands int) (*Handler, error) {
	schema, err := compileLandsSchema()
	if err != nil {
		return nil, err
	}
	return &Handler{svc: svc, schema: schema, defaultLands: defaultLands}, nil
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.ShowForm)
	e.POST("/", h.SubmitForm)
	e.GET("/healthz", h.Healthz)
	e.POST("/v1/lands", h.RecommendLands)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ShowForm(c echo.Context) error {
	lands, err := h.svc.Lands(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return renderForm(c, http.StatusOK, newFormView(lands, strconv.Itoa(h.defaultLands)))
}

func (h *Handler) SubmitForm(c echo.Context) error {
	ctx := c.Request().Context()

	lands, err := h.svc.Lands(ctx)
	if err != nil {
		return mapError(c, err)
	}
	view := newFormView(lands, strconv.Itoa(h.defaultLands))

	req, err := readForm(c, &view)
	if err != nil {
		view.Error = formMessage(err)
		return renderForm(c, http.StatusBadRequest, view)
	}

	resp, err := h.svc.Recommend(ctx, req)
	switch {
	case err == nil:
		view.Result = resp.Lands
		return renderForm(c, http.StatusOK, view)
	case errors.Is(err, domain.ErrNoSymbols):
		view.Dialog = noSymbolsDialog
		return renderForm(c, http.StatusUnprocessableEntity, view)
	case isBadInput(err):
		view.Error = formMessage(err)
		return renderForm(c, http.StatusBadRequest, view)
	default:
		return mapError(c, err)
	}
}

func (h *Handler) RecommendLands(c echo.Context) error {
	ctx := c.Request().Context()

	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes))
	if err != nil {
		return mapError(c, fmt.Errorf("%w: read body: %v", errInvalidRequest, err))
	}

	body, err := decodeLandsRequest(h.schema, raw)
	if err != nil {
		return mapError(c, err)
	}

	req := app.RecommendRequest{TotalLands: body.TotalLands}
	seen := make(map[domain.Color]string, len(body.Symbols))
	for name, counts := range body.Symbols {
		color, err := h.svc.ResolveColor(ctx, name)
		if err != nil {
			return mapError(c, err)
		}
		if prev, ok := seen[color]; ok {
			return mapError(c, fmt.Errorf("%w: %q and %q", errDuplicateColor, prev, name))
		}
		seen[color] = name
		req.Symbols[color] = domain.SymbolCount{Single: counts.Single, Double: counts.Double}
	}

	resp, err := h.svc.Recommend(ctx, req)
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)

	return c.JSON(http.StatusOK, toResponse(resp, body.TotalLands, requestID))
}

func toResponse(r app.RecommendResponse, totalLands int, requestID string) LandsResponse {
	lands := make([]LandResponse, len(r.Lands))
	for i, l := range r.Lands {
		lands[i] = LandResponse{
			Color:  l.ColorName,
			Land:   l.LandName,
			Weight: r.Weights[l.Color],
			Count:  l.Count,
		}
	}
	return LandsResponse{
		Lands:        lands,
		TotalLands:   totalLands,
		TotalSymbols: r.TotalSymbols,
		Meta:         MetaResp{RequestID: requestID},
	}
}

func isBadInput(err error) bool {
	return errors.Is(err, errInvalidRequest) ||
		errors.Is(err, errDuplicateColor) ||
		errors.Is(err, domain.ErrNegativeLands) ||
		errors.Is(err, domain.ErrNegativeQuantity) ||
		errors.Is(err, domain.ErrUnknownColor)
}

func formMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNegativeLands):
		return "Total lands must not be negative."
	case errors.Is(err, domain.ErrNegativeQuantity):
		return "Symbol quantities must not be negative."
	default:
		return err.Error()
	}
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrNoSymbols):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case isBadInput(err):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
