package handler

import (
	"log/slog"
	"net/http"

	"boxtrack/internal/delivery/api/middleware"
	"boxtrack/internal/delivery/api/response"
	"boxtrack/internal/domain/entity"
	"boxtrack/internal/domain/pricing"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReferenceHandlerParams holds dependencies for ReferenceHandler, injected by Fx.
type ReferenceHandlerParams struct {
	fx.In

	CountryUC usecase.CountryUsecase
	BoxTypeUC usecase.BoxTypeUsecase
	Logger    *slog.Logger
}

// ReferenceHandler serves the country and box catalogues.
type ReferenceHandler struct {
	countryUC usecase.CountryUsecase
	boxTypeUC usecase.BoxTypeUsecase
	logger    *slog.Logger
}

// NewReferenceHandler is the constructor for ReferenceHandler
func NewReferenceHandler(params ReferenceHandlerParams) *ReferenceHandler {
	return &ReferenceHandler{
		countryUC: params.CountryUC,
		boxTypeUC: params.BoxTypeUC,
		logger:    params.Logger,
	}
}

// CountryRequest represents the request body for creating or replacing a country
type CountryRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=100"`
	Code         string  `json:"code" validate:"required,len=2,alpha"`
	CurrencyCode string  `json:"currency_code" validate:"required,len=3,alpha"`
	Multiplier   float64 `json:"multiplier" validate:"gte=0"`
	Continent    string  `json:"continent" validate:"required,oneof=Africa Antarctica Asia Europe 'North America' Oceania 'South America'"`
	ShippingZone string  `json:"shipping_zone" validate:"omitempty,oneof=domestic zone1 zone2 zone3"`
	IsActive     *bool   `json:"is_active"`
}

// BoxTypeRequest represents the request body for creating or replacing a box type
type BoxTypeRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Length      float64 `json:"length" validate:"gte=0.1"`
	Width       float64 `json:"width" validate:"gte=0.1"`
	Height      float64 `json:"height" validate:"gte=0.1"`
	Weight      float64 `json:"weight" validate:"gte=0.1"`
	BasePrice   float64 `json:"base_price" validate:"gte=0.01"`
	Color       string  `json:"color" validate:"required,max=50"`
	Description string  `json:"description" validate:"max=500"`
	IsActive    *bool   `json:"is_active"`
}

// QuoteRequest asks for the price of one box to one country
type QuoteRequest struct {
	BoxTypeID string `json:"box_type_id" validate:"required,uuid"`
	CountryID string `json:"country_id" validate:"required,uuid"`
}

// QuoteResponse is the priced quote
type QuoteResponse struct {
	BoxTypeID   uuid.UUID `json:"box_type_id"`
	BoxTypeName string    `json:"box_type_name"`
	CountryID   uuid.UUID `json:"country_id"`
	CountryName string    `json:"country_name"`
	Currency    string    `json:"currency"`
	BasePrice   float64   `json:"base_price"`
	Multiplier  float64   `json:"multiplier"`
	Cost        float64   `json:"cost"`
	RoundedCost float64   `json:"rounded_cost"`
}

// toInput maps the request; an omitted zone defaults to zone1.
func (r *CountryRequest) toInput() *usecase.CountryInput {
	zone := entity.ShippingZone(r.ShippingZone)
	if zone == "" {
		zone = entity.ShippingZone1
	}

	return &usecase.CountryInput{
		Name:         r.Name,
		Code:         r.Code,
		CurrencyCode: r.CurrencyCode,
		Multiplier:   r.Multiplier,
		Continent:    entity.Continent(r.Continent),
		ShippingZone: zone,
		IsActive:     r.IsActive,
	}
}

func (r *BoxTypeRequest) toInput() *usecase.BoxTypeInput {
	return &usecase.BoxTypeInput{
		Name:        r.Name,
		Length:      r.Length,
		Width:       r.Width,
		Height:      r.Height,
		Weight:      r.Weight,
		BasePrice:   r.BasePrice,
		Color:       r.Color,
		Description: r.Description,
		IsActive:    r.IsActive,
	}
}

// --- Countries ---

// ListCountries returns every country, or only active ones under /countries/active.
func (h *ReferenceHandler) ListCountries(activeOnly bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		countries, err := h.countryUC.List(c.Request().Context(), activeOnly)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, countries)
	}
}

func (h *ReferenceHandler) GetCountry(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c, "country")
	}

	country, err := h.countryUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, country)
}

func (h *ReferenceHandler) CreateCountry(c echo.Context) error {
	var req CountryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	country, err := h.countryUC.Create(c.Request().Context(), middleware.GetActor(c), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, country)
}

func (h *ReferenceHandler) UpdateCountry(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c, "country")
	}

	var req CountryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	country, err := h.countryUC.Update(c.Request().Context(), middleware.GetActor(c), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, country)
}

func (h *ReferenceHandler) ToggleCountry(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c, "country")
	}

	country, err := h.countryUC.ToggleActive(c.Request().Context(), middleware.GetActor(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, country)
}

func (h *ReferenceHandler) DeleteCountry(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c, "country")
	}

	if err := h.countryUC.Delete(c.Request().Context(), middleware.GetActor(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Country deleted successfully"})
}

// --- Box types ---

// ListBoxTypes returns every box type, or only active ones under /boxes/active.
func (h *ReferenceHandler) ListBoxTypes(activeOnly bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		boxes, err := h.boxTypeUC.List(c.Request().Context(), activeOnly)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, boxes)
	}
}

func (h *ReferenceHandler) GetBoxType(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c, "box type")
	}

	box, err := h.boxTypeUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, box)
}

func (h *ReferenceHandler) CreateBoxType(c echo.Context) error {
	var req BoxTypeRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	box, err := h.boxTypeUC.Create(c.Request().Context(), middleware.GetActor(c), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, box)
}

func (h *ReferenceHandler) UpdateBoxType(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c, "box type")
	}

	var req BoxTypeRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	box, err := h.boxTypeUC.Update(c.Request().Context(), middleware.GetActor(c), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, box)
}

func (h *ReferenceHandler) ToggleBoxType(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c, "box type")
	}

	box, err := h.boxTypeUC.ToggleActive(c.Request().Context(), middleware.GetActor(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, box)
}

func (h *ReferenceHandler) DeleteBoxType(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c, "box type")
	}

	if err := h.boxTypeUC.Delete(c.Request().Context(), middleware.GetActor(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Box type deleted successfully"})
}

// Quote prices a box type for a destination.
func (h *ReferenceHandler) Quote(c echo.Context) error {
	var req QuoteRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	quote, err := h.boxTypeUC.Quote(c.Request().Context(), uuid.MustParse(req.BoxTypeID), uuid.MustParse(req.CountryID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &QuoteResponse{
		BoxTypeID:   quote.BoxTypeID,
		BoxTypeName: quote.BoxTypeName,
		CountryID:   quote.CountryID,
		CountryName: quote.CountryName,
		Currency:    quote.Currency,
		BasePrice:   quote.BasePrice,
		Multiplier:  quote.Multiplier,
		Cost:        quote.Cost,
		RoundedCost: pricing.RoundForDisplay(quote.Cost),
	})
}
