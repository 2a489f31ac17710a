package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"boxtrack/internal/delivery/api/middleware"
	"boxtrack/internal/delivery/api/response"
	"boxtrack/internal/domain/entity"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShipmentHandlerParams holds dependencies for ShipmentHandler, injected by Fx.
type ShipmentHandlerParams struct {
	fx.In

	ShipmentUC  usecase.ShipmentUsecase
	DirectoryUC usecase.ShipmentDirectoryUsecase
	Logger      *slog.Logger
}

// ShipmentHandler serves the shipment lifecycle and its read side.
type ShipmentHandler struct {
	shipmentUC  usecase.ShipmentUsecase
	directoryUC usecase.ShipmentDirectoryUsecase
	logger      *slog.Logger
}

// NewShipmentHandler is the constructor for ShipmentHandler
func NewShipmentHandler(params ShipmentHandlerParams) *ShipmentHandler {
	return &ShipmentHandler{
		shipmentUC:  params.ShipmentUC,
		directoryUC: params.DirectoryUC,
		logger:      params.Logger,
	}
}

// CreateShipmentRequest represents the request body for booking a shipment
type CreateShipmentRequest struct {
	ReceiverFirstName     string  `json:"receiver_first_name" validate:"required,min=2,max=50"`
	ReceiverLastName      string  `json:"receiver_last_name" validate:"required,min=2,max=50"`
	ReceiverEmail         string  `json:"receiver_email" validate:"required,email"`
	ReceiverContactNumber string  `json:"receiver_contact_number" validate:"required,min=10"`
	ReceiverStreet        string  `json:"receiver_street" validate:"required,min=5"`
	ReceiverCity          string  `json:"receiver_city" validate:"required,min=2"`
	ReceiverState         string  `json:"receiver_state"`
	ReceiverZipCode       string  `json:"receiver_zip_code" validate:"required,min=3"`
	ReceiverCountryID     string  `json:"receiver_country_id" validate:"required,uuid"`
	BoxTypeID             string  `json:"box_type_id" validate:"required,uuid"`
	Contents              string  `json:"contents" validate:"required,min=5,max=1000"`
	Weight                float64 `json:"weight" validate:"gte=0.1"`
	Priority              string  `json:"priority" validate:"omitempty,priority"`
	IsFragile             bool    `json:"is_fragile"`
	IsInsured             bool    `json:"is_insured"`
	InsuranceValue        float64 `json:"insurance_value" validate:"gte=0"`
	Notes                 string  `json:"notes" validate:"max=500"`
}

// TransitionRequest represents the request body for a status change
type TransitionRequest struct {
	Status      string `json:"status" validate:"required,shipment_status"`
	Location    string `json:"location" validate:"omitempty,min=2"`
	Description string `json:"description" validate:"max=500"`
}

// PaymentRequest records how a shipment was paid
type PaymentRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,max=50"`
}

// ListShipmentsQuery holds the listing filters
type ListShipmentsQuery struct {
	Status        string `query:"status" validate:"omitempty,shipment_status"`
	Priority      string `query:"priority" validate:"omitempty,priority"`
	Search        string `query:"search" validate:"max=100"`
	Page          int    `query:"page" validate:"gte=0"`
	PageSize      int    `query:"pageSize" validate:"gte=0"`
	IncludeClosed bool   `query:"includeClosed"`
}

func (q *ListShipmentsQuery) toFilter() usecase.ShipmentFilter {
	filter := usecase.ShipmentFilter{
		Search:        q.Search,
		IncludeClosed: q.IncludeClosed,
	}
	if q.Status != "" {
		status := entity.ShipmentStatus(strings.ToUpper(q.Status))
		filter.Status = &status
	}
	if q.Priority != "" {
		priority := entity.Priority(strings.ToUpper(q.Priority))
		filter.Priority = &priority
	}

	return filter
}

// Create books a shipment for the caller.
func (h *ShipmentHandler) Create(c echo.Context) error {
	var req CreateShipmentRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input := &usecase.CreateShipmentInput{
		Receiver: entity.Receiver{
			FirstName:     req.ReceiverFirstName,
			LastName:      req.ReceiverLastName,
			Email:         req.ReceiverEmail,
			ContactNumber: req.ReceiverContactNumber,
			Street:        req.ReceiverStreet,
			City:          req.ReceiverCity,
			State:         req.ReceiverState,
			ZipCode:       req.ReceiverZipCode,
			CountryID:     uuid.MustParse(req.ReceiverCountryID),
		},
		BoxTypeID:      uuid.MustParse(req.BoxTypeID),
		Weight:         req.Weight,
		Contents:       req.Contents,
		Priority:       entity.Priority(strings.ToUpper(req.Priority)),
		IsFragile:      req.IsFragile,
		IsInsured:      req.IsInsured,
		InsuranceValue: req.InsuranceValue,
		Notes:          req.Notes,
	}

	shipment, err := h.shipmentUC.Create(c.Request().Context(), middleware.GetActor(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, shipment)
}

// List returns the shipments the caller may see.
func (h *ShipmentHandler) List(c echo.Context) error {
	var query ListShipmentsQuery
	if ok, err := bindAndValidate(c, &query); !ok {
		return err
	}

	return h.list(c, query.toFilter(), query)
}

// ListByStatus serves the fixed-status listings such as /shipments/completed.
func (h *ShipmentHandler) ListByStatus(status entity.ShipmentStatus) echo.HandlerFunc {
	return func(c echo.Context) error {
		var query ListShipmentsQuery
		if ok, err := bindAndValidate(c, &query); !ok {
			return err
		}

		filter := query.toFilter()
		filter.Status = &status

		return h.list(c, filter, query)
	}
}

// ListByCustomer lists one customer's shipments, closed ones included.
func (h *ShipmentHandler) ListByCustomer(c echo.Context) error {
	customerID, ok := parseIDParam(c, "customerId")
	if !ok {
		return invalidID(c, "customer")
	}

	var query ListShipmentsQuery
	if ok, err := bindAndValidate(c, &query); !ok {
		return err
	}

	filter := query.toFilter()
	filter.SenderID = &customerID
	filter.IncludeClosed = true

	return h.list(c, filter, query)
}

func (h *ShipmentHandler) list(c echo.Context, filter usecase.ShipmentFilter, query ListShipmentsQuery) error {
	page, err := h.directoryUC.List(c.Request().Context(), middleware.GetActor(c), filter, usecase.PageRequest{
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, page.Items, &response.Pagination{
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	})
}

func (h *ShipmentHandler) Get(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c, "shipment")
	}

	shipment, err := h.directoryUC.Get(c.Request().Context(), middleware.GetActor(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shipment)
}

func (h *ShipmentHandler) GetByTrackingNumber(c echo.Context) error {
	shipment, err := h.directoryUC.GetByTrackingNumber(c.Request().Context(), middleware.GetActor(c), c.Param("trackingNumber"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shipment)
}

// History returns the tracking ledger, oldest entry first.
func (h *ShipmentHandler) History(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c, "shipment")
	}

	history, err := h.directoryUC.History(c.Request().Context(), middleware.GetActor(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

// Label streams the QR label as a PNG.
func (h *ShipmentHandler) Label(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c, "shipment")
	}

	label, err := h.directoryUC.Label(c.Request().Context(), middleware.GetActor(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+label.Shipment.TrackingNumber+`.png"`)

	return c.Blob(http.StatusOK, "image/png", label.PNG)
}

func (h *ShipmentHandler) Transition(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c, "shipment")
	}

	var req TransitionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	shipment, err := h.shipmentUC.Transition(c.Request().Context(), middleware.GetActor(c), &usecase.TransitionInput{
		ShipmentID:  id,
		Status:      entity.ShipmentStatus(strings.ToUpper(req.Status)),
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shipment)
}

func (h *ShipmentHandler) MarkPaid(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c, "shipment")
	}

	var req PaymentRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	shipment, err := h.shipmentUC.MarkPaid(c.Request().Context(), middleware.GetActor(c), &usecase.MarkPaidInput{
		ShipmentID:    id,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shipment)
}

func (h *ShipmentHandler) Delete(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidID(c, "shipment")
	}

	if err := h.shipmentUC.Delete(c.Request().Context(), middleware.GetActor(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Shipment deleted successfully"})
}
