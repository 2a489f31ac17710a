package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"boxtrack/config"
	apimiddleware "boxtrack/internal/delivery/api/middleware"
	"boxtrack/internal/delivery/api/router"
	"boxtrack/internal/delivery/api/router/handler"
	"boxtrack/internal/domain/entity"
	domainerrors "boxtrack/internal/domain/errors"
	"boxtrack/internal/domain/repository"
	"boxtrack/internal/domain/service"
	"boxtrack/internal/infra/metrics"
	mockService "boxtrack/internal/mocks/service"
	mockUsecase "boxtrack/internal/mocks/usecase"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

var (
	customerID = uuid.MustParse("00000000-0000-0000-0000-0000000000c1")
	adminID    = uuid.MustParse("00000000-0000-0000-0000-0000000000ad")
	customer   = entity.Actor{ID: customerID, Role: entity.RoleRegisteredUser}
	admin      = entity.Actor{ID: adminID, Role: entity.RoleAdministrator}
)

type testServer struct {
	echo      *echo.Echo
	users     *mockUsecase.MockUserUsecase
	countries *mockUsecase.MockCountryUsecase
	boxes     *mockUsecase.MockBoxTypeUsecase
	shipments *mockUsecase.MockShipmentUsecase
	directory *mockUsecase.MockShipmentDirectoryUsecase
	dashboard *mockUsecase.MockDashboardUsecase
	devices   *mockUsecase.MockDeviceUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID  string              `json:"request_id"`
		Pagination *map[string]float64 `json:"pagination"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics"}

	tokens := mockService.NewMockTokenService(t)
	tokens.EXPECT().ValidateAccessToken(mock.Anything).RunAndReturn(func(token string) (*service.Claims, error) {
		switch token {
		case userToken:
			return &service.Claims{UserID: customerID, Roles: []string{entity.RoleRegisteredUser.String()}}, nil
		case adminToken:
			return &service.Claims{UserID: adminID, Roles: []string{entity.RoleAdministrator.String()}}, nil
		default:
			return nil, errors.New("token is expired")
		}
	}).Maybe()

	ts := &testServer{
		users:     mockUsecase.NewMockUserUsecase(t),
		countries: mockUsecase.NewMockCountryUsecase(t),
		boxes:     mockUsecase.NewMockBoxTypeUsecase(t),
		shipments: mockUsecase.NewMockShipmentUsecase(t),
		directory: mockUsecase.NewMockShipmentDirectoryUsecase(t),
		dashboard: mockUsecase.NewMockDashboardUsecase(t),
		devices:   mockUsecase.NewMockDeviceUsecase(t),
	}

	m := metrics.New()
	srv, err := NewServer(ServerParams{
		Lc:      fxtest.NewLifecycle(t),
		Cfg:     cfg,
		Logger:  logger,
		Metrics: m,
		RouterParams: router.RouterParams{
			AuthHandler:      handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: ts.users, Logger: logger}),
			AccountHandler:   handler.NewAccountHandler(handler.AccountHandlerParams{UserUC: ts.users, Logger: logger}),
			ReferenceHandler: handler.NewReferenceHandler(handler.ReferenceHandlerParams{CountryUC: ts.countries, BoxTypeUC: ts.boxes, Logger: logger}),
			ShipmentHandler:  handler.NewShipmentHandler(handler.ShipmentHandlerParams{ShipmentUC: ts.shipments, DirectoryUC: ts.directory, Logger: logger}),
			DashboardHandler: handler.NewDashboardHandler(handler.DashboardHandlerParams{DashboardUC: ts.dashboard, Logger: logger}),
			DeviceHandler:    handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: ts.devices, Logger: logger}),
			AuthMiddleware:   apimiddleware.NewAuthMiddleware(tokens),
			Config:           cfg,
			Metrics:          m,
		},
	})
	require.NoError(t, err)
	ts.echo = srv.(*apiServer).server

	return ts
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Register(t *testing.T) {
	t.Run("validation failure lists fields", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
			"first_name": "A",
			"email":      "nope",
			"password":   "short",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, string(env.Error.Details), `"field":"first_name"`)
		assert.Contains(t, string(env.Error.Details), `"field":"email"`)
		assert.Contains(t, string(env.Error.Details), `"field":"password"`)
		assert.NotEmpty(t, env.Meta.RequestID)
	})

	t.Run("success", func(t *testing.T) {
		ts := newTestServer(t)
		countryID := uuid.New()

		ts.users.EXPECT().RegisterUser(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterUserInput) bool {
			return in.Email == "ada@example.com" && in.CountryID != nil && *in.CountryID == countryID &&
				in.DateOfBirth != nil && in.DateOfBirth.Year() == 1990
		})).Return(&usecase.RegisterOutput{User: &entity.User{ID: customerID, Email: "ada@example.com", PasswordHash: "secret"}}, nil)

		rec := ts.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
			"first_name":    "Ada",
			"last_name":     "Lovelace",
			"email":         "ada@example.com",
			"password":      "Sup3rSecret!",
			"date_of_birth": "1990-12-10",
			"country_id":    countryID.String(),
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"ada@example.com"`)
		assert.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("duplicate email", func(t *testing.T) {
		ts := newTestServer(t)
		ts.users.EXPECT().RegisterUser(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "register"))

		rec := ts.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
			"first_name": "Ada", "email": "ada@example.com", "password": "Sup3rSecret!",
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", decode(t, rec).Error.Code)
	})
}

func TestServer_Login(t *testing.T) {
	ts := newTestServer(t)
	ts.users.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "pw"}).
		Return(&usecase.LoginOutput{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900_000_000_000}, nil)

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{"email": "ada@example.com", "password": "pw"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"a"`)
	assert.Contains(t, rec.Body.String(), `"token_type":"Bearer"`)
	assert.Contains(t, rec.Body.String(), `"expires_in":900`)
}

func TestServer_Authentication(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/shipments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", decode(t, rec).Error.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/shipments", "stale", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decode(t, rec).Error.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/dashboard/admin", userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/v1/shipments/"+uuid.NewString(), userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_Profile(t *testing.T) {
	ts := newTestServer(t)
	ts.users.EXPECT().GetProfile(mock.Anything, customerID).Return(&entity.User{ID: customerID, Email: "ada@example.com"}, nil)

	rec := ts.do(t, http.MethodGet, "/api/v1/me", userToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), customerID.String())
}

func TestServer_UpdateProfile(t *testing.T) {
	ts := newTestServer(t)
	countryID := uuid.New()

	ts.users.EXPECT().UpdateProfile(mock.Anything, customerID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
		return in.FirstName != nil && *in.FirstName == "Augusta" && in.Email == nil &&
			in.CountryID != nil && *in.CountryID == countryID
	})).Return(&entity.User{ID: customerID, FirstName: "Augusta", PasswordHash: "secret"}, nil)

	rec := ts.do(t, http.MethodPut, "/api/v1/me", userToken, map[string]any{"first_name": "Augusta", "country_id": countryID.String()})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"first_name":"Augusta"`)
	assert.NotContains(t, rec.Body.String(), "secret")

	rec = ts.do(t, http.MethodPut, "/api/v1/me", userToken, map[string]any{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)

	rec = ts.do(t, http.MethodPut, "/api/v1/me", "", map[string]any{"first_name": "Augusta"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_ChangePassword(t *testing.T) {
	ts := newTestServer(t)
	ts.users.EXPECT().ChangePassword(mock.Anything, customerID, &usecase.ChangePasswordInput{CurrentPassword: "old", NewPassword: "N3wSecret!"}).
		Return(nil)
	ts.users.EXPECT().ChangePassword(mock.Anything, customerID, &usecase.ChangePasswordInput{CurrentPassword: "guess", NewPassword: "N3wSecret!"}).
		Return(domainerrors.ErrInvalidCredentials.WithDetails("current password is incorrect"))

	rec := ts.do(t, http.MethodPut, "/api/v1/me/password", userToken, map[string]any{"current_password": "old", "new_password": "N3wSecret!"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password updated successfully")

	rec = ts.do(t, http.MethodPut, "/api/v1/me/password", userToken, map[string]any{"current_password": "guess", "new_password": "N3wSecret!"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(t, http.MethodPut, "/api/v1/me/password", userToken, map[string]any{"current_password": "old", "new_password": "short"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Accounts(t *testing.T) {
	ts := newTestServer(t)
	body := map[string]any{
		"first_name": "Grace", "last_name": "Hopper", "email": "grace@example.com",
		"password": "Sup3rSecret!", "role": "ADMINISTRATOR",
	}

	rec := ts.do(t, http.MethodPost, "/api/v1/accounts", userToken, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	ts.users.EXPECT().CreateAccount(mock.Anything, admin, mock.MatchedBy(func(in *usecase.CreateAccountInput) bool {
		return in.Role == entity.RoleAdministrator && in.Email == "grace@example.com"
	})).Return(&entity.User{ID: uuid.New(), Email: "grace@example.com", Role: entity.RoleAdministrator}, nil)
	rec = ts.do(t, http.MethodPost, "/api/v1/accounts", adminToken, body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"ADMINISTRATOR"`)

	body["role"] = "SUPERUSER"
	rec = ts.do(t, http.MethodPost, "/api/v1/accounts", adminToken, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	target := uuid.New()
	ts.users.EXPECT().DeleteAccount(mock.Anything, admin, target).Return(nil)
	rec = ts.do(t, http.MethodDelete, "/api/v1/accounts/"+target.String(), adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account deleted successfully")

	ts.users.EXPECT().DeleteAccount(mock.Anything, admin, adminID).Return(domainerrors.ErrCannotDeleteSelf)
	rec = ts.do(t, http.MethodDelete, "/api/v1/accounts/"+adminID.String(), adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "CANNOT_DELETE_SELF", decode(t, rec).Error.Code)

	rec = ts.do(t, http.MethodDelete, "/api/v1/accounts/not-a-uuid", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Analytics(t *testing.T) {
	ts := newTestServer(t)
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	ts.dashboard.EXPECT().Analytics(mock.Anything, admin, usecase.AnalyticsFilter{From: &from, To: &to}).
		Return(&usecase.Analytics{
			PriorityCounts: map[entity.Priority]int64{entity.PriorityExpress: 2},
			DeliveryTime:   repository.DeliveryTimeSummary{AverageDays: 2.5, Count: 2},
		}, nil)

	rec := ts.do(t, http.MethodGet, "/api/v1/dashboard/analytics?startDate=2024-01-01&endDate=2024-01-31", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"EXPRESS":2`)
	assert.Contains(t, rec.Body.String(), `"average_days":2.5`)

	rec = ts.do(t, http.MethodGet, "/api/v1/dashboard/analytics", userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/dashboard/analytics?startDate=01/01/2024", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_CreateShipment(t *testing.T) {
	ts := newTestServer(t)
	countryID, boxID := uuid.New(), uuid.New()

	ts.shipments.EXPECT().Create(mock.Anything, customer, mock.MatchedBy(func(in *usecase.CreateShipmentInput) bool {
		return in.BoxTypeID == boxID && in.Receiver.CountryID == countryID && in.Priority == entity.PriorityExpress
	})).Return(&entity.Shipment{ID: uuid.New(), TrackingNumber: "BOX-1", Status: entity.StatusCreated}, nil)

	rec := ts.do(t, http.MethodPost, "/api/v1/shipments", userToken, map[string]any{
		"receiver_first_name":     "Grace",
		"receiver_last_name":      "Hopper",
		"receiver_email":          "grace@example.com",
		"receiver_contact_number": "+1 555 0100 200",
		"receiver_street":         "1 Main Street",
		"receiver_city":           "Toronto",
		"receiver_zip_code":       "M5V",
		"receiver_country_id":     countryID.String(),
		"box_type_id":             boxID.String(),
		"contents":                "Books and papers",
		"weight":                  2.5,
		"priority":                "express",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tracking_number":"BOX-1"`)

	rec = ts.do(t, http.MethodPost, "/api/v1/shipments", userToken, map[string]any{"weight": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ListShipments(t *testing.T) {
	ts := newTestServer(t)

	ts.directory.EXPECT().List(mock.Anything, customer, mock.MatchedBy(func(f usecase.ShipmentFilter) bool {
		return f.Status != nil && *f.Status == entity.StatusInTransit && f.Search == "box"
	}), usecase.PageRequest{Page: 2, PageSize: 5}).Return(&usecase.ShipmentPage{
		Items: []*entity.Shipment{{TrackingNumber: "BOX-6"}}, Total: 6, Page: 2, PageSize: 5, TotalPages: 2,
	}, nil)

	rec := ts.do(t, http.MethodGet, "/api/v1/shipments?status=in_transit&search=box&page=2&pageSize=5", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Meta.Pagination)
	assert.InDelta(t, 6, (*env.Meta.Pagination)["total"], 0)
	assert.InDelta(t, 2, (*env.Meta.Pagination)["total_pages"], 0)
	assert.Contains(t, string(env.Data), "BOX-6")

	rec = ts.do(t, http.MethodGet, "/api/v1/shipments?status=lost", userToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ListFixedStatusAndCustomer(t *testing.T) {
	ts := newTestServer(t)
	empty := &usecase.ShipmentPage{Items: []*entity.Shipment{}, Page: 1, PageSize: 10}

	ts.directory.EXPECT().List(mock.Anything, customer, mock.MatchedBy(func(f usecase.ShipmentFilter) bool {
		return f.Status != nil && *f.Status == entity.StatusCancelled
	}), usecase.PageRequest{}).Return(empty, nil)

	rec := ts.do(t, http.MethodGet, "/api/v1/shipments/cancelled", userToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/shipments/customer/"+customerID.String(), userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	ts.directory.EXPECT().List(mock.Anything, admin, mock.MatchedBy(func(f usecase.ShipmentFilter) bool {
		return f.SenderID != nil && *f.SenderID == customerID && f.IncludeClosed
	}), usecase.PageRequest{}).Return(empty, nil)

	rec = ts.do(t, http.MethodGet, "/api/v1/shipments/customer/"+customerID.String(), adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_TransitionErrors(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()

	ts.shipments.EXPECT().Transition(mock.Anything, admin, &usecase.TransitionInput{ShipmentID: id, Status: entity.StatusReceived}).
		Return(nil, errors.Wrap(domainerrors.ErrIllegalTransition.WithDetails("COMPLETED is terminal"), "transition"))

	rec := ts.do(t, http.MethodPut, "/api/v1/shipments/"+id.String()+"/status", adminToken, map[string]any{"status": "received"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "ILLEGAL_TRANSITION", env.Error.Code)
	assert.JSONEq(t, `"COMPLETED is terminal"`, string(env.Error.Details))

	rec = ts.do(t, http.MethodPut, "/api/v1/shipments/not-a-uuid/status", adminToken, map[string]any{"status": "received"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)
}

func TestServer_UnhandledErrorIsHidden(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()
	ts.directory.EXPECT().Get(mock.Anything, customer, id).Return(nil, errors.New("pq: connection refused"))

	rec := ts.do(t, http.MethodGet, "/api/v1/shipments/"+id.String(), userToken, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, rec).Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestServer_Label(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()
	ts.directory.EXPECT().Label(mock.Anything, customer, id).Return(&usecase.ShipmentLabel{
		Shipment: &entity.Shipment{ID: id, TrackingNumber: "BOX-9"},
		PNG:      []byte("\x89PNG"),
	}, nil)

	rec := ts.do(t, http.MethodGet, "/api/v1/shipments/"+id.String()+"/label", userToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "BOX-9.png")
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestServer_MarkPaid(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()
	ts.shipments.EXPECT().MarkPaid(mock.Anything, customer, &usecase.MarkPaidInput{ShipmentID: id, PaymentMethod: "card"}).
		Return(&entity.Shipment{ID: id, PaymentStatus: entity.PaymentPaid}, nil)

	rec := ts.do(t, http.MethodPost, "/api/v1/shipments/"+id.String()+"/payment", userToken, map[string]any{"payment_method": "card"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"payment_status":"PAID"`)
}

func TestServer_ReferenceData(t *testing.T) {
	ts := newTestServer(t)
	boxID, countryID := uuid.New(), uuid.New()

	ts.boxes.EXPECT().Quote(mock.Anything, boxID, countryID).Return(&usecase.CostQuote{
		BoxTypeName: "Medium", CountryName: "Canada", Currency: "CAD", Cost: 98.766,
	}, nil)
	rec := ts.do(t, http.MethodPost, "/api/v1/boxes/calculate-cost", "", map[string]any{
		"box_type_id": boxID.String(), "country_id": countryID.String(),
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rounded_cost":98.77`)

	ts.countries.EXPECT().List(mock.Anything, true).Return([]*entity.Country{{Code: "CA"}}, nil)
	rec = ts.do(t, http.MethodGet, "/api/v1/countries/active", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/countries", userToken, map[string]any{})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	ts.countries.EXPECT().Create(mock.Anything, admin, mock.MatchedBy(func(in *usecase.CountryInput) bool {
		return in.ShippingZone == entity.ShippingZone1 && in.Continent == entity.ContinentNorthAmerica
	})).Return(&entity.Country{Code: "CA"}, nil)
	rec = ts.do(t, http.MethodPost, "/api/v1/countries", adminToken, map[string]any{
		"name": "Canada", "code": "CA", "currency_code": "CAD", "multiplier": 2, "continent": "North America",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	ts.boxes.EXPECT().Delete(mock.Anything, admin, boxID).Return(domainerrors.ErrReferenceInUse)
	rec = ts.do(t, http.MethodDelete, "/api/v1/boxes/"+boxID.String(), adminToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_Devices(t *testing.T) {
	ts := newTestServer(t)
	ts.devices.EXPECT().RegisterDevice(mock.Anything, customerID, &usecase.DeviceInfo{FCMToken: "tok", DeviceID: "pixel", Platform: "android"}).
		Return(&entity.UserDevice{DeviceID: "pixel"}, nil)

	rec := ts.do(t, http.MethodPost, "/api/v1/devices", userToken, map[string]any{"fcm_token": "tok", "device_id": "pixel", "platform": "android"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/devices", userToken, map[string]any{"fcm_token": "tok", "device_id": "pixel", "platform": "symbian"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Metrics(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodGet, "/health", "", nil)

	rec := ts.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `http_requests_total{method="GET",path="/health",status="200"} 1`))
	assert.NotContains(t, body, `path="/metrics"`)
}
