package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "parcelhub/internal/adapters/in/http"
	"parcelhub/internal/adapters/out/credentials"
	"parcelhub/internal/adapters/out/memory"
	"parcelhub/internal/adapters/out/metrics"
	"parcelhub/internal/core/application/auth"
	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type parcelUoWs struct{ f *memory.UnitOfWorkFactory }

func (p parcelUoWs) Create() commands.ParcelUoW { return p.f.Create() }

type orderUoWs struct{ f *memory.UnitOfWorkFactory }

func (o orderUoWs) Create() commands.DeliveryOrderUoW { return o.f.Create() }

type allUoWs struct{ f *memory.UnitOfWorkFactory }

func (a allUoWs) Create() commands.UoW { return a.f.Create() }

type ServerTestSuite struct {
	suite.Suite
	e       *echo.Echo
	metrics *metrics.Metrics
}

func (s *ServerTestSuite) SetupTest() {
	store := memory.NewStore()
	uows := memory.NewUnitOfWorkFactory(store)
	parcels := memory.NewParcelRepository(store)
	generator := parcel.NewTrackingIDGenerator()

	accounts, err := credentials.DemoAccounts(bcrypt.MinCost)
	s.Require().NoError(err)
	verifier, err := credentials.NewStaticVerifier(accounts)
	s.Require().NoError(err)

	server := httpadapter.NewServer(
		auth.NewService(verifier, time.Hour),
		httpadapter.CommandHandlers{
			CreateParcel:         commands.NewCreateParcelCommandHandler(parcelUoWs{uows}, generator),
			AdvanceParcel:        commands.NewAdvanceParcelStatusCommandHandler(parcelUoWs{uows}),
			CancelParcel:         commands.NewCancelParcelCommandHandler(parcelUoWs{uows}),
			ResumeParcel:         commands.NewResumeParcelCommandHandler(parcelUoWs{uows}),
			AssignDriver:         commands.NewAssignDriverCommandHandler(parcelUoWs{uows}),
			CreateDeliveryOrder:  commands.NewCreateDeliveryOrderCommandHandler(allUoWs{uows}, generator),
			AdvanceDeliveryOrder: commands.NewAdvanceDeliveryOrderCommandHandler(orderUoWs{uows}),
		},
		httpadapter.QueryHandlers{
			ListParcels:        queries.NewListParcelsQueryHandler(parcels),
			TrackParcel:        queries.NewGetParcelByTrackingIDQueryHandler(parcels),
			ParcelStats:        queries.NewGetParcelStatsQueryHandler(parcels),
			DriverRoutes:       queries.NewGetDriverRoutesQueryHandler(parcels),
			DriverReport:       queries.NewGetDriverReportQueryHandler(parcels),
			ListDeliveryOrders: queries.NewListDeliveryOrdersQueryHandler(memory.NewDeliveryOrderRepository(store)),
		},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	s.metrics = metrics.NewMetrics()
	s.e, err = httpadapter.NewRouter(server, s.metrics)
	s.Require().NoError(err)
}

func (s *ServerTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
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
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}

func (s *ServerTestSuite) login(email, password string) string {
	rec := s.do(http.MethodPost, "/api/v1/sessions", "", servers.LoginRequest{Email: email, Password: password})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var session servers.Session
	s.decode(rec, &session)
	return session.Token
}

func (s *ServerTestSuite) adminToken() string  { return s.login("admin@teacheazy.com", "admin123") }
func (s *ServerTestSuite) vendorToken() string { return s.login("vendor@teacheazy.com", "vendor123") }
func (s *ServerTestSuite) driverToken() string { return s.login("driver@teacheazy.com", "driver123") }

func newParcelBody(size servers.ParcelSize, weight float64) servers.NewParcel {
	pincode := "560001"
	return servers.NewParcel{
		CustomerName:    "Asha Rao",
		CustomerPhone:   "+91-9876543210",
		PickupAddress:   "12 MG Road, Bengaluru",
		DeliveryAddress: "4 Park Street, Kolkata",
		Pincode:         &pincode,
		ParcelSize:      size,
		Weight:          weight,
	}
}

func (s *ServerTestSuite) createParcel(token string, body servers.NewParcel) servers.Parcel {
	rec := s.do(http.MethodPost, "/api/v1/parcels", token, body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var p servers.Parcel
	s.decode(rec, &p)
	return p
}

func (s *ServerTestSuite) errorOf(rec *httptest.ResponseRecorder) servers.Error {
	var e servers.Error
	s.decode(rec, &e)
	return e
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *ServerTestSuite) TestOpenAPIDocumentIsServed() {
	rec := s.do(http.MethodGet, "/api/openapi.json", "", nil)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "/api/v1/parcels/{parcelId}/advance")
}

func (s *ServerTestSuite) TestLogin() {
	s.Run("wrong password", func() {
		rec := s.do(http.MethodPost, "/api/v1/sessions", "",
			servers.LoginRequest{Email: "admin@teacheazy.com", Password: "nope"})

		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("missing password", func() {
		rec := s.do(http.MethodPost, "/api/v1/sessions", "", map[string]string{"email": "admin@teacheazy.com"})

		s.Require().Equal(http.StatusBadRequest, rec.Code)
		s.Require().NotNil(s.errorOf(rec).Fields)
		s.Contains(*s.errorOf(rec).Fields, "password")
	})

	s.Run("logout ends the session", func() {
		token := s.adminToken()
		s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/parcels", token, nil).Code)

		s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/v1/sessions/current", token, nil).Code)
		s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/v1/parcels", token, nil).Code)
	})
}

func (s *ServerTestSuite) TestCreateParcel() {
	vendor := s.vendorToken()

	s.Run("computes the fee and stamps the vendor", func() {
		p := s.createParcel(vendor, newParcelBody(servers.ParcelSizeLarge, 12))

		s.Equal(servers.ParcelStatusPending, p.Status)
		s.InDelta(13.00, p.DeliveryFee, 0.001)
		s.Regexp(`^ZMD[0-9]{6}[A-Z0-9]{4}$`, p.TrackingId)
		s.Require().NotNil(p.VendorId)
		s.Equal("2", *p.VendorId)
	})

	s.Run("reports every invalid field", func() {
		body := newParcelBody(servers.ParcelSizeSmall, 0)
		body.CustomerName = "  "

		rec := s.do(http.MethodPost, "/api/v1/parcels", vendor, body)

		s.Require().Equal(http.StatusBadRequest, rec.Code)
		e := s.errorOf(rec)
		s.Require().NotNil(e.Fields)
		s.ElementsMatch([]string{"customerName", "weight"}, *e.Fields)
	})

	s.Run("rejects weights above the limit", func() {
		rec := s.do(http.MethodPost, "/api/v1/parcels", vendor, newParcelBody(servers.ParcelSizeLarge, 1e20))

		s.Require().Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
		e := s.errorOf(rec)
		s.Require().NotNil(e.Fields)
		s.Equal([]string{"weight"}, *e.Fields)
	})

	s.Run("rejects bodies that do not match the schema", func() {
		rec := s.do(http.MethodPost, "/api/v1/parcels", vendor, map[string]any{
			"customerPhone":   "+91-9876543210",
			"pickupAddress":   "a",
			"deliveryAddress": "b",
			"parcelSize":      "huge",
			"weight":          1,
		})

		s.Require().Equal(http.StatusBadRequest, rec.Code)
		e := s.errorOf(rec)
		s.Require().NotNil(e.Fields)
		s.Contains(*e.Fields, "customerName")
		s.Contains(*e.Fields, "parcelSize")
	})

	s.Run("requires a session", func() {
		rec := s.do(http.MethodPost, "/api/v1/parcels", "", newParcelBody(servers.ParcelSizeSmall, 1))

		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *ServerTestSuite) TestParcelLifecycle() {
	admin, vendor, driver := s.adminToken(), s.vendorToken(), s.driverToken()
	customer := s.login("customer@teacheazy.com", "customer123")
	p := s.createParcel(vendor, newParcelBody(servers.ParcelSizeSmall, 1))
	advance := "/api/v1/parcels/" + p.Id.String() + "/advance"

	s.Equal(http.StatusForbidden, s.do(http.MethodPost, advance, customer, nil).Code)

	rec := s.do(http.MethodPost, advance, driver, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var advanced servers.Parcel
	s.decode(rec, &advanced)
	s.Equal(servers.ParcelStatusPickedUp, advanced.Status)

	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/v1/parcels/"+p.Id.String()+"/cancel", vendor, nil).Code)
	s.Equal(http.StatusConflict, s.do(http.MethodPost, advance, admin, nil).Code)
	s.Equal(http.StatusForbidden, s.do(http.MethodPost, "/api/v1/parcels/"+p.Id.String()+"/resume", vendor, nil).Code)

	rec = s.do(http.MethodPost, "/api/v1/parcels/"+p.Id.String()+"/resume", admin, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var resumed servers.Parcel
	s.decode(rec, &resumed)
	s.Equal(servers.ParcelStatusPending, resumed.Status)
}

func (s *ServerTestSuite) TestUnknownAndMalformedParcelIDs() {
	admin := s.adminToken()

	s.Equal(http.StatusNotFound,
		s.do(http.MethodPost, "/api/v1/parcels/5f8a1c9e-3b2d-4e7f-9a6b-1c2d3e4f5a6b/advance", admin, nil).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/parcels/not-a-uuid/advance", admin, nil).Code)
}

func (s *ServerTestSuite) TestTrackingIsPublic() {
	p := s.createParcel(s.vendorToken(), newParcelBody(servers.ParcelSizeMedium, 2))

	rec := s.do(http.MethodGet, "/api/v1/parcels/tracking/"+p.TrackingId, "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var tracked servers.Parcel
	s.decode(rec, &tracked)
	s.Equal(p.Id, tracked.Id)

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/v1/parcels/tracking/ZMD000000NONE", "", nil).Code)
}

func (s *ServerTestSuite) TestListIsScopedByRole() {
	admin, vendor := s.adminToken(), s.vendorToken()
	own := s.createParcel(vendor, newParcelBody(servers.ParcelSizeSmall, 1))
	other := newParcelBody(servers.ParcelSizeSmall, 1)
	otherVendor := "9"
	other.VendorId = &otherVendor
	s.createParcel(admin, other)

	var seen []servers.Parcel
	rec := s.do(http.MethodGet, "/api/v1/parcels?vendorId=9", vendor, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &seen)
	s.Require().Len(seen, 1)
	s.Equal(own.Id, seen[0].Id)

	rec = s.do(http.MethodGet, "/api/v1/parcels", admin, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &seen)
	s.Len(seen, 2)

	rec = s.do(http.MethodGet, "/api/v1/parcels?status=lost", admin, nil)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Equal([]string{"status"}, *s.errorOf(rec).Fields)
}

func (s *ServerTestSuite) TestStats() {
	admin, vendor := s.adminToken(), s.vendorToken()
	s.createParcel(vendor, newParcelBody(servers.ParcelSizeSmall, 1))
	s.createParcel(vendor, newParcelBody(servers.ParcelSizeLarge, 12))

	rec := s.do(http.MethodGet, "/api/v1/parcels/stats", admin, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var stats servers.ParcelStats
	s.decode(rec, &stats)
	s.Equal(2, stats.Total)
	s.Equal(2, stats.Pending)
	s.InDelta(18.00, stats.Revenue, 0.001)
	s.Equal(2, stats.ByStatus["pending"])

	s.Equal(http.StatusForbidden, s.do(http.MethodGet, "/api/v1/parcels/stats", s.driverToken(), nil).Code)
}

func (s *ServerTestSuite) TestDriverRoutesAndReport() {
	admin, driver := s.adminToken(), s.driverToken()
	p := s.createParcel(admin, newParcelBody(servers.ParcelSizeSmall, 1))

	rec := s.do(http.MethodPut, "/api/v1/parcels/"+p.Id.String()+"/driver", admin, servers.AssignDriverRequest{DriverId: "3"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/drivers/3/routes", driver, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var groups []servers.PincodeGroup
	s.decode(rec, &groups)
	s.Require().Len(groups, 1)
	s.Equal("560001", groups[0].Pincode)
	s.Require().Len(groups[0].Parcels, 1)
	s.Equal(p.Id, groups[0].Parcels[0].Id)

	s.Equal(http.StatusForbidden, s.do(http.MethodGet, "/api/v1/drivers/99/routes", driver, nil).Code)

	rec = s.do(http.MethodGet, "/api/v1/drivers/3/report", admin, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var report servers.DriverReport
	s.decode(rec, &report)
	s.Equal(servers.DriverReport{DriverId: "3", Pending: 1}, report)
}

func (s *ServerTestSuite) TestDeliveryOrders() {
	vendor := s.vendorToken()

	s.Run("names the failing parcel", func() {
		rec := s.do(http.MethodPost, "/api/v1/delivery-orders", vendor, servers.NewDeliveryOrder{
			VendorName: "Acme",
			Parcels: []servers.NewParcel{
				newParcelBody(servers.ParcelSizeSmall, 1),
				newParcelBody(servers.ParcelSizeSmall, 0),
			},
		})

		s.Require().Equal(http.StatusBadRequest, rec.Code)
		s.Equal([]string{"parcels[1].weight"}, *s.errorOf(rec).Fields)
	})

	s.Run("creates the batch and advances it", func() {
		rec := s.do(http.MethodPost, "/api/v1/delivery-orders", vendor, servers.NewDeliveryOrder{
			VendorName: "Acme",
			Parcels: []servers.NewParcel{
				newParcelBody(servers.ParcelSizeSmall, 1),
				newParcelBody(servers.ParcelSizeMedium, 3),
			},
		})
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		var created servers.DeliveryOrderCreated
		s.decode(rec, &created)
		s.Equal("2", created.Order.VendorId)
		s.Equal(2, created.Order.TotalParcels)
		s.Require().Len(created.Parcels, 2)
		s.Require().NotNil(created.Parcels[0].DeliveryOrderId)
		s.Equal(created.Order.Id, *created.Parcels[0].DeliveryOrderId)

		rec = s.do(http.MethodPost, "/api/v1/delivery-orders/"+created.Order.Id.String()+"/advance", vendor, nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		var advanced servers.DeliveryOrder
		s.decode(rec, &advanced)
		s.Equal(servers.DeliveryOrderStatusProcessing, advanced.Status)

		var orders []servers.DeliveryOrder
		rec = s.do(http.MethodGet, "/api/v1/delivery-orders", vendor, nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		s.decode(rec, &orders)
		s.Len(orders, 1)
	})

	s.Run("drivers may not list orders", func() {
		s.Equal(http.StatusForbidden, s.do(http.MethodGet, "/api/v1/delivery-orders", s.driverToken(), nil).Code)
	})
}

func (s *ServerTestSuite) TestRequestsAreCountedByRoute() {
	s.createParcel(s.vendorToken(), newParcelBody(servers.ParcelSizeSmall, 1))

	s.InDelta(1, testutil.ToFloat64(s.metrics.HTTPRequests.WithLabelValues(http.MethodPost, "/api/v1/parcels", "201")), 0)
	s.InDelta(1, testutil.ToFloat64(s.metrics.HTTPRequests.WithLabelValues(http.MethodPost, "/api/v1/sessions", "201")), 0)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
