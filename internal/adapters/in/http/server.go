// Package http exposes the order lifecycle and impact analysis operations
// over a REST API. Responses use a {success, data} envelope; errors map to
// 400 for validation failures, 404 for lookup misses, 503 for unavailable
// collaborators.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/signal"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Use-case contracts the server depends on. Declared here so transport tests
// can substitute the application layer.
type (
	// OrderCreator places a new order.
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	// StatusUpdater applies an authoritative status change.
	StatusUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error
	}

	// NotificationDispatcher sends a customer notification over all
	// registered channels.
	NotificationDispatcher interface {
		Handle(ctx context.Context, cmd commands.DispatchNotificationCommand) (commands.NotificationResult, error)
	}

	// ImpactDispatcher reacts to an impact verdict.
	ImpactDispatcher interface {
		Handle(ctx context.Context, cmd commands.DispatchImpactActionsCommand) (commands.ImpactDispatchResult, error)
	}

	// OrderReader retrieves one order with its timeline.
	OrderReader interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}

	// OrderLister retrieves a filtered page of orders.
	OrderLister interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error)
	}

	// TrackingReader retrieves the customer-facing tracking view.
	TrackingReader interface {
		Handle(ctx context.Context, query queries.GetTrackingQuery) (queries.GetTrackingQueryResponse, error)
	}
)

// Server wires HTTP routes to application use cases.
type Server struct {
	// Command handlers
	orderCreator        OrderCreator
	statusUpdater       StatusUpdater
	notificationHandler NotificationDispatcher
	impactHandler       ImpactDispatcher

	// Query handlers
	orderReader    OrderReader
	orderLister    OrderLister
	trackingReader TrackingReader

	// Signal pipeline
	signalSource    ports.SignalSource
	weatherAnalyzer services.WeatherAnalyzer
	trafficAnalyzer services.TrafficAnalyzer
}

// NewServer creates the HTTP server with the required command and query
// handlers plus the signal analysis pipeline.
func NewServer(
	orderCreator OrderCreator,
	statusUpdater StatusUpdater,
	notificationHandler NotificationDispatcher,
	impactHandler ImpactDispatcher,
	orderReader OrderReader,
	orderLister OrderLister,
	trackingReader TrackingReader,
	signalSource ports.SignalSource,
	weatherAnalyzer services.WeatherAnalyzer,
	trafficAnalyzer services.TrafficAnalyzer,
) *Server {
	return &Server{
		orderCreator:        orderCreator,
		statusUpdater:       statusUpdater,
		notificationHandler: notificationHandler,
		impactHandler:       impactHandler,
		orderReader:         orderReader,
		orderLister:         orderLister,
		trackingReader:      trackingReader,
		signalSource:        signalSource,
		weatherAnalyzer:     weatherAnalyzer,
		trafficAnalyzer:     trafficAnalyzer,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/api/orders", s.CreateOrder)
	e.GET("/api/orders", s.ListOrders)
	e.GET("/api/orders/:orderId", s.GetOrder)
	e.PATCH("/api/orders/:orderId/status", s.UpdateOrderStatus)
	e.GET("/api/tracking/:trackingId", s.GetTracking)

	e.POST("/api/weather/analyze", s.AnalyzeWeather)
	e.POST("/api/traffic/analyze", s.AnalyzeTraffic)
	e.POST("/api/notifications", s.DispatchNotification)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

type createOrderRequest struct {
	CustomerID          string `json:"customerId"`
	CustomerName        string `json:"customerName"`
	PickupAddress       string `json:"pickupAddress"`
	DeliveryAddress     string `json:"deliveryAddress"`
	PackageType         string `json:"packageType"`
	Priority            string `json:"priority"`
	SpecialInstructions string `json:"specialInstructions"`
}

// CreateOrder handles POST /api/orders. Responds 201 with the stored order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pickup, err := kernel.NewLocation(req.PickupAddress)
	if err != nil {
		return s.respondError(ctx, err)
	}
	delivery, err := kernel.NewLocation(req.DeliveryAddress)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID := kernel.NewOrderID()
	cmd, err := commands.NewCreateOrderCommand(orderID, kernel.NewTrackingID(), order.Details{
		CustomerID:          req.CustomerID,
		CustomerName:        req.CustomerName,
		PickupAddress:       pickup,
		DeliveryAddress:     delivery,
		PackageType:         req.PackageType,
		Priority:            order.Priority(req.Priority),
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.orderCreator.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	stored, err := s.fetchOrder(ctx.Request().Context(), orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, envelope{Success: true, Data: toOrderPayload(stored)})
}

// GetOrder handles GET /api/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	stored, err := s.fetchOrder(ctx.Request().Context(), orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: toOrderPayload(stored)})
}

// ListOrders handles GET /api/orders with optional status, page, and limit
// query parameters. Defaults: page 1, limit 10.
func (s *Server) ListOrders(ctx echo.Context) error {
	page, err := intParam(ctx.QueryParam("page"), 1)
	if err != nil {
		return badRequest(ctx, "Invalid page parameter")
	}
	limit, err := intParam(ctx.QueryParam("limit"), 10)
	if err != nil {
		return badRequest(ctx, "Invalid limit parameter")
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, parseErr := order.ParseStatus(raw)
		if parseErr != nil {
			return s.respondError(ctx, parseErr)
		}
		statusFilter = &status
	}

	query, err := queries.NewListOrdersQuery(statusFilter, page, limit)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.orderLister.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	summaries := make([]orderSummaryPayload, 0, len(result.Orders))
	for _, o := range result.Orders {
		summaries = append(summaries, orderSummaryPayload{
			OrderID:         o.ID,
			CustomerName:    o.CustomerName,
			Status:          o.Status,
			CreatedAt:       o.CreatedAt,
			DeliveryAddress: o.DeliveryAddress,
			Priority:        o.Priority,
		})
	}

	totalPages := int(result.Total) / result.Limit
	if int(result.Total)%result.Limit != 0 {
		totalPages++
	}

	return ctx.JSON(http.StatusOK, listEnvelope{
		Success: true,
		Data:    summaries,
		Pagination: paginationPayload{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: totalPages,
		},
	})
}

type updateStatusRequest struct {
	Status      string `json:"status"`
	Location    string `json:"location"`
	DelayReason string `json:"delayReason"`
}

// UpdateOrderStatus handles PATCH /api/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req updateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus, req.Location, req.DelayReason)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.statusUpdater.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	stored, err := s.fetchOrder(ctx.Request().Context(), orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: statusUpdatePayload{
		OrderID:   stored.ID,
		Status:    stored.Status,
		Location:  req.Location,
		UpdatedAt: stored.UpdatedAt,
	}})
}

// GetTracking handles GET /api/tracking/:trackingId. The response reflects
// time-derived progress; the store is never written during a read.
func (s *Server) GetTracking(ctx echo.Context) error {
	trackingID, err := kernel.TrackingIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetTrackingQuery(trackingID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.trackingReader.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: toTrackingPayload(result)})
}

type analyzeWeatherRequest struct {
	DeliveryLocations  []string `json:"delivery_locations"`
	PackageSensitivity string   `json:"package_sensitivity"`
}

// AnalyzeWeather handles POST /api/weather/analyze: fetches readings for the
// requested locations, classifies them, and lets the dispatcher react to the
// verdict. The response reports both the verdict and the actions taken.
func (s *Server) AnalyzeWeather(ctx echo.Context) error {
	var req analyzeWeatherRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	readings, err := s.signalSource.WeatherConditions(ctx.Request().Context(), req.DeliveryLocations)
	var verdict signal.WeatherVerdict
	switch {
	case errors.Is(err, errs.ErrCollaboratorUnavailable):
		// An unreachable source degrades the verdict instead of failing the
		// request; the dispatcher sees the degraded verdict and takes no action.
		verdict = s.weatherAnalyzer.Degraded()
	case err != nil:
		return s.respondError(ctx, err)
	default:
		verdict = s.weatherAnalyzer.Analyze(readings, req.PackageSensitivity)
	}

	cmd, err := commands.NewDispatchWeatherImpactCommand(verdict)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.impactHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: weatherAnalysisPayload{
		WeatherConditions:      toWeatherReadingPayloads(readings),
		ImpactAnalysis:         toWeatherVerdictPayload(verdict),
		RecommendedActions:     verdict.Recommendations,
		AutonomousActionsTaken: result.Actions,
		UpdatedOrders:          orderIDStrings(result.UpdatedOrderIDs),
		NotifiedOrders:         orderIDStrings(result.NotifiedOrderIDs),
	}})
}

type analyzeTrafficRequest struct {
	RouteWaypoints []string `json:"route_waypoints"`
	DepartureTime  string   `json:"departure_time"`
	VehicleType    string   `json:"vehicle_type"`
}

// AnalyzeTraffic handles POST /api/traffic/analyze.
func (s *Server) AnalyzeTraffic(ctx echo.Context) error {
	var req analyzeTrafficRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	readings, err := s.signalSource.TrafficConditions(ctx.Request().Context(), req.RouteWaypoints)
	var verdict signal.TrafficVerdict
	switch {
	case errors.Is(err, errs.ErrCollaboratorUnavailable):
		verdict = s.trafficAnalyzer.Degraded()
	case err != nil:
		return s.respondError(ctx, err)
	default:
		verdict = s.trafficAnalyzer.Analyze(readings)
	}

	cmd, err := commands.NewDispatchTrafficImpactCommand(verdict)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.impactHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: trafficAnalysisPayload{
		TrafficConditions:      toTrafficReadingPayloads(readings),
		RouteAnalysis:          toTrafficVerdictPayload(verdict),
		OptimizedRoute:         verdict.OptimizedRoute,
		EstimatedDelays:        toWaypointDelayPayloads(verdict.Delays),
		AutonomousActionsTaken: result.Actions,
	}})
}

type dispatchNotificationRequest struct {
	OrderID          string                  `json:"orderId"`
	CustomerID       string                  `json:"customerId"`
	NotificationType string                  `json:"notificationType"`
	MessageData      notificationMessageData `json:"messageData"`
}

type notificationMessageData struct {
	EstimatedDelivery    string `json:"estimatedDelivery"`
	NewEstimatedDelivery string `json:"newEstimatedDelivery"`
	TrackingURL          string `json:"trackingUrl"`
	CurrentLocation      string `json:"currentLocation"`
	Reason               string `json:"reason"`
	Message              string `json:"message"`
}

// DispatchNotification handles POST /api/notifications.
func (s *Server) DispatchNotification(ctx echo.Context) error {
	var req dispatchNotificationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.OrderIDFromString(req.OrderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	notificationType, err := notification.ParseType(req.NotificationType)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewDispatchNotificationCommand(orderID, req.CustomerID, notificationType,
		notification.TemplateData{
			EstimatedDelivery:    req.MessageData.EstimatedDelivery,
			NewEstimatedDelivery: req.MessageData.NewEstimatedDelivery,
			TrackingURL:          req.MessageData.TrackingURL,
			CurrentLocation:      req.MessageData.CurrentLocation,
			Reason:               req.MessageData.Reason,
			Message:              req.MessageData.Message,
		})
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.notificationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	failures := make([]channelFailurePayload, 0, len(result.Failed))
	for _, f := range result.Failed {
		failures = append(failures, channelFailurePayload{Channel: f.Channel, Error: f.Err.Error()})
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: notificationResultPayload{
		OrderID:          req.OrderID,
		NotificationType: req.NotificationType,
		Sent:             result.Sent,
		Failed:           failures,
	}})
}

func (s *Server) fetchOrder(ctx context.Context, orderID kernel.OrderID) (queries.OrderResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.OrderResponse{}, err
	}
	return s.orderReader.Handle(ctx, query)
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, envelope{Error: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, queries.ErrPageIsInvalid),
		errors.Is(err, queries.ErrLimitIsInvalid):
		return ctx.JSON(http.StatusBadRequest, envelope{Error: err.Error()})
	case errors.Is(err, errs.ErrCollaboratorUnavailable):
		return ctx.JSON(http.StatusServiceUnavailable, envelope{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, envelope{Error: "Internal server error"})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, envelope{Error: message})
}
