// Package http provides the echo-based HTTP surface of the storefront:
// the public shop endpoints and the JWT-guarded admin board.
package http

import (
	"errors"
	"net/http"

	"storefront/internal/adapters/in/http/middleware"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ErrorResponse is the error body shared by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	catalog *catalog.Catalog

	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	listProductsHandler  queries.ListProductsQueryHandler
	listRegionsHandler   queries.ListRegionsQueryHandler
	listOrdersHandler    queries.ListOrdersQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
	getOrderStatsHandler queries.GetOrderStatsQueryHandler
	exportOrdersHandler  queries.ExportOrdersQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	productCatalog *catalog.Catalog,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	listProductsHandler queries.ListProductsQueryHandler,
	listRegionsHandler queries.ListRegionsQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
	exportOrdersHandler queries.ExportOrdersQueryHandler,
) *Server {
	return &Server{
		catalog:                  productCatalog,
		placeOrderHandler:        placeOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		listProductsHandler:      listProductsHandler,
		listRegionsHandler:       listRegionsHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getOrderStatsHandler:     getOrderStatsHandler,
		exportOrdersHandler:      exportOrdersHandler,
	}
}

// RegisterRoutes mounts the public endpoints, the JWT-guarded admin group and
// the prometheus scrape endpoint on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.GET("/products", s.ListProducts)
	api.GET("/regions", s.ListRegions)
	api.POST("/orders", s.PlaceOrder)

	admin := api.Group("/admin", middleware.AdminAuth(jwtSecret))
	admin.GET("/orders", s.ListOrders)
	admin.GET("/orders/stats", s.GetOrderStats)
	admin.GET("/orders/export", s.ExportOrders)
	admin.GET("/orders/:orderNumber", s.GetOrder)
	admin.PATCH("/orders/:orderNumber/status", s.UpdateOrderStatus)
	admin.DELETE("/orders/:orderNumber", s.DeleteOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ListProducts handles GET /api/v1/products - retrieves the product grid.
func (s *Server) ListProducts(ctx echo.Context) error {
	query := queries.NewListProductsQuery(
		ctx.QueryParam("search"),
		ctx.QueryParam("category"),
	)

	products, err := s.listProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, products)
}

// ListRegions handles GET /api/v1/regions - retrieves the delivery zones.
func (s *Server) ListRegions(ctx echo.Context) error {
	regions, err := s.listRegionsHandler.Handle(ctx.Request().Context(), queries.NewListRegionsQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, regions)
}

// checkoutItem is one cart line of a checkout submission. Prices are resolved
// server-side from the catalog; the client only names products and quantities.
type checkoutItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// checkoutRequest is the payload of POST /api/v1/orders.
type checkoutRequest struct {
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Phone1    string         `json:"phone1"`
	Phone2    string         `json:"phone2"`
	OrderType string         `json:"orderType"`
	Region    string         `json:"region"`
	SubRegion string         `json:"subRegion"`
	Items     []checkoutItem `json:"items"`
}

// placeOrderResponse is the body of a successful checkout.
type placeOrderResponse struct {
	OrderNumber string `json:"orderNumber"`
}

// PlaceOrder handles POST /api/v1/orders - submits a checkout.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req checkoutRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderType, err := kernel.ParseOrderType(req.OrderType)
	if err != nil {
		return errorJSON(ctx, err)
	}

	customer, err := order.NewCustomer(req.FirstName, req.LastName, req.Phone1, req.Phone2)
	if err != nil {
		return errorJSON(ctx, err)
	}

	destination, err := kernel.NewDestination(req.Region, req.SubRegion)
	if err != nil {
		return errorJSON(ctx, err)
	}

	basket := cart.NewCart()
	for _, item := range req.Items {
		product, lookupErr := s.catalog.Get(item.ProductID)
		if lookupErr != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Unknown product in cart",
			})
		}

		line := cart.Line{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		}
		if addErr := basket.AddLine(line); addErr != nil {
			return errorJSON(ctx, addErr)
		}
	}

	cmd, err := commands.NewPlaceOrderCommand(orderType, customer, destination, basket.Snapshot())
	if err != nil {
		return errorJSON(ctx, err)
	}

	orderNumber, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	middleware.RecordOrderOperation("place", err == nil)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, placeOrderResponse{OrderNumber: orderNumber})
}

// ListOrders handles GET /api/v1/admin/orders - retrieves the order board.
func (s *Server) ListOrders(ctx echo.Context) error {
	orderType, err := parseOrderTypeFilter(ctx.QueryParam("type"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(
		ctx.QueryParam("search"),
		orderType,
		ctx.QueryParam("region"),
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/admin/orders/:orderNumber.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("orderNumber"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, found)
}

// GetOrderStats handles GET /api/v1/admin/orders/stats.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// updateStatusRequest is the payload of PATCH .../status.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus handles PATCH /api/v1/admin/orders/:orderNumber/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req updateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(ctx.Param("orderNumber"), status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	middleware.RecordOrderOperation("update_status", err == nil)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/admin/orders/:orderNumber.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(ctx.Param("orderNumber"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd)
	middleware.RecordOrderOperation("delete", err == nil)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ExportOrders handles GET /api/v1/admin/orders/export - downloads the board
// as a CSV attachment.
func (s *Server) ExportOrders(ctx echo.Context) error {
	orderType, err := parseOrderTypeFilter(ctx.QueryParam("type"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewExportOrdersQuery(
		ctx.QueryParam("search"),
		orderType,
		ctx.QueryParam("region"),
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	export, err := s.exportOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+export.Filename+`"`)
	return ctx.Blob(http.StatusOK, "text/csv", export.Content)
}

// parseOrderTypeFilter maps the optional ?type= query parameter onto the
// domain filter value; an absent parameter means no filter.
func parseOrderTypeFilter(raw string) (kernel.OrderType, error) {
	if raw == "" {
		return kernel.UnknownOrderType, nil
	}
	return kernel.ParseOrderType(raw)
}

// errorJSON maps domain errors onto the shared error body: validation failures
// are the submitter's fault, missing objects are 404, everything else is a
// server-side failure.
func errorJSON(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
