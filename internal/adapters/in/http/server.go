// Package http is the inbound HTTP adapter. It translates JSON requests
// into commands and queries and maps domain errors onto status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler      commands.CreateCustomerCommandHandler
	createPrinterHandler       commands.CreatePrinterCommandHandler
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderStatusHandler   commands.UpdateOrderStatusCommandHandler
	updatePaymentStatusHandler commands.UpdatePaymentStatusCommandHandler
	createPrintJobHandler      commands.CreatePrintJobCommandHandler
	trackPrintProgressHandler  commands.TrackPrintProgressCommandHandler
	deletePrinterHandler       commands.DeletePrinterCommandHandler

	// Query handlers
	getOperatingHoursHandler  queries.GetPrinterOperatingHoursQueryHandler
	getActivePrintJobsHandler queries.GetActivePrintJobsQueryHandler
	getOpenOrdersHandler      queries.GetOpenOrdersQueryHandler
	getAllPrintersHandler     queries.GetAllPrintersQueryHandler
	getAllCustomersHandler    queries.GetAllCustomersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	createPrinterHandler commands.CreatePrinterCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	updatePaymentStatusHandler commands.UpdatePaymentStatusCommandHandler,
	createPrintJobHandler commands.CreatePrintJobCommandHandler,
	trackPrintProgressHandler commands.TrackPrintProgressCommandHandler,
	deletePrinterHandler commands.DeletePrinterCommandHandler,
	getOperatingHoursHandler queries.GetPrinterOperatingHoursQueryHandler,
	getActivePrintJobsHandler queries.GetActivePrintJobsQueryHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
	getAllPrintersHandler queries.GetAllPrintersQueryHandler,
	getAllCustomersHandler queries.GetAllCustomersQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:      createCustomerHandler,
		createPrinterHandler:       createPrinterHandler,
		createOrderHandler:         createOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		updatePaymentStatusHandler: updatePaymentStatusHandler,
		createPrintJobHandler:      createPrintJobHandler,
		trackPrintProgressHandler:  trackPrintProgressHandler,
		deletePrinterHandler:       deletePrinterHandler,
		getOperatingHoursHandler:   getOperatingHoursHandler,
		getActivePrintJobsHandler:  getActivePrintJobsHandler,
		getOpenOrdersHandler:       getOpenOrdersHandler,
		getAllPrintersHandler:      getAllPrintersHandler,
		getAllCustomersHandler:     getAllCustomersHandler,
	}
}

// RegisterRoutes attaches all ledger routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/customers", s.CreateCustomer)
	v1.GET("/customers", s.GetAllCustomers)

	v1.POST("/printers", s.CreatePrinter)
	v1.GET("/printers", s.GetAllPrinters)
	v1.DELETE("/printers/:id", s.DeletePrinter)
	v1.GET("/printers/:id/operating-hours", s.GetOperatingHours)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/open", s.GetOpenOrders)
	v1.POST("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/orders/:id/payment-status", s.UpdatePaymentStatus)

	v1.POST("/print-jobs", s.CreatePrintJob)
	v1.GET("/print-jobs/active", s.GetActivePrintJobs)
	v1.POST("/print-jobs/:id/progress", s.TrackPrintProgress)
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps a domain error onto an HTTP status code.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrOperationRefused):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrTimeout):
		code = http.StatusGatewayTimeout
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}
	return ctx.JSON(code, errorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

type createdResponse struct {
	ID string `json:"id"`
}

type newCustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req newCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(req.FirstName, req.LastName, req.Email, req.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: cmd.CustomerID().String()})
}

type newPrinterRequest struct {
	Name         string `json:"name"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	BuildVolumeX int    `json:"build_volume_x"`
	BuildVolumeY int    `json:"build_volume_y"`
	BuildVolumeZ int    `json:"build_volume_z"`
	IPAddress    string `json:"ip_address"`
	APIKey       string `json:"api_key"`
}

// CreatePrinter handles POST /api/v1/printers.
func (s *Server) CreatePrinter(ctx echo.Context) error {
	var req newPrinterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreatePrinterCommand(
		req.Name, req.Model, req.Manufacturer,
		req.BuildVolumeX, req.BuildVolumeY, req.BuildVolumeZ,
		req.IPAddress, req.APIKey,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createPrinterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: cmd.PrinterID().String()})
}

type printerResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	BuildVolumeX int    `json:"build_volume_x"`
	BuildVolumeY int    `json:"build_volume_y"`
	BuildVolumeZ int    `json:"build_volume_z"`
	Status       string `json:"status"`
	IPAddress    string `json:"ip_address"`
}

// GetAllPrinters handles GET /api/v1/printers.
func (s *Server) GetAllPrinters(ctx echo.Context) error {
	query := queries.NewGetAllPrintersQuery()

	printers, err := s.getAllPrintersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]printerResponse, len(printers))
	for i, p := range printers {
		response[i] = printerResponse{
			ID:           p.ID.String(),
			Name:         p.Name,
			Model:        p.Model,
			Manufacturer: p.Manufacturer,
			BuildVolumeX: p.BuildVolumeX,
			BuildVolumeY: p.BuildVolumeY,
			BuildVolumeZ: p.BuildVolumeZ,
			Status:       p.Status.String(),
			IPAddress:    p.IPAddress,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type customerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

// GetAllCustomers handles GET /api/v1/customers.
func (s *Server) GetAllCustomers(ctx echo.Context) error {
	query := queries.NewGetAllCustomersQuery()

	customers, err := s.getAllCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]customerResponse, len(customers))
	for i, c := range customers {
		response[i] = customerResponse{
			ID:        c.ID.String(),
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Phone:     c.Phone,
			City:      c.City,
			Country:   c.Country,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeletePrinter handles DELETE /api/v1/printers/:id. Deletion is refused
// with 409 while the printer has queued, printing, or paused jobs.
func (s *Server) DeletePrinter(ctx echo.Context) error {
	printerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid printer ID")
	}

	cmd, err := commands.NewDeletePrinterCommand(printerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deletePrinterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type operatingHoursResponse struct {
	PrinterID     string  `json:"printer_id"`
	TotalHours    float64 `json:"total_hours"`
	CompletedJobs int     `json:"completed_jobs"`
}

// GetOperatingHours handles GET /api/v1/printers/:id/operating-hours.
func (s *Server) GetOperatingHours(ctx echo.Context) error {
	printerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid printer ID")
	}

	query, err := queries.NewGetPrinterOperatingHoursQuery(printerID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOperatingHoursHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, operatingHoursResponse{
		PrinterID:     result.PrinterID.String(),
		TotalHours:    result.TotalHours,
		CompletedJobs: result.CompletedJobs,
	})
}

type newOrderItemRequest struct {
	ProductName string  `json:"product_name"`
	ProductSKU  string  `json:"product_sku"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Notes       string  `json:"notes"`
}

type newOrderRequest struct {
	OrderNumber    string                `json:"order_number"`
	CustomerID     string                `json:"customer_id"`
	SalesChannelID string                `json:"sales_channel_id"`
	OrderDate      *time.Time            `json:"order_date"`
	Items          []newOrderItemRequest `json:"items"`

	TotalAmount    float64 `json:"total_amount"`
	TaxAmount      float64 `json:"tax_amount"`
	ShippingAmount float64 `json:"shipping_amount"`
	DiscountAmount float64 `json:"discount_amount"`

	ShippingAddress struct {
		Line1         string `json:"line1"`
		Line2         string `json:"line2"`
		City          string `json:"city"`
		StateProvince string `json:"state_province"`
		PostalCode    string `json:"postal_code"`
		Country       string `json:"country"`
	} `json:"shipping_address"`

	Notes string `json:"notes"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req newOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}

	var salesChannelID *kernel.UUID
	if req.SalesChannelID != "" {
		channelID, err := kernel.UUIDFromString(req.SalesChannelID)
		if err != nil {
			return badRequest(ctx, "Invalid sales channel ID")
		}
		salesChannelID = &channelID
	}

	orderDate := time.Now().UTC()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	items := make([]commands.OrderItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItemParams{
			ProductName: item.ProductName,
			ProductSKU:  item.ProductSKU,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Notes:       item.Notes,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(commands.CreateOrderParams{
		OrderNumber:    req.OrderNumber,
		CustomerID:     customerID,
		SalesChannelID: salesChannelID,
		OrderDate:      orderDate,
		Items:          items,
		TotalAmount:    req.TotalAmount,
		TaxAmount:      req.TaxAmount,
		ShippingAmount: req.ShippingAmount,
		DiscountAmount: req.DiscountAmount,
		ShippingAddress: order.Address{
			Line1:         req.ShippingAddress.Line1,
			Line2:         req.ShippingAddress.Line2,
			City:          req.ShippingAddress.City,
			StateProvince: req.ShippingAddress.StateProvince,
			PostalCode:    req.ShippingAddress.PostalCode,
			Country:       req.ShippingAddress.Country,
		},
		Notes: req.Notes,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: cmd.OrderID().String()})
}

type openOrderResponse struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"order_number"`
	CustomerID    string    `json:"customer_id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	TotalAmount   float64   `json:"total_amount"`
	OrderDate     time.Time `json:"order_date"`
}

// GetOpenOrders handles GET /api/v1/orders/open.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	query := queries.NewGetOpenOrdersQuery()

	orders, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]openOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = openOrderResponse{
			ID:            o.ID.String(),
			OrderNumber:   o.OrderNumber,
			CustomerID:    o.CustomerID.String(),
			Status:        o.Status.String(),
			PaymentStatus: o.PaymentStatus.String(),
			TotalAmount:   o.TotalAmount.Amount(),
			OrderDate:     o.OrderDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status. Illegal
// transitions come back as 422 with the refusing transition in the message.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req statusUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdatePaymentStatus handles POST /api/v1/orders/:id/payment-status.
func (s *Server) UpdatePaymentStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req statusUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.ParsePaymentStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updatePaymentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type newPrintJobRequest struct {
	JobName   string `json:"job_name"`
	PrinterID string `json:"printer_id"`
	OrderID   string `json:"order_id"`

	FilePath    string  `json:"file_path"`
	Material    string  `json:"material"`
	Color       string  `json:"color"`
	LayerHeight float64 `json:"layer_height"`
	Infill      int     `json:"infill"`

	EstimatedMinutes int `json:"estimated_minutes"`
}

// CreatePrintJob handles POST /api/v1/print-jobs.
func (s *Server) CreatePrintJob(ctx echo.Context) error {
	var req newPrintJobRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	printerID, err := kernel.UUIDFromString(req.PrinterID)
	if err != nil {
		return badRequest(ctx, "Invalid printer ID")
	}

	var orderID *kernel.UUID
	if req.OrderID != "" {
		id, err := kernel.UUIDFromString(req.OrderID)
		if err != nil {
			return badRequest(ctx, "Invalid order ID")
		}
		orderID = &id
	}

	cmd, err := commands.NewCreatePrintJobCommand(commands.CreatePrintJobParams{
		JobName:          req.JobName,
		PrinterID:        printerID,
		OrderID:          orderID,
		FilePath:         req.FilePath,
		Material:         req.Material,
		Color:            req.Color,
		LayerHeight:      req.LayerHeight,
		Infill:           req.Infill,
		EstimatedMinutes: req.EstimatedMinutes,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createPrintJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: cmd.JobID().String()})
}

type activePrintJobResponse struct {
	ID               string     `json:"id"`
	JobName          string     `json:"job_name"`
	PrinterID        string     `json:"printer_id"`
	OrderID          *string    `json:"order_id"`
	Status           string     `json:"status"`
	Progress         float64    `json:"progress"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	StartedAt        *time.Time `json:"started_at"`
}

// GetActivePrintJobs handles GET /api/v1/print-jobs/active with optional
// printer_id and order_id query filters.
func (s *Server) GetActivePrintJobs(ctx echo.Context) error {
	var printerID, orderID *kernel.UUID

	if raw := ctx.QueryParam("printer_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid printer ID")
		}
		printerID = &id
	}
	if raw := ctx.QueryParam("order_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid order ID")
		}
		orderID = &id
	}

	query, err := queries.NewGetActivePrintJobsQuery(printerID, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	jobs, err := s.getActivePrintJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]activePrintJobResponse, len(jobs))
	for i, job := range jobs {
		response[i] = activePrintJobResponse{
			ID:               job.ID.String(),
			JobName:          job.JobName,
			PrinterID:        job.PrinterID.String(),
			Status:           job.Status.String(),
			Progress:         job.Progress,
			EstimatedMinutes: job.EstimatedMinutes,
			StartedAt:        job.StartedAt,
		}
		if job.OrderID != nil {
			id := job.OrderID.String()
			response[i].OrderID = &id
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type progressEventRequest struct {
	Event         string  `json:"event"`
	Progress      float64 `json:"progress"`
	ActualMinutes int     `json:"actual_minutes"`
}

// TrackPrintProgress handles POST /api/v1/print-jobs/:id/progress.
// Accepts firmware callbacks and operator actions alike.
func (s *Server) TrackPrintProgress(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid print job ID")
	}

	var req progressEventRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewTrackPrintProgressCommand(
		jobID, commands.ProgressEvent(req.Event), req.Progress, req.ActualMinutes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.trackPrintProgressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
