// Package http exposes the application's use cases over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"gooddelivery/internal/core/application/usecases/commands"
	"gooddelivery/internal/core/application/usecases/queries"
	"gooddelivery/internal/core/domain/model/delivery"
	"gooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP surface of the application.
type Server struct {
	createCampaignHandler     commands.CreateCampaignCommandHandler
	createPointHandler        commands.CreateDeliveryPointCommandHandler
	createAgreementHandler    commands.CreateAgreementCommandHandler
	assignOperatorHandler     commands.AssignOperatorCommandHandler
	assignUserHandler         commands.AssignUserCommandHandler
	createCategoryHandler     commands.CreateCategoryCommandHandler
	createGoodHandler         commands.CreateGoodCommandHandler
	createStockHandler        commands.CreateStockCommandHandler
	addStockIdentifierHandler commands.AddStockIdentifierCommandHandler
	createDeliveryHandler     commands.CreateDeliveryCommandHandler
	updateDeliveryHandler     commands.UpdateDeliveryCommandHandler
	markDeliveredHandler      commands.MarkDeliveredCommandHandler
	confirmDeliveryHandler    commands.ConfirmDeliveryCommandHandler
	returnDeliveryHandler     commands.ReturnDeliveryCommandHandler
	disableDeliveryHandler    commands.DisableDeliveryCommandHandler
	deleteDeliveryHandler     commands.DeleteDeliveryCommandHandler

	getUserDeliveriesHandler    queries.GetUserDeliveriesQueryHandler
	getPointStockBalanceHandler queries.GetPointStockBalanceQueryHandler
	getDeliveryReceiptHandler   queries.GetDeliveryReceiptQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCampaignHandler commands.CreateCampaignCommandHandler,
	createPointHandler commands.CreateDeliveryPointCommandHandler,
	createAgreementHandler commands.CreateAgreementCommandHandler,
	assignOperatorHandler commands.AssignOperatorCommandHandler,
	assignUserHandler commands.AssignUserCommandHandler,
	createCategoryHandler commands.CreateCategoryCommandHandler,
	createGoodHandler commands.CreateGoodCommandHandler,
	createStockHandler commands.CreateStockCommandHandler,
	addStockIdentifierHandler commands.AddStockIdentifierCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	updateDeliveryHandler commands.UpdateDeliveryCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	returnDeliveryHandler commands.ReturnDeliveryCommandHandler,
	disableDeliveryHandler commands.DisableDeliveryCommandHandler,
	deleteDeliveryHandler commands.DeleteDeliveryCommandHandler,
	getUserDeliveriesHandler queries.GetUserDeliveriesQueryHandler,
	getPointStockBalanceHandler queries.GetPointStockBalanceQueryHandler,
	getDeliveryReceiptHandler queries.GetDeliveryReceiptQueryHandler,
) *Server {
	return &Server{
		createCampaignHandler:       createCampaignHandler,
		createPointHandler:          createPointHandler,
		createAgreementHandler:      createAgreementHandler,
		assignOperatorHandler:       assignOperatorHandler,
		assignUserHandler:           assignUserHandler,
		createCategoryHandler:       createCategoryHandler,
		createGoodHandler:           createGoodHandler,
		createStockHandler:          createStockHandler,
		addStockIdentifierHandler:   addStockIdentifierHandler,
		createDeliveryHandler:       createDeliveryHandler,
		updateDeliveryHandler:       updateDeliveryHandler,
		markDeliveredHandler:        markDeliveredHandler,
		confirmDeliveryHandler:      confirmDeliveryHandler,
		returnDeliveryHandler:       returnDeliveryHandler,
		disableDeliveryHandler:      disableDeliveryHandler,
		deleteDeliveryHandler:       deleteDeliveryHandler,
		getUserDeliveriesHandler:    getUserDeliveriesHandler,
		getPointStockBalanceHandler: getPointStockBalanceHandler,
		getDeliveryReceiptHandler:   getDeliveryReceiptHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/campaigns", s.CreateCampaign)
	v1.POST("/campaigns/:campaign_id/points", s.CreateDeliveryPoint)
	v1.POST("/campaigns/:campaign_id/agreements", s.CreateAgreement)
	v1.GET("/campaigns/:campaign_id/users/:user_id/deliveries", s.GetUserDeliveries)

	v1.POST("/categories", s.CreateCategory)
	v1.POST("/categories/:category_id/goods", s.CreateGood)

	v1.POST("/points/:point_id/operators", s.AssignOperator)
	v1.POST("/points/:point_id/users", s.AssignUser)
	v1.POST("/points/:point_id/stocks", s.CreateStock)
	v1.GET("/points/:point_id/balance", s.GetPointStockBalance)

	v1.POST("/stocks/:stock_id/identifiers", s.AddStockIdentifier)

	v1.POST("/deliveries", s.CreateDelivery)
	v1.PATCH("/deliveries/:id", s.UpdateDelivery)
	v1.DELETE("/deliveries/:id", s.DeleteDelivery)
	v1.POST("/deliveries/:id/deliver", s.MarkDelivered)
	v1.POST("/deliveries/:id/confirm", s.ConfirmDelivery)
	v1.POST("/deliveries/:id/return", s.ReturnDelivery)
	v1.POST("/deliveries/:id/disable", s.DisableDelivery)
	v1.GET("/deliveries/:id/receipt", s.GetDeliveryReceipt)
}

// CreateCampaign handles POST /api/v1/campaigns.
func (s *Server) CreateCampaign(ctx echo.Context) error {
	var req CreateCampaignRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	campaignID := kernel.NewUUID()
	cmd, err := commands.NewCreateCampaignCommand(
		campaignID, actorID, req.Name, req.Slug, req.DateStart, req.DateEnd)
	if err != nil {
		return badRequest(ctx, "Invalid campaign data: "+err.Error())
	}

	if req.RequireAgreement != nil || req.OperatorCanCreate != nil || req.NewDeliveryIfDisabled != nil {
		cmd = cmd.WithFlags(
			flagOrDefault(req.RequireAgreement, true),
			flagOrDefault(req.OperatorCanCreate, true),
			flagOrDefault(req.NewDeliveryIfDisabled, true),
		)
	}
	cmd = cmd.WithNotes(req.NoteOperators, req.NoteUsers)

	if err = s.createCampaignHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: campaignID.String()})
}

// CreateDeliveryPoint handles POST /api/v1/campaigns/:campaign_id/points.
func (s *Server) CreateDeliveryPoint(ctx echo.Context) error {
	campaignID, err := kernel.UUIDFromString(ctx.Param("campaign_id"))
	if err != nil {
		return badRequest(ctx, "Invalid campaign id")
	}

	var req CreateDeliveryPointRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	pointID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryPointCommand(pointID, campaignID, actorID, req.Name, req.Location)
	if err != nil {
		return badRequest(ctx, "Invalid point data: "+err.Error())
	}

	if err = s.createPointHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: pointID.String()})
}

// CreateAgreement handles POST /api/v1/campaigns/:campaign_id/agreements.
func (s *Server) CreateAgreement(ctx echo.Context) error {
	campaignID, err := kernel.UUIDFromString(ctx.Param("campaign_id"))
	if err != nil {
		return badRequest(ctx, "Invalid campaign id")
	}

	var req CreateAgreementRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	agreementID := kernel.NewUUID()
	cmd, err := commands.NewCreateAgreementCommand(agreementID, campaignID, actorID, req.Name, req.Description)
	if err != nil {
		return badRequest(ctx, "Invalid agreement data: "+err.Error())
	}

	if err = s.createAgreementHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: agreementID.String()})
}

// CreateCategory handles POST /api/v1/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var req CreateCategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	categoryID := kernel.NewUUID()
	cmd, err := commands.NewCreateCategoryCommand(categoryID, actorID, req.Name, req.Description)
	if err != nil {
		return badRequest(ctx, "Invalid category data: "+err.Error())
	}

	if err = s.createCategoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: categoryID.String()})
}

// CreateGood handles POST /api/v1/categories/:category_id/goods.
func (s *Server) CreateGood(ctx echo.Context) error {
	categoryID, err := kernel.UUIDFromString(ctx.Param("category_id"))
	if err != nil {
		return badRequest(ctx, "Invalid category id")
	}

	var req CreateGoodRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	goodID := kernel.NewUUID()
	cmd, err := commands.NewCreateGoodCommand(goodID, categoryID, actorID, req.Name)
	if err != nil {
		return badRequest(ctx, "Invalid good data: "+err.Error())
	}

	if err = s.createGoodHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: goodID.String()})
}

// AssignOperator handles POST /api/v1/points/:point_id/operators.
func (s *Server) AssignOperator(ctx echo.Context) error {
	pointID, err := kernel.UUIDFromString(ctx.Param("point_id"))
	if err != nil {
		return badRequest(ctx, "Invalid point id")
	}

	var req AssignOperatorRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	operatorID, err := kernel.UUIDFromString(req.OperatorID)
	if err != nil {
		return badRequest(ctx, "Invalid operator id")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	assignmentID := kernel.NewUUID()
	cmd, err := commands.NewAssignOperatorCommand(assignmentID, pointID, operatorID, actorID, req.MultiTenant)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if err = s.assignOperatorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: assignmentID.String()})
}

// AssignUser handles POST /api/v1/points/:point_id/users.
func (s *Server) AssignUser(ctx echo.Context) error {
	pointID, err := kernel.UUIDFromString(ctx.Param("point_id"))
	if err != nil {
		return badRequest(ctx, "Invalid point id")
	}

	var req AssignUserRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	assignmentID := kernel.NewUUID()
	cmd, err := commands.NewAssignUserCommand(assignmentID, pointID, userID, actorID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if err = s.assignUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: assignmentID.String()})
}

// CreateStock handles POST /api/v1/points/:point_id/stocks.
func (s *Server) CreateStock(ctx echo.Context) error {
	pointID, err := kernel.UUIDFromString(ctx.Param("point_id"))
	if err != nil {
		return badRequest(ctx, "Invalid point id")
	}

	var req CreateStockRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	goodID, err := kernel.UUIDFromString(req.GoodID)
	if err != nil {
		return badRequest(ctx, "Invalid good id")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	stockID := kernel.NewUUID()
	cmd, err := commands.NewCreateStockCommand(stockID, pointID, goodID, actorID, req.MaxNumber)
	if err != nil {
		return badRequest(ctx, "Invalid stock data: "+err.Error())
	}

	if err = s.createStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: stockID.String()})
}

// AddStockIdentifier handles POST /api/v1/stocks/:stock_id/identifiers.
func (s *Server) AddStockIdentifier(ctx echo.Context) error {
	stockID, err := kernel.UUIDFromString(ctx.Param("stock_id"))
	if err != nil {
		return badRequest(ctx, "Invalid stock id")
	}

	var req AddStockIdentifierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	identifierID := kernel.NewUUID()
	cmd, err := commands.NewAddStockIdentifierCommand(identifierID, stockID, actorID, req.Code)
	if err != nil {
		return badRequest(ctx, "Invalid identifier data: "+err.Error())
	}

	if err = s.addStockIdentifierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: identifierID.String()})
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pointID, err := kernel.UUIDFromString(req.PointID)
	if err != nil {
		return badRequest(ctx, "Invalid point id")
	}

	recipientID, err := kernel.UUIDFromString(req.RecipientID)
	if err != nil {
		return badRequest(ctx, "Invalid recipient id")
	}

	goodID, err := kernel.UUIDFromString(req.GoodID)
	if err != nil {
		return badRequest(ctx, "Invalid good id")
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, pointID, recipientID, goodID, req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if req.OperatorID != "" {
		operatorID, opErr := kernel.UUIDFromString(req.OperatorID)
		if opErr != nil {
			return badRequest(ctx, "Invalid operator id")
		}
		cmd = cmd.WithOperator(operatorID)
	}
	if req.StockIdentifierID != "" {
		identifierID, idErr := kernel.UUIDFromString(req.StockIdentifierID)
		if idErr != nil {
			return badRequest(ctx, "Invalid stock identifier id")
		}
		cmd = cmd.WithStockIdentifier(identifierID)
	}
	cmd = cmd.WithManualIdentifier(req.ManualIdentifier).WithNotes(req.Notes)

	if err = s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: deliveryID.String()})
}

// UpdateDelivery handles PATCH /api/v1/deliveries/:id.
func (s *Server) UpdateDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	var req UpdateDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewUpdateDeliveryCommand(deliveryID, actorID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if req.Quantity != nil {
		cmd = cmd.WithQuantity(*req.Quantity)
	}
	if req.StockIdentifierID != nil {
		identifierID, idErr := kernel.UUIDFromString(*req.StockIdentifierID)
		if idErr != nil {
			return badRequest(ctx, "Invalid stock identifier id")
		}
		cmd = cmd.WithStockIdentifier(identifierID)
	}
	if req.ManualIdentifier != nil {
		cmd = cmd.WithManualIdentifier(*req.ManualIdentifier)
	}
	if req.Notes != nil {
		cmd = cmd.WithNotes(*req.Notes)
	}

	if err = s.updateDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteDelivery handles DELETE /api/v1/deliveries/:id.
func (s *Server) DeleteDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	actorID, err := kernel.UUIDFromString(ctx.QueryParam("actor_id"))
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewDeleteDeliveryCommand(deliveryID, actorID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if err = s.deleteDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/deliveries/:id/deliver.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	return s.handleTransition(ctx, func(deliveryID, operatorID, pointID kernel.UUID) error {
		cmd, err := commands.NewMarkDeliveredCommand(deliveryID, operatorID, pointID)
		if err != nil {
			return err
		}
		return s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ReturnDelivery handles POST /api/v1/deliveries/:id/return.
func (s *Server) ReturnDelivery(ctx echo.Context) error {
	return s.handleTransition(ctx, func(deliveryID, operatorID, pointID kernel.UUID) error {
		cmd, err := commands.NewReturnDeliveryCommand(deliveryID, operatorID, pointID)
		if err != nil {
			return err
		}
		return s.returnDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// DisableDelivery handles POST /api/v1/deliveries/:id/disable.
func (s *Server) DisableDelivery(ctx echo.Context) error {
	return s.handleTransition(ctx, func(deliveryID, operatorID, pointID kernel.UUID) error {
		cmd, err := commands.NewDisableDeliveryCommand(deliveryID, operatorID, pointID)
		if err != nil {
			return err
		}
		return s.disableDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ConfirmDelivery handles POST /api/v1/deliveries/:id/confirm.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	var req ConfirmDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	recipientID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(deliveryID, recipientID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if err = s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUserDeliveries handles GET /api/v1/campaigns/:campaign_id/users/:user_id/deliveries.
func (s *Server) GetUserDeliveries(ctx echo.Context) error {
	campaignID, err := kernel.UUIDFromString(ctx.Param("campaign_id"))
	if err != nil {
		return badRequest(ctx, "Invalid campaign id")
	}

	userID, err := kernel.UUIDFromString(ctx.Param("user_id"))
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewGetUserDeliveriesQuery(campaignID, userID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	deliveries, err := s.getUserDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve deliveries")
	}

	response := make([]DeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		response[i] = DeliveryResponse{
			ID:           d.ID.String(),
			GoodName:     d.GoodName,
			PointName:    d.PointName,
			Quantity:     d.Quantity,
			Status:       d.Status,
			DeliveryDate: d.DeliveryDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPointStockBalance handles GET /api/v1/points/:point_id/balance.
func (s *Server) GetPointStockBalance(ctx echo.Context) error {
	pointID, err := kernel.UUIDFromString(ctx.Param("point_id"))
	if err != nil {
		return badRequest(ctx, "Invalid point id")
	}

	query, err := queries.NewGetPointStockBalanceQuery(pointID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	balances, err := s.getPointStockBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve stock balance")
	}

	response := make([]StockBalanceResponse, len(balances))
	for i, b := range balances {
		response[i] = StockBalanceResponse{
			StockID:   b.StockID.String(),
			GoodName:  b.GoodName,
			MaxNumber: b.MaxNumber,
			Booked:    b.Booked,
			Remaining: b.Remaining,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryReceipt handles GET /api/v1/deliveries/:id/receipt.
func (s *Server) GetDeliveryReceipt(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	query, err := queries.NewGetDeliveryReceiptQuery(deliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	receipt, err := s.getDeliveryReceiptHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, queries.ErrDeliveryNotFound) {
		return notFound(ctx, err.Error())
	}
	if errors.Is(err, queries.ErrReceiptNotAvailable) {
		return conflict(ctx, err.Error())
	}
	if err != nil {
		return internalError(ctx, "Failed to issue receipt")
	}

	return ctx.JSON(http.StatusOK, ReceiptResponse{Token: receipt.Token})
}

func (s *Server) handleTransition(ctx echo.Context, run func(deliveryID, operatorID, pointID kernel.UUID) error) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	operatorID, err := kernel.UUIDFromString(req.OperatorID)
	if err != nil {
		return badRequest(ctx, "Invalid operator id")
	}

	pointID, err := kernel.UUIDFromString(req.PointID)
	if err != nil {
		return badRequest(ctx, "Invalid point id")
	}

	if err = run(deliveryID, operatorID, pointID); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrCampaignNotFound),
		errors.Is(err, commands.ErrDeliveryPointNotFound),
		errors.Is(err, commands.ErrStockNotFound),
		errors.Is(err, commands.ErrDeliveryNotFound):
		return notFound(ctx, err.Error())
	case errors.Is(err, commands.ErrAgreementNameTaken),
		errors.Is(err, commands.ErrOperatorAlreadyAssigned),
		errors.Is(err, commands.ErrOperatorCannotCreate),
		errors.Is(err, commands.ErrDisabledDeliveryExists),
		errors.Is(err, commands.ErrDeliveryNotEditable),
		errors.Is(err, commands.ErrCannotMarkDelivered),
		errors.Is(err, commands.ErrCannotConfirmDelivery),
		errors.Is(err, commands.ErrNotDeliveryRecipient),
		errors.Is(err, commands.ErrCannotDeleteDelivery),
		errors.Is(err, delivery.ErrDuplicateDelivery),
		errors.Is(err, delivery.ErrStockExceeded),
		errors.Is(err, delivery.ErrInvalidStateTransition):
		return conflict(ctx, err.Error())
	case errors.Is(err, delivery.ErrZeroQuantity),
		errors.Is(err, delivery.ErrInvalidIdentifierQuantity),
		errors.Is(err, delivery.ErrMissingIdentifierSelection),
		errors.Is(err, delivery.ErrIdentifierMismatch):
		return badRequest(ctx, err.Error())
	default:
		return internalError(ctx, "Operation failed")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Code: http.StatusBadRequest, Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{Code: http.StatusNotFound, Message: message})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, ErrorResponse{Code: http.StatusConflict, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Code: http.StatusInternalServerError, Message: message})
}

func flagOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// Request and response bodies.

type CreateCampaignRequest struct {
	ActorID               string    `json:"actor_id"`
	Name                  string    `json:"name"`
	Slug                  string    `json:"slug"`
	DateStart             time.Time `json:"date_start"`
	DateEnd               time.Time `json:"date_end"`
	RequireAgreement      *bool     `json:"require_agreement,omitempty"`
	OperatorCanCreate     *bool     `json:"operator_can_create,omitempty"`
	NewDeliveryIfDisabled *bool     `json:"new_delivery_if_disabled,omitempty"`
	NoteOperators         string    `json:"note_operators,omitempty"`
	NoteUsers             string    `json:"note_users,omitempty"`
}

type CreateDeliveryPointRequest struct {
	ActorID  string `json:"actor_id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

type CreateAgreementRequest struct {
	ActorID     string `json:"actor_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateCategoryRequest struct {
	ActorID     string `json:"actor_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CreateGoodRequest struct {
	ActorID string `json:"actor_id"`
	Name    string `json:"name"`
}

type AssignOperatorRequest struct {
	ActorID     string `json:"actor_id"`
	OperatorID  string `json:"operator_id"`
	MultiTenant bool   `json:"multi_tenant,omitempty"`
}

type AssignUserRequest struct {
	ActorID string `json:"actor_id"`
	UserID  string `json:"user_id"`
}

type CreateStockRequest struct {
	ActorID   string `json:"actor_id"`
	GoodID    string `json:"good_id"`
	MaxNumber int    `json:"max_number"`
}

type AddStockIdentifierRequest struct {
	ActorID string `json:"actor_id"`
	Code    string `json:"code"`
}

type CreateDeliveryRequest struct {
	PointID           string `json:"point_id"`
	RecipientID       string `json:"recipient_id"`
	GoodID            string `json:"good_id"`
	Quantity          int    `json:"quantity"`
	OperatorID        string `json:"operator_id,omitempty"`
	StockIdentifierID string `json:"stock_identifier_id,omitempty"`
	ManualIdentifier  string `json:"manual_identifier,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

type UpdateDeliveryRequest struct {
	ActorID           string  `json:"actor_id"`
	Quantity          *int    `json:"quantity,omitempty"`
	StockIdentifierID *string `json:"stock_identifier_id,omitempty"`
	ManualIdentifier  *string `json:"manual_identifier,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

type TransitionRequest struct {
	OperatorID string `json:"operator_id"`
	PointID    string `json:"point_id"`
}

type ConfirmDeliveryRequest struct {
	UserID string `json:"user_id"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type DeliveryResponse struct {
	ID           string     `json:"id"`
	GoodName     string     `json:"good_name"`
	PointName    string     `json:"point_name,omitempty"`
	Quantity     int        `json:"quantity"`
	Status       string     `json:"status"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
}

type StockBalanceResponse struct {
	StockID   string `json:"stock_id"`
	GoodName  string `json:"good_name"`
	MaxNumber int    `json:"max_number"`
	Booked    int    `json:"booked"`
	Remaining *int   `json:"remaining,omitempty"`
}

type ReceiptResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
