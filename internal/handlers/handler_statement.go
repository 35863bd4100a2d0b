package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fin_api/internal/core/domain"
	portssvc "github.com/SscSPs/fin_api/internal/core/ports/services"
	"github.com/SscSPs/fin_api/internal/dto"
	"github.com/SscSPs/fin_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statementHandler handles deposits, withdrawals, transfers and lookups.
type statementHandler struct {
	statementService portssvc.StatementSvcFacade
}

func newStatementHandler(ss portssvc.StatementSvcFacade) *statementHandler {
	return &statementHandler{statementService: ss}
}

// registerStatementRoutes registers all statement-related routes.
func registerStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvcFacade) {
	h := newStatementHandler(statementService)

	statements := rg.Group("/statements")
	{
		statements.POST("/deposit", h.createStatement(domain.Deposit))
		statements.POST("/withdraw", h.createStatement(domain.Withdraw))
		statements.GET("/balance", h.getBalance)
		statements.GET("/:statementID", h.getStatement)
		statements.POST("/transfers/:toUserID", h.transfer)
	}
}

// createStatement godoc
// @Summary Deposit or withdraw
// @Description Records a deposit or a withdrawal for the caller. Withdrawals fail with 400 when funds are insufficient.
// @Tags statements
// @Accept json
// @Produce json
// @Param statement body dto.CreateStatementRequest true "Amount and description"
// @Success 201 {object} dto.StatementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /statements/deposit [post]
// @Router /statements/withdraw [post]
func (h *statementHandler) createStatement(opType domain.OperationType) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req dto.CreateStatementRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
			return
		}
		req.Type = opType

		stmt, err := h.statementService.CreateStatement(c.Request.Context(), userID, req)
		if err != nil {
			respondWithError(c, err, "Failed to record statement")
			return
		}

		c.JSON(http.StatusCreated, dto.ToStatementResponse(stmt))
	}
}

// getBalance godoc
// @Summary Get balance
// @Description Returns the caller's full statement history and the balance derived from it.
// @Tags statements
// @Produce json
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /statements/balance [get]
func (h *statementHandler) getBalance(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	balance, err := h.statementService.ComputeBalance(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceResponse(balance))
}

// getStatement godoc
// @Summary Get statement
// @Description Returns one of the caller's statements. Statements of other users are reported as not found.
// @Tags statements
// @Produce json
// @Param statementID path string true "Statement ID"
// @Success 200 {object} dto.StatementResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /statements/{statementID} [get]
func (h *statementHandler) getStatement(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stmt, err := h.statementService.GetStatementOperation(c.Request.Context(), userID, c.Param("statementID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(stmt))
}

// transfer godoc
// @Summary Transfer funds
// @Description Moves funds from the caller to another user. Both statements are written or neither is.
// @Tags statements
// @Accept json
// @Param toUserID path string true "Recipient user ID"
// @Param transfer body dto.TransferRequest true "Amount and description"
// @Success 201
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /statements/transfers/{toUserID} [post]
func (h *statementHandler) transfer(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	req.ToUserID = c.Param("toUserID")

	if err := h.statementService.Transfer(c.Request.Context(), userID, req); err != nil {
		respondWithError(c, err, "Failed to transfer")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transfer completed", slog.String("to_user_id", req.ToUserID))
	c.Status(http.StatusCreated)
}
