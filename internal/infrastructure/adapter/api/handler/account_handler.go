package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/points-bot/internal/domain/error"
	"github.com/amirhossein-jamali/points-bot/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/points-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/points-bot/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/api/dto"
)

// AccountHandler serves read-only balance lookups
type AccountHandler struct {
	ledger usecase.LedgerStore
	logger coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(ledger usecase.LedgerStore, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		ledger: ledger,
		logger: logger,
	}
}

// ListAccounts handles the GET /accounts endpoint
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts := h.ledger.ListAccounts(c.Request.Context())

	resp := dto.AccountListResponse{
		Accounts: make([]dto.AccountResponse, 0, len(accounts)),
		Count:    len(accounts),
	}
	for _, account := range accounts {
		resp.Accounts = append(resp.Accounts, toAccountResponse(entity.AccountToBalanceView(account)))
	}

	c.JSON(http.StatusOK, resp)
}

// GetAccount handles the GET /accounts/:userId endpoint
func (h *AccountHandler) GetAccount(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID format",
		})
		return
	}

	account, err := h.ledger.GetAccount(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerr.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "User not found",
			})
			return
		}

		h.logger.Error("Error getting account", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, toAccountResponse(entity.AccountToBalanceView(account)))
}

func toAccountResponse(view entity.BalanceView) dto.AccountResponse {
	return dto.AccountResponse{
		UserID: strconv.FormatInt(view.DiscordID, 10),
		Points: view.Points,
		Exists: view.Exists,
	}
}
