package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
	md "github.com/Astemirdum/library-lending/pkg/middleware"
	"github.com/Astemirdum/library-lending/pkg/validate"
)

type Handler struct {
	lendingSvc LendingService
	log        *zap.Logger
}

func New(lendingSvc LendingService, log *zap.Logger) *Handler {
	return &Handler{
		lendingSvc: lendingSvc,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/branches", h.AddBranch)
	api.GET("/branches", h.ListBranches)
	api.POST("/branches/:branchId/books", h.AddBook)
	api.GET("/branches/:branchId/books/available", h.AvailableBooks)

	api.POST("/users", h.AddUser)
	api.GET("/users", h.ListUsers)
	api.GET("/users/:userId/debt", h.UserDebt)
	api.GET("/users/:userId/loans", h.UserLoans)
	api.GET("/debts", h.AllDebts)

	api.POST("/loans", h.LendBook)
	api.POST("/loans/return", h.ReturnBook)
	api.GET("/loans", h.AllLoans)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) AddBranch(c echo.Context) error {
	var req model.CreateBranchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	branch := h.lendingSvc.AddBranch(c.Request().Context(), req)
	return c.JSON(http.StatusCreated, branch)
}

func (h *Handler) AddBook(c echo.Context) error {
	branchID := c.Param("branchId")
	if branchID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty branchId")
	}
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.lendingSvc.AddBook(c.Request().Context(), branchID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) AddUser(c echo.Context) error {
	var req model.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	user := h.lendingSvc.AddUser(c.Request().Context(), req)
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) LendBook(c echo.Context) error {
	var req model.LendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var at time.Time
	if req.LoanDate != "" {
		d, err := model.ParseDate(req.LoanDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		at = d.Time
	}
	loan, err := h.lendingSvc.LendBook(c.Request().Context(), req.UserID, req.BookID, req.BranchID, at)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	var req model.ReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d, err := model.ParseDate(req.ReturnDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	loan, err := h.lendingSvc.ReturnBook(c.Request().Context(), req.UserID, req.BookID, req.BranchID, d.Time)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) ListBranches(c echo.Context) error {
	return c.JSON(http.StatusOK, h.lendingSvc.ListBranches(c.Request().Context()))
}

func (h *Handler) ListUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.lendingSvc.ListUsers(c.Request().Context()))
}

func (h *Handler) AvailableBooks(c echo.Context) error {
	books, err := h.lendingSvc.AvailableBooks(c.Request().Context(), c.Param("branchId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) UserDebt(c echo.Context) error {
	debt, err := h.lendingSvc.UserDebt(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, debt)
}

func (h *Handler) AllDebts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.lendingSvc.AllDebts(c.Request().Context()))
}

func (h *Handler) UserLoans(c echo.Context) error {
	loans, err := h.lendingSvc.UserLoans(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) AllLoans(c echo.Context) error {
	return c.JSON(http.StatusOK, h.lendingSvc.AllLoans(c.Request().Context()))
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidState):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidDate):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
