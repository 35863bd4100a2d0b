package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fin_api/internal/core/ports/services"
	"github.com/SscSPs/fin_api/internal/dto"
	"github.com/SscSPs/fin_api/internal/middleware"
	"github.com/SscSPs/fin_api/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles registration and login.
type authHandler struct {
	authService portssvc.AuthSvcFacade
	userService portssvc.UserSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade, us portssvc.UserSvcFacade) *authHandler {
	return &authHandler{authService: as, userService: us}
}

// registerAuthRoutes sets up the public routes. Login is rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) error {
	h := newAuthHandler(services.Auth, services.User)

	ipLimiter, err := middleware.NewIPRateLimiter(cfg.LoginRateLimit)
	if err != nil {
		return err
	}

	public := r.Group("/api/v1")
	{
		public.POST("/users", h.register)
		public.POST("/auth/login", middleware.RateLimit(ipLimiter), h.login)
	}
	return nil
}

// login godoc
// @Summary User login
// @Description Authenticates a user by email and password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	session, err := h.authService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(session))
}

// register godoc
// @Summary Register new user
// @Description Creates a new user account.
// @Tags users
// @Accept json
// @Produce json
// @Param register body dto.CreateUserRequest true "User Registration Info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /users [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	newUser, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to register user")
		return
	}

	logger.Info("User registered", slog.String("user_id", newUser.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(newUser))
}
