package handlers

import (
	"errors"
	"strings"

	"aw-society/internal/core/domain"
	"aw-society/internal/core/services"
	"aw-society/internal/pkg/password"
	"aw-society/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService   *services.AuthService
	memberService *services.MemberService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, memberService *services.MemberService) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		memberService: memberService,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents member registration request body
type RegisterRequest struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Mobile            string  `json:"mobile"`
	Address           string  `json:"address"`
	Pincode           string  `json:"pincode"`
	Password          string  `json:"password"`
	PlanAmount        float64 `json:"plan_amount"`
	PlanDurationYears int     `json:"plan_duration_years"`
	AccountHolder     string  `json:"account_holder"`
	BankName          string  `json:"bank_name"`
	AccountNumber     string  `json:"account_number"`
	IFSCCode          string  `json:"ifsc_code"`
}

// Login handles member login
// @Summary Login member
// @Description Authenticate member and return an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	result, err := h.authService.Login(c.Context(), strings.TrimSpace(strings.ToLower(req.Email)), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return response.InternalServerError(c, "Failed to login")
	}

	return response.Success(c, "Login successful", fiber.Map{
		"access_token": result.AccessToken,
		"member":       result.Member,
	})
}

// Register handles member registration
// @Summary Register new member
// @Description Register a society member with a generated registration number
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Mobile == "" {
		return response.BadRequest(c, "Mobile number is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}
	if !password.Validate(req.Password) {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}

	input := &services.RegisterInput{
		Name:              strings.TrimSpace(req.Name),
		Email:             strings.TrimSpace(strings.ToLower(req.Email)),
		Mobile:            strings.TrimSpace(req.Mobile),
		Address:           strings.TrimSpace(req.Address),
		Pincode:           strings.TrimSpace(req.Pincode),
		Password:          req.Password,
		PlanAmount:        req.PlanAmount,
		PlanDurationYears: req.PlanDurationYears,
		AccountHolder:     strings.TrimSpace(req.AccountHolder),
		BankName:          strings.TrimSpace(req.BankName),
		AccountNumber:     strings.TrimSpace(req.AccountNumber),
		IFSCCode:          strings.TrimSpace(req.IFSCCode),
	}

	member, err := h.memberService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			return response.Conflict(c, "Email already registered")
		case errors.Is(err, domain.ErrMobileTaken):
			return response.Conflict(c, "Mobile number already registered")
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to register member")
		}
	}

	return response.Created(c, "Member registered successfully", fiber.Map{
		"member": member.ToResponse(),
	})
}
