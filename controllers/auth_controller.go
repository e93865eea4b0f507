package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/resp"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/services"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/utils"
)

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Password2 string `json:"password2" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type OTPVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

type PasswordChangeRequest struct {
	Email    string `json:"email" binding:"required,email"`
	OTP      string `json:"otp" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /user/register/
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, pair, err := a.Svc.Register(req.FirstName, req.LastName, req.Email, req.Password, req.Password2)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"user": user, "refresh": pair.Refresh, "access": pair.Access})
}

// POST /user/token/
func (a *AuthController) Token(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, pair, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"user":    user,
		"access":  pair.Access,
		"refresh": pair.Refresh,
	})
}

// POST /user/token/refresh/
func (a *AuthController) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pair, err := a.Svc.Refresh(req.Refresh)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, pair)
}

// POST /user/password-reset/
func (a *AuthController) PasswordReset(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := a.Svc.RequestPasswordReset(req.Email); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"detail": "OTP sent to your email"})
}

// POST /user/otp-verification/
func (a *AuthController) VerifyOTP(c *gin.Context) {
	var req OTPVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := a.Svc.VerifyOTP(req.Email, req.OTP); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"detail": "OTP verified"})
}

// POST /user/password-change/
func (a *AuthController) PasswordChange(c *gin.Context) {
	var req PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := a.Svc.ChangePassword(req.Email, req.OTP, req.Password); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"detail": "password changed"})
}

// GET /user/profile/
func (a *AuthController) Profile(c *gin.Context) {
	out, err := a.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// PUT /user/profile/
func (a *AuthController) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := a.Svc.UpdateProfile(utils.CurrentUserID(c), req.FirstName, req.LastName, req.Phone)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
