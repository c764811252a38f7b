package http

import (
	"errors"
	"net/http"

	"github.com/dkarklins/fitauth/internal/common"
	"github.com/dkarklins/fitauth/internal/server/models"
	"github.com/dkarklins/fitauth/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type registerRequest struct {
	UserID   string  `json:"user_id"`
	Image    *string `json:"image"`
	FullName *string `json:"fullname"`
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Contact  *string `json:"contact"`
	Gender   *string `json:"gender"`
}

// registerUser handles POST /api/users/register.
func (s *Server) registerUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	// The id is externally supplied; generate one when omitted.
	if req.UserID == "" {
		req.UserID = uuid.NewString()
	}

	userID, err := s.service.Register(c.Request.Context(), services.RegisterParams{
		UserID:   req.UserID,
		Image:    req.Image,
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Contact:  req.Contact,
		Gender:   req.Gender,
	})
	if err != nil {
		s.logger.Error(c.Request.Context(), "registration failed", "error", err)
		RespondWithError(c, http.StatusInternalServerError, "Error registering user.")
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "user_id", userID)
	RespondWithSuccess(c, http.StatusCreated, "User created.", gin.H{"userId": userID})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// login handles POST /api/auth/login.
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	pair, err := s.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			RespondWithError(c, http.StatusNotFound, "User not found.")
		case errors.Is(err, common.ErrInvalidCredentials):
			RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		default:
			s.logger.Error(c.Request.Context(), "login failed", "error", err)
			RespondWithError(c, http.StatusInternalServerError, "Error logging in.")
		}
		return
	}

	RespondWithSuccess(c, http.StatusOK, "Login successful.", gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

// getProfile handles GET /api/users/profile.
func (s *Server) getProfile(c *gin.Context) {
	userID := authenticatedUserID(c)

	profile, err := s.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			RespondWithError(c, http.StatusNotFound, "User profile not found.")
			return
		}
		s.logger.Error(c.Request.Context(), "profile lookup failed", "error", err)
		RespondWithError(c, http.StatusInternalServerError, "Error fetching profile.")
		return
	}

	RespondWithSuccess(c, http.StatusOK, "Profile fetched.", profile)
}

type updateProfileRequest struct {
	Image    *string `json:"image"`
	FullName *string `json:"fullname"`
	Email    *string `json:"email"`
	Contact  *string `json:"contact"`
	Gender   *string `json:"gender"`
}

// updateProfile handles PUT /api/users/update. All five columns are always
// written; omitted fields become NULL.
func (s *Server) updateProfile(c *gin.Context) {
	userID := authenticatedUserID(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	err := s.service.UpdateProfile(c.Request.Context(), userID, models.ProfileUpdate{
		Image:    req.Image,
		FullName: req.FullName,
		Email:    req.Email,
		Contact:  req.Contact,
		Gender:   req.Gender,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNoFieldsToUpdate):
			RespondWithError(c, http.StatusBadRequest, "No fields to update.")
		case errors.Is(err, common.ErrNotFound):
			RespondWithError(c, http.StatusNotFound, "User profile not found.")
		default:
			s.logger.Error(c.Request.Context(), "profile update failed", "error", err)
			RespondWithError(c, http.StatusInternalServerError, "Error updating profile.")
		}
		return
	}

	RespondWithSuccess(c, http.StatusOK, "Profile updated.", nil)
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// refreshAccessToken handles PUT /api/auth. An invalid or expired refresh
// token is a forbidden action, not an unauthenticated one.
func (s *Server) refreshAccessToken(c *gin.Context) {
	var req refreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		RespondWithError(c, http.StatusBadRequest, "Refresh token must not be empty.")
		return
	}

	access, err := s.service.RefreshAccessToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) {
			RespondWithError(c, http.StatusForbidden, "Invalid refresh token.")
			return
		}
		s.logger.Error(c.Request.Context(), "token refresh failed", "error", err)
		RespondWithError(c, http.StatusInternalServerError, "Error refreshing access token.")
		return
	}

	RespondWithSuccess(c, http.StatusOK, "Access token refreshed.", gin.H{"accessToken": access})
}

// logout handles DELETE /api/auth/logout.
func (s *Server) logout(c *gin.Context) {
	var req refreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		RespondWithError(c, http.StatusBadRequest, "Refresh token must not be empty.")
		return
	}

	err := s.service.Logout(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidToken):
			RespondWithError(c, http.StatusForbidden, "Invalid refresh token.")
		case errors.Is(err, common.ErrNotFound):
			RespondWithError(c, http.StatusNotFound, "Refresh token not found.")
		default:
			s.logger.Error(c.Request.Context(), "logout failed", "error", err)
			RespondWithError(c, http.StatusInternalServerError, "Error deleting refresh token.")
		}
		return
	}

	RespondWithSuccess(c, http.StatusOK, "Refresh token deleted.", nil)
}

// listMetrics handles GET /api/users/metrics.
func (s *Server) listMetrics(c *gin.Context) {
	userID := authenticatedUserID(c)

	result, err := s.service.ListMetrics(c.Request.Context(), userID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "metrics lookup failed", "error", err)
		RespondWithError(c, http.StatusInternalServerError, "Error fetching metrics.")
		return
	}

	RespondWithSuccess(c, http.StatusOK, "Metrics fetched.", result)
}

// deleteAccount handles DELETE /api/users/delete.
func (s *Server) deleteAccount(c *gin.Context) {
	userID := authenticatedUserID(c)

	var req refreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" || userID == "" {
		RespondWithError(c, http.StatusBadRequest, "User ID or refresh token missing from request.")
		return
	}

	err := s.service.DeleteAccount(c.Request.Context(), userID, req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			RespondWithError(c, http.StatusNotFound, "Refresh token or account not found.")
			return
		}
		s.logger.Error(c.Request.Context(), "account deletion failed", "error", err)
		RespondWithError(c, http.StatusInternalServerError, "Error deleting account.")
		return
	}

	s.logger.Info(c.Request.Context(), "account deleted", "user_id", userID)
	RespondWithSuccess(c, http.StatusOK, "Account and related data deleted.", nil)
}
