package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dream-journal/cmd/api/auth"
	"dream-journal/cmd/api/dto"
	"dream-journal/services"
)

// RegisterHandler godoc
// @Summary      Register an account
// @Tags         auth
// @Param        body  body  dto.RegisterRequestDTO  true  "Credentials"
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.AuthResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /auth/register [post]
func RegisterHandler(svc *services.UserService, jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegisterRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Message: "Invalid request body"})
			return
		}

		u, err := svc.Register(c.Request.Context(), req.Email, req.Password, req.Username)
		if err != nil {
			respondError(c, err)
			return
		}

		token, err := jwtManager.Sign(u.ID.Hex())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.AuthResponseDTO{Token: token, User: *u})
	}
}

// LoginHandler godoc
// @Summary      Log in
// @Tags         auth
// @Param        body  body  dto.LoginRequestDTO  true  "Credentials"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.AuthResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /auth/login [post]
func LoginHandler(svc *services.UserService, jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Message: "Invalid request body"})
			return
		}

		u, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		token, err := jwtManager.Sign(u.ID.Hex())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.AuthResponseDTO{Token: token, User: *u})
	}
}

// MeHandler godoc
// @Summary      Current user profile
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /users/me [get]
func MeHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		u, err := svc.Get(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// UploadAvatarHandler godoc
// @Summary      Upload an avatar image
// @Tags         users
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Param        avatar  formData  file  true  "Image file"
// @Produce      json
// @Success      200  {object}  dto.AvatarResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /upload-avatar [post]
func UploadAvatarHandler(svc *services.UserService, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}

		file, err := c.FormFile("avatar")
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Message: "avatar file is required"})
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		switch ext {
		case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		default:
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Message: "unsupported image type"})
			return
		}

		name := fmt.Sprintf("%s-%s%s", userID.Hex(), uuid.NewString(), ext)
		if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
			respondError(c, err)
			return
		}

		avatarURL := "/uploads/" + name
		if err := svc.SetAvatar(c.Request.Context(), userID, avatarURL); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.AvatarResponseDTO{Avatar: avatarURL})
	}
}
