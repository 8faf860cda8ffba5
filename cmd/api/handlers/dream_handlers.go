package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dream-journal/cmd/api/dto"
	"dream-journal/models"
	"dream-journal/services"
)

func dreamFromRequest(c *gin.Context) (*models.Dream, bool) {
	var req dto.DreamRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Message: "Invalid data provided"})
		return nil, false
	}
	date, ok := parseDate(req.Date)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Message: "Invalid date"})
		return nil, false
	}

	d := &models.Dream{
		Date:       date,
		Summary:    req.Summary,
		Categories: req.Categories,
		Tags:       req.Tags,
		Location:   req.Location,
		MoonSign:   req.MoonSign,
		IsPublic:   req.IsPublic,
	}
	if d.Categories == nil {
		d.Categories = []string{}
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	return d, true
}

// CreateDreamHandler godoc
// @Summary      Create a dream
// @Tags         dreams
// @Security     BearerAuth
// @Param        body  body  dto.DreamRequestDTO  true  "Dream fields"
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Dream
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /dreams [post]
func CreateDreamHandler(svc *services.DreamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		d, ok := dreamFromRequest(c)
		if !ok {
			return
		}
		d.UserID = userID

		created, err := svc.Create(c.Request.Context(), d)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ListDreamsHandler godoc
// @Summary      List the caller's dreams
// @Tags         dreams
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  models.Dream
// @Router       /dreams [get]
func ListDreamsHandler(svc *services.DreamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		dreams, err := svc.ListOwn(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		if dreams == nil {
			dreams = []models.Dream{}
		}
		c.JSON(http.StatusOK, dreams)
	}
}

// GetDreamHandler godoc
// @Summary      Get one of the caller's dreams
// @Tags         dreams
// @Security     BearerAuth
// @Param        id  path  string  true  "Dream ObjectID"
// @Produce      json
// @Success      200  {object}  models.Dream
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /dreams/{id} [get]
func GetDreamHandler(svc *services.DreamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		dreamID, ok := parseObjectID(c, c.Param("id"), "dream")
		if !ok {
			return
		}
		d, err := svc.GetOwn(c.Request.Context(), userID, dreamID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// UpdateDreamHandler godoc
// @Summary      Update one of the caller's dreams
// @Tags         dreams
// @Security     BearerAuth
// @Param        id    path  string               true  "Dream ObjectID"
// @Param        body  body  dto.DreamRequestDTO  true  "Dream fields"
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Dream
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /dreams/{id} [patch]
func UpdateDreamHandler(svc *services.DreamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		dreamID, ok := parseObjectID(c, c.Param("id"), "dream")
		if !ok {
			return
		}
		d, ok := dreamFromRequest(c)
		if !ok {
			return
		}

		updated, err := svc.Update(c.Request.Context(), userID, dreamID, d)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteDreamHandler godoc
// @Summary      Delete one of the caller's dreams
// @Tags         dreams
// @Security     BearerAuth
// @Param        id  path  string  true  "Dream ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /dreams/{id} [delete]
func DeleteDreamHandler(svc *services.DreamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		dreamID, ok := parseObjectID(c, c.Param("id"), "dream")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), userID, dreamID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Dream deleted"})
	}
}

// PublicDreamsHandler godoc
// @Summary      Public dream feed
// @Description  Public dreams newest-first with denormalized author data; degrades to an anonymous projection when user resolution fails
// @Tags         dreams
// @Produce      json
// @Success      200  {array}  services.FeedDream
// @Router       /dreams/public [get]
func PublicDreamsHandler(svc *services.DreamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		feed, err := svc.PublicFeed(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, feed)
	}
}

// ToggleLikeHandler godoc
// @Summary      Toggle a like on a dream
// @Description  Adds the caller to the like set, or removes them when already present
// @Tags         dreams
// @Security     BearerAuth
// @Param        id  path  string  true  "Dream ObjectID"
// @Produce      json
// @Success      200  {object}  models.Dream
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /dreams/{id}/like [post]
func ToggleLikeHandler(svc *services.DreamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		dreamID, ok := parseObjectID(c, c.Param("id"), "dream")
		if !ok {
			return
		}
		d, err := svc.ToggleLike(c.Request.Context(), userID, dreamID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// AddCommentHandler godoc
// @Summary      Comment on a dream
// @Tags         dreams
// @Security     BearerAuth
// @Param        id    path  string                 true  "Dream ObjectID"
// @Param        body  body  dto.CommentRequestDTO  true  "Comment text"
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Dream
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /dreams/{id}/comment [post]
func AddCommentHandler(svc *services.DreamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		dreamID, ok := parseObjectID(c, c.Param("id"), "dream")
		if !ok {
			return
		}

		var req dto.CommentRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Message: "Comment text is required"})
			return
		}

		d, err := svc.AddComment(c.Request.Context(), userID, dreamID, req.Text)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, d)
	}
}
