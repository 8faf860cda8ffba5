package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"dream-journal/cmd/api/dto"
	"dream-journal/services"
)

// GenerateSingleInsightHandler godoc
// @Summary      Generate an insight for one dream
// @Description  Builds a prompt from the caller's dream and stores the AI interpretation
// @Tags         insights
// @Security     BearerAuth
// @Param        id   path   string  true  "Dream ObjectID"
// @Produce      json
// @Success      201  {object}  dto.SingleInsightResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /insights/single/{id} [post]
func GenerateSingleInsightHandler(svc *services.InsightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		dreamID, ok := parseObjectID(c, c.Param("id"), "dream")
		if !ok {
			return
		}

		insight, err := svc.GenerateSingle(c.Request.Context(), userID, dreamID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, dto.SingleInsightResponseDTO{
			AIResult: insight.Summary,
			MoonSign: insight.MoonSign,
			Insight:  *insight,
		})
	}
}

// GenerateUserPatternInsightHandler godoc
// @Summary      Generate an insight across the caller's dreams
// @Description  Ids the caller does not own are dropped silently; 404 when none remain
// @Tags         insights
// @Security     BearerAuth
// @Param        body  body  dto.UserPatternRequestDTO  true  "Dream ids"
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.InsightResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /insights/user-pattern [post]
func GenerateUserPatternInsightHandler(svc *services.InsightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}

		var req dto.UserPatternRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Message: "Invalid request body"})
			return
		}
		dreamIDs, ok := parseObjectIDs(c, req.DreamIDs, "dream")
		if !ok {
			return
		}

		insight, err := svc.GenerateUserPattern(c.Request.Context(), userID, dreamIDs)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, dto.InsightResponseDTO{AIResult: insight.Summary, Insight: *insight})
	}
}

// GenerateCommunityInsightHandler godoc
// @Summary      Generate a community-wide insight
// @Description  Aggregates the given dreams regardless of owner, or every dream when no ids are sent
// @Tags         insights
// @Security     BearerAuth
// @Param        body  body  dto.CommunityRequestDTO  false  "Optional dream ids"
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.InsightResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /insights/community [post]
func GenerateCommunityInsightHandler(svc *services.InsightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}

		// The body is optional and may arrive with unknown length (chunked
		// transfer), so an empty body is detected by the bind itself rather
		// than by Content-Length.
		var req dto.CommunityRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Message: "Invalid request body"})
			return
		}
		dreamIDs, ok := parseObjectIDs(c, req.DreamIDs, "dream")
		if !ok {
			return
		}

		insight, err := svc.GenerateCommunity(c.Request.Context(), userID, dreamIDs)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, dto.InsightResponseDTO{AIResult: insight.Summary, Insight: *insight})
	}
}

// SaveInsightHandler godoc
// @Summary      Save a caller-supplied insight
// @Description  All referenced dreams must belong to the caller; any mismatch rejects the whole request
// @Tags         insights
// @Security     BearerAuth
// @Param        body  body  dto.SaveInsightRequestDTO  true  "Dream ids, summary, optional scope"
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.SavedInsightResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /insights/save [post]
func SaveInsightHandler(svc *services.InsightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}

		var req dto.SaveInsightRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Message: "Invalid request body"})
			return
		}
		dreamIDs, ok := parseObjectIDs(c, req.DreamIDs, "dream")
		if !ok {
			return
		}

		insight, err := svc.SaveManual(c.Request.Context(), userID, dreamIDs, req.Summary, req.Scope)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, dto.SavedInsightResponseDTO{
			Message: "Insight saved successfully",
			Insight: *insight,
		})
	}
}

// GetDreamInsightsHandler godoc
// @Summary      List insights for one of the caller's dreams
// @Description  Newest first by creation time
// @Tags         insights
// @Security     BearerAuth
// @Param        dreamId  path  string  true  "Dream ObjectID"
// @Produce      json
// @Success      200  {object}  dto.InsightListResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /insights/dream/{dreamId} [get]
func GetDreamInsightsHandler(svc *services.InsightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		dreamID, ok := parseObjectID(c, c.Param("dreamId"), "dream")
		if !ok {
			return
		}

		insights, err := svc.ListForDream(c.Request.Context(), userID, dreamID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.InsightListResponseDTO{Insights: insights})
	}
}

// DeleteInsightHandler godoc
// @Summary      Delete an insight
// @Tags         insights
// @Security     BearerAuth
// @Param        id  path  string  true  "Insight ObjectID"
// @Produce      json
// @Success      200  {object}  dto.DeletedInsightResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /insights/{id} [delete]
func DeleteInsightHandler(svc *services.InsightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		insightID, ok := parseObjectID(c, c.Param("id"), "insight")
		if !ok {
			return
		}

		if err := svc.Delete(c.Request.Context(), userID, insightID); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.DeletedInsightResponseDTO{
			Message:   "Insight deleted successfully",
			InsightID: insightID.Hex(),
		})
	}
}
