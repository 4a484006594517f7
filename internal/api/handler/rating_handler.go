package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/localmark/store-directory/internal/api/metrics"
	"github.com/localmark/store-directory/internal/core/ports"
)

// RatingHandler handles rating submission, moderation, and listings.
type RatingHandler struct {
	service ports.RatingService
}

func NewRatingHandler(service ports.RatingService) *RatingHandler {
	return &RatingHandler{service: service}
}

// Submit handles POST /ratings — creates or replaces the caller's rating
// for a store.
//
// @Summary      Submit a rating
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitRatingRequest  true  "Rating"
// @Success      201   {object}  ratingResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /ratings [post]
func (h *RatingHandler) Submit(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req submitRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rating, err := h.service.Submit(c.Request().Context(), actor, ports.SubmitRatingInput{
		StoreID: req.StoreID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}

	metrics.RatingsSubmittedTotal.WithLabelValues(strconv.Itoa(rating.Rating)).Inc()
	return c.JSON(http.StatusCreated, ratingResponse{Rating: rating, Message: "Rating submitted successfully"})
}

// Get handles GET /ratings/:id — any authenticated caller.
//
// @Summary      Get a rating by id
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ratingDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /ratings/{id} [get]
func (h *RatingHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ratingDetailResponse{Rating: toRatingDetail(detail)})
}

// Update handles PUT /ratings/:id — the author or an admin.
//
// @Summary      Update a rating
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ratingDetailResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /ratings/{id} [put]
func (h *RatingHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	detail, err := h.service.Update(c.Request().Context(), actor, id, ports.UpdateRatingInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ratingDetailResponse{
		Rating:  toRatingDetail(detail),
		Message: "Rating updated successfully",
	})
}

// Delete handles DELETE /ratings/:id — the author or an admin.
//
// @Summary      Delete a rating
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /ratings/{id} [delete]
func (h *RatingHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Rating deleted successfully"})
}

// ListByStore handles GET /ratings/store/:storeId — public.
//
// @Summary      List a store's ratings with statistics
// @Tags         ratings
// @Produce      json
// @Success      200  {object}  storeRatingsResponse
// @Failure      404  {object}  errorResponse
// @Router       /ratings/store/{storeId} [get]
func (h *RatingHandler) ListByStore(c echo.Context) error {
	storeID, err := pathID(c, "storeId")
	if err != nil {
		return err
	}

	ratings, stats, err := h.service.ListByStore(c.Request().Context(), storeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStoreRatingsResponse(ratings, stats))
}

// ListByUser handles GET /ratings/user/:userId — self or admin.
//
// @Summary      List a user's ratings
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userRatingsResponse
// @Failure      403  {object}  errorResponse
// @Router       /ratings/user/{userId} [get]
func (h *RatingHandler) ListByUser(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	ratings, err := h.service.ListByUser(c.Request().Context(), actor, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserRatingsResponse(ratings))
}
