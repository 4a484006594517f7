package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localmark/store-directory/internal/api/metrics"
	"github.com/localmark/store-directory/internal/core/ports"
)

// StoreHandler handles store listing CRUD and the admin store statistics.
type StoreHandler struct {
	service ports.StoreService
}

func NewStoreHandler(service ports.StoreService) *StoreHandler {
	return &StoreHandler{service: service}
}

// List handles GET /stores — the public directory of active stores.
//
// @Summary      List active stores
// @Tags         stores
// @Produce      json
// @Success      200  {object}  storesResponse
// @Router       /stores [get]
func (h *StoreHandler) List(c echo.Context) error {
	stores, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, storesResponse{Stores: stores})
}

// MyStores handles GET /stores/my-stores — the caller's own listings,
// inactive ones included.
//
// @Summary      List the caller's stores
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  storesResponse
// @Failure      403  {object}  errorResponse
// @Router       /stores/my-stores [get]
func (h *StoreHandler) MyStores(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	stores, err := h.service.ListByOwner(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, storesResponse{Stores: stores})
}

// Get handles GET /stores/:id — public, with ratings attached.
//
// @Summary      Get a store with its ratings
// @Tags         stores
// @Produce      json
// @Success      200  {object}  storeDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /stores/{id} [get]
func (h *StoreHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStoreDetailResponse(detail))
}

// Create handles POST /stores — store_owner or admin. The owner defaults
// to the caller; admins may assign another user via owner_id.
//
// @Summary      Create a store
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStoreRequest  true  "Store details"
// @Success      201   {object}  storeResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /stores [post]
func (h *StoreHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	store, err := h.service.Create(c.Request().Context(), actor, toCreateStoreInput(req))
	if err != nil {
		return err
	}

	metrics.StoresCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, storeResponse{Store: store, Message: "Store created successfully"})
}

// Update handles PUT /stores/:id — owner or admin; is_active is admin only.
//
// @Summary      Update a store
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  storeResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /stores/{id} [put]
func (h *StoreHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	store, err := h.service.Update(c.Request().Context(), actor, id, toUpdateStoreInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, storeResponse{Store: store, Message: "Store updated successfully"})
}

// Delete handles DELETE /stores/:id — owner or admin.
//
// @Summary      Delete a store
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /stores/{id} [delete]
func (h *StoreHandler) Delete(c echo.Context) error {
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
	return c.JSON(http.StatusOK, messageResponse{Message: "Store deleted successfully"})
}

// Stats handles GET /stores/stats — admin only.
//
// @Summary      Store statistics
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  storeStatsResponse
// @Failure      403  {object}  errorResponse
// @Router       /stores/stats [get]
func (h *StoreHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStoreStatsResponse(stats))
}
