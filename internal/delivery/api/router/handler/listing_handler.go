package handler

import (
	"log/slog"
	"net/http"

	"agrox/internal/delivery/api/response"
	"agrox/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC   usecase.ListingUsecase
	BookmarkUC  usecase.BookmarkUsecase
	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// ListingHandler serves the marketplace and the seller dashboard
type ListingHandler struct {
	listingUC   usecase.ListingUsecase
	bookmarkUC  usecase.BookmarkUsecase
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC:   params.ListingUC,
		bookmarkUC:  params.BookmarkUC,
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// BookmarkResponse reports the bookmark state after a toggle
type BookmarkResponse struct {
	ListingID  string `json:"listingId"`
	Bookmarked bool   `json:"bookmarked"`
}

// Browse lists active listings matching the query filters
func (h *ListingHandler) Browse(c echo.Context) error {
	var filter usecase.BrowseFilter
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "INVALID_FILTER", "Invalid browse filter")
	}

	listings, err := h.listingUC.Browse(c.Request().Context(), &filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings)
}

// Get returns one listing
func (h *ListingHandler) Get(c echo.Context) error {
	listing, err := h.listingUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing)
}

// ListMine returns the caller's own listings
func (h *ListingHandler) ListMine(c echo.Context) error {
	listings, err := h.listingUC.ListMine(c.Request().Context(), currentSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings)
}

// Stats returns the dashboard counters of the caller
func (h *ListingHandler) Stats(c echo.Context) error {
	stats, err := h.listingUC.Stats(c.Request().Context(), currentSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// Delete removes one of the caller's listings
func (h *ListingHandler) Delete(c echo.Context) error {
	if err := h.listingUC.Delete(c.Request().Context(), currentSession(c), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Edit marks a listing so the next wizard begin loads it
func (h *ListingHandler) Edit(c echo.Context) error {
	id := c.Param("id")
	if err := h.listingUC.MarkForEdit(c.Request().Context(), currentSession(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"editingId": id})
}

// Bookmarks lists the caller's bookmarked listing ids
func (h *ListingHandler) Bookmarks(c echo.Context) error {
	ids, err := h.bookmarkUC.List(c.Request().Context(), currentSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ids)
}

// ToggleBookmark adds or removes a bookmark
func (h *ListingHandler) ToggleBookmark(c echo.Context) error {
	id := c.Param("id")

	bookmarked, err := h.bookmarkUC.Toggle(c.Request().Context(), currentSession(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &BookmarkResponse{ListingID: id, Bookmarked: bookmarked})
}

// Analytics returns the provider analytics of the caller
func (h *ListingHandler) Analytics(c echo.Context) error {
	analytics, err := h.analyticsUC.Provider(c.Request().Context(), currentSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, analytics)
}
