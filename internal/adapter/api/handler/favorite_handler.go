package handler

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/usecase"
	"toromarket/pkg/response"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

type addFavoriteRequest struct {
	ListingID string `json:"listing" validate:"required"`
}

func (h *FavoriteHandler) Add(c echo.Context) error {
	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	favorite, err := h.favoriteUseCase.Add(c.Request().Context(), uid, req.ListingID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, favorite)
}

func (h *FavoriteHandler) List(c echo.Context) error {
	uid := c.Get("uid").(string)

	favorites, err := h.favoriteUseCase.List(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, favorites)
}

func (h *FavoriteHandler) Remove(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.favoriteUseCase.Remove(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.NoContent(c)
}
