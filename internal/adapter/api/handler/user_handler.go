package handler

import (
	"github.com/labstack/echo/v4"

	"toromarket/internal/usecase"
	"toromarket/pkg/response"
	"toromarket/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	FirstName        *string `json:"first_name" validate:"omitempty,max=100"`
	LastName         *string `json:"last_name" validate:"omitempty,max=100"`
	ProfilePicture   *string `json:"profile_picture" validate:"omitempty,url"`
	About            *string `json:"about" validate:"omitempty,max=2000"`
	Interests        *string `json:"interests" validate:"omitempty,max=1000"`
	GraduationDate   *string `json:"graduation_date"`
	CompanyName      *string `json:"company_name" validate:"omitempty,max=200"`
	DisplayAsCompany *bool   `json:"display_as_company"`
	PhoneNumber      *string `json:"phone_number" validate:"omitempty,max=30"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		ProfilePicture:   req.ProfilePicture,
		About:            req.About,
		Interests:        req.Interests,
		GraduationDate:   req.GraduationDate,
		CompanyName:      req.CompanyName,
		DisplayAsCompany: req.DisplayAsCompany,
		PhoneNumber:      req.PhoneNumber,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	users, total, err := h.userUseCase.List(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, users, total, params.Page, params.PageSize)
}

func (h *UserHandler) GetByUsername(c echo.Context) error {
	user, err := h.userUseCase.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}
