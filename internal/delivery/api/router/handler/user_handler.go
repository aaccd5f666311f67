package handler

import (
	"fmt"
	"net/http"

	"academy/internal/delivery/api/response"
	"academy/internal/domain/entity"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AccountUC  usecase.AccountUsecase
	PurchaseUC usecase.PurchaseUsecase
}

// UserHandler serves account management and bookmark lists.
type UserHandler struct {
	accountUC  usecase.AccountUsecase
	purchaseUC usecase.PurchaseUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		accountUC:  params.AccountUC,
		purchaseUC: params.PurchaseUC,
	}
}

// CreateUserRequest represents the request body for an admin-created account
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// UpdateUserRequest represents a partial profile update
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,username"`
	Email    *string `json:"email" validate:"omitempty,email,max=120"`
}

// FavouriteCourseRequest represents the request body for bookmarking a course
type FavouriteCourseRequest struct {
	CourseID uint `json:"course_id" validate:"required,gt=0"`
}

// SaveBlogRequest represents the request body for bookmarking a blog
type SaveBlogRequest struct {
	BlogID uint `json:"blog_id" validate:"required,gt=0"`
}

// ListUsers returns every account.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.accountUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewUserViews(users))
}

// CreateUser opens an account with an optional role.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.accountUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, response.NewUserView(user))
}

// GetUser returns one account. ?expand=true resolves its lists.
func (h *UserHandler) GetUser(c echo.Context) error {
	if queryBool(c, "expand") {
		return h.GetProfile(c)
	}

	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.accountUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewUserView(user))
}

// GetProfile returns an account with its lists resolved.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	details, err := h.accountUC.GetUserDetails(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewUserDetailsView(details))
}

// UpdateUser changes username and/or email.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.accountUC.UpdateUser(c.Request().Context(), &usecase.UpdateUserInput{
		UserID:   userID,
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewUserView(user))
}

// DeleteUser removes an account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.accountUC.DeleteUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, fmt.Sprintf("User %s deleted successfully.", user.Username))
}

// OwnedCourses lists the ids of owned courses, or the courses with ?expand=true.
func (h *UserHandler) OwnedCourses(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !queryBool(c, "expand") {
		user, err := h.accountUC.GetUser(c.Request().Context(), userID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, map[string]any{
			"user_id":       userID,
			"owned_courses": response.NewUserView(user).OwnedCourses,
		})
	}

	courses, err := h.accountUC.OwnedCourses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id":       userID,
		"owned_courses": response.NewCourseViews(courses),
	})
}

// ReconcileOwned rebuilds a user's owned courses from the purchase ledger.
func (h *UserHandler) ReconcileOwned(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.purchaseUC.ReconcileOwnedCourses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id": output.UserID,
		"before":  output.Before,
		"after":   output.After,
		"changed": output.Changed,
	})
}

// FavouriteCourses lists the user's bookmarked courses.
func (h *UserHandler) FavouriteCourses(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	courses, err := h.accountUC.FavouriteCourses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id":           userID,
		"favourite_courses": response.NewCourseViews(courses),
	})
}

// AddFavouriteCourse bookmarks a course.
func (h *UserHandler) AddFavouriteCourse(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req FavouriteCourseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.accountUC.AddFavouriteCourse(c.Request().Context(), userID, req.CourseID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewUserView(user))
}

// RemoveFavouriteCourse drops a bookmarked course.
func (h *UserHandler) RemoveFavouriteCourse(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	courseID, err := pathID(c, "course_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.accountUC.RemoveFavouriteCourse(c.Request().Context(), userID, courseID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewUserView(user))
}

// SavedBlogs lists the user's bookmarked blogs.
func (h *UserHandler) SavedBlogs(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	blogs, err := h.accountUC.SavedBlogs(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id":     userID,
		"saved_blogs": response.NewBlogViews(blogs),
	})
}

// SaveBlog bookmarks a blog.
func (h *UserHandler) SaveBlog(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SaveBlogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.accountUC.SaveBlog(c.Request().Context(), userID, req.BlogID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewUserView(user))
}

// UnsaveBlog drops a bookmarked blog.
func (h *UserHandler) UnsaveBlog(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	blogID, err := pathID(c, "blog_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.accountUC.UnsaveBlog(c.Request().Context(), userID, blogID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewUserView(user))
}
