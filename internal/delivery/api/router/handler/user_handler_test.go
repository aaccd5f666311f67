package handler

import (
	"net/http"
	"testing"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	mockusecase "academy/internal/mocks/usecase"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userHandlerMocks struct {
	accountUC  *mockusecase.MockAccountUsecase
	purchaseUC *mockusecase.MockPurchaseUsecase
}

func newUserTestEcho(t *testing.T) (*echo.Echo, *userHandlerMocks) {
	mocks := &userHandlerMocks{
		accountUC:  mockusecase.NewMockAccountUsecase(t),
		purchaseUC: mockusecase.NewMockPurchaseUsecase(t),
	}
	h := NewUserHandler(UserHandlerParams{AccountUC: mocks.accountUC, PurchaseUC: mocks.purchaseUC})

	e := newTestEcho()
	e.GET("/users", h.ListUsers)
	e.POST("/users", h.CreateUser)
	e.GET("/users/:id", h.GetUser)
	e.PATCH("/users/:id", h.UpdateUser)
	e.DELETE("/users/:id", h.DeleteUser)
	e.GET("/users/:id/profile", h.GetProfile)
	e.GET("/users/:id/owned-courses", h.OwnedCourses)
	e.GET("/users/:id/favourite-courses", h.FavouriteCourses)
	e.POST("/users/:id/favourite-courses", h.AddFavouriteCourse)
	e.DELETE("/users/:id/favourite-courses/:course_id", h.RemoveFavouriteCourse)
	e.GET("/users/:id/saved-blogs", h.SavedBlogs)
	e.POST("/users/:id/saved-blogs", h.SaveBlog)
	e.DELETE("/users/:id/saved-blogs/:blog_id", h.UnsaveBlog)
	e.POST("/admin/users/:id/reconcile-owned", h.ReconcileOwned)

	return e, mocks
}

func TestUserHandler_ListUsers(t *testing.T) {
	e, m := newUserTestEcho(t)

	m.accountUC.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{
		{ID: 1, Username: "admin", Role: entity.RoleAdmin},
		{ID: 2, Username: "ana", Role: entity.RoleUser},
	}, nil)

	rec := doJSON(e, http.MethodGet, "/users", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"admin"`)
	assert.Contains(t, rec.Body.String(), `"role":"user"`)
}

func TestUserHandler_CreateUser(t *testing.T) {
	e, m := newUserTestEcho(t)

	m.accountUC.EXPECT().
		CreateUser(mock.Anything, &usecase.CreateUserInput{
			Username: "editor", Email: "editor@example.com", Password: "secret1", Role: entity.RoleAdmin,
		}).
		Return(&entity.User{ID: 3, Username: "editor", Email: "editor@example.com", Role: entity.RoleAdmin}, nil)

	rec := doJSON(e, http.MethodPost, "/users",
		`{"username":"editor","email":"editor@example.com","password":"secret1","role":"admin"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "admin", decodeMap(t, rec)["role"])

	rec = doJSON(e, http.MethodPost, "/users",
		`{"username":"editor","email":"editor@example.com","password":"secret1","role":"root"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "role")
}

func TestUserHandler_GetUser(t *testing.T) {
	e, m := newUserTestEcho(t)

	user := &entity.User{ID: 2, Username: "ana", OwnedCourses: []uint{4}, SavedBlogs: []uint{9}}
	m.accountUC.EXPECT().GetUser(mock.Anything, uint(2)).Return(user, nil)
	m.accountUC.EXPECT().GetUserDetails(mock.Anything, uint(2)).Return(&usecase.UserDetails{
		User:         user,
		OwnedCourses: []*entity.Course{{ID: 4, Name: "Go", Price: decimal.RequireFromString("10")}},
		SavedBlogs:   []*entity.Blog{{ID: 9, Title: "Channels"}},
	}, nil)

	rec := doJSON(e, http.MethodGet, "/users/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{4.0}, decodeMap(t, rec)["owned_courses"])

	rec = doJSON(e, http.MethodGet, "/users/2?expand=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	owned := decodeMap(t, rec)["owned_courses"].([]any)
	require.Len(t, owned, 1)
	assert.Equal(t, "Go", owned[0].(map[string]any)["name"])
}

func TestUserHandler_GetUser_BadID(t *testing.T) {
	e, _ := newUserTestEcho(t)

	for _, target := range []string{"/users/abc", "/users/0", "/users/-1"} {
		rec := doJSON(e, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code, target)
	}
}

func TestUserHandler_UpdateUser(t *testing.T) {
	e, m := newUserTestEcho(t)

	email := "new@example.com"
	m.accountUC.EXPECT().
		UpdateUser(mock.Anything, &usecase.UpdateUserInput{UserID: 2, Email: &email}).
		Return(&entity.User{ID: 2, Username: "ana", Email: email}, nil)

	rec := doJSON(e, http.MethodPatch, "/users/2", `{"email":"new@example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, email, decodeMap(t, rec)["email"])
}

func TestUserHandler_DeleteUser(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		setup       func(m *userHandlerMocks)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "deleted",
			id:   "3",
			setup: func(m *userHandlerMocks) {
				m.accountUC.EXPECT().DeleteUser(mock.Anything, uint(3)).
					Return(&entity.User{ID: 3, Username: "bob"}, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "User bob deleted successfully.",
		},
		{
			name: "primary admin",
			id:   "1",
			setup: func(m *userHandlerMocks) {
				m.accountUC.EXPECT().DeleteUser(mock.Anything, uint(1)).
					Return(nil, domainerrors.ErrPrimaryAdminProtected)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "has purchases",
			id:   "4",
			setup: func(m *userHandlerMocks) {
				m.accountUC.EXPECT().DeleteUser(mock.Anything, uint(4)).
					Return(nil, domainerrors.ErrResourceInUse)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newUserTestEcho(t)
			tt.setup(m)

			rec := doJSON(e, http.MethodDelete, "/users/"+tt.id, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeMap(t, rec)["message"])
			}
		})
	}
}

func TestUserHandler_OwnedCourses(t *testing.T) {
	e, m := newUserTestEcho(t)

	m.accountUC.EXPECT().GetUser(mock.Anything, uint(2)).
		Return(&entity.User{ID: 2, OwnedCourses: []uint{4, 5}}, nil)
	m.accountUC.EXPECT().OwnedCourses(mock.Anything, uint(2)).
		Return([]*entity.Course{{ID: 4, Name: "Go"}, {ID: 5, Name: "SQL"}}, nil)

	rec := doJSON(e, http.MethodGet, "/users/2/owned-courses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, 2.0, body["user_id"])
	assert.Equal(t, []any{4.0, 5.0}, body["owned_courses"])

	rec = doJSON(e, http.MethodGet, "/users/2/owned-courses?expand=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeMap(t, rec)["owned_courses"], 2)
}

func TestUserHandler_Favourites(t *testing.T) {
	e, m := newUserTestEcho(t)

	m.accountUC.EXPECT().FavouriteCourses(mock.Anything, uint(2)).
		Return([]*entity.Course{{ID: 4, Name: "Go"}}, nil)
	m.accountUC.EXPECT().AddFavouriteCourse(mock.Anything, uint(2), uint(4)).
		Return(nil, domainerrors.ErrAlreadyFavourite)
	m.accountUC.EXPECT().RemoveFavouriteCourse(mock.Anything, uint(2), uint(4)).
		Return(&entity.User{ID: 2}, nil)

	rec := doJSON(e, http.MethodGet, "/users/2/favourite-courses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeMap(t, rec)["favourite_courses"], 1)

	rec = doJSON(e, http.MethodPost, "/users/2/favourite-courses", `{"course_id":4}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(e, http.MethodPost, "/users/2/favourite-courses", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/users/2/favourite-courses/4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, decodeMap(t, rec)["favourite_courses"])
}

func TestUserHandler_SavedBlogs(t *testing.T) {
	e, m := newUserTestEcho(t)

	m.accountUC.EXPECT().SavedBlogs(mock.Anything, uint(2)).
		Return([]*entity.Blog{{ID: 9, Title: "Channels"}}, nil)
	m.accountUC.EXPECT().SaveBlog(mock.Anything, uint(2), uint(9)).
		Return(&entity.User{ID: 2, SavedBlogs: []uint{9}}, nil)
	m.accountUC.EXPECT().UnsaveBlog(mock.Anything, uint(2), uint(8)).
		Return(nil, domainerrors.ErrBlogNotFound.WithMessage("Blog not found in saved blogs"))

	rec := doJSON(e, http.MethodGet, "/users/2/saved-blogs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeMap(t, rec)["saved_blogs"], 1)

	rec = doJSON(e, http.MethodPost, "/users/2/saved-blogs", `{"blog_id":9}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{9.0}, decodeMap(t, rec)["saved_blogs"])

	rec = doJSON(e, http.MethodDelete, "/users/2/saved-blogs/8", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Blog not found in saved blogs", decodeError(t, rec).Error)
}

func TestUserHandler_ReconcileOwned(t *testing.T) {
	e, m := newUserTestEcho(t)

	m.purchaseUC.EXPECT().ReconcileOwnedCourses(mock.Anything, uint(2)).
		Return(&usecase.ReconcileOutput{UserID: 2, Before: []uint{4}, After: []uint{4, 5}, Changed: true}, nil)

	rec := doJSON(e, http.MethodPost, "/admin/users/2/reconcile-owned", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, true, body["changed"])
	assert.Equal(t, []any{4.0, 5.0}, body["after"])
}
