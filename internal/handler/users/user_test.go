package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"user-crud-demo/internal/database"
	"user-crud-demo/internal/model"
	"user-crud-demo/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newJSONCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	createUser = store.CreateUser
	createUsers = store.CreateUsers
	deleteUser = store.DeleteUser
	deleteAllUsers = store.DeleteAllUsers
	listUsers = store.ListUsers
}

func strPtr(s string) *string { return &s }

func TestCreateUserHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, http.MethodPost, "{")
		err := CreateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid request body")
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("email is required")}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":"Alice"}`)
		err := CreateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "email is required")
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createUser = func(_ context.Context, _ database.DB, _ *model.User) (*model.User, error) {
			return nil, errors.New("duplicate key value violates unique constraint")
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"email":"alice@example.com"}`)
		err := CreateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "duplicate key")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		now := time.Now().UTC()
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			require.Equal(t, "alice@example.com", u.Email)
			require.Equal(t, "Alice", *u.Name)
			u.ID = 1
			u.CreatedAt = now
			u.UpdatedAt = now
			return u, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"email":"alice@example.com","name":"Alice"}`)
		err := CreateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), `"success":true`)
		require.Contains(t, rec.Body.String(), `"id":1`)
		require.Contains(t, rec.Body.String(), `"email":"alice@example.com"`)
	})

	t.Run("success without name", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			require.Nil(t, u.Name)
			u.ID = 2
			return u, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"email":"bob@example.com"}`)
		err := CreateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), `"name":null`)
	})
}

func TestCreateUsersHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, http.MethodPost, "{")
		err := CreateUsersHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error on empty list", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("users must not be empty")}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"users":[]}`)
		err := CreateUsersHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "users must not be empty")
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createUsers = func(_ context.Context, _ database.DB, _ []*model.User) (int64, error) {
			return 0, errors.New("boom")
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"users":[{"email":"a@x.com"}]}`)
		err := CreateUsersHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("duplicates reported as skipped count", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createUsers = func(_ context.Context, _ database.DB, us []*model.User) (int64, error) {
			require.Len(t, us, 3)
			require.Equal(t, "a@x.com", us[0].Email)
			require.Equal(t, "a@x.com", us[1].Email)
			require.Equal(t, "b@x.com", us[2].Email)
			return 2, nil
		}
		body := `{"users":[{"email":"a@x.com"},{"email":"a@x.com"},{"email":"b@x.com"}]}`
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		err := CreateUsersHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), `"count":2`)
		require.Contains(t, rec.Body.String(), "2 users created")
	})
}

func TestDeleteUserHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, http.MethodDelete, "{")
		err := DeleteUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("id is required")}
		ctx, rec := newJSONCtx(e, http.MethodDelete, `{}`)
		err := DeleteUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "id is required")
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		deleteUser = func(_ context.Context, _ database.DB, id int) (*model.User, error) {
			require.Equal(t, 999, id)
			return nil, errors.New("DeleteUser: no rows in result set")
		}
		ctx, rec := newJSONCtx(e, http.MethodDelete, `{"id":999}`)
		err := DeleteUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "no rows")
	})

	t.Run("success returns deleted record", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		now := time.Now().UTC()
		deleteUser = func(_ context.Context, _ database.DB, id int) (*model.User, error) {
			require.Equal(t, 7, id)
			return &model.User{ID: 7, Email: "alice@example.com", Name: strPtr("Alice"), CreatedAt: now, UpdatedAt: now}, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodDelete, `{"id":7}`)
		err := DeleteUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"id":7`)
		require.Contains(t, rec.Body.String(), "user deleted successfully")
	})
}

func TestDeleteAllUsersHandler(t *testing.T) {
	e := echo.New()

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		deleteAllUsers = func(_ context.Context, _ database.DB) (int64, error) {
			return 0, errors.New("boom")
		}
		ctx, rec := newJSONCtx(e, http.MethodDelete, "")
		err := DeleteAllUsersHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		deleteAllUsers = func(_ context.Context, _ database.DB) (int64, error) { return 3, nil }
		ctx, rec := newJSONCtx(e, http.MethodDelete, "")
		err := DeleteAllUsersHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"count":3`)
	})

	t.Run("empty table reports zero", func(t *testing.T) {
		t.Cleanup(restore)
		deleteAllUsers = func(_ context.Context, _ database.DB) (int64, error) { return 0, nil }
		ctx, rec := newJSONCtx(e, http.MethodDelete, "")
		err := DeleteAllUsersHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"count":0`)
	})
}

func TestListUsersHandler(t *testing.T) {
	e := echo.New()

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listUsers = func(_ context.Context, _ database.DB) ([]model.User, error) {
			return nil, errors.New("boom")
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		err := ListUsersHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("empty table returns empty array", func(t *testing.T) {
		t.Cleanup(restore)
		listUsers = func(_ context.Context, _ database.DB) ([]model.User, error) {
			return []model.User{}, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		err := ListUsersHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"users":[]`)
	})

	t.Run("newest first passthrough", func(t *testing.T) {
		t.Cleanup(restore)
		now := time.Now().UTC()
		listUsers = func(_ context.Context, _ database.DB) ([]model.User, error) {
			return []model.User{
				{ID: 3, Email: "c@x.com", CreatedAt: now},
				{ID: 2, Email: "b@x.com", CreatedAt: now.Add(-time.Hour)},
				{ID: 1, Email: "a@x.com", CreatedAt: now.Add(-2 * time.Hour)},
			}, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		err := ListUsersHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		require.Contains(t, body, `"success":true`)
		require.Less(t, strings.Index(body, "c@x.com"), strings.Index(body, "b@x.com"))
		require.Less(t, strings.Index(body, "b@x.com"), strings.Index(body, "a@x.com"))
	})
}
