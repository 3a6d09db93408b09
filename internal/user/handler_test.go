package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockService struct {
	registerErr error
	deleteErr   error
	users       map[int64]*User
}

func (m *mockService) Register(username, password, email, firstName, lastName string) (*User, error) {
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return &User{ID: 1, Username: username, PasswordHash: "hash", Email: email, FirstName: firstName, LastName: lastName}, nil
}

func (m *mockService) GetUserByID(userID int64) (*User, error) {
	return m.users[userID], nil
}

func (m *mockService) GetAllUsers() ([]User, error) {
	users := []User{}
	for _, u := range m.users {
		users = append(users, *u)
	}
	return users, nil
}

func (m *mockService) DeleteUser(userID int64) error {
	return m.deleteErr
}

func (m *mockService) DoesUserExistByID(userID int64) (bool, error) {
	_, ok := m.users[userID]
	return ok, nil
}

func TestHandleRegister_Created(t *testing.T) {
	handler := NewHandler(&mockService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/register",
		strings.NewReader(`{"username":"skipper","password":"secret","email":"skipper@example.com","first_name":"John","last_name":"Doe"}`))
	handler.HandleRegister(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var payload map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	assert.Equal(t, "skipper", payload["username"])
	// password hash never leaves the server
	assert.NotContains(t, payload, "password")
	assert.NotContains(t, payload, "PasswordHash")
}

func TestHandleRegister_InvalidBody(t *testing.T) {
	handler := NewHandler(&mockService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(`not json`))
	handler.HandleRegister(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandleRegister_DuplicateUsernameIs409(t *testing.T) {
	handler := NewHandler(&mockService{registerErr: ErrUsernameAlreadyExists})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/register",
		strings.NewReader(`{"username":"skipper","password":"secret","email":"skipper@example.com"}`))
	handler.HandleRegister(w, req)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}

func TestHandleRegister_InvalidEmailIs400(t *testing.T) {
	handler := NewHandler(&mockService{registerErr: ErrInvalidEmail})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/register",
		strings.NewReader(`{"username":"skipper","password":"secret","email":"nope"}`))
	handler.HandleRegister(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandleGetUserByID_OK(t *testing.T) {
	handler := NewHandler(&mockService{users: map[int64]*User{
		7: {ID: 7, Username: "skipper", Email: "skipper@example.com"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/7", nil)
	req.SetPathValue("userID", "7")
	handler.HandleGetUserByID(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var fetched User
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&fetched))
	assert.Equal(t, int64(7), fetched.ID)
}

func TestHandleGetUserByID_NotFound(t *testing.T) {
	handler := NewHandler(&mockService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/42", nil)
	req.SetPathValue("userID", "42")
	handler.HandleGetUserByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandleGetUserByID_InvalidID(t *testing.T) {
	handler := NewHandler(&mockService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/abc", nil)
	req.SetPathValue("userID", "abc")
	handler.HandleGetUserByID(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandleDeleteUser_NoContent(t *testing.T) {
	handler := NewHandler(&mockService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/users/7", nil)
	req.SetPathValue("userID", "7")
	handler.HandleDeleteUser(w, req)

	assert.Equal(t, http.StatusNoContent, w.Result().StatusCode)
}

func TestHandleDeleteUser_ReferencedUserIs409(t *testing.T) {
	handler := NewHandler(&mockService{deleteErr: ErrUserHasExpenses})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/users/7", nil)
	req.SetPathValue("userID", "7")
	handler.HandleDeleteUser(w, req)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}
