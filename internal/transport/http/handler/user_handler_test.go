package handler_test

import (
	"net/http"
	"strconv"
	"strings"
	"testing"
)

func TestCreateUser(t *testing.T) {
	r := newTestEngine(t)

	u := createUser(t, r, "ann@example.com")
	if u.ID == 0 {
		t.Fatal("expected positive generated id")
	}
	if u.Email != "ann@example.com" {
		t.Fatalf("unexpected email %q", u.Email)
	}
}

func TestCreateUser_MissingFields(t *testing.T) {
	r := newTestEngine(t)

	code, env := do(t, r, http.MethodPost, "/users", map[string]any{
		"first_name": "Ann",
		"email":      "   ",
	})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if env.Success {
		t.Fatal("expected success=false")
	}
	if !strings.HasPrefix(env.Message, "Missing fields:") {
		t.Fatalf("unexpected message %q", env.Message)
	}
	if !strings.Contains(env.Message, "last_name") || !strings.Contains(env.Message, "email") {
		t.Fatalf("message should name both missing fields: %q", env.Message)
	}
}

func TestCreateUser_InvalidFormats(t *testing.T) {
	r := newTestEngine(t)

	code, env := do(t, r, http.MethodPost, "/users", map[string]any{
		"first_name": "Ann3",
		"last_name":  "Lee",
		"email":      "ann@example.com",
	})
	if code != http.StatusBadRequest || env.Message != "Names must contain only letters" {
		t.Fatalf("expected name rejection, got %d %q", code, env.Message)
	}

	code, env = do(t, r, http.MethodPost, "/users", map[string]any{
		"first_name": "Ann",
		"last_name":  "Lee",
		"email":      "not-an-email",
	})
	if code != http.StatusBadRequest || env.Message != "Invalid email format" {
		t.Fatalf("expected email rejection, got %d %q", code, env.Message)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	r := newTestEngine(t)

	createUser(t, r, "ann@example.com")

	code, env := do(t, r, http.MethodPost, "/users", map[string]any{
		"first_name": "Bob",
		"last_name":  "Ray",
		"email":      "ann@example.com",
	})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 on duplicate email, got %d", code)
	}
	if env.Message != "Email already exists. Please use a different one." {
		t.Fatalf("unexpected message %q", env.Message)
	}

	// no second row was created
	code, env = do(t, r, http.MethodGet, "/users", nil)
	if code != http.StatusOK {
		t.Fatalf("list users: expected 200, got %d", code)
	}
	var users []userOut
	decodeData(t, env, &users)
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
}

func TestGetUser(t *testing.T) {
	r := newTestEngine(t)

	code, env := do(t, r, http.MethodGet, "/users/abc", nil)
	if code != http.StatusBadRequest || env.Message != "Invalid user ID" {
		t.Fatalf("expected invalid id rejection, got %d %q", code, env.Message)
	}

	code, env = do(t, r, http.MethodGet, "/users/99999", nil)
	if code != http.StatusNotFound || env.Message != "User not found" {
		t.Fatalf("expected 404, got %d %q", code, env.Message)
	}

	u := createUser(t, r, "ann@example.com")
	createAddress(t, r, u.ID, "411001")

	code, env = do(t, r, http.MethodGet, "/users/"+strconv.Itoa(int(u.ID)), nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var got userOut
	decodeData(t, env, &got)
	if len(got.Addresses) != 1 {
		t.Fatalf("expected 1 nested address, got %d", len(got.Addresses))
	}
}

func TestUpdateUser_PartialEmailOnly(t *testing.T) {
	r := newTestEngine(t)
	u := createUser(t, r, "ann@example.com")
	path := "/users/" + strconv.Itoa(int(u.ID))

	code, env := do(t, r, http.MethodPut, path, map[string]any{"email": "new@x.com"})
	if code != http.StatusOK || env.Message != "User updated successfully" {
		t.Fatalf("expected 200, got %d %q", code, env.Message)
	}

	_, env = do(t, r, http.MethodGet, path, nil)
	var got userOut
	decodeData(t, env, &got)
	if got.Email != "new@x.com" {
		t.Fatalf("email not updated: %q", got.Email)
	}
	if got.FirstName != "Ann" || got.LastName != "Lee" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestUpdateUser_NotFoundAndNoOp(t *testing.T) {
	r := newTestEngine(t)

	code, env := do(t, r, http.MethodPut, "/users/99999", map[string]any{"email": "new@x.com"})
	if code != http.StatusNotFound || env.Message != "User not found" {
		t.Fatalf("expected 404, got %d %q", code, env.Message)
	}

	// an empty payload against an existing row is a no-op, not a 404
	u := createUser(t, r, "ann@example.com")
	code, env = do(t, r, http.MethodPut, "/users/"+strconv.Itoa(int(u.ID)), map[string]any{})
	if code != http.StatusOK {
		t.Fatalf("expected 200 for no-op update, got %d %q", code, env.Message)
	}
}

func TestUpdateUser_DuplicateEmail(t *testing.T) {
	r := newTestEngine(t)
	createUser(t, r, "ann@example.com")
	bob := createUser(t, r, "bob@example.com")

	// the unique index is the guard here; there is no pre-check on update
	code, env := do(t, r, http.MethodPut, "/users/"+strconv.Itoa(int(bob.ID)),
		map[string]any{"email": "ann@example.com"})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d %q", code, env.Message)
	}
	if env.Message != "Email already exists. Please use a different one." {
		t.Fatalf("unexpected message %q", env.Message)
	}

	// bob keeps his email
	_, env = do(t, r, http.MethodGet, "/users/"+strconv.Itoa(int(bob.ID)), nil)
	var got userOut
	decodeData(t, env, &got)
	if got.Email != "bob@example.com" {
		t.Fatalf("email changed despite rejection: %q", got.Email)
	}
}

func TestUpdateUser_InvalidEmail(t *testing.T) {
	r := newTestEngine(t)
	u := createUser(t, r, "ann@example.com")

	code, env := do(t, r, http.MethodPut, "/users/"+strconv.Itoa(int(u.ID)),
		map[string]any{"email": "nope"})
	if code != http.StatusBadRequest || env.Message != "Invalid email format" {
		t.Fatalf("expected 400, got %d %q", code, env.Message)
	}
}

func TestDeleteUser_Idempotent404(t *testing.T) {
	r := newTestEngine(t)
	u := createUser(t, r, "ann@example.com")
	path := "/users/" + strconv.Itoa(int(u.ID))

	code, env := do(t, r, http.MethodDelete, path, nil)
	if code != http.StatusOK || env.Message != "User deleted successfully" {
		t.Fatalf("expected 200, got %d %q", code, env.Message)
	}

	for i := 0; i < 2; i++ {
		code, env = do(t, r, http.MethodDelete, path, nil)
		if code != http.StatusNotFound || env.Message != "User not found" {
			t.Fatalf("repeat delete %d: expected 404, got %d %q", i, code, env.Message)
		}
	}
}

func TestListUsersProjections(t *testing.T) {
	r := newTestEngine(t)

	ann := createUser(t, r, "ann@example.com")
	createUser(t, r, "bob@example.com")
	createAddress(t, r, ann.ID, "411001")

	code, env := do(t, r, http.MethodGet, "/users/only", nil)
	if code != http.StatusOK {
		t.Fatalf("users/only: expected 200, got %d", code)
	}
	var only []userOut
	decodeData(t, env, &only)
	if len(only) != 2 {
		t.Fatalf("expected 2 users, got %d", len(only))
	}
	for _, u := range only {
		if len(u.Addresses) != 0 {
			t.Fatalf("projection must not include addresses: %+v", u)
		}
	}

	code, env = do(t, r, http.MethodGet, "/users/no-addresses", nil)
	if code != http.StatusOK {
		t.Fatalf("users/no-addresses: expected 200, got %d", code)
	}
	var bare []userOut
	decodeData(t, env, &bare)
	if len(bare) != 1 || bare[0].Email != "bob@example.com" {
		t.Fatalf("expected only bob, got %+v", bare)
	}
}
