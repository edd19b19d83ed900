package handler_test

import (
	"net/http"
	"strconv"
	"testing"
)

// Full lifecycle: deleting a user does not cascade to its addresses. The
// orphaned rows remaining afterwards is the documented behavior of this
// service, so the test pins it down.
func TestUserAddressLifecycle_NoCascade(t *testing.T) {
	r := newTestEngine(t)

	code, env := do(t, r, http.MethodPost, "/users", map[string]any{
		"first_name": "Ann",
		"last_name":  "Lee",
		"email":      "ann@example.com",
	})
	if code != http.StatusCreated {
		t.Fatalf("create user: expected 201, got %d %q", code, env.Message)
	}
	var u userOut
	decodeData(t, env, &u)
	if u.ID == 0 {
		t.Fatal("expected generated user id")
	}

	code, env = do(t, r, http.MethodPost, "/addresses", map[string]any{
		"user_id": u.ID,
		"street":  "Main St",
		"city":    "Pune",
		"state":   "MH",
		"pincode": "411001",
	})
	if code != http.StatusCreated {
		t.Fatalf("create address: expected 201, got %d %q", code, env.Message)
	}

	byUser := "/addresses/user/" + strconv.Itoa(int(u.ID))
	code, env = do(t, r, http.MethodGet, byUser, nil)
	if code != http.StatusOK {
		t.Fatalf("addresses by user: expected 200, got %d", code)
	}
	var addrs []addrOut
	decodeData(t, env, &addrs)
	if len(addrs) != 1 || addrs[0].UserID != u.ID {
		t.Fatalf("expected one address for user %d, got %+v", u.ID, addrs)
	}

	code, env = do(t, r, http.MethodDelete, "/users/"+strconv.Itoa(int(u.ID)), nil)
	if code != http.StatusOK {
		t.Fatalf("delete user: expected 200, got %d %q", code, env.Message)
	}

	// the address survives its owner
	code, env = do(t, r, http.MethodGet, byUser, nil)
	if code != http.StatusOK {
		t.Fatalf("orphaned addresses: expected 200, got %d %q", code, env.Message)
	}
	decodeData(t, env, &addrs)
	if len(addrs) != 1 {
		t.Fatalf("expected orphaned address to remain, got %d rows", len(addrs))
	}

	code, env = do(t, r, http.MethodGet, "/users", nil)
	if code != http.StatusOK {
		t.Fatalf("list users: expected 200, got %d", code)
	}
	var users []userOut
	if len(env.Data) > 0 {
		decodeData(t, env, &users)
	}
	if len(users) != 0 {
		t.Fatalf("expected no users after delete, got %d", len(users))
	}
}
