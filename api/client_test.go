// client_test.go - Tests fuer den HTTP-Client
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	base, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	return NewClient(base, srv.Client())
}

func TestClientFromEnvironment(t *testing.T) {
	t.Setenv("GRAG_HOST", "")
	client, err := ClientFromEnvironment()
	if err != nil {
		t.Fatal(err)
	}
	if client.base.Host != "127.0.0.1:11848" {
		t.Errorf("base.Host = %q, erwartet den Default", client.base.Host)
	}

	t.Setenv("GRAG_HOST", "1.2.3.4:8080")
	client, err = ClientFromEnvironment()
	if err != nil {
		t.Fatal(err)
	}
	if client.base.Host != "1.2.3.4:8080" {
		t.Errorf("base.Host = %q", client.base.Host)
	}
}

func TestClientValidate(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/validate" || r.Method != http.MethodPost {
			t.Errorf("unerwarteter Request: %s %s", r.Method, r.URL.Path)
		}

		var req ValidateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Lambda != 1.3 {
			t.Errorf("Lambda = %v, erwartet 1.3", req.Lambda)
		}

		json.NewEncoder(w).Encode(ValidateResponse{
			Valid:      true,
			Advisories: []string{"lambda outside stable range"},
		})
	})

	resp, err := client.Validate(context.Background(), &ValidateRequest{Lambda: 1.3, Delta: 1.05})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Valid || len(resp.Advisories) != 1 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestClientStatusError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "lambda 5.000 outside range [0.1, 2.0]"})
	})

	_, err := client.Validate(context.Background(), &ValidateRequest{Lambda: 5.0, Delta: 1.0})

	var statusErr StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("erwartet StatusError, bekommen %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d", statusErr.StatusCode)
	}
	if statusErr.ErrorMessage != "lambda 5.000 outside range [0.1, 2.0]" {
		t.Errorf("ErrorMessage = %q", statusErr.ErrorMessage)
	}
}

func TestClientStatusErrorNonJSONBody(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	})

	err := client.Heartbeat(context.Background())

	var statusErr StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("erwartet StatusError, bekommen %T: %v", err, err)
	}
}

func TestClientVersion(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"version": "1.2.3"})
	})

	v, err := client.Version(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if v != "1.2.3" {
		t.Errorf("Version = %q", v)
	}
}

func TestStatusErrorMessage(t *testing.T) {
	cases := []struct {
		err  StatusError
		want string
	}{
		{StatusError{Status: "400 Bad Request", ErrorMessage: "boom"}, "400 Bad Request: boom"},
		{StatusError{Status: "400 Bad Request"}, "400 Bad Request"},
		{StatusError{ErrorMessage: "boom"}, "boom"},
		{StatusError{}, "something went wrong, please see the grag server logs for details"},
	}

	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Error() = %q, erwartet %q", got, tc.want)
		}
	}
}
