package fault

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestError_HTTPStatus_Mapping(t *testing.T) {
	cases := []struct {
		state State
		want  int
	}{
		{StateRequest, http.StatusBadRequest},
		{StateFailed, http.StatusForbidden},
		{StateServerConfig, http.StatusInternalServerError},
		{StateCommitFailed, http.StatusInternalServerError},
		{State("somethingNew"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		e := &Error{State: tc.state, Reason: "x"}
		if got := e.HTTPStatus(); got != tc.want {
			t.Errorf("state %s: expected %d, got %d", tc.state, tc.want, got)
		}
	}
}

func TestRequestFields_NamesEveryOffender(t *testing.T) {
	e := RequestFields("invalid function names", []string{"admin", "root"})
	if e.State != StateRequest {
		t.Errorf("expected requestError, got %s", e.State)
	}
	if !strings.Contains(e.Reason, "admin") || !strings.Contains(e.Reason, "root") {
		t.Errorf("reason should name every offender, got %q", e.Reason)
	}
	if len(e.Fields) != 2 {
		t.Errorf("expected 2 fields, got %d", len(e.Fields))
	}
}

func TestCommitFailed_RetainsCause(t *testing.T) {
	cause := errors.New("hash exploded")
	e := CommitFailed(cause)
	if e.State != StateCommitFailed {
		t.Errorf("expected serverAuthCommitFailed, got %s", e.State)
	}
	if !errors.Is(e, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(e.Error(), "hash exploded") {
		t.Errorf("Error() should include the cause, got %q", e.Error())
	}
}

func TestAuthFailed_DefaultReason(t *testing.T) {
	e := AuthFailed("")
	if e.Reason == "" {
		t.Error("expected a default reason")
	}
	if e.HTTPStatus() != http.StatusForbidden {
		t.Errorf("expected 403, got %d", e.HTTPStatus())
	}
}
