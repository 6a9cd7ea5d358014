package response

import (
	"net/http"
	"testing"
)

func TestErrorCodeMapping(t *testing.T) {
	cases := []struct {
		code       ErrCode
		wantValue  int
		wantStatus int
	}{
		{ErrInvalidCredentials, 1001, http.StatusForbidden},
		{ErrAuthRequired, 1002, http.StatusUnauthorized},
		{ErrNotAuthenticated, 1003, http.StatusUnauthorized},
		{ErrMinOptions, 1004, http.StatusNotAcceptable},
		{ErrMaxOptions, 1005, http.StatusNotAcceptable},
		{ErrMultipleValid, 1006, http.StatusNotAcceptable},
		{ErrValidation, 1400, http.StatusBadRequest},
		{ErrInvalidID, 1401, http.StatusBadRequest},
		{ErrObjectNotFound, 1404, http.StatusNotFound},
		{ErrRateLimitExceeded, 1429, http.StatusTooManyRequests},
		{ErrInternal, 1500, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			if got := Value(tc.code); got != tc.wantValue {
				t.Fatalf("Value(%s) = %d, want %d", tc.code, got, tc.wantValue)
			}
			if got := Status(tc.code); got != tc.wantStatus {
				t.Fatalf("Status(%s) = %d, want %d", tc.code, got, tc.wantStatus)
			}
			if GetMessage(tc.code) == "" {
				t.Fatalf("GetMessage(%s) is empty", tc.code)
			}
		})
	}
}

func TestUnknownCodeFallsBackToInternal(t *testing.T) {
	if got := Value(ErrCode("NOPE")); got != 1500 {
		t.Fatalf("Value = %d, want 1500", got)
	}
	if got := Status(ErrCode("NOPE")); got != http.StatusInternalServerError {
		t.Fatalf("Status = %d, want 500", got)
	}
}
