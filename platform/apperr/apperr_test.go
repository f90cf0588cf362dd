package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{NotFound("missing"), http.StatusNotFound},
		{Validation("bad"), http.StatusBadRequest},
		{BadRequest("bad"), http.StatusBadRequest},
		{Internal("boom"), http.StatusInternalServerError},
		{Unavailable("upstream", errors.New("x")), http.StatusBadGateway},
		{New(KindUnknown, "?"), http.StatusBadRequest},
	}
	for _, tc := range cases {
		if got := tc.err.HTTPStatus(); got != tc.want {
			t.Fatalf("kind %d: expected %d, got %d", tc.err.Kind, tc.want, got)
		}
	}
}

func TestGetKindFollowsWrapping(t *testing.T) {
	base := Validation("job description is required").WithOp("quotes.Generate")
	wrapped := fmt.Errorf("handler: %w", base)

	if !Is(wrapped, KindValidation) {
		t.Fatalf("expected wrapped error to keep validation kind")
	}
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Fatalf("expected plain error to have unknown kind")
	}
	if base.Error() != "quotes.Generate: job description is required" {
		t.Fatalf("unexpected message %q", base.Error())
	}
}
