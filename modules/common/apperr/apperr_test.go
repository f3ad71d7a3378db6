package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorsMatchByKind(t *testing.T) {
	err := fmt.Errorf("phase 2: %w", ContentBlocked())
	if !errors.Is(err, ErrContentBlocked) {
		t.Fatalf("wrapped content blocked should match sentinel")
	}
	if errors.Is(err, ErrEmptyResult) {
		t.Fatalf("content blocked must not match empty result")
	}
	if KindOf(err) != KindContentBlocked {
		t.Fatalf("KindOf = %s", KindOf(err))
	}
}

func TestServiceBusyKeepsCause(t *testing.T) {
	cause := errors.New("429 Too Many Requests")
	err := ServiceBusy(cause)
	if !errors.Is(err, cause) {
		t.Fatalf("ServiceBusy should unwrap to its cause")
	}
	if MessageOf(err) != MsgServiceBusy {
		t.Fatalf("MessageOf = %q", MessageOf(err))
	}
}

func TestUnknownRemoteKeepsMessage(t *testing.T) {
	err := UnknownRemote(errors.New("upstream exploded"))
	if MessageOf(err) != "upstream exploded" {
		t.Fatalf("MessageOf = %q", MessageOf(err))
	}
	if err.Error() != "upstream exploded" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestUnclassifiedErrors(t *testing.T) {
	err := errors.New("plain")
	if KindOf(err) != KindUnknownRemote {
		t.Fatalf("KindOf(plain) = %s", KindOf(err))
	}
	if MessageOf(err) != "plain" {
		t.Fatalf("MessageOf(plain) = %q", MessageOf(err))
	}
}

func TestConfigurationFormats(t *testing.T) {
	err := Configuration("Invalid product type: %s", "rocket")
	if err.Error() != "Invalid product type: rocket" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindConfiguration:  http.StatusBadRequest,
		KindInputEncoding:  http.StatusBadRequest,
		KindRateLimited:    http.StatusTooManyRequests,
		KindServiceBusy:    http.StatusServiceUnavailable,
		KindContentBlocked: http.StatusUnprocessableEntity,
		KindEmptyResult:    http.StatusBadGateway,
		KindUnknownRemote:  http.StatusBadGateway,
	}
	for kind, want := range cases {
		if got := HTTPStatus(kind); got != want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", kind, got, want)
		}
	}
}
