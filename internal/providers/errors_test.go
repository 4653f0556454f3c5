package providers

import (
	"errors"
	"testing"
)

func TestClassifyError(t *testing.T) {
	cases := map[string]ErrorType{
		"insufficient_quota for key":      ErrorQuota,
		"429 too many requests":           ErrorRate,
		"request context length too long": ErrorContext,
		"service temporarily unavailable": ErrorTransient,
		"invalid api key":                 ErrorPermanent,
	}
	for msg, want := range cases {
		if got := ClassifyError(errors.New(msg)); got != want {
			t.Fatalf("ClassifyError(%q) = %q, want %q", msg, got, want)
		}
	}
	if got := ClassifyError(nil); got != "" {
		t.Fatalf("nil error should classify empty, got %q", got)
	}
}
