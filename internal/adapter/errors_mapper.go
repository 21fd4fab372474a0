package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-sky-client/models"
	"github.com/go-resty/resty/v2"
)

// mapXRPCError converts a non-2xx XRPC response into a sentinel error. The
// machine-readable error name from the body takes precedence over the HTTP
// status because the AT Protocol multiplexes several failures onto 400/401.
func mapXRPCError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body models.XRPCErrorBody
	_ = json.Unmarshal(resp.Body(), &body)

	detail := body.Message
	if detail == "" {
		detail = body.Error
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	switch body.Error {
	case "ExpiredToken":
		return fmt.Errorf("%w: %s", ErrExpiredToken, detail)
	case "AuthenticationRequired", "InvalidToken", "AccountTakedown":
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case "RateLimitExceeded":
		return fmt.Errorf("%w: %s", ErrRateLimited, detail)
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, detail)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, detail)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
	}
}
