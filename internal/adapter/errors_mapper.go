package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-200 response into ErrUnhealthy, preferring the
// {"detail": ...} message of gateway errors over the raw body.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	detail := strings.TrimSpace(resp.String())

	var errResp utils.ErrorResponse
	if json.Unmarshal(resp.Body(), &errResp) == nil && errResp.Detail != "" {
		detail = errResp.Detail
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", ErrUnhealthy, resp.StatusCode(), detail)
}
