package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/middleware"
)

// currentUser returns the authenticated user, or domain.ErrUnauthenticated
// when the route was mounted without the auth middleware.
func currentUser(r *http.Request) (uuid.UUID, error) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	return id, nil
}

// pathUUID binds a UUID path parameter.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid format for parameter %s", name)
	}
	return id, nil
}

// pathString binds a free-text path parameter such as a location name.
func pathString(r *http.Request, name string) (string, error) {
	var v string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", fmt.Errorf("invalid format for parameter %s", name)
	}
	return v, nil
}

// queryInt binds an optional integer query parameter; nil when absent.
func queryInt(r *http.Request, name string) (*int, error) {
	var v *int
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v); err != nil {
		return nil, fmt.Errorf("invalid format for parameter %s", name)
	}
	return v, nil
}

// queryString binds an optional string query parameter; "" when absent.
func queryString(r *http.Request, name string) (string, error) {
	var v *string
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v); err != nil {
		return "", fmt.Errorf("invalid format for parameter %s", name)
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

// pagination reads ?page= and ?limit=.
func pagination(r *http.Request) (domain.PaginationParams, error) {
	page, err := queryInt(r, "page")
	if err != nil {
		return domain.PaginationParams{}, err
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		return domain.PaginationParams{}, err
	}
	return domain.NewPaginationParams(page, limit), nil
}

// period reads ?year= and ?month=, each a number or "All".
func period(r *http.Request) (domain.Period, error) {
	year, err := queryString(r, "year")
	if err != nil {
		return domain.Period{}, err
	}
	month, err := queryString(r, "month")
	if err != nil {
		return domain.Period{}, err
	}
	return domain.ParsePeriod(year, month)
}

var errBodyTooLarge = errors.New("request body too large")

// decodeBody decodes a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	var tooLarge *http.MaxBytesError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return errors.New("request body is required")
	case errors.As(err, &tooLarge):
		return errBodyTooLarge
	default:
		return fmt.Errorf("invalid request body: %v", err)
	}
}

// writeDecodeError answers a decodeBody failure.
func writeDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", err.Error())
		return
	}
	badRequest(w, err.Error())
}
