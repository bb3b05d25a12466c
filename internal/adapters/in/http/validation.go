package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ordertracker/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// NewRequestValidator returns middleware that checks API requests against the
// OpenAPI document in spec. Requests for paths the document does not describe
// (health, swagger, static files) pass through untouched.
func NewRequestValidator(spec []byte) (echo.MiddlewareFunc, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	// Match on the request path alone, whatever host serves it.
	doc.Servers = nil

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				// Unknown paths and methods are left to Echo's router.
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validationErr := openapi3filter.ValidateRequest(req.Context(), input); validationErr != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{Error: validationMessage(validationErr)})
			}

			return next(ctx)
		}
	}, nil
}

// validationMessage turns kin-openapi errors into short client messages.
func validationMessage(err error) string {
	reason := err.Error()

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		reason = schemaErr.Reason
		if field := strings.Join(schemaErr.JSONPointer(), "."); field != "" {
			return fmt.Sprintf("value is invalid: %s (cause: %s)", field, reason)
		}
	}

	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if schemaErr == nil {
			reason = reqErr.Reason
			if reason == "" && reqErr.Err != nil {
				reason = reqErr.Err.Error()
			}
		}

		switch {
		case reqErr.Parameter != nil:
			return fmt.Sprintf("value is invalid: %s (cause: %s)", reqErr.Parameter.Name, reason)
		case reqErr.RequestBody != nil:
			return fmt.Sprintf("value is invalid: request body (cause: %s)", reason)
		}
	}

	return "value is invalid: " + reason
}
