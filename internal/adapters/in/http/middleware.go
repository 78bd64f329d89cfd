package http

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"sellerdesk/internal/core/application/usecases/queries"
	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/pkg/bearer"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

const (
	bearerSchemeName  = "bearerAuth"
	sessionContextKey = "console_session"
)

var (
	errUnauthorized    = errors.New("unauthorized")
	errSessionRequired = fmt.Errorf("%w: sign in to continue", errUnauthorized)
	errSessionInvalid  = fmt.Errorf("%w: session is invalid or expired", errUnauthorized)
)

// SessionResolver looks up a console session by id.
type SessionResolver interface {
	Handle(ctx context.Context, query queries.GetSessionQuery) (queries.GetSessionQueryResponse, error)
}

type echoContextKey struct{}

// OpenAPIValidator validates every request against doc. Operations secured by
// bearerAuth are authenticated with sessions: the resolved session is stored
// on the echo context, and its upstream token and operator id on the request
// context. Multipart bodies are read by the handlers and not validated here.
func OpenAPIValidator(doc *openapi3.T, sessions SessionResolver, skipPrefixes ...string) (echo.MiddlewareFunc, error) {
	// Match on paths only; the servers list describes deployments, not hosts to enforce.
	doc.Servers = nil

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	authenticate := sessionAuthenticator(sessions)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			for _, prefix := range skipPrefixes {
				if strings.HasPrefix(req.URL.Path, prefix) {
					return next(c)
				}
			}

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return routeError(c, err)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req.WithContext(context.WithValue(req.Context(), echoContextKey{}, c)),
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: authenticate,
					ExcludeRequestBody: isMultipart(req),
				},
			}

			if err = openapi3filter.ValidateRequest(input.Request.Context(), input); err != nil {
				return validationError(c, err)
			}

			ctx := req.Context()
			if current, ok := currentSession(c); ok {
				ctx = bearer.WithToken(ctx, current.UpstreamToken)
				ctx = bearer.WithActor(ctx, current.Operator.ID)
			}
			// input.Request holds the re-readable body left by validation.
			c.SetRequest(input.Request.WithContext(ctx))

			return next(c)
		}
	}, nil
}

func sessionAuthenticator(sessions SessionResolver) openapi3filter.AuthenticationFunc {
	return func(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
		if input.SecuritySchemeName != bearerSchemeName {
			return fmt.Errorf("security scheme %s is not supported", input.SecuritySchemeName)
		}

		c, ok := ctx.Value(echoContextKey{}).(echo.Context)
		if !ok {
			return errors.New("echo context is missing from the request")
		}

		token, ok := bearer.ParseAuthorization(input.RequestValidationInput.Request.Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errSessionRequired
		}

		id, err := kernel.UUIDFromString(token)
		if err != nil {
			return errSessionInvalid
		}

		query, err := queries.NewGetSessionQuery(id)
		if err != nil {
			return errSessionInvalid
		}

		resp, err := sessions.Handle(ctx, query)
		if err != nil {
			if queries.IsSessionUnavailable(err) {
				return errSessionInvalid
			}
			return err
		}

		c.Set(sessionContextKey, resp)
		return nil
	}
}

func currentSession(c echo.Context) (queries.GetSessionQueryResponse, bool) {
	resp, ok := c.Get(sessionContextKey).(queries.GetSessionQueryResponse)
	return resp, ok
}

func isMultipart(req *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(req.Header.Get(echo.HeaderContentType))
	return err == nil && mediaType == echo.MIMEMultipartForm
}

func routeError(c echo.Context, err error) error {
	// The router returns fresh RouteError values; compare reasons.
	var routeErr *routers.RouteError
	if errors.As(err, &routeErr) && routeErr.Reason == routers.ErrMethodNotAllowed.Error() {
		return writeError(c, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	}
	return writeError(c, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

func validationError(c echo.Context, err error) error {
	var securityErr *openapi3filter.SecurityRequirementsError
	if errors.As(err, &securityErr) {
		for _, cause := range securityErr.Errors {
			if !errors.Is(cause, errUnauthorized) {
				c.Logger().Errorf("session lookup failed: %v", cause)
				return writeError(c, http.StatusInternalServerError, internalErrorMessage)
			}
		}
		message := errSessionRequired.Error()
		if len(securityErr.Errors) > 0 {
			message = securityErr.Errors[0].Error()
		}
		return writeError(c, http.StatusUnauthorized, message)
	}

	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		return writeError(c, http.StatusBadRequest, requestErr.Error())
	}

	return writeError(c, http.StatusBadRequest, err.Error())
}
