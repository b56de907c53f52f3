package servers

import (
	"fmt"
	"net/http"

	"shift/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Register a driver
	// (POST /api/v1/drivers)
	RegisterDriver(ctx echo.Context) error
	// Driver status and statistics
	// (GET /api/v1/drivers/{name})
	GetDriver(ctx echo.Context, name Name) error
	// Confirm the driver back at the store
	// (POST /api/v1/drivers/{name}/arrive)
	Arrive(ctx echo.Context, name Name) error
	// Confirm the current order delivered
	// (POST /api/v1/drivers/{name}/deliver)
	Deliver(ctx echo.Context, name Name) error
	// Send a driver out with an order
	// (POST /api/v1/drivers/{name}/depart)
	Depart(ctx echo.Context, name Name) error
	// Start a driver's shift
	// (POST /api/v1/drivers/{name}/login)
	Login(ctx echo.Context, name Name) error
	// End a driver's shift
	// (POST /api/v1/drivers/{name}/logout)
	Logout(ctx echo.Context, name Name) error
	// Shift summary over all drivers
	// (GET /api/v1/summary)
	GetSummary(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// RegisterDriver converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterDriver(ctx echo.Context) error {
	return w.Handler.RegisterDriver(ctx)
}

// GetDriver converts echo context to params.
func (w *ServerInterfaceWrapper) GetDriver(ctx echo.Context) error {
	name, err := bindName(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetDriver(ctx, name)
}

// Arrive converts echo context to params.
func (w *ServerInterfaceWrapper) Arrive(ctx echo.Context) error {
	name, err := bindName(ctx)
	if err != nil {
		return err
	}
	return w.Handler.Arrive(ctx, name)
}

// Deliver converts echo context to params.
func (w *ServerInterfaceWrapper) Deliver(ctx echo.Context) error {
	name, err := bindName(ctx)
	if err != nil {
		return err
	}
	return w.Handler.Deliver(ctx, name)
}

// Depart converts echo context to params.
func (w *ServerInterfaceWrapper) Depart(ctx echo.Context) error {
	name, err := bindName(ctx)
	if err != nil {
		return err
	}
	return w.Handler.Depart(ctx, name)
}

// Login converts echo context to params.
func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	name, err := bindName(ctx)
	if err != nil {
		return err
	}
	return w.Handler.Login(ctx, name)
}

// Logout converts echo context to params.
func (w *ServerInterfaceWrapper) Logout(ctx echo.Context) error {
	name, err := bindName(ctx)
	if err != nil {
		return err
	}
	return w.Handler.Logout(ctx, name)
}

// GetSummary converts echo context to params.
func (w *ServerInterfaceWrapper) GetSummary(ctx echo.Context) error {
	return w.Handler.GetSummary(ctx)
}

// bindName decodes the "name" path parameter, unescaping it.
func bindName(ctx echo.Context) (Name, error) {
	var name Name

	err := runtime.BindStyledParameterWithOptions("simple", "name", ctx.Param("name"), &name,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter name: %s", err))
	}
	return name, nil
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/drivers", wrapper.RegisterDriver)
	router.GET(baseURL+"/api/v1/drivers/:name", wrapper.GetDriver)
	router.POST(baseURL+"/api/v1/drivers/:name/arrive", wrapper.Arrive)
	router.POST(baseURL+"/api/v1/drivers/:name/deliver", wrapper.Deliver)
	router.POST(baseURL+"/api/v1/drivers/:name/depart", wrapper.Depart)
	router.POST(baseURL+"/api/v1/drivers/:name/login", wrapper.Login)
	router.POST(baseURL+"/api/v1/drivers/:name/logout", wrapper.Logout)
	router.GET(baseURL+"/api/v1/summary", wrapper.GetSummary)
}

// GetSwagger returns the OpenAPI document the handlers implement.
func GetSwagger() (*openapi3.T, error) {
	swagger, err := openapi3.NewLoader().LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}
	return swagger, nil
}
