package auth

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"supplysense/config"
	entity "supplysense/model/entity"
	authRepo "supplysense/model/repository/auth"
)

// Context keys set by the auth middleware.
const (
	KeyAuthType     = "auth_type"
	KeyAPIToken     = "api_token"
	KeyRoleName     = "role_name"
	KeyACLResources = "acl_resources"
)

// ACL resources guarded by RequireResource.
const (
	ResourceAll        = "all"
	ResourceBalance    = "balance"
	ResourceFulfilment = "fulfilment"
	ResourceActions    = "actions"
	ResourceInsight    = "insight"
	ResourceOrders     = "orders"
	ResourceInventory  = "inventory"
	ResourceParams     = "params"
)

// RoleResources maps token roles to the resources they may use.
var RoleResources = map[string][]string{
	"admin":     {ResourceAll},
	"planner":   {ResourceBalance, ResourceFulfilment, ResourceActions, ResourceInsight, ResourceOrders, ResourceInventory, ResourceParams},
	"warehouse": {ResourceBalance, ResourceFulfilment, ResourceOrders, ResourceInventory},
	"supplier":  {ResourceBalance, ResourceFulfilment},
}

// Middleware returns the auth middleware based on AUTH_TYPE env var.
func Middleware(db *gorm.DB) echo.MiddlewareFunc {
	skipper := buildSkipper()
	authType := os.Getenv("AUTH_TYPE")
	switch authType {
	case "key":
		return keyAuth(skipper)
	case "token":
		return tokenAuth(authRepo.NewAuthRepository(db), skipper)
	default:
		return basicAuth(skipper)
	}
}

func buildSkipper() middleware.Skipper {
	skipPaths := config.GetAuthSkipperPaths()
	return func(c echo.Context) bool {
		path := c.Path()
		for _, skip := range skipPaths {
			if path == skip {
				return true
			}
		}
		return false
	}
}

func basicAuth(skipper middleware.Skipper) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Validator: func(username, password string, c echo.Context) (bool, error) {
			c.Set(KeyAuthType, "basic")
			return username == os.Getenv("API_USER") && password == os.Getenv("API_PASS"), nil
		},
		Skipper: skipper,
	})
}

func keyAuth(skipper middleware.Skipper) echo.MiddlewareFunc {
	apiKey := os.Getenv("API_KEY")
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Validator: func(key string, c echo.Context) (bool, error) {
			c.Set(KeyAuthType, "key")
			return apiKey != "" && key == apiKey, nil
		},
		Skipper: skipper,
	})
}

func tokenAuth(repo *authRepo.AuthRepository, skipper middleware.Skipper) echo.MiddlewareFunc {
	staticKey := os.Getenv("API_KEY")
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Validator: func(token string, c echo.Context) (bool, error) {
			if staticKey != "" && token == staticKey {
				c.Set(KeyAuthType, "static")
				return true, nil
			}
			apiToken, err := repo.FindActiveToken(token)
			if err != nil {
				return false, nil
			}
			c.Set(KeyAuthType, "token")
			c.Set(KeyAPIToken, apiToken)
			loadACL(c, apiToken)
			return true, nil
		},
		Skipper: skipper,
	})
}

// loadACL resolves the token's role into the request context.
func loadACL(c echo.Context, token *entity.APIToken) {
	c.Set(KeyRoleName, token.Role)
	c.Set(KeyACLResources, RoleResources[token.Role])
}

// Allowed reports whether the authenticated caller may use resource.
// Only token auth carries an ACL; the other schemes grant full access.
func Allowed(c echo.Context, resource string) bool {
	if c.Get(KeyAuthType) != "token" {
		return true
	}
	resources, _ := c.Get(KeyACLResources).([]string)
	for _, r := range resources {
		if r == ResourceAll || r == resource {
			return true
		}
	}
	return false
}

// RequireResource rejects token callers whose role lacks resource.
func RequireResource(resource string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !Allowed(c, resource) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "access to " + resource + " denied"})
			}
			return next(c)
		}
	}
}
