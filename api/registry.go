package api

import (
	"sync"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"supplysense/core/registry"
)

var mu sync.Mutex

// ModuleFunc mounts an authenticated module on the /api group.
type ModuleFunc func(g *echo.Group, db *gorm.DB)

// RouteFunc mounts public routes on the root instance (graphql, custom).
type RouteFunc func(e *echo.Echo, db *gorm.DB)

func entries[T any](key string) []T {
	if v, ok := registry.GlobalRegistry.GetGlobal(key); ok && v != nil {
		return v.([]T)
	}
	return nil
}

func add[T any](key, what string, fn T) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(key) {
		panic("api/registry: " + what + " locked (register only during init)")
	}
	registry.GlobalRegistry.SetGlobal(key, append(entries[T](key), fn))
}

// RegisterModule adds an /api module. Call from init() in API packages.
func RegisterModule(fn ModuleFunc) {
	add(registry.KeyRegistryAPI, "API modules", fn)
}

// RegisterRoute adds a root-level route set. Call from init().
func RegisterRoute(fn RouteFunc) {
	add(registry.KeyRegistryRoutes, "routes", fn)
}

// RegisterGET registers a single public GET handler.
func RegisterGET(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *gorm.DB) { e.GET(path, handler) })
}

// RegisterPOST registers a single public POST handler.
func RegisterPOST(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *gorm.DB) { e.POST(path, handler) })
}

// ModuleCount reports how many /api modules are registered.
func ModuleCount() int {
	return len(entries[ModuleFunc](registry.KeyRegistryAPI))
}

// ApplyModules mounts every /api module on g and locks module registration.
func ApplyModules(g *echo.Group, db *gorm.DB) {
	registry.GlobalRegistry.Lock(registry.KeyRegistryAPI)
	for _, fn := range entries[ModuleFunc](registry.KeyRegistryAPI) {
		fn(g, db)
	}
}

// ApplyRoutes mounts every root-level route set on e and locks route registration.
func ApplyRoutes(e *echo.Echo, db *gorm.DB) {
	registry.GlobalRegistry.Lock(registry.KeyRegistryRoutes)
	for _, fn := range entries[RouteFunc](registry.KeyRegistryRoutes) {
		fn(e, db)
	}
}
