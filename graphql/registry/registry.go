package registry

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/mitchellh/mapstructure"

	"supplysense/core/registry"
)

// ResolverFunc resolves one _extension call. args is the decoded JSON args string.
type ResolverFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// ErrUnknownExtension is returned by Resolve for names nobody registered.
var ErrUnknownExtension = errors.New("unknown extension")

var (
	mu       sync.Mutex
	lockOnce sync.Once
)

func getEntries() map[string]ResolverFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryGraphQL); ok && v != nil {
		return v.(map[string]ResolverFunc)
	}
	return map[string]ResolverFunc{}
}

func update(fn func(map[string]ResolverFunc)) {
	entries := getEntries()
	fn(entries)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryGraphQL, entries)
}

// Register adds an extension from init(). Duplicates and late registration panic.
func Register(name string, resolve ResolverFunc) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryGraphQL) {
		panic("graphql/registry: locked (register only during init before first request)")
	}
	update(func(entries map[string]ResolverFunc) {
		if _, dup := entries[name]; dup {
			panic("graphql/registry: duplicate " + name)
		}
		entries[name] = resolve
	})
}

// Unregister removes an extension and reopens the registry. Tests only.
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryGraphQL)
	update(func(entries map[string]ResolverFunc) { delete(entries, name) })
}

// Resolve runs the extension called name. The first call freezes the registry.
func Resolve(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	lockOnce.Do(func() { registry.GlobalRegistry.Lock(registry.KeyRegistryGraphQL) })
	resolve, ok := getEntries()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownExtension, name)
	}
	return resolve(ctx, args)
}

// Names returns all registered names.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()
	entries := getEntries()
	names := make([]string, 0, len(entries))
	for n := range entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func numberToStringHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.String {
			return data, nil
		}
		switch f.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return fmt.Sprint(data), nil
		}
		return data, nil
	}
}

// DecodeArgs decodes extension args into out (a pointer to struct) using
// `mapstructure` tags. JSON numbers and strings convert into each other.
func DecodeArgs(args map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       numberToStringHook(),
		Result:           out,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("extension args: %w", err)
	}
	return nil
}
