package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned when no preset matches a requested name.
var ErrUnknownScene = errors.New("scene: unknown scene name")

var builders = map[string]func() *Scene{
	"default":    NewDefaultScene,
	"turbulence": NewTurbulenceScene,
}

// List returns the available preset names, sorted.
func List() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates a preset scene by name.
func New(name string) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return builder(), nil
}
