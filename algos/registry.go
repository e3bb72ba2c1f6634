package algos

import (
	"io"
	"math/rand"
	"strings"

	"go-algos/bloom"
	"go-algos/sorting"

	"github.com/huandu/skiplist"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var ErrUnknownAlgorithm = errors.New("algos: unknown algorithm")

// Context carries what a runner may need. Runners ignore fields they do not use.
type Context struct {
	Out    io.Writer
	Logger zerolog.Logger
	Bloom  bloom.DemoConfig
	Items  int32
	Max    int32
	Rand   *rand.Rand
}

type Runner func(ctx Context) error

// Registry keeps runners ordered by name.
type Registry struct {
	runners *skiplist.SkipList
}

func NewRegistry() *Registry {
	return &Registry{runners: skiplist.New(skiplist.String)}
}

// Default registers bloom_filter, bubblesort and quicksort.
func Default() *Registry {
	registry := NewRegistry()
	registry.Register("bloom_filter", func(ctx Context) error {
		return bloom.RunDemo(ctx.Out, ctx.Bloom, bloom.WithLogger(ctx.Logger))
	})
	for _, name := range []string{"bubblesort", "quicksort"} {
		registry.Register(name, sortRunner(name))
	}
	return registry
}

func sortRunner(name string) Runner {
	return func(ctx Context) error {
		return sorting.Run(name, ctx.Items, ctx.Max, ctx.Rand, ctx.Out)
	}
}

// Register adds or replaces a runner.
func (registry *Registry) Register(name string, runner Runner) {
	registry.runners.Set(name, runner)
}

func (registry *Registry) Names() []string {
	names := make([]string, 0, registry.runners.Len())
	for elem := registry.runners.Front(); elem != nil; elem = elem.Next() {
		names = append(names, elem.Key().(string))
	}
	return names
}

func (registry *Registry) Run(name string, ctx Context) error {
	elem := registry.runners.Get(name)
	if elem == nil {
		return errors.Wrapf(ErrUnknownAlgorithm, "%q, options include: %s", name, strings.Join(registry.Names(), ", "))
	}
	return elem.Value.(Runner)(ctx)
}
