package vecpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecpool/parallel"
)

type fakeRuntime struct {
	threads int
}

func (f *fakeRuntime) MaxThreads() int     { return f.threads }
func (f *fakeRuntime) SetMaxThreads(n int) { f.threads = n }

func TestScopedBudget_SetAndRestore(t *testing.T) {
	tests := []struct {
		name  string
		prior int
		n     int
		want  int // budget inside the scope
	}{
		{"Override", 8, 2, 2},
		{"OverrideLarger", 2, 16, 16},
		{"ZeroMeansDefault", 8, 0, 8},
		{"NegativeMeansDefault", 4, -3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry() // no build pool: prior comes from the runtime
			rt := &fakeRuntime{threads: tt.prior}

			guard := r.ScopedBudget(rt, tt.n)
			assert.Equal(t, tt.want, rt.threads)

			guard.Close()
			assert.Equal(t, tt.prior, rt.threads)
		})
	}
}

func TestScopedBudget_PriorFromBuildPool(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.Init(ClassBuild, 6))

	rt := &fakeRuntime{threads: 3}

	guard := r.ScopedBudget(rt, 2)
	assert.Equal(t, 2, rt.threads)

	guard.Close()
	assert.Equal(t, 6, rt.threads) // restored to the build pool size
}

func TestScopedBudget_Nested(t *testing.T) {
	r := newTestRegistry()
	rt := &fakeRuntime{threads: 10}

	outer := r.ScopedBudget(rt, 4)
	assert.Equal(t, 4, rt.threads)

	inner := r.ScopedBudget(rt, 1)
	assert.Equal(t, 1, rt.threads)

	inner.Close()
	assert.Equal(t, 4, rt.threads) // inner observed the outer override as prior

	outer.Close()
	assert.Equal(t, 10, rt.threads)
}

func TestScopedBudget_WithParallelRuntime(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.Init(ClassBuild, 5))

	rt := parallel.Default()
	prior := rt.MaxThreads()
	defer rt.SetMaxThreads(prior)

	guard := r.ScopedBudget(rt, 2)
	assert.Equal(t, 2, parallel.MaxThreads())

	guard.Close()
	assert.Equal(t, 5, parallel.MaxThreads()) // build pool size governs the budget
}

func TestScopedBudget_NoopRuntime(t *testing.T) {
	r := newTestRegistry()

	guard := r.ScopedBudget(NoopRuntime{}, 4)
	guard.Close()

	assert.Equal(t, 0, NoopRuntime{}.MaxThreads())
}
