package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCollector struct {
	kind  Kind
	label string
}

func (c *stubCollector) Kind() Kind    { return c.kind }
func (c *stubCollector) Label() string { return c.label }
func (c *stubCollector) Collect(ctx context.Context, scope string) (ResourceCount, error) {
	return ResourceCount{Kind: c.kind, Scope: scope, Count: 1}, nil
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry("aws")
	r.Register(&stubCollector{kind: "ec2", label: "EC2 Instances"})
	r.Register(&stubCollector{kind: "lambda", label: "Lambda Functions"})
	r.Register(&stubCollector{kind: "eks", label: "EKS Nodes"})
	return r
}

func TestRegistryGet(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name       string
		identifier string
		wantKind   Kind
		wantErr    bool
	}{
		{name: "by kind", identifier: "ec2", wantKind: "ec2"},
		{name: "by kind case-insensitive", identifier: "EC2", wantKind: "ec2"},
		{name: "by label", identifier: "Lambda Functions", wantKind: "lambda"},
		{name: "unknown", identifier: "fargate", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := r.Get(tt.identifier)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, c.Kind())
		})
	}
}

func TestRegistryRegisterDuplicatePanics(t *testing.T) {
	r := newTestRegistry(t)
	assert.Panics(t, func() {
		r.Register(&stubCollector{kind: "ec2", label: "dup"})
	})
}

func TestRegistryKindsSorted(t *testing.T) {
	r := newTestRegistry(t)
	assert.Equal(t, []Kind{"ec2", "eks", "lambda"}, r.Kinds())
}

func TestRegistrySelect(t *testing.T) {
	r := newTestRegistry(t)

	t.Run("empty filter selects all", func(t *testing.T) {
		collectors, err := r.Select("")
		require.NoError(t, err)
		assert.Len(t, collectors, 3)
	})

	t.Run("filter narrows selection", func(t *testing.T) {
		collectors, err := r.Select("ec2, lambda")
		require.NoError(t, err)
		require.Len(t, collectors, 2)
		assert.Equal(t, Kind("ec2"), collectors[0].Kind())
		assert.Equal(t, Kind("lambda"), collectors[1].Kind())
	})

	t.Run("unknown name errors", func(t *testing.T) {
		_, err := r.Select("ec2,fargate")
		assert.Error(t, err)
	})
}
