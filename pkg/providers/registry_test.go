package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct{ name string }

func (f *fakeClient) Provider() string { return f.name }

func fakeFactory(name string) Factory {
	return func(_ context.Context, _ Overrides) (Client, error) {
		return &fakeClient{name: name}, nil
	}
}

func TestRegistryRegister(t *testing.T) {
	t.Run("rejects duplicate service_type and name", func(t *testing.T) {
		r := NewRegistry()
		reg := Registration{ServiceType: ServiceASR, Name: "alpha", Factory: fakeFactory("alpha")}

		require.NoError(t, r.Register(reg))
		err := r.Register(reg)
		require.ErrorIs(t, err, ErrDuplicateRegistration)
	})

	t.Run("same name under different service types is allowed", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(Registration{ServiceType: ServiceASR, Name: "alpha", Factory: fakeFactory("alpha")}))
		require.NoError(t, r.Register(Registration{ServiceType: ServiceLLM, Name: "alpha", Factory: fakeFactory("alpha")}))
		assert.Equal(t, 2, r.Len())
	})

	t.Run("rejects missing factory", func(t *testing.T) {
		r := NewRegistry()
		err := r.Register(Registration{ServiceType: ServiceASR, Name: "alpha"})
		require.Error(t, err)
	})
}

func TestRegistryDiscover(t *testing.T) {
	t.Run("filters by configured credentials", func(t *testing.T) {
		t.Setenv("TEST_ALPHA_KEY", "secret")

		r := NewRegistry()
		require.NoError(t, r.Register(Registration{
			ServiceType:   ServiceASR,
			Name:          "alpha",
			CredentialEnv: []string{"TEST_ALPHA_KEY"},
			Factory:       fakeFactory("alpha"),
		}))
		require.NoError(t, r.Register(Registration{
			ServiceType:   ServiceASR,
			Name:          "beta",
			CredentialEnv: []string{"TEST_BETA_KEY_UNSET"},
			Factory:       fakeFactory("beta"),
		}))

		found := r.Discover(ServiceASR)
		require.Len(t, found, 1)
		assert.Equal(t, "alpha", found[0].Name)
	})

	t.Run("sorted by provider name", func(t *testing.T) {
		r := NewRegistry()
		for _, name := range []string{"zeta", "alpha", "mid"} {
			require.NoError(t, r.Register(Registration{
				ServiceType: ServiceLLM,
				Name:        name,
				Factory:     fakeFactory(name),
			}))
		}

		found := r.Discover(ServiceLLM)
		require.Len(t, found, 3)
		assert.Equal(t, []string{"alpha", "mid", "zeta"},
			[]string{found[0].Name, found[1].Name, found[2].Name})
	})
}

func TestRegistryInstantiate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown provider", func(t *testing.T) {
		r := NewRegistry()
		_, err := r.Instantiate(ctx, ServiceASR, "ghost", Overrides{})
		require.ErrorIs(t, err, ErrNotRegistered)
	})

	t.Run("multi-model LLM without default requires model_id", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(Registration{
			ServiceType: ServiceLLM,
			Name:        "multi",
			Metadata:    Metadata{Models: []string{"m-small", "m-large"}},
			Factory:     fakeFactory("multi"),
		}))

		_, err := r.Instantiate(ctx, ServiceLLM, "multi", Overrides{})
		require.Error(t, err)
		assert.Equal(t, KindConfig, KindOf(err))

		client, err := r.Instantiate(ctx, ServiceLLM, "multi", Overrides{ModelID: "m-small"})
		require.NoError(t, err)
		assert.Equal(t, "multi", client.Provider())
	})

	t.Run("default model fills missing model_id", func(t *testing.T) {
		r := NewRegistry()
		var gotModel string
		require.NoError(t, r.Register(Registration{
			ServiceType: ServiceLLM,
			Name:        "defaulted",
			Metadata:    Metadata{Models: []string{"m1", "m2"}, DefaultModel: "m1"},
			Factory: func(_ context.Context, o Overrides) (Client, error) {
				gotModel = o.ModelID
				return &fakeClient{name: "defaulted"}, nil
			},
		}))

		_, err := r.Instantiate(ctx, ServiceLLM, "defaulted", Overrides{})
		require.NoError(t, err)
		assert.Equal(t, "m1", gotModel)
	})
}
