//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"pet-scheduler/internal/domain/service"
	"pet-scheduler/internal/pkg/clock"
	"pet-scheduler/internal/pkg/errs"
	"pet-scheduler/internal/usecase/commands"
	"pet-scheduler/internal/usecase/queries"
	"pet-scheduler/tests/common/fakestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	store *fakestore.Store
	clock *clock.MockClock
	cmds  commands.CatalogCommands
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	clk := clock.NewMockClock(baseNow)
	store := fakestore.New(baseNow,
		service.ReconstructService(1, "Banho e Tosa", 9000, 60, true, baseNow, baseNow),
		service.ReconstructService(2, "Tosa Higiênica", 4000, 30, true, baseNow, baseNow),
	)
	catalog := queries.NewCatalogQueries(store.ServiceReads(), store.ResourceReads(), store.PetReads())
	return &catalogFixture{store: store, clock: clk, cmds: commands.NewCatalogCommands(store, catalog, clk)}
}

func TestCatalogCommands_CreateService(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a trimmed active service", func(t *testing.T) {
		f := newCatalogFixture(t)

		v, err := f.cmds.CreateService(ctx, commands.CreateServiceInput{Name: "  Hidratação ", PriceCents: 5500, DurationMinutes: 40})
		require.NoError(t, err)

		assert.NotZero(t, v.ID)
		assert.Equal(t, "Hidratação", v.Name)
		assert.Equal(t, int64(5500), v.PriceCents)
		assert.Equal(t, 40, v.DurationMinutes)
		assert.True(t, v.Active)
		assert.Equal(t, baseNow, v.CreatedAt)
	})

	t.Run("invalid input never reaches the store", func(t *testing.T) {
		cases := []struct {
			name string
			in   commands.CreateServiceInput
		}{
			{"short name", commands.CreateServiceInput{Name: "B", PriceCents: 100, DurationMinutes: 30}},
			{"negative price", commands.CreateServiceInput{Name: "Banho", PriceCents: -1, DurationMinutes: 30}},
			{"zero duration", commands.CreateServiceInput{Name: "Banho", PriceCents: 100}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newCatalogFixture(t)
				_, err := f.cmds.CreateService(ctx, tc.in)
				assert.True(t, errs.Is(err, errs.ErrInvalidInput), "got %v", err)
			})
		}
	})

	t.Run("a taken name is reported", func(t *testing.T) {
		f := newCatalogFixture(t)

		_, err := f.cmds.CreateService(ctx, commands.CreateServiceInput{Name: "Banho e Tosa", PriceCents: 100, DurationMinutes: 30})
		assert.True(t, errs.Is(err, errs.ErrServiceNameTaken), "got %v", err)
	})
}

func TestCatalogCommands_UpdateService(t *testing.T) {
	ctx := context.Background()

	t.Run("only the given fields change", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.clock.Add(time.Hour)

		duration := 75
		active := false
		v, err := f.cmds.UpdateService(ctx, 1, service.Patch{DurationMinutes: &duration, Active: &active})
		require.NoError(t, err)

		assert.Equal(t, "Banho e Tosa", v.Name)
		assert.Equal(t, int64(9000), v.PriceCents)
		assert.Equal(t, 75, v.DurationMinutes)
		assert.False(t, v.Active)
		assert.Equal(t, baseNow.Add(time.Hour), v.UpdatedAt)
	})

	t.Run("a patch repeating current values writes nothing", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.clock.Add(time.Hour)

		name := "Banho e Tosa"
		v, err := f.cmds.UpdateService(ctx, 1, service.Patch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, baseNow, v.UpdatedAt)
	})

	t.Run("errors", func(t *testing.T) {
		cases := []struct {
			name  string
			id    int64
			patch service.Patch
			errIs error
		}{
			{"unknown service", 99, service.Patch{}, errs.ErrServiceNotFound},
			{"renamed onto another service", 1, service.Patch{Name: ptrTo("Tosa Higiênica")}, errs.ErrServiceNameTaken},
			{"invalid duration", 1, service.Patch{DurationMinutes: ptrTo(0)}, errs.ErrInvalidInput},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newCatalogFixture(t)
				_, err := f.cmds.UpdateService(ctx, tc.id, tc.patch)
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				if svc := f.store.Service(1); svc != nil {
					assert.Equal(t, "Banho e Tosa", svc.Name())
					assert.Equal(t, 60, svc.DurationMinutes())
				}
			})
		}
	})
}

func TestCatalogCommands_CreatePet(t *testing.T) {
	ctx := context.Background()

	t.Run("stores details and the birth date", func(t *testing.T) {
		f := newCatalogFixture(t)
		photo := "https://example.com/rex.jpg"
		birth := "2020-03-01"

		v, err := f.cmds.CreatePet(ctx, commands.CreatePetInput{
			Name:      "Rex",
			Breed:     "Labrador",
			OwnerName: "Maria Silva",
			Phone:     "11999990000",
			PhotoURL:  &photo,
			BirthDate: &birth,
		})
		require.NoError(t, err)

		assert.NotZero(t, v.ID)
		assert.Equal(t, "Rex", v.Name)
		assert.Equal(t, &photo, v.PhotoURL)
		require.NotNil(t, v.BirthDate)
		assert.Equal(t, time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), *v.BirthDate)
	})

	t.Run("errors", func(t *testing.T) {
		valid := func() commands.CreatePetInput {
			return commands.CreatePetInput{Name: "Rex", Breed: "Labrador", OwnerName: "Maria", Phone: "11999990000"}
		}
		cases := []struct {
			name   string
			mutate func(*commands.CreatePetInput)
			errIs  error
		}{
			{"missing breed", func(in *commands.CreatePetInput) { in.Breed = "" }, errs.ErrInvalidInput},
			{"short phone", func(in *commands.CreatePetInput) { in.Phone = "123" }, errs.ErrInvalidInput},
			{"relative photo url", func(in *commands.CreatePetInput) { in.PhotoURL = ptrTo("rex.jpg") }, errs.ErrInvalidInput},
			{"malformed birth date", func(in *commands.CreatePetInput) { in.BirthDate = ptrTo("01/03/2020") }, errs.ErrInvalidTime},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newCatalogFixture(t)
				in := valid()
				tc.mutate(&in)

				_, err := f.cmds.CreatePet(ctx, in)
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				pets, _ := f.store.PetReads().FindAll(ctx)
				assert.Empty(t, pets)
			})
		}
	})
}

func TestCatalogCommands_CreateResource(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture(t)

	v, err := f.cmds.CreateResource(ctx, "Mesa 2")
	require.NoError(t, err)
	assert.Equal(t, "Mesa 2", v.Name)

	all, err := f.store.ResourceReads().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = f.cmds.CreateResource(ctx, "")
	assert.True(t, errs.Is(err, errs.ErrInvalidInput), "got %v", err)
}

func ptrTo[T any](v T) *T { return &v }
