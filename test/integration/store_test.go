package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/compoundpro/compound-calculator/internal/calculation"
	"github.com/compoundpro/compound-calculator/internal/config"
	"github.com/compoundpro/compound-calculator/internal/domain"
	"github.com/compoundpro/compound-calculator/internal/store"
	"github.com/compoundpro/compound-calculator/internal/store/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadPlanFrom(t *testing.T, path string) *domain.Configuration {
	t.Helper()
	cfg, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	return cfg
}

func TestSavedScenarioProjectsIdentically(t *testing.T) {
	ctx := context.Background()
	cfg := loadPlan(t, "default_plan.yaml")
	db := filepath.Join(t.TempDir(), "scenarios.db")

	repo, err := sqlite.Open(db, store.Options{})
	require.NoError(t, err)
	saved, err := repo.Add(ctx, "Default plan", *cfg)
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	repo, err = sqlite.Open(db, store.Options{})
	require.NoError(t, err)
	defer func() { _ = repo.Close() }()

	loaded, err := store.Resolve(ctx, repo, "default plan")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, loaded.ID)
	require.NoError(t, config.NewInputParser().ValidateConfiguration(&loaded.Data))

	engine := calculation.NewEngine()
	direct, err := engine.Project(ctx, "direct", *cfg)
	require.NoError(t, err)
	stored, err := engine.Project(ctx, "stored", loaded.Data)
	require.NoError(t, err)
	require.Len(t, stored.Yearly, len(direct.Yearly))
	for i := range direct.Yearly {
		assert.True(t, direct.Yearly[i].TotalAssets.Equal(stored.Yearly[i].TotalAssets), "year %d", i)
	}
	assert.True(t, direct.Summary.FinalPurchasingPower.Equal(stored.Summary.FinalPurchasingPower))
}
