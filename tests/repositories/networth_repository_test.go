package repositories_test

import (
	"context"
	"testing"
	"time"

	"tracker/src/models"
	"tracker/src/repositories"
	"tracker/tests/init_test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetWorthRepository(t *testing.T) {
	db := init_test.SetupTestDB(t)
	defer init_test.TruncateTables(t, db)

	repo := repositories.NewNetWorthRepository(db)
	ctx := context.Background()

	t.Run("Upsert keeps one snapshot per date", func(t *testing.T) {
		today := time.Now()

		first := &models.NetWorth{Total: 1000.00, Date: today}
		require.NoError(t, repo.Upsert(ctx, first))
		require.NotZero(t, first.ID)

		second := &models.NetWorth{Total: 1100.00, Date: today}
		require.NoError(t, repo.Upsert(ctx, second))

		snapshots, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, snapshots, 1)
		assert.Equal(t, 1100.00, snapshots[0].Total)
	})

	t.Run("GetAll returns snapshots ordered by date", func(t *testing.T) {
		yesterday := &models.NetWorth{Total: 900.00, Date: time.Now().AddDate(0, 0, -1)}
		require.NoError(t, repo.Upsert(ctx, yesterday))

		snapshots, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, snapshots, 2)
		assert.Equal(t, 900.00, snapshots[0].Total)
		assert.Equal(t, 1100.00, snapshots[1].Total)
	})
}
