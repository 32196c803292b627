package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
)

func newDirectoryFixture(t *testing.T) (*DirectoryService, *repository.MemoryDirectoryRepository) {
	t.Helper()
	repo := repository.NewMemoryDirectoryRepository()
	repo.AddEntity(&models.DirectoryEntity{ID: "ent-1", CompanyID: "c1", Name: "Main Clinic"})
	return NewDirectoryService(repo), repo
}

func TestDirectoryServiceAggregate(t *testing.T) {
	ctx := context.Background()

	t.Run("entries land in their group bucket in order", func(t *testing.T) {
		svc, _ := newDirectoryFixture(t)

		for _, in := range []CreateEntryInput{
			{EntityID: "ent-1", Group: models.DirectoryGroupCorporate, Department: "Billing", Phone: "555-0100"},
			{EntityID: "ent-1", Group: models.DirectoryGroupFrontDesk, Employee: "Dana Reyes", Extension: "12"},
			{EntityID: "ent-1", Group: models.DirectoryGroupCorporate, Department: "HR", Phone: "555-0101"},
			{EntityID: "ent-1", Group: models.DirectoryGroupOffices, Location: "Suite 200", Phone: "555-0102"},
		} {
			_, err := svc.CreateEntry(ctx, in)
			require.NoError(t, err)
		}

		views, err := svc.Aggregate(ctx, "c1")
		require.NoError(t, err)
		require.Len(t, views, 1)

		view := views[0]
		assert.Equal(t, "Main Clinic", view.Entity.Name)
		require.Len(t, view.Corporate, 2)
		assert.Equal(t, "Billing", view.Corporate[0].Department)
		assert.Equal(t, "HR", view.Corporate[1].Department)
		require.Len(t, view.FrontDesk, 1)
		assert.Equal(t, "Dana Reyes", view.FrontDesk[0].Employee)
		require.Len(t, view.Offices, 1)
		assert.Equal(t, "Suite 200", view.Offices[0].Location)
	})

	t.Run("entities with no entries yield empty buckets", func(t *testing.T) {
		svc, _ := newDirectoryFixture(t)

		views, err := svc.Aggregate(ctx, "c1")
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Empty(t, views[0].Corporate)
		assert.Empty(t, views[0].FrontDesk)
		assert.Empty(t, views[0].Offices)
	})
}

func TestDirectoryServiceEntries(t *testing.T) {
	ctx := context.Background()

	t.Run("create rejects unknown groups", func(t *testing.T) {
		svc, _ := newDirectoryFixture(t)

		_, err := svc.CreateEntry(ctx, CreateEntryInput{EntityID: "ent-1", Group: "warehouse"})
		assert.True(t, models.IsValidation(err))
	})

	t.Run("new entries append at the end of their group", func(t *testing.T) {
		svc, _ := newDirectoryFixture(t)

		first, err := svc.CreateEntry(ctx, CreateEntryInput{EntityID: "ent-1", Group: models.DirectoryGroupOffices, Location: "Suite 100"})
		require.NoError(t, err)
		second, err := svc.CreateEntry(ctx, CreateEntryInput{EntityID: "ent-1", Group: models.DirectoryGroupOffices, Location: "Suite 200"})
		require.NoError(t, err)

		assert.Equal(t, 0, first.Order)
		assert.Equal(t, 1, second.Order)
	})

	t.Run("update edits fields but never the group", func(t *testing.T) {
		svc, _ := newDirectoryFixture(t)
		entry, err := svc.CreateEntry(ctx, CreateEntryInput{EntityID: "ent-1", Group: models.DirectoryGroupFrontDesk, Employee: "Dana Reyes"})
		require.NoError(t, err)

		phone := "555-0199"
		updated, err := svc.UpdateEntry(ctx, "ent-1", entry.ID, UpdateEntryInput{Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, "555-0199", updated.Phone)
		assert.Equal(t, models.DirectoryGroupFrontDesk, updated.Group)
	})

	t.Run("reorder rewrites the display sequence", func(t *testing.T) {
		svc, _ := newDirectoryFixture(t)
		a, err := svc.CreateEntry(ctx, CreateEntryInput{EntityID: "ent-1", Group: models.DirectoryGroupCorporate, Department: "Billing"})
		require.NoError(t, err)
		b, err := svc.CreateEntry(ctx, CreateEntryInput{EntityID: "ent-1", Group: models.DirectoryGroupCorporate, Department: "HR"})
		require.NoError(t, err)

		require.NoError(t, svc.ReorderEntries(ctx, "ent-1", models.DirectoryGroupCorporate, []string{b.ID, a.ID}))

		views, err := svc.Aggregate(ctx, "c1")
		require.NoError(t, err)
		require.Len(t, views[0].Corporate, 2)
		assert.Equal(t, "HR", views[0].Corporate[0].Department)
		assert.Equal(t, "Billing", views[0].Corporate[1].Department)
	})

	t.Run("reorder rejects unknown groups", func(t *testing.T) {
		svc, _ := newDirectoryFixture(t)

		err := svc.ReorderEntries(ctx, "ent-1", "warehouse", []string{"x"})
		assert.True(t, models.IsValidation(err))
	})
}
