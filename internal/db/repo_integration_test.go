//go:build integration

package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The integration suite needs the docker-compose test database from
// docker-compose.test.yml on localhost:5433.
func setupRepo(t *testing.T) *Repository {
	t.Helper()

	database, err := SetupTestDB()
	require.NoError(t, err, "test database must be reachable at %s", TestDBURL)
	t.Cleanup(func() { _ = database.Close() })

	return New(database)
}

func TestRepositoryUsers(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	t.Run("ListsOrderedByName", func(t *testing.T) {
		users, total, err := repo.Users(ctx, "", "", 10, 0)
		require.NoError(t, err)

		assert.Equal(t, 4, total)
		require.Len(t, users, 4)
		assert.Equal(t, "Andi Wijaya", users[0].Name)
		assert.Equal(t, "Dewi Anggraini", users[3].Name)
	})

	t.Run("SubstringFilterMatchesNameOrEmail", func(t *testing.T) {
		users, total, err := repo.Users(ctx, "CITRA", "", 10, 0)
		require.NoError(t, err)

		assert.Equal(t, 1, total)
		require.Len(t, users, 1)
		assert.Equal(t, "citra@warta.test", users[0].Email)
	})

	t.Run("RoleFilterIsExact", func(t *testing.T) {
		_, total, err := repo.Users(ctx, "", "USER", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)

		_, total, err = repo.Users(ctx, "", "user", 10, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("Paginates", func(t *testing.T) {
		users, total, err := repo.Users(ctx, "", "", 2, 2)
		require.NoError(t, err)

		assert.Equal(t, 4, total)
		require.Len(t, users, 2)
		assert.Equal(t, "Citra Lestari", users[0].Name)
	})

	t.Run("UpdateRoleAndReload", func(t *testing.T) {
		users, _, err := repo.Users(ctx, "citra", "", 1, 0)
		require.NoError(t, err)
		require.Len(t, users, 1)

		updated, err := repo.UpdateUserRole(ctx, users[0].ID, "EDITOR")
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "EDITOR", updated.Role)
		assert.Equal(t, users[0].Email, updated.Email)
	})

	t.Run("UpdateMissingUserReturnsNil", func(t *testing.T) {
		updated, err := repo.UpdateUserRole(ctx, "00000000-0000-0000-0000-000000000000", "ADMIN")
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("DeleteReportsAffectedRows", func(t *testing.T) {
		users, _, err := repo.Users(ctx, "dewi", "", 1, 0)
		require.NoError(t, err)
		require.Len(t, users, 1)

		deleted, err := repo.DeleteUser(ctx, users[0].ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.DeleteUser(ctx, users[0].ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestRepositoryCategories(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	t.Run("ListsOrderedByName", func(t *testing.T) {
		categories, err := repo.Categories(ctx)
		require.NoError(t, err)

		require.Len(t, categories, 3)
		assert.Equal(t, "olahraga", categories[0].Name)
		assert.Equal(t, "teknologi", categories[2].Name)
	})

	t.Run("BySlug", func(t *testing.T) {
		category, err := repo.CategoryBySlug(ctx, "teknologi")
		require.NoError(t, err)
		require.NotNil(t, category)
		assert.Equal(t, "teknologi", category.Name)

		missing, err := repo.CategoryBySlug(ctx, "tidak-ada")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("InsertAndDelete", func(t *testing.T) {
		category := &Category{ID: "cat-hiburan", Name: "hiburan", Slug: "hiburan"}
		require.NoError(t, repo.InsertCategory(ctx, category))

		loaded, err := repo.CategoryBySlug(ctx, "hiburan")
		require.NoError(t, err)
		require.NotNil(t, loaded)

		deleted, err := repo.DeleteCategory(ctx, category.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.DeleteCategory(ctx, category.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestRepositoryBreakingNews(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	t.Run("ListsNewestFirstWithPostRelation", func(t *testing.T) {
		items, err := repo.BreakingNews(ctx)
		require.NoError(t, err)

		require.Len(t, items, 2)
		assert.Equal(t, "Pendaftaran lomba menulis dibuka", items[0].Text)
		assert.Equal(t, "Satelit Nusantara berhasil mengorbit", items[1].Text)
		require.NotNil(t, items[1].Post)
		assert.Equal(t, "peluncuran-satelit-nusantara", items[1].Post.Slug)
	})

	t.Run("PartialColumnUpdate", func(t *testing.T) {
		items, err := repo.BreakingNews(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, items)

		item := items[1]
		originalText := item.Text
		item.IsActive = false
		item.Text = "should not be written"

		require.NoError(t, repo.UpdateBreakingNews(ctx, &item,
			[]string{Columns.BreakingNews.IsActive}))

		reloaded, err := repo.BreakingNewsByID(ctx, item.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded)
		assert.False(t, reloaded.IsActive)
		assert.Equal(t, originalText, reloaded.Text)
	})

	t.Run("MissingBannerReturnsNil", func(t *testing.T) {
		item, err := repo.BreakingNewsByID(ctx, "00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("DeleteReportsAffectedRows", func(t *testing.T) {
		items, err := repo.BreakingNews(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, items)

		deleted, err := repo.DeleteBreakingNews(ctx, items[0].ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.DeleteBreakingNews(ctx, items[0].ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestRepositoryPosts(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	post, err := repo.PostByID(ctx, "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Nil(t, post)
}
