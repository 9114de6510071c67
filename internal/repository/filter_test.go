package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestPostFilter_Conditions(t *testing.T) {
	t.Run("Пустой фильтр не даёт условий", func(t *testing.T) {
		filter := &PostFilter{}

		conditions, args := filter.Conditions(0, false)

		assert.Empty(t, conditions)
		assert.Empty(t, args)
		assert.True(t, filter.Empty())
	})

	t.Run("Нумерация параметров продолжается после start", func(t *testing.T) {
		filter := &PostFilter{
			TitleLike: strPtr("go"),
			Published: boolPtr(true),
		}

		conditions, args := filter.Conditions(1, false)

		assert.Equal(t, []string{
			"title ILIKE '%' || $2 || '%'",
			"published = $3",
		}, conditions)
		assert.Equal(t, []interface{}{"go", true}, args)
	})

	t.Run("Алиасы таблиц в общем поиске", func(t *testing.T) {
		filter := &PostFilter{
			Search:   strPtr("gopher"),
			Username: strPtr("alice"),
		}

		conditions, args := filter.Conditions(0, true)

		assert.Equal(t, []string{
			"p.content ILIKE '%' || $1 || '%'",
			"u.username = $2",
		}, conditions)
		assert.Equal(t, []interface{}{"gopher", "alice"}, args)
	})

	t.Run("Фильтр по владельцу игнорируется без JOIN", func(t *testing.T) {
		filter := &PostFilter{Username: strPtr("alice")}

		conditions, args := filter.Conditions(0, false)

		assert.Empty(t, conditions)
		assert.Empty(t, args)
	})

	t.Run("Nil-фильтр безопасен", func(t *testing.T) {
		var filter *PostFilter

		conditions, args := filter.Conditions(0, false)

		assert.Nil(t, conditions)
		assert.Nil(t, args)
		assert.True(t, filter.Empty())
		assert.Equal(t, "", filter.OrderClause(false))
	})
}

func TestPostFilter_OrderClause(t *testing.T) {
	t.Run("Несколько полей с направлением", func(t *testing.T) {
		filter := &PostFilter{OrderBy: []string{"-created_at", "title"}}

		assert.Equal(t, " ORDER BY created_at DESC, title", filter.OrderClause(false))
	})

	t.Run("Неизвестные поля пропускаются", func(t *testing.T) {
		filter := &PostFilter{OrderBy: []string{"hashed_password", "id"}}

		assert.Equal(t, " ORDER BY id", filter.OrderClause(false))
	})

	t.Run("Только неизвестные поля", func(t *testing.T) {
		filter := &PostFilter{OrderBy: []string{"; DROP TABLE posts"}}

		assert.Equal(t, "", filter.OrderClause(false))
	})

	t.Run("Алиас p в общем поиске", func(t *testing.T) {
		filter := &PostFilter{OrderBy: []string{"-published"}}

		assert.Equal(t, " ORDER BY p.published DESC", filter.OrderClause(true))
	})
}

func TestPostFilter_CacheKey(t *testing.T) {
	t.Run("Пустой фильтр", func(t *testing.T) {
		assert.Equal(t, "all", (&PostFilter{}).CacheKey())

		var filter *PostFilter
		assert.Equal(t, "all", filter.CacheKey())
	})

	t.Run("Разные фильтры дают разные ключи", func(t *testing.T) {
		first := &PostFilter{TitleLike: strPtr("go"), Published: boolPtr(true)}
		second := &PostFilter{TitleLike: strPtr("go"), Published: boolPtr(false)}

		assert.NotEqual(t, first.CacheKey(), second.CacheKey())
	})

	t.Run("Ключ детерминирован", func(t *testing.T) {
		filter := &PostFilter{Search: strPtr("gopher"), OrderBy: []string{"-created_at"}}

		assert.Equal(t, filter.CacheKey(), filter.CacheKey())
	})
}
