package repository

import (
	"fmt"
	"strings"
)

// PostFilter — типизированный набор критериев выборки постов.
// Пустой фильтр не меняет запрос: коллекция возвращается как есть.
type PostFilter struct {
	TitleLike *string  // title содержит подстроку
	Published *bool    // точное совпадение
	Search    *string  // поиск по content
	Username  *string  // username владельца, только для общего поиска
	OrderBy   []string // имена полей, префикс "-" — по убыванию
}

// allowed sort fields -> столбцы
var sortColumns = map[string]string{
	"id":         "id",
	"title":      "title",
	"published":  "published",
	"created_at": "created_at",
}

func (f *PostFilter) Empty() bool {
	if f == nil {
		return true
	}
	return f.TitleLike == nil && f.Published == nil && f.Search == nil &&
		f.Username == nil && len(f.OrderBy) == 0
}

// Conditions строит SQL-условия с позиционными параметрами, начиная с $start+1.
// prefixed включает алиасы p/u для запроса с JOIN users.
func (f *PostFilter) Conditions(start int, prefixed bool) ([]string, []interface{}) {
	if f == nil {
		return nil, nil
	}

	col := func(name string) string {
		if prefixed {
			return "p." + name
		}
		return name
	}

	var conditions []string
	var args []interface{}

	next := func() int { return start + len(args) + 1 }

	if f.TitleLike != nil {
		conditions = append(conditions, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", col("title"), next()))
		args = append(args, *f.TitleLike)
	}

	if f.Published != nil {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col("published"), next()))
		args = append(args, *f.Published)
	}

	if f.Search != nil {
		conditions = append(conditions, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", col("content"), next()))
		args = append(args, *f.Search)
	}

	if f.Username != nil && prefixed {
		conditions = append(conditions, fmt.Sprintf("u.username = $%d", next()))
		args = append(args, *f.Username)
	}

	return conditions, args
}

// OrderClause строит ORDER BY по разрешённым полям, неизвестные поля пропускаются.
func (f *PostFilter) OrderClause(prefixed bool) string {
	if f == nil || len(f.OrderBy) == 0 {
		return ""
	}

	var parts []string
	for _, field := range f.OrderBy {
		field = strings.TrimSpace(field)
		desc := strings.HasPrefix(field, "-")
		name := strings.TrimPrefix(field, "-")

		column, ok := sortColumns[name]
		if !ok {
			continue
		}
		if prefixed {
			column = "p." + column
		}
		if desc {
			column += " DESC"
		}
		parts = append(parts, column)
	}

	if len(parts) == 0 {
		return ""
	}

	return " ORDER BY " + strings.Join(parts, ", ")
}

// CacheKey — детерминированный ключ фильтра для кеша поиска.
func (f *PostFilter) CacheKey() string {
	if f == nil {
		return "all"
	}

	var sb strings.Builder
	if f.TitleLike != nil {
		fmt.Fprintf(&sb, "title=%s;", *f.TitleLike)
	}
	if f.Published != nil {
		fmt.Fprintf(&sb, "published=%t;", *f.Published)
	}
	if f.Search != nil {
		fmt.Fprintf(&sb, "search=%s;", *f.Search)
	}
	if f.Username != nil {
		fmt.Fprintf(&sb, "username=%s;", *f.Username)
	}
	if len(f.OrderBy) > 0 {
		fmt.Fprintf(&sb, "order=%s;", strings.Join(f.OrderBy, ","))
	}

	if sb.Len() == 0 {
		return "all"
	}
	return sb.String()
}
