package mediadb

import (
	"strings"

	"github.com/google/uuid"
)

// Defaults applied when a request carries no pagination.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// OrderField selects the column list queries are sorted by. The zero value
// sorts by creation time.
type OrderField int

const (
	OrderCreatedAt OrderField = iota
	OrderUpdatedAt
	OrderName
)

// Order describes the sort applied to a list query.
type Order struct {
	Field      OrderField
	Descending bool
}

// orderClause renders the ORDER BY expression from whitelisted column names.
// The media id is appended as a tiebreaker so pages are stable.
func (o Order) orderClause() string {
	column := "m.created_at"
	switch o.Field {
	case OrderUpdatedAt:
		column = "m.updated_at"
	case OrderName:
		column = "m.name"
	}

	direction := "ASC"
	if o.Descending {
		direction = "DESC"
	}

	return " ORDER BY " + column + " " + direction + ", m.media_id ASC"
}

// Filter narrows a list query. A zero Filter matches everything.
type Filter struct {
	// Name matches as a case-insensitive substring when non-empty.
	Name string
	// OfferID restricts to media associated with the offer when non-nil.
	OfferID *uuid.UUID
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike backslash-escapes the pattern metacharacters so a filter value
// binds into ILIKE as a literal substring.
func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

// Page is a 1-based page selector.
type Page struct {
	Number uint32
	Size   uint32
}

// Normalize replaces zero fields with the defaults.
func (p Page) Normalize() Page {
	if p.Number == 0 {
		p.Number = DefaultPage
	}
	if p.Size == 0 {
		p.Size = DefaultPageSize
	}
	return p
}

func (p Page) limitOffset() (limit, offset int64) {
	p = p.Normalize()
	return int64(p.Size), int64(p.Number-1) * int64(p.Size)
}
