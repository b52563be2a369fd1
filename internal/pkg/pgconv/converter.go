package pgconv

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func StringFromPgtype(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

// OptionalText stores an empty string as NULL.
func OptionalText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// Numeric columns are read as text so no precision is lost on the way in.

func DecimalToText(d decimal.Decimal) string {
	return d.String()
}

func DecimalFromText(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

func DecimalPtrToPgtype(d *decimal.Decimal) pgtype.Text {
	if d == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: d.String(), Valid: true}
}

func DecimalPtrFromPgtype(pt pgtype.Text) (*decimal.Decimal, error) {
	if !pt.Valid {
		return nil, nil
	}
	d, err := decimal.NewFromString(pt.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
