package brncodec

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dmitrymomot/kbrn/pkg/brn"
)

// RegisterPgx maps brn.BRN, *brn.BRN and brn.NullBRN to the PostgreSQL text
// type so that pgx can encode them as query arguments without an explicit
// cast. Values travel through driver.Valuer and sql.Scanner, i.e. the same
// canonical digits Encode produces.
//
// Call it from pgxpool.Config.AfterConnect with conn.TypeMap().
func RegisterPgx(m *pgtype.Map) {
	m.RegisterDefaultPgType(brn.BRN{}, "text")
	m.RegisterDefaultPgType(&brn.BRN{}, "text")
	m.RegisterDefaultPgType(brn.NullBRN{}, "text")
}
