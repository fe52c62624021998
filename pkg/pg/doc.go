// Package pg bootstraps a PostgreSQL connection pool with pgx/v5 for services
// that store business registration numbers.
//
// Connect parses Config, installs RegisterTypes as the pool's AfterConnect
// hook and pings the database, retrying with a linearly growing wait until
// RetryAttempts is exhausted or the context is cancelled. Once connected,
// brn.BRN and brn.NullBRN can be passed as query arguments and used as scan
// targets for text columns holding the canonical ten digits:
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	_, err = pool.Exec(ctx, `INSERT INTO companies (brn, name) VALUES ($1, $2)`, b, name)
//	if pg.IsDuplicateKeyError(err) {
//	    // already registered
//	}
//
//	var parent brn.NullBRN
//	err = pool.QueryRow(ctx, `SELECT parent_brn FROM companies WHERE brn = $1`, b).Scan(&parent)
//
// A stored value that fails validation surfaces from Scan with brn.ErrMalformed
// or brn.ErrChecksumMismatch in its chain.
//
// # Error Handling
//
// IsNotFoundError, IsTxClosedError, IsDuplicateKeyError,
// IsForeignKeyViolationError and IsCheckViolationError classify errors
// returned by pgx, including *pgconn.PgError values wrapped by callers.
//
// Healthcheck returns a func(context.Context) error probe for readiness checks.
package pg
