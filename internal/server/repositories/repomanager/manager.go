// Package repomanager hands out table repositories bound to a DBTX and owns
// schema migrations. Passing a *sql.Tx instead of the *sql.DB yields repos
// that participate in that transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dkarklins/fitauth/internal/dbx"
	"github.com/dkarklins/fitauth/internal/server/repositories/metrics"
	"github.com/dkarklins/fitauth/internal/server/repositories/refreshtokens"
	"github.com/dkarklins/fitauth/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Metrics(db dbx.DBTX) metrics.Repository
}
