package main

import (
	"fmt"

	"github.com/defido-labs/backend/migration"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	server.loadConfig()
	server.loadLogger()
	server.loadDatabase()

	version := cctx.String("version")
	if version == "" {
		return migration.AutoMigrate(s.ctx)
	}

	migrator, ok := migration.Migrators[version]
	if !ok {
		return fmt.Errorf("not found version %s", version)
	}

	return migrator(s.ctx)
}
