package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/defido-labs/backend/internal/middleware"
	"github.com/defido-labs/backend/pkg/router"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(ct *cli.Context) error {
	server.loadConfig()
	server.loadLogger()
	server.loadDatabase()
	server.loadRedis()
	server.loadRepos()
	server.loadEthClient()
	server.loadDomains()
	server.loadRouter()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	log.Printf("Starting server on port: %s\n", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}
	log.Printf("server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.Static("/", "./web")
	s.router.AddCloser(middleware.Logger())

	// Mint API. Every endpoint runs under a browsing session so minted token
	// ids accumulate across requests of the same visitor.
	sessionRouter := s.router.Branch()
	sessionRouter.Before(middleware.WithBrowsingSession())
	{
		router.POST(sessionRouter, "/mint", s.mintDomain.Mint)
		router.POST(sessionRouter, "/trackMint", s.mintDomain.TrackMint)
		router.GET(sessionRouter, "/getMintStatus", s.mintDomain.GetMintStatus)
		router.GET(sessionRouter, "/getSession", s.mintDomain.GetSession)
		router.GET(sessionRouter, "/getCollection", s.mintDomain.GetCollection)
	}
}
