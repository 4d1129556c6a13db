// Simple web server demo for go-arcade
package main

import (
	"flag"
	"log"
	"os"

	"github.com/go-while/go-arcade/internal/config"
	"github.com/go-while/go-arcade/internal/database"
	"github.com/go-while/go-arcade/internal/web"
	prof "github.com/go-while/go-cpu-mem-profiler"
)

var Prof *prof.Profiler

var appVersion = "-unset-"

func main() {
	config.AppVersion = appVersion
	log.Printf("Starting go-arcade WEB (version: %s)", config.AppVersion)

	var (
		webport  = flag.Int("webport", config.DefaultListenPort, "Web server port")
		webssl   = flag.Bool("webssl", false, "Enable SSL for web server")
		certFile = flag.String("webcertfile", "", "Path to SSL certificate file")
		keyFile  = flag.String("webkeyfile", "", "Path to SSL key file")
		dataDir  = flag.String("data", "./data", "Directory to store database files")
		debug    = flag.Bool("debug", false, "Enable debug request logging")
		pprofWeb = flag.String("pprofweb", "", "Listen address for pprof web server (e.g. :51112), empty disables")
	)
	flag.Parse()

	if *pprofWeb != "" {
		Prof = prof.NewProf()
		go Prof.PprofWeb(*pprofWeb)
	}

	mainConfig := config.NewDefaultConfig()
	mainConfig.Web.ListenPort = *webport
	mainConfig.Web.SSL = *webssl
	mainConfig.Web.CertFile = *certFile
	mainConfig.Web.KeyFile = *keyFile
	mainConfig.Web.Debug = *debug
	mainConfig.Database.DataDir = *dataDir

	dbconfig := database.DefaultDBConfig()
	dbconfig.DataDir = mainConfig.Database.DataDir
	db, err := database.OpenDatabase(dbconfig)
	if err != nil {
		log.Printf("Failed to open database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.SeedDefaultGames(); err != nil {
		log.Printf("Failed to seed games: %v", err)
		os.Exit(1)
	}

	server := web.NewServer(db, &mainConfig.Web)
	if err := server.Start(); err != nil {
		log.Printf("Web server error: %v", err)
		os.Exit(1)
	}
}
