package main

import (
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/wansing/editorial/backend"
	"github.com/wansing/editorial/core"
	"github.com/wansing/editorial/gateway"
	"github.com/wansing/editorial/sqldb/mysql"
	"github.com/wansing/editorial/sqldb/sqlite3"
	"github.com/wansing/editorial/util"
	"github.com/xo/dburl"
)

func init() {
	log.SetFlags(0) // no log prefixes, on most systems systemd-journald adds them
}

var configPath string
var flags flagValues

var rootCmd = &cobra.Command{
	Use:   "editorial",
	Short: "Web console for the authors and publications services",
	Long: `editorial serves an admin console for an editorial workflow. It creates authors
and publications and moves publications through the review pipeline
DRAFT -> IN_REVIEW -> APPROVED -> PUBLISHED (or REJECTED).

Configuration is read from built-in defaults, an optional ini file (--config),
the environment (AUTHORS_API_URL, PUBLICATIONS_API_URL, also from a .env file)
and the command line, in ascending precedence.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	// Your reverse proxy must not strip the prefix. So if you're using nginx, the "proxy_pass" value should not end with a slash.
	rootCmd.Flags().StringVar(&configPath, "config", "", "read configuration from this ini `file`")
	rootCmd.Flags().StringVar(&flags.Listen, "listen", "127.0.0.1:8080", "serve HTTP content at this `ip:port`")
	rootCmd.Flags().StringVar(&flags.Base, "base", "", "strip off this `prefix` from every HTTP request and prepend it to every link")
	rootCmd.Flags().StringVar(&flags.Sessions, "sessions", "", "store sessions in this sql database `url` (sqlite3 or mysql, see github.com/xo/dburl), default is in-memory")
	rootCmd.Flags().StringVar(&flags.AuthorsURL, "authors-url", "", "base `url` of the authors service")
	rootCmd.Flags().StringVar(&flags.PublicationsURL, "publications-url", "", "base `url` of the publications service")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err) // log.Fatalln would not run deferred functions
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {

	// load .env file if present
	_ = godotenv.Load()

	var cfg = defaultConfig()
	if configPath != "" {
		if err := cfg.loadINI(configPath); err != nil {
			return err
		}
	}
	cfg.loadEnv(os.Getenv)
	cfg.applyFlags(flags, cmd.Flags().Changed)
	if err := cfg.validate(); err != nil {
		return err
	}

	cfg.Base = util.NormalizePrefix(cfg.Base)

	// sessions

	sessionStore, sqlDB, err := openSessionStore(cfg.Sessions)
	if err != nil {
		return err
	}
	if sqlDB != nil {
		defer func() {
			log.Println("closing session database")
			sqlDB.Close()
		}()
	}

	// assemble stuff

	var console = &core.Console{
		Authors:      gateway.NewAuthors(cfg.Authors.URL, cfg.Authors.options()...),
		Publications: gateway.NewPublications(cfg.Publications.URL, cfg.Publications.options()...),
	}
	console.Init(sessionStore, cfg.Base)

	log.Printf("using authors service %s (timeout %s)", cfg.Authors.URL, cfg.Authors.Timeout)
	log.Printf("using publications service %s (timeout %s)", cfg.Publications.URL, cfg.Publications.Timeout)

	return listen(console, cfg.Listen, cfg.Base)
}

// openSessionStore returns a nil store and a nil database if dbArg is empty.
func openSessionStore(dbArg string) (scs.Store, *sql.DB, error) {

	if dbArg == "" {
		log.Println("using in-memory sessions")
		return nil, nil, nil
	}

	dbURL, err := dburl.Parse(dbArg)
	if err != nil {
		return nil, nil, fmt.Errorf("could not parse session database url: %w", err)
	}

	sqlDB, err := sql.Open(dbURL.Driver, dbURL.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open session database: %w", err)
	}

	if err = sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("could not ping session database: %w", err)
	}

	var store scs.Store
	switch dbURL.Driver {
	case "mysql":
		store, err = mysql.NewSessionStore(sqlDB)
	case "sqlite3":
		store, err = sqlite3.NewSessionStore(sqlDB)
	default:
		err = fmt.Errorf("unknown session database backend: %s", dbURL.Driver)
	}
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	log.Printf("using session database %s", dbURL.Redacted())
	return store, sqlDB, nil
}

func listen(console *core.Console, addr string, base string) error {

	var waitingHandlers sync.WaitGroup

	// mux
	//
	// golang mux recovers from panics, so the program won't crash

	var router = backend.NewRouter(console, base)

	var mux = http.NewServeMux()
	util.HandlePrefix(mux, base, http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			waitingHandlers.Add(1)
			defer waitingHandlers.Done()
			router.ServeHTTP(w, req)
		},
	))

	// listener and listen

	sigintChannel := make(chan os.Signal, 1)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	log.Printf("listening to %s", addr)

	httpSrv := &http.Server{
		Handler:      console.SessionManager.LoadAndSave(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if err := httpSrv.Serve(listener); err != nil {

			// don't panic, we want a graceful shutdown
			if err != http.ErrServerClosed {
				log.Printf("error listening: %v", err)
			}

			// ensure graceful shutdown
			sigintChannel <- os.Interrupt
		}
	}()

	// graceful shutdown

	signal.Notify(sigintChannel, os.Interrupt, syscall.SIGTERM) // SIGINT (Interrupt) or SIGTERM
	<-sigintChannel

	log.Println("shutting down")
	httpSrv.Close()

	waitingHandlers.Wait()
	return nil
}
