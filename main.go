package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/db"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/fixture"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/registry"
	"github.com/danielhkuo/ballotbox/report"
	"github.com/danielhkuo/ballotbox/router"
	"github.com/danielhkuo/ballotbox/tally"
)

func main() {
	var err error

	// Optional .env for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.Demo {
		if err := runDemo(cfg); err != nil {
			slog.Error("demo failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// Connect to the configured database
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Rehydrate elections from the session log
	reg := registry.New()
	restored, err := db.RestoreElections(dbConn, reg)
	if err != nil {
		slog.Error("failed to restore elections", "error", err)
		os.Exit(1)
	}
	if restored > 0 {
		slog.Info("Restored elections", "count", restored)
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg, reg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// runDemo reproduces the reference simulation: generate roster and
// candidate files, replay a shuffled biased vote stream, close the
// election and print the report.
func runDemo(cfg cliparse.Config) error {
	dir, err := os.MkdirTemp("", "ballotbox-demo")
	if err != nil {
		return fmt.Errorf("create demo dir: %w", err)
	}
	defer os.RemoveAll(dir)

	votersFile := filepath.Join(dir, "voters.csv")
	candidatesFile := filepath.Join(dir, "candidates.txt")

	if err := fixture.WriteVoters(votersFile, cfg.DemoVoters); err != nil {
		return err
	}
	if err := fixture.WriteCandidates(candidatesFile, fixture.DefaultCandidates); err != nil {
		return err
	}

	roster, err := fixture.LoadRoster(votersFile)
	if err != nil {
		return err
	}
	ballot, err := fixture.LoadBallot(candidatesFile)
	if err != nil {
		return err
	}

	el, err := election.New("Student Council President", roster, ballot)
	if err != nil {
		return err
	}

	// Biased distribution over 90% of the roster, shuffled arrival order.
	// Scaled from the reference 200/150/100 split over 500 voters.
	candidates := ballot.Candidates()
	targets := map[election.CandidateID]int{
		candidates[0].ID: cfg.DemoVoters * 40 / 100,
		candidates[1].ID: cfg.DemoVoters * 30 / 100,
		candidates[2].ID: cfg.DemoVoters * 20 / 100,
	}

	rejected := 0
	for _, ev := range fixture.Stream(roster.IDs(), targets, rand.New(rand.NewSource(rand.Int63()))) {
		if err := el.CastVote(ev.Voter, ev.Candidate); err != nil {
			if _, ok := election.AsRejection(err); !ok {
				return err
			}
			rejected++
		}
	}

	if err := el.Close(); err != nil {
		return err
	}

	rep := tally.Compute(el.Snapshot())
	return report.Render(os.Stdout, rep, report.TerminalOptions(os.Stdout, rejected))
}
