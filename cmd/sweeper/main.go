// The sweeper is the nightly cron entrypoint: it force-closes sign-in
// sessions left open from prior business dates, stamps the matching
// attendance checkouts, and mails the report to the supervisor. It runs
// once and exits; scheduling lives outside the process.
package main

import (
	"flag"
	"log"

	"fieldops-backend/config"
	"fieldops-backend/internal/clock"
	"fieldops-backend/internal/notify"
	"fieldops-backend/internal/repository"
	"fieldops-backend/internal/sweep"

	"github.com/joho/godotenv"
)

func main() {
	asOfFlag := flag.String("as-of", "", "sweep as of this business date (YYYY-MM-DD, default today)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using system environment variables")
	}

	config.ConnectDB()
	clk := clock.MustNew(config.SiteTimezone())

	asOf := *asOfFlag
	if asOf == "" {
		asOf = clk.Today()
	}

	sweeper := sweep.New(
		repository.NewSignInRepository(config.DB),
		repository.NewAttendanceRepository(config.DB),
		clk,
	)

	report, err := sweeper.Sweep(asOf)
	if err != nil {
		// Infrastructure failure: log loudly and let the next scheduled
		// run pick the sessions up again.
		log.Fatalf("sweep %s failed: %v", asOf, err)
	}

	log.Printf("sweep %s: closed %d sessions across %d workers, %d failures",
		asOf, report.ClosedSessions, len(report.AffectedWorkers), len(report.Failures))

	if err := notify.NewMailerFromEnv().SendSweepReport(report); err != nil {
		log.Printf("could not mail sweep report: %v", err)
	}
}
