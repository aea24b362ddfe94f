// Command regen-images generates illustrations for dreams that qualify for one
// but have none, for example after an image provider outage. Users are not
// charged image credits.
//
// Usage:
//
//	regen-images [-dry-run] [-limit=100] [-user=<uuid>]
//
// Exit codes: 0 = success, 1 = error or at least one failed dream.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/heartmarshall/dreamr-backend/internal/app"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "list dreams that would be illustrated without calling the provider")
	limit := flag.Int("limit", 0, "maximum number of dreams to process (default: regen.batch_limit)")
	user := flag.String("user", "", "only process dreams of this user id")
	flag.Parse()

	opts := app.RegenOptions{DryRun: *dryRun, Limit: *limit}
	if *user != "" {
		id, err := uuid.Parse(*user)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -user %q: %v\n", *user, err)
			os.Exit(1)
		}
		opts.UserID = &id
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := app.RunRegen(ctx, opts)
	if err != nil {
		log.Fatalf("regen-images: %v", err)
	}

	fmt.Printf("Found %d, generated %d, skipped %d, failed %d.\n",
		report.Found, report.Generated, report.Skipped, report.Failed)

	if report.Failed > 0 {
		os.Exit(1)
	}
}
