package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alumnifc/clubledger/internal/auth"
	"github.com/alumnifc/clubledger/internal/config"
	"github.com/alumnifc/clubledger/internal/export"
	"github.com/alumnifc/clubledger/internal/finance"
	"github.com/alumnifc/clubledger/internal/storage/sqlite"
	"github.com/alumnifc/clubledger/pkg/logging"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "export":
		runExport()
	case "audit":
		runAudit()
	case "summary":
		runSummary()
	case "hash-password":
		runHashPassword()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Club ledger admin CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  clubctl <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  export          Write every ledger to an xlsx workbook")
	fmt.Println("  audit           Check stored balances against transaction history")
	fmt.Println("  summary         Print fund balances and member count")
	fmt.Println("  hash-password   Print a bcrypt hash for auth.operators")
	fmt.Println("  help            Show this help message")
	fmt.Println("\nRun 'clubctl <command> -h' for more information on a command.")
}

// openEngine loads config and opens the local database.
func openEngine(configPath string) (*finance.Engine, func()) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fatal("Failed to load config", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		fatal("Failed to open database", err)
	}
	diningCap, err := cfg.Finance.Cap()
	if err != nil {
		fatal("Invalid dining cap", err)
	}
	engine := finance.New(store,
		finance.WithDiningCap(diningCap),
		finance.WithBailoutHandler(cfg.Finance.BailoutHandler),
	)
	return engine, func() { store.Close() }
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

func runExport() {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	out := fs.String("out", "", "output xlsx path (default ledgers_YYYYMMDD.xlsx)")
	fs.Parse(os.Args[2:])

	if *out == "" {
		*out = fmt.Sprintf("ledgers_%s.xlsx", time.Now().Format("20060102"))
	}

	engine, closeStore := openEngine(*configPath)
	defer closeStore()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	f, err := os.Create(*out)
	if err != nil {
		fatal("Failed to create output file", err)
	}
	if err := export.Write(ctx, engine, f); err != nil {
		f.Close()
		fatal("Export failed", err)
	}
	if err := f.Close(); err != nil {
		fatal("Failed to close output file", err)
	}

	fmt.Printf("Exported ledgers to %s\n", *out)
}

func runAudit() {
	fs := flag.NewFlagSet("audit", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	fs.Parse(os.Args[2:])

	engine, closeStore := openEngine(*configPath)
	defer closeStore()

	drift, err := engine.AuditBalances(context.Background())
	if err != nil {
		fatal("Audit failed", err)
	}
	if len(drift) == 0 {
		fmt.Println("All personal balances match their transactions.")
		return
	}

	fmt.Printf("%d player(s) out of balance:\n", len(drift))
	for _, d := range drift {
		fmt.Printf("  %s  stored %s  computed %s\n", d.PlayerID, d.Stored.StringFixed(2), d.Computed.StringFixed(2))
	}
	closeStore()
	os.Exit(2)
}

func runSummary() {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	fs.Parse(os.Args[2:])

	engine, closeStore := openEngine(*configPath)
	defer closeStore()

	s, err := engine.Summary(context.Background())
	if err != nil {
		fatal("Summary failed", err)
	}

	fmt.Printf("Team fund:       %s\n", s.TeamFund.StringFixed(2))
	fmt.Printf("Member fund:     %s\n", s.MemberFund.StringFixed(2))
	fmt.Printf("Personal total:  %s\n", s.PersonalTotal.StringFixed(2))
	fmt.Printf("Members:         %d of %d players\n", s.Members, s.Players)
}

func runHashPassword() {
	fs := flag.NewFlagSet("hash-password", flag.ExitOnError)
	password := fs.String("password", "", "password to hash (read from stdin when empty)")
	fs.Parse(os.Args[2:])

	pw := *password
	if pw == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fatal("Failed to read password", err)
		}
		pw = strings.TrimRight(line, "\r\n")
	}

	hash, err := auth.HashPassword(pw)
	if err != nil {
		fatal("Failed to hash password", err)
	}
	fmt.Println(hash)
}
