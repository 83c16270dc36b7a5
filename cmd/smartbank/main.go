package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/app"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/domain"
)

func main() {
	cfg := app.LoadConfig()

	if len(os.Args) > 1 && os.Args[1] == "promote" {
		if err := promote(cfg, os.Args[2:]); err != nil {
			log.Fatalf("promote: %v", err)
		}
		return
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}

// promote implements `smartbank promote [-role auditor] <email>`.
func promote(cfg app.Config, args []string) error {
	fs := flag.NewFlagSet("promote", flag.ContinueOnError)
	role := fs.String("role", string(domain.RoleAuditor), "role to assign (customer or auditor)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: smartbank promote [-role auditor] <email>")
	}

	email := strings.ToLower(strings.TrimSpace(fs.Arg(0)))
	if err := app.SetRole(context.Background(), cfg, email, domain.Role(*role)); err != nil {
		return err
	}

	fmt.Printf("%s is now %s\n", email, *role)
	return nil
}
