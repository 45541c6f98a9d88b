// Command tenantry evaluates landlord-tenant rules for US
// jurisdictions: late-fee legality, security-deposit caps, and
// termination notice letters, as one-shot commands or as a JSON HTTP
// service.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Tenantry-Labs/tenantry/core/pkg/deposit"
	"github.com/Tenantry-Labs/tenantry/core/pkg/latefee"
	"github.com/Tenantry-Labs/tenantry/core/pkg/notice"
	"github.com/Tenantry-Labs/tenantry/core/pkg/statelaw"
)

func main() {
	os.Exit(Run(os.Args, os.Stdout, os.Stderr))
}

// Run is the entrypoint for testing.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		printUsage(stderr)
		return 2
	}

	switch args[1] {
	case "latefee":
		return runLateFee(args[2:], stdout, stderr)
	case "deposit":
		return runDeposit(args[2:], stdout, stderr)
	case "notice":
		return runNotice(args[2:], stdout, stderr)
	case "states":
		return runStates(args[2:], stdout, stderr)
	case "hash":
		return runHash(args[2:], stdout, stderr)
	case "serve":
		return runServe(args[2:], stdout, stderr)
	case "help", "--help", "-h":
		printUsage(stdout)
		return 0
	default:
		_, _ = fmt.Fprintf(stderr, "Unknown command: %s\n", args[1])
		printUsage(stderr)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tenantry <command> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  latefee   Evaluate a late fee against the jurisdiction's cap")
	fmt.Fprintln(w, "  deposit   Check a security deposit against the jurisdiction's cap")
	fmt.Fprintln(w, "  notice    Compose a lease-termination notice letter")
	fmt.Fprintln(w, "  states    List supported jurisdiction codes")
	fmt.Fprintln(w, "  hash      Print the active rule catalog revision and hash")
	fmt.Fprintln(w, "  serve     Run the JSON HTTP API")
}

// loadCatalog builds the default catalog, or the overlay-merged one
// when a path is given.
func loadCatalog(overlayPath string) (*statelaw.Catalog, error) {
	if overlayPath == "" {
		return statelaw.NewDefaultCatalog()
	}
	ov, err := statelaw.LoadOverlay(overlayPath)
	if err != nil {
		return nil, err
	}
	return statelaw.NewCatalogWithOverlay(ov)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func fail(stderr io.Writer, err error) int {
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func runLateFee(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("latefee", flag.ContinueOnError)
	fs.SetOutput(stderr)
	state := fs.String("state", "", "Two-letter jurisdiction code (e.g. CO)")
	rent := fs.Int64("rent", 0, "Monthly rent in cents")
	fee := fs.Int64("fee", 0, "Charged late fee in cents")
	grace := fs.Int("grace", 0, "Grace period offered, in days")
	overlay := fs.String("overlay", "", "Path to a YAML rule overlay")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	catalog, err := loadCatalog(*overlay)
	if err != nil {
		return fail(stderr, err)
	}

	res, err := latefee.Evaluate(catalog, latefee.Input{
		State:            statelaw.StateCode(*state),
		MonthlyRentCents: *rent,
		ChargedFeeCents:  *fee,
		GracePeriodDays:  *grace,
	})
	if err != nil {
		return fail(stderr, err)
	}
	if err := printJSON(stdout, res); err != nil {
		return fail(stderr, err)
	}
	return 0
}

func runDeposit(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("deposit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	state := fs.String("state", "", "Two-letter jurisdiction code")
	rent := fs.Int64("rent", 0, "Monthly rent in cents")
	amount := fs.Int64("deposit", 0, "Requested deposit in cents")
	overlay := fs.String("overlay", "", "Path to a YAML rule overlay")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	catalog, err := loadCatalog(*overlay)
	if err != nil {
		return fail(stderr, err)
	}

	res, err := deposit.Evaluate(catalog, deposit.Input{
		State:                 statelaw.StateCode(*state),
		MonthlyRentCents:      *rent,
		RequestedDepositCents: *amount,
	})
	if err != nil {
		return fail(stderr, err)
	}
	if err := printJSON(stdout, res); err != nil {
		return fail(stderr, err)
	}
	return 0
}

func runNotice(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("notice", flag.ContinueOnError)
	fs.SetOutput(stderr)
	state := fs.String("state", "", "Two-letter jurisdiction code")
	tenant := fs.String("tenant", "", "Tenant full name")
	landlord := fs.String("landlord", "", "Landlord or manager name")
	address := fs.String("address", "", "Rental property address")
	date := fs.String("date", "", "Termination date, YYYY-MM-DD")
	reason := fs.String("reason", string(notice.ReasonMonthToMonth), "Termination reason")
	tenancy := fs.Int("tenancy-months", 0, "Length of tenancy in months (tiered jurisdictions)")
	notes := fs.String("notes", "", "Additional notes paragraph")
	asJSON := fs.Bool("json", false, "Print the full letter record as JSON")
	overlay := fs.String("overlay", "", "Path to a YAML rule overlay")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	catalog, err := loadCatalog(*overlay)
	if err != nil {
		return fail(stderr, err)
	}

	var termination time.Time
	if *date != "" {
		termination, err = time.Parse("2006-01-02", *date)
		if err != nil {
			return fail(stderr, fmt.Errorf("invalid -date %q: %w", *date, err))
		}
	}

	letter, err := notice.NewComposer(catalog, nil).Compose(notice.Request{
		TenantName:      *tenant,
		LandlordName:    *landlord,
		PropertyAddress: *address,
		State:           statelaw.StateCode(*state),
		TerminationDate: termination,
		Reason:          notice.Reason(*reason),
		TenancyMonths:   *tenancy,
		AdditionalNotes: *notes,
	})
	if err != nil {
		return fail(stderr, err)
	}

	if *asJSON {
		if err := printJSON(stdout, letter); err != nil {
			return fail(stderr, err)
		}
		return 0
	}
	_, _ = fmt.Fprint(stdout, letter.Body)
	return 0
}

func runStates(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("states", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "Print as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	codes := statelaw.AllStates()
	if *asJSON {
		type entry struct {
			Code statelaw.StateCode `json:"code"`
			Name string             `json:"name"`
		}
		entries := make([]entry, 0, len(codes))
		for _, c := range codes {
			entries = append(entries, entry{Code: c, Name: statelaw.StateName(c)})
		}
		if err := printJSON(stdout, entries); err != nil {
			return fail(stderr, err)
		}
		return 0
	}
	for _, c := range codes {
		_, _ = fmt.Fprintf(stdout, "%s  %s\n", c, statelaw.StateName(c))
	}
	return 0
}

func runHash(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hash", flag.ContinueOnError)
	fs.SetOutput(stderr)
	overlay := fs.String("overlay", "", "Path to a YAML rule overlay")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	catalog, err := loadCatalog(*overlay)
	if err != nil {
		return fail(stderr, err)
	}
	_, _ = fmt.Fprintf(stdout, "revision: %s\nhash: %s\n", catalog.Revision(), catalog.Hash())
	return 0
}
