// Package notice composes lease-termination notice letters with the
// jurisdiction's statutory notice window interpolated into the text.
package notice

import (
	"fmt"
	"strings"
	"time"

	"github.com/Tenantry-Labs/tenantry/core/pkg/statelaw"
	"golang.org/x/text/unicode/norm"
)

// Reason is the closed set of termination grounds a letter can cite.
type Reason string

const (
	ReasonEndOfTerm         Reason = "END_OF_TERM"
	ReasonMonthToMonth      Reason = "MONTH_TO_MONTH"
	ReasonEarlyTermination  Reason = "EARLY_TERMINATION"
	ReasonLandlordViolation Reason = "LANDLORD_VIOLATION"
	ReasonOther             Reason = "OTHER"
)

func validReason(r Reason) bool {
	switch r {
	case ReasonEndOfTerm, ReasonMonthToMonth, ReasonEarlyTermination,
		ReasonLandlordViolation, ReasonOther:
		return true
	}
	return false
}

// Request is one letter composition request. TenancyMonths is optional
// and only affects jurisdictions with tenure-tiered notice windows;
// zero means unknown and resolves to the base window.
type Request struct {
	TenantName      string             `json:"tenant_name"`
	LandlordName    string             `json:"landlord_name"`
	PropertyAddress string             `json:"property_address"`
	State           statelaw.StateCode `json:"state"`
	TerminationDate time.Time          `json:"termination_date"`
	Reason          Reason             `json:"reason"`
	TenancyMonths   int                `json:"tenancy_months,omitempty"`
	AdditionalNotes string             `json:"additional_notes,omitempty"`
}

// Letter is a composed notice. Body is the full plain-text letter;
// NoticeDays is the statutory window the letter cites (zero for
// reasons that do not cite one).
type Letter struct {
	State       statelaw.StateCode `json:"state"`
	Reason      Reason             `json:"reason"`
	NoticeDays  int                `json:"notice_days,omitempty"`
	GeneratedAt time.Time          `json:"generated_at"`
	Body        string             `json:"body"`
}

// Composer builds letters against an injected catalog and clock. A nil
// clock falls back to time.Now; tests inject a fixed clock for
// byte-identical output.
type Composer struct {
	catalog *statelaw.Catalog
	clock   func() time.Time
}

func NewComposer(catalog *statelaw.Catalog, clock func() time.Time) *Composer {
	if clock == nil {
		clock = time.Now
	}
	return &Composer{catalog: catalog, clock: clock}
}

// Compose validates the request, resolves the jurisdiction's notice
// rule, and renders the letter. Identical requests under an identical
// clock yield byte-identical bodies.
func (c *Composer) Compose(req Request) (*Letter, error) {
	tenant := cleanField(req.TenantName)
	landlord := cleanField(req.LandlordName)
	address := cleanField(req.PropertyAddress)

	if tenant == "" {
		return nil, &statelaw.ValidationError{Field: "tenant_name", Message: "tenant name is required"}
	}
	if landlord == "" {
		return nil, &statelaw.ValidationError{Field: "landlord_name", Message: "landlord name is required"}
	}
	if address == "" {
		return nil, &statelaw.ValidationError{Field: "property_address", Message: "property address is required"}
	}
	if req.TerminationDate.IsZero() {
		return nil, &statelaw.ValidationError{Field: "termination_date", Message: "termination date is required"}
	}
	if !validReason(req.Reason) {
		return nil, &statelaw.ValidationError{Field: "reason", Message: fmt.Sprintf("unknown reason %q", req.Reason)}
	}
	if req.TenancyMonths < 0 {
		return nil, &statelaw.ValidationError{Field: "tenancy_months", Message: "tenancy months must not be negative"}
	}

	rule, err := c.catalog.NoticeRule(req.State)
	if err != nil {
		return nil, err
	}

	now := c.clock().UTC()
	letter := &Letter{
		State:       req.State,
		Reason:      req.Reason,
		GeneratedAt: now,
	}
	if req.Reason == ReasonMonthToMonth {
		letter.NoticeDays = rule.NoticeDaysFor(req.TenancyMonths)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", now.Format("January 2, 2006"))
	fmt.Fprintf(&b, "From: %s\nTo: %s\nRe: %s\n\n", tenant, landlord, address)
	fmt.Fprintf(&b, "NOTICE OF LEASE TERMINATION\n\n")
	fmt.Fprintf(&b, "Dear %s,\n\n", landlord)
	b.WriteString(reasonParagraph(req.Reason, rule, letter.NoticeDays, address, req.TerminationDate))
	b.WriteString("\n\n")

	if notes := cleanField(req.AdditionalNotes); notes != "" {
		fmt.Fprintf(&b, "%s\n\n", notes)
	}

	fmt.Fprintf(&b,
		"Please advise where my security deposit should be returned, subject to the requirements of %s law.\n\n",
		statelaw.StateName(req.State))
	fmt.Fprintf(&b, "Sincerely,\n%s\n", tenant)

	letter.Body = b.String()
	return letter, nil
}

func reasonParagraph(reason Reason, rule *statelaw.NoticeRule, noticeDays int, address string, termination time.Time) string {
	date := termination.Format("January 2, 2006")
	switch reason {
	case ReasonMonthToMonth:
		return fmt.Sprintf(
			"I am providing %d days' written notice, as required in this jurisdiction, that I will terminate my month-to-month tenancy at %s effective %s.",
			noticeDays, address, date)
	case ReasonEndOfTerm:
		return fmt.Sprintf(
			"I will not be renewing my lease at %s, which ends on %s. %s",
			address, date, rule.FixedTermNoticeText)
	case ReasonEarlyTermination:
		return fmt.Sprintf(
			"I am terminating my lease at %s effective %s, before the end of the lease term. I understand early termination may carry obligations under the lease and applicable law, and I request written confirmation of any amounts claimed.",
			address, date)
	case ReasonLandlordViolation:
		return fmt.Sprintf(
			"I am terminating my tenancy at %s effective %s due to unremedied violations of the lease and of applicable habitability requirements. This notice does not waive any claim or remedy available to me.",
			address, date)
	default: // ReasonOther
		return fmt.Sprintf(
			"I am providing written notice that my tenancy at %s will terminate effective %s.",
			address, date)
	}
}

// cleanField trims whitespace and applies Unicode NFC so that
// visually-identical inputs render identical letters.
func cleanField(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
