package statelaw

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/gowebpki/jcs"
)

// Catalog holds the rule tables for all three tool domains. It is
// immutable after construction and safe for concurrent readers; callers
// receive it by reference (injected, never ambient global state) so
// tests can substitute fixture catalogs.
type Catalog struct {
	fee      map[StateCode]*FeeRule
	deposit  map[StateCode]*DepositRule
	notice   map[StateCode]*NoticeRule
	revision string
	hash     string
}

// NewCatalog builds a catalog from the given rule sets. Every record is
// checked against the CEL invariant rules before the catalog is
// returned; a single malformed record fails construction. Duplicate or
// unknown state codes are rejected.
func NewCatalog(fees []*FeeRule, deposits []*DepositRule, notices []*NoticeRule, revision string) (*Catalog, error) {
	v, err := newRuleVerifier()
	if err != nil {
		return nil, fmt.Errorf("build rule verifier: %w", err)
	}

	c := &Catalog{
		fee:      make(map[StateCode]*FeeRule, len(fees)),
		deposit:  make(map[StateCode]*DepositRule, len(deposits)),
		notice:   make(map[StateCode]*NoticeRule, len(notices)),
		revision: revision,
	}

	for _, r := range fees {
		if !IsValidState(r.State) {
			return nil, fmt.Errorf("fee rule: unknown state code %q", r.State)
		}
		if _, dup := c.fee[r.State]; dup {
			return nil, fmt.Errorf("fee rule: duplicate state code %q", r.State)
		}
		if err := v.verifyFeeRule(r); err != nil {
			return nil, fmt.Errorf("fee rule %s: %w", r.State, err)
		}
		c.fee[r.State] = r
	}

	for _, r := range deposits {
		if !IsValidState(r.State) {
			return nil, fmt.Errorf("deposit rule: unknown state code %q", r.State)
		}
		if _, dup := c.deposit[r.State]; dup {
			return nil, fmt.Errorf("deposit rule: duplicate state code %q", r.State)
		}
		if err := v.verifyDepositRule(r); err != nil {
			return nil, fmt.Errorf("deposit rule %s: %w", r.State, err)
		}
		c.deposit[r.State] = r
	}

	for _, r := range notices {
		if !IsValidState(r.State) {
			return nil, fmt.Errorf("notice rule: unknown state code %q", r.State)
		}
		if _, dup := c.notice[r.State]; dup {
			return nil, fmt.Errorf("notice rule: duplicate state code %q", r.State)
		}
		if err := v.verifyNoticeRule(r); err != nil {
			return nil, fmt.Errorf("notice rule %s: %w", r.State, err)
		}
		if err := verifyTiers(r.TenureTiers); err != nil {
			return nil, fmt.Errorf("notice rule %s: %w", r.State, err)
		}
		c.notice[r.State] = r
	}

	c.hash = c.computeHash()
	return c, nil
}

// NewDefaultCatalog builds the catalog from the curated default tables.
func NewDefaultCatalog() (*Catalog, error) {
	return NewCatalog(DefaultFeeRules(), DefaultDepositRules(), DefaultNoticeRules(), DefaultRevision)
}

// FeeRule returns the late-fee rule for a jurisdiction.
func (c *Catalog) FeeRule(code StateCode) (*FeeRule, error) {
	r, ok := c.fee[code]
	if !ok {
		return nil, &UnsupportedJurisdictionError{Code: code}
	}
	return r, nil
}

// DepositRule returns the security deposit rule for a jurisdiction.
func (c *Catalog) DepositRule(code StateCode) (*DepositRule, error) {
	r, ok := c.deposit[code]
	if !ok {
		return nil, &UnsupportedJurisdictionError{Code: code}
	}
	return r, nil
}

// NoticeRule returns the termination notice rule for a jurisdiction.
func (c *Catalog) NoticeRule(code StateCode) (*NoticeRule, error) {
	r, ok := c.notice[code]
	if !ok {
		return nil, &UnsupportedJurisdictionError{Code: code}
	}
	return r, nil
}

// Revision returns the catalog's revision string.
func (c *Catalog) Revision() string {
	return c.revision
}

// Hash returns a deterministic SHA-256 over the RFC 8785 canonical JSON
// of every record, computed once at construction. Two catalogs with the
// same rules hash identically regardless of input order.
func (c *Catalog) Hash() string {
	return c.hash
}

func (c *Catalog) computeHash() string {
	type snapshot struct {
		Revision string         `json:"revision"`
		Fees     []*FeeRule     `json:"fees"`
		Deposits []*DepositRule `json:"deposits"`
		Notices  []*NoticeRule  `json:"notices"`
	}

	snap := snapshot{Revision: c.revision}
	for _, code := range sortedKeys(c.fee) {
		snap.Fees = append(snap.Fees, c.fee[code])
	}
	for _, code := range sortedKeys(c.deposit) {
		snap.Deposits = append(snap.Deposits, c.deposit[code])
	}
	for _, code := range sortedKeys(c.notice) {
		snap.Notices = append(snap.Notices, c.notice[code])
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return ""
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}

func sortedKeys[V any](m map[StateCode]V) []StateCode {
	keys := make([]StateCode, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// verifyTiers checks structural ordering that the CEL value rules do
// not cover: tiers strictly ascending by tenancy length with positive
// windows.
func verifyTiers(tiers []TenureTier) error {
	for i, t := range tiers {
		if t.NoticeDays <= 0 {
			return fmt.Errorf("tier %d: notice days must be positive", i)
		}
		if t.MinTenancyMonths <= 0 {
			return fmt.Errorf("tier %d: minimum tenancy must be positive", i)
		}
		if i > 0 && tiers[i-1].MinTenancyMonths >= t.MinTenancyMonths {
			return fmt.Errorf("tier %d: tiers must ascend by tenancy length", i)
		}
	}
	return nil
}
