package statelaw

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// overlaySchema is the JSON Schema every overlay document must satisfy
// before any record is merged. Structural problems are rejected here;
// semantic coherence (combinator/field agreement) is rejected by the
// CEL invariants when the merged catalog is rebuilt.
const overlaySchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["revision"],
  "additionalProperties": false,
  "properties": {
    "revision": {"type": "string", "minLength": 1},
    "fees": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["state", "combination", "description"],
        "properties": {
          "state": {"type": "string", "pattern": "^[A-Z]{2}$"},
          "combination": {"enum": ["NONE", "PERCENT_ONLY", "FLAT_ONLY", "LESSER_OF", "GREATER_OF", "TIERED_BY_RENT", "FIXED_PERCENT_OF_RENT"]},
          "grace_period_days": {"type": "integer", "minimum": 1},
          "max_fee_percent": {"type": "number", "minimum": 0, "maximum": 100},
          "max_fee_flat_cents": {"type": "integer", "minimum": 0},
          "tier_threshold_cents": {"type": "integer", "minimum": 0},
          "low_tier_percent": {"type": "number", "minimum": 0, "maximum": 100},
          "high_tier_percent": {"type": "number", "minimum": 0, "maximum": 100},
          "description": {"type": "string", "minLength": 1},
          "special_note": {"type": "string"}
        },
        "additionalProperties": false
      }
    },
    "deposits": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["state", "description"],
        "properties": {
          "state": {"type": "string", "pattern": "^[A-Z]{2}$"},
          "multiplier": {"type": "number", "exclusiveMinimum": 0, "maximum": 6},
          "description": {"type": "string", "minLength": 1},
          "notes": {"type": "string"}
        },
        "additionalProperties": false
      }
    },
    "notices": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["state", "month_to_month_notice_days", "fixed_term_notice_text"],
        "properties": {
          "state": {"type": "string", "pattern": "^[A-Z]{2}$"},
          "month_to_month_notice_days": {"type": "integer", "minimum": 1, "maximum": 365},
          "tenure_tiers": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["min_tenancy_months", "notice_days"],
              "properties": {
                "min_tenancy_months": {"type": "integer", "minimum": 1},
                "notice_days": {"type": "integer", "minimum": 1, "maximum": 365}
              },
              "additionalProperties": false
            }
          },
          "fixed_term_notice_text": {"type": "string", "minLength": 1},
          "notes": {"type": "string"}
        },
        "additionalProperties": false
      }
    }
  }
}`

// Overlay revises individual jurisdiction records on top of the
// default tables, so a deployment can track a statute amendment
// without a code change.
type Overlay struct {
	Revision string         `yaml:"revision" json:"revision"`
	Fees     []*FeeRule     `yaml:"fees,omitempty" json:"fees,omitempty"`
	Deposits []*DepositRule `yaml:"deposits,omitempty" json:"deposits,omitempty"`
	Notices  []*NoticeRule  `yaml:"notices,omitempty" json:"notices,omitempty"`
}

// LoadOverlay reads and validates an overlay YAML document. The
// document must satisfy the overlay schema and carry a semver
// revision.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load overlay: %w", err)
	}
	return ParseOverlay(data)
}

// ParseOverlay validates and decodes overlay YAML content.
func ParseOverlay(data []byte) (*Overlay, error) {
	// Round-trip through JSON so the schema validator sees canonical
	// JSON types regardless of YAML decoding quirks.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse overlay: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("parse overlay: %w", err)
	}
	var jsonDoc any
	if err := json.Unmarshal(raw, &jsonDoc); err != nil {
		return nil, fmt.Errorf("parse overlay: %w", err)
	}

	schema, err := jsonschema.CompileString("overlay.schema.json", overlaySchema)
	if err != nil {
		return nil, fmt.Errorf("compile overlay schema: %w", err)
	}
	if err := schema.Validate(jsonDoc); err != nil {
		return nil, fmt.Errorf("overlay schema: %w", err)
	}

	var ov Overlay
	if err := json.Unmarshal(raw, &ov); err != nil {
		return nil, fmt.Errorf("decode overlay: %w", err)
	}

	if _, err := semver.NewVersion(ov.Revision); err != nil {
		return nil, fmt.Errorf("overlay revision %q is not a semantic version: %w", ov.Revision, err)
	}

	return &ov, nil
}

// NewCatalogWithOverlay merges an overlay over the default tables and
// builds the resulting catalog. Overlay records replace the default
// record for their state wholesale; the merged set passes through the
// same invariant verification as any other catalog.
func NewCatalogWithOverlay(ov *Overlay) (*Catalog, error) {
	fees := mergeByState(DefaultFeeRules(), ov.Fees, func(r *FeeRule) StateCode { return r.State })
	deposits := mergeByState(DefaultDepositRules(), ov.Deposits, func(r *DepositRule) StateCode { return r.State })
	notices := mergeByState(DefaultNoticeRules(), ov.Notices, func(r *NoticeRule) StateCode { return r.State })
	return NewCatalog(fees, deposits, notices, ov.Revision)
}

func mergeByState[R any](base, overrides []*R, key func(*R) StateCode) []*R {
	byState := make(map[StateCode]*R, len(base))
	order := make([]StateCode, 0, len(base))
	for _, r := range base {
		byState[key(r)] = r
		order = append(order, key(r))
	}
	for _, r := range overrides {
		if _, known := byState[key(r)]; !known {
			order = append(order, key(r))
		}
		byState[key(r)] = r
	}
	merged := make([]*R, 0, len(order))
	for _, code := range order {
		merged = append(merged, byState[code])
	}
	return merged
}
