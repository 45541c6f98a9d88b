package statelaw

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Record-shape invariants, expressed as CEL rules evaluated against
// every record at catalog construction. A rule that evaluates false
// fails the build with the rule's text in the error.
//
// Fee invariants encode the catalog contract: NONE carries no caps,
// single-sided combinators carry exactly one side, two-sided
// combinators carry both, and tier rules carry a threshold and both
// tier percentages.
var feeInvariants = []string{
	`combination in ["NONE", "PERCENT_ONLY", "FLAT_ONLY", "LESSER_OF", "GREATER_OF", "TIERED_BY_RENT", "FIXED_PERCENT_OF_RENT"]`,
	`combination == "NONE" ? (max_fee_percent == 0.0 && max_fee_flat_cents == 0) : true`,
	`combination in ["PERCENT_ONLY", "FIXED_PERCENT_OF_RENT"] ? (max_fee_percent > 0.0 && max_fee_flat_cents == 0) : true`,
	`combination == "FLAT_ONLY" ? (max_fee_flat_cents > 0 && max_fee_percent == 0.0) : true`,
	`combination in ["LESSER_OF", "GREATER_OF"] ? (max_fee_percent > 0.0 && max_fee_flat_cents > 0) : true`,
	`combination == "TIERED_BY_RENT" ? (tier_threshold_cents > 0 && low_tier_percent > 0.0 && high_tier_percent > 0.0) : true`,
	`combination != "TIERED_BY_RENT" ? (tier_threshold_cents == 0 && low_tier_percent == 0.0 && high_tier_percent == 0.0) : true`,
	`max_fee_percent >= 0.0 && max_fee_percent <= 100.0`,
	`low_tier_percent >= 0.0 && low_tier_percent <= 100.0 && high_tier_percent >= 0.0 && high_tier_percent <= 100.0`,
	`has_grace ? grace_days > 0 : grace_days == 0`,
}

var depositInvariants = []string{
	`has_multiplier ? (multiplier > 0.0 && multiplier <= 6.0) : multiplier == 0.0`,
}

var noticeInvariants = []string{
	`notice_days > 0 && notice_days <= 365`,
}

// ruleVerifier compiles the invariant expressions once and evaluates
// them against flattened record fields.
type ruleVerifier struct {
	feePrograms     []cel.Program
	depositPrograms []cel.Program
	noticePrograms  []cel.Program
}

func newRuleVerifier() (*ruleVerifier, error) {
	env, err := cel.NewEnv(
		cel.Variable("combination", cel.StringType),
		cel.Variable("max_fee_percent", cel.DoubleType),
		cel.Variable("max_fee_flat_cents", cel.IntType),
		cel.Variable("tier_threshold_cents", cel.IntType),
		cel.Variable("low_tier_percent", cel.DoubleType),
		cel.Variable("high_tier_percent", cel.DoubleType),
		cel.Variable("has_grace", cel.BoolType),
		cel.Variable("grace_days", cel.IntType),
		cel.Variable("has_multiplier", cel.BoolType),
		cel.Variable("multiplier", cel.DoubleType),
		cel.Variable("notice_days", cel.IntType),
	)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}

	v := &ruleVerifier{}
	if v.feePrograms, err = compileAll(env, feeInvariants); err != nil {
		return nil, err
	}
	if v.depositPrograms, err = compileAll(env, depositInvariants); err != nil {
		return nil, err
	}
	if v.noticePrograms, err = compileAll(env, noticeInvariants); err != nil {
		return nil, err
	}
	return v, nil
}

func compileAll(env *cel.Env, exprs []string) ([]cel.Program, error) {
	programs := make([]cel.Program, 0, len(exprs))
	for _, expr := range exprs {
		ast, issues := env.Compile(expr)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("compile invariant %q: %w", expr, issues.Err())
		}
		prg, err := env.Program(ast, cel.InterruptCheckFrequency(100))
		if err != nil {
			return nil, fmt.Errorf("program invariant %q: %w", expr, err)
		}
		programs = append(programs, prg)
	}
	return programs, nil
}

func (v *ruleVerifier) verifyFeeRule(r *FeeRule) error {
	graceDays := 0
	if r.GracePeriodDays != nil {
		graceDays = *r.GracePeriodDays
	}
	input := map[string]any{
		"combination":          string(r.Combination),
		"max_fee_percent":      r.MaxFeePercent,
		"max_fee_flat_cents":   r.MaxFeeFlatCents,
		"tier_threshold_cents": r.TierThresholdCents,
		"low_tier_percent":     r.LowTierPercent,
		"high_tier_percent":    r.HighTierPercent,
		"has_grace":            r.GracePeriodDays != nil,
		"grace_days":           graceDays,
	}
	return runInvariants(v.feePrograms, feeInvariants, input)
}

func (v *ruleVerifier) verifyDepositRule(r *DepositRule) error {
	multiplier := 0.0
	if r.Multiplier != nil {
		multiplier = *r.Multiplier
	}
	input := map[string]any{
		"has_multiplier": r.Multiplier != nil,
		"multiplier":     multiplier,
	}
	return runInvariants(v.depositPrograms, depositInvariants, input)
}

func (v *ruleVerifier) verifyNoticeRule(r *NoticeRule) error {
	input := map[string]any{
		"notice_days": r.MonthToMonthNoticeDays,
	}
	return runInvariants(v.noticePrograms, noticeInvariants, input)
}

func runInvariants(programs []cel.Program, exprs []string, input map[string]any) error {
	for i, prg := range programs {
		out, _, err := prg.Eval(input)
		if err != nil {
			return fmt.Errorf("evaluate invariant %q: %w", exprs[i], err)
		}
		ok, isBool := out.Value().(bool)
		if !isBool {
			return fmt.Errorf("invariant %q did not yield a boolean", exprs[i])
		}
		if !ok {
			return fmt.Errorf("invariant violated: %s", exprs[i])
		}
	}
	return nil
}
