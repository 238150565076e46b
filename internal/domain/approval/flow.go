package approval

import (
	"context"
	"fmt"

	"github.com/google/cel-go/cel"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/entity"
)

// Approver is one step in an approval flow.
type Approver struct {
	UserID string `json:"user_id"`
	Role   string `json:"role,omitempty"`
	Level  int    `json:"level"`
}

// Flow is a configurable approval routing rule for one document type.
// Condition is a CEL expression over document attributes; an empty condition
// always matches. Example: `total_amount > 100000.0 && department != "Admin"`.
type Flow struct {
	entity.Base

	FlowName     string     `db:"flow_name" json:"flow_name"`
	DocumentType string     `db:"document_type" json:"document_type"`
	Approvers    []Approver `db:"approvers" json:"approvers"`
	Condition    string     `db:"condition" json:"condition,omitempty"`
	Status       string     `db:"status" json:"status"`
}

// Validate implements entity.Validatable.
func (f *Flow) Validate(ctx context.Context) error {
	if f.FlowName == "" {
		return apperror.NewValidation("flow_name is required").WithDetail("field", "flow_name")
	}
	if f.DocumentType == "" {
		return apperror.NewValidation("document_type is required").WithDetail("field", "document_type")
	}
	if len(f.Approvers) == 0 {
		return apperror.NewValidation("at least one approver is required").WithDetail("field", "approvers")
	}
	if f.Condition != "" {
		if _, err := compileCondition(f.Condition); err != nil {
			return apperror.NewValidation("invalid condition expression").
				WithDetail("field", "condition").
				WithDetail("error", err.Error())
		}
	}
	return nil
}

// FlowRepository defines persistence for approval flows.
type FlowRepository interface {
	Create(ctx context.Context, flow *Flow) error
	ListByDocumentType(ctx context.Context, docType string) ([]*Flow, error)
	List(ctx context.Context) ([]*Flow, error)
}

// celEnv declares the variables flow conditions may reference. Document
// services pass whatever subset applies as the activation map; undeclared
// lookups fail at compile time, absent values default via has() checks.
func celEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("total_amount", cel.DoubleType),
		cel.Variable("qty", cel.DoubleType),
		cel.Variable("department", cel.StringType),
		cel.Variable("reason", cel.StringType),
		cel.Variable("supplier_id", cel.StringType),
		cel.Variable("warehouse_id", cel.StringType),
	)
}

func compileCondition(expr string) (cel.Program, error) {
	env, err := celEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	return env.Program(ast)
}

// Matches evaluates the flow condition against document attributes.
// An empty condition matches any document of the flow's type.
func (f *Flow) Matches(vars map[string]any) (bool, error) {
	if f.Condition == "" {
		return true, nil
	}
	prg, err := compileCondition(f.Condition)
	if err != nil {
		return false, fmt.Errorf("compile condition %q: %w", f.Condition, err)
	}
	out, _, err := prg.Eval(withDefaults(vars))
	if err != nil {
		return false, fmt.Errorf("eval condition %q: %w", f.Condition, err)
	}
	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("condition %q did not evaluate to bool", f.Condition)
	}
	return matched, nil
}

// withDefaults fills every declared variable so conditions never hit
// missing-attribute errors for fields a document type does not carry.
func withDefaults(vars map[string]any) map[string]any {
	full := map[string]any{
		"total_amount": 0.0,
		"qty":          0.0,
		"department":   "",
		"reason":       "",
		"supplier_id":  "",
		"warehouse_id": "",
	}
	for k, v := range vars {
		full[k] = v
	}
	return full
}
