// Package contfrac exposes the continued-fraction library as a service
// provider with JSON-friendly tool contracts.
package contfrac

import (
	"context"
	"errors"
	"fmt"

	"github.com/quotientlabs/contfrac/internal/contfrac"
	"github.com/quotientlabs/contfrac/internal/types"
)

// Limits caps the caller-supplied bounds so a single request cannot demand
// an arbitrarily long expansion.
type Limits struct {
	MaxTerms int
	MaxGrade int
}

// DefaultLimits returns the production caps.
func DefaultLimits() Limits {
	return Limits{
		MaxTerms: 1000,
		MaxGrade: 500,
	}
}

// Provider implements continued-fraction operations
type Provider struct {
	limits Limits
}

// NewProvider creates a continued-fraction provider
func NewProvider(limits Limits) *Provider {
	if limits.MaxTerms <= 0 {
		limits.MaxTerms = DefaultLimits().MaxTerms
	}
	if limits.MaxGrade <= 0 {
		limits.MaxGrade = DefaultLimits().MaxGrade
	}
	return &Provider{limits: limits}
}

// Definition returns service metadata with all tools
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "contfrac",
		Name:        "Continued Fractions",
		Description: "Continued-fraction expansion, evaluation, rendering and rational approximation",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"expansion",
			"evaluation",
			"rendering",
			"convergents",
		},
		Tools: []types.Tool{
			{
				ID:          "contfrac.expand",
				Name:        "Expand",
				Description: "Compute the continued-fraction coefficients of a number",
				Parameters: []types.Parameter{
					{Name: "x", Type: "number|[num,den]|{numerator,denominator}", Description: "Value to expand", Required: true},
					{Name: "maxlen", Type: "number", Description: "Maximum number of coefficients (default 30)", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          "contfrac.evaluate",
				Name:        "Evaluate",
				Description: "Evaluate a finite coefficient sequence back to a number",
				Parameters: []types.Parameter{
					{Name: "coefficients", Type: "array", Description: "Coefficient sequence", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "contfrac.expression",
				Name:        "Expression",
				Description: "Render a coefficient sequence as a nested arithmetic expression",
				Parameters: []types.Parameter{
					{Name: "coefficients", Type: "array", Description: "Coefficient sequence", Required: true},
					{Name: "with_spaces", Type: "boolean", Description: "Spaces around plus signs (default true)", Required: false},
					{Name: "force_floats", Type: "boolean", Description: "Use 1.0/( instead of 1/( (default false)", Required: false},
				},
				Returns: "string",
			},
			{
				ID:          "contfrac.convergents",
				Name:        "Convergents",
				Description: "Compute the rational approximations of a number up to a grade",
				Parameters: []types.Parameter{
					{Name: "x", Type: "number|[num,den]|{numerator,denominator}", Description: "Value to approximate", Required: true},
					{Name: "max_grade", Type: "number", Description: "Highest grade to produce (default 10)", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          "contfrac.convergent",
				Name:        "Convergent",
				Description: "Compute the single rational approximation of a number at a grade",
				Parameters: []types.Parameter{
					{Name: "x", Type: "number|[num,den]|{numerator,denominator}", Description: "Value to approximate", Required: true},
					{Name: "grade", Type: "number", Description: "Zero-based convergent grade", Required: true},
				},
				Returns: "object",
			},
		},
	}
}

// Execute routes to the appropriate tool
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "contfrac.expand":
		return p.expand(ctx, params)
	case "contfrac.evaluate":
		return p.evaluate(ctx, params)
	case "contfrac.expression":
		return p.expression(ctx, params)
	case "contfrac.convergents":
		return p.convergents(ctx, params)
	case "contfrac.convergent":
		return p.convergent(ctx, params)
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) expand(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	x, errMsg := getValue(params, "x")
	if errMsg != "" {
		return failure(errMsg)
	}
	maxLen, ok := getIntDefault(params, "maxlen", contfrac.DefaultMaxLen)
	if !ok {
		return failure("maxlen must be an integer")
	}
	if maxLen > p.limits.MaxTerms {
		return failure(fmt.Sprintf("maxlen exceeds limit of %d", p.limits.MaxTerms))
	}

	coeffs, err := contfrac.Coefficients(x, maxLen)
	if err != nil {
		return failure(err.Error())
	}

	return success(map[string]interface{}{"coefficients": coeffs})
}

func (p *Provider) evaluate(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	coeffs, ok := getNumbers(params, "coefficients")
	if !ok {
		return failure("coefficients array of numbers required")
	}

	value, err := contfrac.Evaluate(coeffs)
	if err != nil {
		return failure(err.Error())
	}

	return success(map[string]interface{}{"result": value})
}

func (p *Provider) expression(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	coeffs, ok := getNumbers(params, "coefficients")
	if !ok {
		return failure("coefficients array of numbers required")
	}
	withSpaces := getBoolDefault(params, "with_spaces", true)
	forceFloats := getBoolDefault(params, "force_floats", false)

	expr := contfrac.Expression(coeffs, contfrac.ExprOptions{
		Compact:     !withSpaces,
		ForceFloats: forceFloats,
	})

	return success(map[string]interface{}{"result": expr})
}

func (p *Provider) convergents(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	x, errMsg := getValue(params, "x")
	if errMsg != "" {
		return failure(errMsg)
	}
	maxGrade, ok := getIntDefault(params, "max_grade", contfrac.DefaultMaxGrade)
	if !ok {
		return failure("max_grade must be an integer")
	}
	if maxGrade > p.limits.MaxGrade {
		return failure(fmt.Sprintf("max_grade exceeds limit of %d", p.limits.MaxGrade))
	}

	seq, err := contfrac.Convergents(x, maxGrade)
	if err != nil {
		return failure(err.Error())
	}

	pairs := make([][2]int64, 0, maxGrade+1)
	for {
		c, ok := seq.Next()
		if !ok {
			break
		}
		pairs = append(pairs, [2]int64{c.Num, c.Den})
	}

	return success(map[string]interface{}{"convergents": pairs})
}

func (p *Provider) convergent(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	x, errMsg := getValue(params, "x")
	if errMsg != "" {
		return failure(errMsg)
	}
	grade, ok := getInt(params, "grade")
	if !ok {
		return failure("grade parameter required")
	}
	if grade < 0 {
		return failure("grade must be non-negative")
	}
	if grade > p.limits.MaxGrade {
		return failure(fmt.Sprintf("grade exceeds limit of %d", p.limits.MaxGrade))
	}

	c, err := contfrac.ConvergentAt(x, grade)
	if err != nil {
		if errors.Is(err, contfrac.ErrGradeOutOfRange) {
			return failure(fmt.Sprintf("grade %d exceeds the length of the coefficient sequence", grade))
		}
		return failure(err.Error())
	}

	return success(map[string]interface{}{
		"numerator":   c.Num,
		"denominator": c.Den,
	})
}
