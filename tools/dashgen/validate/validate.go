// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and every metric it selects must be one the
// server actually exports.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/bullion-desk/tools/dashgen/rules"
)

// histogramSuffixes are the series a histogram exposes beyond its base name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects problems found while validating one artifact.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found. Warnings do not fail validation.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

// Err folds the errors into a single error labelled with the artifact name.
func (r Result) Err(artifact string) error {
	if r.Ok() {
		return nil
	}
	return fmt.Errorf("%s: %s", artifact, strings.Join(r.Errors, "; "))
}

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// Expr parses a PromQL expression and checks its metric selectors.
func Expr(expr string, known map[string]bool) Result {
	var res Result

	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("parsing %q: %v", expr, err))
		return res
	}

	names := map[string]bool{}
	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		if vs, ok := node.(*parser.VectorSelector); ok && vs.Name != "" {
			names[vs.Name] = true
		}
		return nil
	})

	if len(names) == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%q selects no metrics", expr))
	}

	for _, name := range sortedKeys(names) {
		if !knownMetric(name, known) {
			res.Errors = append(res.Errors, fmt.Sprintf("%q references unknown metric %s", expr, name))
		}
	}
	return res
}

// Dashboard validates every query target in a built dashboard. The
// dashboard is walked through its JSON form so nested row panels and
// every panel kind are covered the same way.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("encoding dashboard: %v", err))
		return res
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decoding dashboard: %v", err))
		return res
	}

	exprs := collectExprs(doc, nil)
	if len(exprs) == 0 {
		res.Errors = append(res.Errors, "dashboard has no query targets")
		return res
	}

	for _, expr := range exprs {
		res.merge(Expr(expr, known))
	}
	return res
}

// Rules validates every rule expression in a PrometheusRule and checks
// that recording rule names are declared as known metrics.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	if len(cr.Spec.Groups) == 0 {
		res.Errors = append(res.Errors, cr.Metadata.Name+" has no rule groups")
	}

	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			switch {
			case r.IsRecording() == r.IsAlert():
				res.Errors = append(res.Errors, fmt.Sprintf("group %s: rule %q must set exactly one of record or alert", g.Name, r.Expr))
			case r.IsRecording() && !known[r.Record]:
				res.Errors = append(res.Errors, fmt.Sprintf("group %s: recording rule %s is not a known metric", g.Name, r.Record))
			case r.IsAlert() && r.Labels["severity"] == "":
				res.Errors = append(res.Errors, fmt.Sprintf("group %s: alert %s has no severity", g.Name, r.Alert))
			}
			res.merge(Expr(r.Expr, known))
		}
	}
	return res
}

func knownMetric(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// collectExprs returns the expr field of every object nested under a
// targets array.
func collectExprs(v any, out []string) []string {
	switch node := v.(type) {
	case map[string]any:
		if targets, ok := node["targets"].([]any); ok {
			for _, t := range targets {
				if m, ok := t.(map[string]any); ok {
					if expr, ok := m["expr"].(string); ok && expr != "" {
						out = append(out, expr)
					}
				}
			}
		}
		for _, k := range sortedKeys(node) {
			if k == "targets" {
				continue
			}
			out = collectExprs(node[k], out)
		}
	case []any:
		for _, item := range node {
			out = collectExprs(item, out)
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
