// Package validate checks generated dashboard definitions before they are
// written: every Prometheus target must parse as PromQL, and every metric
// it selects must be a known exported metric or recording rule.
package validate

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings for one dashboard.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors. Warnings do not fail
// validation.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

// Dashboard validates every Prometheus query in the dashboard against the
// known metric set.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			for _, inner := range p.RowPanel.Panels {
				checkPanel(&res, inner, known)
			}
		}
		if p.Panel != nil {
			checkPanel(&res, *p.Panel, known)
		}
	}

	return res
}

func checkPanel(res *Result, p dashboard.Panel, known map[string]bool) {
	title := "(untitled)"
	if p.Title != nil {
		title = *p.Title
	}

	if len(p.Targets) == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no targets", title))
		return
	}

	for _, target := range p.Targets {
		expr := exprOf(target)
		if expr == "" {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("panel %q has a non-Prometheus or empty target", title))
			continue
		}
		checkExpr(res, title, expr, known)
	}
}

// exprOf extracts the PromQL expression from a built query target. Built
// dashboards may carry the query by value or by pointer.
func exprOf(target any) string {
	switch q := target.(type) {
	case prometheus.Dataquery:
		return q.Expr
	case *prometheus.Dataquery:
		return q.Expr
	default:
		return ""
	}
}

func checkExpr(res *Result, title, expr string, known map[string]bool) {
	ast, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors,
			fmt.Sprintf("panel %q: invalid PromQL %q: %v", title, expr, err))
		return
	}

	parser.Inspect(ast, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[vs.Name] && !known[baseMetric(vs.Name)] {
			res.Errors = append(res.Errors,
				fmt.Sprintf("panel %q: unknown metric %q", title, vs.Name))
		}
		return nil
	})
}

// baseMetric strips histogram and summary sample suffixes so that
// foo_seconds_bucket resolves against the exported foo_seconds.
func baseMetric(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
			return name[:len(name)-len(suffix)]
		}
	}
	return name
}
