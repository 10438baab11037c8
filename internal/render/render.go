// Package render formats predictions and coverage reports for the CLI.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xtding233/luckwood/internal/lottery"
)

type groupJSON struct {
	Numbers    []int `json:"numbers"`
	Primary    []int `json:"primary"`
	Companions []int `json:"companions"`
	Feature    int   `json:"feature"`
}

type predictionsJSON struct {
	Game   lottery.Game `json:"game"`
	Groups []groupJSON  `json:"groups"`
}

// Text writes one line per group, e.g. "Group 1: 03 07 12 19 25 31 | 09".
// With more than one companion the feature value is starred.
func Text(w io.Writer, g lottery.Game, preds []lottery.Prediction) error {
	if r, ok := lottery.RulesFor(g); ok {
		if _, err := fmt.Fprintln(w, r.DisplayName); err != nil {
			return err
		}
	}
	for i, p := range preds {
		comps := make([]string, len(p.Companions))
		for k, c := range p.Companions {
			comps[k] = ball(c)
			if len(p.Companions) > 1 && c == p.Feature {
				comps[k] += "*"
			}
		}
		if _, err := fmt.Fprintf(w, "Group %d: %s | %s\n", i+1, balls(p.Primary), strings.Join(comps, " ")); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the predictions as a single object.
func JSON(w io.Writer, g lottery.Game, preds []lottery.Prediction) error {
	out := predictionsJSON{Game: g, Groups: make([]groupJSON, len(preds))}
	for i, p := range preds {
		out.Groups[i] = groupJSON{
			Numbers:    p.Numbers(),
			Primary:    p.Primary,
			Companions: p.Companions,
			Feature:    p.Feature,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// CoverageText writes a human readable coverage summary.
func CoverageText(w io.Writer, rep lottery.CoverageReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "game: %s  trials: %d\n", rep.Game, rep.Trials)
	fmt.Fprintf(&b, "primary   mean=%.2f sd=%.2f min=%.0f max=%.0f p50=%.1f\n",
		rep.Primary.Mean, rep.Primary.StdDev, rep.Primary.Min, rep.Primary.Max, rep.Primary.P50)
	fmt.Fprintf(&b, "companion mean=%.2f sd=%.2f min=%.0f max=%.0f p50=%.1f\n",
		rep.Companion.Mean, rep.Companion.StdDev, rep.Companion.Min, rep.Companion.Max, rep.Companion.P50)
	fmt.Fprintf(&b, "companion chi2=%.3f dof=%d p=%.4f\n", rep.ChiSquare, rep.DegreesOfFreedom, rep.PValue)
	if rep.Complete() {
		b.WriteString("coverage: complete\n")
	} else {
		fmt.Fprintf(&b, "missing primary: %s\n", balls(rep.MissingPrimary))
		fmt.Fprintf(&b, "missing companion: %s\n", balls(rep.MissingCompanion))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// CoverageJSON writes the report as JSON.
func CoverageJSON(w io.Writer, rep lottery.CoverageReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func ball(v int) string { return fmt.Sprintf("%02d", v) }

func balls(vs []int) string {
	if len(vs) == 0 {
		return "-"
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = ball(v)
	}
	return strings.Join(parts, " ")
}
