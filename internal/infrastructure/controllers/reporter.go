package controllers

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"

	"github.com/rios0rios0/cargoupdate/internal/domain/commands"
	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
)

const (
	arrow     = "→"
	nameWidth = 30
	specWidth = 10
)

// Reporter renders a CheckResult as the terminal table.
type Reporter struct {
	out    io.Writer
	header *color.Color
	bold   *color.Color
	major  *color.Color
	minor  *color.Color
	patch  *color.Color
	count  *color.Color
	dim    *color.Color
}

// NewReporter creates a reporter writing to out. Colors follow fatih/color's
// terminal detection.
func NewReporter(out io.Writer) *Reporter {
	return newReporter(out, !color.NoColor)
}

func newReporter(out io.Writer, colored bool) *Reporter {
	r := &Reporter{
		out:    out,
		header: color.New(color.Bold, color.Underline),
		bold:   color.New(color.Bold),
		major:  color.New(color.FgRed, color.Bold),
		minor:  color.New(color.FgCyan),
		patch:  color.New(color.FgGreen),
		count:  color.New(color.FgYellow),
		dim:    color.New(color.FgHiBlack),
	}
	if !colored {
		for _, c := range []*color.Color{r.header, r.bold, r.major, r.minor, r.patch, r.count, r.dim} {
			c.DisableColor()
		}
	}
	return r
}

// Render prints the result. With showAll, dependencies that are up to date
// or could not be resolved are listed too.
func (r *Reporter) Render(result *commands.CheckResult, showAll bool) {
	manifest := filepath.Base(result.ManifestPath)
	if len(result.Dependencies) == 0 {
		fmt.Fprintln(r.out, "No dependencies found.")
		return
	}

	fmt.Fprintf(r.out, "\n%s\n", r.header.Sprint("Dependency Check Results"))
	fmt.Fprintf(r.out, "Total dependencies: %d\n", len(result.Dependencies))
	fmt.Fprintf(r.out, "Outdated dependencies: %s\n\n", r.count.Sprint(strconv.Itoa(len(result.Updates))))

	for _, update := range result.Updates {
		fmt.Fprintf(r.out, " %-*s %*s  %s  %s\n",
			nameWidth, update.Dependency.Name,
			specWidth, update.Dependency.VersionSpec,
			arrow,
			r.severityColor(update.Severity).Sprint(update.Latest.String()),
		)
	}

	if showAll {
		r.renderRest(result)
	}

	if len(result.Updates) == 0 {
		fmt.Fprintln(r.out, r.patch.Sprint("All dependencies are up to date!"))
		return
	}

	r.renderLegend()

	if result.Upgraded {
		fmt.Fprintf(r.out, "\n%s\n", r.patch.Sprintf("%s has been updated! (%d upgraded)", manifest, len(result.Applied)))
		return
	}
	fmt.Fprintf(r.out, "\n%s\n", r.bold.Sprintf("Run cargoupdate -u to upgrade %s", result.ManifestPath))
}

func (r *Reporter) renderRest(result *commands.CheckResult) {
	outdated := make(map[string]bool, len(result.Updates))
	for _, update := range result.Updates {
		outdated[update.Dependency.Section.Key()+"/"+update.Dependency.Name] = true
	}

	for _, dep := range result.Dependencies {
		if outdated[dep.Section.Key()+"/"+dep.Name] {
			continue
		}
		status := "up to date"
		if _, ok := result.Latest[dep.Name]; !ok {
			status = "not resolved"
		} else if _, err := entities.ToComparable(dep.VersionSpec); err != nil {
			status = "unsupported version spec"
		}
		fmt.Fprintf(r.out, " %-*s %*s  %s\n",
			nameWidth, dep.Name, specWidth, dep.VersionSpec, r.dim.Sprint(status),
		)
	}
	fmt.Fprintln(r.out)
}

func (r *Reporter) renderLegend() {
	fmt.Fprintf(r.out, "\n%s\n", r.bold.Sprint("Legend:"))
	fmt.Fprintf(r.out, "  %s Major version update\n", r.major.Sprint("Red"))
	fmt.Fprintf(r.out, "  %s Minor version update\n", r.minor.Sprint("Cyan"))
	fmt.Fprintf(r.out, "  %s Patch version update\n", r.patch.Sprint("Green"))
}

func (r *Reporter) severityColor(severity entities.Severity) *color.Color {
	switch severity {
	case entities.SeverityMajor:
		return r.major
	case entities.SeverityMinor:
		return r.minor
	default:
		return r.patch
	}
}
