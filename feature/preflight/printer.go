package preflight

import (
	"fmt"
	"io"
	"strings"

	"finaid-preflight/feature/preflight/checks"

	"github.com/olekukonko/tablewriter"
)

// Status glyphs.
const (
	glyphOK      = "✓"
	glyphFail    = "✗"
	glyphWarning = "⚠️"
)

// Printer renders a verification run as plain text. All canonical output
// goes through one writer so runs against an unchanged tree are identical
// byte for byte.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Header prints the report title block.
func (p *Printer) Header() {
	fmt.Fprintln(p.out, "Financial Aid Assistant - Structure Verification")
	fmt.Fprintln(p.out, strings.Repeat("=", 50))
}

// Blank prints the separator line between check groups.
func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

// Results prints one line per check: glyph, label, full path.
func (p *Printer) Results(results []checks.Result) {
	for _, r := range results {
		glyph := glyphOK
		if !r.Exists {
			glyph = glyphFail
		}
		fmt.Fprintf(p.out, "%s %s: %s\n", glyph, r.Entry.Label, r.FullPath)
	}
}

// DatabaseFile prints the advisory data store line. A missing file warns
// instead of failing and carries an explanatory note.
func (p *Printer) DatabaseFile(r checks.Result) {
	glyph := glyphOK
	if !r.Exists {
		glyph = glyphWarning
	}
	fmt.Fprintf(p.out, "%s %s: %s\n", glyph, r.Entry.Label, r.FullPath)
	if !r.Exists {
		fmt.Fprintln(p.out, "   Note: Database will be created on first run")
	}
}

// Summary prints the confirmation block when everything passed, or the
// warning block otherwise.
func (p *Printer) Summary(directoriesOK, filesOK bool) {
	if directoriesOK && filesOK {
		fmt.Fprintf(p.out, "%s All required components are in place!\n", glyphOK)
		fmt.Fprintf(p.out, "%s Frontend-backend integration is properly configured\n", glyphOK)
		fmt.Fprintf(p.out, "%s Application is ready for manual testing\n", glyphOK)
		return
	}
	fmt.Fprintf(p.out, "%s  Some components are missing or incomplete\n", glyphWarning)
	fmt.Fprintln(p.out, "Please check the missing items above")
}

// Probes prints the advisory probe findings, when any probe ran.
func (p *Printer) Probes(r *Report) {
	if r.DatabaseProbe == nil && r.StorageProbe == nil {
		return
	}
	p.Blank()
	if dp := r.DatabaseProbe; dp != nil {
		switch {
		case !dp.Reachable:
			fmt.Fprintf(p.out, "%s Database Probe: unreachable (%s)\n", glyphWarning, dp.Error)
		case len(dp.MissingTables) > 0:
			fmt.Fprintf(p.out, "%s Database Probe: reachable, missing tables: %s\n", glyphWarning, strings.Join(dp.MissingTables, ", "))
		default:
			fmt.Fprintf(p.out, "%s Database Probe: reachable, schema present\n", glyphOK)
		}
	}
	if sp := r.StorageProbe; sp != nil {
		switch {
		case sp.Error != "":
			fmt.Fprintf(p.out, "%s Storage Probe: %s\n", glyphWarning, sp.Error)
		case len(sp.MissingPrefixes) > 0:
			fmt.Fprintf(p.out, "%s Storage Probe: bucket present, empty prefixes: %s\n", glyphWarning, strings.Join(sp.MissingPrefixes, ", "))
		default:
			fmt.Fprintf(p.out, "%s Storage Probe: bucket and prefixes present\n", glyphOK)
		}
	}
}

// Report prints the canonical sequence: header, directories, files, data
// file advisory, summary, then any probe findings.
func (p *Printer) Report(r *Report) {
	p.Header()
	p.Results(r.Directories)
	p.Blank()
	p.Results(r.Files)
	p.Blank()
	p.DatabaseFile(r.Database)
	p.Blank()
	p.Summary(r.DirectoriesOK, r.FilesOK)
	p.Probes(r)
}

// Table renders every check of the run as a borderless table.
func (p *Printer) Table(r *Report) {
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Status", "Type", "Component", "Path"})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	appendRows := func(kind string, results []checks.Result) {
		for _, res := range results {
			glyph := glyphOK
			if !res.Exists {
				glyph = glyphFail
			}
			table.Append([]string{glyph, kind, res.Entry.Label, res.FullPath})
		}
	}
	appendRows("dir", r.Directories)
	appendRows("file", r.Files)

	glyph := glyphOK
	if !r.Database.Exists {
		glyph = glyphWarning
	}
	table.Append([]string{glyph, "data", r.Database.Entry.Label, r.Database.FullPath})

	table.Render()
}
