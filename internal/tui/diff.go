package tui

import (
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/esimov/m3/color"
)

// Changed lists the roles whose colors differ between a and b.
func Changed(a, b *color.Scheme) []color.Role {
	var out []color.Role
	for _, r := range a.Roles() {
		if a.Get(r) != b.Get(r) {
			out = append(out, r)
		}
	}
	return out
}

// Diff renders a role by role comparison of a and b. Unchanged roles are
// shown faint; changed ones as a removed and an added line with the differing
// hex digits highlighted.
func Diff(a, b *color.Scheme) string {
	var sb strings.Builder
	changed := 0
	for _, r := range a.Roles() {
		before, after := a.Get(r).String(), b.Get(r).String()
		name := roleStyle.Render(r.String())
		if before == after {
			sb.WriteString("  " + faint.Render(name+before) + "\n")
			continue
		}
		changed++

		d := dmp.New()
		diffs := d.DiffMain(before, after, false)
		d.DiffCleanupSemantic(diffs)

		sb.WriteString(diffDelLine.Render("- " + name))
		for _, df := range diffs {
			switch df.Type {
			case dmp.DiffDelete:
				sb.WriteString(diffDelChar.Render(df.Text))
			case dmp.DiffEqual:
				sb.WriteString(diffDelLine.Render(df.Text))
			}
		}
		sb.WriteString(" " + swatch(a.Get(r)) + "\n")

		sb.WriteString(diffAddLine.Render("+ " + name))
		for _, df := range diffs {
			switch df.Type {
			case dmp.DiffInsert:
				sb.WriteString(diffAddChar.Render(df.Text))
			case dmp.DiffEqual:
				sb.WriteString(diffAddLine.Render(df.Text))
			}
		}
		sb.WriteString(" " + swatch(b.Get(r)) + "\n")
	}
	if changed == 0 {
		return "No changes\n"
	}
	return sb.String()
}
