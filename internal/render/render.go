// Package render formats profiles for the terminal.
package render

import (
	"strings"

	"github.com/kth-tools/kthprofile/pkg/domain"
)

const indent = "    "

// OSC-8 hyperlink introducer and the ST (ESC \) terminator.
const (
	osc8 = "\x1b]8;;"
	st   = "\x1b\\"
)

// Optional field labels, padded to the same width.
const (
	labelTitle    = "Titel:"
	labelLocation = "Plats:"
	labelPhone    = "Tel:  "
)

// Profile renders p as newline-terminated lines: a hyperlinked name with the
// email address, one line per department, then any optional fields present.
func Profile(p *domain.Profile) string {
	var b strings.Builder

	b.WriteString(Hyperlink(p.URL, p.GivenName+" "+p.FamilyName))
	b.WriteString(" <" + p.Email + ">\n")

	for _, d := range p.WorksFor {
		b.WriteString(indent + d.Name + "\n")
	}

	writeOptional(&b, labelTitle, p.JobTitle)
	writeOptional(&b, labelLocation, p.WorkLocation)
	writeOptional(&b, labelPhone, p.Telephone)

	return b.String()
}

// Hyperlink wraps label in an OSC-8 sequence pointing at target. Both
// sequences end in ST, not BEL.
func Hyperlink(target, label string) string {
	return osc8 + target + st + label + osc8 + st
}

func writeOptional(b *strings.Builder, label string, value *string) {
	if value == nil {
		return
	}
	b.WriteString(indent + label + " " + *value + "\n")
}
