package font

import (
	"strconv"
	"strings"
)

// testBDF is a two-glyph font: a blank space and an "A" whose top row alone is lit.
var testBDF = strings.Join([]string{
	"STARTFONT 2.1",
	"FONT -gitart-test-medium-r-normal--7-70-75-75-c-50-iso10646-1",
	"SIZE 7 75 75",
	"FONTBOUNDINGBOX 5 7 0 0",
	"STARTPROPERTIES 2",
	"FONT_ASCENT 7",
	"FONT_DESCENT 0",
	"ENDPROPERTIES",
	"CHARS 2",
	"STARTCHAR space",
	"ENCODING 32",
	"SWIDTH 500 0",
	"DWIDTH 5 0",
	"BBX 5 7 0 0",
	"BITMAP",
	"00", "00", "00", "00", "00", "00", "00",
	"ENDCHAR",
	"STARTCHAR A",
	"ENCODING 65",
	"SWIDTH 500 0",
	"DWIDTH 5 0",
	"BBX 5 7 0 0",
	"BITMAP",
	"F8", "00", "00", "00", "00", "00", "00",
	"ENDCHAR",
	"ENDFONT",
	"",
}, "\n")

func bdfHeader(chars int) string {
	return strings.Join([]string{
		"STARTFONT 2.1",
		"FONT -gitart-test-medium-r-normal--7-70-75-75-c-50-iso10646-1",
		"SIZE 7 75 75",
		"FONTBOUNDINGBOX 5 7 0 0",
		"STARTPROPERTIES 2",
		"FONT_ASCENT 7",
		"FONT_DESCENT 0",
		"ENDPROPERTIES",
		"CHARS " + strconv.Itoa(chars),
		"",
	}, "\n")
}

func bdfGlyph(name string, encoding int, bbx string, rows ...string) string {
	lines := []string{
		"STARTCHAR " + name,
		"ENCODING " + strconv.Itoa(encoding),
		"SWIDTH 500 0",
		"DWIDTH 5 0",
		"BBX " + bbx,
		"BITMAP",
	}
	lines = append(lines, rows...)
	lines = append(lines, "ENDCHAR", "")
	return strings.Join(lines, "\n")
}

const bdfTrailer = "ENDFONT\n"
