package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	colorBlack    = "000000"
	colorWhite    = "FFFFFF"
	colorDarkGrey = "404040"
	colorLink     = "0000FF"

	borderThin = 1
	fillSolid  = 1
)

// cellStyle is a workbook-independent style description. It is passed by
// value; the package-level definitions are never mutated.
type cellStyle struct {
	Bold      bool
	FontColor string
	FillColor string
	Underline string
	Wrap      bool
}

var (
	headerStyle = cellStyle{Bold: true, FontColor: colorWhite, FillColor: colorDarkGrey}
	bodyStyle   = cellStyle{FontColor: colorBlack, FillColor: colorWhite}
	wrapStyle   = bodyStyle.wrapped()
	linkStyle   = bodyStyle.linked()

	wrapLinkStyle = wrapStyle.linked()
)

func (s cellStyle) wrapped() cellStyle {
	s.Wrap = true
	return s
}

func (s cellStyle) linked() cellStyle {
	s.FontColor = colorLink
	s.Underline = "single"
	return s
}

func (s cellStyle) toExcelize() *excelize.Style {
	style := &excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: colorBlack, Style: borderThin},
			{Type: "top", Color: colorBlack, Style: borderThin},
			{Type: "right", Color: colorBlack, Style: borderThin},
			{Type: "bottom", Color: colorBlack, Style: borderThin},
		},
		Fill: excelize.Fill{Type: "pattern", Pattern: fillSolid, Color: []string{s.FillColor}},
		Font: &excelize.Font{Bold: s.Bold, Color: s.FontColor, Underline: s.Underline},
	}
	if s.Wrap {
		style.Alignment = &excelize.Alignment{WrapText: true}
	}
	return style
}

// styleSet holds the style IDs registered in one workbook.
type styleSet struct {
	header   int
	body     int
	wrap     int
	link     int
	wrapLink int
}

func registerStyles(f *excelize.File) (styleSet, error) {
	var set styleSet
	for _, entry := range []struct {
		id    *int
		style cellStyle
	}{
		{&set.header, headerStyle},
		{&set.body, bodyStyle},
		{&set.wrap, wrapStyle},
		{&set.link, linkStyle},
		{&set.wrapLink, wrapLinkStyle},
	} {
		id, err := f.NewStyle(entry.style.toExcelize())
		if err != nil {
			return styleSet{}, fmt.Errorf("register cell style: %w", err)
		}
		*entry.id = id
	}
	return set, nil
}

// linkFor returns the hyperlink style that keeps the column's wrap setting.
func (s styleSet) linkFor(wrap bool) int {
	if wrap {
		return s.wrapLink
	}
	return s.link
}
