package godeck

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// buildChartWorkbook mirrors a chart's data into a minimal xlsx so readers
// can open the source sheet behind the chart. Categories fill column A from
// row 2, series fill columns B onward with their name in row 1. Scatter
// charts put the X vector in column A instead.
func buildChartWorkbook(c *Chart) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	add := func(path, content string) error {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     path,
			Method:   zip.Deflate,
			Modified: sentinelTime,
		})
		if err != nil {
			return wrapError(ErrInternal, err, "workbook entry %s", path)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			return wrapError(ErrInternal, err, "workbook entry %s", path)
		}
		return nil
	}

	contentTypes := xmlDecl + `<Types xmlns="` + nsContentTypes + `">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>
  <Override PartName="/xl/worksheets/sheet1.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>
</Types>`
	if err := add("[Content_Types].xml", contentTypes); err != nil {
		return nil, err
	}

	rootRels := xmlDecl + `<Relationships xmlns="` + nsRelationships + `">
  <Relationship Id="rId1" Type="` + relTypeOfficeDoc + `" Target="xl/workbook.xml"/>
</Relationships>`
	if err := add("_rels/.rels", rootRels); err != nil {
		return nil, err
	}

	workbook := xmlDecl + `<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="` + nsOfficeDocRels + `">
  <sheets>
    <sheet name="Sheet1" sheetId="1" r:id="rId1"/>
  </sheets>
</workbook>`
	if err := add("xl/workbook.xml", workbook); err != nil {
		return nil, err
	}

	workbookRels := xmlDecl + `<Relationships xmlns="` + nsRelationships + `">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
</Relationships>`
	if err := add("xl/_rels/workbook.xml.rels", workbookRels); err != nil {
		return nil, err
	}

	if err := add("xl/worksheets/sheet1.xml", chartSheetXML(c)); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, wrapError(ErrInternal, err, "close workbook archive")
	}
	return buf.Bytes(), nil
}

func chartSheetXML(c *Chart) string {
	strCell := func(ref, v string) string {
		return fmt.Sprintf(`      <c r="%s" t="inlineStr"><is><t>%s</t></is></c>
`, ref, xmlEscape(v))
	}
	numCell := func(ref string, v float64) string {
		return fmt.Sprintf(`      <c r="%s"><v>%s</v></c>
`, ref, strconv.FormatFloat(v, 'g', -1, 64))
	}

	var rows strings.Builder

	// Header row: series names in B1, C1, ...
	rows.WriteString("    <row r=\"1\">\n")
	for i, s := range c.series {
		rows.WriteString(strCell(colLetter(i+1)+"1", s.name))
	}
	rows.WriteString("    </row>\n")

	if c.kind.isScatterLike() {
		n := 0
		for _, s := range c.series {
			for _, l := range []int{len(s.xvals), len(s.values), len(s.sizes)} {
				if l > n {
					n = l
				}
			}
		}
		for r := 0; r < n; r++ {
			ref := strconv.Itoa(r + 2)
			rows.WriteString("    <row r=\"" + ref + "\">\n")
			if len(c.series) > 0 && r < len(c.series[0].xvals) {
				rows.WriteString(numCell("A"+ref, c.series[0].xvals[r]))
			}
			for i, s := range c.series {
				if r < len(s.values) {
					rows.WriteString(numCell(colLetter(i+1)+ref, s.values[r]))
				}
			}
			// Bubble sizes go in the columns after the Y vectors.
			for i, s := range c.series {
				if r < len(s.sizes) {
					rows.WriteString(numCell(colLetter(1+len(c.series)+i)+ref, s.sizes[r]))
				}
			}
			rows.WriteString("    </row>\n")
		}
	} else {
		for r, cat := range c.categories {
			ref := strconv.Itoa(r + 2)
			rows.WriteString("    <row r=\"" + ref + "\">\n")
			rows.WriteString(strCell("A"+ref, cat))
			for i, s := range c.series {
				if r < len(s.values) {
					rows.WriteString(numCell(colLetter(i+1)+ref, s.values[r]))
				}
			}
			rows.WriteString("    </row>\n")
		}
	}

	return xmlDecl + `<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <sheetData>
` + rows.String() + `  </sheetData>
</worksheet>`
}
