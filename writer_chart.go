package godeck

import (
	"fmt"
	"strconv"
	"strings"
)

// writeChartParts emits one chart's part family: the chart XML, its style
// and color companions, the embedded workbook mirror and the rels binding
// them together.
func (w *pptxWriter) writeChartParts(c *Chart, num int) error {
	chartXML, err := chartSpaceXML(c)
	if err != nil {
		return err
	}
	if err := w.addPart(fmt.Sprintf("ppt/charts/chart%d.xml", num), chartXML); err != nil {
		return err
	}
	if err := w.writeRelsPart(fmt.Sprintf("ppt/charts/_rels/chart%d.xml.rels", num), []relEntry{
		{id: "rId1", typ: relTypePackage, target: fmt.Sprintf("../embeddings/Workbook%d.xlsx", num)},
		{id: "rId2", typ: relTypeChartStyle, target: fmt.Sprintf("style%d.xml", num)},
		{id: "rId3", typ: relTypeChartColors, target: fmt.Sprintf("colors%d.xml", num)},
	}); err != nil {
		return err
	}
	if err := w.addPart(fmt.Sprintf("ppt/charts/style%d.xml", num), chartStyleXML()); err != nil {
		return err
	}
	if err := w.addPart(fmt.Sprintf("ppt/charts/colors%d.xml", num), chartColorsXML()); err != nil {
		return err
	}
	workbook, err := buildChartWorkbook(c)
	if err != nil {
		return err
	}
	return w.addPart(fmt.Sprintf("ppt/embeddings/Workbook%d.xlsx", num), workbook)
}

func chartSpaceXML(c *Chart) ([]byte, error) {
	var plot strings.Builder
	switch {
	case c.kind.isScatterLike():
		writeScatterPlot(&plot, c)
	case c.kind == ChartPie, c.kind == ChartDoughnut:
		writePiePlot(&plot, c)
	case c.kind == ChartRadar, c.kind == ChartRadarFilled:
		writeRadarPlot(&plot, c)
	case c.kind == ChartStockHLC, c.kind == ChartStockOHLC:
		writeStockPlot(&plot, c)
	case c.kind == ChartCombo:
		writeComboPlot(&plot, c)
	case c.kind.isBar():
		writeBarPlot(&plot, c)
	case c.kind == ChartArea, c.kind == ChartAreaStacked, c.kind == ChartAreaStacked100:
		writeAreaPlot(&plot, c)
	default:
		writeLinePlot(&plot, c)
	}

	title := "      <c:autoTitleDeleted val=\"1\"/>\n"
	if c.title != "" {
		title = fmt.Sprintf(`      <c:title>
        <c:tx>
          <c:rich>
            <a:bodyPr/>
            <a:lstStyle/>
            <a:p>
              <a:r>
                <a:t>%s</a:t>
              </a:r>
            </a:p>
          </c:rich>
        </c:tx>
        <c:overlay val="0"/>
      </c:title>
      <c:autoTitleDeleted val="0"/>
`, xmlEscape(c.title))
	}

	legend := ""
	if c.legend {
		legend = `      <c:legend>
        <c:legendPos val="b"/>
        <c:overlay val="0"/>
      </c:legend>
`
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<c:chartSpace xmlns:c="%s" xmlns:a="%s" xmlns:r="%s">
  <c:chart>
%s    <c:plotArea>
      <c:layout/>
%s    </c:plotArea>
%s      <c:plotVisOnly val="1"/>
    <c:dispBlanksAs val="gap"/>
  </c:chart>
  <c:externalData r:id="rId1">
    <c:autoUpdate val="0"/>
  </c:externalData>
</c:chartSpace>`, nsChart, nsDrawingML, nsOfficeDocRels,
		title, plot.String(), legend)

	return []byte(content), nil
}

// --- Data references ---

// colLetter returns the spreadsheet column letters for a 0-based index.
func colLetter(idx int) string {
	s := ""
	for idx >= 0 {
		s = string(rune('A'+idx%26)) + s
		idx = idx/26 - 1
	}
	return s
}

// seriesTxXML names the series via a string reference to its header cell.
func seriesTxXML(s *Series, seriesIdx int) string {
	col := colLetter(seriesIdx + 1)
	return fmt.Sprintf(`        <c:tx>
          <c:strRef>
            <c:f>Sheet1!$%s$1</c:f>
            <c:strCache>
              <c:ptCount val="1"/>
              <c:pt idx="0">
                <c:v>%s</c:v>
              </c:pt>
            </c:strCache>
          </c:strRef>
        </c:tx>
`, col, xmlEscape(s.name))
}

func seriesColorXML(s *Series) string {
	if s.color.IsZero() {
		return ""
	}
	return "        <c:spPr>\n          <a:solidFill>" + s.color.clrXML(0) + "</a:solidFill>\n        </c:spPr>\n"
}

// catRefXML caches the category labels from column A, rows 2 and below.
func catRefXML(cats []string) string {
	var pts strings.Builder
	for i, cat := range cats {
		fmt.Fprintf(&pts, "              <c:pt idx=\"%d\">\n                <c:v>%s</c:v>\n              </c:pt>\n",
			i, xmlEscape(cat))
	}
	return fmt.Sprintf(`        <c:cat>
          <c:strRef>
            <c:f>Sheet1!$A$2:$A$%d</c:f>
            <c:strCache>
              <c:ptCount val="%d"/>
%s            </c:strCache>
          </c:strRef>
        </c:cat>
`, len(cats)+1, len(cats), pts.String())
}

// numRefXML caches a numeric vector under the given chart element tag,
// citing the worksheet column the vector is mirrored into.
func numRefXML(tag, col string, values []float64) string {
	var pts strings.Builder
	for i, v := range values {
		fmt.Fprintf(&pts, "              <c:pt idx=\"%d\">\n                <c:v>%s</c:v>\n              </c:pt>\n",
			i, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return fmt.Sprintf(`        <%s>
          <c:numRef>
            <c:f>Sheet1!$%s$2:$%s$%d</c:f>
            <c:numCache>
              <c:formatCode>General</c:formatCode>
              <c:ptCount val="%d"/>
%s            </c:numCache>
          </c:numRef>
        </%s>
`, tag, col, col, len(values)+1, len(values), pts.String(), tag)
}

// categorySeriesXML is the common series body of bar, line, area, radar and
// stock plots: idx and order first, then name, then categories, then values.
func categorySeriesXML(sb *strings.Builder, c *Chart, s *Series, idx int) {
	fmt.Fprintf(sb, "      <c:ser>\n        <c:idx val=\"%d\"/>\n        <c:order val=\"%d\"/>\n", idx, idx)
	sb.WriteString(seriesTxXML(s, idx))
	sb.WriteString(seriesColorXML(s))
	sb.WriteString(catRefXML(c.categories))
	sb.WriteString(numRefXML("c:val", colLetter(idx+1), s.values))
	sb.WriteString("      </c:ser>\n")
}

// --- Axes ---

const (
	catAxisID = 111111111
	valAxisID = 222222222
)

func axisTitleXML(title string) string {
	if title == "" {
		return ""
	}
	return fmt.Sprintf(`        <c:title>
          <c:tx>
            <c:rich>
              <a:bodyPr/>
              <a:lstStyle/>
              <a:p>
                <a:r>
                  <a:t>%s</a:t>
                </a:r>
              </a:p>
            </c:rich>
          </c:tx>
          <c:overlay val="0"/>
        </c:title>
`, xmlEscape(title))
}

func catAxisXML(c *Chart) string {
	return fmt.Sprintf(`      <c:catAx>
        <c:axId val="%d"/>
        <c:scaling>
          <c:orientation val="minMax"/>
        </c:scaling>
        <c:delete val="0"/>
        <c:axPos val="b"/>
%s        <c:crossAx val="%d"/>
      </c:catAx>
`, catAxisID, axisTitleXML(c.xAxisTitle), valAxisID)
}

func valAxisXML(c *Chart) string {
	return fmt.Sprintf(`      <c:valAx>
        <c:axId val="%d"/>
        <c:scaling>
          <c:orientation val="minMax"/>
        </c:scaling>
        <c:delete val="0"/>
        <c:axPos val="l"/>
%s        <c:crossAx val="%d"/>
      </c:valAx>
`, valAxisID, axisTitleXML(c.yAxisTitle), catAxisID)
}

// scatterAxesXML pairs two value axes, X on the bottom and Y on the left.
func scatterAxesXML(c *Chart) string {
	return fmt.Sprintf(`      <c:valAx>
        <c:axId val="%d"/>
        <c:scaling>
          <c:orientation val="minMax"/>
        </c:scaling>
        <c:delete val="0"/>
        <c:axPos val="b"/>
%s        <c:crossAx val="%d"/>
      </c:valAx>
      <c:valAx>
        <c:axId val="%d"/>
        <c:scaling>
          <c:orientation val="minMax"/>
        </c:scaling>
        <c:delete val="0"/>
        <c:axPos val="l"/>
%s        <c:crossAx val="%d"/>
      </c:valAx>
`, catAxisID, axisTitleXML(c.xAxisTitle), valAxisID,
		valAxisID, axisTitleXML(c.yAxisTitle), catAxisID)
}

// --- Plot variants ---

func writeBarPlot(sb *strings.Builder, c *Chart) {
	fmt.Fprintf(sb, "      <c:barChart>\n        <c:barDir val=\"%s\"/>\n        <c:grouping val=\"%s\"/>\n",
		c.kind.barDir(), c.kind.grouping())
	sb.WriteString("        <c:varyColors val=\"0\"/>\n")
	for i, s := range c.series {
		categorySeriesXML(sb, c, s, i)
	}
	if c.kind.grouping() != "clustered" {
		sb.WriteString("        <c:overlap val=\"100\"/>\n")
	}
	fmt.Fprintf(sb, "        <c:axId val=\"%d\"/>\n        <c:axId val=\"%d\"/>\n      </c:barChart>\n", catAxisID, valAxisID)
	sb.WriteString(catAxisXML(c))
	sb.WriteString(valAxisXML(c))
}

func writeLinePlot(sb *strings.Builder, c *Chart) {
	fmt.Fprintf(sb, "      <c:lineChart>\n        <c:grouping val=\"%s\"/>\n        <c:varyColors val=\"0\"/>\n",
		c.kind.grouping())
	for i, s := range c.series {
		fmt.Fprintf(sb, "      <c:ser>\n        <c:idx val=\"%d\"/>\n        <c:order val=\"%d\"/>\n", i, i)
		sb.WriteString(seriesTxXML(s, i))
		sb.WriteString(seriesColorXML(s))
		if c.kind != ChartLineMarkers {
			sb.WriteString("        <c:marker>\n          <c:symbol val=\"none\"/>\n        </c:marker>\n")
		}
		sb.WriteString(catRefXML(c.categories))
		sb.WriteString(numRefXML("c:val", colLetter(i+1), s.values))
		sb.WriteString("        <c:smooth val=\"0\"/>\n      </c:ser>\n")
	}
	sb.WriteString("        <c:marker val=\"1\"/>\n")
	fmt.Fprintf(sb, "        <c:axId val=\"%d\"/>\n        <c:axId val=\"%d\"/>\n      </c:lineChart>\n", catAxisID, valAxisID)
	sb.WriteString(catAxisXML(c))
	sb.WriteString(valAxisXML(c))
}

func writeAreaPlot(sb *strings.Builder, c *Chart) {
	fmt.Fprintf(sb, "      <c:areaChart>\n        <c:grouping val=\"%s\"/>\n        <c:varyColors val=\"0\"/>\n",
		c.kind.grouping())
	for i, s := range c.series {
		categorySeriesXML(sb, c, s, i)
	}
	fmt.Fprintf(sb, "        <c:axId val=\"%d\"/>\n        <c:axId val=\"%d\"/>\n      </c:areaChart>\n", catAxisID, valAxisID)
	sb.WriteString(catAxisXML(c))
	sb.WriteString(valAxisXML(c))
}

func writePiePlot(sb *strings.Builder, c *Chart) {
	elem := "c:pieChart"
	if c.kind == ChartDoughnut {
		elem = "c:doughnutChart"
	}
	fmt.Fprintf(sb, "      <%s>\n        <c:varyColors val=\"1\"/>\n", elem)
	for i, s := range c.series {
		categorySeriesXML(sb, c, s, i)
	}
	sb.WriteString("        <c:firstSliceAng val=\"0\"/>\n")
	if c.kind == ChartDoughnut {
		sb.WriteString("        <c:holeSize val=\"50\"/>\n")
	}
	fmt.Fprintf(sb, "      </%s>\n", elem)
}

func writeRadarPlot(sb *strings.Builder, c *Chart) {
	fmt.Fprintf(sb, "      <c:radarChart>\n        <c:radarStyle val=\"%s\"/>\n        <c:varyColors val=\"0\"/>\n",
		c.kind.radarStyle())
	for i, s := range c.series {
		categorySeriesXML(sb, c, s, i)
	}
	fmt.Fprintf(sb, "        <c:axId val=\"%d\"/>\n        <c:axId val=\"%d\"/>\n      </c:radarChart>\n", catAxisID, valAxisID)
	sb.WriteString(catAxisXML(c))
	sb.WriteString(valAxisXML(c))
}

func writeStockPlot(sb *strings.Builder, c *Chart) {
	sb.WriteString("      <c:stockChart>\n")
	for i, s := range c.series {
		fmt.Fprintf(sb, "      <c:ser>\n        <c:idx val=\"%d\"/>\n        <c:order val=\"%d\"/>\n", i, i)
		sb.WriteString(seriesTxXML(s, i))
		sb.WriteString("        <c:marker>\n          <c:symbol val=\"none\"/>\n        </c:marker>\n")
		sb.WriteString(catRefXML(c.categories))
		sb.WriteString(numRefXML("c:val", colLetter(i+1), s.values))
		sb.WriteString("        <c:smooth val=\"0\"/>\n      </c:ser>\n")
	}
	sb.WriteString("        <c:hiLowLines/>\n")
	if c.kind == ChartStockOHLC {
		sb.WriteString("        <c:upDownBars>\n          <c:gapWidth val=\"150\"/>\n          <c:upBars/>\n          <c:downBars/>\n        </c:upDownBars>\n")
	}
	fmt.Fprintf(sb, "        <c:axId val=\"%d\"/>\n        <c:axId val=\"%d\"/>\n      </c:stockChart>\n", catAxisID, valAxisID)
	sb.WriteString(catAxisXML(c))
	sb.WriteString(valAxisXML(c))
}

func writeScatterPlot(sb *strings.Builder, c *Chart) {
	if c.kind == ChartBubble {
		sb.WriteString("      <c:bubbleChart>\n        <c:varyColors val=\"0\"/>\n")
		for i, s := range c.series {
			fmt.Fprintf(sb, "      <c:ser>\n        <c:idx val=\"%d\"/>\n        <c:order val=\"%d\"/>\n", i, i)
			sb.WriteString(seriesTxXML(s, i))
			sb.WriteString(seriesColorXML(s))
			sb.WriteString(numRefXML("c:xVal", "A", s.xvals))
			sb.WriteString(numRefXML("c:yVal", colLetter(i+1), s.values))
			sb.WriteString(numRefXML("c:bubbleSize", colLetter(1+len(c.series)+i), s.sizes))
			sb.WriteString("      </c:ser>\n")
		}
		fmt.Fprintf(sb, "        <c:axId val=\"%d\"/>\n        <c:axId val=\"%d\"/>\n      </c:bubbleChart>\n", catAxisID, valAxisID)
		sb.WriteString(scatterAxesXML(c))
		return
	}

	fmt.Fprintf(sb, "      <c:scatterChart>\n        <c:scatterStyle val=\"%s\"/>\n        <c:varyColors val=\"0\"/>\n",
		c.kind.scatterStyle())
	for i, s := range c.series {
		fmt.Fprintf(sb, "      <c:ser>\n        <c:idx val=\"%d\"/>\n        <c:order val=\"%d\"/>\n", i, i)
		sb.WriteString(seriesTxXML(s, i))
		sb.WriteString(seriesColorXML(s))
		if c.kind == ChartScatter {
			sb.WriteString("        <c:spPr>\n          <a:ln>\n            <a:noFill/>\n          </a:ln>\n        </c:spPr>\n")
		}
		sb.WriteString(numRefXML("c:xVal", "A", s.xvals))
		sb.WriteString(numRefXML("c:yVal", colLetter(i+1), s.values))
		smooth := "0"
		if c.kind == ChartScatterSmooth {
			smooth = "1"
		}
		fmt.Fprintf(sb, "        <c:smooth val=\"%s\"/>\n      </c:ser>\n", smooth)
	}
	fmt.Fprintf(sb, "        <c:axId val=\"%d\"/>\n        <c:axId val=\"%d\"/>\n      </c:scatterChart>\n", catAxisID, valAxisID)
	sb.WriteString(scatterAxesXML(c))
}

// writeComboPlot splits the series between a bar plot and a line plot on a
// shared axis pair. SeriesDefault plots as bars.
func writeComboPlot(sb *strings.Builder, c *Chart) {
	sb.WriteString("      <c:barChart>\n        <c:barDir val=\"col\"/>\n        <c:grouping val=\"clustered\"/>\n        <c:varyColors val=\"0\"/>\n")
	for i, s := range c.series {
		if s.kind == SeriesAsLine {
			continue
		}
		categorySeriesXML(sb, c, s, i)
	}
	fmt.Fprintf(sb, "        <c:axId val=\"%d\"/>\n        <c:axId val=\"%d\"/>\n      </c:barChart>\n", catAxisID, valAxisID)

	sb.WriteString("      <c:lineChart>\n        <c:grouping val=\"standard\"/>\n        <c:varyColors val=\"0\"/>\n")
	for i, s := range c.series {
		if s.kind != SeriesAsLine {
			continue
		}
		fmt.Fprintf(sb, "      <c:ser>\n        <c:idx val=\"%d\"/>\n        <c:order val=\"%d\"/>\n", i, i)
		sb.WriteString(seriesTxXML(s, i))
		sb.WriteString(seriesColorXML(s))
		sb.WriteString(catRefXML(c.categories))
		sb.WriteString(numRefXML("c:val", colLetter(i+1), s.values))
		sb.WriteString("        <c:smooth val=\"0\"/>\n      </c:ser>\n")
	}
	sb.WriteString("        <c:marker val=\"1\"/>\n")
	fmt.Fprintf(sb, "        <c:axId val=\"%d\"/>\n        <c:axId val=\"%d\"/>\n      </c:lineChart>\n", catAxisID, valAxisID)

	sb.WriteString(catAxisXML(c))
	sb.WriteString(valAxisXML(c))
}

// --- Style companions ---

func chartStyleXML() []byte {
	return []byte(xmlDecl + `<cs:chartStyle xmlns:cs="http://schemas.microsoft.com/office/drawing/2012/chartStyle" xmlns:a="` + nsDrawingML + `" id="201">
  <cs:axisTitle>
    <cs:lnRef idx="0"/>
    <cs:fillRef idx="0"/>
    <cs:effectRef idx="0"/>
    <cs:fontRef idx="minor">
      <a:schemeClr val="tx1"/>
    </cs:fontRef>
    <cs:defRPr sz="1000" kern="1200"/>
  </cs:axisTitle>
  <cs:categoryAxis>
    <cs:lnRef idx="0"/>
    <cs:fillRef idx="0"/>
    <cs:effectRef idx="0"/>
    <cs:fontRef idx="minor">
      <a:schemeClr val="tx1"/>
    </cs:fontRef>
    <cs:defRPr sz="900" kern="1200"/>
  </cs:categoryAxis>
  <cs:dataPoint>
    <cs:lnRef idx="0"/>
    <cs:fillRef idx="1">
      <cs:styleClr val="auto"/>
    </cs:fillRef>
    <cs:effectRef idx="0"/>
    <cs:fontRef idx="minor"/>
  </cs:dataPoint>
  <cs:title>
    <cs:lnRef idx="0"/>
    <cs:fillRef idx="0"/>
    <cs:effectRef idx="0"/>
    <cs:fontRef idx="minor">
      <a:schemeClr val="tx1"/>
    </cs:fontRef>
    <cs:defRPr sz="1400" kern="1200" spc="0" baseline="0"/>
  </cs:title>
  <cs:valueAxis>
    <cs:lnRef idx="0"/>
    <cs:fillRef idx="0"/>
    <cs:effectRef idx="0"/>
    <cs:fontRef idx="minor">
      <a:schemeClr val="tx1"/>
    </cs:fontRef>
    <cs:defRPr sz="900" kern="1200"/>
  </cs:valueAxis>
</cs:chartStyle>`)
}

func chartColorsXML() []byte {
	return []byte(xmlDecl + `<cs:colorStyle xmlns:cs="http://schemas.microsoft.com/office/drawing/2012/chartStyle" xmlns:a="` + nsDrawingML + `" meth="cycle" id="10">
  <a:schemeClr val="accent1"/>
  <a:schemeClr val="accent2"/>
  <a:schemeClr val="accent3"/>
  <a:schemeClr val="accent4"/>
  <a:schemeClr val="accent5"/>
  <a:schemeClr val="accent6"/>
  <cs:variation/>
  <cs:variation>
    <a:lumMod val="60000"/>
  </cs:variation>
  <cs:variation>
    <a:lumMod val="80000"/>
    <a:lumOff val="20000"/>
  </cs:variation>
</cs:colorStyle>`)
}
