package godeck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quarterlySales() *Chart {
	c := NewChart(ChartBar, testTransform())
	c.SetTitle("Quarterly Sales")
	c.SetCategories([]string{"Q1", "Q2", "Q3", "Q4"})
	c.AddSeries(NewSeries("2023", []float64{10, 20, 30, 40}))
	c.AddSeries(NewSeries("2024", []float64{15, 25, 35, 45}))
	return c
}

func TestChartValidation(t *testing.T) {
	c := NewChart(ChartBar, testTransform())
	err := c.validate()
	require.Error(t, err)
	kind, _ := KindOf(err)
	assert.Equal(t, ErrInvalidInput, kind)

	c.SetCategories([]string{"A", "B"})
	c.AddSeries(NewSeries("s", []float64{1, 2, 3}))
	err = c.validate()
	require.Error(t, err, "series length must match category count")

	require.NoError(t, quarterlySales().validate())
}

func TestScatterValidation(t *testing.T) {
	c := NewChart(ChartScatter, testTransform())
	c.AddSeries(NewXYSeries("s", []float64{1, 2}, []float64{1, 2, 3}))
	err := c.validate()
	require.Error(t, err)
	kind, _ := KindOf(err)
	assert.Equal(t, ErrInvalidInput, kind)

	c = NewChart(ChartBubble, testTransform())
	c.AddSeries(NewBubbleSeries("s", []float64{1, 2}, []float64{1, 2}, []float64{5}))
	require.Error(t, c.validate())
}

func TestStockValidation(t *testing.T) {
	c := NewChart(ChartStockHLC, testTransform())
	c.SetCategories([]string{"Mon", "Tue"})
	c.AddSeries(NewSeries("High", []float64{10, 11}))
	c.AddSeries(NewSeries("Low", []float64{8, 9}))
	require.Error(t, c.validate(), "HLC needs exactly 3 series")

	c.AddSeries(NewSeries("Close", []float64{9, 10}))
	require.NoError(t, c.validate())
}

func TestBarChartXML(t *testing.T) {
	data, err := chartSpaceXML(quarterlySales())
	require.NoError(t, err)
	xml := string(data)

	assert.Contains(t, xml, "<a:t>Quarterly Sales</a:t>")
	assert.Contains(t, xml, `<c:barDir val="col"/>`)
	assert.Contains(t, xml, `<c:grouping val="clustered"/>`)
	assert.Contains(t, xml, "<c:v>2023</c:v>")
	assert.Contains(t, xml, "<c:v>2024</c:v>")
	assert.Contains(t, xml, "<c:f>Sheet1!$A$2:$A$5</c:f>")
	assert.Contains(t, xml, "<c:f>Sheet1!$B$2:$B$5</c:f>")
	assert.Contains(t, xml, "<c:f>Sheet1!$C$2:$C$5</c:f>")
	assert.Contains(t, xml, "<c:v>Q1</c:v>")
	assert.Contains(t, xml, "<c:v>45</c:v>")
	assert.Contains(t, xml, `<c:legendPos val="b"/>`)

	// Plot area precedes the legend.
	assert.Less(t, strings.Index(xml, "<c:plotArea>"), strings.Index(xml, "<c:legend>"))
	// Series order follows insertion: idx then order per series.
	assert.Less(t, strings.Index(xml, "<c:v>2023</c:v>"), strings.Index(xml, "<c:v>2024</c:v>"))
}

func TestPieChartXML(t *testing.T) {
	c := NewChart(ChartDoughnut, testTransform())
	c.SetCategories([]string{"A", "B"})
	c.AddSeries(NewSeries("share", []float64{60, 40}))
	data, err := chartSpaceXML(c)
	require.NoError(t, err)
	xml := string(data)
	assert.Contains(t, xml, "<c:doughnutChart>")
	assert.Contains(t, xml, `<c:holeSize val="50"/>`)
	assert.NotContains(t, xml, "<c:catAx>")
}

func TestScatterChartXML(t *testing.T) {
	c := NewChart(ChartScatterSmooth, testTransform())
	c.AddSeries(NewXYSeries("pts", []float64{1, 2, 3}, []float64{2, 4, 8}))
	data, err := chartSpaceXML(c)
	require.NoError(t, err)
	xml := string(data)
	assert.Contains(t, xml, `<c:scatterStyle val="smoothMarker"/>`)
	assert.Contains(t, xml, "<c:xVal>")
	assert.Contains(t, xml, "<c:yVal>")
	assert.Contains(t, xml, `<c:smooth val="1"/>`)

	// X values live in column A, Y values in the series column.
	xVal := xml[strings.Index(xml, "<c:xVal>"):strings.Index(xml, "</c:xVal>")]
	assert.Contains(t, xVal, "<c:f>Sheet1!$A$2:$A$4</c:f>")
	yVal := xml[strings.Index(xml, "<c:yVal>"):strings.Index(xml, "</c:yVal>")]
	assert.Contains(t, yVal, "<c:f>Sheet1!$B$2:$B$4</c:f>")
}

func TestBubbleChartXML(t *testing.T) {
	c := NewChart(ChartBubble, testTransform())
	c.AddSeries(NewBubbleSeries("b", []float64{1, 2}, []float64{3, 4}, []float64{10, 20}))
	data, err := chartSpaceXML(c)
	require.NoError(t, err)
	xml := string(data)
	assert.Contains(t, xml, "<c:bubbleChart>")
	xVal := xml[strings.Index(xml, "<c:xVal>"):strings.Index(xml, "</c:xVal>")]
	assert.Contains(t, xVal, "<c:f>Sheet1!$A$2:$A$3</c:f>")
	// Sizes sit in the column after the single Y column.
	size := xml[strings.Index(xml, "<c:bubbleSize>"):strings.Index(xml, "</c:bubbleSize>")]
	assert.Contains(t, size, "<c:f>Sheet1!$C$2:$C$3</c:f>")
}

func TestScatterWorkbookColumns(t *testing.T) {
	c := NewChart(ChartBubble, testTransform())
	c.AddSeries(NewBubbleSeries("b", []float64{1, 2}, []float64{3, 4}, []float64{10, 20}))
	wb, err := buildChartWorkbook(c)
	require.NoError(t, err)
	sheet, err := ReadPart(wb, "xl/worksheets/sheet1.xml")
	require.NoError(t, err)
	s := string(sheet)
	assert.Contains(t, s, `<c r="A2"><v>1</v></c>`)
	assert.Contains(t, s, `<c r="B2"><v>3</v></c>`)
	assert.Contains(t, s, `<c r="C2"><v>10</v></c>`)
	assert.Contains(t, s, `<c r="C3"><v>20</v></c>`)
}

func TestComboChartXML(t *testing.T) {
	c := NewChart(ChartCombo, testTransform())
	c.SetCategories([]string{"A", "B"})
	c.AddSeries(NewSeries("bars", []float64{1, 2}))
	c.AddSeries(NewSeries("line", []float64{3, 4}).SetKind(SeriesAsLine))
	data, err := chartSpaceXML(c)
	require.NoError(t, err)
	xml := string(data)
	assert.Contains(t, xml, "<c:barChart>")
	assert.Contains(t, xml, "<c:lineChart>")
	assert.Less(t, strings.Index(xml, "<c:barChart>"), strings.Index(xml, "<c:lineChart>"))
}

func TestColLetter(t *testing.T) {
	assert.Equal(t, "A", colLetter(0))
	assert.Equal(t, "B", colLetter(1))
	assert.Equal(t, "Z", colLetter(25))
	assert.Equal(t, "AA", colLetter(26))
	assert.Equal(t, "AB", colLetter(27))
}

func TestChartWorkbook(t *testing.T) {
	wb, err := buildChartWorkbook(quarterlySales())
	require.NoError(t, err)
	parts, err := ListParts(wb)
	require.NoError(t, err)
	assert.Contains(t, parts, "xl/workbook.xml")
	assert.Contains(t, parts, "xl/worksheets/sheet1.xml")

	sheet, err := ReadPart(wb, "xl/worksheets/sheet1.xml")
	require.NoError(t, err)
	assert.Contains(t, string(sheet), "<t>Q1</t>")
	assert.Contains(t, string(sheet), "<t>2024</t>")
	assert.Contains(t, string(sheet), "<v>45</v>")
}
