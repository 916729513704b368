package xlsxhtml

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerissecure/xlsxhtml/colors"
	"github.com/aerissecure/xlsxhtml/grid"
	"github.com/aerissecure/xlsxhtml/sheet"
	"github.com/aerissecure/xlsxhtml/style"
)

func intp(v int) *int { return &v }

// testWorkbook builds a small in-memory workbook: a 2x3 sheet with a merged
// title cell, a bold red style, and a conditional rule turning cells equal to
// "X" yellow.
func testWorkbook() *sheet.Workbook {
	styles := &sheet.Stylesheet{
		Fills: []sheet.Fill{
			{Pattern: "none"},
			{Pattern: "solid", Fg: colors.RGBRef("FFFF0000")},
		},
		Fonts: []sheet.Font{
			{Name: "Calibri", SizePt: 11},
			{Name: "Calibri", SizePt: 11, Bold: true, Color: colors.RGBRef("FFFF0000")},
		},
		Borders: []sheet.Border{{}},
		CellFormats: []sheet.CellFormat{
			{FontID: intp(0), FillID: intp(0), BorderID: intp(0)},
			{FontID: intp(1), FillID: intp(1), BorderID: intp(0)},
		},
		Diffs: []sheet.DiffFormat{
			{Fill: &sheet.Fill{Pattern: "solid", Fg: colors.RGBRef("FFFFFF00")}},
		},
	}
	ws := &sheet.Sheet{
		Name:      "Report",
		Dimension: "A1:C2",
		Merges:    []string{"A1:B1"},
		Rows: []*sheet.Row{
			{
				Index: 1,
				Cells: []*sheet.Cell{
					{Col: 1, Value: "Title", Kind: sheet.ValueText, Style: intp(1)},
					{Col: 3, Value: "X", Kind: sheet.ValueText},
				},
			},
			{
				Index: 2,
				Cells: []*sheet.Cell{
					{Col: 1, Value: "42", Kind: sheet.ValueNumber},
				},
			},
		},
		CondFmts: []sheet.RuleGroup{
			{
				Ranges: []string{"C1:C1"},
				Rules: []sheet.Rule{
					{Priority: 1, Pred: sheet.PredEquals, Text: "X", DiffIndex: intp(0)},
				},
			},
		},
	}
	return &sheet.Workbook{Sheets: []*sheet.Sheet{ws}, Styles: styles}
}

func TestRenderModel(t *testing.T) {
	model, err := RenderModel(testWorkbook(), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, model.Sheets, 1)

	sh := model.Sheets[0]
	assert.Equal(t, "Report", sh.Name)
	require.Len(t, sh.Rows, 2)
	require.Len(t, sh.Rows[0].Cells, 3)

	// A1 anchors the A1:B1 merge and carries the bold red cell style.
	a1 := sh.Rows[0].Cells[0]
	require.NotNil(t, a1)
	assert.Equal(t, "A1", a1.Ref)
	assert.Equal(t, 2, a1.ColSpan)
	assert.Equal(t, 1, a1.RowSpan)
	assert.True(t, a1.Style.Bold)
	assert.True(t, a1.Style.HasFill)
	assert.Equal(t, colors.RGBA{R: 255, A: 255}, a1.Style.Fill)
	assert.Equal(t, colors.RGBA{R: 255, A: 255}, a1.Style.FontColor)

	// B1 is covered by the merge and suppressed.
	assert.True(t, sh.Rows[0].Suppressed[1])
	assert.Nil(t, sh.Rows[0].Cells[1])

	// C1 matches the conditional rule; the yellow fill overrides the base.
	c1 := sh.Rows[0].Cells[2]
	require.NotNil(t, c1)
	assert.True(t, c1.Style.HasFill)
	assert.Equal(t, colors.RGBA{R: 255, G: 255, A: 255}, c1.Style.Fill)

	// A2 is numeric and right-aligned by default.
	a2 := sh.Rows[1].Cells[0]
	require.NotNil(t, a2)
	assert.Equal(t, "right", a2.Style.HAlign)
	assert.False(t, a2.Style.HasFill)
}

func TestRenderModelRowGaps(t *testing.T) {
	wb := testWorkbook()
	ws := wb.Sheets[0]
	ws.Dimension = ""
	ws.Merges = nil
	ws.CondFmts = nil
	ws.Rows = []*sheet.Row{
		{Index: 1, Cells: []*sheet.Cell{{Col: 1, Value: "a", Kind: sheet.ValueText}}},
		{Index: 2, Cells: []*sheet.Cell{{Col: 1, Value: "b", Kind: sheet.ValueText}}},
		{Index: 5, Cells: []*sheet.Cell{{Col: 1, Value: "c", Kind: sheet.ValueText}}},
	}

	model, err := RenderModel(wb, DefaultOptions())
	require.NoError(t, err)
	sh := model.Sheets[0]
	require.Len(t, sh.Rows, 5)

	// Gap rows 3 and 4 synthesize at the default height, their cells blank
	// but carrying the default resolved style.
	for _, i := range []int{2, 3} {
		assert.InDelta(t, grid.RowHeightPx(grid.DefaultRowHeightPt), sh.Rows[i].HeightPx, 0.001)
		for _, c := range sh.Rows[i].Cells {
			require.NotNil(t, c)
			assert.Empty(t, c.Value)
			assert.False(t, c.Style.HasFill)
		}
	}
	assert.Equal(t, "c", sh.Rows[4].Cells[0].Value)
}

func TestRenderModelBlankCells(t *testing.T) {
	model, err := RenderModel(testWorkbook(), DefaultOptions())
	require.NoError(t, err)
	sh := model.Sheets[0]

	// B2 and C2 hold no data but still resolve: transparent fill with the
	// default light-gray edges.
	edge := style.DefaultEdge(colors.RGB(211, 211, 211))
	for _, col := range []int{1, 2} {
		c := sh.Rows[1].Cells[col]
		require.NotNil(t, c)
		assert.Empty(t, c.Value)
		assert.False(t, c.Style.HasFill)
		assert.Equal(t, edge, c.Style.Left)
		assert.Equal(t, edge, c.Style.Bottom)
	}

	out := RenderWorkbookHTML(model)
	assert.Contains(t, out, "border-left:1px solid #d3d3d3")
	assert.NotContains(t, out, "<td></td>")
}

func TestRenderModelBlankCellConditional(t *testing.T) {
	wb := testWorkbook()
	wb.Sheets[0].CondFmts = []sheet.RuleGroup{
		{
			Ranges: []string{"B2:B2"},
			Rules: []sheet.Rule{
				{Priority: 1, Pred: sheet.PredEquals, Text: "", DiffIndex: intp(0)},
			},
		},
	}

	model, err := RenderModel(wb, DefaultOptions())
	require.NoError(t, err)

	// A rule matching the empty string reaches cells with no data.
	b2 := model.Sheets[0].Rows[1].Cells[1]
	require.NotNil(t, b2)
	assert.True(t, b2.Style.HasFill)
	assert.Equal(t, colors.RGBA{R: 255, G: 255, A: 255}, b2.Style.Fill)
}

func TestRenderModelBlankCellRowStyle(t *testing.T) {
	wb := testWorkbook()
	wb.Sheets[0].Rows[1].Style = intp(1)

	model, err := RenderModel(wb, DefaultOptions())
	require.NoError(t, err)

	// The row's format index cascades into its blank cells.
	b2 := model.Sheets[0].Rows[1].Cells[1]
	require.NotNil(t, b2)
	assert.True(t, b2.Style.Bold)
	assert.True(t, b2.Style.HasFill)
	assert.Equal(t, colors.RGBA{R: 255, A: 255}, b2.Style.Fill)
}

func TestRenderModelProgress(t *testing.T) {
	type call struct{ sheet, totalSheets, row, totalRows int }
	var calls []call

	opts := DefaultOptions()
	opts.Progress = func(sheet, totalSheets, row, totalRows int) error {
		calls = append(calls, call{sheet, totalSheets, row, totalRows})
		return nil
	}
	_, err := RenderModel(testWorkbook(), opts)
	require.NoError(t, err)

	require.Len(t, calls, 2)
	assert.Equal(t, call{1, 1, 1, 2}, calls[0])
	assert.Equal(t, call{1, 1, 2, 2}, calls[1])
}

func TestRenderModelProgressAbort(t *testing.T) {
	boom := errors.New("stop")
	opts := DefaultOptions()
	opts.Progress = func(sheet, totalSheets, row, totalRows int) error {
		return boom
	}
	_, err := RenderModel(testWorkbook(), opts)
	assert.ErrorIs(t, err, boom)
}

func TestRenderModelStyleDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.ConvertStyle = false

	model, err := RenderModel(testWorkbook(), opts)
	require.NoError(t, err)

	a1 := model.Sheets[0].Rows[0].Cells[0]
	require.NotNil(t, a1)
	assert.False(t, a1.Style.Bold)
	assert.False(t, a1.Style.HasFill)
	// Merges still apply without styling.
	assert.Equal(t, 2, a1.ColSpan)
}

func TestRenderModelSizeDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.ConvertSize = false

	model, err := RenderModel(testWorkbook(), opts)
	require.NoError(t, err)

	sh := model.Sheets[0]
	for _, w := range sh.ColWidths {
		assert.Equal(t, grid.Auto, w)
	}
	for _, r := range sh.Rows {
		assert.Equal(t, grid.Auto, r.HeightPx)
	}
}

func TestRenderModelHiddenSheets(t *testing.T) {
	wb := testWorkbook()
	wb.Sheets = append(wb.Sheets, &sheet.Sheet{Name: "Secret", Hidden: true})

	model, err := RenderModel(wb, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, model.Sheets, 1)
	assert.Equal(t, "Report", model.Sheets[0].Name)

	opts := DefaultOptions()
	opts.ConvertHiddenSheets = true
	model, err = RenderModel(wb, opts)
	require.NoError(t, err)
	require.Len(t, model.Sheets, 2)
	assert.Equal(t, "Secret", model.Sheets[1].Name)
}

func TestRenderWorkbookHTML(t *testing.T) {
	model, err := RenderModel(testWorkbook(), DefaultOptions())
	require.NoError(t, err)

	out := RenderWorkbookHTML(model)
	assert.Contains(t, out, "<table")
	assert.Contains(t, out, `colspan="2"`)
	assert.Contains(t, out, `data-name="Report"`)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "background-color:#ffff00")

	// Identical styles share one class; the style block holds each once.
	assert.Equal(t, 1, strings.Count(out, "background-color:#ffff00"))
}

func TestRenderWorkbookHTMLUnsizedRows(t *testing.T) {
	opts := DefaultOptions()
	opts.ConvertSize = false

	model, err := RenderModel(testWorkbook(), opts)
	require.NoError(t, err)
	out := RenderWorkbookHTML(model)

	// Rows without a height and not hidden carry no style attribute at all.
	assert.Contains(t, out, "<tr>")
	assert.NotContains(t, out, `style=""`)
}

func TestRenderWorkbookHTMLEscaping(t *testing.T) {
	wb := testWorkbook()
	wb.Sheets[0].Rows[0].Cells[0].Value = "a<b>&\nc"

	model, err := RenderModel(wb, DefaultOptions())
	require.NoError(t, err)
	out := RenderWorkbookHTML(model)
	assert.Contains(t, out, "a&lt;b&gt;&amp;<br>c")
	assert.NotContains(t, out, "<b>&")
}
