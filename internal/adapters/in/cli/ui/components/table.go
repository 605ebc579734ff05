package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/bnema/hoard/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/hoard/internal/domain"
)

// TableColumn defines a table column. A zero Width lets the column grow.
type TableColumn struct {
	Title string
	Width int
}

// TableModel is a styled table component.
type TableModel struct {
	columns     []TableColumn
	rows        [][]string
	borderStyle lipgloss.Style
	headerStyle lipgloss.Style
	cellStyle   lipgloss.Style
}

// TableOption configures a TableModel.
type TableOption func(*TableModel)

// NewTable creates a new styled table.
func NewTable(opts ...TableOption) *TableModel {
	t := &TableModel{
		borderStyle: lipgloss.NewStyle().Foreground(styles.ColorBorder),
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.ColorPrimary).
			Padding(0, 1),
		cellStyle: lipgloss.NewStyle().
			Foreground(styles.ColorText).
			Padding(0, 1),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithColumns sets the table columns.
func WithColumns(cols []TableColumn) TableOption {
	return func(t *TableModel) {
		t.columns = cols
	}
}

// WithHeaderStyle sets the header style.
func WithHeaderStyle(s lipgloss.Style) TableOption {
	return func(t *TableModel) {
		t.headerStyle = s
	}
}

// WithCellStyle sets the cell style.
func WithCellStyle(s lipgloss.Style) TableOption {
	return func(t *TableModel) {
		t.cellStyle = s
	}
}

// AddRow adds a row to the table.
func (t *TableModel) AddRow(row ...string) {
	t.rows = append(t.rows, row)
}

// Render renders the table as a string.
func (t *TableModel) Render() string {
	if len(t.columns) == 0 {
		return ""
	}

	// Extract headers
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = truncateCell(col.Title, col.Width)
	}

	rows := make([][]string, len(t.rows))
	for rowIdx, row := range t.rows {
		rows[rowIdx] = make([]string, len(row))
		for colIdx, cell := range row {
			width := 0
			if colIdx < len(t.columns) {
				width = t.columns[colIdx].Width
			}
			rows[rowIdx][colIdx] = truncateCell(cell, width)
		}
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(t.borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			width := 0
			if col >= 0 && col < len(t.columns) {
				width = t.columns[col].Width
			}

			applyWidth := func(s lipgloss.Style) lipgloss.Style {
				if width > 0 {
					return s.Width(width).MaxWidth(width)
				}
				return s
			}

			if row == table.HeaderRow {
				return applyWidth(t.headerStyle)
			}
			return applyWidth(t.cellStyle)
		})

	return tbl.String()
}

func truncateCell(value string, maxWidth int) string {
	if strings.Contains(value, "\x1b[") {
		return value
	}

	if maxWidth <= 0 || runewidth.StringWidth(value) <= maxWidth {
		return value
	}

	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	targetWidth := maxWidth - 3
	b := strings.Builder{}
	currentWidth := 0
	g := uniseg.NewGraphemes(value)
	for g.Next() {
		grapheme := g.Str()
		graphemeWidth := runewidth.StringWidth(grapheme)
		if currentWidth+graphemeWidth > targetWidth {
			break
		}
		b.WriteString(grapheme)
		currentWidth += graphemeWidth
	}

	if b.Len() == 0 {
		return strings.Repeat(".", maxWidth)
	}

	return b.String() + "..."
}

// EntryTable renders catalog entries.
func EntryTable(entries []domain.CatalogEntry) string {
	t := NewTable(WithColumns([]TableColumn{
		{Title: "Model", Width: 24},
		{Title: "Pulls", Width: 8},
		{Title: "Tags", Width: 6},
		{Title: "Updated", Width: 16},
		{Title: "Description", Width: 48},
	}))
	for _, e := range entries {
		t.AddRow(e.Title, e.PullCount, e.TagCount, e.UpdatedTime, e.Introduction)
	}
	return t.Render()
}

// VariantTable renders the variants of an entry. pulled maps variant names
// to their rendered local status; variants absent from it show nothing.
func VariantTable(variants []domain.VariantRecord, pulled map[string]string) string {
	t := NewTable(WithColumns([]TableColumn{
		{Title: "Variant", Width: 32},
		{Title: "Size", Width: 8},
		{Title: "Context", Width: 8},
		{Title: "Input", Width: 12},
		{Title: "Hash", Width: 14},
		{Title: "Local"},
	}))
	for _, v := range variants {
		t.AddRow(v.Name, v.Size, v.Context, v.Input, v.Hash, pulled[v.Name])
	}
	return t.Render()
}

// BlobTable renders the blobs of a pull.
func BlobTable(results []domain.BlobResult) string {
	t := NewTable(WithColumns([]TableColumn{
		{Title: "Blob", Width: 10},
		{Title: "Digest", Width: 19},
		{Title: "Size", Width: 10},
		{Title: "Status"},
	}))
	for _, r := range results {
		t.AddRow(r.Blob.Category, shortDigest(r.Blob.Digest.Encoded()), humanize.Bytes(uint64(max(r.Blob.Size, 0))), DownloadStatus(r.Status))
	}
	return t.Render()
}

func shortDigest(hex string) string {
	if len(hex) > 12 {
		return hex[:12]
	}
	return hex
}
