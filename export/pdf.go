package export

import (
	"io"
	"strconv"
	"time"
	"unicode"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"sdh_inventory/inventory"
	"sdh_inventory/models"
)

// ascii maps accented text onto its base letters (Přilba -> Prilba). The
// built-in PDF fonts only cover Latin-1, and Czech inventory text is full
// of characters outside it. The transformer chain is stateful, so build a
// fresh one per call.
func ascii(s string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(fold, s)
	if err != nil {
		return s
	}
	return out
}

// WritePDF renders an inventory report: a summary header followed by one
// table row per asset. Intended for the active, already-filtered set.
func WritePDF(w io.Writer, unitName string, assets []models.Asset, now time.Time) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(ascii(unitName)+" - inventory report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, ascii(unitName)+" - Evidence majetku")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Datum vyhotoveni: "+now.Format("02.01.2006"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Pocet polozek: "+strconv.Itoa(len(assets)))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Celkova hodnota: "+inventory.TotalValue(assets).StringFixed(2)+" Kc")
	pdf.Ln(10)

	type col struct {
		title string
		width float64
		value func(a *models.Asset) string
	}
	cols := []col{
		{"Inv. c.", 28, func(a *models.Asset) string { return a.InventoryNumber }},
		{"Nazev", 70, func(a *models.Asset) string { return a.Name }},
		{"Kategorie", 40, func(a *models.Asset) string { return a.Category }},
		{"Umisteni", 50, func(a *models.Asset) string { return a.Location }},
		{"Stav", 30, func(a *models.Asset) string { return a.Condition }},
		{"Spravce", 35, func(a *models.Asset) string { return a.Manager }},
		{"Cena (Kc)", 24, func(a *models.Asset) string { return a.Price.StringFixed(2) }},
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(220, 38, 38)
	pdf.SetTextColor(255, 255, 255)
	for _, c := range cols {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for i := range assets {
		a := &assets[i]
		for _, c := range cols {
			align := "L"
			if c.title == "Cena (Kc)" {
				align = "R"
			}
			pdf.CellFormat(c.width, 6, truncate(ascii(c.value(a)), 48), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

// truncate cuts on runes so characters the folding left multibyte
// are never split mid-sequence.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
