// Package pdf renders a fee invoice as a printable PDF document. It
// only lays out the figures stored on the invoice snapshot; nothing is
// recomputed here.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/lexcabinet/facturation/internal/models"
)

// RenderFeeInvoice produces the printable document for an invoice.
// The dossier (and its client) must be preloaded on inv.
func RenderFeeInvoice(inv *models.FeeInvoice) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, tr("FACTURE D'HONORAIRES"), "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, tr("N° "+inv.Number+" — "+inv.IssueDate.Format("02/01/2006")), "", 1, "C", false, 0, "")
	doc.Ln(4)

	if d := inv.Dossier; d != nil {
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(0, 6, tr("Dossier "+d.Reference), "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		if d.Client != nil {
			doc.CellFormat(0, 6, tr("Client : "+d.Client.FullName()), "", 1, "L", false, 0, "")
		}
		if d.Objet != "" {
			doc.CellFormat(0, 6, tr("Objet : "+d.Objet), "", 1, "L", false, 0, "")
		}
		doc.Ln(4)
	}

	line := func(label string, amount int64) {
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(120, 7, tr(label), "1", 0, "L", false, 0, "")
		doc.CellFormat(60, 7, formatAmount(amount), "1", 1, "R", false, 0, "")
	}
	section := func(title string) {
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(180, 8, tr(title), "1", 1, "L", false, 0, "")
	}

	section("Débours")
	line("Frais d'entrevue", inv.Entrevue)
	line("Frais de dossier", inv.FraisDossier)
	line("Frais de plaidoirie", inv.Plaidoirie)
	line("Frais d'huissier", inv.Huissier)
	line("Frais de déplacement", inv.Deplacement)

	section("Honoraires")
	line("Forfait", inv.Forfait)
	line("Taux horaire", inv.TauxHoraire)
	line("Base", inv.BaseCalcul)
	line("Honoraires de résultat", inv.Resultat)

	doc.Ln(2)
	total := func(label string, amount int64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		doc.SetFont("Helvetica", style, 10)
		doc.CellFormat(120, 7, tr(label), "", 0, "R", false, 0, "")
		doc.CellFormat(60, 7, formatAmount(amount), "1", 1, "R", false, 0, "")
	}
	total("Total débours", inv.TotalDebours, false)
	total("Total honoraires", inv.TotalHonoraires, false)
	total("Total HT", inv.TotalHT, false)
	total("TVA (18 %)", inv.TVA, false)
	total("Total TTC", inv.TotalTTC, true)
	if inv.ProvisionDemandee {
		total("Provision versée", inv.MontantProvision, false)
		total("Reste à payer", inv.ResteAPayer, true)
	}

	doc.Ln(6)
	doc.SetFont("Helvetica", "I", 10)
	doc.MultiCell(0, 6, tr("Arrêtée la présente facture à la somme de "+inv.ArreteEnLettres+"."), "", "L", false)

	doc.Ln(4)
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 6, tr("Mode de règlement : "+string(inv.ModePaiement)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// formatAmount groups digits by thousands the way amounts are printed
// locally: "1 770 000 FCFA".
func formatAmount(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, c)
	}
	return sign + string(out) + " FCFA"
}
