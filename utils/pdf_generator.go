package utils

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"biltyledger/models"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

func dash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func dashNum(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

// GenerateBiltySlip renders one record through the slip template and
// prints it to an A4 PDF with headless Chrome.
func GenerateBiltySlip(bilty *models.Bilty, companyName string) ([]byte, error) {
	data := models.BiltySlipData{
		CompanyName:    companyName,
		ID:             bilty.ID,
		BiltySlNo:      bilty.BiltySlNo,
		LrNo:           dash(bilty.LrNo),
		BillNo:         dash(bilty.BillNo),
		BillDate:       dash(bilty.BillDate),
		TruckNo:        dash(bilty.TruckNo),
		Destination:    dash(bilty.Destination),
		Weight:         dashNum(bilty.Weight),
		Freight:        dashNum(bilty.Freight),
		Diesel:         dashNum(bilty.Diesel),
		TotalAdv:       dashNum(bilty.TotalAdv),
		Balance:        dashNum(bilty.Balance),
		PumpName:       dash(bilty.PumpName),
		PaymentOfficer: dash(bilty.PaymentOfficer),
		DamageIfAny:    dash(bilty.DamageIfAny),
		Margin:         dashNum(bilty.Margin),
		GeneratedAt:    time.Now().Format("02-Jan-2006 15:04"),
	}
	if bilty.Balance != nil {
		data.BalanceWords = AmountInWords(*bilty.Balance)
	}

	tmpl, err := template.ParseFiles("templates/bilty_slip.html")
	if err != nil {
		return nil, err
	}

	var body strings.Builder
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, err
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.bilty-slip {
			page-break-inside: avoid;
			border: none;
		}
		</style>
		</head>
		<body><div class="bilty-slip">` + body.String() + `</div></body></html>`

	tmpHTML := filepath.Join(os.TempDir(), fmt.Sprintf("bilty_slip_%d.html", time.Now().UnixNano()))
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	err = chromedp.Run(ctx,
		chromedp.Navigate("file://"+tmpHTML),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
