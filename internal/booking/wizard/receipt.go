package wizard

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"bitbucket.org/velvet/chauffeur-hub/internal/schema"
	"bitbucket.org/velvet/chauffeur-hub/internal/tools/converting"
	"github.com/phpdave11/gofpdf"
)

func buildReceiptPDF(s Session) ([]byte, string, error) {
	details := converting.Unwrap(s.Details)
	booked := converting.Unwrap(s.Booking)
	line, _ := s.SelectedLine()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID     : %s", booked.BookingId),
		fmt.Sprintf("Vehicle        : %s", safe(line.Name, s.VehicleCode)),
		fmt.Sprintf("Pickup         : %s", safe(details.Pickup, "-")),
		fmt.Sprintf("Drop           : %s", safe(converting.Unwrap(details.Drop), "-")),
		fmt.Sprintf("Date / Time    : %s", details.Datetime.In(schema.IST).Format("02 Jan 2006 15:04")),
		fmt.Sprintf("Passengers     : %d", details.Passengers),
		fmt.Sprintf("Luggage        : %d", details.Luggage),
		fmt.Sprintf("Service        : %s", serviceLabel(details)),
		fmt.Sprintf("Payment        : %s", string(converting.Unwrap(s.Payment).Method)),
	}
	if booked.GatewayOrderId != nil {
		lines = append(lines, fmt.Sprintf("Order ID       : %s", *booked.GatewayOrderId))
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.Cell(0, 7, "Fare           : "+formatINR(line.Price))
	pdf.Ln(7)
	if booked.CarrierFee != nil {
		pdf.Cell(0, 7, "Roof carrier   : "+formatINR(*booked.CarrierFee))
		pdf.Ln(7)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total          : "+formatINR(booked.Amount))
	pdf.Ln(12)

	if s.Quote != nil {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, s.Quote.BreakdownNote, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("BOOKING_%s.pdf", booked.BookingId)
	return buf.Bytes(), filename, nil
}

func serviceLabel(d schema.DirectDetails) string {
	if d.Mode == schema.BookingModeHourly {
		return "Hourly " + converting.Unwrap(d.PackageCode)
	}
	return "Point to point"
}

// formatINR renders paise as rupees with Indian digit grouping, e.g.
// 25000000 -> "INR 2,50,000".
func formatINR(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}

	digits := strconv.FormatInt(paise/100, 10)
	grouped := digits
	if len(digits) > 3 {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		parts = append([]string{head}, parts...)
		grouped = strings.Join(parts, ",") + "," + tail
	}

	if rest := paise % 100; rest != 0 {
		grouped += fmt.Sprintf(".%02d", rest)
	}

	return "INR " + sign + grouped
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
