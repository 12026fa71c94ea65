// Package export renders the bookings collection as a CSV download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/leguidebj/agency-backend/internal/domain"
)

// headers defines the column names written as the first row, in the fixed
// export order.
var headers = []string{
	"id", "tourId", "tourTitle", "customerName", "customerEmail",
	"customerPhone", "numberOfPeople", "bookingDate", "status",
}

// bookingDateLayout renders timestamps the way the admin table shows them
// (day-first, 24h clock).
const bookingDateLayout = "02/01/2006 15:04:05"

// utf8BOM lets spreadsheet applications detect the encoding; without it
// several of them mangle accented customer names.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Bookings writes the collection as UTF-8 CSV with a leading BOM, CRLF row
// separators, a header row, and one row per booking sorted newest-first.
// Fields containing commas, quotes, or newlines are quoted with inner quotes
// doubled (encoding/csv's standard escaping).
func Bookings(w io.Writer, bookings []domain.Booking) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("export.Bookings: write BOM: %w", err)
	}

	sorted := make([]domain.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BookingDate.After(sorted[j].BookingDate)
	})

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("export.Bookings: write header: %w", err)
	}
	for _, b := range sorted {
		if err := cw.Write(record(b)); err != nil {
			return fmt.Errorf("export.Bookings: write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export.Bookings: flush: %w", err)
	}
	return nil
}

// Filename returns the download name for an export generated at now, e.g.
// "bookings_2026-08-28.csv".
func Filename(now time.Time) string {
	return "bookings_" + now.Format("2006-01-02") + ".csv"
}

// record flattens one booking into the fixed column order.
func record(b domain.Booking) []string {
	return []string{
		b.ID,
		b.TourID,
		b.TourTitle,
		b.CustomerName,
		b.CustomerEmail,
		b.CustomerPhone,
		strconv.Itoa(b.NumberOfPeople),
		b.BookingDate.Format(bookingDateLayout),
		string(b.Status),
	}
}
