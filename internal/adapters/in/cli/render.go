package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/labstack/gommon/color"

	"dronedash/internal/core/application/usecases/queries"
)

// Order table column widths, wide enough for the generated pools.
const (
	colID     = 4
	colName   = 20
	colCity   = 12
	colStreet = 15
	colStatus = 12
	colDrone  = 20
)

// padRight pads by rune count so names with diacritics line up.
func padRight(s string, width int) string {
	for len([]rune(s)) < width {
		s += " "
	}
	return s
}

type orderRow struct {
	queries.OrderResponse

	// DroneLabel is "Name (#id)" for an assigned drone, "-" otherwise.
	DroneLabel string
}

func renderDrones(w io.Writer, drones []queries.DroneResponse) {
	fmt.Fprintln(w, "\nID\tName\tStatus")
	for _, d := range drones {
		fmt.Fprintf(w, "%d\t%s\t%s\n", d.ID, d.Name, d.Status)
	}
}

func renderOrders(w io.Writer, rows []orderRow) {
	fmt.Fprintln(w, color.Bold("\n--- Order list ---"))
	fmt.Fprintln(w,
		padRight("ID", colID)+
			padRight("Customer", colName)+
			padRight("City", colCity)+
			padRight("Street", colStreet)+
			padRight("Status", colStatus)+
			padRight("Drone", colDrone),
	)
	for _, r := range rows {
		fmt.Fprintln(w,
			padRight(fmt.Sprintf("%d", r.ID), colID)+
				padRight(r.Customer, colName)+
				padRight(r.City, colCity)+
				padRight(r.Street, colStreet)+
				padRight(r.Status.String(), colStatus)+
				padRight(r.DroneLabel, colDrone),
		)
	}
}

// renderCustomerCounts prints per-customer totals sorted by name, so output
// does not depend on map iteration order.
func renderCustomerCounts(w io.Writer, counts map[string]int) {
	fmt.Fprintln(w, color.Bold("\n--- Customers and order counts ---"))

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(w, "%s: %d\n", name, counts[name])
	}
}
