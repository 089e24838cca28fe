// Package cli drives the dispatch console: an interactive menu loop over
// stdin/stdout that translates operator choices into commands and queries.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/labstack/gommon/color"

	"dronedash/internal/core/application/usecases/commands"
	"dronedash/internal/core/application/usecases/queries"
	"dronedash/internal/core/domain/services"
	"dronedash/internal/generator"
)

// Handlers bundles every use case the console can trigger.
type Handlers struct {
	AddDrone          commands.AddDroneCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	AssignDrone       commands.AssignDroneCommandHandler
	ChangeDroneStatus commands.ChangeDroneStatusCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	GetDrone          queries.GetDroneQueryHandler
	ListDrones        queries.ListDronesQueryHandler
	ListOrders        queries.ListOrdersQueryHandler
	CustomerCounts    queries.CustomerOrderCountsQueryHandler
}

// App is the interactive dispatch console. One operator at a time: the loop
// reads a choice, runs the use case, prints the outcome, repeats.
type App struct {
	in  *bufio.Scanner
	out io.Writer
	gen *generator.RandomOrderGenerator
	h   Handlers
}

// NewApp wires the console to its input, output, generator, and use cases.
func NewApp(in io.Reader, out io.Writer, gen *generator.RandomOrderGenerator, h Handlers) *App {
	return &App{
		in:  bufio.NewScanner(in),
		out: out,
		gen: gen,
		h:   h,
	}
}

// Run executes the menu loop until the operator quits or input ends.
func (a *App) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(a.out, color.Bold("\n=== DroneDash ==="))
		fmt.Fprintln(a.out, "1. Generate order")
		fmt.Fprintln(a.out, "2. List orders")
		fmt.Fprintln(a.out, "3. Customers + order counts")
		fmt.Fprintln(a.out, "4. Manage drones")
		fmt.Fprintln(a.out, "5. Manage orders")
		fmt.Fprintln(a.out, "0. Quit")

		choice, ok := a.prompt("Choose an option: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			a.generateOrder(ctx)
		case "2":
			a.showOrderList(ctx)
		case "3":
			a.showCustomerStats(ctx)
		case "4":
			if !a.droneMenu(ctx) {
				return nil
			}
		case "5":
			if !a.orderMenu(ctx) {
				return nil
			}
		case "0":
			return nil
		default:
			fmt.Fprintln(a.out, ">>> Invalid option, back to the menu.")
		}
	}
}

// prompt prints a prompt and reads one line. ok is false when input ended.
func (a *App) prompt(label string) (line string, ok bool) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}

func (a *App) generateOrder(ctx context.Context) {
	draw := a.gen.Generate()
	cmd := commands.NewCreateOrderCommand(draw.FirstName, draw.LastName, draw.City, draw.Street)

	result, err := a.h.CreateOrder.Handle(ctx, cmd)
	if err != nil {
		a.printError(err)
		return
	}

	fmt.Fprintf(a.out, "Generated order #%d for %s in %s, %s\n",
		result.OrderID, result.Customer, result.City, result.Street)
}

func (a *App) showOrderList(ctx context.Context) {
	orders, err := a.h.ListOrders.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		a.printError(err)
		return
	}

	rows := make([]orderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderRow{OrderResponse: o, DroneLabel: a.droneLabel(ctx, o.DroneID)})
	}
	renderOrders(a.out, rows)
	a.pause()
}

// droneLabel resolves an assigned drone id into "Name (#id)" for display.
func (a *App) droneLabel(ctx context.Context, droneID *int) string {
	if droneID == nil {
		return "-"
	}

	query, err := queries.NewGetDroneQuery(*droneID)
	if err != nil {
		return fmt.Sprintf("#%d", *droneID)
	}
	d, err := a.h.GetDrone.Handle(ctx, query)
	if err != nil {
		return fmt.Sprintf("#%d", *droneID)
	}
	return fmt.Sprintf("%s (#%d)", d.Name, d.ID)
}

func (a *App) showCustomerStats(ctx context.Context) {
	counts, err := a.h.CustomerCounts.Handle(ctx, queries.NewCustomerOrderCountsQuery())
	if err != nil {
		a.printError(err)
		return
	}

	renderCustomerCounts(a.out, counts)
	a.pause()
}

// droneMenu runs the drone submenu. Returns false when input ended.
func (a *App) droneMenu(ctx context.Context) bool {
	for {
		fmt.Fprintln(a.out, color.Bold("\n--- Manage drones ---"))
		fmt.Fprintln(a.out, "1. Add drone")
		fmt.Fprintln(a.out, "2. Assign drone to order")
		fmt.Fprintln(a.out, "3. Change drone status")
		fmt.Fprintln(a.out, "4. List drones")
		fmt.Fprintln(a.out, "0. Back")

		choice, ok := a.prompt("Option: ")
		if !ok {
			return false
		}

		switch choice {
		case "1":
			a.addDronePrompt(ctx)
		case "2":
			a.assignDronePrompt(ctx)
		case "3":
			a.changeDroneStatusPrompt(ctx)
		case "4":
			a.listDronesPrompt(ctx)
		case "0":
			return true
		default:
			fmt.Fprintln(a.out, ">>> Invalid option.")
		}
	}
}

func (a *App) addDronePrompt(ctx context.Context) {
	name, ok := a.prompt("Drone name (0 to cancel): ")
	if !ok || name == "0" || strings.TrimSpace(name) == "" {
		fmt.Fprintln(a.out, ">>> Cancelled.")
		return
	}

	cmd, err := commands.NewAddDroneCommand(name)
	if err != nil {
		a.printError(err)
		return
	}

	result, err := a.h.AddDrone.Handle(ctx, cmd)
	if err != nil {
		a.printError(err)
		return
	}

	fmt.Fprintf(a.out, "Drone '%s' registered as #%d (%s).\n",
		result.Name, result.DroneID, result.Status)
}

func (a *App) assignDronePrompt(ctx context.Context) {
	orders, err := a.h.ListOrders.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		a.printError(err)
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "<<< No orders to assign.")
		return
	}

	orderInput, ok := a.prompt("Order ID (0 to cancel): ")
	if !ok {
		return
	}
	orderID, ok := parseCancelableID(orderInput)
	if !ok {
		fmt.Fprintln(a.out, ">>> Cancelled.")
		return
	}

	droneInput, ok := a.prompt("Drone ID to assign (0 to cancel): ")
	if !ok {
		return
	}
	droneID, ok := parseCancelableID(droneInput)
	if !ok {
		fmt.Fprintln(a.out, ">>> Cancelled.")
		return
	}

	cmd, err := commands.NewAssignDroneCommand(droneID, orderID)
	if err != nil {
		a.printError(err)
		return
	}

	result, err := a.h.AssignDrone.Handle(ctx, cmd)
	if err != nil {
		a.printError(err)
		return
	}

	fmt.Fprintf(a.out, "Drone '%s' #%d assigned to order #%d.\n",
		result.DroneName, result.DroneID, result.OrderID)
}

func (a *App) changeDroneStatusPrompt(ctx context.Context) {
	droneInput, ok := a.prompt("Drone ID (0 to cancel): ")
	if !ok {
		return
	}
	droneID, ok := parseCancelableID(droneInput)
	if !ok {
		fmt.Fprintln(a.out, ">>> Cancelled.")
		return
	}

	fmt.Fprintln(a.out, "1. Inactive  2. Active  3. Delivery")
	statusInput, ok := a.prompt("Choose a status: ")
	if !ok {
		return
	}
	status, err := parseDroneStatusChoice(statusInput)
	if err != nil {
		fmt.Fprintln(a.out, ">>> Invalid status.")
		return
	}

	cmd, err := commands.NewChangeDroneStatusCommand(droneID, status)
	if err != nil {
		a.printError(err)
		return
	}

	result, err := a.h.ChangeDroneStatus.Handle(ctx, cmd)
	if err != nil {
		a.printError(err)
		return
	}

	fmt.Fprintf(a.out, "Drone '%s' #%d status set to %s.\n",
		result.DroneName, result.DroneID, result.NewStatus)
}

func (a *App) listDronesPrompt(ctx context.Context) {
	fmt.Fprintln(a.out, "Filter: 1.Inactive 2.Active 3.Delivery 4.All 0.Back")
	input, ok := a.prompt("Option: ")
	if !ok {
		return
	}

	filter, back, err := parseDroneFilterChoice(input)
	if back {
		return
	}
	if err != nil {
		fmt.Fprintln(a.out, ">>> Invalid option.")
		return
	}

	query, err := queries.NewListDronesQuery(filter)
	if err != nil {
		a.printError(err)
		return
	}

	drones, err := a.h.ListDrones.Handle(ctx, query)
	if err != nil {
		a.printError(err)
		return
	}

	renderDrones(a.out, drones)
	a.pause()
}

// orderMenu runs the order submenu. Returns false when input ended.
func (a *App) orderMenu(ctx context.Context) bool {
	for {
		fmt.Fprintln(a.out, color.Bold("\n--- Manage orders ---"))
		fmt.Fprintln(a.out, "1. Change order status")
		fmt.Fprintln(a.out, "2. List orders")
		fmt.Fprintln(a.out, "0. Back")

		choice, ok := a.prompt("Option: ")
		if !ok {
			return false
		}

		switch choice {
		case "1":
			a.changeOrderStatusPrompt(ctx)
		case "2":
			a.showOrderList(ctx)
		case "0":
			return true
		default:
			fmt.Fprintln(a.out, ">>> Invalid option.")
		}
	}
}

func (a *App) changeOrderStatusPrompt(ctx context.Context) {
	orderInput, ok := a.prompt("Order ID (0 to cancel): ")
	if !ok {
		return
	}
	orderID, ok := parseCancelableID(orderInput)
	if !ok {
		fmt.Fprintln(a.out, ">>> Cancelled.")
		return
	}

	fmt.Fprintln(a.out, "1.New  2.InDelivery  3.Completed  4.Rejected")
	statusInput, ok := a.prompt("Choose a status: ")
	if !ok {
		return
	}
	status, err := parseOrderStatusChoice(statusInput)
	if err != nil {
		fmt.Fprintln(a.out, ">>> Invalid status.")
		return
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		a.printError(err)
		return
	}

	result, err := a.h.ChangeOrderStatus.Handle(ctx, cmd)
	if err != nil {
		a.printError(err)
		return
	}

	fmt.Fprintf(a.out, "Order #%d status changed to %s.\n", result.OrderID, result.NewStatus)
	if result.ReleasedDrone != nil {
		fmt.Fprintf(a.out, "Drone '%s' #%d released and set to Inactive.\n",
			result.ReleasedDrone.DroneName, result.ReleasedDrone.DroneID)
	}
}

// pause waits for the operator before going back to the menu.
func (a *App) pause() {
	line, ok := a.prompt("\nPress 0 to return to the main menu.\n")
	if ok && line != "0" {
		fmt.Fprintln(a.out, ">>> Returning to the menu.")
	}
}

// printError translates a use case error into an operator-facing line.
func (a *App) printError(err error) {
	switch {
	case errors.Is(err, services.ErrDroneBusy):
		fmt.Fprintln(a.out, color.Red(">>> Drone is busy."))
	case errors.Is(err, commands.ErrDroneNotFound):
		fmt.Fprintln(a.out, color.Red(">>> No such drone."))
	case errors.Is(err, commands.ErrOrderNotFound):
		fmt.Fprintln(a.out, color.Red(">>> No such order."))
	default:
		fmt.Fprintln(a.out, color.Red(fmt.Sprintf(">>> %v", err)))
	}
}
