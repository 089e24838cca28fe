package cli

import (
	"fmt"
	"strconv"

	"dronedash/internal/core/domain/model/drone"
	"dronedash/internal/core/domain/model/order"
	"dronedash/internal/pkg/errs"
)

// parseCancelableID interprets an id entered at a prompt.
// "0" and anything that is not an integer count as cancel.
func parseCancelableID(input string) (int, bool) {
	id, err := strconv.Atoi(input)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// parseDroneStatusChoice maps a menu digit to a drone status.
func parseDroneStatusChoice(input string) (drone.Status, error) {
	switch input {
	case "1":
		return drone.Inactive, nil
	case "2":
		return drone.Active, nil
	case "3":
		return drone.Delivery, nil
	default:
		return drone.Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("unknown choice %q", input),
		)
	}
}

// parseOrderStatusChoice maps a menu digit to an order status.
func parseOrderStatusChoice(input string) (order.Status, error) {
	switch input {
	case "1":
		return order.New, nil
	case "2":
		return order.InDelivery, nil
	case "3":
		return order.Completed, nil
	case "4":
		return order.Rejected, nil
	default:
		return order.Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("unknown choice %q", input),
		)
	}
}

// parseDroneFilterChoice maps a menu digit to an optional status filter.
// "4" selects all drones (nil filter), "0" goes back to the previous menu.
func parseDroneFilterChoice(input string) (filter *drone.Status, back bool, err error) {
	switch input {
	case "0":
		return nil, true, nil
	case "4":
		return nil, false, nil
	default:
		status, err := parseDroneStatusChoice(input)
		if err != nil {
			return nil, false, err
		}
		return &status, false, nil
	}
}
