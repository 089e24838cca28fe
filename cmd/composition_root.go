package cmd

import (
	"dronedash/internal/adapters/in/cli"
	"dronedash/internal/adapters/out/inmem"
	"dronedash/internal/core/application/usecases/commands"
	"dronedash/internal/core/application/usecases/queries"
)

// CompositionRoot owns the in-memory registries and builds every use case
// handler on top of them. One root per process: the registries hold the
// whole dispatch state.
type CompositionRoot struct {
	fleet  *inmem.FleetRepo
	orders *inmem.OrderRepo
}

func NewCompositionRoot(_ Config) (CompositionRoot, error) {
	fleet, err := inmem.NewFleetRepo()
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		fleet:  fleet,
		orders: inmem.NewOrderRepo(),
	}, nil
}

func (c *CompositionRoot) CreateAddDroneCommandHandler() commands.AddDroneCommandHandler {
	return commands.NewAddDroneCommandHandler(c.fleet)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateAssignDroneCommandHandler() commands.AssignDroneCommandHandler {
	return commands.NewAssignDroneCommandHandler(c.fleet, c.orders)
}

func (c *CompositionRoot) CreateChangeDroneStatusCommandHandler() commands.ChangeDroneStatusCommandHandler {
	return commands.NewChangeDroneStatusCommandHandler(c.fleet)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.fleet, c.orders)
}

func (c *CompositionRoot) CreateGetDroneQueryHandler() queries.GetDroneQueryHandler {
	return queries.NewGetDroneQueryHandler(c.fleet)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListDronesQueryHandler() queries.ListDronesQueryHandler {
	return queries.NewListDronesQueryHandler(c.fleet)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateCustomerOrderCountsQueryHandler() queries.CustomerOrderCountsQueryHandler {
	return queries.NewCustomerOrderCountsQueryHandler(c.orders)
}

// CreateConsoleHandlers bundles every use case the dispatch console needs.
func (c *CompositionRoot) CreateConsoleHandlers() cli.Handlers {
	return cli.Handlers{
		AddDrone:          c.CreateAddDroneCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		AssignDrone:       c.CreateAssignDroneCommandHandler(),
		ChangeDroneStatus: c.CreateChangeDroneStatusCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		GetDrone:          c.CreateGetDroneQueryHandler(),
		ListDrones:        c.CreateListDronesQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		CustomerCounts:    c.CreateCustomerOrderCountsQueryHandler(),
	}
}
