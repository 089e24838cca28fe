package order

// Customer is an immutable value object attached to an order at creation.
// It carries no identity beyond its name pair: two customers with the same
// first and last name are indistinguishable, and order statistics merge them
// by full name. This is accepted behavior, not an oversight.
type Customer struct {
	firstName string
	lastName  string
}

// NewCustomer creates a Customer value. The name content is opaque to the
// core: it arrives pre-validated from the order-content generator, so no
// validation is applied here.
func NewCustomer(firstName, lastName string) Customer {
	return Customer{firstName: firstName, lastName: lastName}
}

// FirstName returns the customer's first name.
func (c Customer) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c Customer) LastName() string {
	return c.lastName
}

// FullName returns "First Last", the key used for per-customer aggregation.
func (c Customer) FullName() string {
	return c.firstName + " " + c.lastName
}

// IsEqual compares two customers by exact name equality.
func (c Customer) IsEqual(other Customer) bool {
	return c.firstName == other.firstName && c.lastName == other.lastName
}
