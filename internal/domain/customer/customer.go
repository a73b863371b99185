package customer

import (
	"fmt"
	"strings"
)

// Customer represents a person able to subscribe to plans. Immutable after
// creation in this service.
type Customer struct {
	code  uint
	name  string
	email string
}

func NewCustomer(code uint, name, email string) (*Customer, error) {
	if code == 0 {
		return nil, fmt.Errorf("customer code is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("customer email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid customer email: %s", email)
	}

	return &Customer{
		code:  code,
		name:  name,
		email: email,
	}, nil
}

// ReconstructCustomer rebuilds a customer from persistence.
func ReconstructCustomer(code uint, name, email string) (*Customer, error) {
	if code == 0 {
		return nil, fmt.Errorf("customer code cannot be zero")
	}
	return &Customer{
		code:  code,
		name:  name,
		email: email,
	}, nil
}

func (c *Customer) Code() uint {
	return c.code
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Email() string {
	return c.email
}
