package dto

import "gestao/internal/domain/customer"

type CustomerDTO struct {
	Code  uint   `json:"code"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewCustomerDTO(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		Code:  c.Code(),
		Name:  c.Name(),
		Email: c.Email(),
	}
}

func NewCustomerDTOs(customers []*customer.Customer) []CustomerDTO {
	dtos := make([]CustomerDTO, 0, len(customers))
	for _, c := range customers {
		dtos = append(dtos, NewCustomerDTO(c))
	}
	return dtos
}
