package dto

// GuardarClienteRequest is the body for POST and PUT /customers.
// Name and cedula are the only required fields (original UI contract).
type GuardarClienteRequest struct {
	Name    string  `json:"name"    validate:"required,min=2"`
	Cedula  string  `json:"cedula"  validate:"required,min=5"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}
