package shared

// Address is an embedded value object shared by members and deliveries.
// It has no identity of its own; two addresses with the same fields are equal.
type Address struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

// NewAddress creates an Address value object.
func NewAddress(city, street, zipcode string) Address {
	return Address{City: city, Street: street, Zipcode: zipcode}
}

// Equals compares two addresses field by field.
func (a Address) Equals(other Address) bool {
	return a == other
}

// IsZero reports whether every field is empty.
func (a Address) IsZero() bool {
	return a == Address{}
}
