package model

// Customer is a row of the Customer table.
type Customer struct {
	CustID    int64   `json:"CustID"`
	CustFname *string `json:"CustFname"`
	CustLname *string `json:"CustLname"`
}

// Cashier is a row of the Cashier table.
type Cashier struct {
	CashierID    int64   `json:"CashierId"`
	CashierFname *string `json:"CashierFname"`
	CashierLname *string `json:"CashierLname"`
}

// PersonInput is the body for creating or updating a customer or a cashier.
// Missing fields are written as NULL.
type PersonInput struct {
	Fname *string `json:"fname"`
	Lname *string `json:"lname"`
}
