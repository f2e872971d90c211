// Package model holds the rows and read models returned by the API and
// the request payloads accepted by it.
//
// JSON names of rows follow the table columns (CustID, CustFname, ...).
// Nullable columns are pointers so they render as null.
package model

// CreatedResponse is returned by every create operation.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// MessageResponse is returned by update and delete operations.
type MessageResponse struct {
	Message string `json:"message"`
}
