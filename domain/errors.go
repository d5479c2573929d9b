// Package domain error types for the perfume-oil shop. Every error here
// is a user-facing, synchronous, pre-mutation rejection; a failed
// operation leaves prior state untouched.
package domain

import (
	"errors"
	"fmt"
)

// OilNotFoundError is returned when an oil with the given ID does not exist
type OilNotFoundError struct {
	OilID string
}

// Error implements the error interface for OilNotFoundError
func (e *OilNotFoundError) Error() string {
	return fmt.Sprintf("oil not found: id=%s", e.OilID)
}

// Is allows proper error type checking with errors.Is()
func (e *OilNotFoundError) Is(target error) bool {
	_, ok := target.(*OilNotFoundError)
	return ok
}

// DuplicateOilError is returned when adding an oil whose ID already exists
type DuplicateOilError struct {
	OilID string
}

// Error implements the error interface for DuplicateOilError
func (e *DuplicateOilError) Error() string {
	return fmt.Sprintf("duplicate oil: id=%s already exists", e.OilID)
}

// Is allows proper error type checking with errors.Is()
func (e *DuplicateOilError) Is(target error) bool {
	_, ok := target.(*DuplicateOilError)
	return ok
}

// InvalidOilError is returned when oil validation fails
type InvalidOilError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for InvalidOilError
func (e *InvalidOilError) Error() string {
	return fmt.Sprintf("invalid oil: field=%s, reason=%s, value=%v", e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidOilError) Is(target error) bool {
	_, ok := target.(*InvalidOilError)
	return ok
}

// EmptyCartError is returned when submitting an order with no lines
type EmptyCartError struct{}

// Error implements the error interface for EmptyCartError
func (e *EmptyCartError) Error() string {
	return "cart is empty"
}

// Is allows proper error type checking with errors.Is()
func (e *EmptyCartError) Is(target error) bool {
	_, ok := target.(*EmptyCartError)
	return ok
}

// InsufficientStockError is returned when a requested weight exceeds the
// oil's current stock
type InsufficientStockError struct {
	OilID     string
	OilName   string
	Requested float64
	Available float64
}

// Error implements the error interface for InsufficientStockError
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: oil=%s (%s), requested=%gg, available=%gg",
		e.OilID, e.OilName, e.Requested, e.Available)
}

// Is allows proper error type checking with errors.Is()
func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

// UnknownOilError is returned when a cart line references an oil that is
// not in the inventory
type UnknownOilError struct {
	OilID string
}

// Error implements the error interface for UnknownOilError
func (e *UnknownOilError) Error() string {
	return fmt.Sprintf("unknown oil in cart: id=%s", e.OilID)
}

// Is allows proper error type checking with errors.Is()
func (e *UnknownOilError) Is(target error) bool {
	_, ok := target.(*UnknownOilError)
	return ok
}

// OrderNotFoundError is returned when an order with the given ID does not exist
type OrderNotFoundError struct {
	OrderID string
}

// Error implements the error interface for OrderNotFoundError
func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order not found: id=%s", e.OrderID)
}

// Is allows proper error type checking with errors.Is()
func (e *OrderNotFoundError) Is(target error) bool {
	_, ok := target.(*OrderNotFoundError)
	return ok
}

// Helper functions for creating errors with context

// NewOilNotFoundError creates a new OilNotFoundError
func NewOilNotFoundError(oilID string) error {
	return &OilNotFoundError{OilID: oilID}
}

// NewDuplicateOilError creates a new DuplicateOilError
func NewDuplicateOilError(oilID string) error {
	return &DuplicateOilError{OilID: oilID}
}

// NewInvalidOilError creates a new InvalidOilError
func NewInvalidOilError(field, reason string, value interface{}) error {
	return &InvalidOilError{
		Field:  field,
		Reason: reason,
		Value:  value,
	}
}

// NewEmptyCartError creates a new EmptyCartError
func NewEmptyCartError() error {
	return &EmptyCartError{}
}

// NewInsufficientStockError creates a new InsufficientStockError
func NewInsufficientStockError(oilID, oilName string, requested, available float64) error {
	return &InsufficientStockError{
		OilID:     oilID,
		OilName:   oilName,
		Requested: requested,
		Available: available,
	}
}

// NewUnknownOilError creates a new UnknownOilError
func NewUnknownOilError(oilID string) error {
	return &UnknownOilError{OilID: oilID}
}

// NewOrderNotFoundError creates a new OrderNotFoundError
func NewOrderNotFoundError(orderID string) error {
	return &OrderNotFoundError{OrderID: orderID}
}

// Type assertion helpers for use with errors.As()

// IsOilNotFoundError checks if an error is an OilNotFoundError
func IsOilNotFoundError(err error) bool {
	var onf *OilNotFoundError
	return errors.As(err, &onf)
}

// IsDuplicateOilError checks if an error is a DuplicateOilError
func IsDuplicateOilError(err error) bool {
	var doe *DuplicateOilError
	return errors.As(err, &doe)
}

// IsInvalidOilError checks if an error is an InvalidOilError
func IsInvalidOilError(err error) bool {
	var ioe *InvalidOilError
	return errors.As(err, &ioe)
}

// IsEmptyCartError checks if an error is an EmptyCartError
func IsEmptyCartError(err error) bool {
	var ece *EmptyCartError
	return errors.As(err, &ece)
}

// IsInsufficientStockError checks if an error is an InsufficientStockError
func IsInsufficientStockError(err error) bool {
	var ise *InsufficientStockError
	return errors.As(err, &ise)
}

// IsUnknownOilError checks if an error is an UnknownOilError
func IsUnknownOilError(err error) bool {
	var uoe *UnknownOilError
	return errors.As(err, &uoe)
}

// IsOrderNotFoundError checks if an error is an OrderNotFoundError
func IsOrderNotFoundError(err error) bool {
	var onf *OrderNotFoundError
	return errors.As(err, &onf)
}
