package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrTotalBudgetNotPositive  = errors.New("the total budget must be larger than zero")
	ErrAllocationNegative      = errors.New("category allocations must not be negative")
	ErrCategoryNameNotUnique   = errors.New("the category name must be unique")
	ErrCategoryUnknown         = errors.New("there is no category with this ID")
	ErrAmountNotPositive       = errors.New("the amount must be larger than zero")
	ErrExpenseVendorEmpty      = errors.New("the expense vendor must be set")
	ErrExpenseDescriptionEmpty = errors.New("the expense description must be set")
	ErrExpenseDateMissing      = errors.New("the expense date must be set")
	ErrPaymentVendorEmpty      = errors.New("the payment vendor must be set")
	ErrPaymentDescriptionEmpty = errors.New("the payment description must be set")
	ErrPaymentDueDateMissing   = errors.New("the payment due date must be set")
	ErrAppointmentVendorEmpty  = errors.New("the appointment vendor must be set")
	ErrAppointmentTypeEmpty    = errors.New("the appointment type must be set")
	ErrAppointmentDateMissing  = errors.New("the appointment date must be set")
	ErrAppointmentTimeEmpty    = errors.New("the appointment time must be set")
	ErrContractVendorEmpty     = errors.New("the contract vendor must be set")
	ErrContractTypeEmpty       = errors.New("the contract type must be set")
	ErrContractSignedDateMissing = errors.New("the contract signed date must be set")
	ErrContractFileNameEmpty   = errors.New("the contract file name must be set")
	ErrPaymentStatusInvalid    = errors.New("the payment status must be either Pending or Paid")
	ErrPaymentAlreadyPaid      = errors.New("this payment has already been marked as paid")
	ErrContractExpiresTooEarly = errors.New("the expiration date must not be before the signed date")
	ErrVendorNameEmpty         = errors.New("the vendor name must be set")
	ErrVendorCategoryEmpty     = errors.New("the vendor category must be set")
	ErrVendorDescriptionEmpty  = errors.New("the vendor description must be set")
	ErrVendorNameTooLong       = errors.New("the vendor name must be 50 characters or less")
	ErrVendorRatingOutOfRange  = errors.New("the rating must be between 0 and 5")
	ErrMessageTextEmpty        = errors.New("the message text must not be empty")
	ErrMessageSenderInvalid    = errors.New("the message sender must be either user or vendor")
	ErrReminderDismissed       = errors.New("this reminder has already been dismissed")
)
