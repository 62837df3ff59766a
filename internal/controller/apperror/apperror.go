package apperror

import "errors"

var ErrPaymentNotFound = errors.New("payment not found")
var ErrInvalidStatusTransition = errors.New("invalid payment status transition")
var ErrDuplicateNotification = errors.New("notification already applied")
var ErrPaymentAlreadyExists = errors.New("payment already exists")

var ErrInvalidPaymentsQuery = errors.New("invalid payments query")
