package common

import (
	"fmt"
	"go-bank-ledger/logger"

	"github.com/sirupsen/logrus"
)

// AppError pairs a user-facing message with the underlying error. The
// internal error is logged, never shown on the console.
type AppError struct {
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(message string, err error) *AppError {
	return &AppError{
		Message: message,
		Err:     err,
	}
}

// Display logs the internal error and prints the user-facing message.
func (e *AppError) Display() {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}
	fmt.Printf("Error: %s\n", e.Message)
}
