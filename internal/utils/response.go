// response.go
//
// A small, dependable data service for link-in-bio profile appearance settings
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of appearancedb.
// appearancedb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// appearancedb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with appearancedb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/appearancedb/internal/types"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends the standard error envelope used for gate and routing errors
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// ValidationErrorResponse sends a 400 listing every rejected field
func ValidationErrorResponse(c *fiber.Ctx, errs []types.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(CodedErrorResponseStruct{
		Code:    types.CodeValidationFailed,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// InvalidBodyResponse sends a 400 for a payload that is not valid JSON
func InvalidBodyResponse(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(CodedErrorResponseStruct{
		Code:    types.CodeInvalidBody,
		Message: "Invalid request body",
		Errors: []types.FieldError{{
			Code:    types.CodeInvalidBody,
			Message: err.Error(),
			Field:   "body",
		}},
	})
}

// ServerErrorResponse sends a 500 carrying the underlying error message
func ServerErrorResponse(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(CodedErrorResponseStruct{
		Code:    types.CodeServerError,
		Message: "Internal server error",
		Errors: []types.FieldError{{
			Code:    types.CodeServerError,
			Message: err.Error(),
			Field:   "server",
		}},
	})
}

// RateLimitResponse sends a 429 with the seconds left in the current window
func RateLimitResponse(c *fiber.Ctx, remainingTime int) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(RateLimitResponseStruct{
		Error:         "Too many requests. Please try again later.",
		Blocked:       true,
		RemainingTime: remainingTime,
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

// CodedErrorResponseStruct defines the schema for validation and server errors
type CodedErrorResponseStruct struct {
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Errors  []types.FieldError `json:"errors"`
}

// RateLimitResponseStruct defines the schema for throttled requests
type RateLimitResponseStruct struct {
	Error         string `json:"error"`
	Blocked       bool   `json:"blocked"`
	RemainingTime int    `json:"remainingTime"`
}
