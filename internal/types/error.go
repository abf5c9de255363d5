// error.go
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

package types

import "fmt"

// CustomError is an error with an HTTP status, returned by middleware and mapped by the error handler
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// Field error codes reported by appearance validation
const (
	CodeInvalidAvatar        = "20010"
	CodeInvalidBanner        = "20011"
	CodeInvalidBackground    = "20012"
	CodeInvalidTrackURL      = "20013"
	CodeInvalidTrackIcon     = "20014"
	CodeInvalidDiscordInvite = "20015"
	CodeTooManyTracks        = "20016"
	CodeInvalidEffects       = "20017"
	CodeBioTooLong           = "20018"
)

// Envelope codes
const (
	CodeInvalidBody      = "40001"
	CodeValidationFailed = "40002"
	CodeServerError      = "50001"
)

// FieldError describes one rejected field of a request payload
type FieldError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Field   string      `json:"field"`
	Value   interface{} `json:"value,omitempty"`
}
