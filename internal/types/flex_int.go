// flex_int.go
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

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexInt is an int that can be unmarshaled from either a JSON number or a JSON string.
// Form controls on the profile editor post sizes as strings.
// Values must be integral and fit in 32 bits; 12.0 is accepted, 12.7 and 1e30 are rejected.
type FlexInt int

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	// Try unmarshaling as a number first
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		val, err := parseFlexInt(n.String())
		if err != nil {
			return err
		}
		*f = FlexInt(val)
		return nil
	}

	// Try unmarshaling as a string
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		val, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
		if err != nil {
			return fmt.Errorf("FlexInt: invalid int string %q: %w", s, err)
		}
		*f = FlexInt(val)
		return nil
	}

	return fmt.Errorf("FlexInt: unexpected type, expected number or string")
}

// parseFlexInt accepts integer literals and integral floats within the int32 range
func parseFlexInt(s string) (int64, error) {
	if val, err := strconv.ParseInt(s, 10, 32); err == nil {
		return val, nil
	}

	fv, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("FlexInt: invalid number %s: %w", s, err)
	}
	if fv != math.Trunc(fv) {
		return 0, fmt.Errorf("FlexInt: %s is not an integer", s)
	}
	if fv < math.MinInt32 || fv > math.MaxInt32 {
		return 0, fmt.Errorf("FlexInt: %s is out of range", s)
	}
	return int64(fv), nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

// Int converts FlexInt back to int.
func (f FlexInt) Int() int {
	return int(f)
}
