package service

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// toJSON converts an optional request object into a JSON column value.
// Absent input (nil map/slice) stays nil so the column remains NULL.
func toJSON(v interface{}) (datatypes.JSON, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(raw) == "null" {
		return nil, nil
	}
	return datatypes.JSON(raw), nil
}
