package utility

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransformConfig chứa cấu hình được parse từ tag transform trên DTO
type TransformConfig struct {
	Type     string // Transform type: str_objectid, str_objectid_ptr, str_int64
	Optional bool   // Nếu không có giá trị thì bỏ qua, không báo lỗi
	MapTo    string // Map sang field khác trong Model (ví dụ: map=VideoID)
}

// ParseTransformTag parse tag transform thành config.
// Format: "[type][,optional][,map=<field_name>]"
// Ví dụ:
//   - transform:"str_objectid" - Convert string → primitive.ObjectID
//   - transform:"str_objectid,map=UserID" - Convert và map sang field UserID
//   - transform:"str_int64,optional" - Convert string → int64, bỏ qua nếu rỗng
func ParseTransformTag(tag string) (*TransformConfig, error) {
	config := &TransformConfig{}
	if tag == "" {
		return config, nil
	}

	parts := strings.Split(tag, ",")
	config.Type = strings.TrimSpace(parts[0])

	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		switch {
		case part == "optional":
			config.Optional = true
		case strings.HasPrefix(part, "map="):
			config.MapTo = strings.TrimPrefix(part, "map=")
		}
	}

	return config, nil
}

// TransformFieldValue transform giá trị từ DTO field sang Model field theo config
func TransformFieldValue(value interface{}, config *TransformConfig, targetFieldType reflect.Type) (interface{}, error) {
	if value == nil {
		if config.Optional {
			return nil, nil
		}
		return nil, nil
	}

	if strValue, ok := value.(string); ok && strValue == "" {
		if config.Optional {
			return nil, nil
		}
		return nil, nil
	}

	switch config.Type {
	case "str_objectid":
		return transformToObjectID(value)
	case "str_objectid_ptr":
		objID, err := transformToObjectID(value)
		if err != nil {
			return nil, err
		}
		return &objID, nil
	case "str_int64":
		return transformToInt64(value)
	default:
		return value, nil
	}
}

func transformToObjectID(value interface{}) (primitive.ObjectID, error) {
	strValue, ok := value.(string)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("giá trị không phải là string: %T", value)
	}
	if strValue == "" {
		return primitive.NilObjectID, nil
	}

	objID, err := primitive.ObjectIDFromHex(strValue)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("không thể convert '%s' sang ObjectID: %w", strValue, err)
	}
	return objID, nil
}

func transformToInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("không thể convert %T sang int64", value)
	}
}
