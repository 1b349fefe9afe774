// Package utility chứa các hàm tiện ích chuyển đổi dữ liệu giữa struct và bson.
package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi một struct thành map[string]interface{} thông qua bson marshal/unmarshal.
// Các tag bson trên struct quyết định tên key trong map trả về.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	itr, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	err = bson.Unmarshal(itr, &stringInterfaceMap)
	if err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}

// ToModel chuyển đổi một map (hoặc bson.M) thành struct kiểu T.
// Chiều ngược lại của ToMap, dùng khi đọc document thô từ storage.
func ToModel[T any](m map[string]interface{}) (T, error) {
	var model T
	data, err := bson.Marshal(bson.M(m))
	if err != nil {
		return model, fmt.Errorf("bson marshal failed: %w", err)
	}
	if err := bson.Unmarshal(data, &model); err != nil {
		return model, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return model, nil
}
