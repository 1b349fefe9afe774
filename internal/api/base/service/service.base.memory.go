package basesvc

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "movu_api/internal/api/base/models"
	"movu_api/internal/common"
	"movu_api/internal/utility"
)

// BaseServiceMemory là implementation in-memory của BaseServiceMongo, dùng cho test
// và các môi trường không có MongoDB. Ràng buộc unique được đọc từ tag `index`
// trên model, giống convention của database.CreateIndexes.
type BaseServiceMemory[T any] struct {
	mu         sync.RWMutex
	docs       []map[string]interface{} // Giữ thứ tự insert
	uniqueKeys [][]string               // Các bộ key unique (single hoặc compound)
}

// NewBaseServiceMemory tạo mới một BaseServiceMemory, đọc ràng buộc unique từ model T.
func NewBaseServiceMemory[T any]() *BaseServiceMemory[T] {
	var model T
	return &BaseServiceMemory[T]{
		docs:       []map[string]interface{}{},
		uniqueKeys: uniqueKeySetsFromModel(reflect.TypeOf(model)),
	}
}

// uniqueKeySetsFromModel đọc tag `index` trên model và trả về các bộ field unique.
// Hỗ trợ: index:"unique" (single) và index:"compound:<group>_unique" (compound).
func uniqueKeySetsFromModel(modelType reflect.Type) [][]string {
	if modelType == nil {
		return nil
	}
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}
	if modelType.Kind() != reflect.Struct {
		return nil
	}

	var sets [][]string
	compoundGroups := map[string][]string{}

	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}
		bsonField := strings.Split(field.Tag.Get("bson"), ",")[0]
		if bsonField == "" || bsonField == "-" {
			continue
		}

		for _, part := range strings.Split(tag, ";") {
			for _, subPart := range strings.Split(part, ",") {
				kv := strings.Split(subPart, ":")
				switch kv[0] {
				case "unique":
					sets = append(sets, []string{bsonField})
				case "compound":
					if len(kv) == 2 && strings.Contains(kv[1], "_unique") {
						compoundGroups[kv[1]] = append(compoundGroups[kv[1]], bsonField)
					}
				}
			}
		}
	}

	// Thứ tự group ổn định để kết quả deterministic
	groupNames := make([]string, 0, len(compoundGroups))
	for name := range compoundGroups {
		groupNames = append(groupNames, name)
	}
	sort.Strings(groupNames)
	for _, name := range groupNames {
		sets = append(sets, compoundGroups[name])
	}

	return sets
}

// matchesFilter kiểm tra một document có khớp filter không.
// Hỗ trợ equality và các operator $eq, $ne, $gt, $gte, $lt, $lte, $in, $nin, $exists.
func matchesFilter(doc map[string]interface{}, filter interface{}) bool {
	conditions := normalizeToMap(filter)
	for field, cond := range conditions {
		value, exists := doc[field]

		if condMap, ok := normalizeOperatorMap(cond); ok {
			for op, operand := range condMap {
				if !applyOperator(op, value, exists, operand) {
					return false
				}
			}
			continue
		}

		if !exists || !valuesEqual(value, cond) {
			return false
		}
	}
	return true
}

// normalizeToMap đưa filter về map[string]interface{} (hỗ trợ bson.M, bson.D, map)
func normalizeToMap(filter interface{}) map[string]interface{} {
	switch f := filter.(type) {
	case nil:
		return map[string]interface{}{}
	case bson.M:
		return map[string]interface{}(f)
	case map[string]interface{}:
		return f
	case bson.D:
		result := make(map[string]interface{}, len(f))
		for _, e := range f {
			result[e.Key] = e.Value
		}
		return result
	default:
		return map[string]interface{}{}
	}
}

// normalizeOperatorMap kiểm tra một condition có phải là map operator ($gt, $in, ...) không
func normalizeOperatorMap(cond interface{}) (map[string]interface{}, bool) {
	m := normalizeToMap(cond)
	if len(m) == 0 {
		return nil, false
	}
	for key := range m {
		if !strings.HasPrefix(key, "$") {
			return nil, false
		}
	}
	return m, true
}

// applyOperator áp dụng một operator so sánh lên giá trị của document
func applyOperator(op string, value interface{}, exists bool, operand interface{}) bool {
	switch op {
	case "$eq":
		return exists && valuesEqual(value, operand)
	case "$ne":
		return !exists || !valuesEqual(value, operand)
	case "$exists":
		want, _ := operand.(bool)
		return exists == want
	case "$in":
		if !exists {
			return false
		}
		for _, item := range toSlice(operand) {
			if valuesEqual(value, item) {
				return true
			}
		}
		return false
	case "$nin":
		if !exists {
			return true
		}
		for _, item := range toSlice(operand) {
			if valuesEqual(value, item) {
				return false
			}
		}
		return true
	case "$gt", "$gte", "$lt", "$lte":
		if !exists {
			return false
		}
		a, aok := toFloat64(value)
		b, bok := toFloat64(operand)
		if !aok || !bok {
			return false
		}
		switch op {
		case "$gt":
			return a > b
		case "$gte":
			return a >= b
		case "$lt":
			return a < b
		default:
			return a <= b
		}
	default:
		return false
	}
}

// valuesEqual so sánh hai giá trị, số được so sánh sau khi quy về float64
func valuesEqual(a, b interface{}) bool {
	if af, ok := toFloat64(a); ok {
		if bf, ok := toFloat64(b); ok {
			return af == bf
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case primitive.DateTime:
		return float64(n), true
	default:
		return 0, false
	}
}

func toSlice(v interface{}) []interface{} {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	result := make([]interface{}, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		result = append(result, rv.Index(i).Interface())
	}
	return result
}

// checkUnique kiểm tra doc có vi phạm ràng buộc unique với các document khác không.
// skipIndex: vị trí document chính nó (-1 khi insert mới).
func (s *BaseServiceMemory[T]) checkUnique(doc map[string]interface{}, skipIndex int) error {
	for _, keySet := range s.uniqueKeys {
		// Thiếu field nào trong bộ key thì bỏ qua (sparse semantics)
		complete := true
		for _, key := range keySet {
			if _, ok := doc[key]; !ok {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}

		for i, other := range s.docs {
			if i == skipIndex {
				continue
			}
			match := true
			for _, key := range keySet {
				otherValue, ok := other[key]
				if !ok || !valuesEqual(otherValue, doc[key]) {
					match = false
					break
				}
			}
			if match {
				return common.ErrMongoDuplicate
			}
		}
	}
	return nil
}

// applyUpdate áp dụng UpdateData lên một document (các operator $set, $unset)
func applyUpdate(doc map[string]interface{}, update *UpdateData) {
	for key, value := range update.Set {
		doc[key] = value
	}
	for key := range update.Unset {
		delete(doc, key)
	}
}

func cloneDoc(doc map[string]interface{}) map[string]interface{} {
	clone := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		clone[k] = v
	}
	return clone
}

// prepareInsertDoc chuyển model thành document: bỏ empty string, thêm _id và timestamps
func prepareInsertDoc[T any](data T) (map[string]interface{}, error) {
	doc, err := utility.ToMap(data)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}
	for key, value := range doc {
		if strValue, ok := value.(string); ok && strValue == "" {
			delete(doc, key)
		}
	}
	if id, ok := doc["_id"]; !ok || id == primitive.NilObjectID {
		doc["_id"] = primitive.NewObjectID()
	}
	now := time.Now().UnixMilli()
	doc["createdAt"] = now
	doc["updatedAt"] = now
	return doc, nil
}

// ====================================
// TRIỂN KHAI INTERFACE BaseServiceMongo
// ====================================

func (s *BaseServiceMemory[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	doc, err := prepareInsertDoc(data)
	if err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUnique(doc, -1); err != nil {
		return zero, err
	}

	s.docs = append(s.docs, doc)
	return utility.ToModel[T](cloneDoc(doc))
}

func (s *BaseServiceMemory[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	results := make([]T, 0, len(data))
	for _, item := range data {
		created, err := s.InsertOne(ctx, item)
		if err != nil {
			return nil, err
		}
		results = append(results, created)
	}
	return results, nil
}

func (s *BaseServiceMemory[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.docs {
		if matchesFilter(doc, filter) {
			return utility.ToModel[T](cloneDoc(doc))
		}
	}
	return zero, common.ErrNotFound
}

func (s *BaseServiceMemory[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []T{}
	for _, doc := range s.docs {
		if matchesFilter(doc, filter) {
			model, err := utility.ToModel[T](cloneDoc(doc))
			if err != nil {
				return nil, err
			}
			results = append(results, model)
		}
	}
	return results, nil
}

func (s *BaseServiceMemory[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (T, error) {
	var zero T

	updateData, err := ToUpdateData(update)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	if updateData.Set == nil {
		updateData.Set = make(map[string]interface{})
	}
	updateData.Set["updatedAt"] = time.Now().UnixMilli()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, doc := range s.docs {
		if matchesFilter(doc, filter) {
			candidate := cloneDoc(doc)
			applyUpdate(candidate, updateData)
			if err := s.checkUnique(candidate, i); err != nil {
				return zero, err
			}
			s.docs[i] = candidate
			return utility.ToModel[T](cloneDoc(candidate))
		}
	}
	return zero, common.ErrNotFound
}

func (s *BaseServiceMemory[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, doc := range s.docs {
		if matchesFilter(doc, filter) {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (s *BaseServiceMemory[T]) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (T, error) {
	var zero T

	updateData, err := ToUpdateData(update)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	if updateData.Set == nil {
		updateData.Set = make(map[string]interface{})
	}
	updateData.Set["updatedAt"] = time.Now().UnixMilli()

	upsert := opts != nil && opts.Upsert != nil && *opts.Upsert

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, doc := range s.docs {
		if matchesFilter(doc, filter) {
			candidate := cloneDoc(doc)
			applyUpdate(candidate, updateData)
			if err := s.checkUnique(candidate, i); err != nil {
				return zero, err
			}
			s.docs[i] = candidate
			return utility.ToModel[T](cloneDoc(candidate))
		}
	}

	if !upsert {
		return zero, common.ErrNotFound
	}

	// Upsert: tạo document mới từ các điều kiện equality của filter + $set + $setOnInsert
	doc := map[string]interface{}{}
	for field, cond := range normalizeToMap(filter) {
		if _, isOperator := normalizeOperatorMap(cond); !isOperator {
			doc[field] = cond
		}
	}
	for key, value := range updateData.SetOnInsert {
		doc[key] = value
	}
	applyUpdate(doc, updateData)
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}
	if _, ok := doc["createdAt"]; !ok {
		doc["createdAt"] = time.Now().UnixMilli()
	}

	if err := s.checkUnique(doc, -1); err != nil {
		return zero, err
	}

	s.docs = append(s.docs, doc)
	return utility.ToModel[T](cloneDoc(doc))
}

func (s *BaseServiceMemory[T]) FindOneAndDelete(ctx context.Context, filter interface{}, opts *options.FindOneAndDeleteOptions) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, doc := range s.docs {
		if matchesFilter(doc, filter) {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return utility.ToModel[T](cloneDoc(doc))
		}
	}
	return zero, common.ErrNotFound
}

func (s *BaseServiceMemory[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, doc := range s.docs {
		if matchesFilter(doc, filter) {
			count++
		}
	}
	return count, nil
}

func (s *BaseServiceMemory[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

func (s *BaseServiceMemory[T]) FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]T, error) {
	return s.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func (s *BaseServiceMemory[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	all, err := s.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	total := int64(len(all))
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	var totalPage int64
	if total > 0 {
		totalPage = (total + limit - 1) / limit
	}

	items := all[start:end]
	return &basemodels.PaginateResult[T]{
		Items:     items,
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Total:     total,
		TotalPage: totalPage,
	}, nil
}

func (s *BaseServiceMemory[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (T, error) {
	return s.UpdateOne(ctx, bson.M{"_id": id}, data, nil)
}

func (s *BaseServiceMemory[T]) DeleteById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOneAndDelete(ctx, bson.M{"_id": id}, nil)
}

func (s *BaseServiceMemory[T]) Upsert(ctx context.Context, filter interface{}, data interface{}) (T, error) {
	var zero T

	updateData, err := ToUpdateData(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	if updateData.SetOnInsert == nil {
		updateData.SetOnInsert = make(map[string]interface{})
	}
	updateData.SetOnInsert["createdAt"] = time.Now().UnixMilli()
	for key := range updateData.SetOnInsert {
		if _, inSet := updateData.Set[key]; inSet {
			delete(updateData.SetOnInsert, key)
		}
	}

	upsert := true
	opts := &options.FindOneAndUpdateOptions{Upsert: &upsert}
	return s.FindOneAndUpdate(ctx, filter, updateData, opts)
}

func (s *BaseServiceMemory[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *BaseServiceMemory[T]) AverageOfField(ctx context.Context, field string, filter interface{}) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum float64
	var count int64
	for _, doc := range s.docs {
		if !matchesFilter(doc, filter) {
			continue
		}
		if value, ok := toFloat64(doc[field]); ok {
			sum += value
			count++
		}
	}

	if count == 0 {
		return 0, nil
	}
	return sum / float64(count), nil
}
