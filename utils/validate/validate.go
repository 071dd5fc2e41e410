package validate

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"shiftdesk/internal/core"
	cErr "shiftdesk/internal/pkg/error"
	"shiftdesk/internal/pkg/request"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 輸出格式化的 validator error（欄位 json 名/型別/規則列表）
func ValidationErrorResponse(c *gin.Context, obj interface{}, err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		var b strings.Builder
		b.WriteString("Validation error:\n")
		for _, fe := range errs {
			field := jsonFieldName(obj, fe.StructField())
			ftype := fieldType(obj, fe.StructField())
			format := getFieldFormat(obj, fe.StructField())
			b.WriteString(fmt.Sprintf(" - Field \"%s\" (type: %s) failed the '%s' validation (rules: %v)\n",
				field, ftype, fe.Tag(), format))
		}
		return b.String()
	}
	return fmt.Sprintf("Validation error: %s", err.Error())
}

func jsonFieldName(obj interface{}, structField string) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		tag := f.Tag.Get("json")
		if tag != "" && tag != "-" {
			return strings.Split(tag, ",")[0]
		}
	}
	return structField
}

func fieldType(obj interface{}, structField string) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		return f.Type.Name()
	}
	return ""
}

func getFieldFormat(obj interface{}, structField string) []string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		tag := f.Tag.Get("binding")
		if tag != "" {
			return strings.Split(tag, ",")
		}
	}
	return nil
}

func ParseObjectID(c *gin.Context, key string) (id primitive.ObjectID, cause error, responseErr error) {
	id, err := primitive.ObjectIDFromHex(c.Param(key))
	if err != nil {
		return primitive.NilObjectID, err, cErr.ValidatePathParamsErr("invalid " + key)
	}
	return id, nil, nil
}

func BindAndValidate(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindJSON(req); err != nil {
		// DTO 有自訂訊息表時優先使用
		if _, ok := req.(request.Validator); ok {
			return err, request.GetError(req, err)
		}
		return err, cErr.ValidateErr(ValidationErrorResponse(c, req, err))
	}
	return nil, nil
}

func GetInt64Query(c *gin.Context, key string, defaultVal int64) (int64, error) {
	if v := c.Query(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, err
		}
		return n, nil
	}
	return defaultVal, nil
}

// PayloadToMap 將型別化的事件 payload 轉為 map，寫入 Mongo 時保持 snake_case 欄位
func PayloadToMap(payload any) (map[string]any, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// ===== ShiftEventType =====
var validShiftEventTypes = []core.ShiftEventType{
	core.EventShiftStarted,
	core.EventShiftClosed,
	core.EventProblemReported,
	core.EventTaskCompleted,
	core.EventTaskUncompleted,
}

func IsValidShiftEventType(eventType string) bool {
	for _, v := range validShiftEventTypes {
		if core.ShiftEventType(eventType) == v {
			return true
		}
	}
	return false
}

// ===== TenderType =====
var validTenders = []core.TenderType{
	core.TenderCash,
	core.TenderCard,
	core.TenderOnline,
}

func IsValidTender(tender string) bool {
	for _, v := range validTenders {
		if core.TenderType(tender) == v {
			return true
		}
	}
	return false
}

// ===== ProblemCategory =====
var validProblemCategories = []core.ProblemCategory{
	core.ProblemProductOut,
	core.ProblemEquipmentFailure,
	core.ProblemWrongOrder,
	core.ProblemRudeClient,
	core.ProblemWorkIssue,
}

func IsValidProblemCategory(category string) bool {
	for _, v := range validProblemCategories {
		if core.ProblemCategory(category) == v {
			return true
		}
	}
	return false
}

// ===== ProblemSeverity =====
var validProblemSeverities = []core.ProblemSeverity{
	core.SeverityLow,
	core.SeverityMedium,
	core.SeverityHigh,
	core.SeverityCritical,
}

func IsValidProblemSeverity(severity string) bool {
	for _, v := range validProblemSeverities {
		if core.ProblemSeverity(severity) == v {
			return true
		}
	}
	return false
}
