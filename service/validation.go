package service

import (
	"fmt"
	"reflect"
	"strings"

	"monviso/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate 全局校验器，并发安全
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 错误路径使用 JSON 字段名
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 金额按数值参与 gt/gte 等比较
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// 金额最多两位小数，直接读取原始 decimal 避免经 float64 丢失精度
	if err := v.RegisterValidation("money", maxTwoDecimals); err != nil {
		panic(err)
	}

	// 零值日期视为未填写
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(models.Date); ok && !d.IsZero() {
			return d.String()
		}
		return nil
	}, models.Date{})

	return v
}

func maxTwoDecimals(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	for parent.Kind() == reflect.Ptr {
		if parent.IsNil() {
			return true
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return true
	}
	f := parent.FieldByName(fl.StructFieldName())
	for f.Kind() == reflect.Ptr {
		if f.IsNil() {
			return true
		}
		f = f.Elem()
	}
	d, ok := f.Interface().(decimal.Decimal)
	if !ok {
		return true
	}
	return d.Equal(d.Truncate(2))
}

// validateStruct 校验结构体，返回 *ValidationError 或 nil
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe.Namespace())] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

// fieldPath 去掉顶层结构体名，如 OnboardingInput.incomes[0].amount -> incomes[0].amount
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "该字段必填"
	case "email":
		return "邮箱格式不正确"
	case "gt":
		return fmt.Sprintf("必须大于 %s", fe.Param())
	case "gte":
		return fmt.Sprintf("必须大于等于 %s", fe.Param())
	case "lte":
		return fmt.Sprintf("不能超过 %s", fe.Param())
	case "money":
		return "金额最多保留两位小数"
	case "max":
		return fmt.Sprintf("长度不能超过 %s", fe.Param())
	case "len":
		return fmt.Sprintf("长度必须为 %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("取值必须为: %s", fe.Param())
	default:
		return "格式不正确"
	}
}
