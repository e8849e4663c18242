package envtag

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// Unmarshal sets the string, bool and int fields of the struct pointed to by
// s from the environment variable named strings.ToUpper(prefix + tag).
// Unset or empty variables leave the field untouched.
// Embedded structs tagged ",squash" are walked too.
func Unmarshal(tagName string, prefix string, s interface{}) error {
	structVal := reflect.ValueOf(s)
	if structVal.Kind() != reflect.Ptr || structVal.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("envtag: expected a pointer to a struct, got %T", s)
	}
	structVal = structVal.Elem()
	typ := structVal.Type()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get(tagName)
		if tag == "" || tag == "-" {
			continue
		}

		v := structVal.Field(i)
		if !v.CanSet() {
			continue
		}

		if tag == ",squash" {
			if field.Type.Kind() == reflect.Struct {
				if err := Unmarshal(tagName, prefix, v.Addr().Interface()); err != nil {
					return err
				}
			}
			continue
		}

		name := strings.ToUpper(prefix + tag)
		envVal := os.Getenv(name)
		if envVal == "" {
			continue
		}
		if err := set(v, envVal); err != nil {
			return fmt.Errorf("envtag: %s: %w", name, err)
		}
	}
	return nil
}

func set(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	}
	return nil
}
