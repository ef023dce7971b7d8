package combopt

import (
	"reflect"

	"github.com/iancoleman/strcase"

	"github.com/napalu/combopt/errs"
)

// Decode copies an object result into a struct. Fields map by the
// `combopt` tag when present, otherwise by the lowerCamel form of the
// field name. Missing and nil result entries leave the struct field at
// its zero value; a `combopt:"-"` tag skips the field.
func Decode(result interface{}, target interface{}) error {
	fields, ok := result.(map[string]interface{})
	if !ok {
		return errs.ErrDecodeTarget
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return errs.ErrDecodeTarget
	}
	elem := rv.Elem()
	t := elem.Type()

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}
		name := sf.Tag.Get("combopt")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strcase.ToLowerCamel(sf.Name)
		}
		v, ok := fields[name]
		if !ok || v == nil {
			continue
		}
		if err := assignField(elem.Field(i), reflect.ValueOf(v), name); err != nil {
			return err
		}
	}
	return nil
}

func assignField(field, v reflect.Value, name string) error {
	switch {
	case v.Type().AssignableTo(field.Type()):
		field.Set(v)
	case v.Type().ConvertibleTo(field.Type()) && field.Kind() != reflect.String:
		field.Set(v.Convert(field.Type()))
	case field.Kind() == reflect.Ptr && v.Type().AssignableTo(field.Type().Elem()):
		p := reflect.New(field.Type().Elem())
		p.Elem().Set(v)
		field.Set(p)
	default:
		return errs.ErrDecodeField.WithArgs(name)
	}
	return nil
}
