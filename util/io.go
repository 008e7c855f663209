package util

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func ReadJSONFromFile[T any](file string) (T, error) {
	var value T
	data, err := _ReadFile(file)
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("failed to decode json file %s: %w", file, err)
	}
	return value, nil
}

func ReadYAMLFromFile[T any](file string) (T, error) {
	var value T
	data, err := _ReadFile(file)
	if err != nil {
		return value, err
	}
	if err := yaml.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("failed to decode yaml file %s: %w", file, err)
	}
	return value, nil
}

func _ReadFile(file string) ([]byte, error) {
	data, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("file not found: %s", file)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func ReadCSVFromFile[T any](filename string, delimiter rune) (List[T], error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := ReadCSV[T](file, delimiter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return rows, nil
}

// Decodes csv records into structs of type T.
//
// Fields are matched to header columns through their `csv` tag, every
// tagged field needs a matching column. Records with a wrong field
// count and values not fitting their field are errors, empty values keep
// the zero value.
func ReadCSV[T any](r io.Reader, delimiter rune) (List[T], error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	name_row_mapping := NewDict[string, int](10)
	for i, name := range header {
		name_row_mapping[strings.TrimSpace(name)] = i
	}

	var val T
	typ := reflect.TypeOf(val)
	num_field := typ.NumField()
	fields := NewList[Triple[int, int, reflect.Kind]](num_field)
	for i := 0; i < num_field; i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("csv")
		if tag == "" {
			continue
		}
		if !name_row_mapping.ContainsKey(tag) {
			return nil, fmt.Errorf("missing csv column %q", tag)
		}
		row := name_row_mapping[tag]
		switch field.Type.Kind() {
		case reflect.Bool:
			fields.Add(MakeTriple(i, row, reflect.Bool))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			fields.Add(MakeTriple(i, row, reflect.Int))
		case reflect.Float32, reflect.Float64:
			fields.Add(MakeTriple(i, row, reflect.Float64))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			fields.Add(MakeTriple(i, row, reflect.Uint))
		case reflect.String:
			fields.Add(MakeTriple(i, row, reflect.String))
		}
	}

	rows := NewList[T](10)
	line := 1
	for {
		record, err := reader.Read()
		line += 1
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		t := reflect.New(typ).Elem()
		for _, field := range fields {
			index := field.A
			row := field.B
			typ := field.C
			value := strings.TrimSpace(record[row])
			if value == "" {
				continue
			}
			f := t.Field(index)
			switch typ {
			case reflect.Bool:
				num, err := strconv.ParseBool(value)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				f.SetBool(num)
			case reflect.Int:
				num, err := strconv.ParseInt(value, 10, f.Type().Bits())
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				f.SetInt(num)
			case reflect.Uint:
				num, err := strconv.ParseUint(value, 10, f.Type().Bits())
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				f.SetUint(num)
			case reflect.Float64:
				num, err := strconv.ParseFloat(value, f.Type().Bits())
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				f.SetFloat(num)
			case reflect.String:
				f.SetString(value)
			}
		}
		rows.Add(t.Interface().(T))
	}
	return rows, nil
}
