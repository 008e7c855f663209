package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	. "github.com/ttpr0/go-citymap/util"
	"golang.org/x/exp/slog"
)

var request_validate = validator.New()

func ReadRequestBody[T any](r *http.Request) (T, error) {
	var req T
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return req, err
	}
	err = json.Unmarshal(data, &req)
	if err != nil {
		return req, err
	}
	return req, nil
}

func WriteResponse[T any](w http.ResponseWriter, resp T, status int) {
	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

type Result struct {
	result any
	status int
}

func OK[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusOK,
	}
}

func BadRequest[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusBadRequest,
	}
}

func NotFound[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusNotFound,
	}
}

func _WriteResult(w http.ResponseWriter, method string, path string, res Result) {
	http_requests.WithLabelValues(method, path, strconv.Itoa(res.status)).Inc()
	if res.status != http.StatusOK {
		slog.Error(fmt.Sprintf("failed %s %s: %v", method, path, res.result))
		WriteResponse(w, NewErrorResponse(path, res.result), res.status)
	} else {
		slog.Info(fmt.Sprintf("successfully finished %s %s", method, path))
		WriteResponse(w, res.result, res.status)
	}
}

// Registers a POST handler decoding and validating the json body as F.
func MapPost[F any](app *mux.Router, path string, handler func(F) Result) {
	app.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		slog.Info("POST " + path)
		body, err := ReadRequestBody[F](r)
		if err != nil {
			_WriteResult(w, http.MethodPost, path, BadRequest(err.Error()))
			return
		}
		if err := request_validate.Struct(body); err != nil {
			_WriteResult(w, http.MethodPost, path, BadRequest(err.Error()))
			return
		}
		_WriteResult(w, http.MethodPost, path, handler(body))
	}).Methods(http.MethodPost)
}

type _QueryField struct {
	index int
	name  string
	kind  reflect.Kind
	// field is a pointer, set only if the parameter is present
	ptr bool
}

// Registers a GET handler filling F from query parameters named by the
// fields json tags. Pointer fields stay nil for missing parameters, so
// `validate:"required"` can reject them.
func MapGet[F any](app *mux.Router, path string, handler func(F) Result) {
	var val F
	typ := reflect.TypeOf(val)
	num_field := typ.NumField()
	fields := NewList[_QueryField](num_field)
	for i := 0; i < num_field; i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("json")
		if tag == "" {
			continue
		}
		field_typ := field.Type
		ptr := field_typ.Kind() == reflect.Pointer
		if ptr {
			field_typ = field_typ.Elem()
		}
		switch field_typ.Kind() {
		case reflect.Bool:
			fields.Add(_QueryField{i, tag, reflect.Bool, ptr})
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			fields.Add(_QueryField{i, tag, reflect.Int, ptr})
		case reflect.Float32, reflect.Float64:
			fields.Add(_QueryField{i, tag, reflect.Float64, ptr})
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			fields.Add(_QueryField{i, tag, reflect.Uint, ptr})
		case reflect.String:
			fields.Add(_QueryField{i, tag, reflect.String, ptr})
		}
	}
	app.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		slog.Info("GET " + path)
		query := r.URL.Query()
		t := reflect.New(typ).Elem()
		for _, field := range fields {
			if !query.Has(field.name) {
				continue
			}
			value := query.Get(field.name)
			f := t.Field(field.index)
			if field.ptr {
				f.Set(reflect.New(f.Type().Elem()))
				f = f.Elem()
			}
			var err error
			switch field.kind {
			case reflect.Bool:
				var num bool
				num, err = strconv.ParseBool(value)
				f.SetBool(num)
			case reflect.Int:
				var num int64
				num, err = strconv.ParseInt(value, 10, f.Type().Bits())
				f.SetInt(num)
			case reflect.Uint:
				var num uint64
				num, err = strconv.ParseUint(value, 10, f.Type().Bits())
				f.SetUint(num)
			case reflect.Float64:
				var num float64
				num, err = strconv.ParseFloat(value, f.Type().Bits())
				f.SetFloat(num)
			case reflect.String:
				f.SetString(value)
			}
			if err != nil {
				_WriteResult(w, http.MethodGet, path, BadRequest(fmt.Sprintf("invalid query parameter %s: %v", field.name, err)))
				return
			}
		}
		value := t.Interface().(F)
		if err := request_validate.Struct(value); err != nil {
			_WriteResult(w, http.MethodGet, path, BadRequest(err.Error()))
			return
		}
		_WriteResult(w, http.MethodGet, path, handler(value))
	}).Methods(http.MethodGet)
}
