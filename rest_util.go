package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	. "github.com/ttpr0/landmark-routing/util"
	"golang.org/x/exp/slog"
)

var VALIDATE = validator.New()

func ReadRequestBody[T any](r *http.Request) (T, error) {
	var req T
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return req, err
	}
	if err := json.Unmarshal(data, &req); err != nil {
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

//**********************************************************
// results
//**********************************************************

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

func Unprocessable[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusUnprocessableEntity,
	}
}

func InternalError[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusInternalServerError,
	}
}

func _WriteResult(w http.ResponseWriter, r *http.Request, path string, res Result) {
	logger := RequestLogger(r)
	if res.status != http.StatusOK {
		logger.Warn("failed "+r.Method+" "+path, "status", res.status, "error", res.result)
		WriteResponse(w, NewErrorResponse(path, res.result), res.status)
	} else {
		logger.Info("successfully finished " + r.Method + " " + path)
		WriteResponse(w, res.result, res.status)
	}
}

//**********************************************************
// handler mapping
//**********************************************************

// MapPost registers a JSON endpoint. The body is decoded into F and
// validated before the handler runs.
func MapPost[F any](app chi.Router, path string, handler func(*http.Request, F) Result) {
	app.Post(path, func(w http.ResponseWriter, r *http.Request) {
		RequestLogger(r).Info("POST " + r.URL.Path)
		body, err := ReadRequestBody[F](r)
		if err != nil {
			_WriteResult(w, r, path, BadRequest("invalid request body: "+err.Error()))
			return
		}
		if err := _Validate(body); err != nil {
			_WriteResult(w, r, path, BadRequest(err.Error()))
			return
		}
		_WriteResult(w, r, path, handler(r, body))
	})
}

// MapGet registers an endpoint whose query parameters are bound onto the
// json-tagged fields of F.
func MapGet[F any](app chi.Router, path string, handler func(*http.Request, F) Result) {
	var val F
	typ := reflect.TypeOf(val)
	num_field := typ.NumField()
	fields := NewList[Tuple[int, string]](num_field)
	for i := 0; i < num_field; i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("json")
		if tag == "" {
			continue
		}
		fields.Add(MakeTuple(i, tag))
	}
	app.Get(path, func(w http.ResponseWriter, r *http.Request) {
		RequestLogger(r).Info("GET " + r.URL.Path)
		query := r.URL.Query()
		t := reflect.New(typ).Elem()
		for _, field := range fields {
			value := query.Get(field.B)
			if value == "" {
				continue
			}
			if err := _SetField(t.Field(field.A), value); err != nil {
				_WriteResult(w, r, path, BadRequest("invalid query parameter "+field.B+": "+err.Error()))
				return
			}
		}
		value := t.Interface().(F)
		if err := _Validate(value); err != nil {
			_WriteResult(w, r, path, BadRequest(err.Error()))
			return
		}
		_WriteResult(w, r, path, handler(r, value))
	})
}

func _SetField(f reflect.Value, value string) error {
	switch f.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		f.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		num, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		f.SetInt(num)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		num, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		f.SetUint(num)
	case reflect.Float32, reflect.Float64:
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		f.SetFloat(num)
	case reflect.String:
		f.SetString(value)
	}
	return nil
}

func _Validate(value any) error {
	if reflect.TypeOf(value).Kind() != reflect.Struct {
		return nil
	}
	err := VALIDATE.Struct(value)
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		field := invalid[0]
		return errors.New("invalid field " + field.Field() + ": failed " + field.Tag())
	}
	return err
}
