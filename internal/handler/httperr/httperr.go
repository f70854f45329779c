package httperr

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"restaurant-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	ErrUnauthorized = errs.New("unauthorized")

	errMalformedBody = errs.New("malformed request body")
)

func init() {
	// report binding failures under their JSON names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithBindError renders a request that could not be decoded or failed
// struct validation as 400.
func AbortWithBindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		detail := make(map[string][]string, len(ve))
		for _, fe := range ve {
			detail[fe.Field()] = append(detail[fe.Field()], bindMessage(fe))
		}
		AbortWithError(c, http.StatusBadRequest, err, "Validation failed", detail)
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		detail := map[string][]string{typeErr.Field: {"Incorrect type."}}
		AbortWithError(c, http.StatusBadRequest, err, "Validation failed", detail)
		return
	}

	if errors.Is(err, io.EOF) {
		AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errMalformedBody), "Request body is empty", nil)
		return
	}

	AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errMalformedBody), "Invalid request", nil)
}

// AbortWithUsecaseError maps command and query errors onto the HTTP taxonomy.
// Anything unrecognised is a 500.
func AbortWithUsecaseError(c *gin.Context, err error) {
	if ve, ok := errs.AsValidation(err); ok {
		AbortWithError(c, http.StatusBadRequest, err, "Validation failed", ve.Fields())
		return
	}

	switch {
	case errs.Is(err, errs.ErrMenuItemNotFound),
		errs.Is(err, errs.ErrBookingNotFound),
		errs.Is(err, errs.ErrUserNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// AbortNotFound is used for path ids that are not UUIDs.
func AbortNotFound(c *gin.Context, err error) {
	AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
}

func AbortUnauthorized(c *gin.Context, err error, msg string) {
	if err == nil {
		err = ErrUnauthorized
	}
	AbortWithError(c, http.StatusUnauthorized, err, msg, nil)
}

func bindMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min", "gte":
		return "Ensure this value is at least " + fe.Param() + "."
	case "max", "lte":
		return "Ensure this value is at most " + fe.Param() + "."
	case "email":
		return "Enter a valid email address."
	default:
		return "Invalid value."
	}
}
