package helper

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"blogicum/logger"
	"blogicum/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

const (
	textError             = `error`
	textOk                = `ok`
	codeSuccess           = 200
	codeBadRequestError   = 400
	codeUnauthorizedError = 401
	codeValidationError   = 403
	codeNotFound          = 404
	codeMethodNotAllowed  = 405
	codeForbidden         = 406
	codeConflict          = 409
	codeInternalError     = 500
)

var (
	slugPattern     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
)

// ResponseHelper ...
type ResponseHelper struct {
	C          *gin.Context
	Status     string
	Message    string
	Data       interface{}
	Code       int // not the http code
	CodeType   string
	HTTPStatus int
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper wires the validator with English messages and the
// project specific "slug" and "username" rules.
func NewHTTPHelper() *HTTPHelper {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		logger.Error.Printf("register validator translations: %v", err)
	}

	registerPattern(validate, trans, "slug", slugPattern,
		"{0} may contain only latin letters, digits, hyphens and underscores")
	registerPattern(validate, trans, "username", usernamePattern,
		"{0} may contain only letters, digits and @/./+/-/_ characters")

	return &HTTPHelper{Validate: validate, Translator: trans}
}

func registerPattern(v *validator.Validate, trans ut.Translator, tag string, pattern *regexp.Regexp, message string) {
	_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		},
	)
}

// GetStatusCode ...
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		notFound     models.ErrorNotFound
		unauthorized models.ErrorUnauthorized
		forbidden    models.ErrorForbidden
		conflict     models.ErrorConflict
		validation   models.ErrorValidation
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message string, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{c, status, message, data, code, codeType, httpStatusFor(code)}
}

func httpStatusFor(code int) int {
	switch code {
	case codeSuccess:
		return http.StatusOK
	case codeUnauthorizedError:
		return http.StatusUnauthorized
	case codeNotFound:
		return http.StatusNotFound
	case codeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case codeForbidden:
		return http.StatusForbidden
	case codeConflict:
		return http.StatusConflict
	case codeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, message string, data interface{}, code int, codeType string) error {
	res := u.SetResponse(c, textError, message, data, code, codeType)

	return u.SendResponse(res)
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeBadRequestError, `badRequest`)
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) error {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	return u.SendFieldErrors(c, errorResponse)
}

// SendFieldErrors ...
// Send per-field messages, the same shape as SendValidationError.
func (u *HTTPHelper) SendFieldErrors(c *gin.Context, fields map[string][]string) error {
	c.JSON(http.StatusBadRequest, map[string]interface{}{
		"code":         codeValidationError,
		"code_type":    "validationError",
		"code_message": fields,
		"data":         u.EmptyJsonMap(),
	})
	return nil
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeUnauthorizedError, `unAuthorized`)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeNotFound, `notFound`)
}

// SendForbiddenError ...
func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeForbidden, `forbidden`)
}

// SendMethodNotAllowed ...
func (u *HTTPHelper) SendMethodNotAllowed(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeMethodNotAllowed, `methodNotAllowed`)
}

// SendConflictError ...
func (u *HTTPHelper) SendConflictError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeConflict, `conflict`)
}

// SendInternalError ...
// Generic 500 body. The cause is logged, never sent.
func (u *HTTPHelper) SendInternalError(c *gin.Context, err error) error {
	if err != nil {
		logger.Error.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	return u.SendError(c, http.StatusText(http.StatusInternalServerError), u.EmptyJsonMap(), codeInternalError, `internalError`)
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textOk, message, data, codeSuccess, `success`)

	return u.SendResponse(res)
}

// SendServiceError ...
// Translate a service error into the matching response. Ownership
// failures are not handled here; callers redirect those themselves.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) error {
	var validation models.ErrorValidation
	if errors.As(err, &validation) {
		return u.SendFieldErrors(c, validation.Fields)
	}

	switch u.GetStatusCode(err) {
	case http.StatusNotFound:
		return u.SendNotFoundError(c, err.Error(), u.EmptyJsonMap())
	case http.StatusUnauthorized:
		return u.SendUnauthorizedError(c, err.Error(), u.EmptyJsonMap())
	case http.StatusForbidden:
		return u.SendForbiddenError(c, err.Error(), u.EmptyJsonMap())
	case http.StatusConflict:
		return u.SendConflictError(c, err.Error(), u.EmptyJsonMap())
	default:
		return u.SendInternalError(c, err)
	}
}

// SendResponse ...
// Send response
func (u *HTTPHelper) SendResponse(res ResponseHelper) error {
	if len(res.Message) == 0 {
		res.Message = `success`
	}

	res.C.JSON(res.HTTPStatus, map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
	return nil
}

// Redirect ...
// Post/Redirect/Get: every redirect is a 303 so clients follow with GET.
func (u *HTTPHelper) Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// ValidateStruct returns validator.ValidationErrors for an invalid form.
func (u *HTTPHelper) ValidateStruct(s interface{}) error {
	return u.Validate.Struct(s)
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

// get pagination URL
func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page int) string {
	r := c.Request
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.Path + "?page=" + strconv.Itoa(page)
}

// Set paginantion response
func (u *HTTPHelper) GeneratePaging(c *gin.Context, page models.Page) map[string]interface{} {
	prevURL, nextURL, firstURL, lastURL := "", "", "", ""

	if page.HasPrev {
		prevURL = u.GetPagingUrl(c, page.CurrentPage-1)
		firstURL = u.GetPagingUrl(c, 1)
	}

	if page.HasNext {
		nextURL = u.GetPagingUrl(c, page.CurrentPage+1)
		lastURL = u.GetPagingUrl(c, page.TotalPages)
	}

	links := map[string]interface{}{
		"previous": prevURL,
		"next":     nextURL,
		"first":    firstURL,
		"last":     lastURL,
	}

	pagination := map[string]interface{}{
		"total_records": page.TotalRecords,
		"per_page":      page.PerPage,
		"current_page":  page.CurrentPage,
		"total_pages":   page.TotalPages,
		"has_next":      page.HasNext,
		"has_previous":  page.HasPrev,
		"links":         links,
	}

	return pagination
}
