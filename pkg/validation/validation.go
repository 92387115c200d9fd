package validation

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validator runs struct rules declared in `validate` tags and reports the
// violations as plain English messages.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// Option narrows a single Validate call.
type Option func(*options)

type options struct {
	partial []string
	except  []string
}

// Partial only validates the named Go struct fields, nested fields as
// "Outer.Inner".
func Partial(fields ...string) Option {
	return func(o *options) {
		o.partial = append(o.partial, fields...)
	}
}

// Except validates every Go struct field but the named ones.
func Except(fields ...string) Option {
	return func(o *options) {
		o.except = append(o.except, fields...)
	}
}

func New() (*Validator, error) {
	locale := en.New()
	translator, _ := ut.New(locale, locale).GetTranslator(locale.Locale())

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, err
	}

	return &Validator{validate: validate, translator: translator}, nil
}

// jsonFieldName names fields in messages after their json tag.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

// RegisterRule adds a custom rule under tag. The message may reference the
// field name as {0}.
func (v *Validator) RegisterRule(tag string, message string, fn validator.Func) error {
	if err := v.validate.RegisterValidation(tag, fn); err != nil {
		return err
	}

	register := func(translator ut.Translator) error {
		return translator.Add(tag, message, true)
	}
	translate := func(translator ut.Translator, fe validator.FieldError) string {
		msg, err := translator.T(tag, fe.Field())
		if err != nil {
			return fe.Error()
		}
		return msg
	}
	return v.validate.RegisterTranslation(tag, v.translator, register, translate)
}

// Validate checks object and returns every violation message in field
// order. The returned error is only set when object can not be validated at
// all, for example when it is not a struct.
func (v *Validator) Validate(ctx context.Context, object any, opts ...Option) ([]string, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var err error
	switch {
	case len(o.partial) > 0:
		err = v.validate.StructPartialCtx(ctx, object, o.partial...)
	case len(o.except) > 0:
		err = v.validate.StructExceptCtx(ctx, object, o.except...)
	default:
		err = v.validate.StructCtx(ctx, object)
	}
	return v.handle(err)
}

func (v *Validator) handle(err error) ([]string, error) {
	if err == nil {
		return nil, nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return nil, err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fe.Translate(v.translator))
	}
	return messages, nil
}

var (
	defaultValidator     *Validator
	defaultValidatorErr  error
	defaultValidatorOnce sync.Once
)

// Default returns the validator shared by the package-level functions.
func Default() (*Validator, error) {
	defaultValidatorOnce.Do(func() {
		defaultValidator, defaultValidatorErr = New()
	})
	return defaultValidator, defaultValidatorErr
}

// Validate checks object with the default validator.
func Validate(ctx context.Context, object any, opts ...Option) ([]string, error) {
	v, err := Default()
	if err != nil {
		return nil, err
	}
	return v.Validate(ctx, object, opts...)
}
