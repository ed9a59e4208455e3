package domain

// Request validation. Rules apply in order, first failure wins:
// malformed payload, missing field, non-string value (no coercion),
// empty after trimming, review text over the configured bound.
// Validation is pure: it never touches the pool or the collaborators

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	perr "segmenter/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const (
	fieldCustomerID = "customer_id"
	fieldReviewText = "review_text"
)

var (
	vOnce  sync.Once
	vInst  *validator.Validate
	vTrans ut.Translator
)

// vget returns the singleton validator with english translations and
// json tag names
func vget() (*validator.Validate, ut.Translator) {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		vInst = v
		vTrans = trans
	})
	return vInst, vTrans
}

// ParsePayload maps a raw JSON payload to a validated Input
func ParsePayload(raw []byte, maxTextLen int) (Input, error) {
	var zero Input

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return zero, perr.JSONErrf("malformed JSON payload")
	}

	values := make(map[string]string, 2)
	for _, name := range []string{fieldCustomerID, fieldReviewText} {
		rv, ok := fields[name]
		if !ok {
			return zero, perr.WithField(
				perr.Validationf("%s is required", name), name)
		}
		if bytes.Equal(bytes.TrimSpace(rv), []byte("null")) {
			return zero, perr.WithField(
				perr.Validationf("%s must be a string", name), name)
		}
		var s string
		if err := json.Unmarshal(rv, &s); err != nil {
			return zero, perr.WithField(
				perr.Validationf("%s must be a string", name), name)
		}
		values[name] = s
	}

	return ValidateFields(values[fieldCustomerID], values[fieldReviewText], maxTextLen)
}

// ValidateFields applies the trailing validation rules to already-typed
// fields, shared with the RPC transport where the wire format carries
// types itself
func ValidateFields(customerID, reviewText string, maxTextLen int) (Input, error) {
	var zero Input

	in := Input{
		CustomerID: strings.TrimSpace(customerID),
		ReviewText: strings.TrimSpace(reviewText),
	}

	v, trans := vget()
	if err := v.Struct(in); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return zero, perr.WithField(
				perr.Validationf("%s", fe.Translate(trans)), fe.Field())
		}
		return zero, perr.Validationf("invalid request")
	}

	if err := v.Var(in.ReviewText, fmt.Sprintf("max=%d", maxTextLen)); err != nil {
		return zero, perr.WithField(
			perr.Validationf("%s exceeds maximum length of %d characters",
				fieldReviewText, maxTextLen), fieldReviewText)
	}

	return in, nil
}
