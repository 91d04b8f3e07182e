package webhook

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/adforgehq/adforge/internal/domain"
)

// ageRangeHook accepts the age attribute as a single string or as a list of
// range tokens, matching what independent workflow producers actually send.
func ageRangeHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(domain.AgeRange(nil)) {
		return data, nil
	}
	switch from.Kind() {
	case reflect.String:
		s := data.(string)
		if s == "" {
			return domain.AgeRange(nil), nil
		}
		return domain.AgeRange{s}, nil
	case reflect.Slice:
		items := cast.ToSlice(data)
		tokens := make(domain.AgeRange, 0, len(items))
		for _, item := range items {
			tokens = append(tokens, cast.ToString(item))
		}
		return tokens, nil
	}
	return data, nil
}

func decode(input map[string]interface{}, result interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			ageRangeHook,
		),
		Result: result,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// DecodeProduct coerces a loose product-shaped payload into a Product.
func DecodeProduct(payload map[string]interface{}) (domain.Product, error) {
	var p domain.Product
	if err := decode(payload, &p); err != nil {
		return p, errors.Wrap(err, "decode product payload")
	}
	return p, nil
}

// DecodeAvatar coerces a loose avatar-shaped payload into an Avatar.
func DecodeAvatar(payload map[string]interface{}) (domain.Avatar, error) {
	var a domain.Avatar
	if err := decode(payload, &a); err != nil {
		return a, errors.Wrap(err, "decode avatar payload")
	}
	return a, nil
}
