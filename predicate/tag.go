package predicate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/erraggy/jsonmatch/matcherrors"
)

// validate is shared; validator.Validate is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// TagMatch is satisfied by values passing a validator tag such as "email",
// "uuid4", "min=3" or "oneof=red green".
type TagMatch struct {
	tag string
}

// Tag creates a validator tag predicate. Unknown validation functions are
// rejected here rather than at match time.
func Tag(tag string) (*TagMatch, error) {
	if strings.TrimSpace(tag) == "" {
		return nil, &matcherrors.ConfigError{Kind: "tag", Message: "no validation tag defined"}
	}
	if err := probeTag(tag); err != nil {
		return nil, err
	}
	return &TagMatch{tag: tag}, nil
}

// MustTag is like Tag but panics on an invalid tag.
func MustTag(tag string) *TagMatch {
	m, err := Tag(tag)
	if err != nil {
		panic(err)
	}
	return m
}

func probeTag(tag string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprint(r)
			if strings.Contains(msg, "Undefined validation function") {
				err = &matcherrors.ConfigError{Kind: "tag", Value: tag, Message: msg}
			}
		}
	}()
	_ = validate.Var("", tag)
	return nil
}

// Match implements Predicate. A failed validation is a plain non-match.
func (m *TagMatch) Match(v any) (bool, error) {
	err := validate.Var(v, m.tag)
	if err == nil {
		return true, nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return false, nil
	}
	return false, err
}

// String implements fmt.Stringer.
func (m *TagMatch) String() string {
	return fmt.Sprintf("Tag(%q)", m.tag)
}
