package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/stockroom/pkg/validate"
)

func TestItemNumberRules(t *testing.T) {
	cases := map[string]bool{
		"0001":  true,
		"9999":  true,
		"0000":  false,
		"123":   false,
		"12345": false,
		"12a4":  false,
		"-001":  false,
		"+001":  false,
	}
	for in, ok := range cases {
		msg := validate.Value("item number", in, "required,digits=4,gt=0")
		if ok {
			assert.Empty(t, msg, in)
		} else {
			assert.NotEmpty(t, msg, in)
		}
	}
	assert.Equal(t, "The item number must be 4 digits.", validate.Value("item number", "12", "digits=4"))
}

func TestAlphaSpaceRule(t *testing.T) {
	assert.Empty(t, validate.Value("name", "Cold Box", "alpha_space"))
	assert.Equal(t, "The name field must contain only letters and spaces.",
		validate.Value("name", "Cold-Box 2", "alpha_space"))
	assert.NotEmpty(t, validate.Value("name", "Kühl", "alpha_space"))
}

func TestNumericBounds(t *testing.T) {
	assert.NotEmpty(t, validate.Value("price", "0", "numeric,gt=0"))
	assert.NotEmpty(t, validate.Value("price", "abc", "gt=0"))
	assert.Empty(t, validate.Value("price", "0.01", "numeric,gt=0"))
	assert.Empty(t, validate.Value("price", "9999.90", "numeric,gt=0"))
	assert.NotEmpty(t, validate.Value("quantity", "-1", "integer,gte=0"))
	assert.NotEmpty(t, validate.Value("quantity", "1.5", "integer,gte=0"))
	assert.Empty(t, validate.Value("quantity", " 7 ", "integer,gte=0"))
	assert.Empty(t, validate.Value("choice", "7", "integer,gte=0,lte=7"))
	assert.Equal(t, "The choice must be less than or equal to 7.", validate.Value("choice", "8", "integer,gte=0,lte=7"))
}

func TestNumericRejectsNonDecimalForms(t *testing.T) {
	for _, in := range []string{"inf", "+Inf", "-inf", "NaN", "nan", "0x1p3", "1e3", "1_000", "5.", ".5"} {
		assert.Equal(t, "The price field must be a number.", validate.Value("price", in, "numeric,gt=0"), in)
		assert.NotEmpty(t, validate.Value("price", in, "gt=0"), in)
	}
}

func TestIntegerRejectsSignedAndPrefixedForms(t *testing.T) {
	for _, in := range []string{"+010", "+1", "0x10", "0o17", "0b1", "1_0"} {
		assert.Equal(t, "The quantity field must be an integer.", validate.Value("quantity", in, "integer,gte=0"), in)
	}
	assert.Empty(t, validate.Value("quantity", "010", "integer,gte=0"))
}

func TestYesNoRule(t *testing.T) {
	assert.Empty(t, validate.Value("dryer", "Y", "required,yes_no"))
	assert.Empty(t, validate.Value("dryer", "n", "required,yes_no"))
	assert.Equal(t, "The dryer field must be y or n.", validate.Value("dryer", "maybe", "required,yes_no"))
}

func TestFirstFailingRuleWins(t *testing.T) {
	assert.Equal(t, "The name field is required.", validate.Value("name", "  ", "required,alpha_space"))
	assert.Empty(t, validate.Value("name", "anything", "unknown_rule"))
}
