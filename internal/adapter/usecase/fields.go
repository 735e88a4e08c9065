package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	msgRequired      = "This field is required."
	msgNull          = "This field may not be null."
	msgBlank         = "This field may not be blank."
	msgNullChar      = "Null characters are not allowed."
	msgInvalidString = "Not a valid string."
	msgInvalidNumber = "A valid number is required."
	msgInvalidBool   = "Must be a valid boolean."
	msgDateFormat    = "Datetime has wrong format. Use one of these formats instead: " +
		"YYYY-MM-DDThh:mm[:ss[.uuuuuu]][+HH:MM|-HH:MM|Z]."
)

const (
	nameMaxLength = 255

	campaignPriceDigits = 10
	settingPriceDigits  = 15
	priceDecimalPlaces  = 2
)

// dateTimeLayouts are tried in order. Layouts without a zone are read as UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

var (
	trueValues  = []string{"true", "t", "y", "yes", "on", "1"}
	falseValues = []string{"false", "f", "n", "no", "off", "0"}
)

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// jsonKind returns the kind of the JSON value in raw by its first byte.
func jsonKind(raw json.RawMessage) byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	switch c := raw[0]; {
	case c == '"':
		return 's'
	case c == 't' || c == 'f':
		return 'b'
	case c == 'n':
		return 'n'
	case c == '[':
		return 'a'
	case c == '{':
		return 'o'
	default:
		return '0'
	}
}

// scalarText returns the text of a JSON string, or the literal of a JSON
// number. ok is false for any other kind.
func scalarText(raw json.RawMessage) (string, bool) {
	switch jsonKind(raw) {
	case 's':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case '0':
		return string(bytes.TrimSpace(raw)), true
	default:
		return "", false
	}
}

// parseText reads a required, non-blank string of at most maxLen
// characters. Numbers are accepted and kept as their literal text.
func parseText(raw json.RawMessage, maxLen int) (string, []string) {
	if isNull(raw) {
		return "", []string{msgNull}
	}
	s, ok := scalarText(raw)
	if !ok {
		return "", []string{msgInvalidString}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", []string{msgBlank}
	}
	if strings.ContainsRune(s, 0) {
		return "", []string{msgNullChar}
	}
	if utf8.RuneCountInString(s) > maxLen {
		return "", []string{fmt.Sprintf("Ensure this field has no more than %d characters.", maxLen)}
	}
	return s, nil
}

// parseDecimal reads a decimal given as a JSON number or string and checks
// it fits maxDigits total digits with at most places after the point.
func parseDecimal(raw json.RawMessage, maxDigits, places int) (decimal.Decimal, []string) {
	if isNull(raw) {
		return decimal.Zero, []string{msgNull}
	}
	s, ok := scalarText(raw)
	if !ok {
		return decimal.Zero, []string{msgInvalidNumber}
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, []string{msgInvalidNumber}
	}

	digits, decimals := decimalDigits(d)
	whole := digits - decimals
	switch {
	case digits > maxDigits:
		return decimal.Zero, []string{fmt.Sprintf("Ensure that there are no more than %d digits in total.", maxDigits)}
	case decimals > places:
		return decimal.Zero, []string{fmt.Sprintf("Ensure that there are no more than %d decimal places.", places)}
	case whole > maxDigits-places:
		return decimal.Zero, []string{fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", maxDigits-places)}
	}
	return d.Round(int32(places)), nil
}

// decimalDigits counts the significant digits of d and how many of them
// follow the decimal point, from its coefficient and exponent.
func decimalDigits(d decimal.Decimal) (digits, decimals int) {
	n := len(new(big.Int).Abs(d.Coefficient()).String())
	exp := int(d.Exponent())
	if exp >= 0 {
		return n + exp, 0
	}
	decimals = -exp
	if decimals > n {
		return decimals, decimals
	}
	return n, decimals
}

// parseDateTime reads an ISO 8601 date-time string. Digits past the
// microsecond are dropped, as timestamptz cannot hold them.
func parseDateTime(raw json.RawMessage) (time.Time, []string) {
	if isNull(raw) {
		return time.Time{}, []string{msgNull}
	}
	if jsonKind(raw) != 's' {
		return time.Time{}, []string{msgDateFormat}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}, []string{msgDateFormat}
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Microsecond), nil
		}
	}
	return time.Time{}, []string{msgDateFormat}
}

// parseBool reads a JSON boolean, 0/1, or one of the common textual forms.
func parseBool(raw json.RawMessage) (bool, []string) {
	if isNull(raw) {
		return false, []string{msgNull}
	}
	var text string
	switch jsonKind(raw) {
	case 'b':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return false, []string{msgInvalidBool}
		}
		return b, nil
	case 's', '0':
		text, _ = scalarText(raw)
	default:
		return false, []string{msgInvalidBool}
	}
	text = strings.ToLower(strings.TrimSpace(text))
	for _, v := range trueValues {
		if text == v {
			return true, nil
		}
	}
	for _, v := range falseValues {
		if text == v {
			return false, nil
		}
	}
	return false, []string{msgInvalidBool}
}

// parsePK reads a primary key given as an integer or a string holding one.
// The returned label is the key as the client wrote it, for messages.
func parsePK(raw json.RawMessage) (id int64, label string, msgs []string) {
	if isNull(raw) {
		return 0, "", []string{msgNull}
	}
	var received string
	switch jsonKind(raw) {
	case 's':
		received = "str"
	case '0':
		received = "int"
	case 'b':
		received = "bool"
	case 'a':
		received = "list"
	default:
		received = "dict"
	}
	text, ok := scalarText(raw)
	if ok {
		id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err == nil {
			return id, text, nil
		}
		if received == "int" {
			received = "float"
		}
	}
	return 0, "", []string{fmt.Sprintf("Incorrect type. Expected pk value, received %s.", received)}
}

func pkMissing(label string) string {
	return fmt.Sprintf("Invalid pk \"%s\" - object does not exist.", label)
}
