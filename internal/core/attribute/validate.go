// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package attribute

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/quangdam/mercata/pkg/slice"
)

// validatePair runs the input-type specific checks for one resolved pair,
// collecting violations into errs. Validators never mutate persisted state;
// the only input mutation allowed is normalization under the dedupe policy.
func validatePair(pair Pair, policy DuplicatePolicy, errs *Errors) {
	switch pair.Attribute.InputType {
	case InputDropdown, InputMultiselect:
		validateSelect(pair, policy, errs)
	case InputNumeric:
		validateNumeric(pair, errs)
	case InputFile:
		validateFile(pair, errs)
	case InputReference:
		validateReference(pair, errs)
	case InputRichText:
		validateRichText(pair, errs)
	case InputPlainText:
		validatePlainText(pair, errs)
	case InputBoolean:
		validateBoolean(pair, errs)
	case InputDate:
		validateDate(pair, errs)
	case InputDateTime:
		validateDateTime(pair, errs)
	}
}

func validateSelect(pair Pair, policy DuplicatePolicy, errs *Errors) {
	attr, in := pair.Attribute, pair.Input

	if len(in.Values) == 0 {
		if attr.ValueRequired {
			errs.Add(ErrRequired, "Attribute expects a value but none were given.", in.GlobalID())
		}
		return
	}

	if attr.InputType == InputDropdown && len(in.Values) > 1 {
		errs.Add(ErrInvalid, "Attribute must take only one value.", in.GlobalID())
	}

	// Blank and oversized checks apply to every supplied entry regardless
	// of required-ness.
	for _, value := range in.Values {
		if strings.TrimSpace(value) == "" {
			errs.Add(ErrRequired, "Attribute values cannot be blank.", in.GlobalID())
			break
		}
	}
	for _, value := range in.Values {
		if utf8.RuneCountInString(value) > NameMaxLength {
			errs.Add(ErrInvalid,
				fmt.Sprintf("Attribute values cannot be longer than %d characters.", NameMaxLength),
				in.GlobalID())
			break
		}
	}

	if slice.HasDuplicates(in.Values) {
		switch policy {
		case DuplicatesReject:
			errs.Add(ErrDuplicatedInputItem, "Duplicated attribute values are not allowed.", in.GlobalID())
		case DuplicatesDedupe:
			in.Values = slice.Dedupe(in.Values)
		}
	}
}

func validateNumeric(pair Pair, errs *Errors) {
	attr, in := pair.Attribute, pair.Input

	if len(in.Values) == 0 {
		if attr.ValueRequired {
			errs.Add(ErrRequired, "Attribute expects a value but none were given.", in.GlobalID())
		}
		return
	}

	if len(in.Values) > 1 {
		errs.Add(ErrInvalid, "Attribute must take only one value.", in.GlobalID())
	}

	// Blank entries violate required-ness, never the numeric format; the
	// parse check only applies to entries that carry content.
	for _, value := range in.Values {
		if strings.TrimSpace(value) == "" {
			errs.Add(ErrRequired, "Attribute values cannot be blank.", in.GlobalID())
			continue
		}
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			errs.Add(ErrInvalid, "Attribute value must be numeric.", in.GlobalID())
		}
	}
}

func validateFile(pair Pair, errs *Errors) {
	attr, in := pair.Attribute, pair.Input

	blank := in.FileURL == nil || strings.TrimSpace(*in.FileURL) == ""
	if blank && attr.ValueRequired {
		errs.Add(ErrRequired, "Attribute expects a file but none were given.", in.GlobalID())
	}
}

func validateReference(pair Pair, errs *Errors) {
	attr, in := pair.Attribute, pair.Input

	if len(in.References) == 0 && attr.ValueRequired {
		errs.Add(ErrRequired, "Attribute expects a reference but none were given.", in.GlobalID())
	}
}

func validateRichText(pair Pair, errs *Errors) {
	attr, in := pair.Attribute, pair.Input

	empty := in.RichText == nil || in.RichText.IsEmpty()
	if empty && attr.ValueRequired {
		errs.Add(ErrRequired, "Attribute expects a value but none were given.", in.GlobalID())
	}
}

func validatePlainText(pair Pair, errs *Errors) {
	attr, in := pair.Attribute, pair.Input

	empty := in.PlainText == nil || strings.TrimSpace(*in.PlainText) == ""
	if empty && attr.ValueRequired {
		errs.Add(ErrRequired, "Attribute expects a value but none were given.", in.GlobalID())
	}
}

// validateBoolean treats only a nil pointer as absence; explicit false is a
// legitimate value and satisfies a required attribute.
func validateBoolean(pair Pair, errs *Errors) {
	attr, in := pair.Attribute, pair.Input

	if in.Boolean == nil && attr.ValueRequired {
		errs.Add(ErrRequired, "Attribute expects a value but none were given.", in.GlobalID())
	}
}

func validateDate(pair Pair, errs *Errors) {
	attr, in := pair.Attribute, pair.Input

	if in.Date == nil && attr.ValueRequired {
		errs.Add(ErrRequired, "Attribute expects a value but none were given.", in.GlobalID())
	}
}

func validateDateTime(pair Pair, errs *Errors) {
	attr, in := pair.Attribute, pair.Input

	if in.DateTime == nil && attr.ValueRequired {
		errs.Add(ErrRequired, "Attribute expects a value but none were given.", in.GlobalID())
	}
}

// checkCompleteness enforces, at instance creation only, that every
// value-required attribute of the scope appears in the cleaned input. On
// updates partial payloads are legitimate, so this check is skipped there.
func checkCompleteness(allowed []*Attribute, pairs CleanedInput, errs *Errors) {
	supplied := make(map[int]bool, len(pairs))
	for _, pair := range pairs {
		supplied[pair.Attribute.ID] = true
	}

	var missing []string
	for _, attr := range allowed {
		if attr.ValueRequired && !supplied[attr.ID] {
			missing = append(missing, attr.GlobalID())
		}
	}

	if len(missing) > 0 {
		errs.Add(ErrRequired, "All attributes flagged as having a value required must be supplied.", missing...)
	}
}
