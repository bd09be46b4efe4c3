package settings

import (
	"strconv"
	"strings"

	"github.com/mawared/mawared-backend/internal/pkg/validator"
)

type UpsertSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Kind  string `json:"kind"`
}

func (r *UpsertSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Key) {
		errs = append(errs, validator.ValidationError{
			Field:   "key",
			Message: "key is required",
		})
	}
	if !validator.IsInSlice(r.Kind, []string{
		string(KindString), string(KindInt), string(KindBool), string(KindCSV),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: string, int, bool, csv",
		})
	}
	if !valueMatchesKind(r.Value, Kind(r.Kind)) {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value does not match the declared kind",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func valueMatchesKind(value string, kind Kind) bool {
	switch kind {
	case KindInt:
		_, err := strconv.Atoi(value)
		return err == nil
	case KindBool:
		_, err := strconv.ParseBool(value)
		return err == nil
	case KindCSV:
		return strings.TrimSpace(value) != ""
	default:
		return true
	}
}

type SettingResponse struct {
	Key       string  `json:"key"`
	Value     string  `json:"value"`
	Kind      string  `json:"kind"`
	UpdatedBy *string `json:"updated_by,omitempty"`
}

// NewSettingResponse maps the entity to its API shape.
func NewSettingResponse(s Setting) SettingResponse {
	return SettingResponse{
		Key:       s.Key,
		Value:     s.Value,
		Kind:      string(s.Kind),
		UpdatedBy: s.UpdatedBy,
	}
}
